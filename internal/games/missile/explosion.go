package missile

import (
	"time"

	"github.com/joshpbradley/missile-command/internal/config"
	"github.com/joshpbradley/missile-command/internal/core"
)

// ExplosionFrames is the number of frames in an explosion.
const ExplosionFrames = 6

// patternRow is one row of an explosion frame, anchored relative to the centre.
// Spaces are part of the blast but are drawn blank.
type patternRow struct {
	dx, dy int
	text   string
}

// explosionPatterns holds the rows of each frame, indexed by frame number.
// The blast grows to a 7x5 burst at frame 3 and collapses back to nothing.
var explosionPatterns = [ExplosionFrames + 1][]patternRow{
	1: {
		{0, 0, "*"},
	},
	2: {
		{0, -1, "*"},
		{-1, 0, "***"},
		{0, 1, "*"},
	},
	3: {
		{-2, -2, "* * *"},
		{-1, -1, "***"},
		{-3, 0, "*******"},
		{-2, 1, " *** "},
		{-2, 2, "* * *"},
	},
	4: {
		{-2, -2, "     "},
		{-1, -1, " * "},
		{-3, 0, "  ***  "},
		{-1, 1, " * "},
		{-2, 2, "     "},
	},
	5: {
		{0, -1, " "},
		{-1, 0, " * "},
		{0, 1, " "},
	},
	6: {
		{0, 0, " "},
	},
}

// BlastCell is one cell of an explosion frame.
type BlastCell struct {
	Pos     core.Vec
	Visible bool // Drawn as '*'
}

// Blast returns every cell covered by frame of an explosion centred on c.
// Frames outside 1..ExplosionFrames cover nothing.
func Blast(c core.Vec, frame int) []BlastCell {
	if frame < 1 || frame > ExplosionFrames {
		return nil
	}
	var cells []BlastCell
	for _, row := range explosionPatterns[frame] {
		for i, r := range row.text {
			cells = append(cells, BlastCell{
				Pos:     core.V(c.X+row.dx+i, c.Y+row.dy),
				Visible: r == '*',
			})
		}
	}
	return cells
}

// blastColor alternates the destruction colors: primary on odd frames.
func blastColor(p config.Palette, frame int) core.Color {
	if frame%2 == 1 {
		return p.DestructionPrimary
	}
	return p.DestructionSecondary
}

// detonate starts the explosion at the missile's current cell and wipes its trail.
func (m *Missile) detonate(now time.Time) {
	m.Dest = m.Curr
	m.Frame = 1
	m.FrameAt = now
	clear(m.Trail)
}

// tickExplosion advances the explosion once a frame has been shown for
// frameDur. It reports true when the explosion finished and the slot is free.
func (m *Missile) tickExplosion(now time.Time, frameDur time.Duration) bool {
	if now.Sub(m.FrameAt) < frameDur {
		return false
	}
	m.Frame++
	m.FrameAt = now
	if m.Frame > ExplosionFrames {
		m.Active = false
		m.Frame = 0
		m.CanFragment = false
		return true
	}
	return false
}
