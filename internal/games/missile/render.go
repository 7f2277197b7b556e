package missile

import (
	"fmt"

	"github.com/joshpbradley/missile-command/internal/core"
)

// view draws in viewport coordinates onto a screen.
type view struct {
	dst    *core.Screen
	origin core.Vec
}

func (v view) set(p core.Vec, r rune, c core.Color) {
	v.dst.SetCell(v.origin.X+p.X, v.origin.Y+p.Y, r, c)
}

func (v view) text(x, y int, s string, c core.Color) {
	v.dst.DrawText(v.origin.X+x, v.origin.Y+y, s, c)
}

// Render draws the viewport centred on dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst,
			"Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", g.cfg.Viewport.Width, g.cfg.Viewport.Height, dst.Width(), dst.Height()),
		)
		return
	}

	v := view{dst: dst, origin: g.origin}
	g.renderLandscape(v)
	g.renderHUD(v)
	g.renderMissiles(v)

	switch {
	case g.clock.Paused():
		g.renderOverlay(dst, "PAUSED", "Press P to continue")
	case g.summary != nil:
		g.renderSummary(dst)
	}
}

// renderLandscape draws the border, ground, bases and cities.
func (g *Game) renderLandscape(v view) {
	w, h := g.cfg.Viewport.Width, g.cfg.Viewport.Height
	p := g.palette

	v.dst.DrawBox(core.NewRect(v.origin.X, v.origin.Y, w, h), p.Neutral)
	for y := h - 4; y <= h-2; y++ {
		v.dst.DrawHLine(v.origin.X+1, v.origin.Y+y, w-2, 'X', p.Ground)
	}

	for _, b := range g.assets.Bases {
		if !b.Alive {
			v.text(b.Offset, h-5, "_.,-'-,._", core.ColorGray)
			continue
		}
		v.text(b.Offset, h-5, "/XX", p.Ground)
		v.text(b.Offset+3, h-5, fmt.Sprintf("%03d", b.Ammo), p.Friendly)
		v.text(b.Offset+6, h-5, "XX\\", p.Ground)
		v.text(b.Offset+1, h-6, "/XXXXX\\", p.Ground)
		v.text(b.Offset+2, h-7, ".^_^.", p.Ground)
	}

	for _, c := range g.assets.Cities {
		if !c.Alive {
			v.text(c.Offset, h-5, ".,;,.", core.ColorGray)
			continue
		}
		v.text(c.Offset, h-6, "/MMM\\", p.City)
		v.text(c.Offset, h-5, "||[]|", p.City)
	}
}

// renderHUD draws the score and round on the top interior row.
func (g *Game) renderHUD(v view) {
	v.text(1, 1, fmt.Sprintf("%d", g.counters.Score), g.palette.DestructionPrimary)
	round := fmt.Sprintf("ROUND %d", g.counters.Round)
	v.text(g.cfg.Viewport.Width-1-len(round), 1, round, g.palette.Neutral)
}

// renderMissiles draws trails, explosions, target markers and heads.
// Hostile heads go last so they stay visible over friendly trails.
func (g *Game) renderMissiles(v view) {
	p := g.palette

	for _, pool := range []*Pool{g.enemy, g.player} {
		trail := p.DestructionPrimary
		if pool.owner == OwnerPlayer {
			trail = p.Friendly
		}
		for i := range pool.slots {
			m := &pool.slots[i]
			if !m.Flying() {
				continue
			}
			for cell := range m.Trail {
				v.set(cell, '*', trail)
			}
		}
	}

	for _, pool := range []*Pool{g.player, g.enemy} {
		for i := range pool.slots {
			m := &pool.slots[i]
			if !m.Exploding() {
				continue
			}
			c := blastColor(p, m.Frame)
			for _, cell := range Blast(m.Curr, m.Frame) {
				if cell.Visible {
					v.set(cell.Pos, '*', c)
				}
			}
		}
	}

	for i := range g.player.slots {
		m := &g.player.slots[i]
		if m.Flying() {
			v.set(m.Dest, 'X', p.Neutral)
			v.set(m.Curr, '*', p.Friendly)
		}
	}
	for i := range g.enemy.slots {
		m := &g.enemy.slots[i]
		if m.Flying() {
			v.set(m.Curr, '*', p.Hostile)
		}
	}
}

// renderSummary draws the end-of-round or game-over panel.
func (g *Game) renderSummary(dst *core.Screen) {
	s := g.summary
	sc := g.cfg.Scoring

	var lines []string
	if s.GameOver {
		lines = append(lines, "THE END", "")
	} else {
		lines = append(lines,
			fmt.Sprintf("ROUND %d CLEARED", s.Round),
			"CIVILISATION HAS SURVIVED",
			"",
		)
	}
	lines = append(lines,
		fmt.Sprintf("SCORE: %d", s.Score),
		"",
		fmt.Sprintf("MISSILES INTERCEPTED: %02d X %d POINTS", s.Intercepted, sc.Interception),
		fmt.Sprintf("BASES SURVIVED:       %02d X %d POINTS", s.BasesSurvived, sc.BaseSurvived),
		fmt.Sprintf("MISSILES REMAINING:   %02d X %d POINTS", s.AmmoRemaining, sc.AmmoRemaining),
		"",
	)
	if s.GameOver {
		lines = append(lines, "Press R to restart or Q to quit")
	} else {
		lines = append(lines, "Press Enter to continue")
	}
	g.renderOverlay(dst, lines...)
}

// renderOverlay draws a bordered box centred on the screen with the lines inside.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len(l))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, g.palette.Neutral)

	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len(l))/2, boxY+1+i, l, g.palette.DestructionPrimary)
	}
}
