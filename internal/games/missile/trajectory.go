package missile

import (
	"math"

	"github.com/joshpbradley/missile-command/internal/core"
)

// Advance moves a flying missile one cell along the line from Start to Dest
// and records the new cell in its trail. The axis with the longer flight
// advances by exactly one cell per call; the other axis is recomputed from
// the flight angle, so a missile reaches Dest after Chebyshev(Start, Dest)
// calls. Advance does nothing once the missile has arrived.
func (m *Missile) Advance() {
	if m.Curr == m.Dest {
		return
	}
	m.Prev = m.Curr

	flightX := m.Dest.X - m.Start.X
	flightY := core.Abs(m.Dest.Y - m.Start.Y)
	dy := m.verticalDirection()

	switch {
	case m.Curr.X == m.Dest.X:
		// Straight up or down.
		m.Curr.Y += dy

	case core.Abs(flightX) >= flightY:
		// Shallow: step x, derive y.
		theta := math.Atan2(float64(flightY), float64(core.Abs(flightX)))
		run := core.Abs(m.Curr.X-m.Start.X) + 1
		rise := int(math.Round(math.Tan(theta) * float64(run)))
		m.Curr.X += core.Sign(flightX)
		m.Curr.Y = m.Start.Y + dy*rise

	default:
		// Steep: step y, derive x.
		m.Curr.Y += dy
		theta := math.Atan2(float64(core.Abs(flightX)), float64(flightY))
		rise := core.Abs(m.Curr.Y - m.Start.Y)
		run := int(math.Round(math.Tan(theta) * float64(rise)))
		m.Curr.X = m.Start.X + core.Sign(flightX)*run
	}

	m.Trail[m.Curr] = struct{}{}
}

// verticalDirection is +1 for downward flights and -1 for upward ones.
// Level flights fall back to the owner's heading: hostiles fall, friendlies climb.
func (m *Missile) verticalDirection() int {
	if d := core.Sign(m.Dest.Y - m.Start.Y); d != 0 {
		return d
	}
	if m.Owner == OwnerEnemy {
		return 1
	}
	return -1
}
