package missile

import (
	"time"

	"github.com/joshpbradley/missile-command/internal/core"
)

// intercept rebuilds the occupancy map and destroys every flying hostile
// missile whose head shares a cell with a friendly missile or any blast.
// Missiles struck this tick start exploding at once; their blasts reach
// neighbours on the next tick.
func (g *Game) intercept(now time.Time) {
	g.occ.Reset()
	g.occ.AddPool(g.player)
	g.occ.AddPool(g.enemy)

	for i := range g.enemy.slots {
		m := &g.enemy.slots[i]
		if !m.Flying() {
			continue
		}
		if !strikes(g.occ.At(m.Curr)) {
			continue
		}
		m.detonate(now)
		m.CanFragment = false
		g.counters.Score += g.cfg.Scoring.Interception
		g.counters.EnemiesDestroyed++
		g.emit(core.EventInterception, m.Curr, g.cfg.Scoring.Interception)
	}
}

