package missile

import (
	"time"

	"github.com/joshpbradley/missile-command/internal/core"
)

// fireAt launches a friendly missile at click from the first base in the
// click zone's priority order that can fire. Clicks outside the launch
// region, or with no free slot or able base, are dropped.
func (g *Game) fireAt(click core.Vec) {
	if !g.clickRegion.ContainsVec(click) {
		return
	}
	slot, ok := g.player.Free()
	if !ok {
		return
	}
	for _, bi := range g.basePriority(click.X) {
		b := &g.assets.Bases[bi]
		if !b.CanFire() {
			continue
		}
		b.Ammo--
		g.player.Get(slot).launch(b.Launch, click, false)
		g.emit(core.EventLaunch, b.Launch, bi)
		return
	}
}

// basePriority orders the bases for a click in column x. The viewport
// interior is split into one zone per base; the zone's own base comes first,
// then the others by distance, breaking ties towards the side of the zone
// that was clicked.
func (g *Game) basePriority(x int) []int {
	n := len(g.assets.Bases)
	inner := g.cfg.Viewport.Width - 2
	bound := func(k int) int { return inner/n*k + 1 }

	home := 0
	switch {
	case n == 1:
	case x >= bound(n-1):
		home = n - 1
	case x <= bound(1):
		home = 0
	default:
		for k := 1; k < n-1; k++ {
			if x <= bound(k+1) {
				home = k
				break
			}
		}
	}

	// Lean left when the click is in the left half of its zone.
	leanLeft := x <= inner*(2*home+1)/(2*n)+1

	order := make([]int, 0, n)
	order = append(order, home)
	for d := 1; len(order) < n; d++ {
		first, second := home+d, home-d
		if leanLeft {
			first, second = second, first
		}
		for _, i := range []int{first, second} {
			if i >= 0 && i < n {
				order = append(order, i)
			}
		}
	}
	return order
}

// pickTarget chooses a hostile aim point uniformly from the candidates.
// With no other aim point left it keeps the excluded one.
func (g *Game) pickTarget(exclude *core.Vec) core.Vec {
	candidates := g.assets.Targets(exclude)
	if len(candidates) == 0 {
		if exclude != nil {
			return *exclude
		}
		return core.V(g.cfg.Viewport.Width/2, g.cfg.Viewport.Height-7)
	}
	return candidates[g.rng.Intn(len(candidates))].Pos
}

// spawnEnemy launches a hostile missile from a random column of the top row
// once the spawn interval has elapsed. A full pool leaves the timer running
// so the spawn is retried on the next tick.
func (g *Game) spawnEnemy(now time.Time) {
	if g.counters.EnemiesFired >= g.cfg.Missiles.EnemiesPerRound {
		return
	}
	if now.Sub(g.lastSpawn) < g.cfg.Timing.Spawn {
		return
	}
	slot, ok := g.enemy.Free()
	if !ok {
		return
	}

	lo := 1 + g.cfg.Viewport.ScoreMargin
	hi := g.cfg.Viewport.Width - 2
	start := core.V(lo+g.rng.Intn(hi-lo+1), 1)

	g.enemy.Get(slot).launch(start, g.pickTarget(nil), true)
	g.counters.EnemiesFired++
	g.lastSpawn = now
	g.emit(core.EventSpawn, start, slot)
}

// fragmentEligible reports whether m has just crossed the midpoint row
// travelling down and may still split.
func (g *Game) fragmentEligible(m *Missile) bool {
	return m.Flying() && m.CanFragment &&
		m.Curr.Y == g.midY && m.Prev.Y == m.Curr.Y-1
}

// splitMissiles spawns one fragment from every eligible hostile missile.
// The parent's fragment flag is consumed even when the budget or pool
// leaves no room for the fragment.
func (g *Game) splitMissiles() {
	for i := range g.enemy.slots {
		parent := &g.enemy.slots[i]
		if !g.fragmentEligible(parent) {
			continue
		}
		parent.CanFragment = false

		if g.counters.EnemiesFired >= g.cfg.Missiles.EnemiesPerRound {
			continue
		}
		slot, ok := g.enemy.Free()
		if !ok {
			continue
		}
		exclude := parent.Dest
		g.enemy.Get(slot).launch(parent.Curr, g.pickTarget(&exclude), false)
		g.counters.EnemiesFired++
		g.emit(core.EventFragment, parent.Curr, slot)
	}
}
