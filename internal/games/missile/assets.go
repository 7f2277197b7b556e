package missile

import (
	"sort"

	"github.com/joshpbradley/missile-command/internal/config"
	"github.com/joshpbradley/missile-command/internal/core"
)

// Base is a missile battery. It fires friendly missiles and is a hostile target.
type Base struct {
	Alive  bool
	Offset int      // Left column of the base sprite
	Ammo   int      // Missiles left this round, never negative
	Target core.Vec // Cell hostile missiles aim at
	Launch core.Vec // Cell friendly missiles start from
}

// CanFire reports whether the base can launch a missile.
func (b Base) CanFire() bool {
	return b.Alive && b.Ammo > 0
}

// City is a defended city. Destroyed cities stay destroyed for the whole game.
type City struct {
	Alive  bool
	Offset int
	Target core.Vec
}

// Target is an aim point for hostile missiles.
type Target struct {
	Pos   core.Vec
	Base  bool // True for a base, false for a city
	Index int  // Index into Assets.Bases or Assets.Cities
}

// Assets is the registry of defended ground assets.
type Assets struct {
	Bases  []Base
	Cities []City

	ammoPerBase int
	targets     []Target // All targets ordered left to right
}

// NewAssets lays out bases and cities from the configuration.
// Launch points sit on row H-8, aim points on row H-7.
func NewAssets(cfg config.MissileConfig) *Assets {
	h := cfg.Viewport.Height
	a := &Assets{
		Bases:       make([]Base, len(cfg.Assets.BaseOffsets)),
		Cities:      make([]City, len(cfg.Assets.CityOffsets)),
		ammoPerBase: cfg.Assets.AmmoPerBase,
	}

	for i, off := range cfg.Assets.BaseOffsets {
		a.Bases[i] = Base{
			Offset: off,
			Target: core.V(off+4, h-7),
			Launch: core.V(off+4, h-8),
		}
		a.targets = append(a.targets, Target{Pos: a.Bases[i].Target, Base: true, Index: i})
	}
	for i, off := range cfg.Assets.CityOffsets {
		a.Cities[i] = City{
			Alive:  true,
			Offset: off,
			Target: core.V(off+2, h-7),
		}
		a.targets = append(a.targets, Target{Pos: a.Cities[i].Target, Index: i})
	}
	sort.SliceStable(a.targets, func(i, j int) bool {
		return a.targets[i].Pos.X < a.targets[j].Pos.X
	})

	a.ResetBases()
	return a
}

// ResetBases rebuilds every base with full ammunition. Cities are untouched.
func (a *Assets) ResetBases() {
	for i := range a.Bases {
		a.Bases[i].Alive = true
		a.Bases[i].Ammo = a.ammoPerBase
	}
}

// CanAnyFire reports whether at least one base can launch.
func (a *Assets) CanAnyFire() bool {
	for _, b := range a.Bases {
		if b.CanFire() {
			return true
		}
	}
	return false
}

// BasesAlive counts surviving bases.
func (a *Assets) BasesAlive() int {
	n := 0
	for _, b := range a.Bases {
		if b.Alive {
			n++
		}
	}
	return n
}

// CitiesAlive counts surviving cities.
func (a *Assets) CitiesAlive() int {
	n := 0
	for _, c := range a.Cities {
		if c.Alive {
			n++
		}
	}
	return n
}

// AmmoRemaining sums the ammunition of every base, destroyed or not.
func (a *Assets) AmmoRemaining() int {
	n := 0
	for _, b := range a.Bases {
		n += b.Ammo
	}
	return n
}

// alive reports whether the asset behind t is still standing.
func (a *Assets) alive(t Target) bool {
	if t.Base {
		return a.Bases[t.Index].Alive
	}
	return a.Cities[t.Index].Alive
}

// Targets returns the aim points hostile missiles may pick from, excluding
// the cell exclude when non-nil. Only standing assets are offered; when none
// stand, every asset is offered so a round can always run to completion.
func (a *Assets) Targets(exclude *core.Vec) []Target {
	pick := func(aliveOnly bool) []Target {
		var out []Target
		for _, t := range a.targets {
			if exclude != nil && t.Pos == *exclude {
				continue
			}
			if aliveOnly && !a.alive(t) {
				continue
			}
			out = append(out, t)
		}
		return out
	}

	if valid := pick(true); len(valid) > 0 {
		return valid
	}
	return pick(false)
}

// DestroyAt destroys the standing asset whose aim point is p.
// It returns the destroyed target and true, or false if nothing standing was hit.
func (a *Assets) DestroyAt(p core.Vec) (Target, bool) {
	for _, t := range a.targets {
		if t.Pos != p || !a.alive(t) {
			continue
		}
		if t.Base {
			a.Bases[t.Index].Alive = false
		} else {
			a.Cities[t.Index].Alive = false
		}
		return t, true
	}
	return Target{}, false
}
