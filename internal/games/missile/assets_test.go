package missile

import (
	"testing"

	"github.com/joshpbradley/missile-command/internal/config"
	"github.com/joshpbradley/missile-command/internal/core"
)

func TestNewAssetsLayout(t *testing.T) {
	a := NewAssets(config.DefaultMissileConfig())

	if len(a.Bases) != 3 || len(a.Cities) != 6 {
		t.Fatalf("got %d bases and %d cities, expected 3 and 6", len(a.Bases), len(a.Cities))
	}

	bases := []struct {
		launch, target core.Vec
	}{
		{core.V(5, 37), core.V(5, 38)},
		{core.V(49, 37), core.V(49, 38)},
		{core.V(93, 37), core.V(93, 38)},
	}
	for i, want := range bases {
		b := a.Bases[i]
		if b.Launch != want.launch || b.Target != want.target {
			t.Errorf("base %d: launch %v target %v, expected %v %v", i, b.Launch, b.Target, want.launch, want.target)
		}
		if !b.Alive || b.Ammo != 7 {
			t.Errorf("base %d: alive=%v ammo=%d", i, b.Alive, b.Ammo)
		}
	}

	for i, x := range []int{17, 27, 37, 61, 71, 81} {
		if got := a.Cities[i].Target; got != core.V(x, 38) {
			t.Errorf("city %d target %v, expected (%d, 38)", i, got, x)
		}
	}

	targets := a.Targets(nil)
	if len(targets) != 9 {
		t.Fatalf("%d targets, expected 9", len(targets))
	}
	for i := 1; i < len(targets); i++ {
		if targets[i-1].Pos.X >= targets[i].Pos.X {
			t.Errorf("targets not ordered left to right: %v", targets)
		}
	}
}

func TestTargetsSkipDestroyedAndExcluded(t *testing.T) {
	a := NewAssets(config.DefaultMissileConfig())

	a.Cities[0].Alive = false
	a.Bases[2].Alive = false
	exclude := a.Cities[1].Target

	for _, tg := range a.Targets(&exclude) {
		switch tg.Pos {
		case a.Cities[0].Target, a.Bases[2].Target:
			t.Errorf("destroyed asset %v offered", tg.Pos)
		case exclude:
			t.Errorf("excluded target %v offered", tg.Pos)
		}
	}
	if got := len(a.Targets(&exclude)); got != 6 {
		t.Errorf("%d targets, expected 6", got)
	}
}

func TestTargetsFallBackWhenEverythingDestroyed(t *testing.T) {
	a := NewAssets(config.DefaultMissileConfig())
	for i := range a.Bases {
		a.Bases[i].Alive = false
	}
	for i := range a.Cities {
		a.Cities[i].Alive = false
	}

	if got := len(a.Targets(nil)); got != 9 {
		t.Errorf("fallback offers %d targets, expected 9", got)
	}
	exclude := a.Bases[0].Target
	if got := len(a.Targets(&exclude)); got != 8 {
		t.Errorf("fallback with exclusion offers %d targets, expected 8", got)
	}
}

func TestDestroyAt(t *testing.T) {
	a := NewAssets(config.DefaultMissileConfig())

	tg, ok := a.DestroyAt(a.Cities[3].Target)
	if !ok || tg.Base || tg.Index != 3 {
		t.Fatalf("DestroyAt(city 3) = %+v, %v", tg, ok)
	}
	if a.Cities[3].Alive {
		t.Error("city 3 should be destroyed")
	}
	if _, ok := a.DestroyAt(a.Cities[3].Target); ok {
		t.Error("destroying a destroyed city should report false")
	}
	if _, ok := a.DestroyAt(core.V(50, 10)); ok {
		t.Error("open sky should not destroy anything")
	}

	tg, ok = a.DestroyAt(a.Bases[1].Target)
	if !ok || !tg.Base || tg.Index != 1 {
		t.Fatalf("DestroyAt(base 1) = %+v, %v", tg, ok)
	}
	if a.BasesAlive() != 2 || a.CitiesAlive() != 5 {
		t.Errorf("alive: %d bases, %d cities", a.BasesAlive(), a.CitiesAlive())
	}
}

func TestResetBasesLeavesCitiesDestroyed(t *testing.T) {
	a := NewAssets(config.DefaultMissileConfig())
	a.Bases[0].Alive = false
	a.Bases[1].Ammo = 0
	a.Cities[2].Alive = false

	a.ResetBases()

	if a.BasesAlive() != 3 || a.AmmoRemaining() != 21 {
		t.Errorf("after reset: %d bases, %d ammo", a.BasesAlive(), a.AmmoRemaining())
	}
	if a.Cities[2].Alive {
		t.Error("destroyed city came back")
	}
}

func TestCanAnyFire(t *testing.T) {
	a := NewAssets(config.DefaultMissileConfig())
	if !a.CanAnyFire() {
		t.Fatal("fresh bases should be able to fire")
	}
	a.Bases[0].Alive = false
	a.Bases[1].Ammo = 0
	if !a.CanAnyFire() {
		t.Fatal("base 2 can still fire")
	}
	a.Bases[2].Ammo = 0
	if a.CanAnyFire() {
		t.Error("no base should be able to fire")
	}
}
