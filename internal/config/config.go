// Package config provides YAML-based game configuration loading and
// validation for Missile Command.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joshpbradley/missile-command/internal/core"
)

// MissileConfig contains all configuration for a Missile Command run.
// It is constant for the lifetime of a game.
type MissileConfig struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Assets   AssetsConfig   `yaml:"assets"`
	Missiles MissilesConfig `yaml:"missiles"`
	Timing   TimingConfig   `yaml:"timing"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Colors   ColorsConfig   `yaml:"colors"`
}

// ViewportConfig defines the playfield size and the regions carved out of it.
type ViewportConfig struct {
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	ScoreMargin int           `yaml:"score_margin"` // Columns reserved for the score on the top row
	ClickRegion MarginsConfig `yaml:"click_region"` // Margins excluded from valid launch clicks
}

// MarginsConfig is a set of inset distances from the viewport edges.
type MarginsConfig struct {
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
}

// AssetsConfig defines the defended ground assets.
type AssetsConfig struct {
	BaseOffsets []int `yaml:"base_offsets"` // Left column of each base sprite
	CityOffsets []int `yaml:"city_offsets"` // Left column of each city sprite
	AmmoPerBase int   `yaml:"ammo_per_base"`
}

// MissilesConfig defines pool sizes and the per-round hostile budget.
type MissilesConfig struct {
	PlayerPool      int `yaml:"player_pool"`
	EnemyPool       int `yaml:"enemy_pool"`
	EnemiesPerRound int `yaml:"enemies_per_round"`
}

// TimingConfig defines the wall-clock cadences of the simulation.
// A missile moves at most one cell per tick, so a movement interval shorter
// than the tick period (about 16.7ms at 60 fps) means every tick.
type TimingConfig struct {
	PlayerMove     time.Duration `yaml:"player_move"`      // Friendly movement interval
	EnemyMove      time.Duration `yaml:"enemy_move"`       // Hostile movement interval in round 1
	EnemyMoveStep  time.Duration `yaml:"enemy_move_step"`  // Interval reduction per round
	EnemyMoveMin   time.Duration `yaml:"enemy_move_min"`   // Fastest hostile movement interval
	FastForward    time.Duration `yaml:"fast_forward"`     // Movement interval while a round winds down
	Spawn          time.Duration `yaml:"spawn"`            // Interval between hostile launches
	ExplosionFrame time.Duration `yaml:"explosion_frame"`  // Duration of one explosion frame
	RoundSummary   time.Duration `yaml:"round_summary"`    // How long the round summary is shown
}

// ScoringConfig defines point values.
type ScoringConfig struct {
	Interception  int `yaml:"interception"`
	BaseSurvived  int `yaml:"base_survived"`
	AmmoRemaining int `yaml:"ammo_remaining"`
}

// ColorsConfig names the color of each element. Names are resolved with
// core.ParseColor.
type ColorsConfig struct {
	Friendly             string `yaml:"friendly"`
	Hostile              string `yaml:"hostile"`
	DestructionPrimary   string `yaml:"destruction_primary"`
	DestructionSecondary string `yaml:"destruction_secondary"`
	Neutral              string `yaml:"neutral"`
	Ground               string `yaml:"ground"`
	City                 string `yaml:"city"`
}

// Palette is ColorsConfig resolved to core colors.
type Palette struct {
	Friendly             core.Color
	Hostile              core.Color
	DestructionPrimary   core.Color
	DestructionSecondary core.Color
	Neutral              core.Color
	Ground               core.Color
	City                 core.Color
}

// Palette resolves every color name.
func (c ColorsConfig) Palette() (Palette, error) {
	var p Palette
	var errs []error
	resolve := func(field, name string, dst *core.Color) {
		col, err := core.ParseColor(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", field, err))
			return
		}
		*dst = col
	}
	resolve("friendly", c.Friendly, &p.Friendly)
	resolve("hostile", c.Hostile, &p.Hostile)
	resolve("destruction_primary", c.DestructionPrimary, &p.DestructionPrimary)
	resolve("destruction_secondary", c.DestructionSecondary, &p.DestructionSecondary)
	resolve("neutral", c.Neutral, &p.Neutral)
	resolve("ground", c.Ground, &p.Ground)
	resolve("city", c.City, &p.City)
	return p, errors.Join(errs...)
}

// Sprite widths used by the layout checks.
const (
	baseSpriteWidth = 9
	citySpriteWidth = 5
)

// Validate reports every invalid field of the configuration.
func (c MissileConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	v := c.Viewport
	if v.Width < 20 {
		fail("viewport.width must be at least 20, got %d", v.Width)
	}
	if v.Height < 16 {
		fail("viewport.height must be at least 16, got %d", v.Height)
	}
	if v.ScoreMargin < 0 || v.ScoreMargin >= v.Width-2 {
		fail("viewport.score_margin must be in [0, %d), got %d", v.Width-2, v.ScoreMargin)
	}
	cr := v.ClickRegion
	if cr.Left < 1 || cr.Right < 1 || cr.Top < 1 || cr.Bottom < 1 {
		fail("viewport.click_region margins must be at least 1")
	}
	if cr.Left+cr.Right >= v.Width || cr.Top+cr.Bottom >= v.Height {
		fail("viewport.click_region leaves no clickable area")
	}
	// Launch points sit on row H-8; clicks must be strictly above them.
	if v.Height-1-cr.Bottom >= v.Height-8 {
		fail("viewport.click_region.bottom must be at least 8, got %d", cr.Bottom)
	}

	a := c.Assets
	if len(a.BaseOffsets) == 0 {
		fail("assets.base_offsets must name at least one base")
	}
	for i, off := range a.BaseOffsets {
		if off < 1 || off+baseSpriteWidth > v.Width-1 {
			fail("assets.base_offsets[%d] = %d does not fit in the viewport", i, off)
		}
	}
	if len(a.CityOffsets) == 0 {
		fail("assets.city_offsets must name at least one city")
	}
	for i, off := range a.CityOffsets {
		if off < 1 || off+citySpriteWidth > v.Width-1 {
			fail("assets.city_offsets[%d] = %d does not fit in the viewport", i, off)
		}
	}
	// Sprites share the ground rows; overlapping ones would share aim points.
	type span struct {
		name     string
		from, to int
	}
	var spans []span
	for i, off := range a.BaseOffsets {
		spans = append(spans, span{fmt.Sprintf("assets.base_offsets[%d]", i), off, off + baseSpriteWidth})
	}
	for i, off := range a.CityOffsets {
		spans = append(spans, span{fmt.Sprintf("assets.city_offsets[%d]", i), off, off + citySpriteWidth})
	}
	for i := range spans {
		for _, o := range spans[i+1:] {
			if spans[i].from < o.to && o.from < spans[i].to {
				fail("%s and %s overlap", spans[i].name, o.name)
			}
		}
	}
	if a.AmmoPerBase < 0 {
		fail("assets.ammo_per_base must not be negative, got %d", a.AmmoPerBase)
	}

	m := c.Missiles
	if m.PlayerPool < 1 {
		fail("missiles.player_pool must be positive, got %d", m.PlayerPool)
	}
	if m.EnemyPool < 1 {
		fail("missiles.enemy_pool must be positive, got %d", m.EnemyPool)
	}
	if m.EnemiesPerRound < 1 {
		fail("missiles.enemies_per_round must be positive, got %d", m.EnemiesPerRound)
	}

	t := c.Timing
	for _, d := range []struct {
		name string
		val  time.Duration
	}{
		{"player_move", t.PlayerMove},
		{"enemy_move", t.EnemyMove},
		{"enemy_move_min", t.EnemyMoveMin},
		{"fast_forward", t.FastForward},
		{"spawn", t.Spawn},
		{"explosion_frame", t.ExplosionFrame},
	} {
		if d.val <= 0 {
			fail("timing.%s must be positive, got %s", d.name, d.val)
		}
	}
	if t.EnemyMoveStep < 0 {
		fail("timing.enemy_move_step must not be negative, got %s", t.EnemyMoveStep)
	}
	if t.RoundSummary < 0 {
		fail("timing.round_summary must not be negative, got %s", t.RoundSummary)
	}
	if t.EnemyMoveMin > t.EnemyMove {
		fail("timing.enemy_move_min (%s) exceeds timing.enemy_move (%s)", t.EnemyMoveMin, t.EnemyMove)
	}

	if _, err := c.Colors.Palette(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
