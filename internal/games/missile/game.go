// Package missile implements the Missile Command simulation: hostile
// missiles fall on a row of bases and cities, and the player launches
// interceptors that explode where they are aimed.
package missile

import (
	"math/rand"
	"time"

	"github.com/joshpbradley/missile-command/internal/config"
	"github.com/joshpbradley/missile-command/internal/core"
)

// Game is the simulation context. It owns every missile, asset and counter
// and is advanced one tick at a time by Step.
type Game struct {
	cfg     config.MissileConfig
	palette config.Palette
	src     core.TimeSource
	clock   *core.Clock
	rng     *rand.Rand
	tick    uint64

	assets *Assets
	player *Pool
	enemy  *Pool
	occ    *Occupancy

	phase    Phase
	counters Counters
	summary  *Summary
	events   []core.Event

	clickRegion core.Rect
	midY        int

	lastSpawn      time.Time
	lastPlayerMove time.Time
	lastEnemyMove  time.Time
	phaseAt        time.Time

	// Screen layout
	screenW, screenH int
	origin           core.Vec // Screen position of the viewport's top-left cell
	tooSmall         bool
	held             bool // Clock paused because the screen is too small
}

// Option configures a Game.
type Option func(*Game)

// WithTimeSource drives the game clock from src instead of the system clock.
func WithTimeSource(src core.TimeSource) Option {
	return func(g *Game) {
		g.src = src
	}
}

// New creates a game from a validated configuration. Call Reset before Step.
func New(cfg config.MissileConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	// Validate has already resolved every color name.
	g.palette, _ = cfg.Colors.Palette()

	v := cfg.Viewport
	g.clickRegion = core.NewRect(
		v.ClickRegion.Left,
		v.ClickRegion.Top,
		v.Width-v.ClickRegion.Left-v.ClickRegion.Right,
		v.Height-v.ClickRegion.Top-v.ClickRegion.Bottom,
	)
	g.midY = v.Height / 2
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "missile"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Missile Command"
}

// Reset starts a new game at round 1 with every asset standing.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.clock = core.NewClock(g.src)
	g.tick = 0

	g.assets = NewAssets(g.cfg)
	g.player = NewPool(OwnerPlayer, g.cfg.Missiles.PlayerPool)
	g.enemy = NewPool(OwnerEnemy, g.cfg.Missiles.EnemyPool)
	g.occ = NewOccupancy(g.cfg.Viewport.Width, g.cfg.Viewport.Height)
	g.counters = Counters{Round: 1}
	g.events = nil
	g.held = false

	g.Resize(rc.ScreenW, rc.ScreenH)
	g.startRound(g.clock.Now())
}

// Resize recentres the viewport on a screen of the given size.
// The game clock is held while the viewport does not fit.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	w, h := g.cfg.Viewport.Width, g.cfg.Viewport.Height
	g.tooSmall = screenW < w || screenH < h
	g.origin = core.V(max(0, (screenW-w)/2), max(0, (screenH-h)/2))

	switch {
	case g.tooSmall && !g.clock.Paused():
		g.clock.Pause()
		g.held = true
	case !g.tooSmall && g.held:
		g.clock.Resume()
		g.held = false
	}
}

// Step advances the simulation by one tick. Clicks are in screen coordinates.
//
// Tick order: launch, move friendlies, move hostiles, interceptions,
// fragmentation, hostile spawn, phase transitions.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.events = nil

	if in.Has(core.ActionRestart) && g.phase == PhaseGameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return g.result()
	}

	if in.Has(core.ActionPause) && g.phase != PhaseGameOver && !g.tooSmall {
		if g.clock.Paused() {
			g.clock.Resume()
		} else {
			g.clock.Pause()
		}
	}
	if g.clock.Paused() {
		return g.result()
	}

	now := g.clock.Now()
	switch g.phase {
	case PhaseGameOver:
		return g.result()
	case PhaseRoundComplete:
		if in.Has(core.ActionConfirm) || now.Sub(g.phaseAt) >= g.cfg.Timing.RoundSummary {
			g.nextRound(now)
		}
		return g.result()
	}

	if click, ok := in.Click(); ok && g.phase == PhaseOngoing {
		g.fireAt(click.Sub(g.origin))
	}

	g.moveFriendlies(now)
	g.moveHostiles(now)
	g.intercept(now)
	g.splitMissiles()
	g.spawnEnemy(now)
	g.advancePhase(now)

	return g.result()
}

// moveFriendlies advances friendly missiles and their explosions.
func (g *Game) moveFriendlies(now time.Time) {
	move := now.Sub(g.lastPlayerMove) >= g.playerInterval()
	if move {
		g.lastPlayerMove = now
	}
	g.updatePool(g.player, move, now)
}

// moveHostiles advances hostile missiles and their explosions.
func (g *Game) moveHostiles(now time.Time) {
	move := now.Sub(g.lastEnemyMove) >= g.enemyInterval()
	if move {
		g.lastEnemyMove = now
	}
	g.updatePool(g.enemy, move, now)
}

// updatePool ticks explosions and, when move is set, advances every flying
// missile one cell. A missile that reaches its destination detonates there.
func (g *Game) updatePool(p *Pool, move bool, now time.Time) {
	for i := range p.slots {
		m := &p.slots[i]
		if !m.Active {
			continue
		}
		if m.Exploding() {
			m.tickExplosion(now, g.cfg.Timing.ExplosionFrame)
			continue
		}
		if move {
			m.Advance()
		}
		if m.Arrived() {
			g.impact(m, now)
		}
	}
}

// impact detonates a missile at its destination. A hostile missile landing
// on a standing asset's aim point destroys the asset.
func (g *Game) impact(m *Missile, now time.Time) {
	m.detonate(now)
	m.CanFragment = false
	g.emit(core.EventImpact, m.Curr, int(m.Owner))

	if m.Owner != OwnerEnemy {
		return
	}
	if t, ok := g.assets.DestroyAt(m.Curr); ok {
		idx := t.Index
		if !t.Base {
			idx += len(g.assets.Bases)
		}
		g.emit(core.EventAssetDestroyed, m.Curr, idx)
	}
}

func (g *Game) emit(kind core.EventKind, pos core.Vec, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Pos: pos, Value: value})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.counters.Score,
		Round:    g.counters.Round,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.clock != nil && g.clock.Paused(),
	}
}

// Phase returns the round/game state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Counters returns the score and round tallies.
func (g *Game) Counters() Counters {
	return g.counters
}

// Summary returns the report of the last settled round, or nil mid-round.
func (g *Game) Summary() *Summary {
	return g.summary
}

// Assets returns the asset registry.
func (g *Game) Assets() *Assets {
	return g.assets
}
