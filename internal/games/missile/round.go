package missile

import (
	"time"

	"github.com/joshpbradley/missile-command/internal/core"
)

// Phase is the round/game state.
type Phase int

const (
	PhaseOngoing       Phase = iota // Round in progress, clicks accepted
	PhaseRoundEnding                // Winding down, waiting for missiles to settle
	PhaseRoundComplete              // Round cleared, summary on screen
	PhaseGameOver                   // All cities lost
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseOngoing:
		return "ongoing"
	case PhaseRoundEnding:
		return "round_ending"
	case PhaseRoundComplete:
		return "round_complete"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Counters holds the score and the per-round tallies.
type Counters struct {
	Score            int
	Round            int
	EnemiesFired     int // Hostile missiles launched this round, fragments included
	EnemiesDestroyed int // Hostile missiles intercepted this round
}

// Summary is the end-of-round report.
type Summary struct {
	Round          int
	Intercepted    int
	BasesSurvived  int
	AmmoRemaining  int
	CitiesSurvived int
	Bonus          int  // Points for surviving bases and unused ammo
	Score          int  // Score with the bonus applied
	GameOver       bool // The report closes the game rather than a round
}

// enemyInterval is the hostile movement interval for the current round.
func (g *Game) enemyInterval() time.Duration {
	t := g.cfg.Timing
	d := max(t.EnemyMove-t.EnemyMoveStep*time.Duration(g.counters.Round-1), t.EnemyMoveMin)
	if g.phase == PhaseRoundEnding {
		return min(d, t.FastForward)
	}
	return d
}

// playerInterval is the friendly movement interval.
func (g *Game) playerInterval() time.Duration {
	t := g.cfg.Timing
	if g.phase == PhaseRoundEnding {
		return min(t.PlayerMove, t.FastForward)
	}
	return t.PlayerMove
}

// roundOver reports whether an ongoing round should start winding down.
func (g *Game) roundOver() bool {
	allFired := g.counters.EnemiesFired >= g.cfg.Missiles.EnemiesPerRound
	switch {
	case !g.assets.CanAnyFire():
		return true
	case g.assets.CitiesAlive() == 0:
		return true
	case allFired && g.enemy.ActiveCount() == 0:
		return true
	case g.assets.AmmoRemaining() == 0 && g.player.ActiveCount() == 0:
		return true
	}
	return false
}

// quiescent reports whether the round's barrage is spent and every missile has settled.
func (g *Game) quiescent() bool {
	return g.counters.EnemiesFired >= g.cfg.Missiles.EnemiesPerRound &&
		g.enemy.ActiveCount() == 0 &&
		g.player.ActiveCount() == 0
}

// advancePhase applies the Ongoing -> RoundEnding -> RoundComplete/GameOver transitions.
func (g *Game) advancePhase(now time.Time) {
	if g.phase == PhaseOngoing && g.roundOver() {
		g.phase = PhaseRoundEnding
		g.phaseAt = now
		g.emit(core.EventRoundEnding, core.Vec{}, g.counters.Round)
	}
	if g.phase != PhaseRoundEnding || !g.quiescent() {
		return
	}

	g.summary = g.summarize()
	g.phaseAt = now
	if g.summary.GameOver {
		g.phase = PhaseGameOver
		g.counters.Score = g.summary.Score
		g.emit(core.EventGameOver, core.Vec{}, g.counters.Score)
		return
	}
	g.phase = PhaseRoundComplete
	g.emit(core.EventRoundComplete, core.Vec{}, g.summary.Bonus)
}

// summarize builds the report for the round that just settled.
func (g *Game) summarize() *Summary {
	s := &Summary{
		Round:          g.counters.Round,
		Intercepted:    g.counters.EnemiesDestroyed,
		BasesSurvived:  g.assets.BasesAlive(),
		AmmoRemaining:  g.assets.AmmoRemaining(),
		CitiesSurvived: g.assets.CitiesAlive(),
	}
	sc := g.cfg.Scoring
	s.Bonus = sc.BaseSurvived*s.BasesSurvived + sc.AmmoRemaining*s.AmmoRemaining
	s.Score = g.counters.Score + s.Bonus
	s.GameOver = s.CitiesSurvived == 0
	return s
}

// nextRound applies the round bonus and starts the following round with
// rebuilt bases. Destroyed cities stay destroyed.
func (g *Game) nextRound(now time.Time) {
	if g.summary != nil {
		g.counters.Score += g.summary.Bonus
	}
	g.counters.Round++
	g.startRound(now)
	g.emit(core.EventRoundStart, core.Vec{}, g.counters.Round)
}

// startRound clears the pools and per-round state.
func (g *Game) startRound(now time.Time) {
	g.player.Reset()
	g.enemy.Reset()
	g.assets.ResetBases()
	g.counters.EnemiesFired = 0
	g.counters.EnemiesDestroyed = 0
	g.summary = nil
	g.phase = PhaseOngoing
	g.phaseAt = now
	g.lastSpawn = now.Add(-g.cfg.Timing.Spawn)
	g.lastPlayerMove = now
	g.lastEnemyMove = now
}
