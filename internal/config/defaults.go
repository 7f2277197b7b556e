package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/missile.yaml
var defaultMissileYAML []byte

// DefaultMissileConfig returns the built-in Missile Command configuration.
// It matches defaults/missile.yaml and is used if the embedded file fails to parse.
func DefaultMissileConfig() MissileConfig {
	return MissileConfig{
		Viewport: ViewportConfig{
			Width:       99,
			Height:      45,
			ScoreMargin: 7,
			ClickRegion: MarginsConfig{
				Left:   4,
				Right:  4,
				Top:    3,
				Bottom: 9,
			},
		},
		Assets: AssetsConfig{
			BaseOffsets: []int{1, 45, 89},
			CityOffsets: []int{15, 25, 35, 59, 69, 79},
			AmmoPerBase: 7,
		},
		Missiles: MissilesConfig{
			PlayerPool:      5,
			EnemyPool:       12,
			EnemiesPerRound: 15,
		},
		Timing: TimingConfig{
			PlayerMove:     17 * time.Millisecond,
			EnemyMove:      270 * time.Millisecond,
			EnemyMoveStep:  27 * time.Millisecond,
			EnemyMoveMin:   70 * time.Millisecond,
			FastForward:    17 * time.Millisecond,
			Spawn:          1600 * time.Millisecond,
			ExplosionFrame: 100 * time.Millisecond,
			RoundSummary:   4 * time.Second,
		},
		Scoring: ScoringConfig{
			Interception:  25,
			BaseSurvived:  100,
			AmmoRemaining: 5,
		},
		Colors: ColorsConfig{
			Friendly:             "blue",
			Hostile:              "white",
			DestructionPrimary:   "red",
			DestructionSecondary: "yellow",
			Neutral:              "white",
			Ground:               "yellow",
			City:                 "cyan",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMissileYAML
}
