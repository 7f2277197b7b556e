package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/joshpbradley/missile-command/internal/audio"
	"github.com/joshpbradley/missile-command/internal/config"
	"github.com/joshpbradley/missile-command/internal/core"
	"github.com/joshpbradley/missile-command/internal/games/missile"
	"github.com/joshpbradley/missile-command/internal/platform/tui"
)

// session holds everything a game run needs, built once from the flags.
type session struct {
	cfg    config.MissileConfig
	source string
	rc     core.RuntimeConfig
	logger *log.Logger
	sound  *audio.Player
	closer io.Closer
}

func newSession() (*session, error) {
	logger, closer, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}

	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, err
	}
	logger.Info("config loaded", "source", source)

	s := &session{
		cfg:    cfg,
		source: source,
		rc:     runtimeConfig(),
		logger: logger,
		closer: closer,
	}

	if flagSound {
		p := audio.New(flagVolume)
		if err := p.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			s.sound = p
		}
	}
	return s, nil
}

// play runs one game until the player quits.
func (s *session) play() error {
	game := missile.New(s.cfg)
	opts := tui.Options{Logger: s.logger}
	if s.sound != nil {
		opts.Sound = s.sound
	}
	return tui.Run(game, s.rc, opts)
}

func (s *session) Close() {
	if s.sound != nil {
		s.sound.Close()
	}
	if s.closer != nil {
		s.closer.Close()
	}
}

// runtimeConfig sizes the screen from the terminal, defaulting to 80x24.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newLogger builds the application logger. The TUI owns the terminal, so
// logs go to path or nowhere.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "missile",
		Level:           lvl,
	})
	return logger, closer, nil
}
