package main

import (
	"github.com/spf13/cobra"

	"github.com/joshpbradley/missile-command/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game without the title screen",
	Long: `Start a game of Missile Command directly.

Controls:
  Left click   - Launch an interceptor at the cursor
  P/Esc        - Pause
  Enter/Space  - Continue after a round summary
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot to ~/.missile/screenshots
  Q/Ctrl+C     - Quit

Examples:
  missile play
  missile play --seed 7 --fps 30
  missile play --config ./my-missile.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	return s.play()
}

// runTitle loops between the title screen and the game until the player quits.
func runTitle(_ *cobra.Command, _ []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	for {
		res, err := tui.RunTitle(s.rc)
		if err != nil {
			return err
		}
		s.rc = res.Config

		switch res.Choice {
		case tui.ChoicePlay:
			if err := s.play(); err != nil {
				return err
			}
		case tui.ChoiceControls:
			goBack, err := tui.RunControls(s.cfg, s.rc.ScreenW, s.rc.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
		default:
			s.logger.Info("bye")
			return nil
		}
	}
}
