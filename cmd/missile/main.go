// missile is Missile Command for the terminal: defend six cities from a
// falling barrage by launching interceptors with the mouse.
//
// Usage:
//
//	missile                  - Title screen, then play
//	missile play             - Start a game directly
//	missile controls         - Print the controls and scoring table
//	missile config           - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Game config YAML (default: ~/.missile/configs/missile.yaml)
//	--log-file <path>     - Write logs to a file (default: discarded)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--sound               - Play sound effects
//	--volume <0-1>        - Sound volume (default: 0.5)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
	flagSound    bool
	flagVolume   float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "missile",
	Short: "Missile Command in your terminal",
	Long: `Missile Command: hostile missiles rain down on your cities and
bases. Click anywhere above the ground to launch an interceptor from the
nearest base; its explosion destroys any missile that flies into it.

Without a subcommand the title screen is shown. After a game ends you
return to the title screen.

Examples:
  missile
  missile play --seed 42
  missile play --sound --log-file missile.log --log-level debug
  missile config > my-missile.yaml`,
	SilenceUsage: true,
	RunE:         runTitle,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (logs are discarded when empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume between 0 and 1")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(controlsCmd)
	rootCmd.AddCommand(configCmd)
}
