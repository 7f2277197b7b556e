package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshpbradley/missile-command/internal/config"
	"github.com/joshpbradley/missile-command/internal/platform/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a game would use, as YAML.

The source is searched in order: --config, ~/.missile/configs/missile.yaml,
./configs/missile.yaml, then the built-in defaults.

Examples:
  missile config
  missile config --config ./my-missile.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var controlsCmd = &cobra.Command{
	Use:   "controls",
	Short: "Print the controls and scoring rules",
	Args:  cobra.NoArgs,
	RunE:  runControls,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}

func runControls(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, row := range tui.ControlRows(cfg) {
		fmt.Fprintf(out, "  %-18s %s\n", row[0], row[1])
	}
	return nil
}
