package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"qalc/cmd/qalc/ui"
	"qalc/internal/logging"
	"qalc/internal/telemetry"
)

// statsCmd prints accumulated operation usage statistics.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show accumulated operation usage statistics",
	Long: `Prints the telemetry aggregates collected by interactive sessions.
Telemetry is opt-in; enable it under telemetry.enabled in config.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := logging.NewStderrLogger(verbose)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		tracker, err := telemetry.NewTracker(dataDir)
		if err != nil {
			return err
		}
		logger.Debug("loaded telemetry", zap.String("data_dir", dataDir))

		styles := ui.NewStyles(ui.ThemeFromName(cfg.Theme))
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderStats(tracker.Stats(), styles))
		if !cfg.Telemetry.Enabled {
			fmt.Fprintln(cmd.OutOrStdout(), "\nTelemetry is currently disabled; stats above are from past sessions.")
		}
		return nil
	},
}
