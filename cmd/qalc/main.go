package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"qalc/cmd/qalc/calc"
	"qalc/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "qalc",
	Short: "qalc - a terminal calculator",
	Long: `qalc is a terminal calculator with basic, scientific and programmer
modes, bounded calculation history and opt-in local usage telemetry.

Run without arguments to start the interactive calculator. One-shot
subcommands (convert, fn, stats) are available for scripting.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return calc.Run(dataDir, cfg, verbose)
	},
}

// loadConfig resolves the data directory and configuration, honoring
// the --config override.
func loadConfig() (string, *config.Config, error) {
	dataDir, err := config.DataDir()
	if err != nil {
		return "", nil, err
	}
	path := configPath
	if path == "" {
		path = filepath.Join(dataDir, config.FileName)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return "", nil, fmt.Errorf("load config: %w", err)
	}
	return dataDir, cfg, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (default: user config dir)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(fnCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
