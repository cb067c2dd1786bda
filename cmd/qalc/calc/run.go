package calc

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"qalc/internal/config"
	"qalc/internal/engine"
	"qalc/internal/logging"
	"qalc/internal/prefs"
	"qalc/internal/telemetry"
)

// Run wires the components and drives the interactive calculator until
// the user quits.
func Run(dataDir string, cfg *config.Config, verbose bool) error {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.NewFileLogger(dataDir, cfg.Logging.File, level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	pm := prefs.NewManager(dataDir)
	if err := pm.Load(); err != nil {
		logger.Warn("preferences unavailable", zap.Error(err))
	}

	var tracker *telemetry.Tracker
	if cfg.Telemetry.Enabled {
		tracker, err = telemetry.NewTracker(dataDir)
		if err != nil {
			return fmt.Errorf("start telemetry: %w", err)
		}
		defer func() { _ = tracker.Close() }()
	}

	// The last-session base wins over the configured default.
	base := cfg.Base()
	if b, err := engine.ParseBase(pm.Get().LastBase); err == nil {
		base = b
	}

	opts := []engine.Option{
		engine.WithHistoryLimit(cfg.HistorySize),
		engine.WithBase(base),
	}
	if tracker != nil {
		opts = append(opts, engine.WithObserver(tracker))
	}
	calcEngine := engine.New(opts...)

	m := NewModel(Deps{
		Calc:    calcEngine,
		Config:  cfg,
		Prefs:   pm,
		Tracker: tracker,
		Logger:  logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Live-reload presentation settings when config.yaml changes.
	watcher, err := config.NewWatcher(filepath.Join(dataDir, config.FileName), func(c *config.Config) {
		p.Send(configReloadedMsg{cfg: c})
	})
	if err != nil {
		logger.Warn("config watcher unavailable", zap.Error(err))
	} else if err := watcher.Start(); err != nil {
		logger.Warn("config watcher failed to start", zap.Error(err))
	} else {
		defer func() { _ = watcher.Stop() }()
	}

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	// Snapshot session state for next start.
	if fm, ok := finalModel.(Model); ok {
		pm.Update(func(pr *prefs.Preferences) {
			pr.LastBase = fm.Calculator().ActiveBase().String()
			if fm.Mode().calculatorMode() {
				pr.LastMode = fm.Mode().String()
			}
		})
	}
	if err := pm.Save(); err != nil {
		logger.Warn("failed to save preferences", zap.Error(err))
	}
	return nil
}
