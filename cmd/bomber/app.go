package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-bomber/internal/config"
	"github.com/vovakirdan/maze-bomber/internal/maze/levels"
	"github.com/vovakirdan/maze-bomber/internal/maze/levels/formats"
	"github.com/vovakirdan/maze-bomber/internal/platform/tui"
	"github.com/vovakirdan/maze-bomber/internal/storage"
)

// app holds what every command needs after flags are parsed.
type app struct {
	cfg    config.Config
	logger *log.Logger
}

// newApp loads the configuration, applies the global flags and builds the logger.
// A broken config file is reported and the defaults are used.
func newApp() *app {
	cfg, cfgErr := config.Load(flagConfig)
	applyFlags(&cfg)

	logger := newLogger(cfg.Log)
	if cfgErr != nil {
		logger.Warn("using default configuration", "error", cfgErr)
	}

	return &app{cfg: cfg, logger: logger}
}

// applyFlags overrides config values with explicitly set global flags.
func applyFlags(cfg *config.Config) {
	if flagDBPath != "" {
		cfg.History.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagNoHistory {
		cfg.History.Enabled = false
	}
}

func newLogger(lc config.LogConfig) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: lc.Timestamps,
		Prefix:          "bomber",
	})
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", lc.Level)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loader returns a maze loader configured with the decode policy.
func (a *app) loader(root string) *levels.Loader {
	opts := formats.DefaultOptions()
	policy, err := formats.ParsePolicy(a.cfg.Decode.UnknownTokens)
	if err != nil {
		a.logger.Warn("unknown decode policy, using strict", "policy", a.cfg.Decode.UnknownTokens)
	} else {
		opts.Unknown = policy
	}

	l := levels.NewLoader(root, opts)
	l.Logger = a.logger
	return l
}

// historyStore opens the configured history database.
func (a *app) historyStore() (*storage.Store, error) {
	path, err := config.ExpandHome(a.cfg.History.DBPath)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("opening history", "path", path)
	return storage.Open(path)
}

// openHistory opens the history store, or returns nil when history is
// disabled or unavailable.
func (a *app) openHistory() *storage.Store {
	if !a.cfg.History.Enabled {
		return nil
	}
	store, err := a.historyStore()
	if err != nil {
		a.logger.Warn("history disabled", "error", err)
		return nil
	}
	return store
}

// theme picks the configured theme, or the plain theme when stdout is not a terminal.
func (a *app) theme(isTTY bool) tui.Theme {
	if !isTTY {
		return tui.PlainTheme()
	}
	return tui.ThemeByName(a.cfg.Theme)
}
