package cmd

import (
	"fmt"

	clog "github.com/charmbracelet/log"

	"github.com/ziadkadry99/slidejet/internal/config"
	"github.com/ziadkadry99/slidejet/internal/deck"
	"github.com/ziadkadry99/slidejet/internal/hub"
	"github.com/ziadkadry99/slidejet/internal/logging"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `slidejet init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the logger for cfg; --verbose forces debug output.
func newLogger(cfg *config.Config) *clog.Logger {
	level := string(cfg.LogLevel)
	if verbose {
		level = string(config.LogDebug)
	}
	return logging.New(level)
}

// createHub wires the resolver, loader and hub for cfg.
func createHub(cfg *config.Config, logger *clog.Logger, liveReload bool) (*hub.Hub, *deck.Loader, error) {
	resolver, err := deck.NewResolver(cfg.RepoRoot)
	if err != nil {
		return nil, nil, err
	}
	loader := deck.NewLoader(resolver)

	h, err := hub.New(hub.Options{
		Loader:     loader,
		AppDir:     cfg.AppDir,
		BaseURL:    cfg.BaseURL,
		Logger:     logger,
		LiveReload: liveReload,
	})
	if err != nil {
		return nil, nil, err
	}
	return h, loader, nil
}
