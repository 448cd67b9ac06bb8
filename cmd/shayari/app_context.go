package main

import (
	"fmt"
	"net/http"

	"github.com/alexisbeaulieu97/shayari/internal/config"
	"github.com/alexisbeaulieu97/shayari/internal/generation"
	"github.com/alexisbeaulieu97/shayari/internal/logger"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config    *config.Config
	Logger    *logger.Logger
	Generator *generation.Client
}

func newAppContext(cfg *config.Config, log *logger.Logger) *AppContext {
	client := generation.New(generation.Options{
		Endpoint:   cfg.Endpoint,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		UserAgent:  "shayari/" + version,
		Logger:     log,
	})

	return &AppContext{
		Config:    cfg,
		Logger:    log,
		Generator: client,
	}
}

// loadConfig resolves the layered configuration for a command.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(config.LoadOptions{
		Path:      flags.configPath,
		DotEnv:    ".env",
		Overrides: flags.overrides(),
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
