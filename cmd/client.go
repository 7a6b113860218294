package cmd

import (
	"github.com/roomlog/roomlog/internal/api"
	"github.com/roomlog/roomlog/internal/config"
	"github.com/roomlog/roomlog/internal/logger"
)

// loadConfig resolves settings with flags winning over the environment and
// config file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if serverFlag != "" {
		cfg.Server = serverFlag
	}

	if sessionFlag != "" {
		cfg.Session = sessionFlag
	}

	return cfg, nil
}

// buildClient creates the API client from the resolved configuration.
func buildClient() (*api.Client, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	client, err := api.NewClient(cfg.Server, cfg.Session, cfg.Timeout)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Session == "" {
		logger.Log.Debug("No session credential configured, requests are anonymous")
	}

	return client, cfg, nil
}
