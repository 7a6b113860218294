// Package config resolves backend connection settings from the environment
// and the user's roomlog config file.
package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/roomlog/roomlog/internal/logger"
)

// Config holds everything needed to talk to one roomlog backend.
type Config struct {
	Server   string        `envconfig:"SERVER"`
	Session  string        `envconfig:"SESSION"`
	PageSize int           `envconfig:"PAGE_SIZE" default:"12"`
	Timeout  time.Duration `envconfig:"TIMEOUT" default:"15s"`
}

// Load reads ROOMLOG_* environment variables, then fills any missing server
// or session value from the config file.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("roomlog", &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment config: %w", err)
	}

	if cfg.Server == "" || cfg.Session == "" {
		fileServer, fileSession := readConfigFile()

		if cfg.Server == "" {
			cfg.Server = fileServer
		}

		if cfg.Session == "" {
			cfg.Session = fileSession
		}
	}

	if cfg.PageSize <= 0 {
		cfg.PageSize = 12
	}

	return &cfg, nil
}

// Path returns the config file location, honoring ROOMLOG_CONFIG.
func Path() string {
	if override := strings.TrimSpace(os.Getenv("ROOMLOG_CONFIG")); override != "" {
		return override
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "roomlog", "config")
}

// readConfigFile parses "key = value" lines from the config file. Missing
// or unreadable files are not an error; the flags still win.
func readConfigFile() (server, session string) {
	path := Path()
	if path == "" {
		return "", ""
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log.Debugf("Could not read config file %s: %v", path, err)
		}

		return "", ""
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "server":
			server = value
		case "session":
			session = value
		}
	}

	return server, session
}
