// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
	"github.com/ahamed-hazeeb/budget-buddy/internal/query"
	"github.com/ahamed-hazeeb/budget-buddy/internal/session"
)

// Config carries everything the client needs to talk to the backend
// and find its local state.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	CachePath   string
	SessionPath string
}

// Load assembles the client configuration from Viper, applying path
// expansion and falling back to the standard XDG locations for local
// state.
func Load() (Config, error) {
	cfg := Config{
		BaseURL: strings.TrimSpace(viper.GetString("api.base_url")),
		Timeout: viper.GetDuration("api.timeout"),
	}

	if cfg.BaseURL == "" {
		return Config{}, fmt.Errorf("%w: api.base_url", common.ErrMissingConfig)
	}
	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		return Config{}, fmt.Errorf("%w: api.base_url must be an http(s) URL, got %q", common.ErrInvalidConfig, cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cfg.CachePath = ExpandPath(viper.GetString("cache.path"))
	if cfg.CachePath == "" {
		path, err := query.DefaultCachePath()
		if err != nil {
			return Config{}, err
		}
		cfg.CachePath = path
	}

	cfg.SessionPath = ExpandPath(viper.GetString("session.path"))
	if cfg.SessionPath == "" {
		path, err := session.DefaultDir()
		if err != nil {
			return Config{}, err
		}
		cfg.SessionPath = path
	}

	return cfg, nil
}

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	// First expand tilde if present
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	// Then expand environment variables
	return os.ExpandEnv(path)
}
