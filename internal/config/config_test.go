package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahamed-hazeeb/budget-buddy/internal/common"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		setup   map[string]any
		wantErr error
		check   func(t *testing.T, cfg Config)
	}{
		{
			name: "full configuration",
			setup: map[string]any{
				"api.base_url": "https://budget.example.com/api",
				"api.timeout":  "10s",
				"cache.path":   "/tmp/buddy/cache.db",
				"session.path": "/tmp/buddy/session",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "https://budget.example.com/api", cfg.BaseURL)
				assert.Equal(t, 10*time.Second, cfg.Timeout)
				assert.Equal(t, "/tmp/buddy/cache.db", cfg.CachePath)
				assert.Equal(t, "/tmp/buddy/session", cfg.SessionPath)
			},
		},
		{
			name: "defaults fill local paths and timeout",
			setup: map[string]any{
				"api.base_url": "http://localhost:3000/api",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 30*time.Second, cfg.Timeout)
				assert.Contains(t, cfg.CachePath, filepath.Join("buddy", "cache.db"))
				assert.Contains(t, cfg.SessionPath, filepath.Join("buddy", "session"))
			},
		},
		{
			name:    "missing base URL",
			setup:   map[string]any{},
			wantErr: common.ErrMissingConfig,
		},
		{
			name: "non-http base URL",
			setup: map[string]any{
				"api.base_url": "ftp://budget.example.com",
			},
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			for k, v := range tt.setup {
				viper.Set(k, v)
			}

			cfg, err := Load()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("BUDDY_TEST_DIR", "/var/data")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "tilde prefix", in: "~/buddy/cache.db", want: filepath.Join(home, "buddy", "cache.db")},
		{name: "bare tilde", in: "~", want: home},
		{name: "env var", in: "$BUDDY_TEST_DIR/cache.db", want: "/var/data/cache.db"},
		{name: "plain path untouched", in: "/opt/buddy.db", want: "/opt/buddy.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
