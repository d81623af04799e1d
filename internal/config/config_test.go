package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Run from a temp dir so a developer's .env cannot leak into the test.
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "apiResponses", cfg.OutputDir)
	assert.Zero(t, cfg.HTTPTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OUTPUT_DIR", "captures")
	t.Setenv("HTTP_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "captures", cfg.OutputDir)
	assert.Equal(t, "30s", cfg.HTTPTimeout.String())
}

func TestLoadInvalidTimeout(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_TIMEOUT", "not-a-duration")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}

func TestVersionDir(t *testing.T) {
	cfg := &Config{OutputDir: "apiResponses"}

	assert.Equal(t, filepath.Join("apiResponses", "v1"), cfg.VersionDir("v1"))
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *Config
		contains []string
	}{
		{
			name:     "no timeout",
			cfg:      &Config{OutputDir: "apiResponses"},
			contains: []string{"apiResponses", "(none)"},
		},
		{
			name:     "explicit timeout",
			cfg:      &Config{OutputDir: "out", HTTPTimeout: 5 * time.Second},
			contains: []string{"out", "5s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.cfg.String()
			for _, want := range tt.contains {
				assert.Contains(t, s, want)
			}
		})
	}
}
