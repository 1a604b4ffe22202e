package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 70.0, cfg.Threshold)
	assert.Equal(t, "speechscore", cfg.Scorer.Vendor)
	assert.Equal(t, 30*time.Second, cfg.Scorer.Timeout)
	assert.Equal(t, time.Hour, cfg.Refresh.Interval)
	assert.Empty(t, cfg.Scorer.APIKey)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SAYRIGHT_ENV", "production")
	t.Setenv("SAYRIGHT_DB", "/tmp/sayright-test.db")
	t.Setenv("SAYRIGHT_SCORER_BASE_URL", "https://scoring.example.com")
	t.Setenv("SAYRIGHT_SCORER_API_KEY", "sk-test")
	t.Setenv("SAYRIGHT_THRESHOLD", "80")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "/tmp/sayright-test.db", cfg.DBPath)
	assert.Equal(t, "https://scoring.example.com", cfg.Scorer.BaseURL)
	assert.Equal(t, "sk-test", cfg.Scorer.APIKey)
	assert.Equal(t, 80.0, cfg.Threshold)
}

func TestLoadRejectsBadThreshold(t *testing.T) {
	t.Setenv("SAYRIGHT_THRESHOLD", "140")

	_, err := Load()
	require.Error(t, err)
}
