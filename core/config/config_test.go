package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.InDelta(t, 0.8, cfg.Recon.TargetMatchRate, 1e-9)
	assert.Equal(t, 10, cfg.Recon.MaxIterations)
	assert.Equal(t, time.Duration(0), cfg.Recon.MaxWallTime)
	assert.InDelta(t, 1000.0, cfg.Recon.BalanceTolerance, 1e-9)
	assert.Equal(t, 2, cfg.Recon.TimingWindowDays)
	assert.Empty(t, cfg.Recon.TimingCategories)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("RECON_TARGET_MATCH_RATE", "0.95")
	t.Setenv("RECON_MAX_ITERATIONS", "25")
	t.Setenv("RECON_MAX_WALL_TIME", "30s")
	t.Setenv("RECON_BALANCE_TOLERANCE", "500")
	t.Setenv("RECON_TIMING_WINDOW_DAYS", "5")
	t.Setenv("RECON_TIMING_CATEGORIES", "ATM_SETTLEMENT,CHECK")
	t.Setenv("RECON_SCORE_WORKERS", "4")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.InDelta(t, 0.95, cfg.Recon.TargetMatchRate, 1e-9)
	assert.Equal(t, 25, cfg.Recon.MaxIterations)
	assert.Equal(t, 30*time.Second, cfg.Recon.MaxWallTime)
	assert.InDelta(t, 500.0, cfg.Recon.BalanceTolerance, 1e-9)
	assert.Equal(t, 5, cfg.Recon.TimingWindowDays)
	assert.Equal(t, []string{"ATM_SETTLEMENT", "CHECK"}, cfg.Recon.TimingCategories)
	assert.Equal(t, 4, cfg.Recon.ScoreWorkers)
}
