package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CLICKHOUSE_HOST", "localhost")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "athena", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "localhost", cfg.ClickHouse.Host)
	assert.Equal(t, 9000, cfg.ClickHouse.Port)
	assert.Equal(t, "marketdata", cfg.ClickHouse.Database)

	assert.Equal(t, []string{"000001", "600000"}, cfg.Analysis.Symbols)
	assert.Equal(t, 120, cfg.Analysis.OutputWindow)
	assert.Equal(t, 90, cfg.Analysis.SnapshotLookback)
	assert.Equal(t, 500, cfg.Analysis.HistoryLimit)

	assert.Equal(t, 10*time.Minute, cfg.Workers.AnalysisInterval)
	assert.True(t, cfg.Workers.AnalysisEnabled)
	assert.Equal(t, 8, cfg.Workers.AnalysisMaxConcurrency)

	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9091", cfg.Metrics.Addr)
	assert.False(t, cfg.ErrorTracking.Enabled)
}

func TestLoad_MissingRequiredHost(t *testing.T) {
	t.Setenv("CLICKHOUSE_HOST", "placeholder") // registers restore
	require.NoError(t, os.Unsetenv("CLICKHOUSE_HOST"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CLICKHOUSE_HOST", "ch.internal")
	t.Setenv("ANALYSIS_SYMBOLS", "600519,000858,601318")
	t.Setenv("ANALYSIS_OUTPUT_WINDOW", "250")
	t.Setenv("WORKER_ANALYSIS_INTERVAL", "1h")
	t.Setenv("WORKER_ANALYSIS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"600519", "000858", "601318"}, cfg.Analysis.Symbols)
	assert.Equal(t, 250, cfg.Analysis.OutputWindow)
	assert.Equal(t, time.Hour, cfg.Workers.AnalysisInterval)
	assert.False(t, cfg.Workers.AnalysisEnabled)
}
