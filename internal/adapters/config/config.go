package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"athena/pkg/errors"
)

type Config struct {
	App           AppConfig
	ClickHouse    ClickHouseConfig
	Analysis      AnalysisConfig
	ErrorTracking ErrorTrackingConfig
	Workers       WorkerConfig
	Metrics       MetricsConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"athena"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

type ClickHouseConfig struct {
	Host     string `envconfig:"CLICKHOUSE_HOST" required:"true"`
	Port     int    `envconfig:"CLICKHOUSE_PORT" default:"9000"`
	User     string `envconfig:"CLICKHOUSE_USER" default:"default"`
	Password string `envconfig:"CLICKHOUSE_PASSWORD"`
	Database string `envconfig:"CLICKHOUSE_DB" default:"marketdata"`
}

// AnalysisConfig controls the derivation engine defaults.
// OutputWindow bounds the rows kept per batch run; SnapshotLookback is the
// calc window for single-row snapshots. Fields whose look-back exceeds
// SnapshotLookback (ma200, cci_84) come back as zero in snapshot mode.
type AnalysisConfig struct {
	Symbols          []string `envconfig:"ANALYSIS_SYMBOLS" default:"000001,600000"`
	OutputWindow     int      `envconfig:"ANALYSIS_OUTPUT_WINDOW" default:"120"`
	SnapshotLookback int      `envconfig:"ANALYSIS_SNAPSHOT_LOOKBACK" default:"90"`
	HistoryLimit     int      `envconfig:"ANALYSIS_HISTORY_LIMIT" default:"500"`
}

type ErrorTrackingConfig struct {
	Enabled     bool   `envconfig:"ERROR_TRACKING_ENABLED" default:"false"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"production"`
}

// WorkerConfig contains intervals for the background workers
type WorkerConfig struct {
	AnalysisInterval       time.Duration `envconfig:"WORKER_ANALYSIS_INTERVAL" default:"10m"`
	AnalysisEnabled        bool          `envconfig:"WORKER_ANALYSIS_ENABLED" default:"true"`
	AnalysisMaxConcurrency int           `envconfig:"WORKER_ANALYSIS_MAX_CONCURRENCY" default:"8"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Addr    string `envconfig:"METRICS_ADDR" default:":9091"`
}

// Load reads configuration from environment variables
// It first tries to load .env file (useful for local development)
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process env config")
	}

	return &cfg, nil
}
