package bars

import (
	"context"
	"time"
)

// Repository defines daily-bar access (ClickHouse)
type Repository interface {
	// GetDaily returns up to limit bars for one instrument, ascending by date
	GetDaily(ctx context.Context, code string, limit int) ([]Bar, error)

	// GetDailyUntil returns up to limit bars with date <= end, ascending by date
	GetDailyUntil(ctx context.Context, code string, end time.Time, limit int) ([]Bar, error)
}

// IndicatorStore persists derived indicator frames, keyed by (date, code)
type IndicatorStore interface {
	InsertIndicatorRows(ctx context.Context, rows []IndicatorRow) error
}

// PatternStore persists pattern classification results, keyed by (date, code)
type PatternStore interface {
	InsertPatternRows(ctx context.Context, rows []PatternRow) error
}
