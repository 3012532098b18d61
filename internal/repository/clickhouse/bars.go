package clickhouse

import (
	"context"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"athena/internal/domain/bars"
	"athena/pkg/errors"
)

// Compile-time check
var _ bars.Repository = (*BarRepository)(nil)

// BarRepository implements bars.Repository using ClickHouse
type BarRepository struct {
	conn driver.Conn
}

// NewBarRepository creates a new daily-bar repository
func NewBarRepository(conn driver.Conn) *BarRepository {
	return &BarRepository{conn: conn}
}

// InsertDaily inserts daily bars in batch
func (r *BarRepository) InsertDaily(ctx context.Context, series []bars.Bar) error {
	if len(series) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, `
		INSERT INTO daily_bars (
			code, date, open, high, low, close, volume, amount, p_change
		)
	`)
	if err != nil {
		return errors.Wrap(err, "failed to prepare batch")
	}

	for _, bar := range series {
		err := batch.Append(
			bar.Code, bar.Date,
			bar.Open, bar.High, bar.Low, bar.Close,
			bar.Volume, bar.Amount, bar.PercentChange,
		)
		if err != nil {
			return errors.Wrap(err, "failed to append bar")
		}
	}

	return batch.Send()
}

// GetDaily retrieves up to limit bars for one instrument, ascending by date
func (r *BarRepository) GetDaily(ctx context.Context, code string, limit int) ([]bars.Bar, error) {
	var series []bars.Bar

	sql := `
		SELECT code, date, open, high, low, close, volume, amount, p_change
		FROM daily_bars
		WHERE code = $1
		ORDER BY date DESC
		LIMIT $2`

	if err := r.conn.Select(ctx, &series, sql, code, limit); err != nil {
		return nil, errors.Wrap(err, "failed to query daily bars")
	}

	reverse(series)
	return series, nil
}

// GetDailyUntil retrieves up to limit bars with date <= end, ascending by date
func (r *BarRepository) GetDailyUntil(ctx context.Context, code string, end time.Time, limit int) ([]bars.Bar, error) {
	var series []bars.Bar

	sql := `
		SELECT code, date, open, high, low, close, volume, amount, p_change
		FROM daily_bars
		WHERE code = $1 AND date <= $2
		ORDER BY date DESC
		LIMIT $3`

	if err := r.conn.Select(ctx, &series, sql, code, end, limit); err != nil {
		return nil, errors.Wrap(err, "failed to query daily bars")
	}

	reverse(series)
	return series, nil
}

// reverse flips a DESC-ordered result into the ascending order the
// derivation engine requires.
func reverse(series []bars.Bar) {
	for i, j := 0, len(series)-1; i < j; i, j = i+1, j-1 {
		series[i], series[j] = series[j], series[i]
	}
}
