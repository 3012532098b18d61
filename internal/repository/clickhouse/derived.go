package clickhouse

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"athena/internal/domain/bars"
	"athena/pkg/errors"
)

// Compile-time checks
var (
	_ bars.IndicatorStore = (*DerivedRepository)(nil)
	_ bars.PatternStore   = (*DerivedRepository)(nil)
)

// DerivedRepository persists derived indicator frames and pattern signal
// rows. Both tables are keyed by (date, code) and use a map column for the
// variable field set, so adding a derived field never needs a migration.
type DerivedRepository struct {
	conn driver.Conn
}

// NewDerivedRepository creates a new derived-data repository
func NewDerivedRepository(conn driver.Conn) *DerivedRepository {
	return &DerivedRepository{conn: conn}
}

// InsertIndicatorRows inserts derived indicator rows in batch
func (r *DerivedRepository) InsertIndicatorRows(ctx context.Context, rows []bars.IndicatorRow) error {
	if len(rows) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, `
		INSERT INTO indicator_rows (code, date, values)
	`)
	if err != nil {
		return errors.Wrap(err, "failed to prepare batch")
	}

	for _, row := range rows {
		values := make(map[string]float64, len(row.Columns))
		for i, name := range row.Columns {
			values[name] = row.Values[i]
		}
		if err := batch.Append(row.Code, row.Date, values); err != nil {
			return errors.Wrap(err, "failed to append indicator row")
		}
	}

	return batch.Send()
}

// InsertPatternRows inserts pattern signal rows in batch
func (r *DerivedRepository) InsertPatternRows(ctx context.Context, rows []bars.PatternRow) error {
	if len(rows) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, `
		INSERT INTO pattern_rows (code, date, signals)
	`)
	if err != nil {
		return errors.Wrap(err, "failed to prepare batch")
	}

	for _, row := range rows {
		signals := make(map[string]int32, len(row.Columns))
		for i, name := range row.Columns {
			signals[name] = row.Signals[i]
		}
		if err := batch.Append(row.Code, row.Date, signals); err != nil {
			return errors.Wrap(err, "failed to append pattern row")
		}
	}

	return batch.Send()
}
