package indicator

import (
	"time"

	"athena/internal/domain/bars"
)

// LatestRow reduces a bar series to the single latest derived row for one
// instrument as of a date. fields is the caller-supplied ordered column
// list, so a display-layer schema can drive the extraction without the
// engine knowing about it.
//
// The contract is best-effort, never an error: fewer than 2 bars, an empty
// window, or a failed run all produce a row with the identity fields set
// and every requested field zero. lookback bounds the computation; fields
// whose look-back exceeds it come back degraded to zero (see Options).
func LatestRow(series []bars.Bar, asOf time.Time, code string, fields []string, lookback int) bars.IndicatorRow {
	row := bars.IndicatorRow{
		Code:    code,
		Date:    asOf,
		Columns: fields,
		Values:  make([]float64, len(fields)),
	}
	if len(series) <= 1 {
		return row
	}

	frame, err := Default().Compute(series, Options{
		EndDate:      asOf,
		CalcWindow:   lookback,
		OutputWindow: 1,
	})
	if err != nil {
		return row
	}

	values := frame.Row(frame.Len()-1, fields)
	for i, v := range values {
		// Residual NaN/Inf defense on top of the per-column passes.
		row.Values[i] = Sanitize(v)
	}
	return row
}
