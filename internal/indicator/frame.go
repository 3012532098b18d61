package indicator

import (
	"athena/internal/domain/bars"
	"athena/pkg/errors"
)

// Raw input column names. These are pre-seeded from the bar series and may
// be read by any step.
const (
	ColOpen    = "open"
	ColHigh    = "high"
	ColLow     = "low"
	ColClose   = "close"
	ColVolume  = "volume"
	ColAmount  = "amount"
	ColPChange = "p_change"
)

// Frame is an ordered row/column container: the windowed bar series plus
// named derived columns, each exactly one value per row. Columns follow a
// single-assignment discipline, enforced by the pipeline's write
// declarations rather than at Set time.
type Frame struct {
	Bars []bars.Bar

	order []string
	cols  map[string][]float64
}

// NewFrame seeds a frame with the raw columns of the given series.
func NewFrame(series []bars.Bar) *Frame {
	n := len(series)
	open := make([]float64, n)
	high := make([]float64, n)
	low := make([]float64, n)
	closes := make([]float64, n)
	volume := make([]float64, n)
	amount := make([]float64, n)
	pchange := make([]float64, n)
	for i, b := range series {
		open[i] = b.Open
		high[i] = b.High
		low[i] = b.Low
		closes[i] = b.Close
		volume[i] = b.Volume
		amount[i] = b.Amount
		pchange[i] = b.PercentChange
	}

	f := &Frame{Bars: series, cols: make(map[string][]float64)}
	f.Set(ColOpen, open)
	f.Set(ColHigh, high)
	f.Set(ColLow, low)
	f.Set(ColClose, closes)
	f.Set(ColVolume, volume)
	f.Set(ColAmount, amount)
	f.Set(ColPChange, pchange)
	return f
}

// Len returns the row count.
func (f *Frame) Len() int {
	return len(f.Bars)
}

// Set stores a column. The slice length must match the row count.
func (f *Frame) Set(name string, values []float64) {
	if len(values) != len(f.Bars) {
		panic(errors.Newf("column %s has %d values for %d rows", name, len(values), len(f.Bars)))
	}
	if _, ok := f.cols[name]; !ok {
		f.order = append(f.order, name)
	}
	f.cols[name] = values
}

// Col returns the named column, or nil if it was never produced.
func (f *Frame) Col(name string) []float64 {
	return f.cols[name]
}

// Has reports whether the named column exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// Columns returns column names in production order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// Tail returns a frame keeping only the last n rows. n <= 0 or n >= Len
// returns the frame unchanged. Row order is preserved.
func (f *Frame) Tail(n int) *Frame {
	if n <= 0 || n >= f.Len() {
		return f
	}
	start := f.Len() - n
	out := &Frame{
		Bars:  f.Bars[start:],
		order: f.order,
		cols:  make(map[string][]float64, len(f.cols)),
	}
	for name, values := range f.cols {
		out.cols[name] = values[start:]
	}
	return out
}

// Row extracts the given fields of row i into a value slice, substituting 0
// for fields that were never produced.
func (f *Frame) Row(i int, fields []string) []float64 {
	out := make([]float64, len(fields))
	for j, name := range fields {
		if col, ok := f.cols[name]; ok {
			out[j] = col[i]
		}
	}
	return out
}
