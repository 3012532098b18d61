package pattern

import (
	"time"

	"athena/internal/domain/bars"
	"athena/internal/indicator"
	"athena/pkg/errors"
	"athena/pkg/logger"
)

// Func is one candlestick classifier: four price arrays in, one signal code
// per row out. Codes are -100 (bearish), 0 (no signal), 100 (bullish).
type Func func(open, high, low, close []float64) []int32

// Classifier is a named classifier registered in a Catalog.
type Classifier struct {
	Name      string
	Recognize Func
}

// Catalog is an ordered classifier set. Order fixes the column order of
// results.
type Catalog []Classifier

// Names returns the classifier names in catalog order.
func (c Catalog) Names() []string {
	out := make([]string, len(c))
	for i, cl := range c {
		out[i] = cl.Name
	}
	return out
}

// Result is one classification run: the windowed bars plus one signal
// column per classifier that succeeded. A column whose classifier failed is
// absent and reads as 0 everywhere.
type Result struct {
	Bars []bars.Bar

	columns []string
	signals map[string][]int32
	failed  []string
}

// Columns returns the successfully produced columns in catalog order.
func (r *Result) Columns() []string {
	return r.columns
}

// Failed returns the names of classifiers that errored during the run.
func (r *Result) Failed() []string {
	return r.failed
}

// Signal returns the code of one classifier at one row; absent columns are
// no-signal.
func (r *Result) Signal(name string, row int) int32 {
	col, ok := r.signals[name]
	if !ok {
		return 0
	}
	return col[row]
}

// Row extracts row i as a PatternRow keyed by the given instrument code.
// Every catalog column appears, with absent classifiers reading as 0.
func (r *Result) Row(i int, code string, columns []string) bars.PatternRow {
	row := bars.PatternRow{
		Code:    code,
		Date:    r.Bars[i].Date,
		Columns: columns,
		Signals: make([]int32, len(columns)),
	}
	for j, name := range columns {
		row.Signals[j] = r.Signal(name, i)
	}
	return row
}

// Compute runs every classifier of the catalog independently over the
// windowed series. One failing classifier (panic or wrong-length output)
// drops only its own column; the batch always completes. Windowing follows
// the indicator engine: end-date filter, calc-window slice, then the
// output-window tail on the result.
func Compute(series []bars.Bar, catalog Catalog, opts indicator.Options) (*Result, error) {
	windowed := indicator.SliceBars(series, opts.EndDate, opts.CalcWindow)
	if len(windowed) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyWindow, "no bars after windowing")
	}

	n := len(windowed)
	open := make([]float64, n)
	high := make([]float64, n)
	low := make([]float64, n)
	closes := make([]float64, n)
	for i, b := range windowed {
		open[i] = b.Open
		high[i] = b.High
		low[i] = b.Low
		closes[i] = b.Close
	}

	res := &Result{
		Bars:    windowed,
		signals: make(map[string][]int32, len(catalog)),
	}
	for _, cl := range catalog {
		col, err := runClassifier(cl, open, high, low, closes)
		if err != nil {
			logger.Get().Warnw("pattern classifier failed, column dropped",
				"classifier", cl.Name, "error", err)
			res.failed = append(res.failed, cl.Name)
			continue
		}
		res.columns = append(res.columns, cl.Name)
		res.signals[cl.Name] = col
	}

	if opts.OutputWindow > 0 && opts.OutputWindow < n {
		start := n - opts.OutputWindow
		res.Bars = res.Bars[start:]
		for name, col := range res.signals {
			res.signals[name] = col[start:]
		}
	}
	return res, nil
}

// runClassifier isolates one classifier call, converting panics and
// malformed output into an error instead of aborting the batch.
func runClassifier(cl Classifier, open, high, low, closes []float64) (col []int32, err error) {
	defer func() {
		if r := recover(); r != nil {
			col = nil
			err = errors.Wrapf(errors.ErrClassifierFailed, "%s panicked: %v", cl.Name, r)
		}
	}()

	col = cl.Recognize(open, high, low, closes)
	if len(col) != len(closes) {
		return nil, errors.Wrapf(errors.ErrClassifierFailed,
			"%s returned %d codes for %d rows", cl.Name, len(col), len(closes))
	}
	return col, nil
}

// Latest reduces a series to the newest classification row for one
// instrument as of a date. It signals absence (not a zero row) when fewer
// than 2 bars exist, when the run fails, or when every classifier is silent
// on the final row.
func Latest(series []bars.Bar, asOf time.Time, code string, catalog Catalog, lookback int) (bars.PatternRow, bool) {
	if len(series) <= 1 {
		return bars.PatternRow{}, false
	}

	res, err := Compute(series, catalog, indicator.Options{
		EndDate:      asOf,
		CalcWindow:   lookback,
		OutputWindow: 1,
	})
	if err != nil {
		return bars.PatternRow{}, false
	}

	last := len(res.Bars) - 1
	hasSignal := false
	for _, name := range res.columns {
		if res.Signal(name, last) != 0 {
			hasSignal = true
			break
		}
	}
	if !hasSignal {
		return bars.PatternRow{}, false
	}
	return res.Row(last, code, catalog.Names()), true
}
