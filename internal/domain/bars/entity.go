package bars

import "time"

// Bar is one instrument's daily trading summary.
// Series handed to the engine must be strictly ascending by Date with no
// duplicates; the engine assumes this and never reorders.
type Bar struct {
	Code          string    `ch:"code"`
	Date          time.Time `ch:"date"`
	Open          float64   `ch:"open"`
	High          float64   `ch:"high"`
	Low           float64   `ch:"low"`
	Close         float64   `ch:"close"`
	Volume        float64   `ch:"volume"`
	Amount        float64   `ch:"amount"`
	PercentChange float64   `ch:"p_change"`
}

// IndicatorRow is one derived row keyed by (date, code), carrying the
// indicator columns produced for that bar. Values iterates in Columns order.
type IndicatorRow struct {
	Code    string
	Date    time.Time
	Columns []string
	Values  []float64
}

// Value returns the named column of the row, or 0 if absent.
func (r IndicatorRow) Value(name string) float64 {
	for i, c := range r.Columns {
		if c == name {
			return r.Values[i]
		}
	}
	return 0
}

// PatternRow is one pattern-classification row keyed by (date, code).
// Signals holds one {-100, 0, 100} code per classifier in Columns order.
type PatternRow struct {
	Code    string
	Date    time.Time
	Columns []string
	Signals []int32
}

// Signal returns the named classifier code of the row, or 0 if absent.
func (r PatternRow) Signal(name string) int32 {
	for i, c := range r.Columns {
		if c == name {
			return r.Signals[i]
		}
	}
	return 0
}
