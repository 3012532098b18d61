package indicator

import (
	"time"

	"athena/internal/domain/bars"
)

// Options are the three independent windowing knobs of a computation run.
// EndDate truncates the input by date (inclusive), CalcWindow keeps only the
// trailing N bars before computing, OutputWindow keeps only the trailing N
// rows of the result. Zero values disable the corresponding knob.
//
// CalcWindow shorter than a field's look-back leaves that field's leading
// rows at zero; callers wanting full-fidelity long-window fields (ma200,
// cci_84) must pass a CalcWindow of at least that look-back.
type Options struct {
	EndDate      time.Time
	CalcWindow   int
	OutputWindow int
}

// SliceBars applies the pre-compute window: bars with date <= end (when end
// is non-zero), then the trailing calcWindow bars (when positive). The input
// is never mutated; the result aliases it.
func SliceBars(series []bars.Bar, end time.Time, calcWindow int) []bars.Bar {
	out := series
	if !end.IsZero() {
		// Bars are ascending by date, so the cutoff is a prefix.
		cut := len(out)
		for cut > 0 && out[cut-1].Date.After(end) {
			cut--
		}
		out = out[:cut]
	}
	if calcWindow > 0 && calcWindow < len(out) {
		out = out[len(out)-calcWindow:]
	}
	return out
}
