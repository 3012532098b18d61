package indicator

import "math"

// Derived columns are sanitized immediately after they are produced, before
// any later step may consume them. Columns from division or ratio formulas
// get the full NaN+Inf replacement; columns from plain smoothing primitives
// only replace NaN. The per-column choice mirrors the reference behavior and
// is deliberately not unified; see DESIGN.md.

// replaceNaN zeroes NaN values in place.
func replaceNaN(values []float64) {
	for i, v := range values {
		if math.IsNaN(v) {
			values[i] = 0
		}
	}
}

// replaceNaNInf zeroes NaN and ±Inf values in place.
func replaceNaNInf(values []float64) {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			values[i] = 0
		}
	}
}

// Sanitize returns 0 for NaN or ±Inf, v otherwise. Snapshot rows apply it
// as defense in depth on top of the per-column passes.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
