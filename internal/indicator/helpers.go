package indicator

import "math"

// Small vector helpers shared by the derivation steps. All of them allocate
// their result; steps never mutate a column they only read.

// shift returns values moved n rows forward, zero-filling the lead-in.
// A shift longer than the series yields all zeros.
func shift(values []float64, n int) []float64 {
	out := make([]float64, len(values))
	if n >= len(values) {
		return out
	}
	copy(out[n:], values)
	return out
}

// zeroPrefix clears the first n rows in place.
func zeroPrefix(values []float64, n int) {
	if n > len(values) {
		n = len(values)
	}
	for i := 0; i < n; i++ {
		values[i] = 0
	}
}

// diff returns first differences with a zero in row 0.
func diff(values []float64) []float64 {
	out := make([]float64, len(values))
	for i := 1; i < len(values); i++ {
		out[i] = values[i] - values[i-1]
	}
	return out
}

func absAll(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Abs(v)
	}
	return out
}

// divide is elementwise a/b with no guarding; callers sanitize the result
// per their documented policy.
func divide(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] / b[i]
	}
	return out
}

func subtract(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func scale(values []float64, k float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * k
	}
	return out
}
