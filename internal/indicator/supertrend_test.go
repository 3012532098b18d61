package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Hand-traced recurrence: mid equal to close, unit ATR, multiplier 2.
// Covers band tightening, the upper-band reset after a breakout, and the
// flip of the trend line from upper to lower and back.
func TestSupertrend_Recurrence(t *testing.T) {
	closes := []float64{10, 10, 13, 13, 7, 7}
	atr := []float64{1, 1, 1, 1, 1, 1}

	ub, lb, st := supertrend(closes, closes, atr, 2)

	assert.Equal(t, []float64{12, 12, 12, 15, 9, 9}, ub)
	assert.Equal(t, []float64{8, 8, 11, 11, 11, 5}, lb)
	assert.Equal(t, []float64{12, 12, 11, 11, 9, 9}, st)
}

func TestSupertrend_FirstRowAssignment(t *testing.T) {
	// Close below the upper band starts the trend on the upper band.
	_, _, st := supertrend([]float64{10}, []float64{10}, []float64{1}, 1)
	assert.Equal(t, 11.0, st[0])

	// A raw upper band below the close starts on the lower band.
	_, _, st = supertrend([]float64{10}, []float64{8}, []float64{1}, 1)
	assert.Equal(t, 7.0, st[0])
}

func TestSupertrend_BandsOnlyTightenWithoutBreakout(t *testing.T) {
	// Flat closes inside the bands: both bands freeze at their first value.
	closes := []float64{10, 10, 10, 10}
	mid := []float64{10, 10.5, 9.5, 10}
	atr := []float64{1, 2, 2, 3}

	ub, lb, _ := supertrend(closes, mid, atr, 1)
	require.Equal(t, 11.0, ub[0])
	require.Equal(t, 9.0, lb[0])
	for i := 1; i < len(closes); i++ {
		assert.LessOrEqual(t, ub[i], ub[i-1], "upper band widened at %d", i)
		assert.GreaterOrEqual(t, lb[i], lb[i-1], "lower band loosened at %d", i)
	}
}

func TestSupertrend_Empty(t *testing.T) {
	ub, lb, st := supertrend(nil, nil, nil, 3)
	assert.Empty(t, ub)
	assert.Empty(t, lb)
	assert.Empty(t, st)
}
