package indicator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceBars_EndDateInclusive(t *testing.T) {
	series := testSeries(10)

	out := SliceBars(series, series[6].Date, 0)
	require.Len(t, out, 7)
	assert.Equal(t, series[6].Date, out[6].Date)
}

func TestSliceBars_EndDateBetweenBars(t *testing.T) {
	series := testSeries(10)
	between := series[6].Date.Add(12 * time.Hour)

	out := SliceBars(series, between, 0)
	assert.Len(t, out, 7)
}

func TestSliceBars_CalcWindowKeepsTail(t *testing.T) {
	series := testSeries(10)

	out := SliceBars(series, time.Time{}, 4)
	require.Len(t, out, 4)
	assert.Equal(t, series[6].Date, out[0].Date)
	assert.Equal(t, series[9].Date, out[3].Date)
}

func TestSliceBars_CalcWindowLargerThanSeries(t *testing.T) {
	series := testSeries(5)
	out := SliceBars(series, time.Time{}, 50)
	assert.Len(t, out, 5)
}

func TestSliceBars_Combined(t *testing.T) {
	series := testSeries(20)

	out := SliceBars(series, series[14].Date, 5)
	require.Len(t, out, 5)
	assert.Equal(t, series[10].Date, out[0].Date)
	assert.Equal(t, series[14].Date, out[4].Date)
}

func TestSliceBars_EndBeforeSeries(t *testing.T) {
	series := testSeries(5)
	out := SliceBars(series, series[0].Date.AddDate(0, 0, -1), 0)
	assert.Empty(t, out)
}

func TestSliceBars_ZeroKnobsPassThrough(t *testing.T) {
	series := testSeries(8)
	out := SliceBars(series, time.Time{}, 0)
	assert.Len(t, out, 8)
}
