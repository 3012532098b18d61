package indicator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestRow_UnderTwoBarsZeroFills(t *testing.T) {
	asOf := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	fields := []string{"macd", "rsi", "ma20"}

	for _, series := range [][]int{{}, {1}} {
		row := LatestRow(testSeries(len(series)), asOf, "600000", fields, 90)
		assert.Equal(t, "600000", row.Code)
		assert.Equal(t, asOf, row.Date)
		assert.Equal(t, fields, row.Columns)
		assert.Equal(t, []float64{0, 0, 0}, row.Values)
	}
}

func TestLatestRow_TwoBarsBestEffort(t *testing.T) {
	series := testSeries(2)
	asOf := series[1].Date
	fields := []string{"macd", "rsi", "supertrend", "dpo"}

	row := LatestRow(series, asOf, "000001", fields, 90)
	require.Equal(t, fields, row.Columns)
	assert.Equal(t, "000001", row.Code)
	for i, name := range fields {
		assert.False(t, math.IsNaN(row.Values[i]), "field %s", name)
		assert.False(t, math.IsInf(row.Values[i], 0), "field %s", name)
	}
	// Two bars are enough for the trend bands, so this is a computed row,
	// not the zero-filled fallback.
	assert.NotZero(t, row.Values[2])
}

func TestLatestRow_EmptyWindowZeroFills(t *testing.T) {
	series := testSeries(30)
	before := series[0].Date.AddDate(0, 0, -10)

	row := LatestRow(series, before, "600000", []string{"rsi"}, 90)
	assert.Equal(t, before, row.Date)
	assert.Equal(t, []float64{0}, row.Values)
}

func TestLatestRow_PopulatedSeries(t *testing.T) {
	series := testSeries(250)
	asOf := series[249].Date
	fields := []string{"rsi", "ma20", "boll", "supertrend", "kdjk"}

	row := LatestRow(series, asOf, "000001", fields, 250)
	require.Equal(t, fields, row.Columns)

	// A fully warmed window produces real values for every short-window field.
	for i, name := range fields {
		assert.NotZero(t, row.Values[i], "field %s", name)
		assert.False(t, math.IsNaN(row.Values[i]))
		assert.False(t, math.IsInf(row.Values[i], 0))
	}
}

func TestLatestRow_LongLookbackFieldsDegradeToZero(t *testing.T) {
	series := testSeries(250)
	asOf := series[249].Date

	row := LatestRow(series, asOf, "000001", []string{"ma20", "ma200"}, 90)
	assert.NotZero(t, row.Value("ma20"))
	// 90 bars cannot fill a 200-period mean.
	assert.Zero(t, row.Value("ma200"))
}

func TestLatestRow_MatchesBatchLastRow(t *testing.T) {
	series := testSeries(250)
	asOf := series[249].Date

	frame, err := Default().Compute(series, Options{
		EndDate:      asOf,
		CalcWindow:   120,
		OutputWindow: 1,
	})
	require.NoError(t, err)
	require.Equal(t, 1, frame.Len())

	row := LatestRow(series, asOf, "000001", []string{"rsi", "macd"}, 120)
	assert.Equal(t, frame.Col("rsi")[0], row.Value("rsi"))
	assert.Equal(t, frame.Col("macd")[0], row.Value("macd"))
}

func TestLatestRow_UnknownFieldIsZero(t *testing.T) {
	series := testSeries(60)
	row := LatestRow(series, series[59].Date, "000001", []string{"not_a_field"}, 60)
	assert.Equal(t, []float64{0}, row.Values)
}
