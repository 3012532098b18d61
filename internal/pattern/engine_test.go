package pattern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"athena/internal/domain/bars"
	"athena/internal/indicator"
	"athena/pkg/errors"
	"athena/pkg/logger"
)

func init() {
	_ = logger.Init("error", "test")
}

func flatSeries(n int) []bars.Bar {
	series := make([]bars.Bar, n)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := range series {
		series[i] = bars.Bar{
			Code: "000001",
			Date: start.AddDate(0, 0, i),
			Open: 10, High: 11, Low: 9, Close: 10.5,
			Volume: 1000, Amount: 10000,
		}
	}
	return series
}

func constantClassifier(name string, code int32) Classifier {
	return Classifier{Name: name, Recognize: func(o, h, l, c []float64) []int32 {
		out := make([]int32, len(c))
		for i := range out {
			out[i] = code
		}
		return out
	}}
}

func TestCompute_PanickingClassifierIsIsolated(t *testing.T) {
	catalog := Catalog{
		constantClassifier("good_one", 100),
		{Name: "broken", Recognize: func(o, h, l, c []float64) []int32 {
			panic("boom")
		}},
		constantClassifier("good_two", -100),
	}

	res, err := Compute(flatSeries(10), catalog, indicator.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"good_one", "good_two"}, res.Columns())
	assert.Equal(t, []string{"broken"}, res.Failed())
	assert.EqualValues(t, 100, res.Signal("good_one", 5))
	assert.EqualValues(t, -100, res.Signal("good_two", 5))
	assert.Zero(t, res.Signal("broken", 5))
}

func TestCompute_WrongLengthOutputIsFailure(t *testing.T) {
	catalog := Catalog{
		{Name: "short_output", Recognize: func(o, h, l, c []float64) []int32 {
			return []int32{100}
		}},
		constantClassifier("ok", 0),
	}

	res, err := Compute(flatSeries(8), catalog, indicator.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"short_output"}, res.Failed())
	assert.Equal(t, []string{"ok"}, res.Columns())
}

func TestCompute_EmptyWindow(t *testing.T) {
	series := flatSeries(5)
	before := series[0].Date.AddDate(0, 0, -1)

	_, err := Compute(series, DefaultCatalog(), indicator.Options{EndDate: before})
	require.ErrorIs(t, err, errors.ErrEmptyWindow)
}

func TestCompute_OutputWindowTail(t *testing.T) {
	series := flatSeries(12)
	catalog := Catalog{constantClassifier("c", 100)}

	res, err := Compute(series, catalog, indicator.Options{OutputWindow: 3})
	require.NoError(t, err)
	require.Len(t, res.Bars, 3)
	assert.Equal(t, series[9].Date, res.Bars[0].Date)
	assert.EqualValues(t, 100, res.Signal("c", 2))
}

func TestResult_RowIncludesFailedColumnsAsZero(t *testing.T) {
	catalog := Catalog{
		constantClassifier("alive", 100),
		{Name: "dead", Recognize: func(o, h, l, c []float64) []int32 { panic("x") }},
	}

	res, err := Compute(flatSeries(4), catalog, indicator.Options{})
	require.NoError(t, err)

	row := res.Row(3, "000001", catalog.Names())
	require.Equal(t, []string{"alive", "dead"}, row.Columns)
	assert.Equal(t, []int32{100, 0}, row.Signals)
	assert.Equal(t, "000001", row.Code)
}

func TestLatest_UnderTwoBarsAbsent(t *testing.T) {
	asOf := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	_, ok := Latest(nil, asOf, "000001", DefaultCatalog(), 90)
	assert.False(t, ok)

	_, ok = Latest(flatSeries(1), asOf, "000001", DefaultCatalog(), 90)
	assert.False(t, ok)
}

func TestLatest_AllQuietRowAbsent(t *testing.T) {
	series := flatSeries(10)
	catalog := Catalog{constantClassifier("silent", 0)}

	_, ok := Latest(series, series[9].Date, "000001", catalog, 90)
	assert.False(t, ok)
}

func TestLatest_SignalPresent(t *testing.T) {
	series := flatSeries(10)
	catalog := Catalog{
		constantClassifier("silent", 0),
		constantClassifier("loud", -100),
	}

	row, ok := Latest(series, series[9].Date, "000001", catalog, 90)
	require.True(t, ok)
	assert.Equal(t, series[9].Date, row.Date)
	assert.EqualValues(t, 0, row.Signal("silent"))
	assert.EqualValues(t, -100, row.Signal("loud"))
}

func TestLatest_AllClassifiersFailedAbsent(t *testing.T) {
	series := flatSeries(6)
	catalog := Catalog{
		{Name: "dead", Recognize: func(o, h, l, c []float64) []int32 { panic("x") }},
	}

	_, ok := Latest(series, series[5].Date, "000001", catalog, 90)
	assert.False(t, ok)
}
