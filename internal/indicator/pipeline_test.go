package indicator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"athena/internal/domain/bars"
	"athena/pkg/errors"
)

// testSeries builds a deterministic positive price walk with plausible
// volume. Long enough runs cover every look-back in the default pipeline.
func testSeries(n int) []bars.Bar {
	series := make([]bars.Bar, n)
	price := 100.0
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	for i := range series {
		delta := 2*math.Sin(float64(i)*0.7) + 0.1
		open := price
		closes := price + delta
		high := math.Max(open, closes) + 1
		low := math.Min(open, closes) - 1
		vol := 10000 + 100*float64(i%7)
		series[i] = bars.Bar{
			Code:          "000001",
			Date:          start.AddDate(0, 0, i),
			Open:          open,
			High:          high,
			Low:           low,
			Close:         closes,
			Volume:        vol,
			Amount:        vol * (open + closes) / 2,
			PercentChange: (closes - open) / open * 100,
		}
		price = closes
	}
	return series
}

func TestPipeline_ComputeProducesAllColumnsFinite(t *testing.T) {
	series := testSeries(250)

	frame, err := Default().Compute(series, Options{OutputWindow: 120})
	require.NoError(t, err)
	require.Equal(t, 120, frame.Len())

	for _, name := range DefaultColumns {
		col := frame.Col(name)
		require.True(t, frame.Has(name), "column %s missing", name)
		for i, v := range col {
			assert.False(t, math.IsNaN(v), "%s[%d] is NaN", name, i)
			assert.False(t, math.IsInf(v, 0), "%s[%d] is Inf", name, i)
		}
	}
}

func TestPipeline_KdjIdentity(t *testing.T) {
	series := testSeries(120)

	frame, err := Default().Compute(series, Options{})
	require.NoError(t, err)

	k := frame.Col("kdjk")
	d := frame.Col("kdjd")
	j := frame.Col("kdjj")
	for i := range j {
		assert.InDelta(t, 3*k[i]-2*d[i], j[i], 1e-9, "row %d", i)
	}
}

func TestPipeline_SupertrendStaysOnBands(t *testing.T) {
	series := testSeries(200)

	frame, err := Default().Compute(series, Options{})
	require.NoError(t, err)

	st := frame.Col("supertrend")
	ub := frame.Col("supertrend_ub")
	lb := frame.Col("supertrend_lb")
	for i := range st {
		onBand := st[i] == ub[i] || st[i] == lb[i] || (i > 0 && st[i] == st[i-1])
		assert.True(t, onBand, "row %d: trend %v not on ub %v / lb %v", i, st[i], ub[i], lb[i])
	}
}

func TestPipeline_VolumeSMAWarmup(t *testing.T) {
	series := testSeries(60)
	for i := range series {
		series[i].Volume = float64(i + 10)
		series[i].Amount = series[i].Volume * series[i].Close
	}

	frame, err := Default().Compute(series, Options{})
	require.NoError(t, err)

	vol5 := frame.Col("vol_5")
	// Warm-up rows are zero, then the rolling mean of i+6..i+10.
	for i := 0; i < 4; i++ {
		assert.Zero(t, vol5[i], "row %d", i)
	}
	assert.InDelta(t, 12.0, vol5[4], 1e-9)
	assert.InDelta(t, 18.0, vol5[10], 1e-9)
	assert.InDelta(t, 67.0, vol5[59], 1e-9)
}

func TestPipeline_ShortSeriesComputes(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		frame, err := Default().Compute(testSeries(n), Options{})
		require.NoError(t, err, "%d bars", n)
		require.Equal(t, n, frame.Len())

		for _, name := range DefaultColumns {
			for i, v := range frame.Col(name) {
				assert.False(t, math.IsNaN(v), "%s[%d] with %d bars", name, i, n)
				assert.False(t, math.IsInf(v, 0), "%s[%d] with %d bars", name, i, n)
			}
		}
	}
}

func TestPipeline_DPOWarmup(t *testing.T) {
	frame, err := Default().Compute(testSeries(60), Options{})
	require.NoError(t, err)

	// The shifted 11-bar mean has no full window before row 11; those rows
	// must not fall back to the raw close.
	dpo := frame.Col("dpo")
	for i := 0; i < 11; i++ {
		assert.Zero(t, dpo[i], "row %d", i)
	}
	assert.NotZero(t, dpo[11])

	madpo := frame.Col("madpo")
	for i := 0; i < 5; i++ {
		assert.Zero(t, madpo[i], "row %d", i)
	}
}

func TestPipeline_OutputWindowBounds(t *testing.T) {
	series := testSeries(80)

	frame, err := Default().Compute(series, Options{})
	require.NoError(t, err)
	assert.Equal(t, 80, frame.Len())

	frame, err = Default().Compute(series, Options{OutputWindow: 500})
	require.NoError(t, err)
	assert.Equal(t, 80, frame.Len())

	frame, err = Default().Compute(series, Options{OutputWindow: 10})
	require.NoError(t, err)
	assert.Equal(t, 10, frame.Len())
	assert.Equal(t, series[79].Date, frame.Bars[9].Date)
}

func TestPipeline_EndDateTruncates(t *testing.T) {
	series := testSeries(150)

	frame, err := Default().Compute(series, Options{EndDate: series[99].Date})
	require.NoError(t, err)
	assert.Equal(t, 100, frame.Len())
	assert.Equal(t, series[99].Date, frame.Bars[99].Date)
}

func TestPipeline_EmptyWindow(t *testing.T) {
	series := testSeries(30)
	before := series[0].Date.AddDate(0, 0, -1)

	_, err := Default().Compute(series, Options{EndDate: before})
	require.ErrorIs(t, err, errors.ErrEmptyWindow)
}

func TestNewPipeline_RejectsForwardReference(t *testing.T) {
	_, err := NewPipeline([]Step{
		{Name: "bad", Reads: []string{"not_yet_written"}, Writes: []string{"x"}},
	})
	require.ErrorIs(t, err, errors.ErrForwardReference)
}

func TestNewPipeline_RejectsRewrite(t *testing.T) {
	_, err := NewPipeline([]Step{
		{Name: "bad", Reads: []string{ColClose}, Writes: []string{ColClose}},
	})
	require.ErrorIs(t, err, errors.ErrInvalidInput)

	_, err = NewPipeline([]Step{
		{Name: "a", Writes: []string{"x"}},
		{Name: "b", Writes: []string{"x"}},
	})
	require.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestNewPipeline_AcceptsChainedSteps(t *testing.T) {
	p, err := NewPipeline([]Step{
		{Name: "a", Reads: []string{ColClose}, Writes: []string{"x"}, Run: func(f *Frame) {
			f.Set("x", scale(f.Col(ColClose), 2))
		}},
		{Name: "b", Reads: []string{"x"}, Writes: []string{"y"}, Run: func(f *Frame) {
			f.Set("y", scale(f.Col("x"), 2))
		}},
	})
	require.NoError(t, err)

	frame, err := p.Compute(testSeries(5), Options{})
	require.NoError(t, err)
	assert.InDelta(t, 4*frame.Col(ColClose)[2], frame.Col("y")[2], 1e-9)
}

func TestDefaultPipeline_DeclarationsCoverColumns(t *testing.T) {
	written := map[string]bool{}
	for _, s := range indicatorSteps() {
		for _, w := range s.Writes {
			written[w] = true
		}
	}
	for _, name := range DefaultColumns {
		assert.True(t, written[name], "column %s has no producing step", name)
	}
}
