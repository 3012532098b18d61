package indicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrame_SeedsRawColumns(t *testing.T) {
	series := testSeries(6)
	f := NewFrame(series)

	require.Equal(t, 6, f.Len())
	for _, name := range []string{ColOpen, ColHigh, ColLow, ColClose, ColVolume, ColAmount, ColPChange} {
		assert.True(t, f.Has(name), "missing %s", name)
	}
	assert.Equal(t, series[3].Close, f.Col(ColClose)[3])
	assert.Equal(t, series[0].Volume, f.Col(ColVolume)[0])
}

func TestFrame_SetRejectsLengthMismatch(t *testing.T) {
	f := NewFrame(testSeries(4))
	assert.Panics(t, func() {
		f.Set("x", []float64{1, 2})
	})
}

func TestFrame_ColMissingIsNil(t *testing.T) {
	f := NewFrame(testSeries(2))
	assert.Nil(t, f.Col("never_set"))
	assert.False(t, f.Has("never_set"))
}

func TestFrame_ColumnsInProductionOrder(t *testing.T) {
	f := NewFrame(testSeries(3))
	f.Set("b", []float64{1, 2, 3})
	f.Set("a", []float64{4, 5, 6})

	cols := f.Columns()
	require.GreaterOrEqual(t, len(cols), 2)
	assert.Equal(t, "b", cols[len(cols)-2])
	assert.Equal(t, "a", cols[len(cols)-1])
}

func TestFrame_Tail(t *testing.T) {
	series := testSeries(5)
	f := NewFrame(series)
	f.Set("x", []float64{0, 1, 2, 3, 4})

	tail := f.Tail(2)
	require.Equal(t, 2, tail.Len())
	assert.Equal(t, series[3].Date, tail.Bars[0].Date)
	assert.Equal(t, []float64{3, 4}, tail.Col("x"))

	// n outside (0, Len) is a no-op
	assert.Same(t, f, f.Tail(0))
	assert.Same(t, f, f.Tail(5))
	assert.Same(t, f, f.Tail(99))
}

func TestFrame_RowZeroFillsMissingFields(t *testing.T) {
	f := NewFrame(testSeries(3))
	f.Set("x", []float64{7, 8, 9})

	row := f.Row(1, []string{"x", "missing", ColClose})
	assert.Equal(t, 8.0, row[0])
	assert.Zero(t, row[1])
	assert.Equal(t, f.Col(ColClose)[1], row[2])
}
