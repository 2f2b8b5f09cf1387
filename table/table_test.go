package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PreservesOrderAndRows(t *testing.T) {
	tbl, err := New([]string{"close", "volume"}, map[string][]float64{
		"close":  {1, 2, 3},
		"volume": {10, 20, 30},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, []string{"close", "volume"}, tbl.Names())
}

func TestNew_RowCountMismatch(t *testing.T) {
	_, err := New([]string{"close", "volume"}, map[string][]float64{
		"close":  {1, 2, 3},
		"volume": {10, 20},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRowCountMismatch)
}

func TestFromRows(t *testing.T) {
	rows := []map[string]float64{
		{"close": 1, "volume": 10},
		{"close": 2, "volume": 20},
	}
	tbl := FromRows(rows)
	assert.Equal(t, 2, tbl.Rows())
	col, ok := tbl.Column("close")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, []float64(col))
}

func TestWithColumn_DuplicateNameFails(t *testing.T) {
	tbl, err := New([]string{"close"}, map[string][]float64{"close": {1, 2}})
	require.NoError(t, err)

	_, err = tbl.WithColumn("close", Column{3, 4})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrColumnExists)
}

func TestWithColumn_LengthMismatchFails(t *testing.T) {
	tbl, err := New([]string{"close"}, map[string][]float64{"close": {1, 2, 3}})
	require.NoError(t, err)

	_, err = tbl.WithColumn("sma", Column{1, 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRowCountMismatch)
}

func TestWithColumn_OriginalTableUnmutated(t *testing.T) {
	tbl, err := New([]string{"close"}, map[string][]float64{"close": {1, 2, 3}})
	require.NoError(t, err)

	augmented, err := tbl.WithColumn("sma", Column{math.NaN(), math.NaN(), 2})
	require.NoError(t, err)

	assert.False(t, tbl.Has("sma"))
	assert.True(t, augmented.Has("sma"))
	assert.Equal(t, []string{"close"}, tbl.Names())
	assert.Equal(t, []string{"close", "sma"}, augmented.Names())
}

func TestDropTemp_RemovesReservedPrefixOnly(t *testing.T) {
	tbl, err := New([]string{"close", TempPrefix + "ema1", "macd"}, map[string][]float64{
		"close":             {1, 2},
		TempPrefix + "ema1": {1, 2},
		"macd":              {1, 2},
	})
	require.NoError(t, err)

	out := tbl.DropTemp()
	assert.Equal(t, []string{"close", "macd"}, out.Names())
	assert.False(t, out.Has(TempPrefix+"ema1"))
}

func TestColumn_IsNaNAndFirstValidIndex(t *testing.T) {
	c := Column{math.NaN(), math.NaN(), 3.0, 4.0}
	assert.True(t, c.IsNaN(0))
	assert.False(t, c.IsNaN(2))
	assert.Equal(t, 2, c.FirstValidIndex())

	allNaN := NewColumn(3)
	assert.Equal(t, -1, allNaN.FirstValidIndex())
}

func TestLessOrdered_NaNNeverOrdered(t *testing.T) {
	assert.False(t, LessOrdered(math.NaN(), 1.0))
	assert.False(t, LessOrdered(1.0, math.NaN()))
	assert.True(t, LessOrdered(1.0, 2.0))
}
