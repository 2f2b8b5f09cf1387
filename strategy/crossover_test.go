package strategy

import (
	"math"
	"testing"

	"github.com/kieranhollis/quantcore/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monotoneTable(t *testing.T, n int, start float64) *table.Table {
	t.Helper()
	values := make([]float64, n)
	for i := range values {
		values[i] = start + float64(i)
	}
	tbl, err := table.New([]string{"close"}, map[string][]float64{"close": values})
	require.NoError(t, err)
	return tbl
}

func TestSmaCross_SignalsInRangeOnRampedInput(t *testing.T) {
	tbl := monotoneTable(t, 30, 95)
	res, err := GenerateSignals(tbl, SmaCross(3, 5, "close"))
	require.NoError(t, err)

	signal, ok := res.Table.Column("signal")
	require.True(t, ok)
	for _, v := range signal {
		assert.Contains(t, []float64{-1, 0, 1}, v)
	}
	assert.Equal(t, len(res.Reasons), signal.Len())
}

func TestSmaCross_MissingPriceColumnFails(t *testing.T) {
	tbl := monotoneTable(t, 30, 1)
	_, err := GenerateSignals(tbl, SmaCross(3, 5, "open"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingIndicatorColumn)
}

func TestSmaCross_InsufficientDataFails(t *testing.T) {
	tbl := monotoneTable(t, 3, 1)
	_, err := GenerateSignals(tbl, SmaCross(3, 5, "close"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestSmaCross_StrengthZeroWhenSlowNaN(t *testing.T) {
	tbl := monotoneTable(t, 30, 95)
	res, err := GenerateSignals(tbl, SmaCross(3, 5, "close"))
	require.NoError(t, err)

	strength, _ := res.Table.Column("signal_strength")
	// the slow SMA(5) is NaN on rows 0..3
	for i := 0; i < 4; i++ {
		assert.False(t, math.IsNaN(float64(strength[i])))
		assert.Equal(t, 0.0, float64(strength[i]), "row %d: slow is NaN", i)
	}
}
