package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEMA_SeedExample(t *testing.T) {
	tbl := mustTable(t, "close", []float64{1, 2, 3, 4, 5})
	out, err := EMA(tbl, "close", EMAOptions{Period: 3, Alpha: 0.5})
	require.NoError(t, err)

	col, ok := out.Column("close_ema_3")
	require.True(t, ok)
	assert.True(t, math.IsNaN(col[0]))
	assert.True(t, math.IsNaN(col[1]))
	assert.InDelta(t, 2.0, col[2], 1e-9)
	assert.InDelta(t, 3.0, col[3], 1e-9)
	assert.InDelta(t, 4.0, col[4], 1e-9)
}

func TestEMA_DefaultAlphaWhenZero(t *testing.T) {
	tbl := mustTable(t, "close", []float64{1, 2, 3, 4, 5})
	out, err := EMA(tbl, "close", EMAOptions{Period: 3})
	require.NoError(t, err)
	col, _ := out.Column("close_ema_3")
	assert.InDelta(t, 2.0, col[2], 1e-9)
}

func TestEMA_InvalidPeriod(t *testing.T) {
	tbl := mustTable(t, "close", []float64{1, 2, 3})
	_, err := EMA(tbl, "close", EMAOptions{Period: 0})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
