package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOHLCV_JSON verifies JSON marshaling of OHLCV.
func TestOHLCV_JSON(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	ohlcv := OHLCV{
		Timestamp: now,
		Symbol:    "AAPL",
		Open:      150.0,
		High:      155.0,
		Low:       149.0,
		Close:     154.0,
		Volume:    1000000,
	}

	data, err := json.Marshal(ohlcv)
	require.NoError(t, err)

	var parsed OHLCV
	err = json.Unmarshal(data, &parsed)
	require.NoError(t, err)

	assert.Equal(t, ohlcv.Symbol, parsed.Symbol)
	assert.Equal(t, ohlcv.Close, parsed.Close)
	assert.True(t, ohlcv.Timestamp.Equal(parsed.Timestamp))
}

// TestToTable_ConvertsCandlesToColumns verifies the candle-to-table
// conversion preserves row count and field alignment.
func TestToTable_ConvertsCandlesToColumns(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := []OHLCV{
		{Timestamp: base, Symbol: "AAPL", Open: 100, High: 105, Low: 99, Close: 104, Volume: 1000},
		{Timestamp: base.Add(time.Hour), Symbol: "AAPL", Open: 104, High: 106, Low: 103, Close: 105, Volume: 1500},
	}

	tbl, err := ToTable(candles)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Rows())

	closeCol, ok := tbl.Column("close")
	require.True(t, ok)
	assert.Equal(t, []float64{104, 105}, []float64(closeCol))

	tsCol, ok := tbl.Column("timestamp")
	require.True(t, ok)
	assert.Equal(t, float64(base.Unix()), tsCol[0])
}

func TestToTable_EmptyInputYieldsZeroRowTable(t *testing.T) {
	tbl, err := ToTable(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Rows())
}
