package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMACD_LengthAndFirstIndices(t *testing.T) {
	values := ramp(30, 10) // 10..39
	tbl := mustTable(t, "close", values)

	out, err := MACD(tbl, "close", MACDOptions{FastPeriod: 12, SlowPeriod: 26, SignalPeriod: 9})
	require.NoError(t, err)

	macdCol, ok := out.Column("close_macd_12_26")
	require.True(t, ok)
	assert.Equal(t, 30, macdCol.Len())
	assert.Equal(t, 25, macdCol.FirstValidIndex())

	signalCol, ok := out.Column("close_signal_9")
	require.True(t, ok)
	assert.Equal(t, 30, signalCol.Len())
	// first valid signal index would be (slow-1)+(signal-1) = 25+8 = 33,
	// beyond the 30-row input, so the whole column stays NaN.
	assert.Equal(t, -1, signalCol.FirstValidIndex())

	histCol, ok := out.Column("close_histogram_12_26_9")
	require.True(t, ok)
	for i := 0; i < histCol.Len(); i++ {
		if macdCol.IsNaN(i) || signalCol.IsNaN(i) {
			continue
		}
		assert.InDelta(t, float64(macdCol[i])-float64(signalCol[i]), float64(histCol[i]), 1e-9)
	}
}

func TestMACD_SignalLineExactlyNCellsWhenReachable(t *testing.T) {
	values := ramp(60, 10)
	tbl := mustTable(t, "close", values)

	out, err := MACD(tbl, "close", MACDOptions{FastPeriod: 12, SlowPeriod: 26, SignalPeriod: 9})
	require.NoError(t, err)

	signalCol, _ := out.Column("close_signal_9")
	assert.Equal(t, 60, signalCol.Len())
	assert.Equal(t, 33, signalCol.FirstValidIndex())
}

func TestMACD_FastMustBeLessThanSlow(t *testing.T) {
	tbl := mustTable(t, "close", ramp(40, 1))
	_, err := MACD(tbl, "close", MACDOptions{FastPeriod: 26, SlowPeriod: 12, SignalPeriod: 9})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFastNotLessThanSlow)
}

func TestMACD_NoTempColumnsLeak(t *testing.T) {
	tbl := mustTable(t, "close", ramp(60, 1))
	out, err := MACD(tbl, "close", MACDOptions{})
	require.NoError(t, err)
	for _, name := range out.Names() {
		assert.NotContains(t, name, "__tmp_")
	}
}

func TestMACD_DefaultPeriods(t *testing.T) {
	tbl := mustTable(t, "close", ramp(40, 1))
	out, err := MACD(tbl, "close", MACDOptions{})
	require.NoError(t, err)
	assert.True(t, out.Has("close_macd_12_26"))
}
