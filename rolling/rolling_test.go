package rolling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNaN(t *testing.T, v float64, msg string) {
	t.Helper()
	assert.True(t, math.IsNaN(v), msg)
}

func TestMean_Period1EqualsInput(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	out, err := Mean(x, 1)
	require.NoError(t, err)
	assert.Equal(t, x, out)
}

func TestMean_Baseline(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	out, err := Mean(x, 3)
	require.NoError(t, err)
	assertNaN(t, out[0], "index 0")
	assertNaN(t, out[1], "index 1")
	assert.InDelta(t, 2.0, out[2], 1e-9)
	assert.InDelta(t, 3.0, out[3], 1e-9)
	assert.InDelta(t, 4.0, out[4], 1e-9)
}

func TestMean_WindowLargerThanInputIsAllNaN(t *testing.T) {
	x := []float64{1, 2}
	out, err := Mean(x, 5)
	require.NoError(t, err)
	for _, v := range out {
		assertNaN(t, v, "entire output")
	}
}

func TestMean_InvalidPeriod(t *testing.T) {
	_, err := Mean([]float64{1, 2}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestWeightedMean_EqualWeightsEqualsMean(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	mean, err := Mean(x, 3)
	require.NoError(t, err)

	wma, err := WeightedMean(x, 3, []float64{1, 1, 1})
	require.NoError(t, err)

	for i := range mean {
		if math.IsNaN(mean[i]) {
			assertNaN(t, wma[i], "nan prefix")
			continue
		}
		assert.InDelta(t, mean[i], wma[i], 1e-9)
	}
}

func TestWeightedMean_LinearWeightsBaseline(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	out, err := WeightedMean(x, 3, nil)
	require.NoError(t, err)

	want := []float64{14.0 / 6, 20.0 / 6, 26.0 / 6, 32.0 / 6}
	for i, w := range want {
		assert.InDelta(t, w, out[i+2], 1e-9)
	}
}

func TestWeightedMean_WrongLengthFails(t *testing.T) {
	_, err := WeightedMean([]float64{1, 2, 3}, 3, []float64{1, 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidWeights)
}

func TestEMA_SeedEqualsMean(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	out, err := EMA(x, 3, 0.5)
	require.NoError(t, err)

	assertNaN(t, out[0], "index 0")
	assertNaN(t, out[1], "index 1")
	assert.InDelta(t, 2.0, out[2], 1e-9)
	assert.InDelta(t, 3.0, out[3], 1e-9) // 0.5*4 + 0.5*2
	assert.InDelta(t, 4.0, out[4], 1e-9) // 0.5*5 + 0.5*3
}

func TestEMA_InvalidAlpha(t *testing.T) {
	_, err := EMA([]float64{1, 2, 3}, 2, 1.5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAlpha)
}

func TestEMA_DefaultAlpha(t *testing.T) {
	out, err := EMA([]float64{1, 2, 3, 4, 5}, 3, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, out[2], 1e-9)
}

func TestWilderSmooth_SeedsOnFirstValueAndPropagatesNaN(t *testing.T) {
	x := []float64{math.NaN(), 2, math.NaN(), 4, 6}
	out, err := WilderSmooth(x, 2)
	require.NoError(t, err)

	assertNaN(t, out[0], "leading NaN before first numeric value")
	assert.InDelta(t, 2.0, out[1], 1e-9, "seed is the first numeric value itself")
	assert.InDelta(t, 2.0, out[2], 1e-9, "NaN input propagates previous state")
	assert.InDelta(t, 3.0, out[3], 1e-9) // alpha=0.5: 0.5*4+0.5*2
	assert.InDelta(t, 4.5, out[4], 1e-9) // 0.5*6+0.5*3
}

func TestWilderSmooth_InvalidPeriod(t *testing.T) {
	_, err := WilderSmooth([]float64{1, 2}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestScanState_AllNaNInputYieldsAllNaN(t *testing.T) {
	x := []float64{math.NaN(), math.NaN()}
	out := ScanState(x, 1, func(prev, cur float64) float64 { return cur })
	for _, v := range out {
		assertNaN(t, v, "no numeric seed available")
	}
}
