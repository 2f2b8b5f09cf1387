// Package rolling implements the window-reduction kernel the indicator
// layer is built on: plain mean, weighted mean, the SMA-seeded EMA
// recursion, and Wilder smoothing. Every function here is a single
// left-to-right scan over its input — no recursion, no hidden state
// between calls.
package rolling

import (
	"fmt"
	"math"
)

// ErrInvalidPeriod is wrapped when a requested window length is <= 0.
var ErrInvalidPeriod = fmt.Errorf("invalid period")

// ErrInvalidAlpha is wrapped when a smoothing factor falls outside (0, 1].
var ErrInvalidAlpha = fmt.Errorf("invalid alpha")

// ErrInvalidWeights is wrapped when a custom weight vector's length
// doesn't match the requested window.
var ErrInvalidWeights = fmt.Errorf("invalid weights")

// Mean computes the simple rolling mean of x over window w. Cell i is NaN
// for i < w-1; otherwise it is the arithmetic mean of x[i-w+1..i]. If
// w > len(x) the entire output is NaN.
func Mean(x []float64, w int) ([]float64, error) {
	if w <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPeriod, w)
	}
	out := make([]float64, len(x))
	if w > len(x) {
		for i := range out {
			out[i] = math.NaN()
		}
		return out, nil
	}
	var sum float64
	for i := 0; i < len(x); i++ {
		sum += x[i]
		if i >= w {
			sum -= x[i-w]
		}
		if i < w-1 {
			out[i] = math.NaN()
		} else {
			out[i] = sum / float64(w)
		}
	}
	return out, nil
}

// LinearWeights returns the default recency-favoring weight vector 1..w.
func LinearWeights(w int) []float64 {
	weights := make([]float64, w)
	for i := range weights {
		weights[i] = float64(i + 1)
	}
	return weights
}

// WeightedMean computes a rolling weighted mean over window w. weights
// must have length w (a nil weights slice selects the default linear ramp
// 1..w). Cell i is NaN for i < w-1; otherwise it is
// sum(x[i-w+1+k]*weights[k]) / sum(weights).
func WeightedMean(x []float64, w int, weights []float64) ([]float64, error) {
	if w <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPeriod, w)
	}
	if weights == nil {
		weights = LinearWeights(w)
	}
	if len(weights) != w {
		return nil, fmt.Errorf("%w: got %d weights, want %d", ErrInvalidWeights, len(weights), w)
	}
	var weightSum float64
	for _, wt := range weights {
		if wt <= 0 {
			return nil, fmt.Errorf("%w: weights must be positive", ErrInvalidWeights)
		}
		weightSum += wt
	}

	out := make([]float64, len(x))
	for i := 0; i < len(x); i++ {
		if i < w-1 {
			out[i] = math.NaN()
			continue
		}
		var sum float64
		for k := 0; k < w; k++ {
			sum += x[i-w+1+k] * weights[k]
		}
		out[i] = sum / weightSum
	}
	return out, nil
}

// DefaultAlpha returns the standard EMA smoothing factor 2/(period+1).
func DefaultAlpha(period int) float64 {
	return 2.0 / (float64(period) + 1.0)
}

// EMA computes the exponential moving average of x with the given period,
// seeded by the SMA of the first `period` values. alpha defaults to
// DefaultAlpha(period) when <= 0 is passed. The first non-NaN output is at
// index period-1 and equals mean(x[0:period]); for i >= period,
// out[i] = alpha*x[i] + (1-alpha)*out[i-1].
func EMA(x []float64, period int, alpha float64) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPeriod, period)
	}
	if alpha <= 0 {
		alpha = DefaultAlpha(period)
	}
	if alpha <= 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlpha, alpha)
	}

	out := make([]float64, len(x))
	for i := range out {
		out[i] = math.NaN()
	}
	if len(x) < period {
		return out, nil
	}

	var sum float64
	for i := 0; i < period; i++ {
		sum += x[i]
	}
	out[period-1] = sum / float64(period)

	for i := period; i < len(x); i++ {
		out[i] = alpha*x[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}

// ScanState drives a generic left-to-right recursive smoother: it starts
// from the first numeric input, and for every subsequent cell either
// updates the running state via update(prev, x[i]) or, when x[i] is NaN,
// propagates the previous state unchanged (skipNaN semantics). This single
// abstraction covers Wilder smoothing and the length-preserving MACD
// signal-line EMA described in the design notes — both are "seed on first
// valid input, then scan forward, treating gaps as hold-state."
func ScanState(x []float64, seedWindow int, update func(prev, cur float64) float64) []float64 {
	out := make([]float64, len(x))
	for i := range out {
		out[i] = math.NaN()
	}

	start := -1
	for i, v := range x {
		if !math.IsNaN(v) {
			start = i
			break
		}
	}
	if start == -1 || start+seedWindow > len(x) {
		return out
	}

	var sum float64
	for i := start; i < start+seedWindow; i++ {
		sum += x[i]
	}
	state := sum / float64(seedWindow)
	seedIdx := start + seedWindow - 1
	out[seedIdx] = state

	for i := seedIdx + 1; i < len(x); i++ {
		if math.IsNaN(x[i]) {
			out[i] = state
			continue
		}
		state = update(state, x[i])
		out[i] = state
	}
	return out
}

// WilderSmooth applies Wilder's recursive smoothing (alpha = 1/period) to
// x, matching pandas' ewm(alpha=1/period, adjust=False): the recursion
// seeds on the first numeric value of x itself (not a windowed average)
// and continues for every subsequent numeric cell; NaN inputs propagate
// the previous state rather than updating it. Used exclusively by RSI's
// average gain/loss computation.
func WilderSmooth(x []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPeriod, period)
	}
	alpha := 1.0 / float64(period)
	return ScanState(x, 1, func(prev, cur float64) float64 {
		return alpha*cur + (1-alpha)*prev
	}), nil
}
