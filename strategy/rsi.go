package strategy

import (
	"fmt"
	"math"

	"github.com/kieranhollis/quantcore/indicators"
	"github.com/kieranhollis/quantcore/table"
)

func rsiDefaults(s Strategy) (period int, oversold, overbought float64) {
	period, oversold, overbought = s.Period, s.Oversold, s.Overbought
	if period <= 0 {
		period = 14
	}
	if oversold == 0 && overbought == 0 {
		oversold, overbought = 30, 70
	}
	return
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// generateRsiSignals implements the RSI-threshold logic of spec §4.5:
// signal is 1 at or below the oversold threshold, -1 at or above
// overbought, 0 otherwise. Strength scales linearly from the threshold
// toward the extreme (0 or 100), clamped to [0,1].
func generateRsiSignals(t *table.Table, s Strategy) (SignalResult, error) {
	period, oversold, overbought := rsiDefaults(s)
	rsiName := fmt.Sprintf("%s_rsi_%d", s.PriceCol, period)

	out := t
	var err error
	if !out.Has(rsiName) {
		out, err = indicators.RSI(out, s.PriceCol, indicators.RSIOptions{Period: period})
		if err != nil {
			return SignalResult{}, err
		}
	}

	rsi, ok := out.Column(rsiName)
	if !ok {
		return SignalResult{}, missingColumnError(rsiName)
	}

	n := out.Rows()
	sig := make([]float64, n)
	strength := make([]float64, n)
	reasons := make([]string, n)

	for i := 0; i < n; i++ {
		v := rsi[i]
		switch {
		case math.IsNaN(v):
			sig[i] = 0
			strength[i] = 0
			reasons[i] = "no_signal"
		case v <= oversold:
			sig[i] = 1
			strength[i] = clamp01((oversold - v) / oversold)
			reasons[i] = fmt.Sprintf("rsi_oversold_%.0f", oversold)
		case v >= overbought:
			sig[i] = -1
			strength[i] = clamp01((v - overbought) / (100 - overbought))
			reasons[i] = fmt.Sprintf("rsi_overbought_%.0f", overbought)
		default:
			sig[i] = 0
			strength[i] = 0
			reasons[i] = "no_signal"
		}
	}

	return buildResult(out, sig, strength, reasons)
}
