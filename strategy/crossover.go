package strategy

import (
	"fmt"
	"math"

	"github.com/kieranhollis/quantcore/indicators"
	"github.com/kieranhollis/quantcore/table"
)

func crossoverIndicatorTag(kind Kind) string {
	if kind == KindEmaCross {
		return "ema"
	}
	return "sma"
}

// applyCrossoverIndicators appends the fast/slow moving-average columns a
// crossover strategy needs, returning their names.
func applyCrossoverIndicators(t *table.Table, s Strategy) (*table.Table, string, string, error) {
	tag := crossoverIndicatorTag(s.Kind)
	fastName := fmt.Sprintf("%s_%s_%d", s.PriceCol, tag, s.Fast)
	slowName := fmt.Sprintf("%s_%s_%d", s.PriceCol, tag, s.Slow)

	out := t
	var err error
	if !out.Has(fastName) {
		if s.Kind == KindEmaCross {
			out, err = indicators.EMA(out, s.PriceCol, indicators.EMAOptions{Period: s.Fast})
		} else {
			out, err = indicators.SMA(out, s.PriceCol, indicators.SMAOptions{Period: s.Fast})
		}
		if err != nil {
			return nil, "", "", err
		}
	}
	if !out.Has(slowName) {
		if s.Kind == KindEmaCross {
			out, err = indicators.EMA(out, s.PriceCol, indicators.EMAOptions{Period: s.Slow})
		} else {
			out, err = indicators.SMA(out, s.PriceCol, indicators.SMAOptions{Period: s.Slow})
		}
		if err != nil {
			return nil, "", "", err
		}
	}
	return out, fastName, slowName, nil
}

// generateCrossoverSignals implements the SMA/EMA crossover logic of
// spec §4.5: row i is bullish iff the fast line was at or below the slow
// line on the previous row and is strictly above it now, bearish for the
// mirror condition, and flat otherwise. Strength is the relative gap
// between fast and slow, capped at 1.0.
func generateCrossoverSignals(t *table.Table, s Strategy) (SignalResult, error) {
	out, fastName, slowName, err := applyCrossoverIndicators(t, s)
	if err != nil {
		return SignalResult{}, err
	}

	fast, ok := out.Column(fastName)
	if !ok {
		return SignalResult{}, missingColumnError(fastName)
	}
	slow, ok := out.Column(slowName)
	if !ok {
		return SignalResult{}, missingColumnError(slowName)
	}

	tag := crossoverIndicatorTag(s.Kind)
	n := out.Rows()
	signal := make([]float64, n)
	strength := make([]float64, n)
	reasons := make([]string, n)
	reasons[0] = "no_signal"

	for i := 1; i < n; i++ {
		prevFast, prevSlow := fast[i-1], slow[i-1]
		curFast, curSlow := fast[i], slow[i]

		bullish := table.LessOrEqualOrdered(prevFast, prevSlow) && table.LessOrdered(curSlow, curFast)
		bearish := table.LessOrEqualOrdered(prevSlow, prevFast) && table.LessOrdered(curFast, curSlow)

		switch {
		case bullish:
			signal[i] = 1
			reasons[i] = fmt.Sprintf("%s_bullish_crossover_%d_%d", tag, s.Fast, s.Slow)
		case bearish:
			signal[i] = -1
			reasons[i] = fmt.Sprintf("%s_bearish_crossover_%d_%d", tag, s.Fast, s.Slow)
		default:
			signal[i] = 0
			reasons[i] = "no_signal"
		}

		if curSlow == 0 || math.IsNaN(curSlow) || math.IsNaN(curFast) {
			strength[i] = 0
			continue
		}
		strength[i] = math.Min(math.Abs(curFast-curSlow)/math.Abs(curSlow), 1.0)
	}

	return buildResult(out, signal, strength, reasons)
}
