package strategy

import (
	"fmt"
	"math"

	"github.com/kieranhollis/quantcore/indicators"
	"github.com/kieranhollis/quantcore/table"
)

func macdDefaults(s Strategy) (fast, slow, signal int) {
	fast, slow, signal = s.Fast, s.Slow, s.Signal
	if fast <= 0 {
		fast = 12
	}
	if slow <= 0 {
		slow = 26
	}
	if signal <= 0 {
		signal = 9
	}
	return
}

// generateMacdSignals implements the MACD crossover logic of spec §4.5:
// it requires the crossover column produced by the MACD indicator's
// crossover detector and maps its {-1,0,1} value directly onto the
// signal (buy/sell/hold). Strength is the relative gap between macd and
// its signal line, capped at 1.0.
func generateMacdSignals(t *table.Table, s Strategy) (SignalResult, error) {
	fast, slow, signal := macdDefaults(s)

	macdName, signalName, _ := indicators.MACDColumnNames(s.PriceCol, fast, slow, signal)
	crossName := fmt.Sprintf("%s_macd_crossover_%d_%d_%d", s.PriceCol, fast, slow, signal)

	out := t
	var err error
	if !out.Has(macdName) {
		out, err = indicators.MACD(out, s.PriceCol, indicators.MACDOptions{
			FastPeriod: fast, SlowPeriod: slow, SignalPeriod: signal,
		})
		if err != nil {
			return SignalResult{}, err
		}
	}
	if !out.Has(crossName) {
		out, err = indicators.DetectMACDCrossovers(out, macdName, signalName, crossName)
		if err != nil {
			return SignalResult{}, err
		}
	}

	macd, ok := out.Column(macdName)
	if !ok {
		return SignalResult{}, missingColumnError(macdName)
	}
	signalLine, ok := out.Column(signalName)
	if !ok {
		return SignalResult{}, missingColumnError(signalName)
	}
	cross, ok := out.Column(crossName)
	if !ok {
		return SignalResult{}, missingColumnError(crossName)
	}

	n := out.Rows()
	sig := make([]float64, n)
	strength := make([]float64, n)
	reasons := make([]string, n)

	for i := 0; i < n; i++ {
		sig[i] = cross[i]
		switch cross[i] {
		case 1:
			reasons[i] = fmt.Sprintf("macd_bullish_crossover_%d_%d_%d", fast, slow, signal)
		case -1:
			reasons[i] = fmt.Sprintf("macd_bearish_crossover_%d_%d_%d", fast, slow, signal)
		default:
			reasons[i] = "no_signal"
		}

		sl := signalLine[i]
		if sl == 0 || math.IsNaN(sl) || math.IsNaN(macd[i]) {
			strength[i] = 0
			continue
		}
		strength[i] = math.Min(math.Abs(macd[i]-sl)/math.Abs(sl), 1.0)
	}

	return buildResult(out, sig, strength, reasons)
}
