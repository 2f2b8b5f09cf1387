package indicators

import (
	"fmt"
	"math"

	"github.com/kieranhollis/quantcore/rolling"
	"github.com/kieranhollis/quantcore/table"
)

// MACDOptions configures MACD. Defaults are the conventional 12/26/9 when
// any period is left at zero; FastPeriod must be strictly less than
// SlowPeriod.
type MACDOptions struct {
	FastPeriod   int
	SlowPeriod   int
	SignalPeriod int
	Validate     bool
}

// MACDColumnNames returns the three column names MACD appends for the
// given price column and periods, in (macd, signal, histogram) order.
func MACDColumnNames(priceCol string, fast, slow, signal int) (string, string, string) {
	return fmt.Sprintf("%s_macd_%d_%d", priceCol, fast, slow),
		fmt.Sprintf("%s_signal_%d", priceCol, signal),
		fmt.Sprintf("%s_histogram_%d_%d_%d", priceCol, fast, slow, signal)
}

// MACD appends the MACD line, signal line, and histogram of priceCol to t.
// The signal line is a length-preserving EMA of the macd column: it seeds
// at index (slow-1)+(signal-1) with the SMA of macd's first `signal` valid
// cells, then extends forward with the standard EMA recursion — it always
// has exactly N cells, never a shorter series. Intermediate EMA columns
// used to build the macd line are never returned.
func MACD(t *table.Table, priceCol string, opts MACDOptions) (*table.Table, error) {
	fast := opts.FastPeriod
	if fast <= 0 {
		fast = 12
	}
	slow := opts.SlowPeriod
	if slow <= 0 {
		slow = 26
	}
	signal := opts.SignalPeriod
	if signal <= 0 {
		signal = 9
	}
	if fast >= slow {
		return nil, fmt.Errorf("%w: fast=%d slow=%d", ErrFastNotLessThanSlow, fast, slow)
	}

	col, err := priceColumn(t, priceCol)
	if err != nil {
		return nil, err
	}
	if err := checkRows(t, slow, opts.Validate); err != nil {
		return nil, err
	}

	emaFast, err := rolling.EMA(col, fast, 0)
	if err != nil {
		return nil, err
	}
	emaSlow, err := rolling.EMA(col, slow, 0)
	if err != nil {
		return nil, err
	}

	macd := make([]float64, len(col))
	for i := range macd {
		if math.IsNaN(emaFast[i]) || math.IsNaN(emaSlow[i]) {
			macd[i] = math.NaN()
			continue
		}
		macd[i] = emaFast[i] - emaSlow[i]
	}

	signalAlpha := rolling.DefaultAlpha(signal)
	signalLine := rolling.ScanState(macd, signal, func(prev, cur float64) float64 {
		return signalAlpha*cur + (1-signalAlpha)*prev
	})

	histogram := make([]float64, len(col))
	for i := range histogram {
		if math.IsNaN(macd[i]) || math.IsNaN(signalLine[i]) {
			histogram[i] = math.NaN()
			continue
		}
		histogram[i] = macd[i] - signalLine[i]
	}

	macdName, signalName, histName := MACDColumnNames(priceCol, fast, slow, signal)
	return t.WithColumns(
		[]string{macdName, signalName, histName},
		map[string]table.Column{macdName: macd, signalName: signalLine, histName: histogram},
	)
}
