// Package indicators implements the technical-indicator layer: the seven
// moving averages, MACD with crossover detection, and RSI with threshold
// signals. Every entry point is a pure function of (Table, price column,
// options) to a new Table carrying one or more appended columns. Most
// indicators keep their intermediate series (EMA1/EMA2/EMA3, fast/slow
// WMA) as plain Go slices that never touch the table at all; HMA is the
// one cascade that needs its raw pre-smoothing series addressable as a
// column, so it stages that under table.TempPrefix and strips it with
// Table.DropTemp before returning.
package indicators

import (
	"fmt"
	"math"

	"github.com/kieranhollis/quantcore/rolling"
	"github.com/kieranhollis/quantcore/table"
)

func priceColumn(t *table.Table, priceCol string) (table.Column, error) {
	col, ok := t.Column(priceCol)
	if !ok {
		return nil, columnMissingError(priceCol)
	}
	return col, nil
}

func checkRows(t *table.Table, minRows int, validate bool) error {
	if validate && t.Rows() < minRows {
		return insufficientDataError(t.Rows(), minRows)
	}
	return nil
}

func defaultName(priceCol, tag string, period int) string {
	return fmt.Sprintf("%s_%s_%d", priceCol, tag, period)
}

func outputName(override, priceCol, tag string, period int) string {
	if override != "" {
		return override
	}
	return defaultName(priceCol, tag, period)
}

func tempName(tag string, n int) string {
	return fmt.Sprintf("%s%s_%d", table.TempPrefix, tag, n)
}

// cascadeEMA runs an EMA over prev's non-NaN suffix (the "valid-suffix +
// reposition" formulation DEMA and TEMA share): it finds prev's first valid
// index, smooths only that suffix, and pads the result back to prev's full
// length so the two series stay aligned by row.
func cascadeEMA(prev table.Column, period int, alpha float64) ([]float64, error) {
	out := make([]float64, len(prev))
	for i := range out {
		out[i] = math.NaN()
	}
	start := prev.FirstValidIndex()
	if start == -1 {
		return out, nil
	}
	suffix := []float64(prev[start:])
	emaSuffix, err := rolling.EMA(suffix, period, alpha)
	if err != nil {
		return nil, err
	}
	copy(out[start:], emaSuffix)
	return out, nil
}
