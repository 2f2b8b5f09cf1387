package indicators

import (
	"math"

	"github.com/kieranhollis/quantcore/rolling"
	"github.com/kieranhollis/quantcore/table"
)

// RSIOptions configures the Relative Strength Index.
type RSIOptions struct {
	Period     int `validate:"gt=0"`
	ColumnName string
	Validate   bool
}

// RSI appends the Relative Strength Index of priceCol to t, named
// `<price_col>_rsi_<period>` unless overridden. Gains and losses are
// Wilder-smoothed separately; a row is 100 when average loss is zero and
// average gain positive, 50 when both are zero, and NaN when either
// smoothed average isn't finite.
func RSI(t *table.Table, priceCol string, opts RSIOptions) (*table.Table, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, invalidPeriodError(opts.Period)
	}
	col, err := priceColumn(t, priceCol)
	if err != nil {
		return nil, err
	}
	if err := checkRows(t, opts.Period+1, opts.Validate); err != nil {
		return nil, err
	}

	n := len(col)
	gains := make([]float64, n)
	losses := make([]float64, n)
	gains[0] = math.NaN()
	losses[0] = math.NaN()
	for i := 1; i < n; i++ {
		delta := col[i] - col[i-1]
		gains[i] = math.Max(delta, 0)
		losses[i] = math.Max(-delta, 0)
	}

	avgGain, err := rolling.WilderSmooth(gains, opts.Period)
	if err != nil {
		return nil, err
	}
	avgLoss, err := rolling.WilderSmooth(losses, opts.Period)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		g, l := avgGain[i], avgLoss[i]
		switch {
		case !table.Finite(g) || !table.Finite(l):
			out[i] = math.NaN()
		case l > 0:
			out[i] = 100 - 100/(1+g/l)
		case g > 0:
			out[i] = 100
		default:
			out[i] = 50
		}
	}

	name := outputName(opts.ColumnName, priceCol, "rsi", opts.Period)
	return t.WithColumn(name, out)
}

// RSISignalOptions configures rsi_signals threshold emission.
type RSISignalOptions struct {
	Oversold   float64
	Overbought float64
	ColumnName string
}

// RSISignals appends an integer {-1, 0, 1} column derived from an existing
// RSI column: 1 where rsi <= oversold, -1 where rsi >= overbought, 0
// otherwise (including NaN cells). Oversold/Overbought default to 30/70
// when both left at zero.
func RSISignals(t *table.Table, rsiCol string, opts RSISignalOptions) (*table.Table, error) {
	oversold := opts.Oversold
	overbought := opts.Overbought
	if oversold == 0 && overbought == 0 {
		oversold, overbought = 30, 70
	}

	col, err := priceColumn(t, rsiCol)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(col))
	for i, v := range col {
		switch {
		case math.IsNaN(v):
			out[i] = 0
		case v <= oversold:
			out[i] = 1
		case v >= overbought:
			out[i] = -1
		default:
			out[i] = 0
		}
	}

	name := opts.ColumnName
	if name == "" {
		name = rsiCol + "_signal"
	}
	return t.WithColumn(name, out)
}
