package indicators

import (
	"math"

	"github.com/kieranhollis/quantcore/rolling"
	"github.com/kieranhollis/quantcore/table"
)

// DEMAOptions configures the Double Exponential Moving Average.
type DEMAOptions struct {
	Period     int `validate:"gt=0"`
	Alpha      float64
	ColumnName string
	Validate   bool
}

// DEMA appends the Double Exponential Moving Average of priceCol to t,
// named `<price_col>_dema_<period>` unless overridden. Computed as
// 2*EMA1 - EMA2, where EMA2 is EMA1's non-NaN suffix re-smoothed and
// repositioned (the valid-suffix formulation); the first valid cell is at
// index 2*(period-1), and a row is non-NaN only when both EMA1 and EMA2
// are non-NaN at that row.
func DEMA(t *table.Table, priceCol string, opts DEMAOptions) (*table.Table, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, invalidPeriodError(opts.Period)
	}
	col, err := priceColumn(t, priceCol)
	if err != nil {
		return nil, err
	}
	if err := checkRows(t, 2*opts.Period, opts.Validate); err != nil {
		return nil, err
	}

	alpha := opts.Alpha
	if alpha <= 0 {
		alpha = rolling.DefaultAlpha(opts.Period)
	}

	ema1, err := rolling.EMA(col, opts.Period, alpha)
	if err != nil {
		return nil, err
	}
	ema2, err := cascadeEMA(ema1, opts.Period, alpha)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(col))
	for i := range out {
		if math.IsNaN(ema2[i]) {
			out[i] = math.NaN()
			continue
		}
		out[i] = 2*ema1[i] - ema2[i]
	}

	name := outputName(opts.ColumnName, priceCol, "dema", opts.Period)
	return t.WithColumn(name, out)
}
