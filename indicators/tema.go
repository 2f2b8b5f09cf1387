package indicators

import (
	"math"

	"github.com/kieranhollis/quantcore/rolling"
	"github.com/kieranhollis/quantcore/table"
)

// TEMAOptions configures the Triple Exponential Moving Average.
type TEMAOptions struct {
	Period     int `validate:"gt=0"`
	Alpha      float64
	ColumnName string
	Validate   bool
}

// TEMA appends the Triple Exponential Moving Average of priceCol to t,
// named `<price_col>_tema_<period>` unless overridden. Computed as
// 3*EMA1 - 3*EMA2 + EMA3, with EMA2 and EMA3 each built from the prior
// series' non-NaN suffix via the same valid-suffix-plus-reposition
// discipline as DEMA. The first valid cell is at index 3*(period-1).
func TEMA(t *table.Table, priceCol string, opts TEMAOptions) (*table.Table, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, invalidPeriodError(opts.Period)
	}
	col, err := priceColumn(t, priceCol)
	if err != nil {
		return nil, err
	}
	if err := checkRows(t, 3*opts.Period, opts.Validate); err != nil {
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
	ema3, err := cascadeEMA(ema2, opts.Period, alpha)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(col))
	for i := range out {
		if math.IsNaN(ema3[i]) {
			out[i] = math.NaN()
			continue
		}
		out[i] = 3*ema1[i] - 3*ema2[i] + ema3[i]
	}

	name := outputName(opts.ColumnName, priceCol, "tema", opts.Period)
	return t.WithColumn(name, out)
}
