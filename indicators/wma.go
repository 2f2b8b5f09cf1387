package indicators

import (
	"github.com/kieranhollis/quantcore/rolling"
	"github.com/kieranhollis/quantcore/table"
)

// WMAOptions configures the Weighted Moving Average. Weights, if non-nil,
// must have length Period; nil selects the default linear ramp 1..Period.
type WMAOptions struct {
	Period     int    `validate:"gt=0"`
	Weights    []float64
	ColumnName string
	Validate   bool
}

// WMA appends the weighted rolling mean of priceCol to t, named
// `<price_col>_wma_<period>` unless overridden.
func WMA(t *table.Table, priceCol string, opts WMAOptions) (*table.Table, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, invalidPeriodError(opts.Period)
	}
	col, err := priceColumn(t, priceCol)
	if err != nil {
		return nil, err
	}
	if err := checkRows(t, opts.Period, opts.Validate); err != nil {
		return nil, err
	}

	out, err := rolling.WeightedMean(col, opts.Period, opts.Weights)
	if err != nil {
		return nil, err
	}
	name := outputName(opts.ColumnName, priceCol, "wma", opts.Period)
	return t.WithColumn(name, out)
}
