package indicators

import (
	"math"

	"github.com/kieranhollis/quantcore/rolling"
	"github.com/kieranhollis/quantcore/table"
)

// HMAOptions configures the Hull Moving Average.
type HMAOptions struct {
	Period     int `validate:"gt=0"`
	ColumnName string
	Validate   bool
}

// HMA appends the Hull Moving Average of priceCol to t, named
// `<price_col>_hma_<period>` unless overridden. Computed as
// weighted_mean(2*WMA(x, period/2) - WMA(x, period), round(sqrt(period))),
// with NaN propagating element-wise through the subtraction.
func HMA(t *table.Table, priceCol string, opts HMAOptions) (*table.Table, error) {
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

	halfWindow := opts.Period / 2
	if halfWindow <= 0 {
		halfWindow = 1
	}
	fastWMA, err := rolling.WeightedMean(col, halfWindow, nil)
	if err != nil {
		return nil, err
	}
	slowWMA, err := rolling.WeightedMean(col, opts.Period, nil)
	if err != nil {
		return nil, err
	}

	raw := make([]float64, len(col))
	for i := range raw {
		raw[i] = 2*fastWMA[i] - slowWMA[i]
	}

	// raw is staged as a named temp column rather than a bare slice so the
	// outer smoothing pass reads it back like any other column; DropTemp
	// strips it before the final table is returned.
	rawName := tempName("hma_raw", opts.Period)
	staged, err := t.WithColumn(rawName, raw)
	if err != nil {
		return nil, err
	}
	rawCol, _ := staged.Column(rawName)

	outerWindow := int(math.Round(math.Sqrt(float64(opts.Period))))
	if outerWindow < 1 {
		outerWindow = 1
	}
	out, err := rolling.WeightedMean(rawCol, outerWindow, nil)
	if err != nil {
		return nil, err
	}

	name := outputName(opts.ColumnName, priceCol, "hma", opts.Period)
	result, err := staged.WithColumn(name, out)
	if err != nil {
		return nil, err
	}
	return result.DropTemp(), nil
}
