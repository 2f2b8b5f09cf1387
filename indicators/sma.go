package indicators

import (
	"github.com/go-playground/validator/v10"
	"github.com/kieranhollis/quantcore/rolling"
	"github.com/kieranhollis/quantcore/table"
)

var validate = validator.New()

// SMAOptions configures the Simple Moving Average. Period is required;
// ColumnName overrides the default `<price_col>_sma_<period>` output name;
// Validate, when true, fails with ErrInsufficientData instead of producing
// an all-NaN column when the table has fewer than Period rows.
type SMAOptions struct {
	Period     int    `validate:"gt=0"`
	ColumnName string
	Validate   bool
}

// SMA appends the simple rolling mean of priceCol to t, named
// `<price_col>_sma_<period>` unless overridden.
func SMA(t *table.Table, priceCol string, opts SMAOptions) (*table.Table, error) {
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

	out, err := rolling.Mean(col, opts.Period)
	if err != nil {
		return nil, err
	}
	name := outputName(opts.ColumnName, priceCol, "sma", opts.Period)
	return t.WithColumn(name, out)
}
