package indicators

import (
	"github.com/kieranhollis/quantcore/rolling"
	"github.com/kieranhollis/quantcore/table"
)

// EMAOptions configures the Exponential Moving Average. Alpha <= 0 selects
// the default 2/(period+1).
type EMAOptions struct {
	Period     int    `validate:"gt=0"`
	Alpha      float64
	ColumnName string
	Validate   bool
}

// EMA appends the exponential moving average of priceCol to t, named
// `<price_col>_ema_<period>` unless overridden. The first non-NaN cell is
// the SMA seed at index period-1.
func EMA(t *table.Table, priceCol string, opts EMAOptions) (*table.Table, error) {
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

	out, err := rolling.EMA(col, opts.Period, opts.Alpha)
	if err != nil {
		return nil, err
	}
	name := outputName(opts.ColumnName, priceCol, "ema", opts.Period)
	return t.WithColumn(name, out)
}
