package indicators

import (
	"math"

	"github.com/kieranhollis/quantcore/table"
)

// KAMAOptions configures the Kaufman Adaptive Moving Average. Fast and
// Slow are smoothing-constant periods (not window lengths); Fast must be
// strictly less than Slow and both must be positive.
type KAMAOptions struct {
	Period     int `validate:"gt=0"`
	Fast       int
	Slow       int
	ColumnName string
	Validate   bool
}

// KAMA appends the Kaufman Adaptive Moving Average of priceCol to t, named
// `<price_col>_kama_<period>` unless overridden. Fast defaults to 2 and
// Slow to 30 when left at zero. KAMA is sequential and path-dependent: it
// seeds at index Period with the SMA of x[0..Period], then at every later
// row derives an efficiency ratio from the net change over the window
// versus the sum of per-step absolute changes, squares a blend of the fast
// and slow smoothing constants weighted by that ratio, and walks the
// result forward one row at a time.
func KAMA(t *table.Table, priceCol string, opts KAMAOptions) (*table.Table, error) {
	if err := validate.Struct(opts); err != nil {
		return nil, invalidPeriodError(opts.Period)
	}
	fast := opts.Fast
	if fast == 0 {
		fast = 2
	}
	slow := opts.Slow
	if slow == 0 {
		slow = 30
	}
	if fast <= 0 || slow <= 0 || fast >= slow {
		return nil, ErrInvalidSmoothingConstants
	}
	col, err := priceColumn(t, priceCol)
	if err != nil {
		return nil, err
	}
	if err := checkRows(t, opts.Period+1, opts.Validate); err != nil {
		return nil, err
	}

	fastSC := 2.0 / (float64(fast) + 1.0)
	slowSC := 2.0 / (float64(slow) + 1.0)

	n := len(col)
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	if n <= opts.Period {
		name := outputName(opts.ColumnName, priceCol, "kama", opts.Period)
		return t.WithColumn(name, out)
	}

	var seedSum float64
	for i := 0; i <= opts.Period; i++ {
		seedSum += col[i]
	}
	out[opts.Period] = seedSum / float64(opts.Period+1)

	for i := opts.Period + 1; i < n; i++ {
		change := math.Abs(col[i] - col[i-opts.Period])
		var volatility float64
		for k := 1; k <= opts.Period; k++ {
			volatility += math.Abs(col[i-k+1] - col[i-k])
		}
		var er float64
		if volatility != 0 {
			er = change / volatility
		}
		sc := er*(fastSC-slowSC) + slowSC
		sc *= sc
		out[i] = out[i-1] + sc*(col[i]-out[i-1])
	}

	name := outputName(opts.ColumnName, priceCol, "kama", opts.Period)
	return t.WithColumn(name, out)
}
