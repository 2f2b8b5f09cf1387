package indicators

import (
	"fmt"

	"github.com/kieranhollis/quantcore/rolling"
)

// ErrColumnMissing is wrapped when the requested price column isn't in the
// input table.
var ErrColumnMissing = fmt.Errorf("column missing")

// ErrInvalidPeriod is wrapped when a window length is <= 0.
var ErrInvalidPeriod = fmt.Errorf("invalid period")

// ErrInvalidAlpha is wrapped when a smoothing factor falls outside (0, 1].
// It is the rolling kernel's sentinel, so errors from the underlying EMA
// match it.
var ErrInvalidAlpha = rolling.ErrInvalidAlpha

// ErrInvalidWeights is wrapped when a custom WMA weight vector's length
// doesn't match the requested period. It is the rolling kernel's sentinel,
// so errors from the underlying weighted mean match it.
var ErrInvalidWeights = rolling.ErrInvalidWeights

// ErrInsufficientData is wrapped when validate=true and the input has fewer
// rows than the indicator's minimum window requires.
var ErrInsufficientData = fmt.Errorf("insufficient data")

// ErrInvalidSmoothingConstants is wrapped by KAMA when fast >= slow or
// either is non-positive.
var ErrInvalidSmoothingConstants = fmt.Errorf("invalid smoothing constants")

// ErrFastNotLessThanSlow is wrapped by MACD when fast >= slow.
var ErrFastNotLessThanSlow = fmt.Errorf("fast period must be less than slow period")

func columnMissingError(name string) error {
	return fmt.Errorf("%w: %q", ErrColumnMissing, name)
}

func invalidPeriodError(period int) error {
	return fmt.Errorf("%w: %d", ErrInvalidPeriod, period)
}

func invalidAlphaError(alpha float64) error {
	return fmt.Errorf("%w: %v", ErrInvalidAlpha, alpha)
}

func insufficientDataError(rows, want int) error {
	return fmt.Errorf("%w: have %d rows, need at least %d", ErrInsufficientData, rows, want)
}
