package backtest

import "fmt"

// ErrMissingSignalColumn is wrapped when the input table has no "signal"
// column to drive the portfolio walk.
var ErrMissingSignalColumn = fmt.Errorf("missing signal column")

// ErrColumnMissing is wrapped when the requested price column isn't in
// the input table.
var ErrColumnMissing = fmt.Errorf("column missing")

// ErrInsufficientData is wrapped on an empty input table.
var ErrInsufficientData = fmt.Errorf("insufficient data")

// ErrInvalidConfig is wrapped when a Config fails struct-tag validation
// after defaulting (e.g. a negative Commission or Slippage).
var ErrInvalidConfig = fmt.Errorf("invalid config")

func columnMissingError(name string) error {
	return fmt.Errorf("%w: %q", ErrColumnMissing, name)
}

func invalidConfigError(cause error) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, cause)
}
