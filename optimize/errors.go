package optimize

import "fmt"

// ErrNoValidResults is returned when every combination in a sweep failed
// or timed out, leaving nothing to report.
var ErrNoValidResults = fmt.Errorf("no valid results")

// ErrUnknownOption is wrapped when a caller passes an option key the
// optimizer doesn't recognize.
var ErrUnknownOption = fmt.Errorf("unknown option")

// ErrUnsupportedGridKind is wrapped when a parameter grid is built for a
// strategy kind the optimizer doesn't know how to parameterize.
var ErrUnsupportedGridKind = fmt.Errorf("unsupported grid strategy kind")

// ErrColumnMissing is wrapped when a heatmap axis or metric name isn't a
// column of the results table it's pivoting.
var ErrColumnMissing = fmt.Errorf("column missing")

// ErrInvalidConfig is wrapped when a Config fails struct-tag validation
// after defaulting.
var ErrInvalidConfig = fmt.Errorf("invalid config")

func unknownOptionError(key string) error {
	return fmt.Errorf("%w: %q", ErrUnknownOption, key)
}

func columnMissingError(name string) error {
	return fmt.Errorf("%w: %q", ErrColumnMissing, name)
}

func unsupportedGridKindError(kind string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedGridKind, kind)
}

func invalidConfigError(cause error) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, cause)
}
