package strategy

import (
	"fmt"

	"github.com/kieranhollis/quantcore/table"
)

// ErrMissingIndicatorColumn is wrapped when a strategy's apply_indicators
// step should have produced a column that the signal step can't find.
var ErrMissingIndicatorColumn = fmt.Errorf("missing indicator column")

// ErrUnsupportedStrategy is returned for an unrecognized or reserved Kind.
var ErrUnsupportedStrategy = fmt.Errorf("unsupported strategy")

// ErrInsufficientData is wrapped when the input table has fewer rows than
// the strategy's minimum window requires.
var ErrInsufficientData = fmt.Errorf("insufficient data")

// ErrChildStrategyFailed is wrapped by Composite when one of its children
// fails during signal generation.
var ErrChildStrategyFailed = fmt.Errorf("child strategy failed")

func missingColumnError(name string) error {
	return fmt.Errorf("%w: %q", ErrMissingIndicatorColumn, name)
}

func childFailedError(index int, kind Kind, cause error) error {
	return fmt.Errorf("%w: child %d (%s): %v", ErrChildStrategyFailed, index, kind, cause)
}

func minWindow(s Strategy) int {
	switch s.Kind {
	case KindSmaCross, KindEmaCross:
		return s.Slow + 1
	case KindMacdCross:
		return s.Slow + s.Signal
	case KindRsiThreshold:
		return s.Period + 1
	case KindComposite:
		want := 0
		for _, c := range s.Children {
			if w := minWindow(c); w > want {
				want = w
			}
		}
		return want
	default:
		return 0
	}
}

func validateTable(t *table.Table, s Strategy) error {
	if t.Rows() == 0 {
		return fmt.Errorf("%w: empty table", ErrInsufficientData)
	}
	if s.PriceCol != "" && !t.Has(s.PriceCol) {
		return missingColumnError(s.PriceCol)
	}
	if want := minWindow(s); want > 0 && t.Rows() < want {
		return fmt.Errorf("%w: have %d rows, need at least %d", ErrInsufficientData, t.Rows(), want)
	}
	return nil
}
