package indicators

import (
	"github.com/kieranhollis/quantcore/table"
)

type crossState int

const (
	stateInvalid crossState = iota
	stateAbove
	stateBelow
	stateEqual
)

func classify(a, b float64) crossState {
	if !table.Finite(a) || !table.Finite(b) {
		return stateInvalid
	}
	switch {
	case a > b:
		return stateAbove
	case a < b:
		return stateBelow
	default:
		return stateEqual
	}
}

// DetectMACDCrossovers appends an integer {-1, 0, 1} crossover column to t
// by walking macdCol and signalCol row by row with a state machine over
// {above, below, equal, invalid}. Row 0 always emits 0. A below→above
// transition emits 1; above→below emits -1; every other transition
// (including any move to/from equal or invalid) emits 0.
func DetectMACDCrossovers(t *table.Table, macdCol, signalCol, outName string) (*table.Table, error) {
	macd, err := priceColumn(t, macdCol)
	if err != nil {
		return nil, err
	}
	signal, err := priceColumn(t, signalCol)
	if err != nil {
		return nil, err
	}

	out := make([]float64, t.Rows())
	if len(out) == 0 {
		return t.WithColumn(outName, out)
	}

	prevState := classify(macd[0], signal[0])
	out[0] = 0

	for i := 1; i < len(out); i++ {
		cur := classify(macd[i], signal[i])
		switch {
		case prevState == stateBelow && cur == stateAbove:
			out[i] = 1
		case prevState == stateAbove && cur == stateBelow:
			out[i] = -1
		default:
			out[i] = 0
		}
		prevState = cur
	}

	return t.WithColumn(outName, out)
}
