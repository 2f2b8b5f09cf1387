package strategy

import "github.com/kieranhollis/quantcore/table"

// SignalResult is GenerateSignals' return value. Table carries every
// original and indicator column plus the numeric "signal" (-1/0/1) and
// "signal_strength" ([0,1]) columns; Reasons is the row-aligned
// "signal_reason" string, held outside Table because table.Column is
// strictly []float64 — there is no mixed-type column in the data model.
type SignalResult struct {
	Table   *table.Table
	Reasons []string
}

func buildResult(t *table.Table, signal, strength []float64, reasons []string) (SignalResult, error) {
	out, err := t.WithColumns(
		[]string{"signal", "signal_strength"},
		map[string]table.Column{"signal": signal, "signal_strength": strength},
	)
	if err != nil {
		return SignalResult{}, err
	}
	return SignalResult{Table: out, Reasons: reasons}, nil
}
