package strategy

import (
	"testing"

	"github.com/kieranhollis/quantcore/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSignals_CompositeAllNeverConflictsWithChildren(t *testing.T) {
	values := make([]float64, 26)
	for i := range values {
		values[i] = 95 + float64(i)
	}
	tbl, err := table.New([]string{"close"}, map[string][]float64{"close": values})
	require.NoError(t, err)

	children := []Strategy{
		SmaCross(3, 5, "close"),
		RsiThreshold(14, 30, 70, "close"),
	}
	composite := Composite(children, LogicAll, nil)

	res, err := GenerateSignals(tbl, composite)
	require.NoError(t, err)

	signal, _ := res.Table.Column("signal")
	strength, _ := res.Table.Column("signal_strength")
	assert.Equal(t, len(values), signal.Len())
	assert.Equal(t, len(values), strength.Len())
	assert.Equal(t, len(values), len(res.Reasons))

	childRuns, err := runChildren(tbl, children)
	require.NoError(t, err)
	for i, v := range signal {
		if v == 0 {
			continue
		}
		for _, r := range childRuns {
			assert.Equal(t, v, r.signal[i], "row %d: all-logic signal must match every child", i)
		}
	}
}

func TestGenerateSignals_RejectsReservedBollingerBandsKind(t *testing.T) {
	tbl, err := table.New([]string{"close"}, map[string][]float64{"close": {1, 2, 3}})
	require.NoError(t, err)

	_, err = GenerateSignals(tbl, Strategy{Kind: KindBollingerBands})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedStrategy)
}

func TestGenerateSignals_CompositeChildFailurePropagates(t *testing.T) {
	values := make([]float64, 10)
	for i := range values {
		values[i] = float64(i)
	}
	tbl, err := table.New([]string{"close"}, map[string][]float64{"close": values})
	require.NoError(t, err)

	composite := Composite([]Strategy{SmaCross(3, 5, "open")}, LogicAll, nil)
	_, err = GenerateSignals(tbl, composite)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChildStrategyFailed)
}
