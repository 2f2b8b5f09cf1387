package optimize

import (
	"testing"

	"github.com/kieranhollis/quantcore/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameterHeatmap_AveragesDuplicateCells(t *testing.T) {
	tbl, err := table.New(
		[]string{"fast", "slow", "sharpe_ratio"},
		map[string][]float64{
			"fast":         {3, 3, 5},
			"slow":         {10, 10, 10},
			"sharpe_ratio": {0.2, 0.4, 1.0},
		},
	)
	require.NoError(t, err)

	heatmap, err := ParameterHeatmap(tbl, "fast", "slow", "sharpe_ratio")
	require.NoError(t, err)
	assert.Equal(t, 2, heatmap.Rows())

	fast, _ := heatmap.Column("fast")
	sharpe, _ := heatmap.Column("sharpe_ratio")
	for i, f := range fast {
		if f == 3 {
			assert.InDelta(t, 0.3, sharpe[i], 1e-9)
		}
		if f == 5 {
			assert.InDelta(t, 1.0, sharpe[i], 1e-9)
		}
	}
}

func TestParameterHeatmap_MissingColumnFails(t *testing.T) {
	tbl, err := table.New([]string{"fast"}, map[string][]float64{"fast": {3, 5}})
	require.NoError(t, err)

	_, err = ParameterHeatmap(tbl, "fast", "slow", "sharpe_ratio")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrColumnMissing)
}
