package optimize

import (
	"testing"

	"github.com/kieranhollis/quantcore/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_SizeIsProductOfLevelCardinalities(t *testing.T) {
	grid := NewGrid(
		[]string{"fast", "slow"},
		map[string]Level{
			"fast": RangeLevel{Min: 2, Max: 5},  // 4 values
			"slow": RangeLevel{Min: 10, Max: 14}, // 5 values
		},
	)
	assert.Equal(t, 20, grid.Size())
	assert.Len(t, grid.Combinations(), 20)
}

func TestGrid_CombinationsCoverEveryPair(t *testing.T) {
	grid := NewGrid(
		[]string{"fast", "slow"},
		map[string]Level{
			"fast": ListLevel{Values: []float64{2, 3}},
			"slow": ListLevel{Values: []float64{10, 20}},
		},
	)
	combos := grid.Combinations()
	require.Len(t, combos, 4)

	seen := make(map[[2]float64]bool)
	for _, c := range combos {
		seen[[2]float64{c["fast"], c["slow"]}] = true
	}
	assert.True(t, seen[[2]float64{2, 10}])
	assert.True(t, seen[[2]float64{2, 20}])
	assert.True(t, seen[[2]float64{3, 10}])
	assert.True(t, seen[[2]float64{3, 20}])
}

func TestGrid_EmptyRangeYieldsNoCombinations(t *testing.T) {
	grid := NewGrid([]string{"fast"}, map[string]Level{"fast": RangeLevel{Min: 5, Max: 2}})
	assert.Equal(t, 0, grid.Size())
	assert.Empty(t, grid.Combinations())
}

func TestNewGridForKind_RejectsUnknownParameterName(t *testing.T) {
	_, err := NewGridForKind(
		strategy.KindSmaCross,
		[]string{"fast", "not_a_real_param"},
		map[string]Level{
			"fast":             RangeLevel{Min: 2, Max: 5},
			"not_a_real_param": ListLevel{Values: []float64{1}},
		},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestNewGridForKind_AcceptsDeclaredParameters(t *testing.T) {
	grid, err := NewGridForKind(
		strategy.KindRsiThreshold,
		[]string{"period", "oversold", "overbought"},
		map[string]Level{
			"period":     RangeLevel{Min: 10, Max: 14},
			"oversold":   ListLevel{Values: []float64{20, 30}},
			"overbought": ListLevel{Values: []float64{70, 80}},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, 5*2*2, grid.Size())
}
