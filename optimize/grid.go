package optimize

import (
	"math"

	"github.com/kieranhollis/quantcore/strategy"
)

// Level is a finite sequence of typed values a parameter can take during a
// sweep: an inclusive integer range or a literal (possibly heterogeneous)
// list. Every level is materialized as float64, matching the rest of the
// module's all-float64 column convention.
type Level interface {
	values() []float64
}

// RangeLevel is an inclusive integer range, stepped by 1.
type RangeLevel struct {
	Min, Max int
}

func (r RangeLevel) values() []float64 {
	if r.Max < r.Min {
		return nil
	}
	out := make([]float64, 0, r.Max-r.Min+1)
	for v := r.Min; v <= r.Max; v++ {
		out = append(out, float64(v))
	}
	return out
}

// ListLevel is an explicit, possibly heterogeneous, list of scalar values.
type ListLevel struct {
	Values []float64
}

func (l ListLevel) values() []float64 {
	return l.Values
}

// Grid is a named collection of parameter levels. Names fixes the
// iteration order used both to build the Cartesian product and as the
// resulting result table's parameter-column order — Go maps don't keep
// insertion order, so Names carries it explicitly.
type Grid struct {
	Names  []string
	Levels map[string]Level
}

// NewGrid builds a Grid from an ordered name list and a level lookup. It
// panics if a name in order has no matching level — a caller-side
// programming error, not a runtime condition to recover from.
func NewGrid(order []string, levels map[string]Level) Grid {
	for _, name := range order {
		if _, ok := levels[name]; !ok {
			panic("optimize: grid level missing for parameter " + name)
		}
	}
	return Grid{Names: order, Levels: levels}
}

// Size returns the Cartesian product's cardinality without materializing
// it — Π|range_i|.
func (g Grid) Size() int {
	size := 1
	for _, name := range g.Names {
		size *= len(g.Levels[name].values())
	}
	return size
}

// Combinations expands the grid into every parameter assignment, in
// deterministic dispatch order: the last name in g.Names varies fastest.
func (g Grid) Combinations() []map[string]float64 {
	if len(g.Names) == 0 {
		return nil
	}

	axes := make([][]float64, len(g.Names))
	total := 1
	for i, name := range g.Names {
		axes[i] = g.Levels[name].values()
		total *= len(axes[i])
	}
	if total == 0 {
		return nil
	}

	combos := make([]map[string]float64, total)
	for idx := 0; idx < total; idx++ {
		row := make(map[string]float64, len(g.Names))
		rem := idx
		for i := len(axes) - 1; i >= 0; i-- {
			n := len(axes[i])
			row[g.Names[i]] = axes[i][rem%n]
			rem /= n
		}
		combos[idx] = row
	}
	return combos
}

// NewGridForKind builds a Grid for kind, validating that every name in
// order is one of kind's declared parameters (per strategy.ParametersFor)
// before accepting the level map. An unrecognized name is rejected rather
// than silently swept.
func NewGridForKind(kind strategy.Kind, order []string, levels map[string]Level) (Grid, error) {
	valid := make(map[string]bool)
	for _, p := range strategy.ParametersFor(kind) {
		valid[p.Name] = true
	}
	for _, name := range order {
		if !valid[name] {
			return Grid{}, unknownOptionError(name)
		}
	}
	return NewGrid(order, levels), nil
}

func clampPercent(v float64) int {
	return int(math.Floor(math.Max(0, math.Min(100, v))))
}
