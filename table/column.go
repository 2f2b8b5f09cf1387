// Package table provides the columnar data model the indicator, strategy,
// backtest, and optimizer layers are built on: dense float64 columns with
// IEEE-754 NaN as the missing-value marker, grouped into named, equal-length
// tables.
package table

import "math"

// TempPrefix marks columns that are intermediate results of a cascaded
// computation (e.g. HMA's raw pre-smoothing series). Columns named with
// this prefix are never returned to a caller; DropTemp (see table.go)
// strips them before a Table crosses back out of an indicator function.
const TempPrefix = "__tmp_"

// Column is an ordered, dense sequence of float64 values. NaN marks "not
// yet computable" or "missing" — there is no separate validity bitmap.
type Column []float64

// NewColumn allocates a Column of length n, every cell set to NaN.
func NewColumn(n int) Column {
	c := make(Column, n)
	for i := range c {
		c[i] = math.NaN()
	}
	return c
}

// Clone returns an independent copy of the column.
func (c Column) Clone() Column {
	out := make(Column, len(c))
	copy(out, c)
	return out
}

// Len returns the number of cells in the column.
func (c Column) Len() int {
	return len(c)
}

// IsNaN reports whether cell i is the NaN sentinel. Out-of-range indices
// are treated as NaN.
func (c Column) IsNaN(i int) bool {
	if i < 0 || i >= len(c) {
		return true
	}
	return math.IsNaN(c[i])
}

// FirstValidIndex returns the index of the first non-NaN cell, or -1 if the
// column is entirely NaN.
func (c Column) FirstValidIndex() int {
	for i, v := range c {
		if !math.IsNaN(v) {
			return i
		}
	}
	return -1
}

// Finite reports whether v is neither NaN nor +/-Inf — used anywhere the
// spec calls for "not finite" to propagate as NaN or invalid state (e.g.
// RSI, crossover detection).
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// LessOrdered reports whether a < b, treating either operand being NaN as
// "not ordered" (returns false). Go's default `<` already does this for
// NaN, but comparisons here are spelled out explicitly per the spec's
// requirement that NaN-as-non-ordered never rely on implicit language
// semantics alone.
func LessOrdered(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	return a < b
}

// LessOrEqualOrdered reports whether a <= b, treating NaN as not ordered.
func LessOrEqualOrdered(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	return a <= b
}
