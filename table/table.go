package table

import (
	"fmt"
	"strings"
)

// ErrColumnExists is wrapped by WithColumn when a caller tries to append a
// column under a name the table already has.
var ErrColumnExists = fmt.Errorf("column already exists")

// ErrColumnMissing is wrapped in the value MustColumn panics with when it
// names a column the table doesn't carry; Column reports a miss with its
// bool result instead.
var ErrColumnMissing = fmt.Errorf("column missing")

// ErrRowCountMismatch is wrapped when a column being added doesn't share
// the table's row count.
var ErrRowCountMismatch = fmt.Errorf("row count mismatch")

// ColumnExistsError reports which name collided.
func ColumnExistsError(name string) error {
	return fmt.Errorf("%w: %q", ErrColumnExists, name)
}

// ColumnMissingError reports which name was looked up and not found.
func ColumnMissingError(name string) error {
	return fmt.Errorf("%w: %q", ErrColumnMissing, name)
}

// RowCountMismatchError reports the expected vs. actual row count.
func RowCountMismatchError(name string, want, got int) error {
	return fmt.Errorf("%w: column %q has %d rows, table has %d", ErrRowCountMismatch, name, got, want)
}

// Table is a mapping from unique column name to Column, every column
// sharing a common row count. Column order is insertion order and is
// preserved by Names/With.
type Table struct {
	names   []string
	columns map[string]Column
	rows    int
}

// New builds a Table from a mapping of column name to float64 slice,
// preserving the order the names are given in. All slices must share the
// same length; the first slice's length becomes the table's row count
// (an empty map produces a zero-row table).
func New(order []string, data map[string][]float64) (*Table, error) {
	t := &Table{
		names:   make([]string, 0, len(order)),
		columns: make(map[string]Column, len(order)),
	}
	for i, name := range order {
		col := data[name]
		if i == 0 {
			t.rows = len(col)
		} else if len(col) != t.rows {
			return nil, RowCountMismatchError(name, t.rows, len(col))
		}
		t.names = append(t.names, name)
		t.columns[name] = Column(col)
	}
	return t, nil
}

// FromRows builds a Table from row records: a slice of uniform-keyed maps,
// one column per distinct key. Keys are collected in Go's map iteration
// order, which is randomized, so the resulting column order is not
// deterministic across runs.
func FromRows(rows []map[string]float64) *Table {
	t := &Table{columns: make(map[string]Column), rows: len(rows)}
	seen := make(map[string]bool)
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				t.names = append(t.names, k)
			}
		}
	}
	for _, name := range t.names {
		col := NewColumn(t.rows)
		for i, row := range rows {
			if v, ok := row[name]; ok {
				col[i] = v
			}
		}
		t.columns[name] = col
	}
	return t
}

// Rows returns the table's row count.
func (t *Table) Rows() int {
	return t.rows
}

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Has reports whether the table carries a column with the given name.
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Column returns the named column and whether it was found.
func (t *Table) Column(name string) (Column, bool) {
	c, ok := t.columns[name]
	return c, ok
}

// MustColumn returns the named column, panicking if absent. Reserved for
// call sites that have already validated the column exists (e.g.
// immediately after WithColumn appended it under a known name).
func (t *Table) MustColumn(name string) Column {
	c, ok := t.columns[name]
	if !ok {
		panic(ColumnMissingError(name))
	}
	return c
}

// Clone returns a shallow copy of the table: a new names slice and column
// map, but the underlying Column slices are shared by reference. Tables
// are read-only observers of their columns, so sharing is safe — no
// indicator ever mutates a column in place.
func (t *Table) Clone() *Table {
	out := &Table{
		names:   make([]string, len(t.names)),
		columns: make(map[string]Column, len(t.columns)),
		rows:    t.rows,
	}
	copy(out.names, t.names)
	for k, v := range t.columns {
		out.columns[k] = v
	}
	return out
}

// WithColumn returns a new table equal to t plus one appended column named
// name. Fails if name already exists or col's length doesn't match the
// table's row count.
func (t *Table) WithColumn(name string, col Column) (*Table, error) {
	if t.Has(name) {
		return nil, ColumnExistsError(name)
	}
	if len(col) != t.rows {
		return nil, RowCountMismatchError(name, t.rows, len(col))
	}
	out := t.Clone()
	out.names = append(out.names, name)
	out.columns[name] = col
	return out, nil
}

// WithColumns appends several columns at once, in the given order, as a
// single new Table. Fails with a nil Table on the first name collision or
// length mismatch; t itself is never modified.
func (t *Table) WithColumns(order []string, cols map[string]Column) (*Table, error) {
	out := t
	for _, name := range order {
		var err error
		out, err = out.WithColumn(name, cols[name])
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Select returns a new table containing only the columns for which keep
// returns true, preserving relative order.
func (t *Table) Select(keep func(name string) bool) *Table {
	out := &Table{
		columns: make(map[string]Column),
		rows:    t.rows,
	}
	for _, name := range t.names {
		if keep(name) {
			out.names = append(out.names, name)
			out.columns[name] = t.columns[name]
		}
	}
	return out
}

// DropTemp returns a new table with every column whose name begins with
// TempPrefix removed. Every indicator that introduces intermediate columns
// must call this before returning its result — it is the boundary
// assertion described in the design notes: temporary columns created
// during a cascaded computation never leak into the caller's table.
func (t *Table) DropTemp() *Table {
	return t.Select(func(name string) bool {
		return !strings.HasPrefix(name, TempPrefix)
	})
}
