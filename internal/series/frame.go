package series

import (
	"fmt"
	"time"
)

// Cell is one observation in a Frame. A zero Cell is missing; use Present
// to build a valid one. Missing is modeled explicitly rather than through
// NaN so that window arithmetic can count gaps instead of relying on
// float contagion.
type Cell struct {
	Value float64
	Valid bool
}

// Present returns a valid cell holding v.
func Present(v float64) Cell {
	return Cell{Value: v, Valid: true}
}

// Frame is a date-indexed table: one row per trading day, one column per
// asset. Dates are strictly increasing and the column set is fixed at
// construction. A Frame is immutable once built; constructors and
// accessors copy, so no two pipeline stages ever alias the same backing
// storage.
type Frame struct {
	dates   []time.Time
	columns []string
	colIdx  map[string]int
	cells   [][]Cell // row-major: cells[row][col]
}

// New builds a Frame from dates, column names and row-major cells.
// All inputs are copied. Dates must be strictly increasing and columns
// must be unique; every row must have exactly len(columns) cells.
func New(dates []time.Time, columns []string, cells [][]Cell) (*Frame, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("frame needs at least one column")
	}
	if len(cells) != len(dates) {
		return nil, fmt.Errorf("have %d rows of cells for %d dates", len(cells), len(dates))
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			return nil, fmt.Errorf("dates not strictly increasing at row %d (%s >= %s)",
				i, dates[i-1].Format("2006-01-02"), dates[i].Format("2006-01-02"))
		}
	}
	colIdx := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := colIdx[c]; dup {
			return nil, fmt.Errorf("duplicate column %q", c)
		}
		colIdx[c] = i
	}
	f := &Frame{
		dates:   append([]time.Time(nil), dates...),
		columns: append([]string(nil), columns...),
		colIdx:  colIdx,
		cells:   make([][]Cell, len(cells)),
	}
	for i, row := range cells {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(columns))
		}
		f.cells[i] = append([]Cell(nil), row...)
	}
	return f, nil
}

// Rows returns the number of rows (trading days).
func (f *Frame) Rows() int {
	return len(f.dates)
}

// Cols returns the number of columns (assets).
func (f *Frame) Cols() int {
	return len(f.columns)
}

// Date returns the date of row i.
func (f *Frame) Date(i int) time.Time {
	return f.dates[i]
}

// Dates returns a copy of the row index.
func (f *Frame) Dates() []time.Time {
	return append([]time.Time(nil), f.dates...)
}

// Columns returns a copy of the column names in order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.columns...)
}

// HasColumn reports whether the frame carries the named column.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.colIdx[name]
	return ok
}

// At returns the cell at (row, col).
func (f *Frame) At(row, col int) Cell {
	return f.cells[row][col]
}

// Column returns a copy of the named column's cells in row order.
func (f *Frame) Column(name string) ([]Cell, error) {
	idx, ok := f.colIdx[name]
	if !ok {
		return nil, fmt.Errorf("no column %q", name)
	}
	out := make([]Cell, len(f.cells))
	for i, row := range f.cells {
		out[i] = row[idx]
	}
	return out, nil
}

// SameShape reports whether both frames share the same dates and the same
// columns in the same order. Pipeline stages check this at every boundary.
func (f *Frame) SameShape(other *Frame) bool {
	if other == nil || len(f.dates) != len(other.dates) || len(f.columns) != len(other.columns) {
		return false
	}
	for i := range f.dates {
		if !f.dates[i].Equal(other.dates[i]) {
			return false
		}
	}
	for i := range f.columns {
		if f.columns[i] != other.columns[i] {
			return false
		}
	}
	return true
}
