package strategy

import (
	"github.com/newthinker/tsmom/internal/series"
)

// Signals maps momentum to a position direction: +1 long, -1 short,
// 0 flat. Zero and missing momentum both map to flat, so the output
// never carries a missing cell; missing information stops propagating
// here and becomes "no position".
func Signals(momentum *series.Frame) (*series.Frame, error) {
	rows := momentum.Rows()
	cols := momentum.Cols()
	cells := make([][]series.Cell, rows)
	for t := 0; t < rows; t++ {
		row := make([]series.Cell, cols)
		for c := 0; c < cols; c++ {
			m := momentum.At(t, c)
			switch {
			case !m.Valid || m.Value == 0:
				row[c] = series.Present(0)
			case m.Value > 0:
				row[c] = series.Present(1)
			default:
				row[c] = series.Present(-1)
			}
		}
		cells[t] = row
	}
	return series.New(momentum.Dates(), momentum.Columns(), cells)
}
