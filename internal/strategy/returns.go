// Package strategy implements the time-series momentum pipeline: daily
// returns, trailing momentum, long/short signals, realized volatility,
// vol-scaled strategy returns and annualized performance. Every stage is
// a pure function from frames to a new frame; nothing here keeps state.
package strategy

import (
	"github.com/newthinker/tsmom/internal/series"
)

// Returns converts prices to day-over-day simple returns:
// r[t] = p[t]/p[t-1] - 1. The first row has no prior price and is
// missing; so is any cell whose own or prior price is missing or whose
// prior price is zero. Shape, index and column order match the input.
func Returns(prices *series.Frame) (*series.Frame, error) {
	rows := prices.Rows()
	cols := prices.Cols()
	cells := make([][]series.Cell, rows)
	for t := 0; t < rows; t++ {
		row := make([]series.Cell, cols)
		if t > 0 {
			for c := 0; c < cols; c++ {
				cur := prices.At(t, c)
				prev := prices.At(t-1, c)
				if cur.Valid && prev.Valid && prev.Value != 0 {
					row[c] = series.Present(cur.Value/prev.Value - 1)
				}
			}
		}
		cells[t] = row
	}
	return series.New(prices.Dates(), prices.Columns(), cells)
}
