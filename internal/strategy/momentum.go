package strategy

import (
	"fmt"

	"github.com/newthinker/tsmom/internal/core"
	"github.com/newthinker/tsmom/internal/series"
)

// Momentum computes the compounded trailing return per asset:
//
//	momentum[t] = (1+r[t-L]) * ... * (1+r[t-1]) - 1
//
// The window ends the day BEFORE t; including day t's own return would
// leak same-day information into the signal. Cells are missing wherever
// the window reaches before the start of history or contains a missing
// return. Works for any positive lookback; if lookback >= the number of
// rows every cell is missing.
func Momentum(returns *series.Frame, lookback int) (*series.Frame, error) {
	if lookback < 1 {
		return nil, core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("lookback must be positive, got %d", lookback))
	}

	rows := returns.Rows()
	cols := returns.Cols()
	cells := make([][]series.Cell, rows)
	for t := 0; t < rows; t++ {
		cells[t] = make([]series.Cell, cols)
	}

	for c := 0; c < cols; c++ {
		for t := lookback; t < rows; t++ {
			cells[t][c] = compound(returns, c, t-lookback, t)
		}
	}
	return series.New(returns.Dates(), returns.Columns(), cells)
}

// compound multiplies up (1+r) over rows [from, to) of column c,
// returning a missing cell if any return in the window is missing.
func compound(returns *series.Frame, c, from, to int) series.Cell {
	prod := 1.0
	for k := from; k < to; k++ {
		cell := returns.At(k, c)
		if !cell.Valid {
			return series.Cell{}
		}
		prod *= 1 + cell.Value
	}
	return series.Present(prod - 1)
}
