package strategy

import (
	"fmt"
	"math"

	"github.com/newthinker/tsmom/internal/core"
	"github.com/newthinker/tsmom/internal/series"
)

// RollingVolatility computes annualized realized volatility per asset:
// the sample standard deviation of returns over the trailing window
// [t-W+1, t] (the current day included), times sqrt(252). Cells are
// missing where the window is incomplete or contains a missing return.
// A window of 1 is accepted but yields an all-missing frame, since the
// sample standard deviation needs two observations.
func RollingVolatility(returns *series.Frame, window int) (*series.Frame, error) {
	if window < 1 {
		return nil, core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("volatility window must be positive, got %d", window))
	}

	rows := returns.Rows()
	cols := returns.Cols()
	cells := make([][]series.Cell, rows)
	for t := 0; t < rows; t++ {
		cells[t] = make([]series.Cell, cols)
	}
	if window < 2 {
		return series.New(returns.Dates(), returns.Columns(), cells)
	}

	annualize := math.Sqrt(TradingDaysPerYear)
	for c := 0; c < cols; c++ {
		for t := window - 1; t < rows; t++ {
			std, ok := sampleStd(returns, c, t-window+1, t+1)
			if ok {
				cells[t][c] = series.Present(std * annualize)
			}
		}
	}
	return series.New(returns.Dates(), returns.Columns(), cells)
}

// sampleStd computes the sample standard deviation of rows [from, to) of
// column c. Two passes: mean first, then squared deviations, so float
// cancellation cannot produce a negative variance. A constant window
// short-circuits to exactly zero rather than carrying the rounded mean's
// residue. ok is false if any cell in the window is missing.
func sampleStd(returns *series.Frame, c, from, to int) (std float64, ok bool) {
	n := to - from
	first := returns.At(from, c)
	var sum float64
	allEqual := true
	for k := from; k < to; k++ {
		cell := returns.At(k, c)
		if !cell.Valid {
			return 0, false
		}
		if cell.Value != first.Value {
			allEqual = false
		}
		sum += cell.Value
	}
	if allEqual {
		return 0, true
	}
	mean := sum / float64(n)

	var sq float64
	for k := from; k < to; k++ {
		d := returns.At(k, c).Value - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(n-1)), true
}
