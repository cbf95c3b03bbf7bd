package strategy

import (
	"fmt"

	"github.com/newthinker/tsmom/internal/core"
	"github.com/newthinker/tsmom/internal/series"
)

// AggregateColumn labels the equal-weight portfolio column appended to
// the strategy-return frame. No asset may use this name.
const AggregateColumn = "TSMOM"

// StrategyReturns combines signal, lagged volatility and return into a
// risk-scaled strategy return per asset:
//
//	strat[t] = signal[t] * (targetVol / vol[t-1]) * return[t]
//
// The volatility is the PREVIOUS day's estimate: sizing today's position
// with today's volatility would be look-ahead bias. A cell is missing if
// any input cell is missing, if there is no prior row, or if the lagged
// volatility is exactly zero (the scale is undefined; nothing is
// zero-filled). The output carries one extra column, AggregateColumn:
// the unweighted mean of the valid asset cells in the row, missing only
// when every asset cell is missing.
func StrategyReturns(signals, returns, vol *series.Frame, targetVol float64) (*series.Frame, error) {
	if targetVol <= 0 {
		return nil, core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("target volatility must be positive, got %g", targetVol))
	}
	if !signals.SameShape(returns) {
		return nil, core.WrapError(core.ErrShapeMismatch,
			fmt.Errorf("signal and return tables disagree"))
	}
	if !signals.SameShape(vol) {
		return nil, core.WrapError(core.ErrShapeMismatch,
			fmt.Errorf("signal and volatility tables disagree"))
	}
	if returns.HasColumn(AggregateColumn) {
		return nil, core.WrapError(core.ErrShapeMismatch,
			fmt.Errorf("asset column %q collides with the aggregate label", AggregateColumn))
	}

	rows := returns.Rows()
	cols := returns.Cols()
	columns := append(returns.Columns(), AggregateColumn)
	cells := make([][]series.Cell, rows)
	for t := 0; t < rows; t++ {
		row := make([]series.Cell, cols+1)
		var sum float64
		var valid int
		for c := 0; c < cols; c++ {
			if t == 0 {
				continue // no lagged volatility
			}
			sig := signals.At(t, c)
			r := returns.At(t, c)
			lagged := vol.At(t-1, c)
			if !sig.Valid || !r.Valid || !lagged.Valid || lagged.Value == 0 {
				continue
			}
			v := sig.Value * (targetVol / lagged.Value) * r.Value
			row[c] = series.Present(v)
			sum += v
			valid++
		}
		if valid > 0 {
			row[cols] = series.Present(sum / float64(valid))
		}
		cells[t] = row
	}
	return series.New(returns.Dates(), columns, cells)
}
