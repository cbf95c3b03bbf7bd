package strategy

import (
	"fmt"
	"math"

	"github.com/newthinker/tsmom/internal/core"
	"github.com/newthinker/tsmom/internal/series"
)

// TradingDaysPerYear is the annualization constant for daily data.
const TradingDaysPerYear = 252

// Summary holds annualized performance statistics for one daily return
// series. Zero risk-free rate is assumed for the Sharpe ratio.
type Summary struct {
	AnnualizedReturn     float64
	AnnualizedVolatility float64
	SharpeRatio          float64
}

// Performance reduces a daily return series to annualized return,
// annualized volatility and Sharpe ratio. Missing cells are dropped
// before anything is computed. Fewer than two remaining observations is
// core.ErrDegenerateInput. Exactly zero volatility is not an error: the
// summary is returned with SharpeRatio = NaN, since the ratio is
// undefined there.
func Performance(cells []series.Cell) (Summary, error) {
	var obs []float64
	for _, cell := range cells {
		if cell.Valid {
			obs = append(obs, cell.Value)
		}
	}
	if len(obs) == 0 {
		return Summary{}, core.WrapError(core.ErrDegenerateInput,
			fmt.Errorf("no observations after dropping missing values"))
	}
	if len(obs) < 2 {
		return Summary{}, core.WrapError(core.ErrDegenerateInput,
			fmt.Errorf("need at least 2 observations for a volatility, got %d", len(obs)))
	}

	var sum float64
	allEqual := true
	for _, r := range obs {
		sum += r
		if r != obs[0] {
			allEqual = false
		}
	}

	mean := sum / float64(len(obs))

	// A constant series has zero deviation by definition; measuring
	// against the rounded mean would leave float residue and break the
	// zero-volatility contract.
	var std float64
	if !allEqual {
		var sq float64
		for _, r := range obs {
			d := r - mean
			sq += d * d
		}
		std = math.Sqrt(sq / float64(len(obs)-1))
	}

	s := Summary{
		AnnualizedReturn:     mean * TradingDaysPerYear,
		AnnualizedVolatility: std * math.Sqrt(TradingDaysPerYear),
	}
	if s.AnnualizedVolatility > 0 {
		s.SharpeRatio = s.AnnualizedReturn / s.AnnualizedVolatility
	} else {
		s.SharpeRatio = math.NaN()
	}
	return s, nil
}
