package strategy

import (
	"errors"

	"go.uber.org/zap"

	"github.com/newthinker/tsmom/internal/core"
	"github.com/newthinker/tsmom/internal/series"
)

// Options parameterizes a pipeline run.
type Options struct {
	LookbackDays int     // momentum window, trading days
	VolWindow    int     // volatility window, trading days
	TargetVol    float64 // target annualized volatility for position sizing
}

// Result carries every intermediate frame plus the final statistics, so
// callers and tests can inspect any stage.
type Result struct {
	Prices     *series.Frame
	Returns    *series.Frame
	Momentum   *series.Frame
	Signals    *series.Frame
	Volatility *series.Frame
	Strategy   *series.Frame

	// Portfolio summarizes the equal-weight aggregate column.
	Portfolio Summary
	// PerAsset holds a summary per asset column; assets whose strategy
	// returns are too degenerate to evaluate are absent.
	PerAsset map[string]Summary
}

// Run executes the full pipeline on a price frame. Stages run strictly
// in order and each produces a fresh frame; any stage error aborts the
// run. log may be nil.
func Run(prices *series.Frame, opts Options, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("loaded prices",
		zap.Int("rows", prices.Rows()),
		zap.Strings("assets", prices.Columns()))

	returns, err := Returns(prices)
	if err != nil {
		return nil, err
	}
	log.Debug("computed daily returns", zap.Int("rows", returns.Rows()))

	momentum, err := Momentum(returns, opts.LookbackDays)
	if err != nil {
		return nil, err
	}
	log.Debug("computed momentum", zap.Int("lookback_days", opts.LookbackDays))

	signals, err := Signals(momentum)
	if err != nil {
		return nil, err
	}

	vol, err := RollingVolatility(returns, opts.VolWindow)
	if err != nil {
		return nil, err
	}
	log.Debug("computed volatility", zap.Int("window", opts.VolWindow))

	strat, err := StrategyReturns(signals, returns, vol, opts.TargetVol)
	if err != nil {
		return nil, err
	}
	log.Debug("computed strategy returns", zap.Float64("target_vol", opts.TargetVol))

	aggregate, err := strat.Column(AggregateColumn)
	if err != nil {
		return nil, core.WrapError(core.ErrShapeMismatch, err)
	}
	portfolio, err := Performance(aggregate)
	if err != nil {
		return nil, err
	}

	perAsset := make(map[string]Summary)
	for _, asset := range prices.Columns() {
		col, err := strat.Column(asset)
		if err != nil {
			return nil, core.WrapError(core.ErrShapeMismatch, err)
		}
		s, err := Performance(col)
		if errors.Is(err, core.ErrDegenerateInput) {
			continue
		}
		if err != nil {
			return nil, err
		}
		perAsset[asset] = s
	}

	return &Result{
		Prices:     prices,
		Returns:    returns,
		Momentum:   momentum,
		Signals:    signals,
		Volatility: vol,
		Strategy:   strat,
		Portfolio:  portfolio,
		PerAsset:   perAsset,
	}, nil
}
