package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/newthinker/tsmom/internal/config"
	"github.com/newthinker/tsmom/internal/loader"
	"github.com/newthinker/tsmom/internal/logger"
	"github.com/newthinker/tsmom/internal/strategy"
)

var (
	runData      string
	runLookback  int
	runVolWindow int
	runTargetVol float64
	runPerAsset  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the time series momentum strategy",
	Long:  "Load daily prices, run the TSMOM pipeline and print annualized performance statistics",
	Args:  cobra.NoArgs,
	RunE:  runStrategy,
}

func init() {
	runCmd.Flags().StringVar(&runData, "data", "", "path to price data CSV (default from config)")
	runCmd.Flags().IntVar(&runLookback, "lookback", 0, "momentum look-back period in trading days (default 252)")
	runCmd.Flags().IntVar(&runVolWindow, "vol-window", 0, "volatility window in trading days (default: lookback)")
	runCmd.Flags().Float64Var(&runTargetVol, "target-vol", 0, "target annualized volatility (default 0.10)")
	runCmd.Flags().BoolVar(&runPerAsset, "per-asset", false, "also print per-asset performance")

	rootCmd.AddCommand(runCmd)
}

func runStrategy(cmd *cobra.Command, args []string) error {
	cfg := config.Defaults()
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags override config values.
	if cmd.Flags().Changed("data") {
		cfg.Data.Path = runData
	}
	if cmd.Flags().Changed("lookback") {
		cfg.Strategy.LookbackDays = runLookback
	}
	if cmd.Flags().Changed("vol-window") {
		cfg.Strategy.VolWindow = runVolWindow
	}
	if cmd.Flags().Changed("target-vol") {
		cfg.Strategy.TargetVol = runTargetVol
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(debug)
	if err != nil {
		return err
	}
	defer log.Sync()

	fmt.Printf("Running Time Series Momentum Strategy (lookback=%d days)\n", cfg.Strategy.LookbackDays)
	fmt.Println(strings.Repeat("=", 60))

	prices, err := loader.ReadPrices(cfg.Data.Path)
	if err != nil {
		log.Error("loading prices failed", zap.String("path", cfg.Data.Path), zap.Error(err))
		return err
	}

	result, err := strategy.Run(prices, strategy.Options{
		LookbackDays: cfg.Strategy.LookbackDays,
		VolWindow:    cfg.Strategy.ResolvedVolWindow(),
		TargetVol:    cfg.Strategy.TargetVol,
	}, log)
	if err != nil {
		log.Error("pipeline failed", zap.Error(err))
		return err
	}

	fmt.Println()
	fmt.Println("Performance Metrics (TSMOM Portfolio):")
	printSummary(result.Portfolio)

	if runPerAsset {
		for _, asset := range prices.Columns() {
			fmt.Println()
			fmt.Printf("Performance Metrics (%s):\n", asset)
			if s, ok := result.PerAsset[asset]; ok {
				printSummary(s)
			} else {
				fmt.Println("  n/a (not enough strategy returns)")
			}
		}
	}

	return nil
}

func printSummary(s strategy.Summary) {
	fmt.Printf("  Annualized Return:     %10.4f\n", s.AnnualizedReturn)
	fmt.Printf("  Annualized Volatility: %10.4f\n", s.AnnualizedVolatility)
	fmt.Printf("  Sharpe Ratio:          %10.4f\n", s.SharpeRatio)
}
