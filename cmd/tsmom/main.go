package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "tsmom",
	Short: "TSMOM - Time Series Momentum strategy runner",
	Long: `TSMOM computes a time-series momentum trading strategy from daily
price data: trailing momentum drives long/short positions, positions are
scaled by inverse realized volatility to a target risk level, and the
result is reported as annualized performance statistics.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
