package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/newthinker/tsmom/internal/core"
)

type Config struct {
	Data     DataConfig     `mapstructure:"data"`
	Strategy StrategyConfig `mapstructure:"strategy"`
}

type DataConfig struct {
	Path string `mapstructure:"path"`
}

type StrategyConfig struct {
	LookbackDays int     `mapstructure:"lookback_days"`
	VolWindow    int     `mapstructure:"vol_window"` // 0 follows lookback_days
	TargetVol    float64 `mapstructure:"target_vol"`
}

// ResolvedVolWindow returns the volatility window, falling back to the
// momentum lookback when none was configured.
func (s StrategyConfig) ResolvedVolWindow() int {
	if s.VolWindow > 0 {
		return s.VolWindow
	}
	return s.LookbackDays
}

// Load reads configuration from file
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Support environment variable overrides
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Expand environment variables in string values
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	cfg := Defaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg, nil
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{
		Data: DataConfig{
			Path: "data/price_data.csv",
		},
		Strategy: StrategyConfig{
			LookbackDays: 252,
			VolWindow:    0, // follow lookback_days
			TargetVol:    0.10,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Data.Path == "" {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("data path cannot be empty"))
	}
	if c.Strategy.LookbackDays < 1 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("lookback_days must be positive, got %d", c.Strategy.LookbackDays))
	}
	if c.Strategy.VolWindow < 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("vol_window cannot be negative, got %d", c.Strategy.VolWindow))
	}
	if c.Strategy.TargetVol <= 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("target_vol must be positive, got %f", c.Strategy.TargetVol))
	}
	return nil
}
