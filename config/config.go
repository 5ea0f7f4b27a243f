// Package config loads the settings of the epitrend driver from an optional yaml
// file and EPITREND_ environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sartorproj/epitrend/dataset"
	"github.com/sartorproj/epitrend/evolution"
	"github.com/sartorproj/epitrend/smooth"
	"github.com/sartorproj/epitrend/timeseries"
	"github.com/sartorproj/epitrend/trend"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix prefixes the environment variables, e.g. EPITREND_SMOOTHING_WINDOW.
const EnvPrefix = "EPITREND"

// Config holds the driver settings.
type Config struct {
	LogLevel    string            `mapstructure:"log_level"`
	Data        DataConfig        `mapstructure:"data"`
	Confinement ConfinementConfig `mapstructure:"confinement"`
	Analysis    AnalysisConfig    `mapstructure:"analysis"`
	Smoothing   SmoothingConfig   `mapstructure:"smoothing"`
	Trend       TrendConfig       `mapstructure:"trend"`
	Output      OutputConfig      `mapstructure:"output"`
}

// DataConfig locates the case-count tables.
type DataConfig struct {
	Source    string `mapstructure:"source"`
	StartDate string `mapstructure:"start_date"`
}

// ConfinementConfig locates the confinement log.
type ConfinementConfig struct {
	Path string `mapstructure:"path"`
}

// AnalysisConfig selects the signal and areas to analyse.
type AnalysisConfig struct {
	Indicator string   `mapstructure:"indicator"`
	Evolution string   `mapstructure:"evolution"`
	Areas     []string `mapstructure:"areas"`
	Threshold float64  `mapstructure:"threshold"`
}

// SmoothingConfig sets the Savitzky-Golay filter; a window of 0 disables it.
type SmoothingConfig struct {
	Window int `mapstructure:"window"`
	Order  int `mapstructure:"order"`
}

// TrendConfig sets the trend fits.
type TrendConfig struct {
	Enabled       bool           `mapstructure:"enabled"`
	FittingPeriod int            `mapstructure:"fitting_period"`
	AsOf          string         `mapstructure:"as_of"`
	Extrapolation map[string]int `mapstructure:"extrapolation"`
}

// OutputConfig selects the exported results.
type OutputConfig struct {
	JSON    string `mapstructure:"json"`
	Scatter bool   `mapstructure:"scatter"`
}

// Load reads the configuration. With an empty path, epitrend.yaml is looked up in
// ./configs and the working directory and may be absent; otherwise path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("epitrend")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")

	v.SetDefault("data.source", dataset.DefaultSource)
	v.SetDefault("data.start_date", "3/1/20")

	v.SetDefault("confinement.path", "confinement.dat")

	v.SetDefault("analysis.indicator", evolution.Confirmed.String())
	v.SetDefault("analysis.evolution", evolution.Daily.String())
	v.SetDefault("analysis.areas", []string{"US", "Italy", "Spain", "Germany", "France"})
	v.SetDefault("analysis.threshold", 100)

	v.SetDefault("smoothing.window", 7)
	v.SetDefault("smoothing.order", 3)

	v.SetDefault("trend.enabled", true)
	v.SetDefault("trend.fitting_period", trend.DefaultFittingPeriod)
	v.SetDefault("trend.as_of", "")
	extrapolation := make(map[string]int)
	for ind, days := range trend.DefaultExtrapolation() {
		extrapolation[ind.String()] = days
	}
	v.SetDefault("trend.extrapolation", extrapolation)

	v.SetDefault("output.json", "trend_results.json")
	v.SetDefault("output.scatter", false)
}

// Validate checks that every setting can be turned into its typed form.
func (c *Config) Validate() error {
	if _, err := c.StartDate(); err != nil {
		return err
	}
	if _, err := c.Indicator(); err != nil {
		return err
	}
	if _, err := c.Kind(); err != nil {
		return err
	}
	if err := c.Smooth().Validate(); err != nil {
		return fmt.Errorf("%w: smoothing: %v", ErrInvalid, err)
	}
	if c.Trend.FittingPeriod < 1 {
		return fmt.Errorf("%w: trend.fitting_period must be at least 1, got %d", ErrInvalid, c.Trend.FittingPeriod)
	}
	if _, err := c.TrendConfig(); err != nil {
		return err
	}
	if c.Trend.AsOf != "" {
		if _, err := timeseries.DateIn(c.Trend.AsOf); err != nil {
			return fmt.Errorf("%w: trend.as_of: %v", ErrInvalid, err)
		}
	}
	return nil
}

// StartDate returns the first date kept on the date axis.
func (c *Config) StartDate() (time.Time, error) {
	d, err := timeseries.DateIn(c.Data.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: data.start_date: %v", ErrInvalid, err)
	}
	return d, nil
}

// Indicator returns the configured indicator.
func (c *Config) Indicator() (evolution.Indicator, error) {
	return parseIndicator(c.Analysis.Indicator)
}

// Kind returns the configured evolution type.
func (c *Config) Kind() (evolution.Kind, error) {
	k, err := evolution.ParseKind(c.Analysis.Evolution)
	if err != nil {
		return 0, fmt.Errorf("%w: analysis.evolution: %v", ErrInvalid, err)
	}
	return k, nil
}

// Smooth returns the smoothing parameters. A window of 0 disables smoothing.
func (c *Config) Smooth() smooth.Params {
	return smooth.Params{Window: c.Smoothing.Window, Order: c.Smoothing.Order}
}

// TrendConfig returns the trend parameters. Indicators missing from
// trend.extrapolation keep their default horizon.
func (c *Config) TrendConfig() (trend.Config, error) {
	out := trend.DefaultConfig()
	out.FittingPeriod = c.Trend.FittingPeriod
	for name, days := range c.Trend.Extrapolation {
		ind, err := parseIndicator(name)
		if err != nil {
			return trend.Config{}, err
		}
		out.Extrapolation[ind] = days
	}
	if err := out.Validate(); err != nil {
		return trend.Config{}, fmt.Errorf("%w: trend: %v", ErrInvalid, err)
	}
	return out, nil
}

// Yesterday returns the last day the trends may use: the day before trend.as_of,
// or before now when as_of is empty.
func (c *Config) Yesterday(now time.Time) (time.Time, error) {
	today := timeseries.Day(now)
	if c.Trend.AsOf != "" {
		d, err := timeseries.DateIn(c.Trend.AsOf)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: trend.as_of: %v", ErrInvalid, err)
		}
		today = d
	}
	return timeseries.AddDays(today, -1), nil
}

// parseIndicator matches indicator names case-insensitively, since viper lowercases
// map keys.
func parseIndicator(name string) (evolution.Indicator, error) {
	for _, ind := range evolution.Indicators() {
		if strings.EqualFold(ind.String(), name) {
			return ind, nil
		}
	}
	return 0, fmt.Errorf("%w: %w: %q", ErrInvalid, evolution.ErrUnknownIndicator, name)
}
