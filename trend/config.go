package trend

import (
	"fmt"

	"github.com/sartorproj/epitrend/evolution"
)

// DefaultFittingPeriod is the default number of days, minus two, in the primary fit.
const DefaultFittingPeriod = 8

// DefaultExtrapolation returns the default forecast horizon in days per indicator.
func DefaultExtrapolation() map[evolution.Indicator]int {
	return map[evolution.Indicator]int{
		evolution.Confirmed: 14,
		evolution.Deaths:    21,
		evolution.Active:    21,
		evolution.DeathRate: 21,
	}
}

// Config holds the trend parameters.
type Config struct {
	FittingPeriod int
	Extrapolation map[evolution.Indicator]int
}

// DefaultConfig returns the default trend parameters.
func DefaultConfig() Config {
	return Config{
		FittingPeriod: DefaultFittingPeriod,
		Extrapolation: DefaultExtrapolation(),
	}
}

// Validate checks the parameters.
func (c Config) Validate() error {
	if c.FittingPeriod < 0 {
		return fmt.Errorf("fitting period must be non-negative, got %d", c.FittingPeriod)
	}
	for ind, days := range c.Extrapolation {
		if days < 0 {
			return fmt.Errorf("extrapolation period of %v must be non-negative, got %d", ind, days)
		}
	}
	return nil
}

// ExtrapolationFor returns the horizon for ind, falling back to the default.
func (c Config) ExtrapolationFor(ind evolution.Indicator) int {
	if days, ok := c.Extrapolation[ind]; ok {
		return days
	}
	return DefaultExtrapolation()[ind]
}

func (c Config) clone() Config {
	out := Config{
		FittingPeriod: c.FittingPeriod,
		Extrapolation: make(map[evolution.Indicator]int, len(c.Extrapolation)),
	}
	for k, v := range c.Extrapolation {
		out.Extrapolation[k] = v
	}
	return out
}
