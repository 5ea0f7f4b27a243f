// Package evolution derives epidemiological signals from the raw case-count tables.
package evolution

import (
	"fmt"

	"github.com/sartorproj/epitrend/area"
	"github.com/sartorproj/epitrend/dataset"
	"github.com/sartorproj/epitrend/smooth"
	"github.com/sartorproj/epitrend/timeseries"
)

// Transformer computes signals for areas of one dataset. It holds no mutable state
// and is safe for concurrent use.
type Transformer struct {
	data      *dataset.Dataset
	smoothing smooth.Params
}

// NewTransformer creates a transformer. smoothing is used by the SmoothedCurvature
// and R0 evolution types; smooth.Disabled skips it.
func NewTransformer(data *dataset.Dataset, smoothing smooth.Params) (*Transformer, error) {
	if err := smoothing.Validate(); err != nil {
		return nil, err
	}
	return &Transformer{
		data:      data,
		smoothing: smoothing,
	}, nil
}

// Dataset returns the underlying dataset.
func (t *Transformer) Dataset() *dataset.Dataset {
	return t.data
}

// Smoothing returns the smoothing parameters.
func (t *Transformer) Smoothing() smooth.Params {
	return t.smoothing
}

// Cumulative returns the cumulative indicator signal for an area over the full,
// unfiltered date axis.
func (t *Transformer) Cumulative(name string, ind Indicator) ([]float64, error) {
	return cumulative(t.data, area.Resolve(name), ind)
}

// Evolve computes the signal of an area for an indicator and evolution type,
// restricted to the dates on or after the dataset start date.
func (t *Transformer) Evolve(name string, ind Indicator, kind Kind) (*timeseries.Series, error) {
	c, err := t.Cumulative(name, ind)
	if err != nil {
		return nil, err
	}
	values, err := Transform(c, kind, t.smoothing)
	if err != nil {
		return nil, fmt.Errorf("%s %v: %w", name, ind, err)
	}

	s := t.data.Axis.Apply(values)
	s.Name = fmt.Sprintf("%s %v %v", name, ind, kind)
	return s, nil
}
