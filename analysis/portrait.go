// Package analysis builds the multi-signal views of the pipeline: the phase portrait
// of one area and the curvature scatter across all countries.
package analysis

import (
	"fmt"
	"time"

	"github.com/sartorproj/epitrend/evolution"
)

// DefaultThreshold is the cumulative count above which an area is analysed.
const DefaultThreshold = 100

// Portrait is the trajectory of an area in the (daily, smoothed curvature) plane.
type Portrait struct {
	Area      string
	Dates     []time.Time
	Gradient  []float64
	Curvature []float64
	// ConfinementIndex is the first point on or after the confinement date, or -1.
	ConfinementIndex int
}

// Len returns the number of points.
func (p *Portrait) Len() int {
	return len(p.Dates)
}

// PhasePortrait pairs the daily and smoothed curvature signals of area on the days
// its cumulative count exceeds threshold. Both are then smoothed with the
// transformer's smoothing.
func PhasePortrait(tr *evolution.Transformer, area string, ind evolution.Indicator, threshold float64, confinement time.Time) (*Portrait, error) {
	curv, err := tr.Evolve(area, ind, evolution.SmoothedCurvature)
	if err != nil {
		return nil, err
	}
	grad, err := tr.Evolve(area, ind, evolution.Daily)
	if err != nil {
		return nil, err
	}
	cum, err := tr.Evolve(area, ind, evolution.Cumulative)
	if err != nil {
		return nil, err
	}

	mask := above(cum.Values, threshold)
	curv = curv.Filter(mask)
	grad = grad.Filter(mask)

	p := &Portrait{
		Area:             area,
		Dates:            grad.Dates,
		ConfinementIndex: grad.IndexOnOrAfter(confinement),
	}
	if grad.Len() == 0 {
		return p, nil
	}

	if p.Gradient, err = tr.Smoothing().Apply(grad.Values); err != nil {
		return nil, fmt.Errorf("%s gradient: %w", area, err)
	}
	if p.Curvature, err = tr.Smoothing().Apply(curv.Values); err != nil {
		return nil, fmt.Errorf("%s curvature: %w", area, err)
	}
	return p, nil
}

func above(values []float64, threshold float64) []bool {
	mask := make([]bool, len(values))
	for i, v := range values {
		mask[i] = v > threshold
	}
	return mask
}
