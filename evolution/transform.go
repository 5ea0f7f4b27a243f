package evolution

import (
	"fmt"
	"math"

	"github.com/sartorproj/epitrend/smooth"
	"github.com/sartorproj/epitrend/timeseries"
)

// R0Lag is the number of days between the two daily values compared by R0.
const R0Lag = 5

type transform func(cumulative []float64, smoothing smooth.Params) ([]float64, error)

var transforms = map[Kind]transform{
	Cumulative:        identity,
	Daily:             daily,
	Curvature:         curvature,
	SmoothedCurvature: smoothedCurvature,
	R0:                reproduction,
}

// Transform applies an evolution type to a full-length cumulative signal. The result
// always has the same length as the input; heads that have no defined value are
// zero-padded as documented per kind.
func Transform(cumulative []float64, kind Kind, smoothing smooth.Params) ([]float64, error) {
	fn, ok := transforms[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
	out, err := fn(cumulative, smoothing)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", kind, err)
	}
	if len(out) != len(cumulative) {
		panic(fmt.Sprintf("evolution: %v produced %d values for %d", kind, len(out), len(cumulative)))
	}
	return out, nil
}

func identity(c []float64, _ smooth.Params) ([]float64, error) {
	return append([]float64(nil), c...), nil
}

func daily(c []float64, _ smooth.Params) ([]float64, error) {
	return timeseries.DiffPadded(c, 1), nil
}

func curvature(c []float64, _ smooth.Params) ([]float64, error) {
	return timeseries.DiffPadded(c, 2), nil
}

// smoothedCurvature differentiates the smoothed daily increments; the first two
// entries are zero.
func smoothedCurvature(c []float64, smoothing smooth.Params) ([]float64, error) {
	if len(c) < 2 {
		return nil, fmt.Errorf("%w: %d values, need 2", ErrSeriesTooShort, len(c))
	}
	s, err := smoothing.Apply(timeseries.Diff(c))
	if err != nil {
		return nil, err
	}
	return timeseries.PadLeft(timeseries.Diff(s), 2), nil
}

// reproduction divides the smoothed daily increment by its value R0Lag days earlier.
// The first entry is the zero pad; the next R0Lag entries have no earlier value and
// are NaN.
func reproduction(c []float64, smoothing smooth.Params) ([]float64, error) {
	if len(c) < R0Lag+2 {
		return nil, fmt.Errorf("%w: %d values, need %d", ErrSeriesTooShort, len(c), R0Lag+2)
	}
	s, err := smoothing.Apply(timeseries.Diff(c))
	if err != nil {
		return nil, err
	}
	r := make([]float64, len(s))
	for i := range r {
		if i < R0Lag {
			r[i] = math.NaN()
			continue
		}
		r[i] = s[i] / s[i-R0Lag]
	}
	return timeseries.PadLeft(r, 1), nil
}
