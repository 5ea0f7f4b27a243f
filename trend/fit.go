package trend

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/epitrend/timeseries"
)

var (
	// ErrEmptyWindow is returned when no observation falls in the fit window.
	ErrEmptyWindow = errors.New("no observation in fit window")
	// ErrNonPositiveWindow is returned when the fit window has no positive value and
	// some value is zero or not finite, so no logarithm can be taken.
	ErrNonPositiveWindow = errors.New("fit window has no usable value for a log-linear fit")
	// ErrShortExtrapolation is returned when the extrapolation window holds fewer than
	// two days, which leaves no growth rate to compute.
	ErrShortExtrapolation = errors.New("extrapolation window must span at least two days")
)

// Window is an inclusive date range.
type Window struct {
	Begin time.Time
	End   time.Time
}

// Contains reports whether d lies in the window, bounds included.
func (w Window) Contains(d time.Time) bool {
	return !d.Before(w.Begin) && !d.After(w.End)
}

// Days returns the number of calendar days in the window.
func (w Window) Days() int {
	return timeseries.DaysBetween(w.Begin, w.End) + 1
}

func (w Window) String() string {
	return timeseries.DateOut(w.Begin) + " - " + timeseries.DateOut(w.End)
}

// FitWindow pairs the regression window with the forecast horizon.
type FitWindow struct {
	Fit         Window
	Extrapolate Window
}

// Result is a fitted trend evaluated over its extrapolation window.
type Result struct {
	Window FitWindow
	// Dates and Values hold one prediction per day of the extrapolation window.
	Dates  []time.Time
	Values []float64
	// Intercept and Slope are the coefficients of ln|y| against the day offset.
	Intercept float64
	Slope     float64
	// Negated is set when the window had no positive value and -y was fitted.
	Negated bool
	// Rate is the growth between the last two predictions, as a fraction.
	Rate  float64
	Label string
	// Observations is the number of points the regression used.
	Observations int
}

// FitAndExtrapolate fits the observations of s within w.Fit and evaluates the fit on
// every day of w.Extrapolate.
//
// Observations are re-indexed 0..k-1 in order of appearance. Predictions for the
// extrapolation window use offsets counted from w.Fit.Begin, so the extrapolation
// may overlap or follow the fit window.
func FitAndExtrapolate(s *timeseries.Series, w FitWindow) (*Result, error) {
	var ys []float64
	for i, d := range s.Dates {
		if w.Fit.Contains(d) {
			ys = append(ys, s.Values[i])
		}
	}
	if len(ys) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrEmptyWindow, w.Fit)
	}

	nExt := w.Extrapolate.Days()
	if nExt < 2 {
		return nil, fmt.Errorf("%w: %v", ErrShortExtrapolation, w.Extrapolate)
	}
	nTot := timeseries.DaysBetween(w.Fit.Begin, w.Extrapolate.End) + 1

	xs, logs, negated, err := logPoints(ys)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", w.Fit, err)
	}

	var intercept, slope float64
	if len(xs) == 1 {
		intercept = logs[0]
	} else {
		intercept, slope = stat.LinearRegression(xs, logs, nil, false)
	}

	res := &Result{
		Window:       w,
		Dates:        make([]time.Time, nExt),
		Values:       make([]float64, nExt),
		Intercept:    intercept,
		Slope:        slope,
		Negated:      negated,
		Observations: len(xs),
	}
	for i := 0; i < nExt; i++ {
		x := float64(nTot - nExt + i)
		v := math.Exp(intercept + slope*x)
		if negated {
			v = -v
		}
		res.Dates[i] = timeseries.AddDays(w.Extrapolate.Begin, i)
		res.Values[i] = v
	}

	res.Rate = res.Values[nExt-1]/res.Values[nExt-2] - 1
	res.Label = FormatRate(res.Rate)
	return res, nil
}

// logPoints returns the offsets and logarithms to regress. Positive finite values
// are used when there are any; otherwise every value must be negative and finite.
func logPoints(ys []float64) (xs, logs []float64, negated bool, err error) {
	for i, y := range ys {
		if y > 0 && !math.IsInf(y, 1) {
			xs = append(xs, float64(i))
			logs = append(logs, math.Log(y))
		}
	}
	if len(xs) > 0 {
		return xs, logs, false, nil
	}

	for i, y := range ys {
		if !(y < 0) || math.IsInf(y, -1) {
			return nil, nil, false, fmt.Errorf("%w: value %v at offset %d", ErrNonPositiveWindow, y, i)
		}
		xs = append(xs, float64(i))
		logs = append(logs, math.Log(-y))
	}
	return xs, logs, true, nil
}
