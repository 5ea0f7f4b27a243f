// Package smooth implements the Savitzky-Golay smoothing filter.
package smooth

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidWindow is returned when the window length is not a positive odd number.
	ErrInvalidWindow = errors.New("window length must be a positive odd number")
	// ErrInvalidOrder is returned when the polynomial order does not fit in the window.
	ErrInvalidOrder = errors.New("polynomial order must be non-negative and less than the window length")
	// ErrSeriesTooShort is returned when the series is shorter than the window.
	ErrSeriesTooShort = errors.New("series is shorter than the smoothing window")
)

// Params configures the smoother. A Window of 0 disables smoothing.
type Params struct {
	Window int // Window length (odd), 0 for no smoothing
	Order  int // Order of the fitted polynomial
}

// Disabled is the no-op smoothing configuration.
var Disabled = Params{}

// Enabled reports whether p actually smooths.
func (p Params) Enabled() bool {
	return p.Window != 0
}

// Validate checks p without smoothing anything. The disabled configuration is valid.
func (p Params) Validate() error {
	if !p.Enabled() {
		return nil
	}
	return validate(p.Window, p.Order)
}

// Apply smooths values, or returns an unchanged copy when smoothing is disabled.
// Every optional smoothing step goes through Apply so the zero-window sentinel is
// honoured in one place.
func (p Params) Apply(values []float64) ([]float64, error) {
	if !p.Enabled() {
		return append([]float64(nil), values...), nil
	}
	return SavGol(values, p.Window, p.Order)
}

// SavGol applies a Savitzky-Golay filter: each point is replaced by the value at its
// position of the least-squares polynomial of the given order fitted over the
// surrounding window. The first and last half-windows are evaluated on the polynomial
// fitted to the first and last full windows, so the output has the input's length.
//
// Non-finite inputs propagate to every output whose window contains them.
func SavGol(values []float64, window, order int) ([]float64, error) {
	if err := validate(window, order); err != nil {
		return nil, err
	}
	n := len(values)
	if n < window {
		return nil, fmt.Errorf("%w: %d values, window %d", ErrSeriesTooShort, n, window)
	}

	proj, err := projection(window, order)
	if err != nil {
		return nil, err
	}

	half := window / 2
	result := make([]float64, n)

	// Interior: the fitted polynomial at the window centre is its constant term.
	for i := half; i < n-half; i++ {
		sum := 0.0
		for k := 0; k < window; k++ {
			sum += proj.At(0, k) * values[i-half+k]
		}
		result[i] = sum
	}

	// Edges.
	head := fitWindow(proj, values[:window])
	for r := 0; r < half; r++ {
		result[r] = evalPoly(head, float64(r-half))
	}
	tail := fitWindow(proj, values[n-window:])
	for r := half + 1; r < window; r++ {
		result[n-window+r] = evalPoly(tail, float64(r-half))
	}

	return result, nil
}

func validate(window, order int) error {
	if window <= 0 || window%2 == 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}
	if order < 0 || order >= window {
		return fmt.Errorf("%w: order %d, window %d", ErrInvalidOrder, order, window)
	}
	return nil
}

// projection returns the (order+1) x window pseudo-inverse of the Vandermonde matrix
// built on the centred offsets -half..half. Multiplied by a window of values it gives
// the least-squares polynomial coefficients, lowest degree first.
func projection(window, order int) (*mat.Dense, error) {
	half := window / 2
	a := mat.NewDense(window, order+1, nil)
	for i := 0; i < window; i++ {
		x := float64(i - half)
		for j := 0; j <= order; j++ {
			a.Set(i, j, math.Pow(x, float64(j)))
		}
	}

	eye := mat.NewDense(window, window, nil)
	for i := 0; i < window; i++ {
		eye.Set(i, i, 1)
	}

	var proj mat.Dense
	if err := proj.Solve(a, eye); err != nil {
		return nil, fmt.Errorf("savgol projection: %w", err)
	}
	return &proj, nil
}

func fitWindow(proj *mat.Dense, values []float64) []float64 {
	var coef mat.VecDense
	coef.MulVec(proj, mat.NewVecDense(len(values), append([]float64(nil), values...)))
	out := make([]float64, coef.Len())
	for i := range out {
		out[i] = coef.AtVec(i)
	}
	return out
}

// evalPoly evaluates coefficients (lowest degree first) at x.
func evalPoly(coef []float64, x float64) float64 {
	y := 0.0
	for j := len(coef) - 1; j >= 0; j-- {
		y = y*x + coef[j]
	}
	return y
}
