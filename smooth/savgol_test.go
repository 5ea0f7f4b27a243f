package smooth

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavGolKnownValues(t *testing.T) {
	x := []float64{2, 2, 5, 2, 1, 0, 1, 4, 9}
	expected := []float64{1.65714286, 3.17142857, 3.54285714, 2.85714286, 0.65714286, 0.17142857, 1, 4, 9}

	result, err := SavGol(x, 5, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, expected, result, 1e-6)
}

func TestSavGolPreservesPolynomials(t *testing.T) {
	// A cubic is reproduced exactly by an order-3 filter, edges included.
	n := 30
	x := make([]float64, n)
	for i := range x {
		f := float64(i)
		x[i] = 0.5*f*f*f - 3*f*f + 2*f + 7
	}

	result, err := SavGol(x, 7, 3)
	require.NoError(t, err)
	require.Len(t, result, n)
	for i := range x {
		assert.InDelta(t, x[i], result[i], 1e-6*math.Max(1, math.Abs(x[i])), "index %d", i)
	}
}

func TestSavGolMovingAverage(t *testing.T) {
	result, err := SavGol([]float64{1, 2, 3, 4, 5, 9}, 3, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 2, 3, 4, 6, 6}, result, 1e-10)
}

func TestSavGolWindowEqualsLength(t *testing.T) {
	x := []float64{1, 4, 9, 16, 25}
	result, err := SavGol(x, 5, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, x, result, 1e-9)
}

func TestSavGolPropagatesNaN(t *testing.T) {
	x := []float64{1, 2, 3, math.NaN(), 5, 6, 7, 8, 9, 10, 11, 12}
	result, err := SavGol(x, 3, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(result[3]))
	assert.False(t, math.IsNaN(result[8]))
}

func TestSavGolErrors(t *testing.T) {
	tests := []struct {
		name          string
		n             int
		window, order int
		err           error
	}{
		{"zero window", 10, 0, 3, ErrInvalidWindow},
		{"even window", 10, 6, 3, ErrInvalidWindow},
		{"negative window", 10, -3, 1, ErrInvalidWindow},
		{"order too high", 10, 5, 5, ErrInvalidOrder},
		{"negative order", 10, 5, -1, ErrInvalidOrder},
		{"too short", 4, 5, 2, ErrSeriesTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SavGol(make([]float64, tt.n), tt.window, tt.order)
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
		})
	}
}

func TestApplyDisabledIsIdentity(t *testing.T) {
	series := [][]float64{
		{},
		{1},
		{3, -1, math.NaN(), math.Inf(1), 0},
		{2, 2, 5, 2, 1, 0, 1, 4, 9},
	}
	for _, order := range []int{-1, 0, 3, 99} {
		for _, s := range series {
			out, err := Params{Window: 0, Order: order}.Apply(s)
			require.NoError(t, err)
			require.Len(t, out, len(s))
			for i := range s {
				if math.IsNaN(s[i]) {
					assert.True(t, math.IsNaN(out[i]))
					continue
				}
				assert.Equal(t, s[i], out[i])
			}
		}
	}
}

func TestApplyReturnsCopy(t *testing.T) {
	in := []float64{1, 2, 3}
	out, err := Disabled.Apply(in)
	require.NoError(t, err)
	out[0] = 42
	assert.Equal(t, 1.0, in[0])
}

func TestApplyEnabled(t *testing.T) {
	out, err := Params{Window: 5, Order: 2}.Apply([]float64{2, 2, 5, 2, 1, 0, 1, 4, 9})
	require.NoError(t, err)
	assert.InDelta(t, 3.54285714, out[2], 1e-6)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Disabled.Validate())
	assert.NoError(t, Params{Window: 7, Order: 3}.Validate())
	assert.True(t, errors.Is(Params{Window: 4, Order: 1}.Validate(), ErrInvalidWindow))
	assert.True(t, errors.Is(Params{Window: 3, Order: 3}.Validate(), ErrInvalidOrder))
}
