package timeseries

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func days(start string, n int) []time.Time {
	d := MustDateIn(start)
	out := make([]time.Time, n)
	for i := range out {
		out[i] = AddDays(d, i)
	}
	return out
}

func TestNew(t *testing.T) {
	s, err := New(days("3/1/20", 3), []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3.0, s.Last())

	_, err = New(days("3/1/20", 2), []float64{1, 2, 3})
	assert.Error(t, err)
}

func TestDiffPadded(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		order    int
		expected []float64
	}{
		{"daily", []float64{1, 3, 6, 10, 15}, 1, []float64{0, 2, 3, 4, 5}},
		{"curvature", []float64{1, 3, 6, 10, 15}, 2, []float64{0, 0, 1, 1, 1}},
		{"identity", []float64{1, 3, 6}, 0, []float64{1, 3, 6}},
		{"short daily", []float64{4}, 1, []float64{0}},
		{"short curvature", []float64{4, 7}, 2, []float64{0, 0}},
		{"empty", []float64{}, 1, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DiffPadded(tt.values, tt.order)
			require.Len(t, result, len(tt.values))
			assert.InDeltaSlice(t, tt.expected, result, 1e-10)
		})
	}
}

func TestDiffPaddedKeepsNonFinite(t *testing.T) {
	result := DiffPadded([]float64{1, math.Inf(1), 3}, 1)
	assert.Equal(t, 0.0, result[0])
	assert.True(t, math.IsInf(result[1], 1))
	assert.True(t, math.IsInf(result[2], -1))
}

func TestDiff(t *testing.T) {
	assert.Equal(t, []float64{2, 3, 4, 5}, Diff([]float64{1, 3, 6, 10, 15}))
	assert.Empty(t, Diff([]float64{1}))
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 1, 2}, PadLeft([]float64{1, 2}, 2))
}

func TestFilter(t *testing.T) {
	s, err := New(days("3/1/20", 5), []float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	filtered := s.Filter([]bool{false, true, false, true, true})
	assert.Equal(t, []float64{2, 4, 5}, filtered.Values)
	require.Len(t, filtered.Dates, 3)
	assert.Equal(t, "3/2/20", DateOut(filtered.Dates[0]))
}

func TestCopy(t *testing.T) {
	s, err := New(days("3/1/20", 3), []float64{1, 2, 3})
	require.NoError(t, err)
	copied := s.Copy()

	s.Values[0] = 100
	assert.Equal(t, 1.0, copied.Values[0], "copy was modified when original changed")
}

func TestMaskNonPositive(t *testing.T) {
	s, err := New(days("3/1/20", 6), []float64{1, 0, -2, math.NaN(), math.Inf(1), 3})
	require.NoError(t, err)

	assert.Equal(t, []bool{false, true, true, true, true, false}, s.MaskNonPositive())
	assert.True(t, s.Valid(0))
	assert.False(t, s.Valid(3))
	assert.False(t, s.Valid(4))
}

func TestIndexOnOrAfter(t *testing.T) {
	s, err := New(days("3/1/20", 5), []float64{1, 2, 3, 4, 5})
	require.NoError(t, err)

	assert.Equal(t, 2, s.IndexOnOrAfter(MustDateIn("3/3/20")))
	assert.Equal(t, 0, s.IndexOnOrAfter(MustDateIn("1/1/20")))
	assert.Equal(t, -1, s.IndexOnOrAfter(MustDateIn("1/1/99")))
}
