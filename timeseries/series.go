// Package timeseries provides the daily series type shared by every stage of the pipeline.
package timeseries

import (
	"errors"
	"math"
	"time"
)

// Series represents a daily signal aligned with a date axis.
type Series struct {
	Dates  []time.Time
	Values []float64
	Name   string
}

// New creates a series from dates and values of the same length.
func New(dates []time.Time, values []float64) (*Series, error) {
	if len(dates) != len(values) {
		return nil, errors.New("dates and values must have the same length")
	}
	return &Series{
		Dates:  dates,
		Values: values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Last returns the last value of the series, or NaN when empty.
func (s *Series) Last() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	return s.Values[len(s.Values)-1]
}

// Valid reports whether the value at index i is finite.
func (s *Series) Valid(i int) bool {
	v := s.Values[i]
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// MaskNonPositive returns a mask that is true where the value cannot be shown on a
// logarithmic axis: non-positive or non-finite.
func (s *Series) MaskNonPositive() []bool {
	mask := make([]bool, len(s.Values))
	for i, v := range s.Values {
		mask[i] = !(v > 0) || math.IsInf(v, 1)
	}
	return mask
}

// Filter keeps the observations whose mask entry is true.
func (s *Series) Filter(mask []bool) *Series {
	values := make([]float64, 0, len(s.Values))
	dates := make([]time.Time, 0, len(s.Values))
	for i, keep := range mask {
		if i >= len(s.Values) {
			break
		}
		if keep {
			values = append(values, s.Values[i])
			if i < len(s.Dates) {
				dates = append(dates, s.Dates[i])
			}
		}
	}
	return &Series{
		Dates:  dates,
		Values: values,
		Name:   s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	dates := make([]time.Time, len(s.Dates))
	copy(dates, s.Dates)

	return &Series{
		Dates:  dates,
		Values: values,
		Name:   s.Name,
	}
}

// WithValues returns a series sharing the dates of s with new values.
// It panics if the lengths differ.
func (s *Series) WithValues(values []float64) *Series {
	if len(values) != len(s.Values) {
		panic("timeseries: value length does not match series length")
	}
	dates := make([]time.Time, len(s.Dates))
	copy(dates, s.Dates)
	return &Series{
		Dates:  dates,
		Values: values,
		Name:   s.Name,
	}
}

// IndexOnOrAfter returns the first index whose date is on or after d, or -1.
func (s *Series) IndexOnOrAfter(d time.Time) int {
	for i, date := range s.Dates {
		if !date.Before(d) {
			return i
		}
	}
	return -1
}

// Diff returns the first difference of values (length n-1).
func Diff(values []float64) []float64 {
	if len(values) < 2 {
		return []float64{}
	}
	result := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		result[i-1] = values[i] - values[i-1]
	}
	return result
}

// PadLeft prepends k zeros to values.
func PadLeft(values []float64, k int) []float64 {
	result := make([]float64, len(values)+k)
	copy(result[k:], values)
	return result
}

// DiffPadded returns the order-th difference of values, left-padded with zeros so the
// result has the same length as the input. Inputs shorter than order+1 give all zeros.
func DiffPadded(values []float64, order int) []float64 {
	n := len(values)
	if n <= order {
		return make([]float64, n)
	}
	d := values
	for i := 0; i < order; i++ {
		d = Diff(d)
	}
	return PadLeft(d, order)
}
