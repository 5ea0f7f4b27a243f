package dataset

import (
	"fmt"
	"time"

	"github.com/sartorproj/epitrend/timeseries"
)

// DateAxis is the ordered date axis shared by all tables, with the mask selecting
// the dates on or after the configured start date.
type DateAxis struct {
	dates []time.Time
	mask  []bool
}

// NewDateAxis builds an axis over dates, selecting those on or after start.
// Dates must be strictly ascending.
func NewDateAxis(dates []time.Time, start time.Time) (*DateAxis, error) {
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			return nil, fmt.Errorf("%w: %s follows %s", ErrUnsortedDates,
				timeseries.DateOut(dates[i]), timeseries.DateOut(dates[i-1]))
		}
	}
	mask := make([]bool, len(dates))
	for i, d := range dates {
		mask[i] = !d.Before(start)
	}
	return &DateAxis{
		dates: append([]time.Time(nil), dates...),
		mask:  mask,
	}, nil
}

// Len returns the length of the full, unfiltered axis.
func (a *DateAxis) Len() int {
	return len(a.dates)
}

// Dates returns a copy of the full axis.
func (a *DateAxis) Dates() []time.Time {
	return append([]time.Time(nil), a.dates...)
}

// Mask returns a copy of the start-date filter mask.
func (a *DateAxis) Mask() []bool {
	return append([]bool(nil), a.mask...)
}

// Filtered returns the dates selected by the mask.
func (a *DateAxis) Filtered() []time.Time {
	out := make([]time.Time, 0, len(a.dates))
	for i, d := range a.dates {
		if a.mask[i] {
			out = append(out, d)
		}
	}
	return out
}

// FilteredLen returns the number of dates selected by the mask.
func (a *DateAxis) FilteredLen() int {
	n := 0
	for _, keep := range a.mask {
		if keep {
			n++
		}
	}
	return n
}

// Apply filters a full-length signal down to the masked dates.
func (a *DateAxis) Apply(values []float64) *timeseries.Series {
	full := &timeseries.Series{Dates: a.dates, Values: values}
	return full.Filter(a.mask)
}
