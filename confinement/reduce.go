package confinement

import (
	"time"

	"github.com/sartorproj/epitrend/timeseries"
)

// Sentinel is the far-future date standing for "no confinement". It never falls
// inside a data range, so no post-lockdown window is planned for it.
var Sentinel = timeseries.MustDateIn("1/1/99")

// Dates maps an area to its confinement date.
type Dates map[string]time.Time

// Reduce picks one date per area: the earliest total lockdown, else the latest
// partial one, else Sentinel. A listed event type decides even when its list is
// empty, so an area with an empty total list maps to Sentinel. Every area of the
// record gets an entry.
func Reduce(record Record) Dates {
	out := make(Dates, len(record))
	for area, events := range record {
		out[area] = reduceArea(events)
	}
	return out
}

func reduceArea(events map[string][]time.Time) time.Time {
	if total, ok := events[Total]; ok {
		if len(total) == 0 {
			return Sentinel
		}
		earliest := total[0]
		for _, d := range total[1:] {
			if d.Before(earliest) {
				earliest = d
			}
		}
		return earliest
	}
	if partial, ok := events[Partial]; ok {
		if len(partial) == 0 {
			return Sentinel
		}
		latest := partial[0]
		for _, d := range partial[1:] {
			if d.After(latest) {
				latest = d
			}
		}
		return latest
	}
	return Sentinel
}

// Lookup returns the confinement date of area, or Sentinel when it has none.
func (d Dates) Lookup(area string) time.Time {
	if date, ok := d[area]; ok {
		return date
	}
	return Sentinel
}

// Confined reports whether area has a confinement date other than Sentinel.
func (d Dates) Confined(area string) bool {
	return !d.Lookup(area).Equal(Sentinel)
}
