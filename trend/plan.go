package trend

import (
	"time"

	"github.com/sartorproj/epitrend/timeseries"
)

// MinPostLockdownDays is the number of observations on or after the confinement date
// required before a post-lockdown window is planned.
const MinPostLockdownDays = 4

// Plan holds the windows fitted for one area.
type Plan struct {
	Primary FitWindow
	// PostLockdown is nil when the area has no recent enough confinement.
	PostLockdown *FitWindow
}

// PlanWindows chooses the fit windows of an area.
//
// When confinement lies within dates, is not after yesterday and is followed by at
// least MinPostLockdownDays dates, the primary window ends at the confinement date
// and a post-lockdown window fits [confinement, yesterday]. Otherwise the primary
// window ends at yesterday. The
// primary fit spans fittingPeriod+2 days up to its end; both extrapolations run
// extrapolation+2 days from their anchor.
func PlanWindows(dates []time.Time, confinement, yesterday time.Time, fittingPeriod, extrapolation int) Plan {
	after := 0
	for _, d := range dates {
		if !d.Before(confinement) {
			after++
		}
	}

	var plan Plan
	end := yesterday
	if after >= MinPostLockdownDays && inRange(dates, confinement) && !confinement.After(yesterday) {
		end = confinement
		plan.PostLockdown = &FitWindow{
			Fit:         Window{Begin: confinement, End: yesterday},
			Extrapolate: Window{Begin: confinement, End: timeseries.AddDays(confinement, extrapolation+1)},
		}
	}
	plan.Primary = FitWindow{
		Fit:         Window{Begin: timeseries.AddDays(end, -(fittingPeriod + 1)), End: end},
		Extrapolate: Window{Begin: end, End: timeseries.AddDays(end, extrapolation+1)},
	}
	return plan
}

// inRange reports whether d lies between the first and last of dates.
func inRange(dates []time.Time, d time.Time) bool {
	if len(dates) == 0 {
		return false
	}
	return !d.Before(dates[0]) && !d.After(dates[len(dates)-1])
}
