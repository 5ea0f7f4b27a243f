// Package smooth provides the Savitzky-Golay filter used to smooth daily signals.
//
// The filter fits a low-order polynomial over a sliding odd-length window and keeps
// the fitted value at each point, which removes day-to-day reporting noise while
// preserving peaks better than a moving average.
//
//	smoothed, err := smooth.SavGol(daily, 7, 3)
//
// Smoothing is optional throughout epitrend. A window length of 0 means "no
// smoothing"; the filter itself rejects it, so callers go through Params.Apply:
//
//	p := smooth.Params{Window: 7, Order: 3}
//	out, err := p.Apply(daily)        // smoothed
//	out, err = smooth.Disabled.Apply(daily) // unchanged copy
package smooth
