// Package timeseries provides the daily series type and date helpers used across epitrend.
//
// A Series pairs calendar dates with float64 values. Non-finite values (NaN, ±Inf)
// are legitimate data, produced for instance by a death rate over zero confirmed
// cases; they are passed through unchanged and only masked at the boundary.
//
// # Dates
//
// Dates use the lenient M/D/Y grammar of the source tables:
//
//	d, err := timeseries.DateIn("3/17/20")   // 2020-03-17
//	d, err = timeseries.DateIn("3/17/2020")  // same date
//	s := timeseries.DateOut(d)               // "3/17/20"
//
// # Differencing
//
// Length-preserving differences pad the head with zeros:
//
//	daily := timeseries.DiffPadded(cumulative, 1)
//	curvature := timeseries.DiffPadded(cumulative, 2)
//
// # Masking
//
// Prepare a series for a logarithmic axis:
//
//	mask := series.MaskNonPositive()
package timeseries
