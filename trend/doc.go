// Package trend fits a log-linear growth model to a window of a daily signal and
// extrapolates it forward.
//
// The model is ln|y| = a + b*x where x is the day offset from the start of the fit
// window. The sign of the signal is taken from the window: if any observation is
// positive the fit uses the positive observations, otherwise it uses the negated
// values and negates the prediction.
//
// Each area usually gets two fits: a primary window of recent days and, when the
// area went into lockdown long enough ago, a post-lockdown window starting at its
// confinement date. See PlanWindows.
package trend
