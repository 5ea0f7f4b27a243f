package trend

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sartorproj/epitrend/evolution"
	"github.com/sartorproj/epitrend/logging"
	"github.com/sartorproj/epitrend/smooth"
	"github.com/sartorproj/epitrend/timeseries"
)

// AreaTrend is the trend analysis of one area signal.
type AreaTrend struct {
	// Signal is the fitted signal, smoothed when smoothing is enabled.
	Signal       *timeseries.Series
	Plan         Plan
	Primary      *Result
	PostLockdown *Result
	// ConfinementIndex is the first index of Signal on or after the confinement
	// date, or -1.
	ConfinementIndex int
}

// Fitter runs the per-area trend analysis. It is safe for concurrent use.
type Fitter struct {
	cfg       Config
	smoothing smooth.Params
	log       logrus.FieldLogger
}

// NewFitter creates a fitter. The configuration is copied.
func NewFitter(cfg Config, smoothing smooth.Params, log logrus.FieldLogger) (*Fitter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := smoothing.Validate(); err != nil {
		return nil, err
	}
	return &Fitter{
		cfg:       cfg.clone(),
		smoothing: smoothing,
		log:       logging.OrDiscard(log),
	}, nil
}

// Config returns a copy of the fitter configuration.
func (f *Fitter) Config() Config {
	return f.cfg.clone()
}

// Fit fits one window and logs it.
func (f *Fitter) Fit(s *timeseries.Series, w FitWindow) (*Result, error) {
	entry := f.log.WithFields(logrus.Fields{
		"series":            s.Name,
		"fit_begin":         timeseries.DateOut(w.Fit.Begin),
		"fit_end":           timeseries.DateOut(w.Fit.End),
		"extrapolate_begin": timeseries.DateOut(w.Extrapolate.Begin),
		"extrapolate_end":   timeseries.DateOut(w.Extrapolate.End),
	})
	entry.Debug("Fitting trend")

	res, err := FitAndExtrapolate(s, w)
	if err != nil {
		return nil, err
	}
	entry.WithFields(logrus.Fields{
		"intercept": res.Intercept,
		"slope":     res.Slope,
		"negated":   res.Negated,
		"rate":      res.Label,
	}).Debug("Fitted trend")
	return res, nil
}

// Analyze smooths s if configured, plans its windows from the confinement date and
// fits them. yesterday is the last day the primary window may reach.
func (f *Fitter) Analyze(s *timeseries.Series, ind evolution.Indicator, confinement, yesterday time.Time) (*AreaTrend, error) {
	values, err := f.smoothing.Apply(s.Values)
	if err != nil {
		return nil, fmt.Errorf("smooth %s: %w", s.Name, err)
	}
	signal := s.WithValues(values)

	plan := PlanWindows(signal.Dates, confinement, yesterday, f.cfg.FittingPeriod, f.cfg.ExtrapolationFor(ind))
	at := &AreaTrend{
		Signal:           signal,
		Plan:             plan,
		ConfinementIndex: signal.IndexOnOrAfter(confinement),
	}

	at.Primary, err = f.Fit(signal, plan.Primary)
	if err != nil {
		return nil, fmt.Errorf("%s primary trend: %w", s.Name, err)
	}
	if plan.PostLockdown != nil {
		at.PostLockdown, err = f.Fit(signal, *plan.PostLockdown)
		if err != nil {
			return nil, fmt.Errorf("%s post-lockdown trend: %w", s.Name, err)
		}
	}
	return at, nil
}
