package main

import (
	"math"
	"time"

	"github.com/sartorproj/epitrend/analysis"
	"github.com/sartorproj/epitrend/confinement"
	"github.com/sartorproj/epitrend/timeseries"
	"github.com/sartorproj/epitrend/trend"
)

// Output holds all results for the JSON export.
type Output struct {
	Indicator string         `json:"indicator"`
	Evolution string         `json:"evolution"`
	Title     string         `json:"title"`
	Generated string         `json:"generated"`
	Areas     []AreaResult   `json:"areas"`
	Scatter   []ScatterPoint `json:"scatter,omitempty"`
}

// AreaResult is the signal of one area with its trends.
// Non-finite values are exported as null.
type AreaResult struct {
	Area             string        `json:"area"`
	Confinement      string        `json:"confinement,omitempty"`
	ConfinementIndex int           `json:"confinement_index"`
	Total            *float64      `json:"total"`
	Dates            []string      `json:"dates"`
	Values           []*float64    `json:"values"`
	Trends           []TrendResult `json:"trends,omitempty"`
	Portrait         *Portrait     `json:"phase_portrait,omitempty"`
}

// TrendResult is one fitted window.
type TrendResult struct {
	Window           string     `json:"window"`
	FitBegin         string     `json:"fit_begin"`
	FitEnd           string     `json:"fit_end"`
	ExtrapolateBegin string     `json:"extrapolate_begin"`
	ExtrapolateEnd   string     `json:"extrapolate_end"`
	Intercept        float64    `json:"intercept"`
	Slope            float64    `json:"slope"`
	Rate             *float64   `json:"rate"`
	Label            string     `json:"label"`
	Dates            []string   `json:"dates"`
	Values           []*float64 `json:"values"`
}

// Portrait is the phase portrait of an area.
type Portrait struct {
	Dates            []string   `json:"dates"`
	Gradient         []*float64 `json:"gradient"`
	Curvature        []*float64 `json:"curvature"`
	ConfinementIndex int        `json:"confinement_index"`
}

// ScatterPoint is one country of the curvature scatter.
type ScatterPoint struct {
	Area      string   `json:"area"`
	Days      int      `json:"days"`
	Curvature *float64 `json:"curvature"`
	Gradient  *float64 `json:"gradient"`
	Total     *float64 `json:"total"`
}

func newAreaResult(name string, s *timeseries.Series, total float64, confined confinement.Dates) *AreaResult {
	res := &AreaResult{
		Area:             name,
		ConfinementIndex: -1,
		Total:            finite(total),
		Dates:            formatDates(s.Dates),
		Values:           nullable(s.Values),
	}
	if confined.Confined(name) {
		d := confined.Lookup(name)
		res.Confinement = timeseries.DateOut(d)
		res.ConfinementIndex = s.IndexOnOrAfter(d)
	}
	return res
}

func (r *AreaResult) setTrend(at *trend.AreaTrend) {
	r.Trends = append(r.Trends, newTrendResult("primary", at.Primary))
	if at.PostLockdown != nil {
		r.Trends = append(r.Trends, newTrendResult("post-lockdown", at.PostLockdown))
	}
}

func newTrendResult(window string, res *trend.Result) TrendResult {
	return TrendResult{
		Window:           window,
		FitBegin:         timeseries.DateOut(res.Window.Fit.Begin),
		FitEnd:           timeseries.DateOut(res.Window.Fit.End),
		ExtrapolateBegin: timeseries.DateOut(res.Window.Extrapolate.Begin),
		ExtrapolateEnd:   timeseries.DateOut(res.Window.Extrapolate.End),
		Intercept:        res.Intercept,
		Slope:            res.Slope,
		Rate:             finite(res.Rate),
		Label:            res.Label,
		Dates:            formatDates(res.Dates),
		Values:           nullable(res.Values),
	}
}

func newPortrait(p *analysis.Portrait) *Portrait {
	return &Portrait{
		Dates:            formatDates(p.Dates),
		Gradient:         nullable(p.Gradient),
		Curvature:        nullable(p.Curvature),
		ConfinementIndex: p.ConfinementIndex,
	}
}

func newScatter(points []analysis.Point) []ScatterPoint {
	out := make([]ScatterPoint, len(points))
	for i, pt := range points {
		out[i] = ScatterPoint{
			Area:      pt.Area,
			Days:      pt.Days,
			Curvature: finite(pt.Curvature),
			Gradient:  finite(pt.Gradient),
			Total:     finite(pt.Total),
		}
	}
	return out
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = timeseries.DateOut(d)
	}
	return out
}

// finite returns nil for NaN and infinities, which JSON cannot encode.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func nullable(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		out[i] = finite(v)
	}
	return out
}
