package analysis

import (
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/epitrend/evolution"
	"github.com/sartorproj/epitrend/logging"
	"github.com/sartorproj/epitrend/timeseries"
)

// MinScatterDays is the number of days above threshold a country needs to appear
// in the scatter.
const MinScatterDays = 3

// Progress receives one increment per country processed.
type Progress interface {
	Add(n int) error
}

// Point is one country of the curvature scatter.
type Point struct {
	Area string
	// Days is the number of days above threshold.
	Days int
	// Curvature and Gradient are the mean second and first differences of the
	// smoothed signal over those days.
	Curvature float64
	Gradient  float64
	// Total is the last unsmoothed value of the signal.
	Total float64
}

// CurvatureScatter evolves every country of the dataset, in table order, and
// summarises the days its signal exceeds threshold. Countries with fewer than
// MinScatterDays such days are left out. progress and log may be nil; progress
// errors are logged and do not stop the sweep.
func CurvatureScatter(tr *evolution.Transformer, ind evolution.Indicator, kind evolution.Kind, threshold float64, progress Progress, log logrus.FieldLogger) ([]Point, error) {
	log = logging.OrDiscard(log)
	countries := tr.Dataset().Confirmed.Countries()
	points := make([]Point, 0, len(countries))

	for _, country := range countries {
		s, err := tr.Evolve(country, ind, kind)
		if err != nil {
			return nil, err
		}
		if progress != nil {
			if err := progress.Add(1); err != nil {
				log.WithError(err).WithField("area", country).Debug("Progress update failed")
			}
		}

		mask := above(s.Values, threshold)
		days := 0
		for _, ok := range mask {
			if ok {
				days++
			}
		}
		if days < MinScatterDays {
			continue
		}

		smoothed, err := tr.Smoothing().Apply(s.Values)
		if err != nil {
			return nil, err
		}
		kept := s.WithValues(smoothed).Filter(mask).Values
		first := timeseries.Diff(kept)

		points = append(points, Point{
			Area:      country,
			Days:      days,
			Curvature: stat.Mean(timeseries.Diff(first), nil),
			Gradient:  stat.Mean(first, nil),
			Total:     s.Last(),
		})
	}
	return points, nil
}
