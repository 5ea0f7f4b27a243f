package evolution

import (
	"math"

	"github.com/sartorproj/epitrend/area"
	"github.com/sartorproj/epitrend/dataset"
)

// Aggregate sums, date by date, the rows of table belonging to group. Missing cells
// count as zero. The result spans the full, unfiltered date axis.
func Aggregate(table *dataset.Table, group area.Group) []float64 {
	n := len(table.Dates())
	sum := make([]float64, n)
	for i := 0; i < table.Rows(); i++ {
		if !group.Contains(table.Country(i)) {
			continue
		}
		for j := 0; j < n; j++ {
			v := table.Value(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			sum[j] += v
		}
	}
	return sum
}

// cumulative combines the aggregated tables into the indicator's cumulative signal.
func cumulative(ds *dataset.Dataset, group area.Group, ind Indicator) ([]float64, error) {
	switch ind {
	case Confirmed:
		return Aggregate(ds.Confirmed, group), nil
	case Deaths:
		return Aggregate(ds.Deaths, group), nil
	case Active:
		c := Aggregate(ds.Confirmed, group)
		r := Aggregate(ds.Recovered, group)
		d := Aggregate(ds.Deaths, group)
		out := make([]float64, len(c))
		for i := range out {
			out[i] = c[i] - r[i] - d[i]
		}
		return out, nil
	case DeathRate:
		c := Aggregate(ds.Confirmed, group)
		d := Aggregate(ds.Deaths, group)
		out := make([]float64, len(c))
		for i := range out {
			// 0/0 is NaN and x/0 is +Inf; both are kept.
			out[i] = d[i] / c[i] * 100
		}
		return out, nil
	}
	return nil, ErrUnknownIndicator
}
