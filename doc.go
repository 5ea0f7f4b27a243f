// Package epitrend derives epidemiological signals from daily cumulative case counts
// and fits log-linear growth trends to them.
//
// The pipeline reads the Johns Hopkins global time series, aggregates countries into
// areas, turns the cumulative counts into one of five evolution types and fits the
// recent growth of each area before and after its lockdown.
//
// # Packages
//
//   - timeseries: daily series type, differences and M/D/YY dates
//   - dataset: case-count tables, their date axis and the CSV loader
//   - area: country groups such as EU or World
//   - smooth: Savitzky-Golay smoothing
//   - evolution: indicators and evolution types (daily, curvature, R0, ...)
//   - confinement: lockdown event log and confinement dates
//   - trend: log-linear fit, extrapolation and growth rate
//   - analysis: phase portrait and cross-country curvature scatter
//   - config, logging: driver configuration and loggers
//
// # Quick Start
//
//	ds, _ := dataset.Load(ctx, dataset.DefaultSource, timeseries.MustDateIn("3/1/20"), log)
//	tr, _ := evolution.NewTransformer(ds, smooth.Params{Window: 7, Order: 3})
//	daily, _ := tr.Evolve("Italy", evolution.Confirmed, evolution.Daily)
//
//	record, _ := confinement.ParseFile("confinement.dat", log)
//	fitter, _ := trend.NewFitter(trend.DefaultConfig(), smooth.Disabled, log)
//	at, _ := fitter.Analyze(daily, evolution.Confirmed, confinement.Reduce(record).Lookup("Italy"), yesterday)
//	fmt.Println(at.Primary.Label)
package epitrend
