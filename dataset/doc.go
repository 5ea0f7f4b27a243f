// Package dataset loads and holds the raw case-count tables.
//
// Three tables (Confirmed, Deaths, Recovered) share one date axis. Each row is a
// country, or a province of one, and each date column a cumulative count:
//
//	ds, err := dataset.Load(ctx, dataset.DefaultSource, timeseries.MustDateIn("3/1/20"), log)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(ds.Axis.FilteredLen(), "days since start")
//
// Tables are immutable after load; accessors return copies so one computation can
// never corrupt another's view of a row.
package dataset
