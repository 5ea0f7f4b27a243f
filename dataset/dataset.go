package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sartorproj/epitrend/logging"
)

// File names of the three global time series.
const (
	ConfirmedFile = "time_series_covid19_confirmed_global.csv"
	DeathsFile    = "time_series_covid19_deaths_global.csv"
	RecoveredFile = "time_series_covid19_recovered_global.csv"
)

// DefaultSource is the upstream directory of the global time series.
const DefaultSource = "https://raw.githubusercontent.com/CSSEGISandData/COVID-19/master/csse_covid_19_data/csse_covid_19_time_series/"

// Dataset holds the three indicator tables and their shared date axis.
type Dataset struct {
	Confirmed *Table
	Deaths    *Table
	Recovered *Table
	Axis      *DateAxis
}

// New assembles a dataset. The three tables must share the same date columns.
func New(confirmed, deaths, recovered *Table, start time.Time) (*Dataset, error) {
	dates := confirmed.dates
	if !sameDates(dates, deaths.dates) {
		return nil, fmt.Errorf("%w: confirmed vs deaths", ErrDateMismatch)
	}
	if !sameDates(dates, recovered.dates) {
		return nil, fmt.Errorf("%w: confirmed vs recovered", ErrDateMismatch)
	}

	axis, err := NewDateAxis(dates, start)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		Confirmed: confirmed,
		Deaths:    deaths,
		Recovered: recovered,
		Axis:      axis,
	}, nil
}

// Load reads the three tables from source, a local directory or an http(s) base URL.
func Load(ctx context.Context, source string, start time.Time, log logrus.FieldLogger) (*Dataset, error) {
	log = logging.OrDiscard(log)

	tables := make([]*Table, 3)
	for i, name := range []string{ConfirmedFile, DeathsFile, RecoveredFile} {
		t, err := loadOne(ctx, source, name)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		log.WithFields(logrus.Fields{
			"file":  name,
			"rows":  t.Rows(),
			"dates": len(t.dates),
		}).Debug("Loaded table")
		tables[i] = t
	}

	return New(tables[0], tables[1], tables[2], start)
}

func loadOne(ctx context.Context, source, name string) (*Table, error) {
	if !isURL(source) {
		return LoadTableFile(filepath.Join(source, name))
	}
	rc, err := fetch(ctx, source, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return LoadTable(rc)
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func fetch(ctx context.Context, source, name string) (io.ReadCloser, error) {
	url := strings.TrimSuffix(source, "/") + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return resp.Body, nil
}
