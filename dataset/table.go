package dataset

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoDateColumns is returned when a table header has no date column.
	ErrNoDateColumns = errors.New("no date columns in table header")
	// ErrDateMismatch is returned when indicator tables do not share the same dates.
	ErrDateMismatch = errors.New("indicator tables have different date columns")
	// ErrUnsortedDates is returned when a date axis is not strictly ascending.
	ErrUnsortedDates = errors.New("dates must be strictly ascending")
)

// Table is a row-per-country, column-per-date table of raw cumulative counts.
// Missing cells are stored as NaN. A Table is immutable once built.
type Table struct {
	countries []string
	dates     []time.Time
	values    [][]float64
}

// NewTable builds a table, copying its inputs. Every row must have one value per date.
func NewTable(countries []string, dates []time.Time, values [][]float64) (*Table, error) {
	if len(countries) != len(values) {
		return nil, fmt.Errorf("table has %d country names for %d rows", len(countries), len(values))
	}
	t := &Table{
		countries: append([]string(nil), countries...),
		dates:     append([]time.Time(nil), dates...),
		values:    make([][]float64, len(values)),
	}
	for i, row := range values {
		if len(row) != len(dates) {
			return nil, fmt.Errorf("row %d (%s) has %d values for %d dates", i, countries[i], len(row), len(dates))
		}
		t.values[i] = append([]float64(nil), row...)
	}
	return t, nil
}

// Rows returns the number of rows.
func (t *Table) Rows() int {
	return len(t.values)
}

// Country returns the country name of row i.
func (t *Table) Country(i int) string {
	return t.countries[i]
}

// Value returns the raw cell at row i and date column j. Missing cells are NaN.
func (t *Table) Value(i, j int) float64 {
	return t.values[i][j]
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []float64 {
	return append([]float64(nil), t.values[i]...)
}

// Dates returns a copy of the date columns.
func (t *Table) Dates() []time.Time {
	return append([]time.Time(nil), t.dates...)
}

// Countries returns the distinct country names in table order.
// Countries split into provinces appear once.
func (t *Table) Countries() []string {
	seen := make(map[string]struct{}, len(t.countries))
	out := make([]string, 0, len(t.countries))
	for _, c := range t.countries {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func sameDates(a, b []time.Time) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
