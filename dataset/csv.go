package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sartorproj/epitrend/timeseries"
)

// CountryColumn is the header of the column naming each row.
const CountryColumn = "Country/Region"

// LoadTable reads a wide case-count table: identifier columns followed by one
// column per M/D/YY date. Empty or non-numeric cells are stored as NaN.
func LoadTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	countryIdx, dateIdx := -1, -1
	var dates []time.Time
	for i, h := range header {
		h = strings.TrimSpace(strings.Trim(h, "\""))
		if h == CountryColumn {
			countryIdx = i
			continue
		}
		d, err := timeseries.DateIn(h)
		if err != nil {
			if dateIdx >= 0 {
				// Trailing non-date columns end the date block.
				break
			}
			continue
		}
		if dateIdx == -1 {
			dateIdx = i
		}
		dates = append(dates, d)
	}

	if dateIdx == -1 {
		return nil, ErrNoDateColumns
	}
	if countryIdx == -1 {
		countryIdx = 1
		if dateIdx < 2 {
			countryIdx = 0
		}
	}

	var countries []string
	var rows [][]float64

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		country := ""
		if countryIdx < len(record) {
			country = strings.TrimSpace(strings.Trim(record[countryIdx], "\""))
		}

		row := make([]float64, len(dates))
		for j := range row {
			row[j] = parseCell(record, dateIdx+j)
		}

		countries = append(countries, country)
		rows = append(rows, row)
	}

	return NewTable(countries, dates, rows)
}

// LoadTableFile reads a table from a CSV file.
func LoadTableFile(filename string) (*Table, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadTable(file)
}

func parseCell(record []string, idx int) float64 {
	if idx >= len(record) {
		return math.NaN()
	}
	s := strings.TrimSpace(strings.Trim(record[idx], "\""))
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
