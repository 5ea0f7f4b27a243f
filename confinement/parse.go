package confinement

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sartorproj/epitrend/logging"
	"github.com/sartorproj/epitrend/timeseries"
)

// Event types.
const (
	Partial = "P"
	Total   = "T"
)

// Record maps an area to its event dates per event type, in log order.
type Record map[string]map[string][]time.Time

// Add appends an event date for area.
func (r Record) Add(area, kind string, date time.Time) {
	events, ok := r[area]
	if !ok {
		events = make(map[string][]time.Time)
		r[area] = events
	}
	events[kind] = append(events[kind], date)
}

// Parse reads a confinement log. A (type, date) pair whose date is missing or
// malformed is skipped and reported at warn level; the rest of the line and of the
// log is still read. Only read errors are returned.
func Parse(r io.Reader, log logrus.FieldLogger) (Record, error) {
	log = logging.OrDiscard(log)

	record := make(Record)
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if line != "" {
			parseLine(record, line, n, log)
		}
		if errors.Is(err, io.EOF) {
			return record, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", n, err)
		}
	}
}

// ParseFile parses the log at path. A missing file yields an empty record.
func ParseFile(path string, log logrus.FieldLogger) (Record, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		logging.OrDiscard(log).WithField("path", path).Info("No confinement log")
		return make(Record), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, log)
}

func parseLine(record Record, line string, n int, log logrus.FieldLogger) {
	text := strings.TrimSpace(line)
	if text == "" || strings.HasPrefix(text, "#") {
		return
	}

	fields := strings.Split(text, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	area := fields[0]
	for i := 1; i < len(fields); i += 2 {
		kind := fields[i]
		if i+1 >= len(fields) {
			ignore(log, line, n)
			continue
		}
		date, err := timeseries.DateIn(fields[i+1])
		if err != nil {
			ignore(log, line, n)
			continue
		}
		record.Add(area, kind, date)
	}
}

func ignore(log logrus.FieldLogger, line string, n int) {
	log.WithField("line", n).Warn("Ignore row: " + line)
}
