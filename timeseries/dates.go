package timeseries

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned when a string is not a M/D/Y date.
var ErrInvalidDate = errors.New("invalid M/D/Y date")

// DateIn parses a M/D/Y date. One- or two-digit years are read as 20YY,
// four-digit years as is. The result is midnight UTC.
func DateIn(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		nums[i] = n
	}

	month, day, year := nums[0], nums[1], nums[2]
	switch len(strings.TrimSpace(parts[2])) {
	case 1, 2:
		year += 2000
	case 4:
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// MustDateIn is like DateIn but panics on error. Intended for constants and tests.
func MustDateIn(s string) time.Time {
	t, err := DateIn(s)
	if err != nil {
		panic(err)
	}
	return t
}

// DateOut formats a date as M/D/YY without leading zeros (e.g. 3/5/20).
func DateOut(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year()%100)
}

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays shifts a date by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}
