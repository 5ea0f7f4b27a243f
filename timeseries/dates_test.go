package timeseries

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateIn(t *testing.T) {
	tests := []struct {
		in       string
		expected time.Time
	}{
		{"3/17/20", time.Date(2020, 3, 17, 0, 0, 0, 0, time.UTC)},
		{"3/17/2020", time.Date(2020, 3, 17, 0, 0, 0, 0, time.UTC)},
		{"03/07/20", time.Date(2020, 3, 7, 0, 0, 0, 0, time.UTC)},
		{" 1/1/99 ", time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2/29/20", time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"12/31/5", time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := DateIn(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(d), "got %v", d)
		})
	}
}

func TestDateInInvalid(t *testing.T) {
	for _, in := range []string{"", "3/17", "13/1/20", "2/30/20", "0/1/20", "a/b/c", "3/17/202", "2020-03-17"} {
		t.Run(in, func(t *testing.T) {
			_, err := DateIn(in)
			assert.True(t, errors.Is(err, ErrInvalidDate), "expected ErrInvalidDate for %q, got %v", in, err)
		})
	}
}

func TestDateOut(t *testing.T) {
	assert.Equal(t, "3/5/20", DateOut(time.Date(2020, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "12/31/20", DateOut(time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1/1/99", DateOut(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDateRoundTrip(t *testing.T) {
	d := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2099, 12, 31, 0, 0, 0, 0, time.UTC)
	for ; !d.After(end); d = AddDays(d, 13) {
		back, err := DateIn(DateOut(d))
		require.NoError(t, err)
		require.True(t, d.Equal(back), "round trip failed for %v (%s)", d, DateOut(d))
	}
}

func TestDaysBetween(t *testing.T) {
	a := MustDateIn("3/1/20")
	assert.Equal(t, 0, DaysBetween(a, a))
	assert.Equal(t, 31, DaysBetween(a, MustDateIn("4/1/20")))
	assert.Equal(t, -1, DaysBetween(a, MustDateIn("2/29/20")))
}
