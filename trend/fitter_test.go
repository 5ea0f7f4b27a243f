package trend

import (
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/epitrend/evolution"
	"github.com/sartorproj/epitrend/smooth"
	"github.com/sartorproj/epitrend/timeseries"
)

func TestPlanWindows(t *testing.T) {
	dates := series(30, func(int) float64 { return 0 }).Dates
	yesterday := d("3/30/20")

	t.Run("confined", func(t *testing.T) {
		p := PlanWindows(dates, d("3/17/20"), yesterday, 8, 14)
		assert.Equal(t, window("3/8/20", "3/17/20", "3/17/20", "4/1/20"), p.Primary)
		require.NotNil(t, p.PostLockdown)
		assert.Equal(t, window("3/17/20", "3/30/20", "3/17/20", "4/1/20"), *p.PostLockdown)
	})

	t.Run("never confined", func(t *testing.T) {
		p := PlanWindows(dates, d("1/1/99"), yesterday, 8, 21)
		assert.Equal(t, window("3/21/20", "3/30/20", "3/30/20", "4/21/20"), p.Primary)
		assert.Nil(t, p.PostLockdown)
	})

	t.Run("confined too recently", func(t *testing.T) {
		p := PlanWindows(dates, d("3/28/20"), yesterday, 8, 14)
		assert.Nil(t, p.PostLockdown)
		assert.Equal(t, d("3/30/20"), p.Primary.Fit.End)
	})

	t.Run("confined before range", func(t *testing.T) {
		p := PlanWindows(dates, d("2/20/20"), yesterday, 8, 14)
		assert.Nil(t, p.PostLockdown)
		assert.Equal(t, window("3/21/20", "3/30/20", "3/30/20", "4/14/20"), p.Primary)
	})

	t.Run("confined after yesterday", func(t *testing.T) {
		p := PlanWindows(dates, d("3/20/20"), d("3/15/20"), 8, 14)
		assert.Nil(t, p.PostLockdown)
		assert.Equal(t, d("3/15/20"), p.Primary.Fit.End)
	})

	t.Run("confined after range", func(t *testing.T) {
		p := PlanWindows(dates, d("4/5/20"), d("4/10/20"), 8, 14)
		assert.Nil(t, p.PostLockdown)
	})

	t.Run("four days after confinement", func(t *testing.T) {
		p := PlanWindows(dates, d("3/27/20"), yesterday, 8, 14)
		require.NotNil(t, p.PostLockdown)
		assert.Equal(t, d("3/27/20"), p.Primary.Fit.End)
	})
}

// growthThenDecay grows 20% a day until 3/17/20 and shrinks 10% a day after.
func growthThenDecay(i int) float64 {
	if i <= 16 {
		return 10 * math.Pow(1.2, float64(i))
	}
	return 10 * math.Pow(1.2, 16) * math.Pow(0.9, float64(i-16))
}

func TestAnalyze(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	f, err := NewFitter(DefaultConfig(), smooth.Disabled, log)
	require.NoError(t, err)

	s := series(30, growthThenDecay)
	at, err := f.Analyze(s, evolution.Confirmed, d("3/17/20"), d("3/30/20"))
	require.NoError(t, err)

	assert.Equal(t, 16, at.ConfinementIndex)
	assert.Equal(t, s.Values, at.Signal.Values)

	require.NotNil(t, at.Primary)
	assert.Len(t, at.Primary.Values, 16)
	assert.Equal(t, d("3/17/20"), at.Primary.Dates[0])
	assert.InDelta(t, math.Log(1.2), at.Primary.Slope, 1e-9)
	assert.InDelta(t, s.Values[16], at.Primary.Values[0], 1e-6)
	assert.Equal(t, "+20.0%", at.Primary.Label)

	require.NotNil(t, at.PostLockdown)
	assert.InDelta(t, math.Log(0.9), at.PostLockdown.Slope, 1e-9)
	assert.InDelta(t, s.Values[16], at.PostLockdown.Values[0], 1e-6)
	assert.Equal(t, "-10.0%", at.PostLockdown.Label)

	var fits int
	for _, e := range hook.AllEntries() {
		if e.Message == "Fitting trend" {
			fits++
			assert.Equal(t, logrus.DebugLevel, e.Level)
			assert.Contains(t, e.Data, "fit_begin")
		}
	}
	assert.Equal(t, 2, fits)
}

func TestAnalyzeUsesIndicatorHorizon(t *testing.T) {
	f, err := NewFitter(DefaultConfig(), smooth.Disabled, nil)
	require.NoError(t, err)

	s := series(30, growthThenDecay)
	at, err := f.Analyze(s, evolution.Deaths, confinementNever, d("3/30/20"))
	require.NoError(t, err)

	assert.Nil(t, at.PostLockdown)
	assert.Equal(t, -1, at.ConfinementIndex)
	assert.Len(t, at.Primary.Values, 23)
}

var confinementNever = timeseries.MustDateIn("1/1/99")

func TestAnalyzeConfinedBeforeData(t *testing.T) {
	f, err := NewFitter(DefaultConfig(), smooth.Disabled, nil)
	require.NoError(t, err)

	s := series(30, growthThenDecay)
	at, err := f.Analyze(s, evolution.Confirmed, d("1/23/20"), d("3/30/20"))
	require.NoError(t, err)

	assert.Nil(t, at.PostLockdown)
	assert.Equal(t, 0, at.ConfinementIndex)
	assert.Equal(t, d("3/30/20"), at.Primary.Window.Fit.End)
	assert.InDelta(t, math.Log(0.9), at.Primary.Slope, 1e-9)
}

func TestAnalyzeSmooths(t *testing.T) {
	f, err := NewFitter(DefaultConfig(), smooth.Params{Window: 5, Order: 1}, nil)
	require.NoError(t, err)

	s := series(30, func(i int) float64 { return 100 + 10*float64(i%2) })
	orig := s.Copy()

	at, err := f.Analyze(s, evolution.Confirmed, confinementNever, d("3/30/20"))
	require.NoError(t, err)

	assert.Equal(t, orig.Values, s.Values)
	assert.InDelta(t, 106, at.Signal.Values[15], 1e-9)
	assert.InDelta(t, 104, at.Signal.Values[16], 1e-9)
}

func TestAnalyzeErrors(t *testing.T) {
	f, err := NewFitter(DefaultConfig(), smooth.Params{Window: 31, Order: 2}, nil)
	require.NoError(t, err)
	_, err = f.Analyze(series(30, growthThenDecay), evolution.Confirmed, confinementNever, d("3/30/20"))
	assert.True(t, errors.Is(err, smooth.ErrSeriesTooShort))

	f, err = NewFitter(DefaultConfig(), smooth.Disabled, nil)
	require.NoError(t, err)
	_, err = f.Analyze(series(30, growthThenDecay), evolution.Confirmed, confinementNever, d("5/30/20"))
	assert.True(t, errors.Is(err, ErrEmptyWindow))
}

func TestNewFitterValidates(t *testing.T) {
	_, err := NewFitter(Config{FittingPeriod: -1}, smooth.Disabled, nil)
	assert.Error(t, err)

	_, err = NewFitter(DefaultConfig(), smooth.Params{Window: 3, Order: 3}, nil)
	assert.True(t, errors.Is(err, smooth.ErrInvalidOrder))
}

func TestFitterCopiesConfig(t *testing.T) {
	cfg := DefaultConfig()
	f, err := NewFitter(cfg, smooth.Disabled, nil)
	require.NoError(t, err)

	cfg.Extrapolation[evolution.Confirmed] = 99
	assert.Equal(t, 14, f.Config().ExtrapolationFor(evolution.Confirmed))

	partial := Config{FittingPeriod: 8, Extrapolation: map[evolution.Indicator]int{evolution.Deaths: 7}}
	assert.Equal(t, 7, partial.ExtrapolationFor(evolution.Deaths))
	assert.Equal(t, 21, partial.ExtrapolationFor(evolution.Active))
}
