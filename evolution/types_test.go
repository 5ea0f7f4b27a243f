package evolution

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndicator(t *testing.T) {
	for _, ind := range Indicators() {
		parsed, err := ParseIndicator(ind.String())
		require.NoError(t, err)
		assert.Equal(t, ind, parsed)
	}
	_, err := ParseIndicator("Recovered")
	assert.True(t, errors.Is(err, ErrUnknownIndicator))
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	_, err := ParseKind("weekly")
	assert.True(t, errors.Is(err, ErrUnknownKind))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Daily confirmed cases", Title(Confirmed, Daily))
	assert.Equal(t, "R0 from deaths", Title(Deaths, R0))
	assert.Equal(t, "Cumulative death rate [%]", AxisLabel(DeathRate, Cumulative))
	assert.Equal(t, "Derivative of smoothed daily active cases [-]", AxisLabel(Active, SmoothedCurvature))
	assert.Equal(t, "Indicator(9)", Indicator(9).String())
}
