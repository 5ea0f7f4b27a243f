package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l := New("debug", &buf)

	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	l.WithField("area", "France").Debug("Fitting trend")
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "area=France")
}

func TestNewUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New("chatty", &buf)

	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.Contains(t, buf.String(), "Unknown log level")
}

func TestDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))

	l := New("info", nil)
	assert.Same(t, l, OrDiscard(l))
}
