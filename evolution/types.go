package evolution

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownIndicator is returned when parsing an unsupported indicator name.
	ErrUnknownIndicator = errors.New("unknown indicator")
	// ErrUnknownKind is returned when parsing an unsupported evolution type.
	ErrUnknownKind = errors.New("unknown evolution type")
	// ErrSeriesTooShort is returned when a series is too short for an evolution type.
	ErrSeriesTooShort = errors.New("series too short for evolution type")
)

// Indicator is an observable derived from the raw tables.
type Indicator int

const (
	Confirmed Indicator = iota // Confirmed cases
	Deaths                     // Deaths
	Active                     // Confirmed - Recovered - Deaths
	DeathRate                  // Deaths / Confirmed x 100
)

var indicatorNames = [...]string{"Confirmed", "Deaths", "Active", "DeathRate"}

// Indicators returns every indicator.
func Indicators() []Indicator {
	return []Indicator{Confirmed, Deaths, Active, DeathRate}
}

func (i Indicator) String() string {
	if i < 0 || int(i) >= len(indicatorNames) {
		return fmt.Sprintf("Indicator(%d)", int(i))
	}
	return indicatorNames[i]
}

// Label returns the human-readable name and unit of the indicator.
func (i Indicator) Label() (text, unit string) {
	switch i {
	case Confirmed:
		return "confirmed cases", "[-]"
	case Deaths:
		return "deaths", "[-]"
	case Active:
		return "active cases", "[-]"
	case DeathRate:
		return "death rate", "[%]"
	}
	return i.String(), "[-]"
}

// ParseIndicator parses an indicator name such as "Confirmed" or "DeathRate".
func ParseIndicator(s string) (Indicator, error) {
	for i, name := range indicatorNames {
		if s == name {
			return Indicator(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIndicator, s)
}

// Kind is the evolution type applied to a cumulative signal.
type Kind int

const (
	Cumulative        Kind = iota // Identity
	Daily                         // First difference
	Curvature                     // Second difference
	SmoothedCurvature             // Difference of the smoothed first difference
	R0                            // Ratio of the smoothed first difference to its value R0Lag days before
)

var kindNames = [...]string{"cumulative", "daily", "curvature", "smoothedCurvature", "R0"}

// Kinds returns every evolution type.
func Kinds() []Kind {
	return []Kind{Cumulative, Daily, Curvature, SmoothedCurvature, R0}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Label returns the text used in titles for the evolution type.
func (k Kind) Label() string {
	switch k {
	case Cumulative:
		return "Cumulative"
	case Daily:
		return "Daily"
	case Curvature:
		return "Derivative of daily"
	case SmoothedCurvature:
		return "Derivative of smoothed daily"
	case R0:
		return "R0 from"
	}
	return k.String()
}

// ParseKind parses an evolution type name such as "daily" or "smoothedCurvature".
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if s == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Title joins the evolution and indicator labels, e.g. "Daily confirmed cases".
func Title(ind Indicator, kind Kind) string {
	text, _ := ind.Label()
	return kind.Label() + " " + text
}

// AxisLabel is Title followed by the indicator unit.
func AxisLabel(ind Indicator, kind Kind) string {
	_, unit := ind.Label()
	return Title(ind, kind) + " " + unit
}
