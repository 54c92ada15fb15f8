package pace

import (
	"fmt"
	"math"
	"strings"
)

// KmPerMile is the number of kilometers in one mile
const KmPerMile = 1.609344

const minutesPerHour = 60.0

// Unit identifies one of the four pace/speed units
type Unit string

const (
	MinPerMile Unit = "min/mi"
	MinPerKm   Unit = "min/km"
	MPH        Unit = "mph"
	KMH        Unit = "kmh"
)

// Units lists every unit in display order
var Units = []Unit{MinPerMile, MinPerKm, MPH, KMH}

// ParseUnit resolves a unit token, accepting common synonyms in any case
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min/mi", "/mi", "min/mile", "/mile", "per mile", "per mi", "mi":
		return MinPerMile, nil
	case "min/km", "/km", "per km", "km":
		return MinPerKm, nil
	case "mph":
		return MPH, nil
	case "kmh", "km/h", "kph":
		return KMH, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// Valid reports whether u is one of the four known units
func (u Unit) Valid() bool {
	switch u {
	case MinPerMile, MinPerKm, MPH, KMH:
		return true
	}
	return false
}

// IsPace reports whether u is a time-per-distance unit
func (u Unit) IsPace() bool {
	return u == MinPerMile || u == MinPerKm
}

// Label returns the upper-case display label ("MIN/MI", "KM/H", ...)
func (u Unit) Label() string {
	switch u {
	case MinPerMile:
		return "MIN/MI"
	case MinPerKm:
		return "MIN/KM"
	case MPH:
		return "MPH"
	case KMH:
		return "KM/H"
	}
	return strings.ToUpper(string(u))
}

func (u Unit) String() string {
	return string(u)
}

// Convert converts a pace or speed between units.
// Every conversion pivots through minutes per mile.
func Convert(value float64, from, to Unit) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return 0, fmt.Errorf("%w: %v %s", ErrInvalidInput, value, from)
	}

	var minPerMile float64
	switch from {
	case MinPerMile:
		minPerMile = value
	case MinPerKm:
		minPerMile = value * KmPerMile
	case MPH:
		minPerMile = minutesPerHour / value
	case KMH:
		minPerMile = minutesPerHour / (value / KmPerMile)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, from)
	}

	switch to {
	case MinPerMile:
		return minPerMile, nil
	case MinPerKm:
		return minPerMile / KmPerMile, nil
	case MPH:
		return minutesPerHour / minPerMile, nil
	case KMH:
		return (minutesPerHour / minPerMile) * KmPerMile, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, to)
}

// Values holds one precise value per unit
type Values struct {
	MinPerMile float64 `json:"min_per_mile" yaml:"min_per_mile"`
	MinPerKm   float64 `json:"min_per_km" yaml:"min_per_km"`
	MPH        float64 `json:"mph" yaml:"mph"`
	KMH        float64 `json:"kmh" yaml:"kmh"`
}

// ValuesFrom derives all four units from a single authoritative value
func ValuesFrom(value float64, unit Unit) (Values, error) {
	canonical, err := Convert(value, unit, MinPerMile)
	if err != nil {
		return Values{}, err
	}

	// The authoritative unit keeps its exact input rather than a round trip.
	v := Values{
		MinPerMile: canonical,
		MinPerKm:   canonical / KmPerMile,
		MPH:        minutesPerHour / canonical,
		KMH:        (minutesPerHour / canonical) * KmPerMile,
	}
	v.set(unit, value)
	return v, nil
}

// Get returns the value for a unit, or 0 for an unknown unit
func (v Values) Get(u Unit) float64 {
	switch u {
	case MinPerMile:
		return v.MinPerMile
	case MinPerKm:
		return v.MinPerKm
	case MPH:
		return v.MPH
	case KMH:
		return v.KMH
	}
	return 0
}

func (v *Values) set(u Unit, value float64) {
	switch u {
	case MinPerMile:
		v.MinPerMile = value
	case MinPerKm:
		v.MinPerKm = value
	case MPH:
		v.MPH = value
	case KMH:
		v.KMH = value
	}
}
