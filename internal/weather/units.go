package weather

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is returned when a unit token matches no known unit.
var ErrUnknownUnit = errors.New("unknown unit")

type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "celsius"
	Fahrenheit TemperatureUnit = "fahrenheit"
)

type SpeedUnit string

const (
	KMH   SpeedUnit = "kmh"
	MS    SpeedUnit = "ms"
	MPH   SpeedUnit = "mph"
	Knots SpeedUnit = "kn"
)

type PrecipitationUnit string

const (
	Millimeters PrecipitationUnit = "mm"
	Inches      PrecipitationUnit = "inch"
)

// Units selects the measurement system requested from the provider.
type Units struct {
	Temperature   TemperatureUnit   `yaml:"temperature" mapstructure:"temperature"`
	Speed         SpeedUnit         `yaml:"speed" mapstructure:"speed"`
	Precipitation PrecipitationUnit `yaml:"precipitation" mapstructure:"precipitation"`
}

// DefaultUnits returns metric units.
func DefaultUnits() Units {
	return Units{
		Temperature:   Celsius,
		Speed:         KMH,
		Precipitation: Millimeters,
	}
}

// Apply sets the unit matching token on u. Tokens may name any of the
// three unit kinds, e.g. "fahrenheit", "mph" or "inch".
func (u *Units) Apply(token string) error {
	t := strings.ToLower(strings.TrimSpace(token))
	switch t {
	case string(Celsius), string(Fahrenheit):
		u.Temperature = TemperatureUnit(t)
	case string(KMH), string(MS), string(MPH), string(Knots):
		u.Speed = SpeedUnit(t)
	case string(Millimeters), string(Inches):
		u.Precipitation = PrecipitationUnit(t)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownUnit, token)
	}
	return nil
}

// Normalize fills empty fields with defaults and rejects unknown values.
func (u Units) Normalize() (Units, error) {
	def := DefaultUnits()
	if u.Temperature == "" {
		u.Temperature = def.Temperature
	}
	if u.Speed == "" {
		u.Speed = def.Speed
	}
	if u.Precipitation == "" {
		u.Precipitation = def.Precipitation
	}

	out := def
	for _, token := range []string{string(u.Temperature), string(u.Speed), string(u.Precipitation)} {
		if err := out.Apply(token); err != nil {
			return u, err
		}
	}
	if out != u {
		// a token of one kind was stored in the field of another
		return u, fmt.Errorf("%w: %+v", ErrUnknownUnit, u)
	}
	return out, nil
}

// TemperatureSymbol returns the display suffix for temperatures.
func (u Units) TemperatureSymbol() string {
	if u.Temperature == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// SpeedSymbol returns the display suffix for wind speeds.
func (u Units) SpeedSymbol() string {
	switch u.Speed {
	case MS:
		return "m/s"
	case MPH:
		return "mph"
	case Knots:
		return "kn"
	default:
		return "km/h"
	}
}

// PrecipitationSymbol returns the display suffix for precipitation.
func (u Units) PrecipitationSymbol() string {
	if u.Precipitation == Inches {
		return "in"
	}
	return "mm"
}
