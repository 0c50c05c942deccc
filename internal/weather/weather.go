package weather

import (
	"context"
	"time"
)

// Current holds the conditions at fetch time.
type Current struct {
	Time                time.Time
	Temperature         float64
	ApparentTemperature float64
	Humidity            int
	WindSpeed           float64
	WindDirection       int // degrees, 0=north, clockwise
	Pressure            float64
	Code                int
	IsDay               bool
}

// Day is a one-day summary, used for the forecast and for historical dates.
type Day struct {
	Date          time.Time
	Code          int
	TempMax       float64
	TempMin       float64
	Precipitation float64
}

// Weather is the current conditions plus the daily forecast.
type Weather struct {
	Current Current
	Daily   []Day
	Units   Units
}

// Provider abstracts a weather data source.
type Provider interface {
	Current(ctx context.Context, lat, lon float64, units Units) (Weather, error)
	Historical(ctx context.Context, dates []time.Time, lat, lon float64, units Units) ([]Day, error)
}
