package weather

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// demoCodes are the conditions the demo provider cycles through.
var demoCodes = []int{0, 1, 2, 3, 45, 61, 63, 71, 80, 95}

// Demo generates deterministic fake weather for offline use. The same
// coordinates and date always produce the same numbers.
type Demo struct {
	Now func() time.Time
}

// NewDemo creates a demo provider using the wall clock.
func NewDemo() *Demo {
	return &Demo{Now: time.Now}
}

func demoRand(lat, lon float64, date time.Time) *rand.Rand {
	h := sha256.Sum256([]byte(fmt.Sprintf("%.4f,%.4f,%s", lat, lon, date.Format(dateLayout))))
	return rand.New(rand.NewSource(int64(binary.BigEndian.Uint64(h[:8]))))
}

// baseTemperature approximates a latitude-dependent yearly cycle in celsius.
func baseTemperature(lat float64, date time.Time) float64 {
	mean := 27 - math.Abs(lat)*0.4
	season := math.Cos(2 * math.Pi * float64(date.YearDay()-200) / 365)
	if lat < 0 {
		season = -season
	}
	return mean + season*10
}

func (d *Demo) day(date time.Time, lat, lon float64, units Units) Day {
	r := demoRand(lat, lon, date)
	base := baseTemperature(lat, date)
	spread := 4 + r.Float64()*6
	code := demoCodes[r.Intn(len(demoCodes))]

	precip := 0.0
	if code >= 51 {
		precip = r.Float64() * 12
	}

	return Day{
		Date:          date,
		Code:          code,
		TempMax:       convertTemperature(base+spread/2, units),
		TempMin:       convertTemperature(base-spread/2, units),
		Precipitation: convertPrecipitation(precip, units),
	}
}

// Current returns fake current conditions plus seven forecast days.
func (d *Demo) Current(ctx context.Context, lat, lon float64, units Units) (Weather, error) {
	if err := ctx.Err(); err != nil {
		return Weather{}, err
	}

	now := d.Now().Truncate(time.Minute)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	days := make([]Day, 7)
	for i := range days {
		days[i] = d.day(today.AddDate(0, 0, i), lat, lon, units)
	}

	r := demoRand(lat, lon, now)
	hour := float64(now.Hour()) + float64(now.Minute())/60
	// Sinusoidal daily curve peaking mid-afternoon.
	mix := (1 - math.Cos(2*math.Pi*(hour-3)/24)) / 2
	temp := days[0].TempMin + (days[0].TempMax-days[0].TempMin)*mix

	return Weather{
		Current: Current{
			Time:                now,
			Temperature:         round1(temp),
			ApparentTemperature: round1(temp - 1 - r.Float64()*2),
			Humidity:            35 + r.Intn(55),
			WindSpeed:           convertSpeed(2+r.Float64()*28, units),
			WindDirection:       r.Intn(360),
			Pressure:            round1(995 + r.Float64()*35),
			Code:                days[0].Code,
			IsDay:               now.Hour() >= 6 && now.Hour() < 20,
		},
		Daily: days,
		Units: units,
	}, nil
}

// Historical returns one fake day per requested date.
func (d *Demo) Historical(ctx context.Context, dates []time.Time, lat, lon float64, units Units) ([]Day, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Day, len(dates))
	for i, date := range dates {
		out[i] = d.day(date, lat, lon, units)
	}
	return out, nil
}

func convertTemperature(c float64, units Units) float64 {
	if units.Temperature == Fahrenheit {
		return round1(c*9/5 + 32)
	}
	return round1(c)
}

func convertSpeed(kmh float64, units Units) float64 {
	switch units.Speed {
	case MS:
		return round1(kmh / 3.6)
	case MPH:
		return round1(kmh / 1.609344)
	case Knots:
		return round1(kmh / 1.852)
	default:
		return round1(kmh)
	}
}

func convertPrecipitation(mm float64, units Units) float64 {
	if units.Precipitation == Inches {
		return math.Round(mm/25.4*100) / 100
	}
	return round1(mm)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
