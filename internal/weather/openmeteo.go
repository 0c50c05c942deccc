package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"wthrr.klederson.com/internal/fetch"
)

const (
	DefaultForecastURL = "https://api.open-meteo.com/v1/forecast"
	DefaultArchiveURL  = "https://archive-api.open-meteo.com/v1/archive"

	currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,is_day,weather_code,surface_pressure,wind_speed_10m,wind_direction_10m"
	dailyFields   = "weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum"

	dateLayout      = "2006-01-02"
	localTimeLayout = "2006-01-02T15:04"

	// historicalConcurrency bounds parallel archive requests.
	historicalConcurrency = 4
)

// ErrProvider is wrapped by every error returned from the Open-Meteo provider.
var ErrProvider = errors.New("weather provider")

// ErrNoData is returned when the archive has no record for a requested date.
var ErrNoData = errors.New("no weather data for date")

// OpenMeteo fetches weather from the Open-Meteo forecast and archive APIs.
type OpenMeteo struct {
	ForecastURL string
	ArchiveURL  string
	Client      *http.Client
	Log         logrus.FieldLogger
}

// NewOpenMeteo creates a provider against the public Open-Meteo endpoints.
func NewOpenMeteo(client *http.Client, log logrus.FieldLogger) *OpenMeteo {
	return &OpenMeteo{
		ForecastURL: DefaultForecastURL,
		ArchiveURL:  DefaultArchiveURL,
		Client:      client,
		Log:         log.WithField("provider", "open-meteo"),
	}
}

type currentBlock struct {
	Time          string  `json:"time"`
	Temperature   float64 `json:"temperature_2m"`
	Humidity      float64 `json:"relative_humidity_2m"`
	Apparent      float64 `json:"apparent_temperature"`
	IsDay         int     `json:"is_day"`
	Code          int     `json:"weather_code"`
	Pressure      float64 `json:"surface_pressure"`
	WindSpeed     float64 `json:"wind_speed_10m"`
	WindDirection float64 `json:"wind_direction_10m"`
}

type dailyBlock struct {
	Time          []string  `json:"time"`
	Code          []int     `json:"weather_code"`
	TempMax       []float64 `json:"temperature_2m_max"`
	TempMin       []float64 `json:"temperature_2m_min"`
	Precipitation []float64 `json:"precipitation_sum"`
}

type response struct {
	UTCOffsetSeconds int          `json:"utc_offset_seconds"`
	Current          currentBlock `json:"current"`
	Daily            dailyBlock   `json:"daily"`
}

func query(lat, lon float64, units Units) url.Values {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	q.Set("daily", dailyFields)
	q.Set("timezone", "auto")
	q.Set("temperature_unit", string(units.Temperature))
	q.Set("wind_speed_unit", string(units.Speed))
	q.Set("precipitation_unit", string(units.Precipitation))
	return q
}

// Current fetches current conditions and the seven day forecast.
func (o *OpenMeteo) Current(ctx context.Context, lat, lon float64, units Units) (Weather, error) {
	q := query(lat, lon, units)
	q.Set("current", currentFields)

	var resp response
	if err := fetch.JSON(ctx, o.Client, o.Log, o.ForecastURL+"?"+q.Encode(), &resp); err != nil {
		return Weather{}, fmt.Errorf("%w: forecast: %w", ErrProvider, err)
	}

	zone := time.FixedZone("", resp.UTCOffsetSeconds)
	cur := resp.Current
	at, err := time.ParseInLocation(localTimeLayout, cur.Time, zone)
	if err != nil {
		return Weather{}, fmt.Errorf("%w: current time %q: %w", ErrProvider, cur.Time, err)
	}

	days, err := resp.Daily.days(zone)
	if err != nil {
		return Weather{}, err
	}

	return Weather{
		Current: Current{
			Time:                at,
			Temperature:         cur.Temperature,
			ApparentTemperature: cur.Apparent,
			Humidity:            int(cur.Humidity),
			WindSpeed:           cur.WindSpeed,
			WindDirection:       int(cur.WindDirection),
			Pressure:            cur.Pressure,
			Code:                cur.Code,
			IsDay:               cur.IsDay == 1,
		},
		Daily: days,
		Units: units,
	}, nil
}

// Historical fetches one daily summary per date from the archive. Results
// are returned in the order of dates.
func (o *OpenMeteo) Historical(ctx context.Context, dates []time.Time, lat, lon float64, units Units) ([]Day, error) {
	out := make([]Day, len(dates))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(historicalConcurrency)
	for i, date := range dates {
		i, date := i, date
		eg.Go(func() error {
			day, err := o.historicalDay(ctx, date, lat, lon, units)
			if err != nil {
				return err
			}
			out[i] = day
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (o *OpenMeteo) historicalDay(ctx context.Context, date time.Time, lat, lon float64, units Units) (Day, error) {
	d := date.Format(dateLayout)
	q := query(lat, lon, units)
	q.Set("start_date", d)
	q.Set("end_date", d)

	var resp response
	if err := fetch.JSON(ctx, o.Client, o.Log, o.ArchiveURL+"?"+q.Encode(), &resp); err != nil {
		return Day{}, fmt.Errorf("%w: archive %s: %w", ErrProvider, d, err)
	}

	days, err := resp.Daily.days(time.FixedZone("", resp.UTCOffsetSeconds))
	if err != nil {
		return Day{}, err
	}
	if len(days) == 0 {
		return Day{}, fmt.Errorf("%w: %w %s", ErrProvider, ErrNoData, d)
	}
	return days[0], nil
}

func (b dailyBlock) days(zone *time.Location) ([]Day, error) {
	n := len(b.Time)
	if len(b.Code) < n || len(b.TempMax) < n || len(b.TempMin) < n || len(b.Precipitation) < n {
		return nil, fmt.Errorf("%w: daily arrays have mismatched lengths", ErrProvider)
	}

	days := make([]Day, 0, n)
	for i, ts := range b.Time {
		date, err := time.ParseInLocation(dateLayout, ts, zone)
		if err != nil {
			return nil, fmt.Errorf("%w: daily date %q: %w", ErrProvider, ts, err)
		}
		days = append(days, Day{
			Date:          date,
			Code:          b.Code[i],
			TempMax:       b.TempMax[i],
			TempMin:       b.TempMin[i],
			Precipitation: b.Precipitation[i],
		})
	}
	return days, nil
}
