package weather

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus/hooks/test"

	"wthrr.klederson.com/internal/fetch"
)

const forecastBody = `{
  "utc_offset_seconds": 3600,
  "current": {
    "time": "2024-03-01T14:15",
    "temperature_2m": 12.5,
    "relative_humidity_2m": 61,
    "apparent_temperature": 10.9,
    "is_day": 1,
    "weather_code": 3,
    "surface_pressure": 1011.2,
    "wind_speed_10m": 14.4,
    "wind_direction_10m": 225
  },
  "daily": {
    "time": ["2024-03-01", "2024-03-02"],
    "weather_code": [3, 61],
    "temperature_2m_max": [13.1, 9.8],
    "temperature_2m_min": [4.2, 3.0],
    "precipitation_sum": [0, 5.6]
  }
}`

func newTestProvider(t *testing.T, h http.HandlerFunc) *OpenMeteo {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	log, _ := test.NewNullLogger()
	p := NewOpenMeteo(srv.Client(), log)
	p.ForecastURL = srv.URL + "/v1/forecast"
	p.ArchiveURL = srv.URL + "/v1/archive"
	return p
}

func TestOpenMeteoCurrent(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/forecast" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		for key, want := range map[string]string{
			"latitude":           "52.5200",
			"longitude":          "13.4050",
			"temperature_unit":   "fahrenheit",
			"wind_speed_unit":    "mph",
			"precipitation_unit": "mm",
			"current":            currentFields,
			"daily":              dailyFields,
		} {
			if got := q.Get(key); got != want {
				t.Errorf("query %s = %q, want %q", key, got, want)
			}
		}
		fmt.Fprint(w, forecastBody)
	})

	units := Units{Temperature: Fahrenheit, Speed: MPH, Precipitation: Millimeters}
	got, err := p.Current(context.Background(), 52.52, 13.405, units)
	if err != nil {
		t.Fatal(err)
	}

	zone := time.FixedZone("", 3600)
	want := Weather{
		Current: Current{
			Time:                time.Date(2024, 3, 1, 14, 15, 0, 0, zone),
			Temperature:         12.5,
			ApparentTemperature: 10.9,
			Humidity:            61,
			WindSpeed:           14.4,
			WindDirection:       225,
			Pressure:            1011.2,
			Code:                3,
			IsDay:               true,
		},
		Daily: []Day{
			{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, zone), Code: 3, TempMax: 13.1, TempMin: 4.2},
			{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, zone), Code: 61, TempMax: 9.8, TempMin: 3.0, Precipitation: 5.6},
		},
		Units: units,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Current() mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenMeteoErrorStatus(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":true,"reason":"Latitude must be in range"}`, http.StatusBadRequest)
	})

	_, err := p.Current(context.Background(), 123, 0, DefaultUnits())
	if !errors.Is(err, ErrProvider) || !errors.Is(err, fetch.ErrStatus) {
		t.Fatalf("err = %v, want ErrProvider and ErrStatus", err)
	}
}

func TestOpenMeteoMismatchedDaily(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"current":{"time":"2024-03-01T14:15"},"daily":{"time":["2024-03-01"],"weather_code":[]}}`)
	})

	_, err := p.Current(context.Background(), 1, 1, DefaultUnits())
	if !errors.Is(err, ErrProvider) {
		t.Fatalf("err = %v, want ErrProvider", err)
	}
}

func TestOpenMeteoHistorical(t *testing.T) {
	var calls atomic.Int32
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/v1/archive" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		date := q.Get("start_date")
		if end := q.Get("end_date"); end != date {
			t.Errorf("end_date = %q, want %q", end, date)
		}
		code := 0
		if date == "2020-06-15" {
			code = 95
		}
		fmt.Fprintf(w, `{"utc_offset_seconds":0,"daily":{"time":[%q],"weather_code":[%d],"temperature_2m_max":[20],"temperature_2m_min":[10],"precipitation_sum":[1.5]}}`, date, code)
	})

	dates := []time.Time{
		time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	got, err := p.Historical(context.Background(), dates, 1, 2, DefaultUnits())
	if err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want 2", calls.Load())
	}
	if len(got) != 2 {
		t.Fatalf("got %d days, want 2", len(got))
	}
	for i, d := range got {
		if !d.Date.Equal(dates[i]) {
			t.Errorf("day %d date = %v, want %v", i, d.Date, dates[i])
		}
	}
	if got[0].Code != 95 || got[1].Code != 0 {
		t.Errorf("codes = %d, %d; want 95, 0", got[0].Code, got[1].Code)
	}
}

func TestOpenMeteoHistoricalEmpty(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"daily":{"time":[],"weather_code":[],"temperature_2m_max":[],"temperature_2m_min":[],"precipitation_sum":[]}}`)
	})

	_, err := p.Historical(context.Background(), []time.Time{time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)}, 1, 2, DefaultUnits())
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
}
