package params

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"wthrr.klederson.com/internal/config"
	"wthrr.klederson.com/internal/ui"
	"wthrr.klederson.com/internal/weather"
)

var now = time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)

func TestMerge(t *testing.T) {
	stored := config.Default()
	stored.Address = "Lima"

	tests := []struct {
		name string
		cfg  config.Config
		args Args
		want func() config.Config
	}{
		{
			name: "config only",
			cfg:  stored,
			args: Args{},
			want: func() config.Config { return stored },
		},
		{
			name: "auto keeps configured address",
			cfg:  stored,
			args: Args{Address: "AUTO"},
			want: func() config.Config { return stored },
		},
		{
			name: "args override",
			cfg:  stored,
			args: Args{Address: " Quito ", Language: "ES", Units: []string{"fahrenheit,mph", "inch"}, Border: "double"},
			want: func() config.Config {
				c := stored
				c.Address = "Quito"
				c.Language = "es"
				c.Units = weather.Units{Temperature: weather.Fahrenheit, Speed: weather.MPH, Precipitation: weather.Inches}
				c.GUI.Border = ui.BorderDouble
				return c
			},
		},
		{
			name: "empty config gets defaults",
			cfg:  config.Config{},
			args: Args{Address: "Cusco"},
			want: func() config.Config {
				return config.Config{Address: "Cusco", Language: config.DefaultLanguage, Units: weather.DefaultUnits()}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Merge(tt.cfg, tt.args, now)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want(), got.Config); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMergeErrors(t *testing.T) {
	stored := config.Default()
	stored.Address = "Lima"

	tests := []struct {
		name string
		cfg  config.Config
		args Args
		is   error
	}{
		{"no address", config.Default(), Args{}, ErrNoAddress},
		{"auto without config", config.Default(), Args{Address: "auto"}, ErrNoAddress},
		{"bad unit", stored, Args{Units: []string{"kelvin"}}, weather.ErrUnknownUnit},
		{"bad border", stored, Args{Border: "wavy"}, ui.ErrInvalidBorderStyle},
		{"future date", stored, Args{Historical: []string{"2024-03-11"}}, ErrFutureDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Merge(tt.cfg, tt.args, now)
			if !errors.Is(err, tt.is) {
				t.Fatalf("err = %v, want %v", err, tt.is)
			}
		})
	}

	if _, err := Merge(stored, Args{Historical: []string{"10/03/2024"}}, now); err == nil {
		t.Error("malformed date accepted")
	}
}

func TestMergeHistorical(t *testing.T) {
	stored := config.Default()
	stored.Address = "Lima"

	got, err := Merge(stored, Args{Historical: []string{"2024-03-10,2020-01-01", "2020-01-01", ""}}, now)
	if err != nil {
		t.Fatal(err)
	}
	want := []time.Time{
		time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, got.Historical); diff != "" {
		t.Errorf("dates mismatch (-want +got):\n%s", diff)
	}
}

func TestChanged(t *testing.T) {
	stored := config.Default()
	stored.Address = "Lima"

	p, err := Merge(stored, Args{}, now)
	if err != nil {
		t.Fatal(err)
	}
	if p.Changed(stored) {
		t.Error("unchanged params reported as changed")
	}

	p, err = Merge(stored, Args{Border: "solid"}, now)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Changed(stored) {
		t.Error("border change not detected")
	}
}
