// Package params merges command-line arguments over the stored
// configuration into the settings for one run.
package params

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wthrr.klederson.com/internal/config"
	"wthrr.klederson.com/internal/ui"
)

// AutoAddress asks for the configured address instead of a literal one.
const AutoAddress = "auto"

const dateLayout = "2006-01-02"

var (
	// ErrNoAddress is returned when neither the arguments nor the config name a place.
	ErrNoAddress = errors.New("no address given and none configured")
	// ErrFutureDate is returned for historical dates after today.
	ErrFutureDate = errors.New("historical date is in the future")
)

// Args are the raw command-line values. Empty fields mean "not given".
type Args struct {
	Address    string
	Language   string
	Units      []string
	Border     string
	Historical []string
	Save       bool
	Demo       bool
}

// Params are the resolved settings for a run.
type Params struct {
	Config     config.Config
	Historical []time.Time
	Save       bool
	Demo       bool
}

// Merge overlays args on cfg. now bounds historical dates.
func Merge(cfg config.Config, args Args, now time.Time) (Params, error) {
	merged := cfg

	if addr := strings.TrimSpace(args.Address); addr != "" && !strings.EqualFold(addr, AutoAddress) {
		merged.Address = addr
	}
	if strings.TrimSpace(merged.Address) == "" {
		return Params{}, ErrNoAddress
	}

	if args.Language != "" {
		merged.Language = strings.ToLower(strings.TrimSpace(args.Language))
	}
	if merged.Language == "" {
		merged.Language = config.DefaultLanguage
	}

	units, err := merged.Units.Normalize()
	if err != nil {
		return Params{}, err
	}
	for _, token := range args.Units {
		for _, t := range strings.Split(token, ",") {
			if strings.TrimSpace(t) == "" {
				continue
			}
			if err := units.Apply(t); err != nil {
				return Params{}, err
			}
		}
	}
	merged.Units = units

	if args.Border != "" {
		style, err := ui.ParseBorderStyle(args.Border)
		if err != nil {
			return Params{}, err
		}
		merged.GUI.Border = style
	}

	dates, err := parseDates(args.Historical, now)
	if err != nil {
		return Params{}, err
	}

	return Params{
		Config:     merged,
		Historical: dates,
		Save:       args.Save,
		Demo:       args.Demo,
	}, nil
}

func parseDates(raw []string, now time.Time) ([]time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	seen := make(map[time.Time]bool, len(raw))
	var dates []time.Time
	for _, r := range raw {
		for _, s := range strings.Split(r, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			d, err := time.Parse(dateLayout, s)
			if err != nil {
				return nil, fmt.Errorf("historical date %q: want YYYY-MM-DD: %w", s, err)
			}
			if d.After(today) {
				return nil, fmt.Errorf("%w: %s", ErrFutureDate, s)
			}
			if seen[d] {
				continue
			}
			seen[d] = true
			dates = append(dates, d)
		}
	}
	return dates, nil
}

// Changed reports whether the merged config differs from stored.
func (p Params) Changed(stored config.Config) bool {
	return p.Config != stored
}
