package app

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"wthrr.klederson.com/internal/config"
	"wthrr.klederson.com/internal/location"
	"wthrr.klederson.com/internal/params"
	"wthrr.klederson.com/internal/ui"
	"wthrr.klederson.com/internal/weather"
)

// App wires the geocoder and weather provider for one report.
type App struct {
	Geocoder location.Geocoder
	Provider weather.Provider
	Log      logrus.FieldLogger
}

// New creates an App. In demo mode no network access happens.
func New(demoMode bool, log logrus.FieldLogger) *App {
	if demoMode {
		return &App{
			Geocoder: location.Demo{},
			Provider: weather.NewDemo(),
			Log:      log,
		}
	}

	client := &http.Client{Timeout: config.HTTPTimeout}
	return &App{
		Geocoder: location.NewClient(client, log, config.GeocodeCacheSize, config.GeocodeCacheTTL),
		Provider: weather.NewOpenMeteo(client, log),
		Log:      log,
	}
}

// Run resolves the address and fetches current and historical weather.
func (a *App) Run(ctx context.Context, p params.Params) (ui.Product, error) {
	cfg := p.Config

	loc, err := a.Geocoder.Get(ctx, cfg.Address, cfg.Language)
	if err != nil {
		return ui.Product{}, err
	}
	a.Log.WithFields(logrus.Fields{
		"address": loc.Name,
		"lat":     loc.Lat,
		"lon":     loc.Lon,
	}).Debug("resolved location")

	w, err := a.Provider.Current(ctx, loc.Lat, loc.Lon, cfg.Units)
	if err != nil {
		return ui.Product{}, err
	}

	var historical []weather.Day
	if len(p.Historical) > 0 {
		historical, err = a.Provider.Historical(ctx, p.Historical, loc.Lat, loc.Lon, cfg.Units)
		if err != nil {
			return ui.Product{}, err
		}
	}

	return ui.Product{
		Address:    loc.Name,
		Weather:    w,
		Historical: historical,
	}, nil
}

// Render writes the report to out.
func (a *App) Render(out io.Writer, product ui.Product, gui config.GUI) error {
	_, err := fmt.Fprintln(out, product.Render(gui.Border, gui.Color))
	return err
}

// Next describes what happens after a report is shown.
type Next struct {
	ConfigPath string
	Stored     config.Config
	// Confirm asks the user a yes/no question. Nil means non-interactive.
	Confirm func(ctx context.Context, question string, style ui.BorderStyle) (bool, error)
}

// HandleNext offers to persist changed settings as the new defaults.
func (a *App) HandleNext(ctx context.Context, p params.Params, n Next) error {
	if !p.Changed(n.Stored) {
		return nil
	}

	save := p.Save
	if !save && n.Confirm != nil {
		ok, err := n.Confirm(ctx, "Save these settings as default?", p.Config.GUI.Border)
		if err != nil {
			return fmt.Errorf("confirm save: %w", err)
		}
		save = ok
	}
	if !save {
		a.Log.Debug("settings not saved")
		return nil
	}

	if err := config.Save(n.ConfigPath, p.Config); err != nil {
		return err
	}
	a.Log.WithField("path", n.ConfigPath).Info("saved settings")
	return nil
}
