package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"wthrr.klederson.com/internal/ui"
	"wthrr.klederson.com/internal/weather"
)

const (
	// App
	AppName    = "wthrr"
	AppVersion = "1.0"

	// Config file location, relative to os.UserConfigDir()
	DirName   = "wthrr"
	FileName  = "config.yaml"
	EnvPrefix = "WTHRR"

	// Defaults
	DefaultLanguage = "en"

	// Network
	HTTPTimeout = 10 * time.Second

	// Geocode cache
	GeocodeCacheSize = 64
	GeocodeCacheTTL  = 24 * time.Hour
)

// Config is the persisted user configuration.
type Config struct {
	Address  string        `yaml:"address" mapstructure:"address"`
	Language string        `yaml:"language" mapstructure:"language"`
	Units    weather.Units `yaml:"units" mapstructure:"units"`
	GUI      GUI           `yaml:"gui" mapstructure:"gui"`
}

// GUI holds display preferences.
type GUI struct {
	Border ui.BorderStyle `yaml:"border" mapstructure:"border"`
	Color  bool           `yaml:"color" mapstructure:"color"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Language: DefaultLanguage,
		Units:    weather.DefaultUnits(),
		GUI: GUI{
			Border: ui.BorderRounded,
			Color:  true,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/wthrr/config.yaml or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, DirName, FileName), nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("address", def.Address)
	v.SetDefault("language", def.Language)
	v.SetDefault("units.temperature", string(def.Units.Temperature))
	v.SetDefault("units.speed", string(def.Units.Speed))
	v.SetDefault("units.precipitation", string(def.Units.Precipitation))
	v.SetDefault("gui.border", def.GUI.Border.String())
	v.SetDefault("gui.color", def.GUI.Color)
}

// Load reads the config file at path, overlaid with WTHRR_* environment
// variables. A missing file yields the defaults.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("stat config %s: %w", path, err)
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	units, err := cfg.Units.Normalize()
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Units = units
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Reset deletes the config file. A missing file is not an error.
func Reset(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove config %s: %w", path, err)
	}
	return nil
}
