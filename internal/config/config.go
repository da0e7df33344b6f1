package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
	_ "time/tzdata" // display time zone must resolve on hosts without zoneinfo

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/ngmaloney/weather-terminal/internal/database"
)

// DefaultTimeout bounds a single weather fetch when none is configured
const DefaultTimeout = 30 * time.Second

// Config holds runtime settings for the weather terminal
type Config struct {
	DefaultLocation string `validate:"required"`
	DBPath          string `validate:"required"`
	LogFile         string

	// Provider settings
	GeocodingURL   string        `validate:"required,url"`
	ForecastURL    string        `validate:"required,url"`
	ForecastDays   int           `validate:"min=1,max=16"`
	Timeout        time.Duration `validate:"gt=0"`
	RateLimitRPS   float64       `validate:"gt=0"`
	RateLimitBurst int           `validate:"min=1"`
	MockFallback   bool
	AddressLookup  bool
	NominatimURL   string `validate:"omitempty,url"`

	// TimeZone is the zone used to display the last-updated timestamp
	TimeZone string         `validate:"required"`
	Location *time.Location `validate:"-"`
}

// Load reads configuration from .env and the environment with defaults
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "err", err)
	}

	cfg := &Config{
		DefaultLocation: getenvDefault("WEATHER_DEFAULT_LOCATION", "Tokyo"),
		DBPath:          getenvDefault("WEATHER_DB_PATH", database.DBPath()),
		LogFile:         getenvDefault("WEATHER_LOG_FILE", "weather-terminal.log"),
		GeocodingURL:    getenvDefault("OPEN_METEO_GEOCODING_URL", "https://geocoding-api.open-meteo.com/v1/search"),
		ForecastURL:     getenvDefault("OPEN_METEO_FORECAST_URL", "https://api.open-meteo.com/v1/forecast"),
		NominatimURL:    getenvDefault("NOMINATIM_URL", "https://nominatim.openstreetmap.org/search"),
		TimeZone:        getenvDefault("WEATHER_TIMEZONE", "Asia/Tokyo"),
	}

	var err error
	if cfg.ForecastDays, err = getenvInt("WEATHER_FORECAST_DAYS", 7); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getenvInt("WEATHER_RATE_LIMIT_BURST", 3); err != nil {
		return nil, err
	}
	if cfg.MockFallback, err = getenvBool("WEATHER_MOCK_FALLBACK", true); err != nil {
		return nil, err
	}
	if cfg.AddressLookup, err = getenvBool("WEATHER_ADDRESS_LOOKUP", true); err != nil {
		return nil, err
	}

	if cfg.Timeout, err = time.ParseDuration(getenvDefault("WEATHER_TIMEOUT", DefaultTimeout.String())); err != nil {
		return nil, fmt.Errorf("invalid WEATHER_TIMEOUT: %w", err)
	}

	if cfg.RateLimitRPS, err = strconv.ParseFloat(getenvDefault("WEATHER_RATE_LIMIT_RPS", "1"), 64); err != nil {
		return nil, fmt.Errorf("invalid WEATHER_RATE_LIMIT_RPS: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints and resolves the display time zone
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid WEATHER_TIMEZONE %q: %w", c.TimeZone, err)
	}
	c.Location = loc

	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
