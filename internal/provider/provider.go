// Package provider fetches current weather and forecasts for a location
package provider

import (
	"context"
	"errors"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

var (
	// ErrLocationNotFound is returned when the location query resolves to nothing
	ErrLocationNotFound = errors.New("location not found")

	// ErrUnavailable is returned while the circuit breaker is open
	ErrUnavailable = errors.New("weather provider unavailable")
)

// Provider defines the interface for fetching a weather report
type Provider interface {
	// Name returns the provider's name
	Name() string

	// FetchWeather retrieves current conditions and the daily forecast
	FetchWeather(ctx context.Context, location string) (*models.WeatherReport, error)
}
