package provider

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Fallback wraps a Provider and answers with a mock report whenever the
// wrapped provider fails for a reason other than an unknown location
type Fallback struct {
	next Provider
	now  func() time.Time
}

// NewFallback creates a provider that never fails
func NewFallback(next Provider) *Fallback {
	return &Fallback{next: next, now: time.Now}
}

// Name returns the provider name
func (f *Fallback) Name() string {
	return f.next.Name() + " [Fallback]"
}

// FetchWeather forwards to the wrapped provider and substitutes mock data on
// error. Unknown locations are still reported as errors.
func (f *Fallback) FetchWeather(ctx context.Context, location string) (*models.WeatherReport, error) {
	report, err := f.next.FetchWeather(ctx, location)
	if err == nil {
		return report, nil
	}
	// A bad query is the user's to fix, not an outage to paper over
	if errors.Is(err, ErrLocationNotFound) {
		return nil, err
	}

	slog.Warn("provider failed, using mock data",
		"provider", f.next.Name(),
		"location", location,
		"err", err,
	)
	return MockReport(location, f.now()), nil
}

// MockReport returns the fixed report shown when no provider data is available
func MockReport(location string, now time.Time) *models.WeatherReport {
	return &models.WeatherReport{
		Location:    location,
		UpdatedAt:   now,
		Icon:        iconURL("01d"),
		Description: "晴れ",
		Temperature: 22.5,
		FeelsLike:   21.0,
		Humidity:    65,
		WindSpeed:   5.2,
	}
}

var _ Provider = (*Fallback)(nil)
