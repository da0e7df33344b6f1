package provider

import (
	"context"
	"fmt"

	"github.com/ngmaloney/weather-terminal/internal/models"
	"golang.org/x/time/rate"
)

// RateLimited wraps a Provider with a token-bucket rate limit
type RateLimited struct {
	next    Provider
	limiter *rate.Limiter
}

// NewRateLimited creates a rate limited provider.
// rps is the maximum requests per second (may be fractional), burst the
// maximum burst size.
func NewRateLimited(next Provider, rps float64, burst int) *RateLimited {
	return &RateLimited{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Name returns the provider name
func (r *RateLimited) Name() string {
	return r.next.Name() + " [Rate Limited]"
}

// FetchWeather waits for limiter permission, then forwards
func (r *RateLimited) FetchWeather(ctx context.Context, location string) (*models.WeatherReport, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.next.FetchWeather(ctx, location)
}

var _ Provider = (*RateLimited)(nil)
