package provider

import (
	"net/http"

	"github.com/ngmaloney/weather-terminal/internal/config"
)

// New builds the provider stack described by cfg:
// Open-Meteo (with optional Nominatim address lookup) -> circuit breaker -> rate limiter -> (optional) mock fallback
func New(cfg *config.Config) Provider {
	client := NewOpenMeteoClient()
	client.geocodingURL = cfg.GeocodingURL
	client.forecastURL = cfg.ForecastURL
	client.forecastDays = cfg.ForecastDays
	client.httpClient = &http.Client{Timeout: cfg.Timeout}
	if cfg.AddressLookup {
		client.secondary = NewNominatimGeocoder(cfg.NominatimURL)
	}

	var p Provider = NewBreaker(client)
	p = NewRateLimited(p, cfg.RateLimitRPS, cfg.RateLimitBurst)

	if cfg.MockFallback {
		p = NewFallback(p)
	}

	return p
}
