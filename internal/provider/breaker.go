package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/sony/gobreaker"
)

// Breaker wraps a Provider with a circuit breaker. Once the upstream keeps
// failing, calls fail fast with ErrUnavailable until the breaker half-opens.
type Breaker struct {
	next    Provider
	circuit *gobreaker.CircuitBreaker
}

// NewBreaker creates a circuit-breaking provider
func NewBreaker(next Provider) *Breaker {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Interval:    1 * time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &Breaker{next: next, circuit: cb}
}

// Name returns the provider name
func (b *Breaker) Name() string {
	return b.next.Name()
}

// FetchWeather forwards through the circuit breaker. Unknown locations are
// user errors and do not count as upstream failures.
func (b *Breaker) FetchWeather(ctx context.Context, location string) (*models.WeatherReport, error) {
	var notFound error

	result, err := b.circuit.Execute(func() (interface{}, error) {
		report, err := b.next.FetchWeather(ctx, location)
		if errors.Is(err, ErrLocationNotFound) {
			notFound = err
			return nil, nil
		}
		return report, err
	})

	if notFound != nil {
		return nil, notFound
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err != nil {
		return nil, err
	}

	report, ok := result.(*models.WeatherReport)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}
	return report, nil
}

// State returns the breaker's current state
func (b *Breaker) State() gobreaker.State {
	return b.circuit.State()
}

var _ Provider = (*Breaker)(nil)
