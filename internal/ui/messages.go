package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/provider"
)

// Message types for async operations

// submitMsg asks the coordinator to fetch weather for a location
type submitMsg struct {
	location string
}

// fetchFailure is the only failure shape a fetch can produce. detail is
// safe to show to the user.
type fetchFailure struct {
	detail string
}

// weatherFetchedMsg is sent when a provider call resolves. Exactly one of
// report and failure is set.
type weatherFetchedMsg struct {
	seq     int
	query   string
	report  *models.WeatherReport
	failure *fetchFailure
}

// submit emits a submitMsg for location
func submit(location string) tea.Cmd {
	return func() tea.Msg {
		return submitMsg{location: location}
	}
}

// fetchWeather calls the provider in the background
func fetchWeather(p provider.Provider, seq int, location string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		report, err := p.FetchWeather(ctx, location)
		if err == nil && report == nil {
			err = errors.New("provider returned no data")
		}
		if err != nil {
			return weatherFetchedMsg{
				seq:     seq,
				query:   location,
				failure: &fetchFailure{detail: err.Error()},
			}
		}

		return weatherFetchedMsg{seq: seq, query: location, report: report}
	}
}
