package ui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	validationMessage    = "Please enter a city name"
	failureMessageFormat = "Failed to fetch weather: %s"
)

// requestWeather starts a fetch for location. Blank input only raises the
// validation banner and leaves the displayed content as it was.
func (m Model) requestWeather(location string) (Model, tea.Cmd) {
	location = strings.TrimSpace(location)
	if location == "" {
		var cmd tea.Cmd
		m.banner, cmd = m.banner.Show(validationMessage)
		return m, cmd
	}

	m.surface.ShowLoading()
	m.banner = m.banner.Hide()
	m.surface.HideContent()

	m.requestSeq++
	slog.Info("fetching weather", "location", location, "seq", m.requestSeq)

	return m, tea.Batch(
		m.spinner.Tick,
		fetchWeather(m.provider, m.requestSeq, location, m.timeout),
	)
}

// handleWeatherFetched applies a provider result to the surface. Only the
// most recently issued request is applied; earlier ones are dropped and the
// loading indicator stays on until the latest resolves.
func (m Model) handleWeatherFetched(msg weatherFetchedMsg) (out Model, cmd tea.Cmd) {
	if msg.seq != m.requestSeq {
		slog.Debug("discarding stale weather response", "location", msg.query, "seq", msg.seq, "latest", m.requestSeq)
		return m, nil
	}

	out = m
	defer func() { out.surface.HideLoading() }()

	if msg.failure != nil {
		slog.Error("weather fetch failed", "location", msg.query, "err", msg.failure.detail)
		out.banner, cmd = out.banner.Show(fmt.Sprintf(failureMessageFormat, msg.failure.detail))
		return out, cmd
	}

	report := msg.report
	out.surface.Populate(report, m.displayZone)

	var cmds []tea.Cmd
	if report.HasForecast() {
		var revealCmd tea.Cmd
		out.surface.forecast, revealCmd = out.surface.forecast.Replace(renderForecast(report.Forecast))
		cmds = append(cmds, revealCmd)
	}

	out.surface.ShowContent()

	if m.history != nil {
		cmds = append(cmds, recordLocation(m.history, msg.query, report.Location))
	}

	slog.Info("weather updated", "location", report.Location, "forecast_days", len(report.Forecast))
	return out, tea.Batch(cmds...)
}
