package ui

import (
	"context"
	"errors"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

var jst = time.FixedZone("JST", 9*60*60)

// fakeProvider answers every fetch with a canned report or error
type fakeProvider struct {
	report *models.WeatherReport
	err    error
	calls  []string
}

func (f *fakeProvider) Name() string { return "Fake" }

func (f *fakeProvider) FetchWeather(ctx context.Context, location string) (*models.WeatherReport, error) {
	f.calls = append(f.calls, location)
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

// fakeHistory is an in-memory LocationHistory
type fakeHistory struct {
	entries map[string]models.SavedLocation
	clock   time.Time
	failAll error
}

func newFakeHistory() *fakeHistory {
	return &fakeHistory{
		entries: make(map[string]models.SavedLocation),
		clock:   time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
	}
}

func (h *fakeHistory) Record(ctx context.Context, query, displayName string) error {
	if h.failAll != nil {
		return h.failAll
	}
	h.clock = h.clock.Add(time.Minute)
	e := h.entries[query]
	e.Query = query
	e.DisplayName = displayName
	e.Hits++
	e.LastUsedAt = h.clock
	h.entries[query] = e
	return nil
}

func (h *fakeHistory) Recent(ctx context.Context, limit int) ([]models.SavedLocation, error) {
	if h.failAll != nil {
		return nil, h.failAll
	}
	out := make([]models.SavedLocation, 0, len(h.entries))
	for _, e := range h.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastUsedAt.After(out[j].LastUsedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (h *fakeHistory) Delete(ctx context.Context, query string) error {
	if h.failAll != nil {
		return h.failAll
	}
	delete(h.entries, query)
	return nil
}

var errBoom = errors.New("boom")

func testConfig() *config.Config {
	return &config.Config{
		DefaultLocation: "Tokyo",
		Timeout:         time.Second,
		TimeZone:        "JST",
		Location:        jst,
	}
}

func tokyoReport() *models.WeatherReport {
	return &models.WeatherReport{
		Location:    "Tokyo, Japan",
		UpdatedAt:   time.Date(2026, 10, 19, 5, 0, 0, 0, time.UTC),
		Icon:        "https://openweathermap.org/img/wn/02d@2x.png",
		Description: "Partly cloudy",
		Temperature: 22.5,
		FeelsLike:   21.4,
		Humidity:    65,
		WindSpeed:   3.2,
		Forecast: []models.ForecastDay{
			{Date: "Oct 19", DayOfWeek: "Mon", HighTemp: "24°C", LowTemp: "16°C", Precipitation: "10%", Description: "Partly cloudy", Icon: "https://openweathermap.org/img/wn/02d@2x.png"},
			{Date: "Oct 20", DayOfWeek: "Tue", HighTemp: "20°C", LowTemp: "15°C", Precipitation: "85%", Description: "Moderate rain", Icon: "https://openweathermap.org/img/wn/10d@2x.png"},
			{Date: "Oct 21", DayOfWeek: "Wed", HighTemp: "23°C", LowTemp: "13°C", Precipitation: "0%", Description: "Clear sky", Icon: "https://openweathermap.org/img/wn/01d@2x.png"},
		},
	}
}

// update feeds msg to the model and returns the concrete Model
func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// runCmd executes cmd and flattens batches into their resulting messages.
// Only use it on commands that resolve immediately or after a short tick.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, runCmd(c)...)
	}
	return msgs
}

// findMsg returns the first message of type T in msgs
func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
