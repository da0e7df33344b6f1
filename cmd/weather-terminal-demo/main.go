package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/ngmaloney/weather-terminal/internal/provider"
	"github.com/ngmaloney/weather-terminal/internal/ui"
)

// demoProvider serves canned data so the UI can be explored offline.
// Searching for "error" shows the failure banner.
type demoProvider struct {
	delay time.Duration
}

func (d demoProvider) Name() string { return "Demo" }

func (d demoProvider) FetchWeather(ctx context.Context, location string) (*models.WeatherReport, error) {
	select {
	case <-time.After(d.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if strings.EqualFold(location, "error") {
		return nil, fmt.Errorf("%w: demo failure", provider.ErrUnavailable)
	}

	now := time.Now()
	report := provider.MockReport(location, now)
	report.Forecast = demoForecast(now)
	return report, nil
}

func demoForecast(start time.Time) []models.ForecastDay {
	const icon = "https://openweathermap.org/img/wn/%s@2x.png"

	days := []struct {
		desc, icon string
		high, low  int
		rain       int
	}{
		{"Clear sky", "01d", 24, 16, 0},
		{"Partly cloudy", "02d", 23, 15, 10},
		{"Rain", "10d", 19, 14, 85},
		{"Thunderstorm", "11d", 21, 17, 70},
		{"Cloudy", "04d", 20, 13, 20},
		{"Fog", "50d", 18, 12, 5},
		{"Snow", "13d", 4, -2, 60},
	}

	forecast := make([]models.ForecastDay, len(days))
	for i, d := range days {
		date := start.AddDate(0, 0, i)
		forecast[i] = models.ForecastDay{
			Date:          date.Format("Jan 2"),
			DayOfWeek:     date.Format("Mon"),
			HighTemp:      fmt.Sprintf("%d°C", d.high),
			LowTemp:       fmt.Sprintf("%d°C", d.low),
			Precipitation: fmt.Sprintf("%d%%", d.rain),
			Description:   d.desc,
			Icon:          fmt.Sprintf(icon, d.icon),
		}
	}
	return forecast
}

// This demo shows the UI with mock data
func main() {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	cfg := &config.Config{
		DefaultLocation: "Tokyo",
		Timeout:         5 * time.Second,
		TimeZone:        "Local",
		Location:        time.Local,
	}

	p := demoProvider{delay: 600 * time.Millisecond}

	program := tea.NewProgram(ui.NewModel(cfg, p, nil), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running demo: %v\n", err)
		os.Exit(1)
	}
}
