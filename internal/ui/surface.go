package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/icon"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// VisualState summarizes what the user currently sees
type VisualState int

const (
	StateIdle    VisualState = iota // Nothing requested yet
	StateLoading                    // A fetch is in flight
	StateContent                    // Weather content is shown
	StateError                      // The error banner is shown
)

const updatedAtLayout = "Jan 2, 2006, 15:04"

// Surface holds the named display regions. It is owned by the Model and
// only written from Update.
type Surface struct {
	location     string
	updatedAt    string
	icon         string
	iconCategory icon.Category
	description  string
	temperature  string
	feelsLike    string
	humidity     string
	windSpeed    string
	forecast     forecastList

	loading        bool
	contentVisible bool
}

func (s *Surface) ShowLoading() { s.loading = true }
func (s *Surface) HideLoading() { s.loading = false }
func (s *Surface) ShowContent() { s.contentVisible = true }
func (s *Surface) HideContent() { s.contentVisible = false }
func (s *Surface) Loading() bool { return s.loading }
func (s *Surface) Content() bool { return s.contentVisible }

// Populate writes the current-conditions regions from a report. The
// forecast list is left alone.
func (s *Surface) Populate(r *models.WeatherReport, loc *time.Location) {
	category := icon.Classify(r.Description)

	s.location = r.Location
	s.updatedAt = "Last updated: " + formatUpdatedAt(r.UpdatedAt, loc)
	s.icon = category.Glyph()
	s.iconCategory = category
	s.description = r.Description
	s.temperature = fmt.Sprintf("%d°C", models.RoundHalfUp(r.Temperature))
	s.feelsLike = fmt.Sprintf("Feels like: %d°C", models.RoundHalfUp(r.FeelsLike))
	s.humidity = fmt.Sprintf("%d%%", r.Humidity)
	s.windSpeed = strconv.FormatFloat(r.WindSpeed, 'f', -1, 64) + " m/s"
}

// formatUpdatedAt renders a timestamp in the display zone. The output depends
// only on t and loc.
func formatUpdatedAt(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(updatedAtLayout)
}
