package models

import (
	"math"
	"time"
)

// WeatherReport is the provider's answer for a single location query
type WeatherReport struct {
	Location    string        `json:"location"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Icon        string        `json:"icon"` // icon URL
	Description string        `json:"description"`
	Temperature float64       `json:"temperature"` // Celsius
	FeelsLike   float64       `json:"feels_like"`  // Celsius
	Humidity    int           `json:"humidity"`    // percent, 0-100
	WindSpeed   float64       `json:"wind_speed"`  // m/s
	Forecast    []ForecastDay `json:"forecast,omitempty"`
}

// HasForecast reports whether the report carries at least one forecast day
func (r *WeatherReport) HasForecast() bool {
	return r != nil && len(r.Forecast) > 0
}

// ForecastDay is one day of the multi-day forecast, in chronological order
type ForecastDay struct {
	Date          string `json:"date,omitempty"`
	DayOfWeek     string `json:"day_of_week,omitempty"`
	HighTemp      string `json:"high_temp"`
	LowTemp       string `json:"low_temp"`
	Precipitation string `json:"precipitation,omitempty"`
	Description   string `json:"description"`
	Icon          string `json:"icon"` // icon URL, supplied by the provider
}

// DayLabel returns the day-of-week label, or "?" when the provider omitted it
func (d ForecastDay) DayLabel() string {
	if d.DayOfWeek == "" {
		return "?"
	}
	return d.DayOfWeek
}

// RoundHalfUp rounds to the nearest integer with halves rounded toward +Inf,
// so -2.5 displays as -2 and 2.5 as 3.
func RoundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
