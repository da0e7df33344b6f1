package models

import (
	"encoding/json"
	"testing"
)

func TestForecastDay_DayLabel(t *testing.T) {
	tests := []struct {
		name string
		day  ForecastDay
		want string
	}{
		{"present", ForecastDay{DayOfWeek: "Mon"}, "Mon"},
		{"missing", ForecastDay{}, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.day.DayLabel(); got != tt.want {
				t.Errorf("DayLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWeatherReport_HasForecast(t *testing.T) {
	var nilReport *WeatherReport
	if nilReport.HasForecast() {
		t.Error("nil report should not have a forecast")
	}

	r := &WeatherReport{}
	if r.HasForecast() {
		t.Error("empty forecast should report false")
	}

	r.Forecast = []ForecastDay{{Description: "Rain"}}
	if !r.HasForecast() {
		t.Error("non-empty forecast should report true")
	}
}

func TestWeatherReport_DecodeBackendPayload(t *testing.T) {
	// Payload shape produced by the desktop backend this client replaces
	payload := `{
		"location": "東京",
		"temperature": 22.5,
		"feels_like": 21.0,
		"humidity": 65,
		"wind_speed": 5.2,
		"description": "晴れ",
		"icon": "https://openweathermap.org/img/wn/01d@2x.png",
		"updated_at": "2026-10-19T05:00:00Z",
		"forecast": [
			{"date": "10月20日", "high_temp": "24℃", "low_temp": "16℃", "description": "曇り", "icon": "x"}
		]
	}`

	var r WeatherReport
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if r.Location != "東京" || r.Humidity != 65 || r.WindSpeed != 5.2 {
		t.Errorf("decoded report = %+v", r)
	}
	if r.UpdatedAt.IsZero() {
		t.Error("updated_at should be parsed")
	}
	if len(r.Forecast) != 1 {
		t.Fatalf("len(Forecast) = %d, want 1", len(r.Forecast))
	}
	if got := r.Forecast[0].DayLabel(); got != "?" {
		t.Errorf("missing day_of_week label = %q, want ?", got)
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{22.5, 23},
		{22.4, 22},
		{21.0, 21},
		{-2.5, -2},
		{-2.6, -3},
		{0, 0},
	}

	for _, tt := range tests {
		if got := RoundHalfUp(tt.in); got != tt.want {
			t.Errorf("RoundHalfUp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
