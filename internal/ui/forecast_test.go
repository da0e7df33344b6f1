package ui

import (
	"strings"
	"testing"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

func TestRenderForecast(t *testing.T) {
	days := tokyoReport().Forecast

	items := renderForecast(days)

	if len(items) != len(days) {
		t.Fatalf("renderForecast() returned %d items, want %d", len(items), len(days))
	}

	for i, item := range items {
		if item.Index != i {
			t.Errorf("items[%d].Index = %d, want %d", i, item.Index, i)
		}
		if item.Day != days[i].DayOfWeek {
			t.Errorf("items[%d].Day = %q, want %q", i, item.Day, days[i].DayOfWeek)
		}
		if item.IconRef != days[i].Icon {
			t.Errorf("items[%d].IconRef = %q, want provider icon %q", i, item.IconRef, days[i].Icon)
		}
		if item.Description != days[i].Description {
			t.Errorf("items[%d].Description = %q, want %q", i, item.Description, days[i].Description)
		}
	}

	if got := items[1].TempRange(); got != "20°C/15°C" {
		t.Errorf("TempRange() = %q, want 20°C/15°C", got)
	}
}

func TestRenderForecast_MissingFields(t *testing.T) {
	items := renderForecast([]models.ForecastDay{
		{HighTemp: "10°C", LowTemp: "2°C"},
	})

	if len(items) != 1 {
		t.Fatalf("renderForecast() returned %d items, want 1", len(items))
	}
	if items[0].Day != "?" {
		t.Errorf("Day = %q, want ?", items[0].Day)
	}
	if items[0].Date != "" {
		t.Errorf("Date = %q, want empty", items[0].Date)
	}
}

func TestRenderForecast_Empty(t *testing.T) {
	if items := renderForecast(nil); len(items) != 0 {
		t.Errorf("renderForecast(nil) returned %d items, want 0", len(items))
	}
}

func TestForecastList_StaggeredReveal(t *testing.T) {
	var f forecastList
	f, cmd := f.Replace(renderForecast(tokyoReport().Forecast))
	if cmd == nil {
		t.Fatal("Replace should schedule the first reveal")
	}
	if strings.Contains(f.View(), "Mon") {
		t.Error("no card should be visible before the first reveal tick")
	}

	wantDays := []string{"Mon", "Tue", "Wed"}
	for i, day := range wantDays {
		f, cmd = f.Update(forecastRevealMsg{gen: f.gen})
		if f.revealed != i+1 {
			t.Fatalf("revealed = %d, want %d", f.revealed, i+1)
		}
		if !strings.Contains(f.View(), day) {
			t.Errorf("View() should contain %s after reveal %d", day, i+1)
		}
		if last := i == len(wantDays)-1; last != (cmd == nil) {
			t.Errorf("reveal %d: cmd nil = %v, want %v", i+1, cmd == nil, last)
		}
	}
}

func TestForecastList_ReplaceDropsOldTicks(t *testing.T) {
	var f forecastList
	f, _ = f.Replace(renderForecast(tokyoReport().Forecast))
	oldGen := f.gen
	f, _ = f.Update(forecastRevealMsg{gen: oldGen})

	f, _ = f.Replace(renderForecast(tokyoReport().Forecast[:1]))
	if f.revealed != 0 {
		t.Errorf("revealed = %d after Replace, want 0", f.revealed)
	}

	f, cmd := f.Update(forecastRevealMsg{gen: oldGen})
	if f.revealed != 0 || cmd != nil {
		t.Error("tick from the replaced list should be ignored")
	}
}

func TestForecastList_EmptyView(t *testing.T) {
	var f forecastList
	if !strings.Contains(f.View(), "No forecast available") {
		t.Errorf("View() = %q, want placeholder", f.View())
	}
}

func TestIconRefGlyph(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"https://openweathermap.org/img/wn/01d@2x.png", "☀"},
		{"https://openweathermap.org/img/wn/02n@2x.png", "⛅"},
		{"https://openweathermap.org/img/wn/04d@2x.png", "☁"},
		{"https://openweathermap.org/img/wn/10d@2x.png", "☂"},
		{"https://openweathermap.org/img/wn/11d@2x.png", "⚡"},
		{"https://openweathermap.org/img/wn/13d@2x.png", "❄"},
		{"https://openweathermap.org/img/wn/50d@2x.png", "≡"},
		{"https://openweathermap.org/img/wn/99d@2x.png", "·"},
		{"", "·"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			if got := iconRefGlyph(tt.ref); got != tt.want {
				t.Errorf("iconRefGlyph(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}
