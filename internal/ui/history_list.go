package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

// locationItem wraps a SavedLocation for use in a list
type locationItem struct {
	location models.SavedLocation
}

// FilterValue implements list.Item
func (l locationItem) FilterValue() string {
	return l.location.Query + " " + l.location.DisplayName
}

// Title implements list.DefaultItem
func (l locationItem) Title() string {
	return l.location.Query
}

// Description implements list.DefaultItem
func (l locationItem) Description() string {
	times := "time"
	if l.location.Hits != 1 {
		times = "times"
	}
	if l.location.DisplayName == "" {
		return fmt.Sprintf("searched %d %s", l.location.Hits, times)
	}
	return fmt.Sprintf("%s · searched %d %s", l.location.DisplayName, l.location.Hits, times)
}

// createHistoryList creates a list.Model from saved locations
func createHistoryList(locations []models.SavedLocation, width, height int) list.Model {
	items := make([]list.Item, len(locations))
	for i, loc := range locations {
		items[i] = locationItem{location: loc}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Recent Locations"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	// Ctrl+C is the only way out of the app; Esc leaves the picker
	l.KeyMap.Quit.SetEnabled(false)

	return l
}
