package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/weather-terminal/internal/models"
)

const historyLimit = 20

// LocationHistory stores previously searched locations
type LocationHistory interface {
	Record(ctx context.Context, query, displayName string) error
	Recent(ctx context.Context, limit int) ([]models.SavedLocation, error)
	Delete(ctx context.Context, query string) error
}

type historyLoadedMsg struct {
	locations []models.SavedLocation
	err       error
}

type historyRecordedMsg struct {
	query string
	err   error
}

type historyDeletedMsg struct {
	query string
	err   error
}

func loadHistory(h LocationHistory) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		locations, err := h.Recent(ctx, historyLimit)
		return historyLoadedMsg{locations: locations, err: err}
	}
}

func recordLocation(h LocationHistory, query, displayName string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := h.Record(ctx, query, displayName)
		return historyRecordedMsg{query: query, err: err}
	}
}

func deleteHistory(h LocationHistory, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := h.Delete(ctx, query)
		return historyDeletedMsg{query: query, err: err}
	}
}
