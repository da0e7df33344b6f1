package models

import "time"

// SavedLocation is a previously searched location kept in the history store
type SavedLocation struct {
	Query       string // exactly what the user typed, reused to rerun the search
	DisplayName string // location name returned by the provider
	Hits        int
	LastUsedAt  time.Time
}
