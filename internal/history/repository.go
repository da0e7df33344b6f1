// Package history persists the locations a user has searched for
package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
)

// Repository stores search history in SQLite
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// NewRepository creates a history repository backed by db. The schema must
// already exist (see database.Open).
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Record upserts a searched location, bumping its hit count and last-used time
func (r *Repository) Record(ctx context.Context, query, displayName string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return fmt.Errorf("query cannot be empty")
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO location_history (query, display_name, hits, last_used_at)
		VALUES (?, ?, 1, ?)
		ON CONFLICT(query) DO UPDATE SET
			display_name = excluded.display_name,
			hits = location_history.hits + 1,
			last_used_at = excluded.last_used_at
	`, query, displayName, r.now())
	if err != nil {
		return fmt.Errorf("saving location: %w", err)
	}

	return nil
}

// Recent returns up to limit locations, most recently used first
func (r *Repository) Recent(ctx context.Context, limit int) ([]models.SavedLocation, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT query, display_name, hits, last_used_at FROM location_history ORDER BY last_used_at DESC, query LIMIT ?",
		limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var locations []models.SavedLocation
	for rows.Next() {
		var l models.SavedLocation
		if err := rows.Scan(&l.Query, &l.DisplayName, &l.Hits, &l.LastUsedAt); err != nil {
			return nil, fmt.Errorf("scanning location: %w", err)
		}
		locations = append(locations, l)
	}

	return locations, rows.Err()
}

// Delete removes a location from the history
func (r *Repository) Delete(ctx context.Context, query string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM location_history WHERE query = ?", query)
	if err != nil {
		return fmt.Errorf("deleting location: %w", err)
	}
	return nil
}
