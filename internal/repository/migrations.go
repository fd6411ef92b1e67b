package repository

import (
	"context"
	"fmt"
)

// Migrate creates the schema when it does not exist yet. The statements are
// idempotent so startup can run this unconditionally.
func (r *Repository) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS marked_locations (
			id BIGSERIAL PRIMARY KEY,
			address TEXT NOT NULL,
			lat DOUBLE PRECISION NOT NULL,
			lon DOUBLE PRECISION NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS preference_markers (
			name TEXT PRIMARY KEY,
			poi TEXT NOT NULL,
			color TEXT NOT NULL,
			tooltip TEXT NOT NULL,
			visible BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS preference_flags (
			singleton BOOLEAN PRIMARY KEY DEFAULT TRUE CHECK (singleton),
			enable_tts BOOLEAN NOT NULL DEFAULT TRUE,
			auto_locate BOOLEAN NOT NULL DEFAULT TRUE
		)`,
	}

	for _, stmt := range stmts {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("repository: migrate: %w", err)
		}
	}
	return nil
}
