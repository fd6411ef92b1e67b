package repository

import (
	"context"
	"errors"
	"fmt"

	"wayfinder-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the persistence interfaces for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// SaveLocation inserts a marked location and returns it with its assigned ID
func (r *Repository) SaveLocation(ctx context.Context, loc models.MarkedLocation) (models.MarkedLocation, error) {
	sql := `
		INSERT INTO marked_locations (address, lat, lon)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, sql, loc.Address, loc.Latitude, loc.Longitude).Scan(&loc.ID)
	if err != nil {
		return models.MarkedLocation{}, fmt.Errorf("repository: failed to insert location: %w", err)
	}

	return loc, nil
}

// ListLocations returns all marked locations, oldest first
func (r *Repository) ListLocations(ctx context.Context) ([]models.MarkedLocation, error) {
	sql := `
		SELECT id, address, lat, lon
		FROM marked_locations
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list locations: %w", err)
	}
	defer rows.Close()

	var locations []models.MarkedLocation
	for rows.Next() {
		var loc models.MarkedLocation
		if err := rows.Scan(&loc.ID, &loc.Address, &loc.Latitude, &loc.Longitude); err != nil {
			return nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return locations, nil
}

// DeleteLocation removes one marked location by ID
func (r *Repository) DeleteLocation(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM marked_locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: location %d not found", id)
	}
	return nil
}

// ClearLocations removes all marked locations
func (r *Repository) ClearLocations(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM marked_locations`); err != nil {
		return fmt.Errorf("repository: failed to clear locations: %w", err)
	}
	return nil
}

// GetPreferences returns the stored preferences, or nil when nothing has
// been persisted yet
func (r *Repository) GetPreferences(ctx context.Context) (*models.Preferences, error) {
	prefs := models.Preferences{
		Markers:    make(map[string]models.MarkerConfig),
		EnableTTS:  true,
		AutoLocate: true,
	}

	rows, err := r.db.Query(ctx, `SELECT name, poi, color, tooltip, visible FROM preference_markers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query markers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var cfg models.MarkerConfig
		if err := rows.Scan(&name, &cfg.POI, &cfg.Color, &cfg.Tooltip, &cfg.Visible); err != nil {
			return nil, fmt.Errorf("repository: failed to scan marker: %w", err)
		}
		prefs.Markers[name] = cfg
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating markers: %w", err)
	}

	haveFlags := true
	err = r.db.QueryRow(ctx, `SELECT enable_tts, auto_locate FROM preference_flags WHERE singleton`).
		Scan(&prefs.EnableTTS, &prefs.AutoLocate)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repository: failed to query flags: %w", err)
		}
		haveFlags = false
	}

	if len(prefs.Markers) == 0 && !haveFlags {
		return nil, nil
	}

	return &prefs, nil
}

// UpsertMarker creates or replaces one overlay definition
func (r *Repository) UpsertMarker(ctx context.Context, name string, config models.MarkerConfig) error {
	sql := `
		INSERT INTO preference_markers (name, poi, color, tooltip, visible)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO UPDATE
		SET poi = EXCLUDED.poi, color = EXCLUDED.color,
		    tooltip = EXCLUDED.tooltip, visible = EXCLUDED.visible
	`

	if _, err := r.db.Exec(ctx, sql, name, config.POI, config.Color, config.Tooltip, config.Visible); err != nil {
		return fmt.Errorf("repository: failed to upsert marker: %w", err)
	}
	return nil
}

// DeleteMarker removes one overlay definition
func (r *Repository) DeleteMarker(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM preference_markers WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("repository: failed to delete marker: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: marker %q not found", name)
	}
	return nil
}

// SetFlags stores the assistant flags in the singleton flags row
func (r *Repository) SetFlags(ctx context.Context, flags models.PreferenceFlags) error {
	sql := `
		INSERT INTO preference_flags (singleton, enable_tts, auto_locate)
		VALUES (TRUE, $1, $2)
		ON CONFLICT (singleton) DO UPDATE
		SET enable_tts = EXCLUDED.enable_tts, auto_locate = EXCLUDED.auto_locate
	`

	if _, err := r.db.Exec(ctx, sql, flags.EnableTTS, flags.AutoLocate); err != nil {
		return fmt.Errorf("repository: failed to set flags: %w", err)
	}
	return nil
}
