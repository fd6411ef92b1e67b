package service

import (
	"context"
	"fmt"

	"wayfinder-api/internal/models"
)

// PreferenceService contains the core business logic for user-preference
// operations. Writes go straight to the repository so preferences are
// serialized on every change rather than held in ambient state.
type PreferenceService struct {
	repo PreferenceRepository
}

// Repository interface for dependency injection
type PreferenceRepository interface {
	GetPreferences(ctx context.Context) (*models.Preferences, error)
	UpsertMarker(ctx context.Context, name string, config models.MarkerConfig) error
	DeleteMarker(ctx context.Context, name string) error
	SetFlags(ctx context.Context, flags models.PreferenceFlags) error
}

// NewPreferenceService creates a new preference service
func NewPreferenceService(repo PreferenceRepository) *PreferenceService {
	return &PreferenceService{repo: repo}
}

// Get returns the stored preferences, falling back to the defaults when
// nothing has been persisted yet.
func (s *PreferenceService) Get(ctx context.Context) (models.Preferences, error) {
	prefs, err := s.repo.GetPreferences(ctx)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("service: failed to get preferences: %w", err)
	}
	if prefs == nil {
		return models.DefaultPreferences(), nil
	}
	return *prefs, nil
}

// SetMarker creates or replaces one overlay definition.
func (s *PreferenceService) SetMarker(ctx context.Context, name string, config models.MarkerConfig) error {
	if name == "" {
		return fmt.Errorf("service: marker name cannot be empty")
	}
	if config.POI == "" {
		return fmt.Errorf("service: marker poi filter cannot be empty")
	}
	if err := s.repo.UpsertMarker(ctx, name, config); err != nil {
		return fmt.Errorf("service: failed to set marker: %w", err)
	}
	return nil
}

// RemoveMarker deletes one overlay definition.
func (s *PreferenceService) RemoveMarker(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("service: marker name cannot be empty")
	}
	if err := s.repo.DeleteMarker(ctx, name); err != nil {
		return fmt.Errorf("service: failed to remove marker: %w", err)
	}
	return nil
}

// SetFlags updates the assistant flags.
func (s *PreferenceService) SetFlags(ctx context.Context, flags models.PreferenceFlags) error {
	if err := s.repo.SetFlags(ctx, flags); err != nil {
		return fmt.Errorf("service: failed to set flags: %w", err)
	}
	return nil
}
