package service

import (
	"context"
	"fmt"

	"wayfinder-api/internal/models"
)

// LocationService contains the core business logic for marked-location
// operations.
type LocationService struct {
	repo LocationRepository
}

// Repository interface for dependency injection
type LocationRepository interface {
	SaveLocation(ctx context.Context, loc models.MarkedLocation) (models.MarkedLocation, error)
	ListLocations(ctx context.Context) ([]models.MarkedLocation, error)
	DeleteLocation(ctx context.Context, id int64) error
	ClearLocations(ctx context.Context) error
}

// NewLocationService creates a new location service
func NewLocationService(repo LocationRepository) *LocationService {
	return &LocationService{repo: repo}
}

// Save persists a marked location and returns it with its assigned ID.
func (s *LocationService) Save(ctx context.Context, loc models.MarkedLocation) (models.MarkedLocation, error) {
	if loc.Address == "" {
		return models.MarkedLocation{}, fmt.Errorf("service: address cannot be empty")
	}
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return models.MarkedLocation{}, fmt.Errorf("service: invalid latitude: %f", loc.Latitude)
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return models.MarkedLocation{}, fmt.Errorf("service: invalid longitude: %f", loc.Longitude)
	}

	saved, err := s.repo.SaveLocation(ctx, loc)
	if err != nil {
		return models.MarkedLocation{}, fmt.Errorf("service: failed to save location: %w", err)
	}
	return saved, nil
}

// List returns every marked location, oldest first.
func (s *LocationService) List(ctx context.Context) ([]models.MarkedLocation, error) {
	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list locations: %w", err)
	}
	return locations, nil
}

// Delete removes one marked location by ID.
func (s *LocationService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("service: invalid location id: %d", id)
	}
	if err := s.repo.DeleteLocation(ctx, id); err != nil {
		return fmt.Errorf("service: failed to delete location: %w", err)
	}
	return nil
}

// Clear removes all marked locations.
func (s *LocationService) Clear(ctx context.Context) error {
	if err := s.repo.ClearLocations(ctx); err != nil {
		return fmt.Errorf("service: failed to clear locations: %w", err)
	}
	return nil
}
