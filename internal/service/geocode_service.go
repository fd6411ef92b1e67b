package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"wayfinder-api/internal/models"
)

const (
	// searchResultLimit bounds how many forward-geocoding matches are
	// requested from the search service.
	searchResultLimit = 5

	geocodeTimeout = 10 * time.Second
)

// GeoCodeService proxies forward geocoding to the external search service.
type GeoCodeService struct {
	httpClient *http.Client
	// baseURL is the search service origin. Overrideable in tests.
	baseURL string
}

// NewGeoCodeService creates a new geo code service
func NewGeoCodeService(baseURL string) *GeoCodeService {
	return &GeoCodeService{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: geocodeTimeout},
	}
}

// Geocode searches for locations matching the given free-text address.
func (s *GeoCodeService) Geocode(ctx context.Context, address string) ([]models.SearchResult, error) {
	if address == "" {
		return nil, fmt.Errorf("service: address cannot be empty")
	}

	searchURL := fmt.Sprintf("%s/search?format=json&limit=%d&q=%s",
		s.baseURL, searchResultLimit, url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("service: create search request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("service: search call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("service: search failed: %s", resp.Status)
	}

	var results []models.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("service: decode search response: %w", err)
	}

	return results, nil
}

// ReverseGeoCodeService proxies reverse geocoding to the external search
// service.
type ReverseGeoCodeService struct {
	httpClient *http.Client
	baseURL    string
}

// NewReverseGeoCodeService creates a new reverse geo code service
func NewReverseGeoCodeService(baseURL string) *ReverseGeoCodeService {
	return &ReverseGeoCodeService{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: geocodeTimeout},
	}
}

// ReverseGeocode resolves the display name nearest to the given coordinates.
// Returns nil when the search service has no address for the point.
func (s *ReverseGeoCodeService) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.ReverseResult, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("service: invalid latitude: %f", lat)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("service: invalid longitude: %f", lon)
	}

	reverseURL := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%s&lon=%s",
		s.baseURL,
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lon, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reverseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("service: create reverse request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("service: reverse call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("service: reverse lookup failed: %s", resp.Status)
	}

	var result models.ReverseResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("service: decode reverse response: %w", err)
	}

	return &result, nil
}
