// Package navclient is the Go client for the Wayfinder API: a thin route
// proxy client plus the navigation session state machine built on top of
// it.
package navclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"wayfinder-api/internal/models"
)

const clientTimeout = 30 * time.Second

// Client talks to the Wayfinder API server.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the API server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: clientTimeout},
	}
}

// CalculateRoute computes a driving route between two [longitude, latitude]
// pairs through the route proxy. The response passes through unchanged;
// provider-shape parsing happens server-side.
func (c *Client) CalculateRoute(ctx context.Context, fromCoords, toCoords []float64) (*models.RouteResponse, error) {
	if err := validatePair(fromCoords); err != nil {
		return nil, fmt.Errorf("navclient: fromCoords: %w", err)
	}
	if err := validatePair(toCoords); err != nil {
		return nil, fmt.Errorf("navclient: toCoords: %w", err)
	}

	body, err := json.Marshal(models.RouteRequest{FromCoords: fromCoords, ToCoords: toCoords})
	if err != nil {
		return nil, fmt.Errorf("navclient: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/route", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("navclient: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("navclient: route request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			return nil, errors.New(errBody.Error)
		}
		return nil, fmt.Errorf("failed to calculate route: %s", resp.Status)
	}

	var route models.RouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&route); err != nil {
		return nil, fmt.Errorf("navclient: decode response: %w", err)
	}

	return &route, nil
}

// Search runs a forward-geocoding query through the API server.
func (c *Client) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	searchURL := c.baseURL + "/api/geocode?q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("navclient: create search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("navclient: search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("navclient: search failed: %s", resp.Status)
	}

	var results []models.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("navclient: decode search response: %w", err)
	}

	return results, nil
}

// validatePair checks for a finite [longitude, latitude] 2-tuple. Range
// bounds are not checked here; the provider owns that.
func validatePair(coords []float64) error {
	if len(coords) != 2 {
		return fmt.Errorf("expected [longitude, latitude], got %d elements", len(coords))
	}
	for _, v := range coords {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("coordinate %v is not finite", v)
		}
	}
	return nil
}
