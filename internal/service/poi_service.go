package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"wayfinder-api/internal/models"
)

const poiTimeout = 25 * time.Second

// BoundingBox is a south/west/north/east viewport in degrees.
type BoundingBox struct {
	South float64
	West  float64
	North float64
	East  float64
}

// POIService queries points of interest from the geographic data API by
// tag-based filter within a bounding box.
type POIService struct {
	httpClient *http.Client
	// interpreterURL is the full query endpoint. Overrideable in tests.
	interpreterURL string
}

// NewPOIService creates a new points-of-interest service
func NewPOIService(interpreterURL string) *POIService {
	return &POIService{
		interpreterURL: interpreterURL,
		httpClient:     &http.Client{Timeout: poiTimeout},
	}
}

// Query returns the nodes matching the tag filter (e.g. "wheelchair=yes")
// within the bounding box. The filter string is interpolated into the query
// language verbatim, so callers validate it first.
func (s *POIService) Query(ctx context.Context, filter string, box BoundingBox) (*models.POIResult, error) {
	if filter == "" {
		return nil, fmt.Errorf("service: filter cannot be empty")
	}

	query := fmt.Sprintf("[out:json];(node[%s](%s,%s,%s,%s););out body;",
		filter,
		formatCoord(box.South), formatCoord(box.West),
		formatCoord(box.North), formatCoord(box.East))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.interpreterURL, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("service: create poi request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("service: poi call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("service: poi query failed: %s", resp.Status)
	}

	var result models.POIResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("service: decode poi response: %w", err)
	}
	if result.Elements == nil {
		result.Elements = []models.POIElement{}
	}

	return &result, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
