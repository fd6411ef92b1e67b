package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"wayfinder-api/internal/models"
)

const (
	// directionsPath is the routing provider's directions-by-geometry
	// endpoint, returning GeoJSON for the driving-car profile.
	directionsPath = "/v2/directions/driving-car/geojson"

	// orsTimeout is the maximum duration for one provider call.
	orsTimeout = 10 * time.Second

	// httpMaxIdleConns is the number of idle keep-alive connections kept in
	// the transport pool.
	httpMaxIdleConns = 10

	// httpIdleConnTimeout is how long an idle connection stays pooled.
	httpIdleConnTimeout = 30 * time.Second
)

// Error messages here are part of the wire contract; ErrNoRouteFound in
// particular is surfaced verbatim to clients.
var (
	ErrNoRouteFound    = errors.New("No route found")
	ErrNoRouteSegments = errors.New("no drivable segments in route")
)

// RouteService computes driving routes through the external routing
// provider and normalizes its GeoJSON response into the stable shape
// served to clients.
type RouteService struct {
	apiKey     string
	httpClient *http.Client
	// baseURL is the provider origin. Overrideable in tests.
	baseURL string
}

// NewRouteService creates a route service backed by the routing provider at
// baseURL. apiKey is sent as-is in the Authorization header; its validity
// is only discovered on the first provider call.
func NewRouteService(apiKey, baseURL string) *RouteService {
	transport := &http.Transport{
		MaxIdleConns:        httpMaxIdleConns,
		MaxIdleConnsPerHost: httpMaxIdleConns,
		IdleConnTimeout:     httpIdleConnTimeout,
	}
	return &RouteService{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   orsTimeout,
			Transport: transport,
		},
	}
}

// CalculateRoute requests a driving route from fromCoords to toCoords
// (both [longitude, latitude]) and returns the normalized geometry and
// route info. The provider configuration is fixed: fastest preference,
// kilometers, English instructions, geometry and elevation included.
// One provider call per invocation, no retry.
func (s *RouteService) CalculateRoute(ctx context.Context, fromCoords, toCoords []float64) (*models.RouteResponse, error) {
	if len(fromCoords) < 2 || len(toCoords) < 2 {
		return nil, fmt.Errorf("service: coordinates must be [longitude, latitude] pairs")
	}

	body := orsRequest{
		Coordinates:  [][]float64{fromCoords, toCoords},
		Instructions: true,
		Preference:   "fastest",
		Units:        "km",
		Language:     "en",
		Geometry:     true,
		Elevation:    true,
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("service: marshal provider request: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, orsTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, s.baseURL+directionsPath, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("service: create provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("service: provider call: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("service: read provider response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("service: failed to calculate route: %s", resp.Status)
	}

	var data orsResponse
	if err := json.Unmarshal(respBytes, &data); err != nil {
		return nil, fmt.Errorf("service: unmarshal provider response: %w", err)
	}

	if len(data.Features) == 0 {
		return nil, ErrNoRouteFound
	}

	route := data.Features[0]
	if len(route.Properties.Segments) == 0 {
		return nil, ErrNoRouteSegments
	}

	coordinates := make([]models.Position, len(route.Geometry.Coordinates))
	for i, c := range route.Geometry.Coordinates {
		coordinates[i] = models.Position(c)
	}
	geometry := models.RouteGeometry{
		Type:        "LineString",
		Coordinates: coordinates,
	}

	// The text/instruction cross-wiring is the established wire contract:
	// text carries the provider's instruction, instruction the road name.
	steps := route.Properties.Segments[0].Steps
	instructions := make([]models.RouteInstruction, len(steps))
	for i, step := range steps {
		instructions[i] = models.RouteInstruction{
			Text:        step.Instruction,
			Distance:    step.Distance,
			Time:        step.Duration,
			Instruction: step.Name,
		}
	}

	return &models.RouteResponse{
		Geometry: geometry,
		RouteInfo: models.RouteInfo{
			Distance:     route.Properties.Summary.Distance,
			Duration:     route.Properties.Summary.Duration,
			Geometry:     geometry,
			Instructions: instructions,
		},
	}, nil
}

// --- JSON types for the routing provider ---

type orsRequest struct {
	Coordinates  [][]float64 `json:"coordinates"`
	Instructions bool        `json:"instructions"`
	Preference   string      `json:"preference"`
	Units        string      `json:"units"`
	Language     string      `json:"language"`
	Geometry     bool        `json:"geometry"`
	Elevation    bool        `json:"elevation"`
}

type orsResponse struct {
	Features []orsFeature `json:"features"`
}

type orsFeature struct {
	Geometry   orsGeometry   `json:"geometry"`
	Properties orsProperties `json:"properties"`
}

type orsGeometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

type orsProperties struct {
	Segments []orsSegment `json:"segments"`
	Summary  orsSummary   `json:"summary"`
}

type orsSegment struct {
	Distance float64   `json:"distance"`
	Duration float64   `json:"duration"`
	Steps    []orsStep `json:"steps"`
}

type orsStep struct {
	Distance    float64 `json:"distance"`
	Duration    float64 `json:"duration"`
	Instruction string  `json:"instruction"`
	Name        string  `json:"name"`
}

type orsSummary struct {
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
}
