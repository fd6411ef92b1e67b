package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wayfinder-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleProviderResponse is a minimal provider payload: one feature, one
// segment, one step.
const sampleProviderResponse = `{
	"features": [
		{
			"geometry": {"type": "LineString", "coordinates": [[0,0],[1,1]]},
			"properties": {
				"segments": [
					{
						"distance": 100,
						"duration": 20,
						"steps": [
							{"instruction": "Turn left", "name": "Main St", "distance": 100, "duration": 20}
						]
					}
				],
				"summary": {"distance": 100, "duration": 20}
			}
		}
	]
}`

func TestRouteService_CalculateRoute_Normalization(t *testing.T) {
	var gotBody orsRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, directionsPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleProviderResponse))
	}))
	defer server.Close()

	svc := NewRouteService("test-key", server.URL)

	route, err := svc.CalculateRoute(context.Background(), []float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	// Fixed provider configuration.
	assert.Equal(t, "test-key", gotAuth)
	assert.Equal(t, [][]float64{{0, 0}, {1, 1}}, gotBody.Coordinates)
	assert.True(t, gotBody.Instructions)
	assert.Equal(t, "fastest", gotBody.Preference)
	assert.Equal(t, "km", gotBody.Units)
	assert.Equal(t, "en", gotBody.Language)
	assert.True(t, gotBody.Geometry)
	assert.True(t, gotBody.Elevation)

	// Normalized shape, including the text/instruction cross-wiring.
	expected := &models.RouteResponse{
		Geometry: models.RouteGeometry{
			Type:        "LineString",
			Coordinates: []models.Position{{0, 0}, {1, 1}},
		},
		RouteInfo: models.RouteInfo{
			Distance: 100,
			Duration: 20,
			Geometry: models.RouteGeometry{
				Type:        "LineString",
				Coordinates: []models.Position{{0, 0}, {1, 1}},
			},
			Instructions: []models.RouteInstruction{
				{Text: "Turn left", Distance: 100, Time: 20, Instruction: "Main St"},
			},
		},
	}
	assert.Equal(t, expected, route)
}

func TestRouteService_CalculateRoute_Failures(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expectedErr error
		errContains string
	}{
		{
			name:        "empty features is a failure, not an empty route",
			status:      http.StatusOK,
			body:        `{"features": []}`,
			expectedErr: ErrNoRouteFound,
		},
		{
			name:        "zero segments yields a typed error",
			status:      http.StatusOK,
			body:        `{"features": [{"geometry": {"coordinates": [[0,0],[1,1]]}, "properties": {"segments": [], "summary": {"distance": 1, "duration": 1}}}]}`,
			expectedErr: ErrNoRouteSegments,
		},
		{
			name:        "provider error embeds the status text",
			status:      http.StatusForbidden,
			body:        `{"error": {"code": 403}}`,
			errContains: "403 Forbidden",
		},
		{
			name:        "malformed provider payload",
			status:      http.StatusOK,
			body:        `{"features": "nope"}`,
			errContains: "unmarshal provider response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			svc := NewRouteService("test-key", server.URL)

			route, err := svc.CalculateRoute(context.Background(), []float64{0, 0}, []float64{1, 1})
			require.Error(t, err)
			assert.Nil(t, route)
			assert.NotEmpty(t, err.Error())
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}

func TestRouteService_CalculateRoute_InvalidCoordinates(t *testing.T) {
	svc := NewRouteService("test-key", "http://provider.invalid")

	_, err := svc.CalculateRoute(context.Background(), []float64{0}, []float64{1, 1})
	assert.Error(t, err)

	_, err = svc.CalculateRoute(context.Background(), []float64{0, 0}, nil)
	assert.Error(t, err)
}

func TestRouteService_CalculateRoute_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	svc := NewRouteService("test-key", server.URL)

	_, err := svc.CalculateRoute(context.Background(), []float64{0, 0}, []float64{1, 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider call")
}
