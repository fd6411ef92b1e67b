package navclient

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"wayfinder-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CalculateRoute(t *testing.T) {
	expected := models.RouteResponse{
		Geometry: models.RouteGeometry{
			Type:        "LineString",
			Coordinates: []models.Position{{0, 0}, {1, 1}},
		},
		RouteInfo: models.RouteInfo{
			Distance: 12.5,
			Duration: 900,
			Geometry: models.RouteGeometry{
				Type:        "LineString",
				Coordinates: []models.Position{{0, 0}, {1, 1}},
			},
			Instructions: []models.RouteInstruction{
				{Text: "Turn left", Distance: 100, Time: 20, Instruction: "Main St"},
			},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/route", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req models.RouteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []float64{-79.38, 43.64}, req.FromCoords)
		assert.Equal(t, []float64{-79.40, 43.65}, req.ToCoords)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(expected)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	route, err := client.CalculateRoute(context.Background(), []float64{-79.38, 43.64}, []float64{-79.40, 43.65})
	require.NoError(t, err)
	assert.Equal(t, &expected, route)
}

func TestClient_CalculateRoute_ErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "No route found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.CalculateRoute(context.Background(), []float64{0, 0}, []float64{1, 1})
	require.Error(t, err)
	assert.Equal(t, "No route found", err.Error())
}

func TestClient_CalculateRoute_ErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.CalculateRoute(context.Background(), []float64{0, 0}, []float64{1, 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502 Bad Gateway")
}

func TestClient_CalculateRoute_InvalidCoordinates(t *testing.T) {
	client := NewClient("http://api.invalid")

	tests := []struct {
		name string
		from []float64
		to   []float64
	}{
		{"nil from", nil, []float64{1, 1}},
		{"short pair", []float64{0}, []float64{1, 1}},
		{"extra element", []float64{0, 0, 0}, []float64{1, 1}},
		{"NaN", []float64{math.NaN(), 0}, []float64{1, 1}},
		{"infinity", []float64{0, 0}, []float64{math.Inf(1), 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.CalculateRoute(context.Background(), tt.from, tt.to)
			assert.Error(t, err)
		})
	}
}

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/geocode", r.URL.Path)
		assert.Equal(t, "union station", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"place_id": 9, "display_name": "Union Station", "lat": "43.6453", "lon": "-79.3806"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	results, err := client.Search(context.Background(), "union station")
	require.NoError(t, err)
	assert.Equal(t, []models.SearchResult{
		{PlaceID: 9, DisplayName: "Union Station", Lat: "43.6453", Lon: "-79.3806"},
	}, results)
}
