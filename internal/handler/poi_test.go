package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wayfinder-api/internal/models"
	"wayfinder-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPOIService is a mock implementation of the POIService interface
type MockPOIService struct {
	mock.Mock
}

func (m *MockPOIService) Query(ctx context.Context, filter string, box service.BoundingBox) (*models.POIResult, error) {
	args := m.Called(ctx, filter, box)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.POIResult), args.Error(1)
}

func TestPOIHandler_Query(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		rawQuery       string
		mockResult     *models.POIResult
		mockError      error
		expectCall     bool
		expectedStatus int
	}{
		{
			name:           "missing filter",
			rawQuery:       "south=1&west=2&north=3&east=4",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing bound",
			rawQuery:       "filter=wheelchair%3Dyes&south=1&west=2&north=3",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non-numeric bound",
			rawQuery:       "filter=wheelchair%3Dyes&south=x&west=2&north=3&east=4",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:     "successful query",
			rawQuery: "filter=wheelchair%3Dyes&south=43.5&west=-79.5&north=43.7&east=-79.2",
			mockResult: &models.POIResult{Elements: []models.POIElement{
				{ID: 7, Lat: 43.6, Lon: -79.3},
			}},
			expectCall:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "service error",
			rawQuery:       "filter=wheelchair%3Dyes&south=43.5&west=-79.5&north=43.7&east=-79.2",
			mockError:      assert.AnError,
			expectCall:     true,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockPOIService)
			handler := NewPOIHandler(mockSvc)

			if tt.expectCall {
				mockSvc.On("Query", mock.Anything, "wheelchair=yes", service.BoundingBox{
					South: 43.5, West: -79.5, North: 43.7, East: -79.2,
				}).Return(tt.mockResult, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/poi?"+tt.rawQuery, nil)
			w := httptest.NewRecorder()

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.Query(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var result models.POIResult
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
				assert.Equal(t, *tt.mockResult, result)
			}
			mockSvc.AssertExpectations(t)
			if !tt.expectCall {
				mockSvc.AssertNotCalled(t, "Query", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
