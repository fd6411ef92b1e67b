package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wayfinder-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockLocationService is a mock implementation of the LocationService
// interface
type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) Save(ctx context.Context, loc models.MarkedLocation) (models.MarkedLocation, error) {
	args := m.Called(ctx, loc)
	return args.Get(0).(models.MarkedLocation), args.Error(1)
}

func (m *MockLocationService) List(ctx context.Context) ([]models.MarkedLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MarkedLocation), args.Error(1)
}

func (m *MockLocationService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLocationService) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestLocationHandler_Save(t *testing.T) {
	gin.SetMode(gin.TestMode)

	loc := models.MarkedLocation{Address: "Union Station, Toronto", Latitude: 43.6453, Longitude: -79.3806}
	saved := loc
	saved.ID = 1

	mockSvc := new(MockLocationService)
	mockSvc.On("Save", mock.Anything, loc).Return(saved, nil)
	handler := NewLocationHandler(mockSvc)

	body, _ := json.Marshal(loc)
	req := httptest.NewRequest(http.MethodPost, "/api/locations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.Save(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var got models.MarkedLocation
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, saved, got)
	mockSvc.AssertExpectations(t)
}

func TestLocationHandler_List_EmptyIsArray(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockLocationService)
	mockSvc.On("List", mock.Anything).Return(nil, nil)
	handler := NewLocationHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/locations", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestLocationHandler_Delete_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockLocationService)
	handler := NewLocationHandler(mockSvc)

	req := httptest.NewRequest(http.MethodDelete, "/api/locations/abc", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestLocationHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockLocationService)
	mockSvc.On("Delete", mock.Anything, int64(3)).Return(nil)
	handler := NewLocationHandler(mockSvc)

	req := httptest.NewRequest(http.MethodDelete, "/api/locations/3", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "3"}}

	handler.Delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockSvc.AssertExpectations(t)
}
