package handler

import (
	"context"
	"net/http"
	"strconv"

	"wayfinder-api/internal/models"

	"github.com/gin-gonic/gin"
)

// ReverseGeocodeHandler handles reverse geocoding requests
type ReverseGeocodeHandler struct {
	service ReverseGeoCodeService
}

// Service interface for dependency injection
type ReverseGeoCodeService interface {
	ReverseGeocode(context.Context, float64, float64) (*models.ReverseResult, error)
}

// NewReverseGeocodeHandler creates a new reverse geocode handler
func NewReverseGeocodeHandler(svc ReverseGeoCodeService) *ReverseGeocodeHandler {
	return &ReverseGeocodeHandler{service: svc}
}

// ReverseGeocode handles GET /api/reverse-geocode requests
//
//	@Summary	Resolve the display name nearest to a coordinate
//	@Produce	json
//	@Param		lat	query		number	true	"latitude"
//	@Param		lon	query		number	true	"longitude"
//	@Success	200	{object}	models.ReverseResult
//	@Failure	400	{object}	map[string]string
//	@Router		/api/reverse-geocode [get]
func (h *ReverseGeocodeHandler) ReverseGeocode(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lat' and 'lon'"})
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return
	}

	result, err := h.service.ReverseGeocode(c.Request.Context(), lat, lon)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no address found near the specified coordinates"})
		return
	}

	c.JSON(http.StatusOK, result)
}
