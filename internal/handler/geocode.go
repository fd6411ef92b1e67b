package handler

import (
	"context"
	"net/http"

	"wayfinder-api/internal/models"

	"github.com/gin-gonic/gin"
)

// GeoCodeHandler handles geocoding requests
type GeoCodeHandler struct {
	service GeoCodeService
}

// Service interface for dependency injection
type GeoCodeService interface {
	Geocode(context.Context, string) ([]models.SearchResult, error)
}

// NewGeoCodeHandler creates a new geocode handler
func NewGeoCodeHandler(svc GeoCodeService) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc}
}

// GeoCode handles GET /api/geocode requests
//
//	@Summary	Search for places by free text
//	@Produce	json
//	@Param		q	query		string	true	"search text"
//	@Success	200	{array}		models.SearchResult
//	@Failure	400	{object}	map[string]string
//	@Router		/api/geocode [get]
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	results, err := h.service.Geocode(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, results)
}
