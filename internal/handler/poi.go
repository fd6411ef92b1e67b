package handler

import (
	"context"
	"net/http"
	"strconv"

	"wayfinder-api/internal/models"
	"wayfinder-api/internal/service"

	"github.com/gin-gonic/gin"
)

// POIHandler handles points-of-interest queries
type POIHandler struct {
	service POIService
}

// Service interface for dependency injection
type POIService interface {
	Query(ctx context.Context, filter string, box service.BoundingBox) (*models.POIResult, error)
}

// NewPOIHandler creates a new points-of-interest handler
func NewPOIHandler(svc POIService) *POIHandler {
	return &POIHandler{service: svc}
}

// Query handles GET /api/poi requests
//
//	@Summary	Query points of interest by tag filter within a bounding box
//	@Produce	json
//	@Param		filter	query		string	true	"tag filter, e.g. wheelchair=yes"
//	@Param		south	query		number	true	"south bound"
//	@Param		west	query		number	true	"west bound"
//	@Param		north	query		number	true	"north bound"
//	@Param		east	query		number	true	"east bound"
//	@Success	200		{object}	models.POIResult
//	@Failure	400		{object}	map[string]string
//	@Router		/api/poi [get]
func (h *POIHandler) Query(c *gin.Context) {
	filter := c.Query("filter")
	if filter == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'filter'"})
		return
	}

	var box service.BoundingBox
	bounds := []struct {
		name string
		dst  *float64
	}{
		{"south", &box.South},
		{"west", &box.West},
		{"north", &box.North},
		{"east", &box.East},
	}
	for _, b := range bounds {
		raw := c.Query(b.name)
		if raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter '" + b.name + "'"})
			return
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid value for '" + b.name + "'"})
			return
		}
		*b.dst = v
	}

	result, err := h.service.Query(c.Request.Context(), filter, box)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}
