package handler

import (
	"context"
	"net/http"
	"strconv"

	"wayfinder-api/internal/models"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles marked-location requests
type LocationHandler struct {
	service LocationService
}

// Service interface for dependency injection
type LocationService interface {
	Save(ctx context.Context, loc models.MarkedLocation) (models.MarkedLocation, error)
	List(ctx context.Context) ([]models.MarkedLocation, error)
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{service: svc}
}

// Save handles POST /api/locations requests
//
//	@Summary	Save a marked location
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.MarkedLocation	true	"location to save"
//	@Success	201		{object}	models.MarkedLocation
//	@Failure	400		{object}	map[string]string
//	@Router		/api/locations [post]
func (h *LocationHandler) Save(c *gin.Context) {
	var loc models.MarkedLocation
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	saved, err := h.service.Save(c.Request.Context(), loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// List handles GET /api/locations requests
func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if locations == nil {
		locations = []models.MarkedLocation{}
	}

	c.JSON(http.StatusOK, locations)
}

// Delete handles DELETE /api/locations/:id requests
func (h *LocationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// Clear handles DELETE /api/locations requests
func (h *LocationHandler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
