package handler

import (
	"context"
	"net/http"

	"wayfinder-api/internal/models"

	"github.com/gin-gonic/gin"
)

// PreferenceHandler handles user-preference requests
type PreferenceHandler struct {
	service PreferenceService
}

// Service interface for dependency injection
type PreferenceService interface {
	Get(ctx context.Context) (models.Preferences, error)
	SetMarker(ctx context.Context, name string, config models.MarkerConfig) error
	RemoveMarker(ctx context.Context, name string) error
	SetFlags(ctx context.Context, flags models.PreferenceFlags) error
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(svc PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{service: svc}
}

// Get handles GET /api/preferences requests
//
//	@Summary	Fetch overlay definitions and assistant flags
//	@Produce	json
//	@Success	200	{object}	models.Preferences
//	@Router		/api/preferences [get]
func (h *PreferenceHandler) Get(c *gin.Context) {
	prefs, err := h.service.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// SetMarker handles PUT /api/preferences/markers/:name requests
func (h *PreferenceHandler) SetMarker(c *gin.Context) {
	name := c.Param("name")

	var config models.MarkerConfig
	if err := c.ShouldBindJSON(&config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.SetMarker(c.Request.Context(), name, config); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveMarker handles DELETE /api/preferences/markers/:name requests
func (h *PreferenceHandler) RemoveMarker(c *gin.Context) {
	if err := h.service.RemoveMarker(c.Request.Context(), c.Param("name")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// SetFlags handles PUT /api/preferences/flags requests
func (h *PreferenceHandler) SetFlags(c *gin.Context) {
	var flags models.PreferenceFlags
	if err := c.ShouldBindJSON(&flags); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.SetFlags(c.Request.Context(), flags); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
