package handler

import (
	"context"
	"net/http"

	"wayfinder-api/internal/models"

	"github.com/gin-gonic/gin"
)

// RouteHandler handles route computation requests
type RouteHandler struct {
	service RouteService
}

// Service interface for dependency injection
type RouteService interface {
	CalculateRoute(ctx context.Context, fromCoords, toCoords []float64) (*models.RouteResponse, error)
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(svc RouteService) *RouteHandler {
	return &RouteHandler{service: svc}
}

// CalculateRoute handles POST /api/route requests
//
//	@Summary	Compute a driving route between two coordinates
//	@Accept		json
//	@Produce	json
//	@Param		request	body		models.RouteRequest	true	"from/to coordinate pairs, [lon, lat]"
//	@Success	200		{object}	models.RouteResponse
//	@Failure	400		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/route [post]
func (h *RouteHandler) CalculateRoute(c *gin.Context) {
	var req models.RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.FromCoords == nil || req.ToCoords == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing coordinates"})
		return
	}

	route, err := h.service.CalculateRoute(c.Request.Context(), req.FromCoords, req.ToCoords)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, route)
}
