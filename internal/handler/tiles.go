package handler

import (
	"context"
	"net/http"

	"wayfinder-api/internal/offline"

	"github.com/gin-gonic/gin"
)

// TileHandler serves the app shell and map tiles through the offline cache
// manager, so both resource classes get its fetch policy.
type TileHandler struct {
	fetcher     OfflineFetcher
	tileBaseURL string
}

// Fetcher interface for dependency injection
type OfflineFetcher interface {
	Fetch(ctx context.Context, req *http.Request) (offline.Entry, error)
}

// NewTileHandler creates a new tile handler proxying the tile provider at
// tileBaseURL.
func NewTileHandler(fetcher OfflineFetcher, tileBaseURL string) *TileHandler {
	return &TileHandler{fetcher: fetcher, tileBaseURL: tileBaseURL}
}

// Tile handles GET /tiles/*path requests
func (h *TileHandler) Tile(c *gin.Context) {
	upstream := h.tileBaseURL + c.Param("path")

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, upstream, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tile path"})
		return
	}

	entry, err := h.fetcher.Fetch(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "tile fetch failed"})
		return
	}

	c.Data(entry.StatusCode, entry.Header.Get("Content-Type"), entry.Body)
}

// Shell handles GET / requests: the navigation document, network-first with
// cached fallback.
func (h *TileHandler) Shell(c *gin.Context) {
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, "/", nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	req.Header.Set("Sec-Fetch-Mode", "navigate")

	entry, err := h.fetcher.Fetch(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "app shell unavailable"})
		return
	}

	c.Data(entry.StatusCode, entry.Header.Get("Content-Type"), entry.Body)
}
