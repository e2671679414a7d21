package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports whether the service and its storage are up
type HealthHandler struct {
	storage string
	ping    func(ctx context.Context) error
}

// NewHealthHandler creates a new HealthHandler. ping may be nil for storage that cannot fail.
func NewHealthHandler(storage string, ping func(ctx context.Context) error) *HealthHandler {
	return &HealthHandler{storage: storage, ping: ping}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "storage": h.storage, "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": h.storage})
}
