package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheKazutoPe/MONITOREO-GPS/internal/models"
)

// Snapshotter computes the current per-device freshness view.
type Snapshotter interface {
	Snapshot(ctx context.Context) ([]models.FreshnessView, error)
}

type LocationsHandler struct {
	aggregator Snapshotter
}

func NewLocationsHandler(aggregator Snapshotter) *LocationsHandler {
	return &LocationsHandler{aggregator: aggregator}
}

// Handle serves the polling endpoint: one entry per device seen in the
// trailing window. All-or-nothing; a query failure yields a 500 with no
// partial data.
func (h *LocationsHandler) Handle(c *gin.Context) {
	views, err := h.aggregator.Snapshot(c.Request.Context())
	if err != nil {
		log.Printf("locations: snapshot failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	c.JSON(http.StatusOK, views)
}
