package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheKazutoPe/MONITOREO-GPS/internal/ingest"
	"github.com/TheKazutoPe/MONITOREO-GPS/internal/metrics"
	"github.com/TheKazutoPe/MONITOREO-GPS/internal/telegram"
)

const noLocationMessage = "Sin ubicación"

// Ingestor processes one inbound update.
type Ingestor interface {
	Process(ctx context.Context, update telegram.Update) (ingest.Outcome, error)
}

type WebhookHandler struct {
	ingestor Ingestor
}

func NewWebhookHandler(ingestor Ingestor) *WebhookHandler {
	return &WebhookHandler{ingestor: ingestor}
}

// Handle receives a Telegram update. It always answers: a malformed or
// locationless body is acknowledged as "no location", a processing
// failure is acknowledged with an error payload. Repeated hard failures
// would make Telegram disable the webhook.
func (h *WebhookHandler) Handle(c *gin.Context) {
	var update telegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		metrics.UpdatesReceivedTotal.WithLabelValues("no_location").Inc()
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": noLocationMessage})
		return
	}

	outcome, err := h.ingestor.Process(c.Request.Context(), update)
	if err != nil {
		log.Printf("webhook: ingest failed for device %s: %v", update.DeviceID(), err)
		metrics.UpdatesReceivedTotal.WithLabelValues("failed").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	switch outcome {
	case ingest.OutcomeStored:
		metrics.UpdatesReceivedTotal.WithLabelValues("stored").Inc()
		c.JSON(http.StatusOK, gin.H{"ok": true})
	default:
		metrics.UpdatesReceivedTotal.WithLabelValues("no_location").Inc()
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": noLocationMessage})
	}
}
