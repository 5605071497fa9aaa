package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// WebhookRegistrar registers a webhook URL with the messaging provider
// and returns the provider's raw JSON response.
type WebhookRegistrar interface {
	SetWebhook(ctx context.Context, webhookURL string) ([]byte, error)
}

type RegisterHandler struct {
	registrar WebhookRegistrar
	publicURL string
}

func NewRegisterHandler(registrar WebhookRegistrar, publicURL string) *RegisterHandler {
	return &RegisterHandler{
		registrar: registrar,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Handle registers this service's ingestion endpoint with Telegram and
// passes the provider's response through untouched.
func (h *RegisterHandler) Handle(c *gin.Context) {
	webhookURL := h.publicURL + "/webhook/telegram"

	body, err := h.registrar.SetWebhook(c.Request.Context(), webhookURL)
	if err != nil {
		log.Printf("register: setWebhook failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error()})
		return
	}

	log.Printf("register: webhook set to %s", webhookURL)
	c.Data(http.StatusOK, "application/json", body)
}
