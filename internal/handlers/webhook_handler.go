// internal/handlers/webhook_handler.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"go_5_challenge_hub/internal/model"
	"go_5_challenge_hub/internal/service"
	"go_5_challenge_hub/internal/webutil"
)

// WebhookHandler receives platform webhook deliveries. The route is public;
// the handler trusts nothing in the payload beyond what the payment service
// re-verifies against its own rows.
type WebhookHandler struct {
	service service.PaymentService
	logger  *slog.Logger
}

func NewWebhookHandler(s service.PaymentService, logger *slog.Logger) *WebhookHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookHandler{
		service: s,
		logger:  logger,
	}
}

func (h *WebhookHandler) PostWhopWebhook(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostWhopWebhook"))

	// Webhook payloads carry plenty of fields this app does not model, so
	// unknown fields are allowed here, unlike the API request bodies.
	var payload model.PaymentWebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn("Failed to decode webhook payload", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("INVALID_REQUEST_BODY", "The webhook payload is malformed.", "", model.ErrInvalidInput))
		return
	}
	defer r.Body.Close()

	logger.Info("Webhook received", slog.String("action", payload.Action), slog.String("charge_id", payload.Data.ID))

	if err := h.service.HandlePaymentSucceeded(r.Context(), &payload); err != nil {
		// Non-2xx makes the platform redeliver; only true processing errors
		// should end up here.
		logger.Error("Error handling webhook in service", slog.String("charge_id", payload.Data.ID), slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
