// internal/handlers/payment_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/model"
	"go_5_challenge_hub/internal/service"
	"go_5_challenge_hub/internal/webutil"
)

type PaymentHandler struct {
	service service.PaymentService
	logger  *slog.Logger
}

func NewPaymentHandler(s service.PaymentService, logger *slog.Logger) *PaymentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentHandler{
		service: s,
		logger:  logger,
	}
}

func (h *PaymentHandler) PostCharge(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCharge"))

	identity, err := middleware.GetIdentity(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	var req model.CreateChargeRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput))
		return
	}
	if err := validateRequest(req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	charge, err := h.service.CreateCharge(r.Context(), identity, &req)
	if err != nil {
		logger.Error("Error creating charge in service", slog.String("challenge_id", req.ChallengeID.String()), slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Charge created", slog.String("charge_id", charge.ChargeID))
	webutil.RespondWithJSON(w, http.StatusCreated, charge)
}
