// internal/handlers/offer_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/model"
	"go_5_challenge_hub/internal/service"
	"go_5_challenge_hub/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type OfferHandler struct {
	service service.OfferService
	logger  *slog.Logger
}

func NewOfferHandler(s service.OfferService, logger *slog.Logger) *OfferHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OfferHandler{
		service: s,
		logger:  logger,
	}
}

func (h *OfferHandler) PostOffer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostOffer"))

	identity, err := middleware.GetIdentity(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	var req model.CreateOfferRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput))
		return
	}
	if err := validateRequest(req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	offer, err := h.service.CreateOffer(r.Context(), identity, &req)
	if err != nil {
		logger.Error("Error creating offer in service", slog.String("code", req.Code), slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Offer created successfully", slog.String("offer_id", offer.OfferID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, offer)
}

func (h *OfferHandler) GetChallengeOffers(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetChallengeOffers"))

	identity, err := middleware.GetIdentity(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	challengeID, err := uuid.Parse(chi.URLParam(r, "challengeID"))
	if err != nil {
		webutil.HandleError(w, model.NewAppError("INVALID_ID", "The challenge id is not a valid UUID.", "challenge_id", model.ErrInvalidInput))
		return
	}

	offers, err := h.service.ListOffers(r.Context(), identity, challengeID)
	if err != nil {
		logger.Error("Error listing offers in service", slog.String("challenge_id", challengeID.String()), slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, offers)
}

func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteOffer"))

	identity, err := middleware.GetIdentity(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	offerID, err := uuid.Parse(chi.URLParam(r, "offerID"))
	if err != nil {
		webutil.HandleError(w, model.NewAppError("INVALID_ID", "The offer id is not a valid UUID.", "offer_id", model.ErrInvalidInput))
		return
	}

	if err := h.service.DeleteOffer(r.Context(), identity, offerID); err != nil {
		logger.Error("Error deleting offer in service", slog.String("offer_id", offerID.String()), slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type redeemOfferRequest struct {
	Code string `json:"code" validate:"required,min=3,max=50"`
}

func (h *OfferHandler) PostRedeem(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostRedeem"))

	identity, err := middleware.GetIdentity(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	var req redeemOfferRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput))
		return
	}
	if err := validateRequest(req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	offer, err := h.service.RedeemOffer(r.Context(), identity, req.Code)
	if err != nil {
		logger.Warn("Error redeeming offer in service", slog.String("code", req.Code), slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, offer)
}
