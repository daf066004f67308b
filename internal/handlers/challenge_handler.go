// internal/handlers/challenge_handler.go
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

type ChallengeHandler struct {
	service service.ChallengeService
	logger  *slog.Logger
}

func NewChallengeHandler(s service.ChallengeService, logger *slog.Logger) *ChallengeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChallengeHandler{
		service: s,
		logger:  logger,
	}
}

func (h *ChallengeHandler) PostChallenge(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostChallenge"))

	identity, err := middleware.GetIdentity(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	logger = logger.With(slog.String("tenant_id", identity.TenantID.String()))

	var req model.CreateChallengeRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput))
		return
	}
	if err := validateRequest(req); err != nil {
		logger.Warn("Validation failed", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	challenge, err := h.service.CreateChallenge(r.Context(), identity, &req)
	if err != nil {
		logger.Error("Error creating challenge in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Challenge created successfully", slog.String("challenge_id", challenge.ChallengeID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, challenge)
}

func (h *ChallengeHandler) GetChallenges(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetChallenges"))

	identity, err := middleware.GetIdentity(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	challenges, err := h.service.ListChallenges(r.Context(), identity)
	if err != nil {
		logger.Error("Error listing challenges in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, challenges)
}

func (h *ChallengeHandler) GetChallenge(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetChallenge"))

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

	challenge, err := h.service.GetChallenge(r.Context(), identity, challengeID)
	if err != nil {
		logger.Warn("Error getting challenge in service", slog.String("challenge_id", challengeID.String()), slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, challenge)
}

func (h *ChallengeHandler) PatchChallenge(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PatchChallenge"))

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

	var req model.UpdateChallengeRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput))
		return
	}
	if err := validateRequest(req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	challenge, err := h.service.UpdateChallenge(r.Context(), identity, challengeID, &req)
	if err != nil {
		logger.Error("Error updating challenge in service", slog.String("challenge_id", challengeID.String()), slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, challenge)
}

func (h *ChallengeHandler) DeleteChallenge(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteChallenge"))

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

	if err := h.service.DeleteChallenge(r.Context(), identity, challengeID); err != nil {
		logger.Error("Error deleting challenge in service", slog.String("challenge_id", challengeID.String()), slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChallengeHandler) PostWinners(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostWinners"))

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

	var req model.SelectWinnersRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput))
		return
	}
	if err := validateRequest(req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	if err := h.service.SelectWinners(r.Context(), identity, challengeID, &req); err != nil {
		logger.Error("Error selecting winners in service", slog.String("challenge_id", challengeID.String()), slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Winners selected successfully", slog.String("challenge_id", challengeID.String()))
	w.WriteHeader(http.StatusNoContent)
}
