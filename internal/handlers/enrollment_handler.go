// internal/handlers/enrollment_handler.go
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

type EnrollmentHandler struct {
	service service.EnrollmentService
	logger  *slog.Logger
}

func NewEnrollmentHandler(s service.EnrollmentService, logger *slog.Logger) *EnrollmentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnrollmentHandler{
		service: s,
		logger:  logger,
	}
}

func (h *EnrollmentHandler) PostEnrollment(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostEnrollment"))

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

	enrollment, err := h.service.Enroll(r.Context(), identity, challengeID)
	if err != nil {
		logger.Warn("Error enrolling in service", slog.String("challenge_id", challengeID.String()), slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Enrollment created", slog.String("enrollment_id", enrollment.EnrollmentID.String()), slog.String("status", string(enrollment.Status)))
	webutil.RespondWithJSON(w, http.StatusCreated, enrollment)
}

func (h *EnrollmentHandler) GetChallengeEnrollments(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetChallengeEnrollments"))

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

	enrollments, err := h.service.ListByChallenge(r.Context(), identity, challengeID)
	if err != nil {
		logger.Error("Error listing enrollments in service", slog.String("challenge_id", challengeID.String()), slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, enrollments)
}

func (h *EnrollmentHandler) GetMyEnrollments(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetMyEnrollments"))

	identity, err := middleware.GetIdentity(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	enrollments, err := h.service.ListMyEnrollments(r.Context(), identity)
	if err != nil {
		logger.Error("Error listing own enrollments in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, enrollments)
}

func (h *EnrollmentHandler) PostCheckin(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostCheckin"))

	identity, err := middleware.GetIdentity(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	enrollmentID, err := uuid.Parse(chi.URLParam(r, "enrollmentID"))
	if err != nil {
		webutil.HandleError(w, model.NewAppError("INVALID_ID", "The enrollment id is not a valid UUID.", "enrollment_id", model.ErrInvalidInput))
		return
	}

	var req model.CheckinRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		webutil.HandleError(w, model.NewAppError("INVALID_REQUEST_BODY", "The request body is malformed.", "", model.ErrInvalidInput))
		return
	}
	if err := validateRequest(req); err != nil {
		webutil.HandleError(w, err)
		return
	}

	checkin, err := h.service.CheckIn(r.Context(), identity, enrollmentID, &req)
	if err != nil {
		logger.Warn("Error checking in via service", slog.String("enrollment_id", enrollmentID.String()), slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}

	logger.Info("Check-in recorded", slog.String("checkin_id", checkin.CheckinID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, checkin)
}

func (h *EnrollmentHandler) GetCheckins(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCheckins"))

	identity, err := middleware.GetIdentity(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	enrollmentID, err := uuid.Parse(chi.URLParam(r, "enrollmentID"))
	if err != nil {
		webutil.HandleError(w, model.NewAppError("INVALID_ID", "The enrollment id is not a valid UUID.", "enrollment_id", model.ErrInvalidInput))
		return
	}

	checkins, err := h.service.ListCheckins(r.Context(), identity, enrollmentID)
	if err != nil {
		logger.Warn("Error listing check-ins in service", slog.String("enrollment_id", enrollmentID.String()), slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, checkins)
}
