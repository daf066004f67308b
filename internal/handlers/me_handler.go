// internal/handlers/me_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/model"
	"go_5_challenge_hub/internal/service"
	"go_5_challenge_hub/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// MeHandler serves the read surface: the caller's resolved identity, the
// tenant notification feed and the admin analytics summary.
type MeHandler struct {
	analytics     service.AnalyticsService
	notifications service.NotificationService
	logger        *slog.Logger
}

func NewMeHandler(analytics service.AnalyticsService, notifications service.NotificationService, logger *slog.Logger) *MeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MeHandler{
		analytics:     analytics,
		notifications: notifications,
		logger:        logger,
	}
}

func (h *MeHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	identity, err := middleware.GetIdentity(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, identity)
}

func (h *MeHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAnalytics"))

	identity, err := middleware.GetIdentity(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	summary, err := h.analytics.Summary(r.Context(), identity)
	if err != nil {
		logger.Error("Error building analytics summary in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, summary)
}

func (h *MeHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetNotifications"))

	identity, err := middleware.GetIdentity(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	notifications, err := h.notifications.List(r.Context(), identity.TenantID, limit)
	if err != nil {
		logger.Error("Error listing notifications in service", slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, notifications)
}

func (h *MeHandler) PostNotificationRead(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostNotificationRead"))

	identity, err := middleware.GetIdentity(r.Context())
	if err != nil {
		webutil.HandleError(w, err)
		return
	}
	notificationID, err := uuid.Parse(chi.URLParam(r, "notificationID"))
	if err != nil {
		webutil.HandleError(w, model.NewAppError("INVALID_ID", "The notification id is not a valid UUID.", "notification_id", model.ErrInvalidInput))
		return
	}

	if err := h.notifications.MarkRead(r.Context(), identity.TenantID, notificationID); err != nil {
		logger.Warn("Error marking notification read in service", slog.String("notification_id", notificationID.String()), slog.Any("error", err))
		webutil.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
