// internal/handlers/me_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_challenge_hub/internal/handlers"
	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/model"
	"go_5_challenge_hub/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMeHandler_GetMe(t *testing.T) {
	tenantID := uuid.New()
	member := memberIdentity(tenantID)

	handler := handlers.NewMeHandler(nil, nil, nil)
	router := chi.NewRouter()
	router.Use(withIdentity(member))
	router.Get("/api/v1/me", handler.GetMe)

	req := createRequest(t, http.MethodGet, "/api/v1/me", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got model.IdentityContext
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, member.WhopUserID, got.WhopUserID)
	assert.Equal(t, model.ResolvedMember, got.Role)
}

func TestMeHandler_GetAnalytics(t *testing.T) {
	tenantID := uuid.New()
	admin := adminIdentity(tenantID)
	member := memberIdentity(tenantID)

	newRouter := func(identity *model.IdentityContext, svc *mocks.AnalyticsService) *chi.Mux {
		handler := handlers.NewMeHandler(svc, nil, nil)
		router := chi.NewRouter()
		router.Use(withIdentity(identity))
		router.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/api/v1/analytics", handler.GetAnalytics)
		})
		return router
	}

	t.Run("admin gets the summary", func(t *testing.T) {
		svc := new(mocks.AnalyticsService)
		svc.On("Summary", mock.Anything, admin).
			Return(&model.TenantAnalytics{ChallengeCount: 3, RevenueCents: 1500, ReceiptCount: 2, ReceiptSumCents: 1500}, nil).Once()

		req := createRequest(t, http.MethodGet, "/api/v1/analytics", nil)
		rr := httptest.NewRecorder()
		newRouter(admin, svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var got model.TenantAnalytics
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, int64(3), got.ChallengeCount)
		assert.Equal(t, int64(1500), got.RevenueCents)
		svc.AssertExpectations(t)
	})

	t.Run("member is rejected by the admin gate", func(t *testing.T) {
		svc := new(mocks.AnalyticsService)

		req := createRequest(t, http.MethodGet, "/api/v1/analytics", nil)
		rr := httptest.NewRecorder()
		newRouter(member, svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		errResp := decodeErrorResponse(t, rr.Body.Bytes())
		assert.Equal(t, "ADMIN_REQUIRED", errResp.Error.Code)
		svc.AssertExpectations(t)
	})
}

func TestMeHandler_PostNotificationRead(t *testing.T) {
	tenantID := uuid.New()
	member := memberIdentity(tenantID)
	notificationID := uuid.New()

	newRouter := func(svc *mocks.NotificationService) *chi.Mux {
		handler := handlers.NewMeHandler(nil, svc, nil)
		router := chi.NewRouter()
		router.Use(withIdentity(member))
		router.Post("/api/v1/notifications/{notificationID}/read", handler.PostNotificationRead)
		return router
	}

	t.Run("marks the notification read", func(t *testing.T) {
		svc := new(mocks.NotificationService)
		svc.On("MarkRead", mock.Anything, tenantID, notificationID).Return(nil).Once()

		req := createRequest(t, http.MethodPost, "/api/v1/notifications/"+notificationID.String()+"/read", nil)
		rr := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		svc.AssertExpectations(t)
	})

	t.Run("malformed id is a bad request", func(t *testing.T) {
		svc := new(mocks.NotificationService)

		req := createRequest(t, http.MethodPost, "/api/v1/notifications/not-a-uuid/read", nil)
		rr := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		errResp := decodeErrorResponse(t, rr.Body.Bytes())
		assert.Equal(t, "INVALID_ID", errResp.Error.Code)
		svc.AssertExpectations(t)
	})

	t.Run("unknown notification is not found", func(t *testing.T) {
		svc := new(mocks.NotificationService)
		svc.On("MarkRead", mock.Anything, tenantID, notificationID).Return(model.ErrNotFound).Once()

		req := createRequest(t, http.MethodPost, "/api/v1/notifications/"+notificationID.String()+"/read", nil)
		rr := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		svc.AssertExpectations(t)
	})
}
