// internal/handlers/enrollment_handler_test.go
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

func TestEnrollmentHandler_PostEnrollment(t *testing.T) {
	tenantID := uuid.New()
	member := memberIdentity(tenantID)
	guest := guestIdentity(tenantID)
	challengeID := uuid.New()

	newRouter := func(identity *model.IdentityContext, svc *mocks.EnrollmentService) *chi.Mux {
		handler := handlers.NewEnrollmentHandler(svc, nil)
		router := chi.NewRouter()
		router.Use(withIdentity(identity))
		router.Group(func(r chi.Router) {
			r.Use(middleware.RequireParticipant)
			r.Post("/api/v1/challenges/{challengeID}/enrollments", handler.PostEnrollment)
		})
		return router
	}

	t.Run("member joins an active challenge", func(t *testing.T) {
		svc := new(mocks.EnrollmentService)
		svc.On("Enroll", mock.Anything, member, challengeID).
			Return(&model.Enrollment{
				EnrollmentID: uuid.New(),
				TenantID:     tenantID,
				ChallengeID:  challengeID,
				UserID:       member.UserID,
				Status:       model.EnrollmentActive,
			}, nil).Once()

		req := createRequest(t, http.MethodPost, "/api/v1/challenges/"+challengeID.String()+"/enrollments", nil)
		rr := httptest.NewRecorder()
		newRouter(member, svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var got model.Enrollment
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, model.EnrollmentActive, got.Status)
		svc.AssertExpectations(t)
	})

	t.Run("guest is rejected by the participant gate", func(t *testing.T) {
		svc := new(mocks.EnrollmentService)

		req := createRequest(t, http.MethodPost, "/api/v1/challenges/"+challengeID.String()+"/enrollments", nil)
		rr := httptest.NewRecorder()
		newRouter(guest, svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		errResp := decodeErrorResponse(t, rr.Body.Bytes())
		assert.Equal(t, "MEMBERSHIP_REQUIRED", errResp.Error.Code)
		svc.AssertExpectations(t)
	})

	t.Run("duplicate join surfaces as conflict", func(t *testing.T) {
		svc := new(mocks.EnrollmentService)
		svc.On("Enroll", mock.Anything, member, challengeID).
			Return(nil, model.ErrConflict).Once()

		req := createRequest(t, http.MethodPost, "/api/v1/challenges/"+challengeID.String()+"/enrollments", nil)
		rr := httptest.NewRecorder()
		newRouter(member, svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		svc.AssertExpectations(t)
	})
}

func TestEnrollmentHandler_PostCheckin(t *testing.T) {
	tenantID := uuid.New()
	member := memberIdentity(tenantID)
	enrollmentID := uuid.New()

	newRouter := func(svc *mocks.EnrollmentService) *chi.Mux {
		handler := handlers.NewEnrollmentHandler(svc, nil)
		router := chi.NewRouter()
		router.Use(withIdentity(member))
		router.Post("/api/v1/enrollments/{enrollmentID}/checkins", handler.PostCheckin)
		return router
	}

	t.Run("check-in recorded", func(t *testing.T) {
		svc := new(mocks.EnrollmentService)
		svc.On("CheckIn", mock.Anything, member, enrollmentID, mock.AnythingOfType("*model.CheckinRequest")).
			Return(&model.Checkin{CheckinID: uuid.New(), EnrollmentID: enrollmentID, Note: "day 1"}, nil).Once()

		req := createRequest(t, http.MethodPost, "/api/v1/enrollments/"+enrollmentID.String()+"/checkins",
			model.CheckinRequest{Note: "day 1"})
		rr := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		svc.AssertExpectations(t)
	})

	t.Run("invalid proof kind fails validation", func(t *testing.T) {
		svc := new(mocks.EnrollmentService)

		req := createRequest(t, http.MethodPost, "/api/v1/enrollments/"+enrollmentID.String()+"/checkins",
			model.CheckinRequest{Note: "day 1", ProofKind: "carrier_pigeon", ProofContent: "coo"})
		rr := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertExpectations(t)
	})

	t.Run("someone else's enrollment is forbidden", func(t *testing.T) {
		svc := new(mocks.EnrollmentService)
		svc.On("CheckIn", mock.Anything, member, enrollmentID, mock.AnythingOfType("*model.CheckinRequest")).
			Return(nil, model.ErrForbidden).Once()

		req := createRequest(t, http.MethodPost, "/api/v1/enrollments/"+enrollmentID.String()+"/checkins",
			model.CheckinRequest{Note: "day 1"})
		rr := httptest.NewRecorder()
		newRouter(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		svc.AssertExpectations(t)
	})
}

func TestEnrollmentHandler_GetMyEnrollments(t *testing.T) {
	tenantID := uuid.New()
	member := memberIdentity(tenantID)

	svc := new(mocks.EnrollmentService)
	svc.On("ListMyEnrollments", mock.Anything, member).
		Return([]*model.Enrollment{
			{EnrollmentID: uuid.New(), TenantID: tenantID, UserID: member.UserID, Status: model.EnrollmentActive},
		}, nil).Once()

	handler := handlers.NewEnrollmentHandler(svc, nil)
	router := chi.NewRouter()
	router.Use(withIdentity(member))
	router.Get("/api/v1/me/enrollments", handler.GetMyEnrollments)

	req := createRequest(t, http.MethodGet, "/api/v1/me/enrollments", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var got []model.Enrollment
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 1)
	svc.AssertExpectations(t)
}
