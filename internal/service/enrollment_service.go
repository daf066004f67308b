//go:generate mockery --name EnrollmentService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/model"
	"go_5_challenge_hub/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentService interface {
	Enroll(ctx context.Context, identity *model.IdentityContext, challengeID uuid.UUID) (*model.Enrollment, error)
	ListMyEnrollments(ctx context.Context, identity *model.IdentityContext) ([]*model.Enrollment, error)
	ListByChallenge(ctx context.Context, identity *model.IdentityContext, challengeID uuid.UUID) ([]*model.Enrollment, error)
	CheckIn(ctx context.Context, identity *model.IdentityContext, enrollmentID uuid.UUID, req *model.CheckinRequest) (*model.Checkin, error)
	ListCheckins(ctx context.Context, identity *model.IdentityContext, enrollmentID uuid.UUID) ([]*model.Checkin, error)
}

type enrollmentService struct {
	db             *gorm.DB
	challengeRepo  repository.ChallengeRepository
	enrollmentRepo repository.EnrollmentRepository
	notifier       NotificationService
}

func NewEnrollmentService(db *gorm.DB, challengeRepo repository.ChallengeRepository, enrollmentRepo repository.EnrollmentRepository, notifier NotificationService) EnrollmentService {
	return &enrollmentService{
		db:             db,
		challengeRepo:  challengeRepo,
		enrollmentRepo: enrollmentRepo,
		notifier:       notifier,
	}
}

// Enroll joins the caller to a challenge. Free challenges activate
// immediately; paid ones enroll as pending_payment and are activated by the
// payment webhook once the entry fee settles.
func (s *enrollmentService) Enroll(ctx context.Context, identity *model.IdentityContext, challengeID uuid.UUID) (*model.Enrollment, error) {
	logger := middleware.GetLogger(ctx)

	challenge, err := s.challengeRepo.FindByID(ctx, s.db, identity.TenantID, identity.WhopCompanyID, challengeID)
	if err != nil {
		return nil, err
	}
	if challenge.Status != model.ChallengeActive {
		return nil, model.NewAppError(
			"CHALLENGE_NOT_ACTIVE",
			"The challenge is not open for enrollment.",
			"",
			model.ErrInvalidInput,
		)
	}

	status := model.EnrollmentActive
	if challenge.EntryFeeCents > 0 {
		status = model.EnrollmentPendingPayment
	}

	enrollment := &model.Enrollment{
		EnrollmentID: uuid.New(),
		TenantID:     identity.TenantID,
		ChallengeID:  challengeID,
		UserID:       identity.UserID,
		Status:       status,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if challenge.MaxParticipants > 0 {
			count, err := s.enrollmentRepo.CountByChallenge(ctx, tx, identity.TenantID, challengeID)
			if err != nil {
				return err
			}
			if count >= int64(challenge.MaxParticipants) {
				return model.NewAppError(
					"CHALLENGE_FULL",
					"The challenge has reached its participant limit.",
					"",
					model.ErrConflict,
				)
			}
		}
		// The unique (challenge, user) index turns a duplicate join into
		// ErrConflict here.
		return s.enrollmentRepo.Create(ctx, tx, enrollment)
	})
	if err != nil {
		var appErr *model.AppError
		if errors.Is(err, model.ErrConflict) || errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Transaction failed for Enroll", "challenge_id", challengeID.String(), "error", err)
		return nil, model.ErrInternalServer
	}

	if status == model.EnrollmentActive {
		s.notifier.NotifyEnrollment(ctx, identity.TenantID, identity.WhopUserID, challenge.Title)
	}
	return enrollment, nil
}

func (s *enrollmentService) ListMyEnrollments(ctx context.Context, identity *model.IdentityContext) ([]*model.Enrollment, error) {
	return s.enrollmentRepo.FindByUser(ctx, s.db, identity.TenantID, identity.UserID)
}

func (s *enrollmentService) ListByChallenge(ctx context.Context, identity *model.IdentityContext, challengeID uuid.UUID) ([]*model.Enrollment, error) {
	// Scope check: the challenge itself must be visible to the caller.
	if _, err := s.challengeRepo.FindByID(ctx, s.db, identity.TenantID, identity.WhopCompanyID, challengeID); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.FindByChallenge(ctx, s.db, identity.TenantID, challengeID)
}

// CheckIn records one progress entry, with an optional proof, on the
// caller's own active enrollment.
func (s *enrollmentService) CheckIn(ctx context.Context, identity *model.IdentityContext, enrollmentID uuid.UUID, req *model.CheckinRequest) (*model.Checkin, error) {
	logger := middleware.GetLogger(ctx)

	enrollment, err := s.enrollmentRepo.FindByID(ctx, s.db, identity.TenantID, enrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment.UserID != identity.UserID {
		return nil, model.ErrForbidden
	}
	if enrollment.Status != model.EnrollmentActive && enrollment.Status != model.EnrollmentWinner {
		return nil, model.NewAppError(
			"ENROLLMENT_NOT_ACTIVE",
			"Check-ins require an active enrollment.",
			"",
			model.ErrInvalidInput,
		)
	}
	if req.ProofContent != "" && req.ProofKind == "" {
		return nil, model.NewAppError(
			"PROOF_KIND_REQUIRED",
			"A proof needs a kind.",
			"proof_kind",
			model.ErrInvalidInput,
		)
	}

	checkin := &model.Checkin{
		CheckinID:    uuid.New(),
		TenantID:     identity.TenantID,
		EnrollmentID: enrollmentID,
		Note:         req.Note,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.enrollmentRepo.CreateCheckin(ctx, tx, checkin); err != nil {
			return err
		}
		if req.ProofContent != "" {
			proof := &model.Proof{
				ProofID:   uuid.New(),
				TenantID:  identity.TenantID,
				CheckinID: checkin.CheckinID,
				Kind:      req.ProofKind,
				Content:   req.ProofContent,
			}
			if err := s.enrollmentRepo.CreateProof(ctx, tx, proof); err != nil {
				return err
			}
			checkin.Proof = proof
		}
		return nil
	})
	if err != nil {
		logger.Error("Transaction failed for CheckIn", "enrollment_id", enrollmentID.String(), "error", err)
		return nil, model.ErrInternalServer
	}

	return checkin, nil
}

func (s *enrollmentService) ListCheckins(ctx context.Context, identity *model.IdentityContext, enrollmentID uuid.UUID) ([]*model.Checkin, error) {
	enrollment, err := s.enrollmentRepo.FindByID(ctx, s.db, identity.TenantID, enrollmentID)
	if err != nil {
		return nil, err
	}
	// Members see their own check-ins, admins see everyone's.
	if enrollment.UserID != identity.UserID && !identity.IsAdmin() {
		return nil, model.ErrForbidden
	}
	return s.enrollmentRepo.FindCheckins(ctx, s.db, identity.TenantID, enrollmentID)
}
