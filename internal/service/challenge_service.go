//go:generate mockery --name ChallengeService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_5_challenge_hub/internal/config"
	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/model"
	"go_5_challenge_hub/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChallengeService interface {
	CreateChallenge(ctx context.Context, identity *model.IdentityContext, req *model.CreateChallengeRequest) (*model.Challenge, error)
	GetChallenge(ctx context.Context, identity *model.IdentityContext, challengeID uuid.UUID) (*model.Challenge, error)
	ListChallenges(ctx context.Context, identity *model.IdentityContext) ([]*model.Challenge, error)
	UpdateChallenge(ctx context.Context, identity *model.IdentityContext, challengeID uuid.UUID, req *model.UpdateChallengeRequest) (*model.Challenge, error)
	DeleteChallenge(ctx context.Context, identity *model.IdentityContext, challengeID uuid.UUID) error
	SelectWinners(ctx context.Context, identity *model.IdentityContext, challengeID uuid.UUID, req *model.SelectWinnersRequest) error
}

type challengeService struct {
	db             *gorm.DB
	challengeRepo  repository.ChallengeRepository
	enrollmentRepo repository.EnrollmentRepository
	paymentRepo    repository.PaymentRepository
	subRepo        repository.SubscriptionRepository
	userRepo       repository.UserRepository
	notifier       NotificationService
	cfg            *config.Config
}

func NewChallengeService(
	db *gorm.DB,
	challengeRepo repository.ChallengeRepository,
	enrollmentRepo repository.EnrollmentRepository,
	paymentRepo repository.PaymentRepository,
	subRepo repository.SubscriptionRepository,
	userRepo repository.UserRepository,
	notifier NotificationService,
	cfg *config.Config,
) ChallengeService {
	return &challengeService{
		db:             db,
		challengeRepo:  challengeRepo,
		enrollmentRepo: enrollmentRepo,
		paymentRepo:    paymentRepo,
		subRepo:        subRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		cfg:            cfg,
	}
}

func (s *challengeService) CreateChallenge(ctx context.Context, identity *model.IdentityContext, req *model.CreateChallengeRequest) (*model.Challenge, error) {
	logger := middleware.GetLogger(ctx)

	if err := s.checkPlanLimit(ctx, identity.TenantID); err != nil {
		return nil, err
	}

	companyID := identity.WhopCompanyID
	challenge := &model.Challenge{
		ChallengeID:     uuid.New(),
		TenantID:        identity.TenantID,
		WhopCompanyID:   &companyID,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Status:          model.ChallengeDraft,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		EntryFeeCents:   req.EntryFeeCents,
		RewardPoolCents: req.RewardPoolCents,
		MaxParticipants: req.MaxParticipants,
		CreatedByUserID: identity.UserID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.challengeRepo.Create(ctx, tx, challenge); err != nil {
			return err
		}
		month := time.Now().UTC().Format("2006-01")
		if err := s.subRepo.IncrementUsage(ctx, tx, identity.TenantID, month); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		logger.Error("Transaction failed for CreateChallenge", "error", err)
		return nil, model.ErrInternalServer
	}

	return challenge, nil
}

// checkPlanLimit enforces the monthly creation cap for free-plan tenants.
// Tenants with an active pro subscription are uncapped.
func (s *challengeService) checkPlanLimit(ctx context.Context, tenantID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	sub, err := s.subRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Error loading subscription for plan check", "tenant_id", tenantID.String(), "error", err)
		return model.ErrInternalServer
	}
	if sub != nil && sub.Plan == model.PlanPro {
		if sub.ValidUntil == nil || sub.ValidUntil.After(time.Now()) {
			return nil
		}
	}

	month := time.Now().UTC().Format("2006-01")
	usage, err := s.subRepo.FindUsage(ctx, s.db, tenantID, month)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		logger.Error("Error loading monthly usage", "tenant_id", tenantID.String(), "error", err)
		return model.ErrInternalServer
	}
	if usage.ChallengesCreated >= s.cfg.App.FreePlanMonthlyChallenges {
		return model.NewAppError(
			"PLAN_LIMIT_REACHED",
			"The free plan limit for challenges this month has been reached.",
			"",
			model.ErrForbidden,
		)
	}
	return nil
}

func (s *challengeService) GetChallenge(ctx context.Context, identity *model.IdentityContext, challengeID uuid.UUID) (*model.Challenge, error) {
	return s.challengeRepo.FindByID(ctx, s.db, identity.TenantID, identity.WhopCompanyID, challengeID)
}

func (s *challengeService) ListChallenges(ctx context.Context, identity *model.IdentityContext) ([]*model.Challenge, error) {
	challenges, err := s.challengeRepo.FindByTenant(ctx, s.db, identity.TenantID, identity.WhopCompanyID)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	return challenges, nil
}

func (s *challengeService) UpdateChallenge(ctx context.Context, identity *model.IdentityContext, challengeID uuid.UUID, req *model.UpdateChallengeRequest) (*model.Challenge, error) {
	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.EndsAt != nil {
		updates["ends_at"] = *req.EndsAt
	}
	if req.RewardPoolCents != nil {
		updates["reward_pool_cents"] = *req.RewardPoolCents
	}
	if req.MaxParticipants != nil {
		updates["max_participants"] = *req.MaxParticipants
	}
	if len(updates) == 0 {
		return nil, model.ErrInvalidInput
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.challengeRepo.Update(ctx, tx, identity.TenantID, identity.WhopCompanyID, challengeID, updates)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, err
		}
		return nil, model.ErrInternalServer
	}

	return s.challengeRepo.FindByID(ctx, s.db, identity.TenantID, identity.WhopCompanyID, challengeID)
}

func (s *challengeService) DeleteChallenge(ctx context.Context, identity *model.IdentityContext, challengeID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.challengeRepo.Delete(ctx, tx, identity.TenantID, identity.WhopCompanyID, challengeID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return model.ErrInternalServer
	}
	return nil
}

// SelectWinners marks the given enrollments as winners, splits the reward
// pool evenly across them and books one revenue share row per winner. The
// whole selection commits or rolls back as one unit; notifications go out
// only after the commit.
func (s *challengeService) SelectWinners(ctx context.Context, identity *model.IdentityContext, challengeID uuid.UUID, req *model.SelectWinnersRequest) error {
	logger := middleware.GetLogger(ctx)

	challenge, err := s.challengeRepo.FindByID(ctx, s.db, identity.TenantID, identity.WhopCompanyID, challengeID)
	if err != nil {
		return err
	}
	if challenge.Status == model.ChallengeDraft {
		return model.NewAppError(
			"CHALLENGE_NOT_STARTED",
			"Winners cannot be selected for a draft challenge.",
			"",
			model.ErrInvalidInput,
		)
	}

	rewardPerWinner := int64(0)
	if challenge.RewardPoolCents > 0 {
		rewardPerWinner = challenge.RewardPoolCents / int64(len(req.EnrollmentIDs))
	}

	winners := make([]*model.Enrollment, 0, len(req.EnrollmentIDs))
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, enrollmentID := range req.EnrollmentIDs {
			enrollment, err := s.enrollmentRepo.FindByID(ctx, tx, identity.TenantID, enrollmentID)
			if err != nil {
				return err
			}
			if enrollment.ChallengeID != challengeID {
				return model.NewAppError(
					"ENROLLMENT_MISMATCH",
					"An enrollment does not belong to this challenge.",
					"enrollment_ids",
					model.ErrInvalidInput,
				)
			}
			if enrollment.RewardGranted {
				// Selecting the same winner twice must not double the payout.
				return model.ErrConflict
			}

			updates := map[string]interface{}{
				"status":         model.EnrollmentWinner,
				"reward_granted": true,
			}
			if err := s.enrollmentRepo.Update(ctx, tx, identity.TenantID, enrollmentID, updates); err != nil {
				return err
			}

			if rewardPerWinner > 0 {
				share := &model.RevenueShare{
					ShareID:     uuid.New(),
					TenantID:    identity.TenantID,
					ChallengeID: challengeID,
					UserID:      enrollment.UserID,
					AmountCents: rewardPerWinner,
					Reason:      "reward",
				}
				if err := s.paymentRepo.CreateRevenueShare(ctx, tx, share); err != nil {
					return err
				}
			}
			winners = append(winners, enrollment)
		}

		return s.challengeRepo.Update(ctx, tx, identity.TenantID, identity.WhopCompanyID, challengeID,
			map[string]interface{}{"status": model.ChallengeCompleted})
	})
	if err != nil {
		var appErr *model.AppError
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) || errors.As(err, &appErr) {
			return err
		}
		logger.Error("Transaction failed for SelectWinners", "challenge_id", challengeID.String(), "error", err)
		return model.ErrInternalServer
	}

	for _, w := range winners {
		s.notifier.NotifyWinner(ctx, identity.TenantID, s.whopUserIDOf(ctx, identity.TenantID, w.UserID), challenge.Title)
	}
	return nil
}

// whopUserIDOf looks up the platform user id behind a local user id for push
// delivery. Best effort; an empty id skips the push.
func (s *challengeService) whopUserIDOf(ctx context.Context, tenantID, userID uuid.UUID) string {
	user, err := s.userRepo.FindByID(ctx, s.db, tenantID, userID)
	if err != nil {
		return ""
	}
	return user.WhopUserID
}
