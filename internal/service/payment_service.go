//go:generate mockery --name PaymentService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"

	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/model"
	"go_5_challenge_hub/internal/repository"
	"go_5_challenge_hub/internal/whop"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentService drives the entry-fee flow: a charge is opened on the
// platform, the user pays there, and the payment.succeeded webhook settles
// the local state. The webhook handler must be idempotent; the platform
// redelivers.
type PaymentService interface {
	CreateCharge(ctx context.Context, identity *model.IdentityContext, req *model.CreateChargeRequest) (*model.ChargeResponse, error)
	HandlePaymentSucceeded(ctx context.Context, payload *model.PaymentWebhookPayload) error
}

type paymentService struct {
	db             *gorm.DB
	tenantRepo     repository.TenantRepository
	challengeRepo  repository.ChallengeRepository
	enrollmentRepo repository.EnrollmentRepository
	paymentRepo    repository.PaymentRepository
	whopClient     whop.Client
	notifier       NotificationService
}

func NewPaymentService(
	db *gorm.DB,
	tenantRepo repository.TenantRepository,
	challengeRepo repository.ChallengeRepository,
	enrollmentRepo repository.EnrollmentRepository,
	paymentRepo repository.PaymentRepository,
	whopClient whop.Client,
	notifier NotificationService,
) PaymentService {
	return &paymentService{
		db:             db,
		tenantRepo:     tenantRepo,
		challengeRepo:  challengeRepo,
		enrollmentRepo: enrollmentRepo,
		paymentRepo:    paymentRepo,
		whopClient:     whopClient,
		notifier:       notifier,
	}
}

// CreateCharge opens a platform charge for the caller's entry fee and books
// the matching pending payment. The enrollment is created as pending_payment
// here if the user has not enrolled yet.
func (s *paymentService) CreateCharge(ctx context.Context, identity *model.IdentityContext, req *model.CreateChargeRequest) (*model.ChargeResponse, error) {
	logger := middleware.GetLogger(ctx)

	challenge, err := s.challengeRepo.FindByID(ctx, s.db, identity.TenantID, identity.WhopCompanyID, req.ChallengeID)
	if err != nil {
		return nil, err
	}
	if challenge.EntryFeeCents <= 0 {
		return nil, model.NewAppError(
			"CHALLENGE_IS_FREE",
			"This challenge has no entry fee.",
			"challenge_id",
			model.ErrInvalidInput,
		)
	}

	enrollment, err := s.enrollmentRepo.FindByChallengeAndUser(ctx, s.db, identity.TenantID, req.ChallengeID, identity.UserID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrInternalServer
	}
	if enrollment != nil && enrollment.Status != model.EnrollmentPendingPayment {
		return nil, model.ErrConflict
	}

	charge, err := s.whopClient.CreateCharge(ctx, whop.ChargeRequest{
		WhopUserID:  identity.WhopUserID,
		AmountCents: challenge.EntryFeeCents,
		Currency:    "usd",
		Metadata: map[string]string{
			"challengeId":  challenge.ChallengeID.String(),
			"experienceId": identity.WhopExperienceID,
			"entityType":   "challenge",
		},
	})
	if err != nil {
		logger.Error("Failed to create charge on platform", "challenge_id", req.ChallengeID.String(), "error", err)
		return nil, model.ErrInternalServer
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if enrollment == nil {
			enrollment = &model.Enrollment{
				EnrollmentID: uuid.New(),
				TenantID:     identity.TenantID,
				ChallengeID:  req.ChallengeID,
				UserID:       identity.UserID,
				Status:       model.EnrollmentPendingPayment,
			}
			if err := s.enrollmentRepo.Create(ctx, tx, enrollment); err != nil {
				return err
			}
		}
		pending := &model.PendingPayment{
			PaymentID:    uuid.New(),
			TenantID:     identity.TenantID,
			WhopChargeID: charge.ID,
			UserID:       identity.UserID,
			ChallengeID:  req.ChallengeID,
			AmountCents:  challenge.EntryFeeCents,
			Status:       model.PaymentPending,
		}
		return s.paymentRepo.CreatePending(ctx, tx, pending)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Transaction failed for CreateCharge", "whop_charge_id", charge.ID, "error", err)
		return nil, model.ErrInternalServer
	}

	return &model.ChargeResponse{
		ChargeID:    charge.ID,
		CheckoutURL: charge.CheckoutURL,
		AmountCents: challenge.EntryFeeCents,
	}, nil
}

// HandlePaymentSucceeded settles one payment.succeeded delivery. The
// completed_payments unique index on the charge id plus the lookup-first
// check make redelivery a no-op; all writes for one delivery share a single
// transaction.
func (s *paymentService) HandlePaymentSucceeded(ctx context.Context, payload *model.PaymentWebhookPayload) error {
	logger := middleware.GetLogger(ctx)

	if payload.Action != "payment.succeeded" {
		logger.Debug("Ignoring webhook action", "action", payload.Action)
		return nil
	}
	if payload.Data.Metadata.EntityType != "challenge" {
		logger.Debug("Ignoring webhook for foreign entity", "entity_type", payload.Data.Metadata.EntityType)
		return nil
	}
	chargeID := payload.Data.ID
	if chargeID == "" {
		return model.ErrInvalidInput
	}

	if _, err := s.paymentRepo.FindCompletedByChargeID(ctx, s.db, chargeID); err == nil {
		logger.Info("Webhook already processed, skipping", "whop_charge_id", chargeID)
		return nil
	} else if !errors.Is(err, model.ErrNotFound) {
		return model.ErrInternalServer
	}

	pending, err := s.paymentRepo.FindPendingByChargeID(ctx, s.db, chargeID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// Charge was not opened by this app instance. Acknowledge so the
			// platform stops retrying.
			logger.Warn("No pending payment for webhook charge", "whop_charge_id", chargeID)
			return nil
		}
		return model.ErrInternalServer
	}

	// Webhooks carry no company context; re-derive it from the tenant the
	// pending payment belongs to so the challenge lookup stays dual-filtered.
	companyID := ""
	if tenant, err := s.tenantRepo.FindByID(ctx, s.db, pending.TenantID); err == nil && tenant.WhopCompanyID != nil {
		companyID = *tenant.WhopCompanyID
	}
	challenge, err := s.challengeRepo.FindByID(ctx, s.db, pending.TenantID, companyID, pending.ChallengeID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.ErrInternalServer
	}

	amountCents := pending.AmountCents
	if reported := int64(payload.Data.FinalAmount*100 + 0.5); reported > 0 && reported != amountCents {
		// Promo codes make the settled amount smaller than the opened one.
		logger.Info("Webhook amount differs from pending amount",
			"whop_charge_id", chargeID,
			"pending_cents", amountCents,
			"reported_cents", reported,
		)
		amountCents = reported
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		completed := &model.CompletedPayment{
			PaymentID:    uuid.New(),
			TenantID:     pending.TenantID,
			WhopChargeID: chargeID,
			WhopUserID:   payload.Data.UserID,
			ChallengeID:  pending.ChallengeID,
			AmountCents:  amountCents,
		}
		if err := s.paymentRepo.CreateCompleted(ctx, tx, completed); err != nil {
			return err
		}
		if err := s.paymentRepo.UpdatePendingStatus(ctx, tx, pending.PaymentID, model.PaymentCompleted); err != nil {
			return err
		}

		enrollment, err := s.enrollmentRepo.FindByChallengeAndUser(ctx, tx, pending.TenantID, pending.ChallengeID, pending.UserID)
		if err != nil {
			return err
		}
		if enrollment.Status == model.EnrollmentPendingPayment {
			if err := s.enrollmentRepo.Update(ctx, tx, pending.TenantID, enrollment.EnrollmentID,
				map[string]interface{}{"status": model.EnrollmentActive}); err != nil {
				return err
			}
		}

		if challenge != nil {
			share := &model.RevenueShare{
				ShareID:     uuid.New(),
				TenantID:    pending.TenantID,
				ChallengeID: pending.ChallengeID,
				UserID:      challenge.CreatedByUserID,
				AmountCents: amountCents,
				Reason:      "entry_fee",
			}
			if err := s.paymentRepo.CreateRevenueShare(ctx, tx, share); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			// A concurrent delivery won the insert race.
			logger.Info("Webhook processed concurrently, skipping", "whop_charge_id", chargeID)
			return nil
		}
		logger.Error("Transaction failed for HandlePaymentSucceeded", "whop_charge_id", chargeID, "error", err)
		return model.ErrInternalServer
	}

	title := ""
	if challenge != nil {
		title = challenge.Title
	}
	s.notifier.NotifyPayment(ctx, pending.TenantID, title, amountCents)
	s.notifier.NotifyEnrollment(ctx, pending.TenantID, payload.Data.UserID, title)
	return nil
}
