//go:generate mockery --name AnalyticsService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"

	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/model"
	"go_5_challenge_hub/internal/repository"
	"go_5_challenge_hub/internal/whop"

	"gorm.io/gorm"
)

type AnalyticsService interface {
	Summary(ctx context.Context, identity *model.IdentityContext) (*model.TenantAnalytics, error)
}

type analyticsService struct {
	db            *gorm.DB
	challengeRepo repository.ChallengeRepository
	paymentRepo   repository.PaymentRepository
	whopClient    whop.Client
}

func NewAnalyticsService(db *gorm.DB, challengeRepo repository.ChallengeRepository, paymentRepo repository.PaymentRepository, whopClient whop.Client) AnalyticsService {
	return &analyticsService{
		db:            db,
		challengeRepo: challengeRepo,
		paymentRepo:   paymentRepo,
		whopClient:    whopClient,
	}
}

// Summary aggregates local state and cross-checks it against the platform's
// receipt list. The receipt call is best effort; the local numbers are the
// source of truth.
func (s *analyticsService) Summary(ctx context.Context, identity *model.IdentityContext) (*model.TenantAnalytics, error) {
	logger := middleware.GetLogger(ctx)

	challengeCount, err := s.challengeRepo.CountByTenant(ctx, s.db, identity.TenantID, identity.WhopCompanyID)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	revenue, err := s.paymentRepo.SumRevenueByTenant(ctx, s.db, identity.TenantID)
	if err != nil {
		return nil, model.ErrInternalServer
	}

	out := &model.TenantAnalytics{
		ChallengeCount: challengeCount,
		RevenueCents:   revenue,
	}

	receipts, err := s.whopClient.ListReceipts(ctx, identity.WhopCompanyID)
	if err != nil {
		logger.Warn("Failed to list platform receipts for analytics", "error", err)
		return out, nil
	}
	out.ReceiptCount = len(receipts)
	for _, r := range receipts {
		out.ReceiptSumCents += r.AmountCents
	}
	return out, nil
}
