//go:generate mockery --name OfferService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"time"

	"go_5_challenge_hub/internal/config"
	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/model"
	"go_5_challenge_hub/internal/repository"
	"go_5_challenge_hub/internal/whop"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OfferService interface {
	CreateOffer(ctx context.Context, identity *model.IdentityContext, req *model.CreateOfferRequest) (*model.ChallengeOffer, error)
	ListOffers(ctx context.Context, identity *model.IdentityContext, challengeID uuid.UUID) ([]*model.ChallengeOffer, error)
	DeleteOffer(ctx context.Context, identity *model.IdentityContext, offerID uuid.UUID) error
	RedeemOffer(ctx context.Context, identity *model.IdentityContext, code string) (*model.ChallengeOffer, error)
}

type offerService struct {
	db            *gorm.DB
	offerRepo     repository.OfferRepository
	challengeRepo repository.ChallengeRepository
	tenantRepo    repository.TenantRepository
	promoClient   whop.PromoClient
	cfg           *config.Config
}

func NewOfferService(db *gorm.DB, offerRepo repository.OfferRepository, challengeRepo repository.ChallengeRepository, tenantRepo repository.TenantRepository, promoClient whop.PromoClient, cfg *config.Config) OfferService {
	return &offerService{
		db:            db,
		offerRepo:     offerRepo,
		challengeRepo: challengeRepo,
		tenantRepo:    tenantRepo,
		promoClient:   promoClient,
		cfg:           cfg,
	}
}

// CreateOffer registers the promo code on the platform first, then persists
// the local row. The platform call already retries once with the fallback
// API key; a failure after that surfaces to the caller unretried.
func (s *offerService) CreateOffer(ctx context.Context, identity *model.IdentityContext, req *model.CreateOfferRequest) (*model.ChallengeOffer, error) {
	logger := middleware.GetLogger(ctx)

	if _, err := s.challengeRepo.FindByID(ctx, s.db, identity.TenantID, identity.WhopCompanyID, req.ChallengeID); err != nil {
		return nil, err
	}
	if req.ExpiresAt != nil && req.ExpiresAt.Before(time.Now()) {
		return nil, model.NewAppError(
			"OFFER_ALREADY_EXPIRED",
			"The expiry must be in the future.",
			"expires_at",
			model.ErrInvalidInput,
		)
	}
	if existing, err := s.offerRepo.FindByCode(ctx, s.db, identity.TenantID, req.Code); err == nil && existing != nil {
		return nil, model.ErrConflict
	} else if err != nil && !errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrInternalServer
	}

	productID := ""
	if tenant, err := s.tenantRepo.FindByID(ctx, s.db, identity.TenantID); err == nil && tenant.WhopProductID != nil {
		productID = *tenant.WhopProductID
	}
	promo, err := s.promoClient.CreatePromoCode(ctx, whop.CreatePromoRequest{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		PromoType:       "percentage",
		ProductID:       productID,
	})
	if err != nil {
		logger.Error("Failed to create promo code on platform", "code", req.Code, "error", err)
		return nil, model.NewAppError(
			"PROMO_CREATION_FAILED",
			"The promo code could not be created on the platform.",
			"code",
			model.ErrInternalServer,
		)
	}

	offer := &model.ChallengeOffer{
		OfferID:         uuid.New(),
		TenantID:        identity.TenantID,
		ChallengeID:     req.ChallengeID,
		Code:            req.Code,
		WhopPromoID:     &promo.ID,
		DiscountPercent: req.DiscountPercent,
		ExpiresAt:       req.ExpiresAt,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.offerRepo.Create(ctx, tx, offer)
	})
	if err != nil {
		// The remote code now exists without a local row; clean it up so the
		// code can be retried.
		if delErr := s.promoClient.DeletePromoCode(ctx, promo.ID); delErr != nil {
			logger.Warn("Failed to clean up orphaned promo code", "whop_promo_id", promo.ID, "error", delErr)
		}
		if errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Transaction failed for CreateOffer", "code", req.Code, "error", err)
		return nil, model.ErrInternalServer
	}

	return offer, nil
}

func (s *offerService) ListOffers(ctx context.Context, identity *model.IdentityContext, challengeID uuid.UUID) ([]*model.ChallengeOffer, error) {
	if _, err := s.challengeRepo.FindByID(ctx, s.db, identity.TenantID, identity.WhopCompanyID, challengeID); err != nil {
		return nil, err
	}
	return s.offerRepo.FindByChallenge(ctx, s.db, identity.TenantID, challengeID)
}

func (s *offerService) DeleteOffer(ctx context.Context, identity *model.IdentityContext, offerID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	offer, err := s.offerRepo.FindByID(ctx, s.db, identity.TenantID, offerID)
	if err != nil {
		return err
	}

	if offer.WhopPromoID != nil {
		if err := s.promoClient.DeletePromoCode(ctx, *offer.WhopPromoID); err != nil {
			// Local deletion still proceeds; a dangling remote code only
			// wastes a discount.
			logger.Warn("Failed to delete promo code on platform", "whop_promo_id", *offer.WhopPromoID, "error", err)
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.offerRepo.Delete(ctx, tx, identity.TenantID, offerID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return err
		}
		return model.ErrInternalServer
	}
	return nil
}

// RedeemOffer validates a code for the caller and records the conversion.
// The actual discount is applied by the platform at checkout; this endpoint
// only answers "is this code live" and keeps the conversion count honest.
func (s *offerService) RedeemOffer(ctx context.Context, identity *model.IdentityContext, code string) (*model.ChallengeOffer, error) {
	logger := middleware.GetLogger(ctx)

	offer, err := s.offerRepo.FindByCode(ctx, s.db, identity.TenantID, code)
	if err != nil {
		return nil, err
	}
	if offer.ExpiresAt != nil && offer.ExpiresAt.Before(time.Now()) {
		return nil, model.NewAppError(
			"OFFER_EXPIRED",
			"The promo code has expired.",
			"code",
			model.ErrInvalidInput,
		)
	}

	conversion := &model.OfferConversion{
		ConversionID: uuid.New(),
		TenantID:     identity.TenantID,
		OfferID:      offer.OfferID,
		UserID:       identity.UserID,
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.offerRepo.CreateConversion(ctx, tx, conversion)
	})
	if err != nil {
		logger.Error("Transaction failed for RedeemOffer", "code", code, "error", err)
		return nil, model.ErrInternalServer
	}
	return offer, nil
}
