//go:generate mockery --name OfferRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type OfferRepository interface {
	Create(ctx context.Context, tx *gorm.DB, offer *model.ChallengeOffer) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, offerID uuid.UUID) (*model.ChallengeOffer, error)
	FindByCode(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, code string) (*model.ChallengeOffer, error)
	FindByChallenge(ctx context.Context, db *gorm.DB, tenantID, challengeID uuid.UUID) ([]*model.ChallengeOffer, error)
	Delete(ctx context.Context, tx *gorm.DB, tenantID, offerID uuid.UUID) error
	CreateConversion(ctx context.Context, tx *gorm.DB, conversion *model.OfferConversion) error
	CountConversions(ctx context.Context, db *gorm.DB, tenantID, offerID uuid.UUID) (int64, error)
}

type gormOfferRepository struct{}

func NewGormOfferRepository() OfferRepository {
	return &gormOfferRepository{}
}

func (r *gormOfferRepository) Create(ctx context.Context, tx *gorm.DB, offer *model.ChallengeOffer) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(offer)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on create offer",
				"error", result.Error,
				"code", offer.Code,
			)
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating offer in DB",
			"error", result.Error,
			"tenant_id", offer.TenantID.String(),
			"code", offer.Code,
		)
		return fmt.Errorf("gormOfferRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormOfferRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, offerID uuid.UUID) (*model.ChallengeOffer, error) {
	var offer model.ChallengeOffer
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND offer_id = ?", tenantID, offerID).
		First(&offer)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormOfferRepository.FindByID: %w", result.Error)
	}
	return &offer, nil
}

func (r *gormOfferRepository) FindByCode(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, code string) (*model.ChallengeOffer, error) {
	var offer model.ChallengeOffer
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND code = ?", tenantID, code).
		First(&offer)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormOfferRepository.FindByCode: %w", result.Error)
	}
	return &offer, nil
}

func (r *gormOfferRepository) FindByChallenge(ctx context.Context, db *gorm.DB, tenantID, challengeID uuid.UUID) ([]*model.ChallengeOffer, error) {
	logger := middleware.GetLogger(ctx)
	var offers []*model.ChallengeOffer
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND challenge_id = ?", tenantID, challengeID).
		Order("created_at DESC").
		Find(&offers)
	if result.Error != nil {
		logger.Error("Error finding offers by challenge in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"challenge_id", challengeID.String(),
		)
		return nil, fmt.Errorf("gormOfferRepository.FindByChallenge: %w", result.Error)
	}
	return offers, nil
}

func (r *gormOfferRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID, offerID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Where("tenant_id = ? AND offer_id = ?", tenantID, offerID).
		Delete(&model.ChallengeOffer{})
	if result.Error != nil {
		logger.Error("Error deleting offer in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"offer_id", offerID.String(),
		)
		return fmt.Errorf("gormOfferRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormOfferRepository) CreateConversion(ctx context.Context, tx *gorm.DB, conversion *model.OfferConversion) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(conversion)
	if result.Error != nil {
		logger.Error("Error creating offer conversion in DB",
			"error", result.Error,
			"tenant_id", conversion.TenantID.String(),
			"offer_id", conversion.OfferID.String(),
		)
		return fmt.Errorf("gormOfferRepository.CreateConversion: %w", result.Error)
	}
	return nil
}

func (r *gormOfferRepository) CountConversions(ctx context.Context, db *gorm.DB, tenantID, offerID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.OfferConversion{}).
		Where("tenant_id = ? AND offer_id = ?", tenantID, offerID).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormOfferRepository.CountConversions: %w", result.Error)
	}
	return count, nil
}
