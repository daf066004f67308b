//go:generate mockery --name ChallengeRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChallengeRepository interface {
	Create(ctx context.Context, tx *gorm.DB, challenge *model.Challenge) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, companyID string, challengeID uuid.UUID) (*model.Challenge, error)
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, companyID string) ([]*model.Challenge, error)
	Update(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, companyID string, challengeID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, companyID string, challengeID uuid.UUID) error
	CountByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, companyID string) (int64, error)
}

type gormChallengeRepository struct{}

func NewGormChallengeRepository() ChallengeRepository {
	return &gormChallengeRepository{}
}

// scoped applies the tenant-isolation filter. Both the tenant id and the
// denormalized company id are checked; the dataset has shown they can
// diverge, and a row failing either condition must never be visible.
func scoped(db *gorm.DB, tenantID uuid.UUID, companyID string) *gorm.DB {
	return db.Where("tenant_id = ? AND (whop_company_id IS NULL OR whop_company_id = ?)", tenantID, companyID)
}

func (r *gormChallengeRepository) Create(ctx context.Context, tx *gorm.DB, challenge *model.Challenge) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(challenge)
	if result.Error != nil {
		logger.Error("Error creating challenge in DB",
			"error", result.Error,
			"tenant_id", challenge.TenantID.String(),
			"title", challenge.Title,
		)
		return fmt.Errorf("gormChallengeRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormChallengeRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, companyID string, challengeID uuid.UUID) (*model.Challenge, error) {
	logger := middleware.GetLogger(ctx)
	var challenge model.Challenge
	result := scoped(db.WithContext(ctx), tenantID, companyID).
		Where("challenge_id = ?", challengeID).
		First(&challenge)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding challenge by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"challenge_id", challengeID.String(),
		)
		return nil, fmt.Errorf("gormChallengeRepository.FindByID: %w", result.Error)
	}
	return &challenge, nil
}

func (r *gormChallengeRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, companyID string) ([]*model.Challenge, error) {
	logger := middleware.GetLogger(ctx)
	var challenges []*model.Challenge
	result := scoped(db.WithContext(ctx), tenantID, companyID).
		Order("created_at DESC").
		Find(&challenges)
	if result.Error != nil {
		logger.Error("Error finding challenges by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormChallengeRepository.FindByTenant: %w", result.Error)
	}
	return challenges, nil
}

func (r *gormChallengeRepository) Update(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, companyID string, challengeID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := scoped(tx.WithContext(ctx).Model(&model.Challenge{}), tenantID, companyID).
		Where("challenge_id = ?", challengeID).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating challenge in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"challenge_id", challengeID.String(),
		)
		return fmt.Errorf("gormChallengeRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormChallengeRepository) Delete(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, companyID string, challengeID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := scoped(tx.WithContext(ctx), tenantID, companyID).
		Where("challenge_id = ?", challengeID).
		Delete(&model.Challenge{})
	if result.Error != nil {
		logger.Error("Error deleting challenge in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"challenge_id", challengeID.String(),
		)
		return fmt.Errorf("gormChallengeRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormChallengeRepository) CountByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, companyID string) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := scoped(db.WithContext(ctx).Model(&model.Challenge{}), tenantID, companyID).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting challenges in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return 0, fmt.Errorf("gormChallengeRepository.CountByTenant: %w", result.Error)
	}
	return count, nil
}
