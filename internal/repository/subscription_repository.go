//go:generate mockery --name SubscriptionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository interface {
	FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.WhopSubscription, error)
	Upsert(ctx context.Context, db *gorm.DB, sub *model.WhopSubscription) error
	FindUsage(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, month string) (*model.MonthlyUsage, error)
	IncrementUsage(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, month string) error
}

type gormSubscriptionRepository struct{}

func NewGormSubscriptionRepository() SubscriptionRepository {
	return &gormSubscriptionRepository{}
}

func (r *gormSubscriptionRepository) FindByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (*model.WhopSubscription, error) {
	logger := middleware.GetLogger(ctx)
	var sub model.WhopSubscription
	result := db.WithContext(ctx).Where("tenant_id = ?", tenantID).First(&sub)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			// No row means free plan.
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding subscription by tenant in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormSubscriptionRepository.FindByTenant: %w", result.Error)
	}
	return &sub, nil
}

func (r *gormSubscriptionRepository) Upsert(ctx context.Context, db *gorm.DB, sub *model.WhopSubscription) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"plan", "valid_until", "updated_at"}),
	}).Create(sub)
	if result.Error != nil {
		logger.Error("Error upserting subscription in DB",
			"error", result.Error,
			"tenant_id", sub.TenantID.String(),
		)
		return fmt.Errorf("gormSubscriptionRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (r *gormSubscriptionRepository) FindUsage(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, month string) (*model.MonthlyUsage, error) {
	var usage model.MonthlyUsage
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND month = ?", tenantID, month).
		First(&usage)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormSubscriptionRepository.FindUsage: %w", result.Error)
	}
	return &usage, nil
}

func (r *gormSubscriptionRepository) IncrementUsage(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, month string) error {
	logger := middleware.GetLogger(ctx)
	usage := model.MonthlyUsage{
		UsageID:           uuid.New(),
		TenantID:          tenantID,
		Month:             month,
		ChallengesCreated: 1,
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "month"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"challenges_created": gorm.Expr("monthly_usage.challenges_created + 1"),
		}),
	}).Create(&usage)
	if result.Error != nil {
		logger.Error("Error incrementing monthly usage in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"month", month,
		)
		return fmt.Errorf("gormSubscriptionRepository.IncrementUsage: %w", result.Error)
	}
	return nil
}
