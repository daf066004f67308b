//go:generate mockery --name NotificationRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_5_challenge_hub/internal/middleware"
	"go_5_challenge_hub/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, notification *model.InternalNotification) error
	ListByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, limit int) ([]*model.InternalNotification, error)
	MarkRead(ctx context.Context, db *gorm.DB, tenantID, notificationID uuid.UUID) error
}

type gormNotificationRepository struct{}

func NewGormNotificationRepository() NotificationRepository {
	return &gormNotificationRepository{}
}

func (r *gormNotificationRepository) Create(ctx context.Context, tx *gorm.DB, notification *model.InternalNotification) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(notification)
	if result.Error != nil {
		logger.Error("Error creating notification in DB",
			"error", result.Error,
			"tenant_id", notification.TenantID.String(),
			"kind", notification.Kind,
		)
		return fmt.Errorf("gormNotificationRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormNotificationRepository) ListByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, limit int) ([]*model.InternalNotification, error) {
	logger := middleware.GetLogger(ctx)
	if limit <= 0 {
		limit = 50
	}
	var notifications []*model.InternalNotification
	result := db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications)
	if result.Error != nil {
		logger.Error("Error listing notifications in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
		)
		return nil, fmt.Errorf("gormNotificationRepository.ListByTenant: %w", result.Error)
	}
	return notifications, nil
}

func (r *gormNotificationRepository) MarkRead(ctx context.Context, db *gorm.DB, tenantID, notificationID uuid.UUID) error {
	result := db.WithContext(ctx).Model(&model.InternalNotification{}).
		Where("tenant_id = ? AND notification_id = ? AND read_at IS NULL", tenantID, notificationID).
		Update("read_at", gorm.Expr("CURRENT_TIMESTAMP"))
	if result.Error != nil {
		return fmt.Errorf("gormNotificationRepository.MarkRead: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
