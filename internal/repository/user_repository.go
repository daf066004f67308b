//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
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

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, userID uuid.UUID) (*model.User, error)
	FindByWhopUserID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, whopUserID string) (*model.User, error)
	UpdateRole(ctx context.Context, db *gorm.DB, tenantID, userID uuid.UUID, role model.Role) error
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, db *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(user)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			logger.Warn("Duplicate key error on create user",
				"error", result.Error,
				"whop_user_id", user.WhopUserID,
			)
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}

		logger.Error("Error creating user in DB",
			"error", result.Error,
			"tenant_id", user.TenantID.String(),
			"whop_user_id", user.WhopUserID,
		)
		return fmt.Errorf("gormUserRepository.Create: %w", result.Error)
	}

	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, userID uuid.UUID) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).Where("tenant_id = ? AND user_id = ?", tenantID, userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormUserRepository.FindByID: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByWhopUserID(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, whopUserID string) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var user model.User

	result := db.WithContext(ctx).Where("tenant_id = ? AND whop_user_id = ?", tenantID, whopUserID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("User not found by whop user id",
				"tenant_id", tenantID.String(),
				"whop_user_id", whopUserID,
			)
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user by whop user id in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"whop_user_id", whopUserID,
		)
		return nil, fmt.Errorf("gormUserRepository.FindByWhopUserID: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) UpdateRole(ctx context.Context, db *gorm.DB, tenantID, userID uuid.UUID, role model.Role) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.User{}).
		Where("tenant_id = ? AND user_id = ?", tenantID, userID).
		Update("role", role)
	if result.Error != nil {
		logger.Error("Error updating user role in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"user_id", userID.String(),
		)
		return fmt.Errorf("gormUserRepository.UpdateRole: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
