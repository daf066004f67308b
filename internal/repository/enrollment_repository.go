//go:generate mockery --name EnrollmentRepository --output ./mocks --outpkg mocks --case=underscore
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

type EnrollmentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, enrollment *model.Enrollment) error
	FindByID(ctx context.Context, db *gorm.DB, tenantID, enrollmentID uuid.UUID) (*model.Enrollment, error)
	FindByChallengeAndUser(ctx context.Context, db *gorm.DB, tenantID, challengeID, userID uuid.UUID) (*model.Enrollment, error)
	FindByChallenge(ctx context.Context, db *gorm.DB, tenantID, challengeID uuid.UUID) ([]*model.Enrollment, error)
	FindByUser(ctx context.Context, db *gorm.DB, tenantID, userID uuid.UUID) ([]*model.Enrollment, error)
	CountByChallenge(ctx context.Context, db *gorm.DB, tenantID, challengeID uuid.UUID) (int64, error)
	Update(ctx context.Context, tx *gorm.DB, tenantID, enrollmentID uuid.UUID, updates map[string]interface{}) error
	CreateCheckin(ctx context.Context, tx *gorm.DB, checkin *model.Checkin) error
	CreateProof(ctx context.Context, tx *gorm.DB, proof *model.Proof) error
	FindCheckins(ctx context.Context, db *gorm.DB, tenantID, enrollmentID uuid.UUID) ([]*model.Checkin, error)
}

type gormEnrollmentRepository struct{}

func NewGormEnrollmentRepository() EnrollmentRepository {
	return &gormEnrollmentRepository{}
}

func (r *gormEnrollmentRepository) Create(ctx context.Context, tx *gorm.DB, enrollment *model.Enrollment) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(enrollment)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			// Already enrolled.
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating enrollment in DB",
			"error", result.Error,
			"tenant_id", enrollment.TenantID.String(),
			"challenge_id", enrollment.ChallengeID.String(),
		)
		return fmt.Errorf("gormEnrollmentRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormEnrollmentRepository) FindByID(ctx context.Context, db *gorm.DB, tenantID, enrollmentID uuid.UUID) (*model.Enrollment, error) {
	logger := middleware.GetLogger(ctx)
	var enrollment model.Enrollment
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND enrollment_id = ?", tenantID, enrollmentID).
		First(&enrollment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding enrollment by ID in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"enrollment_id", enrollmentID.String(),
		)
		return nil, fmt.Errorf("gormEnrollmentRepository.FindByID: %w", result.Error)
	}
	return &enrollment, nil
}

func (r *gormEnrollmentRepository) FindByChallengeAndUser(ctx context.Context, db *gorm.DB, tenantID, challengeID, userID uuid.UUID) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND challenge_id = ? AND user_id = ?", tenantID, challengeID, userID).
		First(&enrollment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormEnrollmentRepository.FindByChallengeAndUser: %w", result.Error)
	}
	return &enrollment, nil
}

func (r *gormEnrollmentRepository) FindByChallenge(ctx context.Context, db *gorm.DB, tenantID, challengeID uuid.UUID) ([]*model.Enrollment, error) {
	logger := middleware.GetLogger(ctx)
	var enrollments []*model.Enrollment
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND challenge_id = ?", tenantID, challengeID).
		Order("created_at ASC").
		Find(&enrollments)
	if result.Error != nil {
		logger.Error("Error finding enrollments by challenge in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"challenge_id", challengeID.String(),
		)
		return nil, fmt.Errorf("gormEnrollmentRepository.FindByChallenge: %w", result.Error)
	}
	return enrollments, nil
}

func (r *gormEnrollmentRepository) FindByUser(ctx context.Context, db *gorm.DB, tenantID, userID uuid.UUID) ([]*model.Enrollment, error) {
	var enrollments []*model.Enrollment
	result := db.WithContext(ctx).
		Where("tenant_id = ? AND user_id = ?", tenantID, userID).
		Order("created_at DESC").
		Find(&enrollments)
	if result.Error != nil {
		return nil, fmt.Errorf("gormEnrollmentRepository.FindByUser: %w", result.Error)
	}
	return enrollments, nil
}

func (r *gormEnrollmentRepository) CountByChallenge(ctx context.Context, db *gorm.DB, tenantID, challengeID uuid.UUID) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("tenant_id = ? AND challenge_id = ?", tenantID, challengeID).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormEnrollmentRepository.CountByChallenge: %w", result.Error)
	}
	return count, nil
}

func (r *gormEnrollmentRepository) Update(ctx context.Context, tx *gorm.DB, tenantID, enrollmentID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.Enrollment{}).
		Where("tenant_id = ? AND enrollment_id = ?", tenantID, enrollmentID).
		Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating enrollment in DB",
			"error", result.Error,
			"tenant_id", tenantID.String(),
			"enrollment_id", enrollmentID.String(),
		)
		return fmt.Errorf("gormEnrollmentRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormEnrollmentRepository) CreateCheckin(ctx context.Context, tx *gorm.DB, checkin *model.Checkin) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(checkin)
	if result.Error != nil {
		logger.Error("Error creating checkin in DB",
			"error", result.Error,
			"tenant_id", checkin.TenantID.String(),
			"enrollment_id", checkin.EnrollmentID.String(),
		)
		return fmt.Errorf("gormEnrollmentRepository.CreateCheckin: %w", result.Error)
	}
	return nil
}

func (r *gormEnrollmentRepository) CreateProof(ctx context.Context, tx *gorm.DB, proof *model.Proof) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(proof)
	if result.Error != nil {
		logger.Error("Error creating proof in DB",
			"error", result.Error,
			"tenant_id", proof.TenantID.String(),
			"checkin_id", proof.CheckinID.String(),
		)
		return fmt.Errorf("gormEnrollmentRepository.CreateProof: %w", result.Error)
	}
	return nil
}

func (r *gormEnrollmentRepository) FindCheckins(ctx context.Context, db *gorm.DB, tenantID, enrollmentID uuid.UUID) ([]*model.Checkin, error) {
	var checkins []*model.Checkin
	result := db.WithContext(ctx).
		Preload("Proof").
		Where("tenant_id = ? AND enrollment_id = ?", tenantID, enrollmentID).
		Order("created_at DESC").
		Find(&checkins)
	if result.Error != nil {
		return nil, fmt.Errorf("gormEnrollmentRepository.FindCheckins: %w", result.Error)
	}
	return checkins, nil
}
