//go:generate mockery --name PaymentRepository --output ./mocks --outpkg mocks --case=underscore
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

type PaymentRepository interface {
	CreatePending(ctx context.Context, tx *gorm.DB, payment *model.PendingPayment) error
	FindPendingByChargeID(ctx context.Context, db *gorm.DB, chargeID string) (*model.PendingPayment, error)
	UpdatePendingStatus(ctx context.Context, tx *gorm.DB, paymentID uuid.UUID, status model.PaymentStatus) error
	CreateCompleted(ctx context.Context, tx *gorm.DB, payment *model.CompletedPayment) error
	FindCompletedByChargeID(ctx context.Context, db *gorm.DB, chargeID string) (*model.CompletedPayment, error)
	CreateRevenueShare(ctx context.Context, tx *gorm.DB, share *model.RevenueShare) error
	SumRevenueByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (int64, error)
}

type gormPaymentRepository struct{}

func NewGormPaymentRepository() PaymentRepository {
	return &gormPaymentRepository{}
}

func (r *gormPaymentRepository) CreatePending(ctx context.Context, tx *gorm.DB, payment *model.PendingPayment) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(payment)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating pending payment in DB",
			"error", result.Error,
			"tenant_id", payment.TenantID.String(),
			"whop_charge_id", payment.WhopChargeID,
		)
		return fmt.Errorf("gormPaymentRepository.CreatePending: %w", result.Error)
	}
	return nil
}

func (r *gormPaymentRepository) FindPendingByChargeID(ctx context.Context, db *gorm.DB, chargeID string) (*model.PendingPayment, error) {
	logger := middleware.GetLogger(ctx)
	var payment model.PendingPayment
	result := db.WithContext(ctx).Where("whop_charge_id = ?", chargeID).First(&payment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding pending payment by charge id in DB",
			"error", result.Error,
			"whop_charge_id", chargeID,
		)
		return nil, fmt.Errorf("gormPaymentRepository.FindPendingByChargeID: %w", result.Error)
	}
	return &payment, nil
}

func (r *gormPaymentRepository) UpdatePendingStatus(ctx context.Context, tx *gorm.DB, paymentID uuid.UUID, status model.PaymentStatus) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.PendingPayment{}).
		Where("payment_id = ?", paymentID).
		Update("status", status)
	if result.Error != nil {
		logger.Error("Error updating pending payment status in DB",
			"error", result.Error,
			"payment_id", paymentID.String(),
		)
		return fmt.Errorf("gormPaymentRepository.UpdatePendingStatus: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPaymentRepository) CreateCompleted(ctx context.Context, tx *gorm.DB, payment *model.CompletedPayment) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(payment)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			// Duplicate webhook delivery.
			logger.Warn("Duplicate key error on create completed payment",
				"whop_charge_id", payment.WhopChargeID,
			)
			return model.ErrConflict
		}
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		logger.Error("Error creating completed payment in DB",
			"error", result.Error,
			"whop_charge_id", payment.WhopChargeID,
		)
		return fmt.Errorf("gormPaymentRepository.CreateCompleted: %w", result.Error)
	}
	return nil
}

func (r *gormPaymentRepository) FindCompletedByChargeID(ctx context.Context, db *gorm.DB, chargeID string) (*model.CompletedPayment, error) {
	var payment model.CompletedPayment
	result := db.WithContext(ctx).Where("whop_charge_id = ?", chargeID).First(&payment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormPaymentRepository.FindCompletedByChargeID: %w", result.Error)
	}
	return &payment, nil
}

func (r *gormPaymentRepository) CreateRevenueShare(ctx context.Context, tx *gorm.DB, share *model.RevenueShare) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(share)
	if result.Error != nil {
		logger.Error("Error creating revenue share in DB",
			"error", result.Error,
			"tenant_id", share.TenantID.String(),
			"reason", share.Reason,
		)
		return fmt.Errorf("gormPaymentRepository.CreateRevenueShare: %w", result.Error)
	}
	return nil
}

func (r *gormPaymentRepository) SumRevenueByTenant(ctx context.Context, db *gorm.DB, tenantID uuid.UUID) (int64, error) {
	var total int64
	result := db.WithContext(ctx).Model(&model.CompletedPayment{}).
		Where("tenant_id = ?", tenantID).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&total)
	if result.Error != nil {
		return 0, fmt.Errorf("gormPaymentRepository.SumRevenueByTenant: %w", result.Error)
	}
	return total, nil
}
