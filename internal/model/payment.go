package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

// PendingPayment is created when a charge is opened on the platform. The
// webhook flips it to completed.
type PendingPayment struct {
	PaymentID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"payment_id"`
	TenantID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	WhopChargeID string         `gorm:"not null;uniqueIndex" json:"whop_charge_id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null" json:"user_id"`
	ChallengeID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"challenge_id"`
	AmountCents  int64          `gorm:"not null" json:"amount_cents"`
	Status       PaymentStatus  `gorm:"type:varchar(16);not null;default:pending" json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PendingPayment) TableName() string {
	return "pending_payments"
}

// CompletedPayment is the receipt row. The unique index on whop_charge_id is
// the idempotency guard against duplicate webhook delivery.
type CompletedPayment struct {
	PaymentID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"payment_id"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	WhopChargeID string    `gorm:"not null;uniqueIndex" json:"whop_charge_id"`
	WhopUserID   string    `gorm:"not null" json:"whop_user_id"`
	ChallengeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"challenge_id"`
	AmountCents  int64     `gorm:"not null" json:"amount_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

func (CompletedPayment) TableName() string {
	return "completed_payments"
}

// RevenueShare records a payout owed to the creator (entry fees, reward
// distribution).
type RevenueShare struct {
	ShareID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"share_id"`
	TenantID    uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	ChallengeID uuid.UUID `gorm:"type:uuid;not null;index" json:"challenge_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	AmountCents int64     `gorm:"not null" json:"amount_cents"`
	Reason      string    `gorm:"type:varchar(32);not null" json:"reason"` // "entry_fee" or "reward"
	CreatedAt   time.Time `json:"created_at"`
}

func (RevenueShare) TableName() string {
	return "revenue_shares"
}

type CreateChargeRequest struct {
	ChallengeID uuid.UUID `json:"challenge_id" validate:"required"`
}

// ChargeResponse is what the client needs to hand the user over to the
// platform checkout.
type ChargeResponse struct {
	ChargeID    string `json:"charge_id"`
	CheckoutURL string `json:"checkout_url"`
	AmountCents int64  `json:"amount_cents"`
}

// PaymentWebhookPayload is the payment.succeeded event body delivered by the
// platform.
type PaymentWebhookPayload struct {
	Action string             `json:"action"`
	Data   PaymentWebhookData `json:"data"`
}

type PaymentWebhookData struct {
	ID          string                 `json:"id"`
	FinalAmount float64                `json:"final_amount"`
	UserID      string                 `json:"user_id"`
	Metadata    PaymentWebhookMetadata `json:"metadata"`
}

type PaymentWebhookMetadata struct {
	ExperienceID string `json:"experienceId"`
	ChallengeID  string `json:"challengeId"`
	EntityType   string `json:"entityType"`
}
