package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChallengeOffer is a promo-code discount attached to a challenge. The code
// itself lives on the platform; this row records the local handle.
type ChallengeOffer struct {
	OfferID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"offer_id"`
	TenantID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	ChallengeID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"challenge_id"`
	Code            string         `gorm:"not null;uniqueIndex" json:"code"`
	WhopPromoID     *string        `json:"whop_promo_id,omitempty"`
	DiscountPercent int            `gorm:"not null" json:"discount_percent"`
	ExpiresAt       *time.Time     `json:"expires_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ChallengeOffer) TableName() string {
	return "challenge_offers"
}

// OfferConversion records one redemption of an offer by a member.
type OfferConversion struct {
	ConversionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"conversion_id"`
	TenantID     uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	OfferID      uuid.UUID `gorm:"type:uuid;not null;index" json:"offer_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (OfferConversion) TableName() string {
	return "offer_conversions"
}

type CreateOfferRequest struct {
	ChallengeID     uuid.UUID  `json:"challenge_id" validate:"required"`
	Code            string     `json:"code" validate:"required,min=3,max=50,alphanum"`
	DiscountPercent int        `json:"discount_percent" validate:"required,min=1,max=100"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}
