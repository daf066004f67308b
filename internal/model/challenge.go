package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChallengeStatus string

const (
	ChallengeDraft     ChallengeStatus = "draft"
	ChallengeActive    ChallengeStatus = "active"
	ChallengeCompleted ChallengeStatus = "completed"
)

// Challenge is one time-boxed community challenge. WhopCompanyID is written
// by the service layer from the resolved tenant, never from request input,
// and every repository query filters on both tenant_id and whop_company_id.
type Challenge struct {
	ChallengeID     uuid.UUID       `gorm:"type:uuid;primaryKey" json:"challenge_id"`
	TenantID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"tenant_id"`
	WhopCompanyID   *string         `gorm:"index" json:"whop_company_id"`
	Title           string          `gorm:"not null" json:"title"`
	Description     string          `json:"description"`
	Category        string          `gorm:"index" json:"category"`
	Status          ChallengeStatus `gorm:"type:varchar(16);not null;default:draft" json:"status"`
	StartsAt        time.Time       `json:"starts_at"`
	EndsAt          time.Time       `json:"ends_at"`
	EntryFeeCents   int64           `gorm:"not null;default:0" json:"entry_fee_cents"`
	RewardPoolCents int64           `gorm:"not null;default:0" json:"reward_pool_cents"`
	MaxParticipants int             `gorm:"not null;default:0" json:"max_participants"`
	CreatedByUserID uuid.UUID       `gorm:"type:uuid" json:"created_by_user_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`

	Tenant      *Tenant      `gorm:"foreignKey:TenantID" json:"-"`
	Enrollments []Enrollment `gorm:"foreignKey:ChallengeID" json:"-"`
}

func (Challenge) TableName() string {
	return "challenges"
}

type CreateChallengeRequest struct {
	Title           string    `json:"title" validate:"required,min=1,max=200"`
	Description     string    `json:"description" validate:"max=5000"`
	Category        string    `json:"category" validate:"max=50"`
	StartsAt        time.Time `json:"starts_at" validate:"required"`
	EndsAt          time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
	EntryFeeCents   int64     `json:"entry_fee_cents" validate:"min=0"`
	RewardPoolCents int64     `json:"reward_pool_cents" validate:"min=0"`
	MaxParticipants int       `json:"max_participants" validate:"min=0"`
}

type UpdateChallengeRequest struct {
	Title           *string          `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string          `json:"description,omitempty" validate:"omitempty,max=5000"`
	Category        *string          `json:"category,omitempty" validate:"omitempty,max=50"`
	Status          *ChallengeStatus `json:"status,omitempty" validate:"omitempty,oneof=draft active completed"`
	EndsAt          *time.Time       `json:"ends_at,omitempty"`
	RewardPoolCents *int64           `json:"reward_pool_cents,omitempty" validate:"omitempty,min=0"`
	MaxParticipants *int             `json:"max_participants,omitempty" validate:"omitempty,min=0"`
}

type SelectWinnersRequest struct {
	EnrollmentIDs []uuid.UUID `json:"enrollment_ids" validate:"required,min=1,dive,required"`
}
