package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentStatus string

const (
	EnrollmentPendingPayment EnrollmentStatus = "pending_payment"
	EnrollmentActive         EnrollmentStatus = "active"
	EnrollmentCompleted      EnrollmentStatus = "completed"
	EnrollmentWinner         EnrollmentStatus = "winner"
)

// Enrollment is one member's participation in one challenge. Paid challenges
// enroll as pending_payment and are activated by the payment webhook.
type Enrollment struct {
	EnrollmentID  uuid.UUID        `gorm:"type:uuid;primaryKey" json:"enrollment_id"`
	TenantID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"tenant_id"`
	ChallengeID   uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_challenge_user" json:"challenge_id"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_challenge_user" json:"user_id"`
	Status        EnrollmentStatus `gorm:"type:varchar(20);not null;default:active" json:"status"`
	RewardGranted bool             `gorm:"not null;default:false" json:"reward_granted"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`

	Checkins []Checkin `gorm:"foreignKey:EnrollmentID" json:"-"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// Checkin is one proof-of-progress entry on an enrollment.
type Checkin struct {
	CheckinID    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"checkin_id"`
	TenantID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	EnrollmentID uuid.UUID      `gorm:"type:uuid;not null;index" json:"enrollment_id"`
	Note         string         `json:"note"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Proof *Proof `gorm:"foreignKey:CheckinID" json:"proof,omitempty"`
}

func (Checkin) TableName() string {
	return "checkins"
}

// Proof is an optional attachment (image URL or text) backing a check-in.
type Proof struct {
	ProofID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"proof_id"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	CheckinID uuid.UUID `gorm:"type:uuid;not null;index" json:"checkin_id"`
	Kind      string    `gorm:"type:varchar(16);not null" json:"kind"` // "text" or "image_url"
	Content   string    `gorm:"not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (Proof) TableName() string {
	return "proofs"
}

type CheckinRequest struct {
	Note         string `json:"note" validate:"max=2000"`
	ProofKind    string `json:"proof_kind,omitempty" validate:"omitempty,oneof=text image_url"`
	ProofContent string `json:"proof_content,omitempty" validate:"omitempty,max=4000"`
}
