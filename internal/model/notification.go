package model

import (
	"time"

	"github.com/google/uuid"
)

// InternalNotification is one entry in the tenant's in-app notification feed.
type InternalNotification struct {
	NotificationID uuid.UUID `gorm:"type:uuid;primaryKey" json:"notification_id"`
	TenantID       uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Kind           string    `gorm:"type:varchar(32);not null" json:"kind"`
	Subject        string    `gorm:"not null" json:"subject"`
	Body           string    `json:"body"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (InternalNotification) TableName() string {
	return "internal_notifications"
}

const (
	NotificationEnrollment     = "enrollment"
	NotificationWinnerSelected = "winner_selected"
	NotificationPayment        = "payment"
)
