package model

import (
	"time"

	"github.com/google/uuid"
)

type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// WhopSubscription mirrors the tenant's subscription to this app as reported
// by the platform. Absent row means free plan.
type WhopSubscription struct {
	SubscriptionID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"subscription_id"`
	TenantID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"tenant_id"`
	Plan           Plan       `gorm:"type:varchar(16);not null;default:free" json:"plan"`
	ValidUntil     *time.Time `json:"valid_until,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (WhopSubscription) TableName() string {
	return "whop_subscriptions"
}

// MonthlyUsage counts challenges created per tenant per calendar month, used
// to enforce the free-plan limit. Month is "YYYY-MM".
type MonthlyUsage struct {
	UsageID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"usage_id"`
	TenantID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_usage_tenant_month" json:"tenant_id"`
	Month             string    `gorm:"type:varchar(7);not null;uniqueIndex:uq_usage_tenant_month" json:"month"`
	ChallengesCreated int       `gorm:"not null;default:0" json:"challenges_created"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (MonthlyUsage) TableName() string {
	return "monthly_usage"
}
