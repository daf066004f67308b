package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tenant is one customer organization on the platform. A tenant is created
// lazily the first time a request arrives with an unseen company id; the
// unique index on whop_company_id is what makes concurrent first-requests
// safe (the loser re-queries on conflict).
type Tenant struct {
	TenantID      uuid.UUID      `gorm:"type:uuid;primaryKey" json:"tenant_id"`
	Name          string         `gorm:"not null" json:"name"`
	WhopCompanyID *string        `gorm:"uniqueIndex" json:"whop_company_id"`
	WhopProductID *string        `json:"whop_product_id,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Users []User `gorm:"foreignKey:TenantID" json:"-"`
}

func (Tenant) TableName() string {
	return "tenants"
}

// TenantAnalytics is the admin dashboard summary. The receipt fields are
// zero when the platform receipt listing is unavailable.
type TenantAnalytics struct {
	ChallengeCount  int64 `json:"challenge_count"`
	RevenueCents    int64 `json:"revenue_cents"`
	ReceiptCount    int   `json:"receipt_count"`
	ReceiptSumCents int64 `json:"receipt_sum_cents"`
}

// TenantResponse is the representation returned to clients.
type TenantResponse struct {
	TenantID      uuid.UUID `json:"tenant_id"`
	Name          string    `json:"name"`
	WhopCompanyID *string   `json:"whop_company_id"`
	CreatedAt     time.Time `json:"created_at"`
}

func (t *Tenant) ToResponse() TenantResponse {
	return TenantResponse{
		TenantID:      t.TenantID,
		Name:          t.Name,
		WhopCompanyID: t.WhopCompanyID,
		CreatedAt:     t.CreatedAt,
	}
}
