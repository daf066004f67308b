package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the locally stored role flag of a user within its tenant.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// User is one platform end-user known to this app. WhopCompanyID is
// denormalized from the owning tenant at creation time; the two must always
// agree (see the consistency checks in the repositories). The row is created
// on the first authenticated request and its role is re-derived in place on
// every subsequent resolve, never re-created.
type User struct {
	UserID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	TenantID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_users_tenant_whop_user" json:"tenant_id"`
	WhopUserID       string         `gorm:"not null;uniqueIndex:uq_users_tenant_whop_user" json:"whop_user_id"`
	WhopCompanyID    *string        `json:"whop_company_id"`
	WhopExperienceID *string        `json:"whop_experience_id,omitempty"`
	Role             Role           `gorm:"type:varchar(16);not null;default:member" json:"role"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
