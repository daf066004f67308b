package model

import "github.com/google/uuid"

// ContextKey is the type for values this app stores on a request context.
type ContextKey string

const (
	IdentityContextKey ContextKey = "identityContext"
)

// AccessLevel is the answer of the platform access oracle.
type AccessLevel string

const (
	AccessLevelAdmin    AccessLevel = "admin"
	AccessLevelCustomer AccessLevel = "customer"
	AccessLevelNone     AccessLevel = "no_access"
)

// ResolvedRole is the role decided for one request. Unlike Role it includes
// guest, which is never persisted on a User row.
type ResolvedRole string

const (
	ResolvedAdmin  ResolvedRole = "admin"
	ResolvedMember ResolvedRole = "member"
	ResolvedGuest  ResolvedRole = "guest"
)

// ExtractedIdentity is the best-effort output of the request header/cookie
// extraction. Fields are facts only, no decisions; each is "" when every
// fallback failed.
type ExtractedIdentity struct {
	UserID       string
	CompanyID    string
	ExperienceID string
	UserToken    string
	Referer      string
}

// Capabilities is derived purely from the resolved role.
type Capabilities struct {
	CanCreate        bool `json:"can_create"`
	CanManage        bool `json:"can_manage"`
	CanParticipate   bool `json:"can_participate"`
	CanViewAnalytics bool `json:"can_view_analytics"`
}

// CapabilitiesForRole is the fixed role-to-capability table.
func CapabilitiesForRole(role ResolvedRole) Capabilities {
	switch role {
	case ResolvedAdmin:
		return Capabilities{CanCreate: true, CanManage: true, CanParticipate: true, CanViewAnalytics: true}
	case ResolvedMember:
		return Capabilities{CanParticipate: true}
	default:
		return Capabilities{}
	}
}

// IdentityContext is the per-request resolution result. It is built once by
// the identity middleware, carried on the request context and discarded with
// it; it is never cached across requests.
type IdentityContext struct {
	TenantID         uuid.UUID    `json:"tenant_id"`
	UserID           uuid.UUID    `json:"user_id"`
	WhopUserID       string       `json:"whop_user_id"`
	WhopCompanyID    string       `json:"whop_company_id"`
	WhopExperienceID string       `json:"whop_experience_id,omitempty"`
	Role             ResolvedRole `json:"role"`
	AccessLevel      AccessLevel  `json:"access_level"`
	Capabilities     Capabilities `json:"capabilities"`
}

func (ic *IdentityContext) IsAdmin() bool {
	return ic.Role == ResolvedAdmin
}

func (ic *IdentityContext) CanParticipate() bool {
	return ic.Capabilities.CanParticipate
}
