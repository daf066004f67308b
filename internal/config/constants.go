// internal/config/constants.go
package config

const (
	AppName    = "ChallengeHub"
	AppVersion = "1.0.0"
)

const (
	DefaultServerPort                = ":8080"
	DefaultLogLevel                  = "info"
	DefaultFreePlanMonthlyChallenges = 3
	DefaultWhopAPIBaseURL            = "https://api.whop.com"
	DefaultWhopDomain                = "whop.com"
)

// Inbound identity headers. Each slice is an ordered fallback chain; the
// later entries are historical variants kept for backward compatibility.
var (
	CompanyIDHeaders    = []string{"x-whop-company-id", "x-whop-company", "whop-company-id"}
	UserIDHeaders       = []string{"x-whop-user-id", "x-whop-user", "whop-user-id"}
	ExperienceIDHeaders = []string{"x-whop-experience-id", "x-whop-experience"}
)

const (
	UserTokenHeader = "x-whop-user-token"
	UserTokenCookie = "whop_user_token"
	AppConfigCookie = "whop.app-config"

	// Company ids are canonically prefixed; the app-config cookie carries
	// the bare id in its "did" claim.
	CompanyIDPrefix = "biz_"
)

// Promo-code management goes straight to the platform REST API.
const PromoCodesEndpoint = "/api/v2/promo_codes"
