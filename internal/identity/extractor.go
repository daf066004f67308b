// Package identity extracts the caller's platform identity from inbound
// request headers and cookies. Extraction is best effort and never fails:
// every field of the result is independently "" when all of its fallbacks
// miss. Deciding what a missing field means is the caller's job.
package identity

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"go_5_challenge_hub/internal/config"
	"go_5_challenge_hub/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// dashboardReferer matches the company id inside a platform dashboard URL,
// e.g. https://whop.com/dashboard/biz_AbC123/apps/... .
var dashboardReferer = regexp.MustCompile(`/dashboard/(biz_[A-Za-z0-9]+)`)

// Extract pulls {userId, companyId, experienceId, userToken} out of the
// request. Per-field fallback order:
//
//	companyId:    header variants -> app-config cookie "did" claim -> Referer
//	userId:       header variants
//	experienceId: header variants
//	userToken:    x-whop-user-token header -> whop_user_token cookie -> Bearer
func Extract(r *http.Request) model.ExtractedIdentity {
	ext := model.ExtractedIdentity{
		UserID:       firstHeader(r, config.UserIDHeaders),
		CompanyID:    firstHeader(r, config.CompanyIDHeaders),
		ExperienceID: firstHeader(r, config.ExperienceIDHeaders),
		UserToken:    extractUserToken(r),
		Referer:      r.Referer(),
	}

	if ext.CompanyID == "" {
		ext.CompanyID = companyIDFromAppConfigCookie(r)
	}
	if ext.CompanyID == "" {
		ext.CompanyID = companyIDFromReferer(r)
	}

	return ext
}

func firstHeader(r *http.Request, names []string) string {
	for _, name := range names {
		if v := strings.TrimSpace(r.Header.Get(name)); v != "" {
			return v
		}
	}
	return ""
}

func extractUserToken(r *http.Request) string {
	if v := strings.TrimSpace(r.Header.Get(config.UserTokenHeader)); v != "" {
		return v
	}
	if c, err := r.Cookie(config.UserTokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// companyIDFromAppConfigCookie reads the "did" claim out of the platform
// app-config cookie. The cookie is JWT-shaped but unsigned from our point of
// view; the claim is data, not an authentication credential, so an
// unverified parse is fine here.
func companyIDFromAppConfigCookie(r *http.Request) string {
	c, err := r.Cookie(config.AppConfigCookie)
	if err != nil || c.Value == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(c.Value, claims); err != nil {
		// Historical cookies are not always three well-formed segments;
		// fall back to decoding the payload segment by hand.
		claims = decodePayloadSegment(c.Value)
		if claims == nil {
			return ""
		}
	}

	did, _ := claims["did"].(string)
	did = strings.TrimSpace(did)
	if did == "" {
		return ""
	}
	if !strings.HasPrefix(did, config.CompanyIDPrefix) {
		did = config.CompanyIDPrefix + did
	}
	return did
}

func decodePayloadSegment(value string) jwt.MapClaims {
	segments := strings.Split(value, ".")
	payload := segments[0]
	if len(segments) >= 2 {
		payload = segments[1]
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil
	}
	claims := jwt.MapClaims{}
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil
	}
	return claims
}

func companyIDFromReferer(r *http.Request) string {
	m := dashboardReferer.FindStringSubmatch(r.Referer())
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
