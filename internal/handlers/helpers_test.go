// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_challenge_hub/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// withIdentity injects a resolved identity context the way the identity
// middleware would, so handlers can be tested without the full resolution
// stack.
func withIdentity(identity *model.IdentityContext) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if identity == nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), model.IdentityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func adminIdentity(tenantID uuid.UUID) *model.IdentityContext {
	return &model.IdentityContext{
		TenantID:      tenantID,
		UserID:        uuid.New(),
		WhopUserID:    "user_admin",
		WhopCompanyID: "biz_ABC",
		Role:          model.ResolvedAdmin,
		AccessLevel:   model.AccessLevelAdmin,
		Capabilities:  model.CapabilitiesForRole(model.ResolvedAdmin),
	}
}

func memberIdentity(tenantID uuid.UUID) *model.IdentityContext {
	return &model.IdentityContext{
		TenantID:      tenantID,
		UserID:        uuid.New(),
		WhopUserID:    "user_member",
		WhopCompanyID: "biz_ABC",
		Role:          model.ResolvedMember,
		AccessLevel:   model.AccessLevelCustomer,
		Capabilities:  model.CapabilitiesForRole(model.ResolvedMember),
	}
}

func guestIdentity(tenantID uuid.UUID) *model.IdentityContext {
	return &model.IdentityContext{
		TenantID:      tenantID,
		UserID:        uuid.New(),
		WhopUserID:    "user_guest",
		WhopCompanyID: "biz_ABC",
		Role:          model.ResolvedGuest,
		AccessLevel:   model.AccessLevelNone,
		Capabilities:  model.CapabilitiesForRole(model.ResolvedGuest),
	}
}

func createRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeErrorResponse(t *testing.T, body []byte) model.APIErrorResponse {
	t.Helper()
	var errResp model.APIErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	return errResp
}
