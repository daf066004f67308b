package middleware

import (
	"context"
	"net/http"

	"go_5_challenge_hub/internal/identity"
	"go_5_challenge_hub/internal/model"
	"go_5_challenge_hub/internal/webutil"
)

// IdentityResolver turns the extracted request identity into a resolved
// tenant/role context. Implemented by service.IdentityService; declared here
// so the middleware does not depend on the service package.
type IdentityResolver interface {
	Resolve(ctx context.Context, ext model.ExtractedIdentity) (*model.IdentityContext, error)
}

// IdentityContextMiddleware is the single entry point for tenant and role
// resolution. It extracts the caller identity, resolves it once, and stores
// the result on the request context. Requests without a resolvable company
// or user id are rejected here so handlers never see a half-built context.
func IdentityContextMiddleware(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetLogger(r.Context())

			ext := identity.Extract(r)
			if ext.CompanyID == "" {
				logger.Warn("Identity resolution failed: no company id in headers, cookie or referer")
				webutil.HandleError(w, model.NewAppError(
					"COMPANY_CONTEXT_REQUIRED",
					"No company context could be resolved from the request.",
					"",
					model.ErrInvalidInput,
				))
				return
			}
			if ext.UserID == "" && ext.UserToken == "" {
				logger.Warn("Identity resolution failed: no user id or user token", "company_id", ext.CompanyID)
				webutil.HandleError(w, model.NewAppError(
					"UNAUTHENTICATED",
					"No user identity could be resolved from the request.",
					"",
					model.ErrUnauthorized,
				))
				return
			}

			identityCtx, err := resolver.Resolve(r.Context(), ext)
			if err != nil {
				logger.Error("Identity resolution failed", "company_id", ext.CompanyID, "error", err)
				webutil.HandleError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), model.IdentityContextKey, identityCtx)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity returns the resolved identity context set by
// IdentityContextMiddleware.
func GetIdentity(ctx context.Context) (*model.IdentityContext, error) {
	value, ok := ctx.Value(model.IdentityContextKey).(*model.IdentityContext)
	if !ok {
		return nil, model.NewAppError(
			"INTERNAL_SERVER_ERROR",
			"Identity context missing from request.",
			"",
			model.ErrInternalServer,
		)
	}
	return value, nil
}
