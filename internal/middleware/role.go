package middleware

import (
	"net/http"

	"go_5_challenge_hub/internal/model"
	"go_5_challenge_hub/internal/webutil"
)

// RequireAdmin gates a route on the canManage capability.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ic, err := GetIdentity(r.Context())
		if err != nil {
			webutil.HandleError(w, err)
			return
		}
		if !ic.Capabilities.CanManage {
			GetLogger(r.Context()).Warn("Admin route denied",
				"whop_user_id", ic.WhopUserID,
				"role", ic.Role,
			)
			webutil.HandleError(w, model.NewAppError(
				"ADMIN_REQUIRED",
				"This action requires an admin role.",
				"",
				model.ErrForbidden,
			))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireParticipant gates a route on the canParticipate capability, which
// excludes guests.
func RequireParticipant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ic, err := GetIdentity(r.Context())
		if err != nil {
			webutil.HandleError(w, err)
			return
		}
		if !ic.Capabilities.CanParticipate {
			GetLogger(r.Context()).Warn("Participant route denied",
				"whop_user_id", ic.WhopUserID,
				"role", ic.Role,
			)
			webutil.HandleError(w, model.NewAppError(
				"MEMBERSHIP_REQUIRED",
				"This action requires an active membership.",
				"",
				model.ErrForbidden,
			))
			return
		}
		next.ServeHTTP(w, r)
	})
}
