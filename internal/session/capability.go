package session

import (
	"net/http"

	"muebles-backend/internal/constants"
)

// RoleHeader is set by the auth layer in front of this service.
const RoleHeader = "X-User-Role"

// HasCapability is the whole permission model: a pure lookup with no
// storage behind it. ADMIN may do everything.
func HasCapability(role, action string) bool {
	if role == constants.RoleAdmin {
		return true
	}
	for _, a := range constants.RoleActions[role] {
		if a == action {
			return true
		}
	}
	return false
}

// RequireCapability rejects requests whose role header does not grant
// the action.
func RequireCapability(action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := r.Header.Get(RoleHeader)
			if !HasCapability(role, action) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
