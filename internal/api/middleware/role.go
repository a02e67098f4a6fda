package middleware

import (
	"net/http"

	"github.com/Elmamis69/jmares-reservas/internal/api/handlers"
)

// RequireRoles rejects callers whose role claim is not in the allowed
// set. Must run after Auth.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := GetCaller(r.Context())
			if !ok || !allowed[caller.Role] {
				handlers.RespondForbidden(w, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
