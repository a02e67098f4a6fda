// Package middleware holds the shared HTTP middleware: authentication,
// role checks, rate limiting and request metrics.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Elmamis69/jmares-reservas/internal/api/handlers"
)

type ctxKey int

const callerKey ctxKey = iota

// Caller is the authenticated principal extracted from the access token.
type Caller struct {
	UserID string
	Email  string
	Role   string
}

// Auth validates the Bearer access token and stores the caller in the
// request context. The secret must match the one used at login.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, "unauthorized")
				return
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				handlers.RespondUnauthorized(w, "unauthorized")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				handlers.RespondUnauthorized(w, "unauthorized")
				return
			}

			caller := Caller{}
			if sub, ok := claims["sub"].(string); ok {
				caller.UserID = sub
			}
			if email, ok := claims["email"].(string); ok {
				caller.Email = email
			}
			if role, ok := claims["role"].(string); ok {
				caller.Role = role
			}

			ctx := context.WithValue(r.Context(), callerKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetCaller returns the authenticated caller stored by Auth.
func GetCaller(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(callerKey).(Caller)
	return caller, ok
}
