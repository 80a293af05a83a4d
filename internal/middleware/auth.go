package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Cian99/secure-web-project-recipe-sharing/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// UsernameKey is the context key for storing the authenticated username.
const UsernameKey contextKey = "username"

// SessionCookie is the cookie carrying the session token for browser
// clients. API clients may send Authorization: Bearer instead.
const SessionCookie = "session"

// GetUsername extracts the authenticated username from the context.
// Returns empty string if the request was not authenticated.
func GetUsername(ctx context.Context) string {
	username, _ := ctx.Value(UsernameKey).(string)
	return username
}

// tokenFromRequest pulls the session token from the Authorization header
// or, failing that, the session cookie.
func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

// RequireAuth returns middleware that rejects requests without a valid
// session token and injects the username into the request context.
// Handlers downstream read the identity from the context exactly once,
// at the boundary, and pass it to stores as an explicit argument.
func RequireAuth(jwtManager *auth.JWTManager, onReject http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				onReject(w, r)
				return
			}

			claims, err := jwtManager.Validate(token)
			if err != nil {
				onReject(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), UsernameKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
