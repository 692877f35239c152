package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tracewell/covid-social-be/internal/auth"
	"github.com/tracewell/covid-social-be/internal/http/respond"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenVerifier verifies a bearer token and returns the user id it was
// issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

var _ TokenVerifier = (*auth.TokenManager)(nil)

// RequireAuth verifies the request's bearer token and attaches the
// authenticated user id to the request context. Requests without a valid
// token are rejected with 401 before reaching the handler.
func RequireAuth(tokens TokenVerifier, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			respond.Error(w, http.StatusUnauthorized, "access denied, no token provided")
			return
		}
		userID, err := tokens.Verify(token)
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, "invalid token")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated user id attached by RequireAuth.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// bearerToken reads the token from the X-Auth-Token header, falling back to
// a standard Authorization: Bearer header.
func bearerToken(r *http.Request) string {
	if token := strings.TrimSpace(r.Header.Get("X-Auth-Token")); token != "" {
		return token
	}
	header := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}
