package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gisuarez/expenso/internal/user"
)

type contextKey struct{}

var userKey contextKey

// Authenticator verifies the bearer token and resolves the current user,
// preferring the username in the claims and falling back to the user id.
func (h *Handler) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		claims, err := h.tokens.Parse(token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		u, err := h.users.Resolve(r.Context(), claims.Username, claims.UserID())
		if err != nil {
			http.Error(w, "unknown user", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
	})
}

// UserFromContext returns the user stored by Authenticator.
func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userKey).(*user.User)
	return u, ok
}

// WithUser is a test helper for handlers that expect an authenticated user.
func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}
