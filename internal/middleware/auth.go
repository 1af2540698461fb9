// Package middleware provides HTTP middleware: session authentication,
// CORS, and request logging.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pokevault/pokedex-service/internal/auth"
)

// TokenCookieName is the cookie carrying the session token
const TokenCookieName = "token"

type contextKey string

const userIDKey contextKey = "userID"

// AuthMiddleware gates protected routes behind a valid session token
type AuthMiddleware struct {
	tokens *auth.TokenManager
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handler extracts the token cookie, verifies it, and injects the user id
// into the request context. Requests without a valid token are rejected
// with 401 before reaching any handler.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(TokenCookieName)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		userID, err := m.tokens.Verify(cookie.Value)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated user id injected by the
// auth middleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

func writeJSONError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
