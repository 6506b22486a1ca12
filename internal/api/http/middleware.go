package http

import (
	"net/http"
	"strings"

	"clubhub-backend/internal/security"
)

type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Require validates the bearer token and injects the caller's user id into
// the request context. Refresh tokens are not accepted here.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeErrorMessage(w, http.StatusUnauthorized, "authorization token is not provided")
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			writeErrorMessage(w, http.StatusUnauthorized, "invalid token")
			return
		}
		if claims.Type != security.TokenTypeAccess {
			writeErrorMessage(w, http.StatusUnauthorized, "wrong token type")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithCallerID(r.Context(), claims.UserID)))
	})
}
