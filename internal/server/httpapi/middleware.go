package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mariusdev/taskapi/internal/common"
	"github.com/mariusdev/taskapi/internal/server/auth"
)

type ctxKey string

const usernameKey ctxKey = "username"

// requireAuth validates the bearer token and stores the authenticated
// username in the request context. Handlers behind it can assume
// usernameFromContext returns a validated identity.
func (s *HTTPServer) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				writeError(w, http.StatusUnauthorized, "token expired")
				return
			}
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), usernameKey, claims.Username)
		next(w, r.WithContext(ctx))
	})
}

func usernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}
