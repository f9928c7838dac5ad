package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/smdental/dentismo/pkg/utils"
)

type ContextKey string

const UsernameKey ContextKey = "username"

// AuthMiddleware gates record-keeping routes behind a bearer token and puts
// the verified username into the request context, so every downstream call
// carries the capability explicitly.
func AuthMiddleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				if errors.Is(err, ErrTokenExpired) {
					utils.RespondWithError(w, http.StatusUnauthorized, "Token expired")
					return
				}
				utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), UsernameKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UsernameFromContext returns the username injected by AuthMiddleware.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}
