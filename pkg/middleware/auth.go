package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"booking-api/pkg/authorizer"
	"booking-api/pkg/utils"

	"go.uber.org/zap"
)

// SessionVerifier resolves a bearer token to an identity.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (*authorizer.Profile, error)
}

// Auth validates the bearer token against the external identity provider
// before the request touches any storage.
func Auth(verifier SessionVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			profile, err := verifier.VerifySession(r.Context(), token)
			if err != nil {
				if errors.Is(err, authorizer.ErrUnauthorized) {
					logger.Warn("Rejected session token", zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Invalid or expired token")
					return
				}
				logger.Error("Failed to verify session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			ctx := utils.SetUserContext(r.Context(), profile.ID, profile.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
