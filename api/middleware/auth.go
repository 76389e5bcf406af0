package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/angelmondragon/hotelsuite/api/responses"
	pkgAuth "github.com/angelmondragon/hotelsuite/pkg/auth"
	"github.com/angelmondragon/hotelsuite/pkg/config"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the claims.
// Rejections use the "invalid token" wording the backend client treats as an
// expired session.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID.String())
			ctx = context.WithValue(ctx, ctxRole, string(claims.Role))
			ctx = context.WithValue(ctx, ctxCanEdit, claims.CanEditLayout())
			if claims.EstablishmentID != "" {
				ctx = context.WithValue(ctx, ctxEstablishmentID, claims.EstablishmentID)
			}

			if logg != nil {
				ctx = logg.WithUserID(ctx, claims.UserID.String())
				ctx = logg.WithActorRole(ctx, string(claims.Role))
				if claims.EstablishmentID != "" {
					ctx = logg.WithEstablishmentID(ctx, claims.EstablishmentID)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) string {
	token := strings.TrimSpace(header)
	if len(token) >= 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}
