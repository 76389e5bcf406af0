package middleware

import (
	"net/http"
	"slices"

	"github.com/angelmondragon/hotelsuite/api/responses"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

// RequireRole admits the listed roles only. Dashboards are closed to staff.
func RequireRole(logg *logger.Logger, roles ...enums.MemberRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := enums.MemberRole(RoleFromContext(r.Context()))
			if !slices.Contains(roles, role) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "role not allowed").
					WithDetails(map[string]any{"role": role, "allowed": roles}))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireLayoutEditor admits only roles allowed to mutate the room layout.
func RequireLayoutEditor(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !CanEditLayoutFromContext(r.Context()) {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "layout editing not allowed"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
