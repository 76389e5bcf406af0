package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/hotelsuite/api/middleware"
	"github.com/angelmondragon/hotelsuite/api/responses"
	"github.com/angelmondragon/hotelsuite/api/validators"
	"github.com/angelmondragon/hotelsuite/internal/dashboard"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

// EstablishmentDashboard serves the last cached overview, refreshing it when
// nothing is cached or ?refresh=true is passed. A token scoped to another
// establishment is rejected.
func EstablishmentDashboard(svc dashboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		establishmentID := strings.TrimSpace(chi.URLParam(r, "establishmentId"))
		if scoped := middleware.EstablishmentIDFromContext(ctx); scoped != "" && scoped != establishmentID {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "establishment not accessible"))
			return
		}
		if logg != nil {
			ctx = logg.WithEstablishmentID(ctx, establishmentID)
		}

		force, err := validators.ParseQueryBool(r, "refresh", false)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if !force {
			ov, ok, err := svc.Cached(ctx, establishmentID)
			if err != nil && logg != nil {
				logg.Warn(logg.WithField(ctx, "error", err.Error()), "dashboard cache read failed")
			}
			if ok {
				responses.WriteSuccess(w, ov)
				return
			}
		}

		ov, err := svc.Refresh(ctx, establishmentID)
		if err != nil && !pkgerrors.IsCode(err, pkgerrors.CodeDependency) {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, ov)
	}
}
