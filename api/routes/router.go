package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/hotelsuite/api/controllers"
	"github.com/angelmondragon/hotelsuite/api/middleware"
	"github.com/angelmondragon/hotelsuite/internal/dashboard"
	"github.com/angelmondragon/hotelsuite/internal/reservations"
	"github.com/angelmondragon/hotelsuite/pkg/config"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisP controllers.Pinger,
	rooms controllers.RoomProvider,
	bookings reservations.Creator,
	sceneDeps controllers.SceneDeps,
	dashboards dashboard.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins...),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, map[string]controllers.Pinger{
			"database": dbP,
			"redis":    redisP,
		}, logg))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Get("/ping", controllers.PrivatePing())

		r.Route("/v1/rooms/{roomId}", func(r chi.Router) {
			r.Get("/", controllers.RoomState(rooms, logg))
			r.Get("/furniture", controllers.RoomFurniture(rooms, logg))
			r.Get("/furniture/{itemId}/actions", controllers.FurnitureActions(rooms, logg))
			r.Get("/scene", controllers.RoomScene(rooms, sceneDeps, logg))
			r.Post("/scene/preload", controllers.PreloadScene(rooms, sceneDeps, logg))

			// selection is view state and stays open to every role
			r.Put("/selection", controllers.SelectFurniture(rooms, logg))
			r.Delete("/selection", controllers.DeselectFurniture(rooms, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireLayoutEditor(logg))
				r.Post("/furniture", controllers.AddFurniture(rooms, logg))
				r.Post("/drops", controllers.DropFurniture(rooms, logg))
				r.Post("/load", controllers.LoadFurniture(rooms, logg))
				r.Patch("/furniture/{itemId}", controllers.EditFurniture(rooms, logg))
				r.Patch("/furniture/{itemId}/status", controllers.UpdateFurnitureStatus(rooms, logg))
				r.Post("/furniture/{itemId}/actions/{action}", controllers.ExecuteFurnitureAction(rooms, bookings, cfg.Dashboard.EstablishmentID, logg))
			})
		})

		r.With(middleware.RequireRole(logg, enums.MemberRoleSuperAdmin, enums.MemberRoleAdmin, enums.MemberRoleManager)).
			Get("/v1/dashboard/{establishmentId}", controllers.EstablishmentDashboard(dashboards, logg))
	})

	return r
}
