package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/hotelsuite/api/middleware"
	"github.com/angelmondragon/hotelsuite/api/responses"
	"github.com/angelmondragon/hotelsuite/api/validators"
	"github.com/angelmondragon/hotelsuite/internal/reservations"
	"github.com/angelmondragon/hotelsuite/internal/tablestatus"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

type actionsResponse struct {
	Status  string               `json:"status"`
	Badge   string               `json:"badge"`
	Actions []tablestatus.Action `json:"actions"`
}

// FurnitureActions lists the status actions offered for an item's current state.
func FurnitureActions(rooms RoomProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ctx, ok := roomStore(w, r, rooms, logg)
		if !ok {
			return
		}

		item, found := store.Item(chi.URLParam(r, "itemId"))
		if !found {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "furniture item not found"))
			return
		}
		actions := tablestatus.Actions(item.Status)
		if actions == nil {
			actions = []tablestatus.Action{}
		}
		responses.WriteSuccess(w, actionsResponse{
			Status:  item.Status.String(),
			Badge:   string(tablestatus.BadgeColor(item.Status)),
			Actions: actions,
		})
	}
}

type executeRequest struct {
	Reservation *tablestatus.ReservationForm `json:"reservation,omitempty"`
}

// ExecuteFurnitureAction runs {action} on an item. The reservation action reads
// its booking from the body and is filed for the caller's establishment, or the
// default one when the token carries none.
func ExecuteFurnitureAction(rooms RoomProvider, bookings reservations.Creator, defaultEstablishment string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ctx, ok := roomStore(w, r, rooms, logg)
		if !ok {
			return
		}

		var req executeRequest
		if r.ContentLength != 0 {
			if err := validators.DecodeJSONBody(r, &req); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
		}

		establishmentID := middleware.EstablishmentIDFromContext(ctx)
		if establishmentID == "" {
			establishmentID = defaultEstablishment
		}
		machine, err := tablestatus.NewMachine(tablestatus.MachineParams{
			Store:           store,
			Reservations:    bookings,
			EstablishmentID: establishmentID,
			Logger:          logg,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		res, err := machine.Execute(ctx, chi.URLParam(r, "itemId"), chi.URLParam(r, "action"), req.Reservation)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, res)
	}
}
