package controllers

import (
	"net/http"

	"github.com/angelmondragon/hotelsuite/api/responses"
	"github.com/angelmondragon/hotelsuite/api/validators"
	"github.com/angelmondragon/hotelsuite/internal/furniture"
	"github.com/angelmondragon/hotelsuite/internal/placement"
	"github.com/angelmondragon/hotelsuite/pkg/geometry"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

type dropRequest struct {
	ClientX float64                    `json:"clientX"`
	ClientY float64                    `json:"clientY"`
	Rect    geometry.Rect              `json:"rect"`
	Camera  geometry.PerspectiveCamera `json:"camera"`
	Data    map[string]string          `json:"data"`
}

type dropResponse struct {
	Placed bool            `json:"placed"`
	Item   *furniture.Item `json:"item,omitempty"`
}

// DropFurniture resolves a canvas drop to a floor point and places the dragged
// type there. Raycast misses and missing payloads answer placed=false.
func DropFurniture(rooms RoomProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ctx, ok := roomStore(w, r, rooms, logg)
		if !ok {
			return
		}

		var req dropRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item, placed := placement.NewResolver(store, logg).Drop(ctx, placement.DropEvent{
			ClientX: req.ClientX,
			ClientY: req.ClientY,
			Rect:    req.Rect,
			Camera:  req.Camera,
			Data:    placement.Payload(req.Data),
		})
		resp := dropResponse{Placed: placed}
		if placed {
			resp.Item = &item
			responses.WriteSuccessStatus(w, http.StatusCreated, resp)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}
