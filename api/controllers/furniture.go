package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/hotelsuite/api/responses"
	"github.com/angelmondragon/hotelsuite/api/validators"
	"github.com/angelmondragon/hotelsuite/internal/furniture"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/geometry"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

// RoomProvider resolves the furniture store of a room.
type RoomProvider interface {
	Get(ctx context.Context, roomID string) (furniture.Store, error)
}

type roomView struct {
	Snapshot furniture.Snapshot `json:"snapshot"`
	Selected string             `json:"selected,omitempty"`
}

func viewOf(store furniture.Store) roomView {
	return roomView{Snapshot: store.Snapshot(), Selected: store.Selected()}
}

// roomStore loads the store named by the {roomId} path parameter, writing the
// error response itself when it cannot.
func roomStore(w http.ResponseWriter, r *http.Request, rooms RoomProvider, logg *logger.Logger) (furniture.Store, context.Context, bool) {
	ctx := r.Context()
	if rooms == nil {
		responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "room registry unavailable"))
		return nil, ctx, false
	}
	roomID := strings.TrimSpace(chi.URLParam(r, "roomId"))
	if logg != nil && roomID != "" {
		ctx = logg.WithRoomID(ctx, roomID)
	}
	store, err := rooms.Get(ctx, roomID)
	if err != nil {
		responses.WriteError(ctx, logg, w, err)
		return nil, ctx, false
	}
	return store, ctx, true
}

// RoomFurniture lists the items of a room. This is the collection endpoint read
// by LoadFromDatabase of remote stores.
func RoomFurniture(rooms RoomProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, _, ok := roomStore(w, r, rooms, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, store.Items())
	}
}

// RoomState returns the current snapshot and selection of a room.
func RoomState(rooms RoomProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, _, ok := roomStore(w, r, rooms, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, viewOf(store))
	}
}

func AddFurniture(rooms RoomProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ctx, ok := roomStore(w, r, rooms, logg)
		if !ok {
			return
		}

		var req furniture.Partial
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		item := store.AddFurniture(ctx, req)
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// LoadFurniture replaces the room's items from ?source=storage (default) or
// ?source=database.
func LoadFurniture(rooms RoomProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ctx, ok := roomStore(w, r, rooms, logg)
		if !ok {
			return
		}

		source, err := validators.ParseQueryChoice(r, "source", "storage", "database")
		if err == nil {
			if source == "database" {
				err = store.LoadFromDatabase(ctx)
			} else {
				err = store.LoadFromStorage(ctx)
			}
		}
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, viewOf(store))
	}
}

type selectRequest struct {
	ID string `json:"id" validate:"required"`
}

// SelectFurniture moves the selection cursor. Unknown ids are accepted, the
// cursor is not validated against the collection.
func SelectFurniture(rooms RoomProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ctx, ok := roomStore(w, r, rooms, logg)
		if !ok {
			return
		}

		var req selectRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		store.SetSelected(validators.SanitizeString(req.ID, 64))
		responses.WriteSuccess(w, viewOf(store))
	}
}

func DeselectFurniture(rooms RoomProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, _, ok := roomStore(w, r, rooms, logg)
		if !ok {
			return
		}
		store.Deselect()
		responses.WriteSuccess(w, viewOf(store))
	}
}

type statusRequest struct {
	Status          string  `json:"status" validate:"required"`
	ExpectedVersion *uint64 `json:"expectedVersion,omitempty"`
}

type mutationResponse struct {
	Updated bool            `json:"updated"`
	Item    *furniture.Item `json:"item,omitempty"`
	Version uint64          `json:"version"`
}

// UpdateFurnitureStatus overwrites an item's status without a transition check.
// An unknown item is reported with updated=false rather than an error. When
// expectedVersion is sent the write only applies at that version.
func UpdateFurnitureStatus(rooms RoomProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ctx, ok := roomStore(w, r, rooms, logg)
		if !ok {
			return
		}

		var req statusRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		status := enums.NormalizeTableStatus(req.Status)
		if !status.IsValid() {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid table status").
				WithDetails(map[string]any{"field": "status", "allowed": enums.TableStatuses()}))
			return
		}

		itemID := chi.URLParam(r, "itemId")
		if req.ExpectedVersion != nil {
			if err := store.CompareAndSetStatus(ctx, itemID, status, *req.ExpectedVersion); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			writeMutation(w, store, itemID, true)
			return
		}

		updated := store.UpdateTableStatus(ctx, itemID, status)
		writeMutation(w, store, itemID, updated)
	}
}

type editRequest struct {
	Name     *string         `json:"name,omitempty" validate:"omitempty,max=120"`
	Position *geometry.Vec3  `json:"position,omitempty"`
	Rotation *geometry.Euler `json:"rotation,omitempty"`
}

// EditFurniture renames and/or moves an item. Unknown ids are not errors.
func EditFurniture(rooms RoomProvider, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ctx, ok := roomStore(w, r, rooms, logg)
		if !ok {
			return
		}

		var req editRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if req.Name == nil && req.Position == nil && req.Rotation == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "nothing to update"))
			return
		}

		itemID := chi.URLParam(r, "itemId")
		current, found := store.Item(itemID)
		updated := found
		if found && req.Name != nil {
			updated = store.Rename(ctx, itemID, validators.SanitizeString(*req.Name, 120)) && updated
		}
		if found && (req.Position != nil || req.Rotation != nil) {
			position := current.Position
			if req.Position != nil {
				position = *req.Position
			}
			updated = store.Move(ctx, itemID, position, req.Rotation) && updated
		}
		writeMutation(w, store, itemID, updated)
	}
}

func writeMutation(w http.ResponseWriter, store furniture.Store, itemID string, updated bool) {
	resp := mutationResponse{Updated: updated, Version: store.Version()}
	if item, ok := store.Item(itemID); ok && updated {
		resp.Item = &item
	}
	responses.WriteSuccess(w, resp)
}
