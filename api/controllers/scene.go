package controllers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/angelmondragon/hotelsuite/api/responses"
	"github.com/angelmondragon/hotelsuite/internal/furniture"
	"github.com/angelmondragon/hotelsuite/internal/scene"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

// AssetLoader fetches the assets of a composed graph.
type AssetLoader interface {
	Load(ctx context.Context, graph scene.Graph, progress *scene.Progress) (map[string][]byte, error)
}

// SceneDeps groups what the scene endpoints compose and preload with.
type SceneDeps struct {
	Shell   scene.RoomShell
	Catalog scene.Catalog
	Loader  AssetLoader
	// SettleDelay is waited after the last fetch before the scene counts as loaded.
	SettleDelay time.Duration
}

func composeRoom(store furniture.Store, deps SceneDeps) scene.Graph {
	return scene.Compose(deps.Shell, deps.Catalog, furniture.State{
		Snapshot: store.Snapshot(),
		Selected: store.Selected(),
	})
}

// RoomScene returns the render graph of a room.
func RoomScene(rooms RoomProvider, deps SceneDeps, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, _, ok := roomStore(w, r, rooms, logg)
		if !ok {
			return
		}
		responses.WriteSuccess(w, composeRoom(store, deps))
	}
}

type preloadResponse struct {
	Progress scene.ProgressState `json:"progress"`
	Fetched  int                 `json:"fetched"`
	Failures []string            `json:"failures,omitempty"`
	SettleMS int64               `json:"settleMs"`
}

// PreloadScene fetches every asset of the room graph, waits the settle delay and
// reports the final progress. Failed assets are listed but do not fail the request.
func PreloadScene(rooms RoomProvider, deps SceneDeps, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, ctx, ok := roomStore(w, r, rooms, logg)
		if !ok {
			return
		}

		progress := scene.NewProgress(deps.SettleDelay)
		resp := preloadResponse{SettleMS: deps.SettleDelay.Milliseconds()}
		if deps.Loader != nil {
			assets, err := deps.Loader.Load(ctx, composeRoom(store, deps), progress)
			resp.Fetched = len(assets)
			for _, e := range multierr.Errors(err) {
				resp.Failures = append(resp.Failures, e.Error())
			}
		} else {
			progress.Register(0)
		}
		if err := progress.WaitLoaded(ctx); err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "scene did not settle"))
			return
		}
		resp.Progress = progress.State()
		responses.WriteSuccess(w, resp)
	}
}
