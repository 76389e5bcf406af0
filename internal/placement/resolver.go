package placement

import (
	"context"
	"strings"

	"github.com/angelmondragon/hotelsuite/internal/furniture"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	"github.com/angelmondragon/hotelsuite/pkg/geometry"
	"github.com/angelmondragon/hotelsuite/pkg/logger"
)

// DragFormat is the drag-payload key carrying the furniture type.
const DragFormat = "furniture/type"

// DataTransfer is the drag-payload channel of a drop.
type DataTransfer interface {
	GetData(format string) string
}

// Payload is a DataTransfer backed by a map.
type Payload map[string]string

func (p Payload) GetData(format string) string {
	return p[format]
}

// DropEvent is a drop on the canvas in client coordinates.
type DropEvent struct {
	ClientX float64
	ClientY float64
	Rect    geometry.Rect
	Camera  geometry.PerspectiveCamera
	Data    DataTransfer
}

// Adder is the store surface the resolver writes to.
type Adder interface {
	AddFurniture(ctx context.Context, partial furniture.Partial) furniture.Item
}

// Resolver turns drops into furniture placed on the floor.
type Resolver struct {
	store Adder
	floor geometry.Plane
	logg  *logger.Logger
}

func NewResolver(store Adder, logg *logger.Logger) *Resolver {
	return &Resolver{store: store, floor: geometry.GroundPlane, logg: logg}
}

// Locate returns the floor point under the pointer. ok is false when the rect is
// empty, the ray is parallel to the floor or the floor is behind the camera.
func (r *Resolver) Locate(ev DropEvent) (geometry.Vec3, bool) {
	ndc, err := geometry.NormalizePointer(ev.ClientX, ev.ClientY, ev.Rect)
	if err != nil {
		return geometry.Vec3{}, false
	}
	hit, ok := ev.Camera.RayFromNDC(ndc).IntersectPlane(r.floor)
	if !ok {
		return geometry.Vec3{}, false
	}
	return geometry.Vec3{X: hit.X, Y: 0, Z: hit.Z}, true
}

// Drop places a new item at the floor point under the pointer. Missing payloads
// and raycast misses are silent no-ops.
func (r *Resolver) Drop(ctx context.Context, ev DropEvent) (furniture.Item, bool) {
	var kind string
	if ev.Data != nil {
		kind = strings.TrimSpace(ev.Data.GetData(DragFormat))
	}
	if kind == "" {
		r.debug(ctx, "drop without furniture type, ignoring")
		return furniture.Item{}, false
	}

	point, ok := r.Locate(ev)
	if !ok {
		r.debug(ctx, "drop missed the floor, ignoring")
		return furniture.Item{}, false
	}

	item := r.store.AddFurniture(ctx, furniture.Partial{
		Type:     enums.FurnitureType(kind),
		Position: point,
	})
	return item, true
}

func (r *Resolver) debug(ctx context.Context, msg string) {
	if r.logg != nil {
		r.logg.Debug(ctx, msg)
	}
}
