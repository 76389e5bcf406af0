package furniture

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/angelmondragon/hotelsuite/internal/backend"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	"github.com/angelmondragon/hotelsuite/pkg/geometry"
)

const remoteResource = "furniture"

// RemoteSource lists a room's furniture from the REST backend.
type RemoteSource struct {
	client backend.Doer
}

func NewRemoteSource(client backend.Doer) *RemoteSource {
	return &RemoteSource{client: client}
}

// RemotePath is the collection endpoint for roomID.
func RemotePath(roomID string) string {
	return fmt.Sprintf("/api/v1/rooms/%s/furniture", url.PathEscape(roomID))
}

func (r *RemoteSource) Load(ctx context.Context, roomID string) (Snapshot, error) {
	var payload []remoteItem
	if err := r.client.Get(ctx, remoteResource, RemotePath(roomID), &payload); err != nil {
		return Snapshot{}, err
	}

	items := make([]Item, 0, len(payload))
	for i, raw := range payload {
		item, err := raw.toItem()
		if err != nil {
			return Snapshot{}, fmt.Errorf("furniture item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return Snapshot{RoomID: roomID, Items: items}, nil
}

// remoteItem is the wire shape of the collection endpoint. Ids may be numbers,
// positions and rotations may be objects or [x, y, z] arrays.
type remoteItem struct {
	ID       json.RawMessage `json:"id"`
	Type     string          `json:"type"`
	Position json.RawMessage `json:"position"`
	Rotation json.RawMessage `json:"rotation"`
	Name     string          `json:"name"`
	Status   string          `json:"status"`
}

// toItem applies the per-field policy: id and type are required, position and
// rotation default to the origin, a missing status is LIBRE and any other status
// is normalised.
func (r remoteItem) toItem() (Item, error) {
	id, err := decodeID(r.ID)
	if err != nil {
		return Item{}, err
	}
	kind := strings.TrimSpace(r.Type)
	if kind == "" {
		return Item{}, fmt.Errorf("missing type")
	}
	pos, err := decodeTriple(r.Position)
	if err != nil {
		return Item{}, fmt.Errorf("position: %w", err)
	}
	rot, err := decodeTriple(r.Rotation)
	if err != nil {
		return Item{}, fmt.Errorf("rotation: %w", err)
	}

	status := enums.TableStatusFree
	if strings.TrimSpace(r.Status) != "" {
		status = enums.NormalizeTableStatus(r.Status)
	}

	return Item{
		ID:       id,
		Type:     enums.FurnitureType(kind),
		Position: geometry.Vec3{X: pos[0], Y: pos[1], Z: pos[2]},
		Rotation: geometry.Euler{X: rot[0], Y: rot[1], Z: rot[2]},
		Name:     strings.TrimSpace(r.Name),
		Status:   status,
	}, nil
}

func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return "", fmt.Errorf("missing id")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.TrimSpace(s) == "" {
			return "", fmt.Errorf("missing id")
		}
		return strings.TrimSpace(s), nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("invalid id %s", string(raw))
	}
	return n.String(), nil
}

func decodeTriple(raw json.RawMessage) ([3]float64, error) {
	var out [3]float64
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return out, nil
	}
	if raw[0] == '[' {
		var list []float64
		if err := json.Unmarshal(raw, &list); err != nil {
			return out, err
		}
		if len(list) != 3 {
			return out, fmt.Errorf("expected 3 components, got %d", len(list))
		}
		copy(out[:], list)
		return out, nil
	}
	var obj struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
		Z float64 `json:"z"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return out, err
	}
	return [3]float64{obj.X, obj.Y, obj.Z}, nil
}
