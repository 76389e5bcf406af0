package furniture

import (
	"strings"

	"github.com/angelmondragon/hotelsuite/pkg/enums"
	"github.com/angelmondragon/hotelsuite/pkg/geometry"
)

// Item is one placed piece of furniture.
type Item struct {
	ID       string              `json:"id"`
	Type     enums.FurnitureType `json:"type"`
	Position geometry.Vec3       `json:"position"`
	Rotation geometry.Euler      `json:"rotation"`
	Name     string              `json:"name,omitempty"`
	Status   enums.TableStatus   `json:"status"`
}

// Partial is the input accepted by AddFurniture.
type Partial struct {
	Type     enums.FurnitureType `json:"type" validate:"required"`
	Position geometry.Vec3       `json:"position"`
	Rotation *geometry.Euler     `json:"rotation,omitempty"`
	Name     string              `json:"name,omitempty" validate:"max=120"`
}

// Snapshot is the persistence unit: every item of a room at one version.
type Snapshot struct {
	RoomID  string `json:"roomId"`
	Version uint64 `json:"version"`
	Items   []Item `json:"items"`
}

// dedupe keeps the last occurrence of every id, in first-seen order, and
// reports how many earlier duplicates were dropped.
func dedupe(items []Item) ([]Item, int) {
	index := make(map[string]int, len(items))
	out := make([]Item, 0, len(items))
	dropped := 0
	for _, item := range items {
		if pos, ok := index[item.ID]; ok {
			out[pos] = item
			dropped++
			continue
		}
		index[item.ID] = len(out)
		out = append(out, item)
	}
	return out, dropped
}

// normalizeStatuses maps stored status strings onto the closed enum. An empty
// status is a fresh table.
func normalizeStatuses(items []Item) {
	for i := range items {
		if strings.TrimSpace(string(items[i].Status)) == "" {
			items[i].Status = enums.TableStatusFree
			continue
		}
		items[i].Status = enums.NormalizeTableStatus(string(items[i].Status))
	}
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
