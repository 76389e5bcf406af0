package scene

import (
	"github.com/angelmondragon/hotelsuite/internal/furniture"
	"github.com/angelmondragon/hotelsuite/internal/tablestatus"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	"github.com/angelmondragon/hotelsuite/pkg/geometry"
)

// Node is the render instance of one furniture item.
type Node struct {
	ID       string              `json:"id"`
	Type     enums.FurnitureType `json:"type"`
	Name     string              `json:"name,omitempty"`
	Model    string              `json:"model,omitempty"`
	Position geometry.Vec3       `json:"position"`
	Rotation geometry.Euler      `json:"rotation"`
	Scale    geometry.Vec3       `json:"scale"`
	Status   enums.TableStatus   `json:"status"`
	Badge    enums.BadgeColor    `json:"badge"`
	// ShowBadge is set for table types only.
	ShowBadge bool                 `json:"showBadge"`
	Selected  bool                 `json:"selected"`
	Actions   []tablestatus.Action `json:"actions,omitempty"`
}

// Graph is a read-only view of the room at one store version.
type Graph struct {
	RoomID   string  `json:"roomId"`
	Version  uint64  `json:"version"`
	Shell    []Panel `json:"shell"`
	Nodes    []Node  `json:"nodes"`
	Selected string  `json:"selected,omitempty"`
	// Assets lists every distinct model and texture the graph needs.
	Assets []string `json:"assets"`
}

// Compose builds the graph for a store state. Only the selected node carries
// its status actions.
func Compose(shell RoomShell, catalog Catalog, state furniture.State) Graph {
	graph := Graph{
		RoomID:   state.Snapshot.RoomID,
		Version:  state.Snapshot.Version,
		Shell:    shell.Panels(),
		Nodes:    make([]Node, 0, len(state.Snapshot.Items)),
		Selected: state.Selected,
	}

	seen := map[string]bool{}
	addAsset := func(path string) {
		if path == "" || seen[path] {
			return
		}
		seen[path] = true
		graph.Assets = append(graph.Assets, path)
	}
	for _, texture := range shell.Textures() {
		addAsset(texture)
	}

	for _, item := range state.Snapshot.Items {
		asset, _ := catalog.Lookup(item.Type)
		node := Node{
			ID:        item.ID,
			Type:      item.Type,
			Name:      item.Name,
			Model:     asset.Model,
			Position:  item.Position,
			Rotation:  item.Rotation,
			Scale:     asset.Scale,
			Status:    item.Status,
			Badge:     tablestatus.BadgeColor(item.Status),
			ShowBadge: item.Type.IsTable(),
			Selected:  item.ID == state.Selected,
		}
		if node.Selected {
			node.Actions = tablestatus.Actions(item.Status)
		}
		graph.Nodes = append(graph.Nodes, node)
		addAsset(asset.Model)
	}
	return graph
}
