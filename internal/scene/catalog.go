package scene

import (
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	"github.com/angelmondragon/hotelsuite/pkg/geometry"
)

// DefaultScale applies to types without a catalog entry.
var DefaultScale = geometry.Vec3{X: 1, Y: 1, Z: 1}

// Asset is the model used to render a furniture type.
type Asset struct {
	Model string        `json:"model"`
	Scale geometry.Vec3 `json:"scale"`
}

// Catalog maps furniture types to their asset.
type Catalog map[enums.FurnitureType]Asset

func DefaultCatalog() Catalog {
	return Catalog{
		enums.FurnitureTypeTableSmall: {Model: "models/table-small.glb", Scale: geometry.Vec3{X: 0.8, Y: 0.8, Z: 0.8}},
		enums.FurnitureTypeTableLarge: {Model: "models/table-large.glb", Scale: geometry.Vec3{X: 1.2, Y: 1, Z: 1.2}},
		enums.FurnitureTypeTableRound: {Model: "models/table-round.glb", Scale: geometry.Vec3{X: 1, Y: 1, Z: 1}},
		enums.FurnitureTypeChair:      {Model: "models/chair.glb", Scale: geometry.Vec3{X: 0.6, Y: 0.6, Z: 0.6}},
		enums.FurnitureTypeArmchair:   {Model: "models/armchair.glb", Scale: geometry.Vec3{X: 0.9, Y: 0.9, Z: 0.9}},
		enums.FurnitureTypeSofa:       {Model: "models/sofa.glb", Scale: geometry.Vec3{X: 1.5, Y: 1, Z: 1}},
		enums.FurnitureTypeBarCounter: {Model: "models/bar-counter.glb", Scale: geometry.Vec3{X: 2, Y: 1.1, Z: 1}},
		enums.FurnitureTypePlant:      {Model: "models/plant.glb", Scale: geometry.Vec3{X: 0.5, Y: 0.5, Z: 0.5}},
	}
}

// Lookup returns the asset for t. Unknown types get no model and DefaultScale;
// the renderer draws a placeholder for them.
func (c Catalog) Lookup(t enums.FurnitureType) (Asset, bool) {
	if asset, ok := c[t]; ok {
		return asset, true
	}
	return Asset{Scale: DefaultScale}, false
}
