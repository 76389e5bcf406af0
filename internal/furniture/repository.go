package furniture

import (
	"context"

	"github.com/angelmondragon/hotelsuite/pkg/db"
	"github.com/angelmondragon/hotelsuite/pkg/db/models"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	pkgerrors "github.com/angelmondragon/hotelsuite/pkg/errors"
	"github.com/angelmondragon/hotelsuite/pkg/geometry"
	"gorm.io/gorm"
)

// Repository persists room snapshots as rows of furniture_items.
type Repository struct {
	db *db.Client
}

func NewRepository(client *db.Client) *Repository {
	return &Repository{db: client}
}

func (r *Repository) Name() string { return "database" }

// Load returns the room's items in their saved order.
func (r *Repository) Load(ctx context.Context, roomID string) (Snapshot, error) {
	var rows []models.FurnitureItem
	if err := r.db.DB().WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("sort_order ASC").
		Find(&rows).Error; err != nil {
		return Snapshot{}, pkgerrors.FromDatabase(err, "querying furniture items")
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, itemFromModel(row))
	}
	return Snapshot{RoomID: roomID, Items: items}, nil
}

// Save replaces every row of the room inside one transaction.
func (r *Repository) Save(ctx context.Context, snapshot Snapshot) error {
	return r.db.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", snapshot.RoomID).Delete(&models.FurnitureItem{}).Error; err != nil {
			return pkgerrors.FromDatabase(err, "clearing furniture items")
		}
		if len(snapshot.Items) == 0 {
			return nil
		}
		rows := make([]models.FurnitureItem, 0, len(snapshot.Items))
		for i, item := range snapshot.Items {
			rows = append(rows, modelFromItem(snapshot.RoomID, i, item))
		}
		if err := tx.Create(&rows).Error; err != nil {
			return pkgerrors.FromDatabase(err, "inserting furniture items")
		}
		return nil
	})
}

func itemFromModel(row models.FurnitureItem) Item {
	return Item{
		ID:       row.ID,
		Type:     enums.FurnitureType(row.Type),
		Position: geometry.Vec3{X: row.PosX, Y: row.PosY, Z: row.PosZ},
		Rotation: geometry.Euler{X: row.RotX, Y: row.RotY, Z: row.RotZ},
		Name:     row.Name,
		Status:   enums.TableStatus(row.Status),
	}
}

func modelFromItem(roomID string, order int, item Item) models.FurnitureItem {
	return models.FurnitureItem{
		ID:        item.ID,
		RoomID:    roomID,
		Type:      string(item.Type),
		PosX:      item.Position.X,
		PosY:      item.Position.Y,
		PosZ:      item.Position.Z,
		RotX:      item.Rotation.X,
		RotY:      item.Rotation.Y,
		RotZ:      item.Rotation.Z,
		Name:      item.Name,
		Status:    string(item.Status),
		SortOrder: order,
	}
}
