package models

import (
	"time"
)

// FurnitureItem is one placed object of a room layout.
type FurnitureItem struct {
	ID        string    `gorm:"column:id;type:varchar(64);primaryKey"`
	RoomID    string    `gorm:"column:room_id;type:varchar(64);not null;index:furniture_items_room_id_idx;index:furniture_items_room_order_idx,priority:1"`
	Type      string    `gorm:"column:type;type:varchar(64);not null"`
	PosX      float64   `gorm:"column:pos_x;not null;default:0"`
	PosY      float64   `gorm:"column:pos_y;not null;default:0"`
	PosZ      float64   `gorm:"column:pos_z;not null;default:0"`
	RotX      float64   `gorm:"column:rot_x;not null;default:0"`
	RotY      float64   `gorm:"column:rot_y;not null;default:0"`
	RotZ      float64   `gorm:"column:rot_z;not null;default:0"`
	Name      string    `gorm:"column:name;type:text"`
	Status    string    `gorm:"column:status;type:varchar(32);not null;default:'LIBRE'"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0;index:furniture_items_room_order_idx,priority:2"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (FurnitureItem) TableName() string { return "furniture_items" }
