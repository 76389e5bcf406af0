package equipment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/hotelsuite/internal/stats"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
)

type Summary struct {
	Total          int                           `json:"total"`
	ByStatus       map[enums.EquipmentStatus]int `json:"byStatus"`
	ByCategory     map[string]int                `json:"byCategory"`
	MaintenanceDue int                           `json:"maintenanceDue"`
	InventoryValue decimal.Decimal               `json:"inventoryValue"`
}

// Stats summarises a page of equipment; now decides which maintenance dates are due.
func Stats(items []Item, now time.Time) Summary {
	return Summary{
		Total:      len(items),
		ByStatus:   stats.CountBy(items, func(i Item) enums.EquipmentStatus { return i.Status }),
		ByCategory: stats.CountBy(items, func(i Item) string { return i.Category }),
		MaintenanceDue: stats.Count(items, func(i Item) bool {
			return i.Status != enums.EquipmentStatusRetired && i.MaintenanceDue(now)
		}),
		InventoryValue: stats.Sum(items, func(i Item) decimal.Decimal { return i.PurchasePrice }),
	}
}
