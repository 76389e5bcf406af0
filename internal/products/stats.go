package products

import (
	"github.com/angelmondragon/hotelsuite/internal/stats"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	"github.com/shopspring/decimal"
)

type Summary struct {
	Total      int                         `json:"total"`
	ByStatus   map[enums.ProductStatus]int `json:"byStatus"`
	ByCategory map[string]int              `json:"byCategory"`
	LowStock   int                         `json:"lowStock"`
	StockValue decimal.Decimal             `json:"stockValue"`
}

// Stats projects the fetched products. Stock value is price times stock.
func Stats(items []Product) Summary {
	return Summary{
		Total:      len(items),
		ByStatus:   stats.CountBy(items, func(p Product) enums.ProductStatus { return p.Status }),
		ByCategory: stats.CountBy(items, func(p Product) string { return p.Category }),
		LowStock:   stats.Count(items, Product.LowStock),
		StockValue: stats.Sum(items, func(p Product) decimal.Decimal {
			return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
		}),
	}
}
