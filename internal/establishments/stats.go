package establishments

import (
	"github.com/angelmondragon/hotelsuite/internal/stats"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
)

type Summary struct {
	Total         int                               `json:"total"`
	ByStatus      map[enums.EstablishmentStatus]int `json:"byStatus"`
	ByKind        map[string]int                    `json:"byKind"`
	ByCity        map[string]int                    `json:"byCity"`
	TotalCapacity int                               `json:"totalCapacity"`
}

func Stats(items []Establishment) Summary {
	return Summary{
		Total:         len(items),
		ByStatus:      stats.CountBy(items, func(e Establishment) enums.EstablishmentStatus { return e.Status }),
		ByKind:        stats.CountBy(items, func(e Establishment) string { return e.Kind }),
		ByCity:        stats.CountBy(items, func(e Establishment) string { return e.City }),
		TotalCapacity: stats.SumInt(items, func(e Establishment) int { return e.Capacity }),
	}
}
