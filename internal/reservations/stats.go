package reservations

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/hotelsuite/internal/stats"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
)

type Summary struct {
	Total    int                             `json:"total"`
	ByStatus map[enums.ReservationStatus]int `json:"byStatus"`
	// Covers is the number of expected guests over non-cancelled bookings.
	Covers  int             `json:"covers"`
	Revenue decimal.Decimal `json:"revenue"`
}

func Stats(items []Reservation) Summary {
	live := func(r Reservation) bool {
		return r.Status != enums.ReservationStatusCancelled
	}
	return Summary{
		Total:    len(items),
		ByStatus: stats.CountBy(items, func(r Reservation) enums.ReservationStatus { return r.Status }),
		Covers: stats.SumInt(items, func(r Reservation) int {
			if !live(r) {
				return 0
			}
			return r.PartySize
		}),
		Revenue: stats.Sum(items, func(r Reservation) decimal.Decimal {
			if !live(r) {
				return decimal.Zero
			}
			return r.Amount
		}),
	}
}
