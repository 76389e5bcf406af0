package personnel

import (
	"github.com/angelmondragon/hotelsuite/internal/stats"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	"github.com/shopspring/decimal"
)

// Summary is the client-side overview of a personnel page.
type Summary struct {
	Total      int                           `json:"total"`
	ByStatus   map[enums.PersonnelStatus]int `json:"byStatus"`
	ByPosition map[string]int                `json:"byPosition"`
	Payroll    decimal.Decimal               `json:"payroll"`
}

// Stats projects the fetched members; payroll only counts active members.
func Stats(members []Member) Summary {
	return Summary{
		Total:      len(members),
		ByStatus:   stats.CountBy(members, func(m Member) enums.PersonnelStatus { return m.Status }),
		ByPosition: stats.CountBy(members, func(m Member) string { return m.Position }),
		Payroll: stats.Sum(members, func(m Member) decimal.Decimal {
			if m.Status != enums.PersonnelStatusActive {
				return decimal.Zero
			}
			return m.Salary
		}),
	}
}
