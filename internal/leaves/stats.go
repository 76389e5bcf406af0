package leaves

import (
	"github.com/angelmondragon/hotelsuite/internal/stats"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
)

type Summary struct {
	Total        int                       `json:"total"`
	ByStatus     map[enums.LeaveStatus]int `json:"byStatus"`
	ByKind       map[string]int            `json:"byKind"`
	Pending      int                       `json:"pending"`
	ApprovedDays int                       `json:"approvedDays"`
}

func Stats(items []Request) Summary {
	byStatus := stats.CountBy(items, func(r Request) enums.LeaveStatus { return r.Status })
	return Summary{
		Total:    len(items),
		ByStatus: byStatus,
		ByKind:   stats.CountBy(items, func(r Request) string { return r.Kind }),
		Pending:  byStatus[enums.LeaveStatusPending],
		ApprovedDays: stats.SumInt(items, func(r Request) int {
			if r.Status != enums.LeaveStatusApproved {
				return 0
			}
			return r.Days
		}),
	}
}
