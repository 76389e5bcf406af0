package reports

import (
	"github.com/angelmondragon/hotelsuite/internal/stats"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
)

type Summary struct {
	Total    int                        `json:"total"`
	ByStatus map[enums.ReportStatus]int `json:"byStatus"`
	ByKind   map[string]int             `json:"byKind"`
	// Open counts reports still waiting for a decision.
	Open int `json:"open"`
}

func Stats(items []Report) Summary {
	return Summary{
		Total:    len(items),
		ByStatus: stats.CountBy(items, func(r Report) enums.ReportStatus { return r.Status }),
		ByKind:   stats.CountBy(items, func(r Report) string { return r.Kind }),
		Open: stats.Count(items, func(r Report) bool {
			return r.Status == enums.ReportStatusDraft || r.Status == enums.ReportStatusSubmitted
		}),
	}
}
