package revenue

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/hotelsuite/internal/stats"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
)

// MonthTotal is the revenue booked in one calendar month, keyed "YYYY-MM".
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

type Summary struct {
	Total      decimal.Decimal                           `json:"total"`
	Count      int                                       `json:"count"`
	ByCategory map[enums.RevenueCategory]decimal.Decimal `json:"byCategory"`
	ByMonth    []MonthTotal                              `json:"byMonth"`
	Average    decimal.Decimal                           `json:"average"`
}

// Stats sums a page of revenue lines. Entries without a date are left out of
// ByMonth but still count towards the totals.
func Stats(items []Entry) Summary {
	amount := func(e Entry) decimal.Decimal { return e.Amount }
	total := stats.Sum(items, amount)

	dated := make([]Entry, 0, len(items))
	for _, e := range items {
		if e.Date != nil {
			dated = append(dated, e)
		}
	}
	months := stats.SumBy(dated, func(e Entry) string { return e.Date.Format("2006-01") }, amount)
	byMonth := make([]MonthTotal, 0, len(months))
	for month, sum := range months {
		byMonth = append(byMonth, MonthTotal{Month: month, Total: sum})
	}
	sort.Slice(byMonth, func(i, j int) bool { return byMonth[i].Month < byMonth[j].Month })

	average := decimal.Zero
	if len(items) > 0 {
		average = total.Div(decimal.NewFromInt(int64(len(items)))).Round(2)
	}

	return Summary{
		Total:      total,
		Count:      len(items),
		ByCategory: stats.SumBy(items, func(e Entry) enums.RevenueCategory { return e.Category }, amount),
		ByMonth:    byMonth,
		Average:    average,
	}
}
