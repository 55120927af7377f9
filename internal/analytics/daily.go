package analytics

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

// Trend compares today's revenue with yesterday's.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// NoBestSeller is reported when nothing was sold today.
const NoBestSeller = "N/A"

// Daily is the quick summary of today's trading.
type Daily struct {
	Count           int
	BestSelling     string
	Revenue         decimal.Decimal
	PreviousRevenue decimal.Decimal
	Trend           Trend
}

// DailySummary counts today's sales and compares revenue against yesterday.
// The trend is up only when today is strictly ahead; a tie reads as down.
func DailySummary(sales []model.Sale, today civil.Date) Daily {
	todays := FilterByDate(sales, today)
	yesterdays := FilterByDate(sales, today.AddDays(-1))

	daily := Daily{
		Count:           len(todays),
		BestSelling:     bestByCount(todays),
		Revenue:         Summarize(todays).Total,
		PreviousRevenue: Summarize(yesterdays).Total,
		Trend:           TrendDown,
	}
	if daily.Revenue.GreaterThan(daily.PreviousRevenue) {
		daily.Trend = TrendUp
	}

	return daily
}

// bestByCount picks the item sold in the most transactions, first seen wins ties.
func bestByCount(sales []model.Sale) string {
	best, bestCount := NoBestSeller, 0
	counts := make(map[string]int)
	for _, s := range sales {
		counts[s.ItemName]++
	}
	for _, s := range sales {
		if c := counts[s.ItemName]; c > bestCount {
			best, bestCount = s.ItemName, c
		}
	}
	return best
}
