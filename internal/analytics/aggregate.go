package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

// Summary holds the totals of a set of sales. All values are zero for an empty set.
type Summary struct {
	Count   int
	Total   decimal.Decimal
	Average decimal.Decimal
}

// Summarize adds up the sale totals and their mean.
func Summarize(sales []model.Sale) Summary {
	sum := Summary{Total: decimal.Zero, Average: decimal.Zero}
	for _, s := range sales {
		sum.Total = sum.Total.Add(s.Total)
	}
	sum.Count = len(sales)
	if sum.Count > 0 {
		sum.Average = sum.Total.Div(decimal.NewFromInt(int64(sum.Count)))
	}
	return sum
}

// Group is the aggregate of all sales sharing one key.
type Group struct {
	Key   string
	Total decimal.Decimal
	Count int
}

// KeyFunc picks the grouping key of a sale.
type KeyFunc func(model.Sale) string

func ByCategory(s model.Sale) string { return s.Category }

func ByItem(s model.Sale) string { return s.ItemName }

// Rank groups sales by key and orders the groups by total, largest first.
// Groups with equal totals keep the order in which their key first appeared.
func Rank(sales []model.Sale, key KeyFunc) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)
	for _, s := range sales {
		k := key(s)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k, Total: decimal.Zero})
		}
		groups[i].Total = groups[i].Total.Add(s.Total)
		groups[i].Count++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total.GreaterThan(groups[j].Total)
	})
	return groups
}
