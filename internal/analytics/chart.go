package analytics

import (
	"sort"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

// Point is one sale projected for plotting.
type Point struct {
	Date     civil.Date
	Total    decimal.Decimal
	Category string
}

// Chart is a bar series coloured by category.
// Totals[c][d] is the sum for Categories[c] on Dates[d].
type Chart struct {
	Dates      []civil.Date
	Categories []string
	Totals     [][]decimal.Decimal
	Points     []Point
}

// Empty reports whether there is nothing to plot.
func (c Chart) Empty() bool {
	return len(c.Points) == 0
}

// BuildChart stacks sale totals per date and category. Dates ascend and
// categories follow their first appearance.
func BuildChart(sales []model.Sale) Chart {
	chart := Chart{
		Dates:      make([]civil.Date, 0),
		Categories: make([]string, 0),
		Totals:     make([][]decimal.Decimal, 0),
		Points:     make([]Point, 0, len(sales)),
	}

	seenDate := make(map[civil.Date]bool)
	catIndex := make(map[string]int)
	for _, s := range sales {
		chart.Points = append(chart.Points, Point{Date: s.Date, Total: s.Total, Category: s.Category})
		if !seenDate[s.Date] {
			seenDate[s.Date] = true
			chart.Dates = append(chart.Dates, s.Date)
		}
		if _, ok := catIndex[s.Category]; !ok {
			catIndex[s.Category] = len(chart.Categories)
			chart.Categories = append(chart.Categories, s.Category)
		}
	}

	sort.Slice(chart.Dates, func(i, j int) bool {
		return chart.Dates[i].Before(chart.Dates[j])
	})
	dateIndex := make(map[civil.Date]int, len(chart.Dates))
	for i, d := range chart.Dates {
		dateIndex[d] = i
	}

	for range chart.Categories {
		row := make([]decimal.Decimal, len(chart.Dates))
		for i := range row {
			row[i] = decimal.Zero
		}
		chart.Totals = append(chart.Totals, row)
	}
	for _, s := range sales {
		c, d := catIndex[s.Category], dateIndex[s.Date]
		chart.Totals[c][d] = chart.Totals[c][d].Add(s.Total)
	}

	return chart
}
