package view

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Om-mac/multiple-shop-analysis/internal/analytics"
	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

// SaleRow is one line of the sales table.
type SaleRow struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	ItemName string `json:"item_name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Total    string `json:"total"`
}

func Rows(sales []model.Sale) []SaleRow {
	rows := make([]SaleRow, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, SaleRow{
			ID:       s.ID,
			Date:     s.Date.String(),
			ItemName: s.ItemName,
			Category: s.Category,
			Quantity: s.Quantity,
			Price:    s.Price.StringFixed(2),
			Total:    s.Total.StringFixed(2),
		})
	}
	return rows
}

// ChartDataset is the bar series of one category, aligned with ChartView.Labels.
type ChartDataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

type ChartPoint struct {
	Date     string  `json:"date"`
	Total    float64 `json:"total"`
	Category string  `json:"category"`
}

// ChartView is ready to hand to a client-side charting library.
type ChartView struct {
	Title    string         `json:"title"`
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
	Points   []ChartPoint   `json:"points"`
}

func ChartTitle(r analytics.Range) string {
	return fmt.Sprintf("Sales Analysis (%s to %s)", r.Start, r.End)
}

func Chart(chart analytics.Chart, r analytics.Range) ChartView {
	v := ChartView{
		Title:    ChartTitle(r),
		Labels:   make([]string, 0, len(chart.Dates)),
		Datasets: make([]ChartDataset, 0, len(chart.Categories)),
		Points:   make([]ChartPoint, 0, len(chart.Points)),
	}
	for _, d := range chart.Dates {
		v.Labels = append(v.Labels, d.String())
	}
	for i, category := range chart.Categories {
		data := make([]float64, 0, len(chart.Totals[i]))
		for _, total := range chart.Totals[i] {
			data = append(data, total.InexactFloat64())
		}
		v.Datasets = append(v.Datasets, ChartDataset{Label: category, Data: data})
	}
	for _, p := range chart.Points {
		v.Points = append(v.Points, ChartPoint{Date: p.Date.String(), Total: p.Total.InexactFloat64(), Category: p.Category})
	}
	return v
}

type GroupView struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// AnalyticsView is the analytics page and /api/analytics payload.
type AnalyticsView struct {
	TotalSales  float64     `json:"total_sales"`
	AvgSales    float64     `json:"avg_sales"`
	TopCategory *string     `json:"top_category"`
	TopItem     *string     `json:"top_item"`
	StartDate   string      `json:"start_date,omitempty"`
	EndDate     string      `json:"end_date,omitempty"`
	Categories  []GroupView `json:"categories"`
	Items       []GroupView `json:"items"`
	Chart       *ChartView  `json:"chart"`
}

func Analytics(report analytics.Report) AnalyticsView {
	v := AnalyticsView{
		TotalSales: report.Summary.Total.InexactFloat64(),
		AvgSales:   report.Summary.Average.Round(2).InexactFloat64(),
		Categories: groups(report.Categories),
		Items:      groups(report.Items),
	}
	if report.HasRange {
		v.StartDate = report.Range.Start.String()
		v.EndDate = report.Range.End.String()
	}
	if top, ok := report.TopCategory(); ok {
		v.TopCategory = &top
	}
	if top, ok := report.TopItem(); ok {
		v.TopItem = &top
	}
	if !report.Chart.Empty() {
		chart := Chart(report.Chart, report.Range)
		v.Chart = &chart
	}
	return v
}

func groups(in []analytics.Group) []GroupView {
	out := make([]GroupView, 0, len(in))
	for _, g := range in {
		out = append(out, GroupView{Name: g.Key, Total: g.Total.InexactFloat64(), Count: g.Count})
	}
	return out
}

// SummaryView is the /api/sales-summary payload.
type SummaryView struct {
	TotalSales  int     `json:"total_sales"`
	BestSelling string  `json:"best_selling"`
	Revenue     float64 `json:"revenue"`
	Trend       string  `json:"trend"`
}

func Summary(d analytics.Daily) SummaryView {
	return SummaryView{
		TotalSales:  d.Count,
		BestSelling: d.BestSelling,
		Revenue:     d.Revenue.InexactFloat64(),
		Trend:       string(d.Trend),
	}
}

// Money formats a float for display with two decimals.
func Money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
