package analytics

import (
	"cloud.google.com/go/civil"

	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

// Report is everything the analytics page shows for one selector.
type Report struct {
	Range      Range
	HasRange   bool
	Sales      []model.Sale
	Summary    Summary
	Categories []Group
	Items      []Group
	Chart      Chart
}

// TopCategory returns the best selling category by revenue.
func (r Report) TopCategory() (string, bool) {
	if len(r.Categories) == 0 {
		return "", false
	}
	return r.Categories[0].Key, true
}

// TopItem returns the best selling item by revenue.
func (r Report) TopItem() (string, bool) {
	if len(r.Items) == 0 {
		return "", false
	}
	return r.Items[0].Key, true
}

// Analyze resolves the selector and aggregates the matching sales.
// An empty selection yields a zero report, never an error.
func Analyze(sales []model.Sale, sel Selector, today civil.Date) Report {
	r, ok := Resolve(sel, today, sales)
	report := Report{Range: r, HasRange: ok}

	if ok {
		report.Sales = Filter(sales, r)
	} else {
		report.Sales = make([]model.Sale, 0)
	}

	report.Summary = Summarize(report.Sales)
	report.Categories = Rank(report.Sales, ByCategory)
	report.Items = Rank(report.Sales, ByItem)
	report.Chart = BuildChart(report.Sales)

	return report
}
