package analytics

import (
	"time"

	"cloud.google.com/go/civil"

	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

// QuickFilter is a named range relative to today.
type QuickFilter string

const (
	Today     QuickFilter = "today"
	ThisWeek  QuickFilter = "week"
	ThisMonth QuickFilter = "month"
)

// ParseQuickFilter recognises the query values accepted by the pages. Anything else is ignored.
func ParseQuickFilter(s string) (QuickFilter, bool) {
	switch q := QuickFilter(s); q {
	case Today, ThisWeek, ThisMonth:
		return q, true
	default:
		return "", false
	}
}

// Selector describes which dates a report covers.
// A quick filter wins over an explicit range, which needs both bounds.
type Selector struct {
	Quick QuickFilter
	Start civil.Date
	End   civil.Date
}

func (s Selector) hasExplicitRange() bool {
	return s.Start.IsValid() && s.End.IsValid()
}

// Range is an inclusive span of calendar dates.
type Range struct {
	Start civil.Date
	End   civil.Date
}

// Contains reports whether start <= d <= end.
func (r Range) Contains(d civil.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Resolve turns a selector into a concrete range. Without a quick filter or an
// explicit range it spans the earliest to the latest sale date, and reports
// false when there are no sales to span.
func Resolve(sel Selector, today civil.Date, sales []model.Sale) (Range, bool) {
	switch sel.Quick {
	case Today:
		return Range{Start: today, End: today}, true
	case ThisWeek:
		return Range{Start: startOfWeek(today), End: today}, true
	case ThisMonth:
		return Range{Start: civil.Date{Year: today.Year, Month: today.Month, Day: 1}, End: today}, true
	}

	if sel.hasExplicitRange() {
		return Range{Start: sel.Start, End: sel.End}, true
	}

	if len(sales) == 0 {
		return Range{}, false
	}

	r := Range{Start: sales[0].Date, End: sales[0].Date}
	for _, s := range sales[1:] {
		if s.Date.Before(r.Start) {
			r.Start = s.Date
		}
		if s.Date.After(r.End) {
			r.End = s.Date
		}
	}
	return r, true
}

// startOfWeek returns the Monday of the week containing d.
func startOfWeek(d civil.Date) civil.Date {
	offset := (int(d.In(time.UTC).Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// Filter keeps the sales inside r in their original order.
func Filter(sales []model.Sale, r Range) []model.Sale {
	out := make([]model.Sale, 0, len(sales))
	for _, s := range sales {
		if r.Contains(s.Date) {
			out = append(out, s)
		}
	}
	return out
}

// FilterByDate keeps the sales recorded on exactly d.
func FilterByDate(sales []model.Sale, d civil.Date) []model.Sale {
	return Filter(sales, Range{Start: d, End: d})
}

// TableFilter narrows the sales table to a quick filter or one day.
// A zero value keeps every row.
type TableFilter struct {
	Quick QuickFilter
	Day   civil.Date
}

// ApplyTableFilter returns the rows the sales table shows. A quick filter wins over a day.
func ApplyTableFilter(sales []model.Sale, f TableFilter, today civil.Date) []model.Sale {
	if f.Quick != "" {
		r, _ := Resolve(Selector{Quick: f.Quick}, today, sales)
		return Filter(sales, r)
	}
	if f.Day.IsValid() {
		return FilterByDate(sales, f.Day)
	}
	out := make([]model.Sale, len(sales))
	copy(out, sales)
	return out
}
