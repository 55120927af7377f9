package analytics

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

func date(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	if err != nil {
		t.Fatalf("bad fixture date %q: %v", s, err)
	}
	return d
}

func sale(t *testing.T, id int64, day, item, category string, qty int, price string) model.Sale {
	t.Helper()
	p := decimal.RequireFromString(price)
	return model.Sale{
		ID:       id,
		UserID:   1,
		Date:     date(t, day),
		ItemName: item,
		Category: category,
		Quantity: qty,
		Price:    p,
		Total:    p.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func ids(sales []model.Sale) []int64 {
	out := make([]int64, 0, len(sales))
	for _, s := range sales {
		out = append(out, s.ID)
	}
	return out
}
