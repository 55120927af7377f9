package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Om-mac/multiple-shop-analysis/internal/analytics"
	"github.com/Om-mac/multiple-shop-analysis/internal/mocks"
	"github.com/Om-mac/multiple-shop-analysis/internal/model"
	"github.com/Om-mac/multiple-shop-analysis/internal/testutil"
)

func newSales(t *testing.T) (*Sales, *mocks.SaleStore, *mocks.Recorder) {
	store := mocks.NewSaleStore(t)
	recorder := mocks.NewRecorder(t)
	s := NewSales(store, time.UTC, testutil.MakeNoopLogger(),
		WithSalesRecorder(recorder),
		WithSalesClock(func() time.Time { return fixedNow }),
	)
	return s, store, recorder
}

func validParams() model.SubmitSaleParams {
	return model.SubmitSaleParams{
		UserID:   3,
		Date:     "2026-10-19",
		ItemName: "Pen",
		Category: "Stationery",
		Quantity: " 3 ",
		Price:    "0.10",
	}
}

func TestSales_Today(t *testing.T) {
	late := time.Date(2026, 10, 19, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	s := NewSales(nil, tokyo, testutil.MakeNoopLogger(), WithSalesClock(func() time.Time { return late }))
	assert.Equal(t, civil.Date{Year: 2026, Month: time.October, Day: 20}, s.Today())

	s = NewSales(nil, nil, testutil.MakeNoopLogger())
	assert.Equal(t, civil.DateOf(time.Now()), s.Today())
}

func TestSales_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("total is exact", func(t *testing.T) {
		s, store, recorder := newSales(t)
		store.On("Create", mock.Anything, mock.MatchedBy(func(sale model.Sale) bool {
			return sale.Quantity == 3 &&
				sale.Total.Equal(decimal.RequireFromString("0.3")) &&
				sale.Date == civil.Date{Year: 2026, Month: time.October, Day: 19} &&
				sale.UserID == 3
		})).Return(func(_ context.Context, sale model.Sale) (model.Sale, error) {
			sale.ID = 10
			return sale, nil
		})
		recorder.On("SaleRecorded", "Stationery", mock.Anything).Return()

		sale, err := s.Submit(ctx, validParams())
		require.NoError(t, err)
		assert.Equal(t, int64(10), sale.ID)
		assert.Equal(t, "0.3", sale.Total.String())
	})

	t.Run("free items are allowed", func(t *testing.T) {
		s, store, recorder := newSales(t)
		p := validParams()
		p.Price = "0"
		store.On("Create", mock.Anything, mock.Anything).Return(model.Sale{ID: 1, Category: "Stationery", Total: decimal.Zero}, nil)
		recorder.On("SaleRecorded", "Stationery", mock.Anything).Return()

		_, err := s.Submit(ctx, p)
		require.NoError(t, err)
	})

	invalid := []struct {
		name   string
		mutate func(p *model.SubmitSaleParams)
		field  string
	}{
		{name: "missing item", mutate: func(p *model.SubmitSaleParams) { p.ItemName = "  " }, field: "item_name"},
		{name: "missing category", mutate: func(p *model.SubmitSaleParams) { p.Category = "" }, field: "category"},
		{name: "missing date", mutate: func(p *model.SubmitSaleParams) { p.Date = "" }, field: "date"},
		{name: "bad date", mutate: func(p *model.SubmitSaleParams) { p.Date = "19/10/2026" }, field: "date"},
		{name: "impossible date", mutate: func(p *model.SubmitSaleParams) { p.Date = "2026-02-30" }, field: "date"},
		{name: "non numeric quantity", mutate: func(p *model.SubmitSaleParams) { p.Quantity = "three" }, field: "quantity"},
		{name: "fractional quantity", mutate: func(p *model.SubmitSaleParams) { p.Quantity = "1.5" }, field: "quantity"},
		{name: "zero quantity", mutate: func(p *model.SubmitSaleParams) { p.Quantity = "0" }, field: "quantity"},
		{name: "negative quantity", mutate: func(p *model.SubmitSaleParams) { p.Quantity = "-2" }, field: "quantity"},
		{name: "non numeric price", mutate: func(p *model.SubmitSaleParams) { p.Price = "cheap" }, field: "price"},
		{name: "negative price", mutate: func(p *model.SubmitSaleParams) { p.Price = "-0.01" }, field: "price"},
		{name: "exponent price", mutate: func(p *model.SubmitSaleParams) { p.Price = "1e50000000" }, field: "price"},
		{name: "huge exponent price", mutate: func(p *model.SubmitSaleParams) { p.Price = "1e2147483647" }, field: "price"},
		{name: "signed price", mutate: func(p *model.SubmitSaleParams) { p.Price = "+5" }, field: "price"},
		{name: "overlong price", mutate: func(p *model.SubmitSaleParams) { p.Price = strings.Repeat("9", 21) }, field: "price"},
		{name: "overlong quantity", mutate: func(p *model.SubmitSaleParams) { p.Quantity = "1234567890" }, field: "quantity"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := newSales(t)
			p := validParams()
			tt.mutate(&p)

			_, err := s.Submit(ctx, p)
			var vErr *model.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		s, store, _ := newSales(t)
		store.On("Create", mock.Anything, mock.Anything).Return(model.Sale{}, errors.New("disk full"))

		_, err := s.Submit(ctx, validParams())
		require.Error(t, err)
		var vErr *model.ValidationError
		assert.False(t, errors.As(err, &vErr))
	})
}

func salesFixture() []model.Sale {
	mk := func(id int64, d civil.Date, item, cat, total string) model.Sale {
		return model.Sale{ID: id, UserID: 3, Date: d, ItemName: item, Category: cat, Quantity: 1,
			Price: decimal.RequireFromString(total), Total: decimal.RequireFromString(total)}
	}
	today := civil.DateOf(fixedNow)
	return []model.Sale{
		mk(1, today.AddDays(-1), "Pen", "Stationery", "100"),
		mk(2, today, "Mug", "Kitchen", "100"),
		mk(3, today.AddDays(-10), "Lamp", "Home", "40"),
	}
}

func TestSales_ListSales(t *testing.T) {
	s, store, _ := newSales(t)
	store.On("ListByUser", mock.Anything, int64(3)).Return(salesFixture(), nil)

	rows, err := s.ListSales(context.Background(), 3, analytics.TableFilter{Quick: analytics.Today})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].ID)
}

func TestSales_Analytics(t *testing.T) {
	s, store, _ := newSales(t)
	store.On("ListByUser", mock.Anything, int64(3)).Return(salesFixture(), nil)

	report, err := s.Analytics(context.Background(), 3, analytics.Selector{})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Summary.Count)
	assert.Equal(t, "240", report.Summary.Total.String())
}

func TestSales_DailySummary(t *testing.T) {
	s, store, _ := newSales(t)
	store.On("ListByUser", mock.Anything, int64(3)).Return(salesFixture(), nil)

	daily, err := s.DailySummary(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 1, daily.Count)
	assert.Equal(t, "Mug", daily.BestSelling)
	assert.Equal(t, analytics.TrendDown, daily.Trend)
}

func TestSales_StoreFailure(t *testing.T) {
	s, store, _ := newSales(t)
	store.On("ListByUser", mock.Anything, int64(3)).Return(nil, errors.New("boom"))

	_, err := s.ListSales(context.Background(), 3, analytics.TableFilter{})
	require.Error(t, err)
	_, err = s.Analytics(context.Background(), 3, analytics.Selector{})
	require.Error(t, err)
	_, err = s.DailySummary(context.Background(), 3)
	require.Error(t, err)
}
