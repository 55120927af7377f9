package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Om-mac/multiple-shop-analysis/internal/analytics"
	"github.com/Om-mac/multiple-shop-analysis/internal/logger"
	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

// plainPrice is an unsigned decimal without exponent notation.
var plainPrice = regexp.MustCompile(`^\d+(\.\d+)?$`)

type Sales struct {
	saleStore model.SaleStore
	validate  *validator.Validate
	recorder  Recorder
	logger    *logger.Logger
	location  *time.Location
	now       func() time.Time
}

// SalesOption customises a Sales service.
type SalesOption func(*Sales)

// WithSalesRecorder sends sale events to r.
func WithSalesRecorder(r Recorder) SalesOption {
	return func(s *Sales) {
		s.recorder = r
	}
}

// WithSalesClock replaces time.Now when deciding which day is today.
func WithSalesClock(now func() time.Time) SalesOption {
	return func(s *Sales) {
		s.now = now
	}
}

func NewSales(saleStore model.SaleStore, location *time.Location, logger *logger.Logger, opts ...SalesOption) *Sales {
	if location == nil {
		location = time.Local
	}
	s := &Sales{
		saleStore: saleStore,
		validate:  newValidator(),
		recorder:  noopRecorder{},
		logger:    logger,
		location:  location,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today is the current calendar date in the configured timezone.
func (s *Sales) Today() civil.Date {
	return civil.DateOf(s.now().In(s.location))
}

// Submit validates raw form input and stores one sale with total = price * quantity.
func (s *Sales) Submit(ctx context.Context, params model.SubmitSaleParams) (model.Sale, error) {
	params.Date = strings.TrimSpace(params.Date)
	params.ItemName = strings.TrimSpace(params.ItemName)
	params.Category = strings.TrimSpace(params.Category)
	params.Quantity = strings.TrimSpace(params.Quantity)
	params.Price = strings.TrimSpace(params.Price)

	if err := s.validate.Struct(params); err != nil {
		return model.Sale{}, validationError(err)
	}

	date, err := civil.ParseDate(params.Date)
	if err != nil {
		return model.Sale{}, model.NewValidationError("date", "must be a date in YYYY-MM-DD format")
	}

	quantity, err := strconv.Atoi(params.Quantity)
	if err != nil || quantity <= 0 {
		return model.Sale{}, model.NewValidationError("quantity", "must be a positive whole number")
	}

	if !plainPrice.MatchString(params.Price) {
		return model.Sale{}, model.NewValidationError("price", "must be a non-negative number")
	}
	price, err := decimal.NewFromString(params.Price)
	if err != nil {
		return model.Sale{}, model.NewValidationError("price", "must be a non-negative number")
	}

	sale, err := s.saleStore.Create(ctx, model.Sale{
		UserID:   params.UserID,
		Date:     date,
		ItemName: params.ItemName,
		Category: params.Category,
		Quantity: quantity,
		Price:    price,
		Total:    price.Mul(decimal.NewFromInt(int64(quantity))),
	})
	if err != nil {
		s.logger.Error("Sales service: failed to create sale",
			"user_id", params.UserID,
			"error", err.Error())
		return model.Sale{}, fmt.Errorf("failed to create sale: %w", err)
	}

	s.recorder.SaleRecorded(sale.Category, sale.Total)
	s.logger.Info("Sales service: sale recorded",
		"user_id", sale.UserID,
		"sale_id", sale.ID,
		"total", sale.Total.String())

	return sale, nil
}

// ListSales returns the user's sales table rows after filter.
func (s *Sales) ListSales(ctx context.Context, userID int64, filter analytics.TableFilter) ([]model.Sale, error) {
	sales, err := s.list(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.ApplyTableFilter(sales, filter, s.Today()), nil
}

// Analytics aggregates the user's sales over the range picked by sel.
func (s *Sales) Analytics(ctx context.Context, userID int64, sel analytics.Selector) (analytics.Report, error) {
	sales, err := s.list(ctx, userID)
	if err != nil {
		return analytics.Report{}, err
	}
	return analytics.Analyze(sales, sel, s.Today()), nil
}

// DailySummary compares the user's sales today with yesterday.
func (s *Sales) DailySummary(ctx context.Context, userID int64) (analytics.Daily, error) {
	sales, err := s.list(ctx, userID)
	if err != nil {
		return analytics.Daily{}, err
	}
	return analytics.DailySummary(sales, s.Today()), nil
}

func (s *Sales) list(ctx context.Context, userID int64) ([]model.Sale, error) {
	sales, err := s.saleStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Sales service: failed to list sales",
			"user_id", userID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}
