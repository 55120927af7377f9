package model

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// SaleStore defines persistence operations for sales.
type SaleStore interface {
	Create(ctx context.Context, sale Sale) (Sale, error)
	// ListByUser returns the user's sales in insertion order.
	ListByUser(ctx context.Context, userID int64) ([]Sale, error)
}

// Sale represents one recorded transaction owned by a single user.
// Total is always Price * Quantity, fixed when the sale is created.
type Sale struct {
	ID       int64
	UserID   int64
	Date     civil.Date
	ItemName string
	Category string
	Quantity int
	Price    decimal.Decimal
	Total    decimal.Decimal
}

// SubmitSaleParams carries raw form input for a new sale.
type SubmitSaleParams struct {
	UserID   int64  `form:"-" validate:"required,gt=0"`
	Date     string `form:"date" validate:"required"`
	ItemName string `form:"item_name" validate:"required,max=255"`
	Category string `form:"category" validate:"required,max=255"`
	Quantity string `form:"quantity" validate:"required,max=9"`
	Price    string `form:"price" validate:"required,max=20"`
}
