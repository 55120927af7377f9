package sqldb

import (
	"context"
	"fmt"

	"github.com/Om-mac/multiple-shop-analysis/internal/model"
)

var _ model.SaleStore = (*SaleRepository)(nil)

type SaleRepository struct {
	db *Connection
}

func NewSaleRepository(db *Connection) *SaleRepository {
	return &SaleRepository{
		db: db,
	}
}

func (r *SaleRepository) Create(ctx context.Context, sale model.Sale) (model.Sale, error) {
	query := r.db.Rebind(`
		INSERT INTO sales (user_id, date, item_name, category, quantity, price, total)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	err := r.db.QueryRowContext(ctx, query,
		sale.UserID, sale.Date.String(), sale.ItemName, sale.Category,
		sale.Quantity, sale.Price.String(), sale.Total.String(),
	).Scan(&sale.ID)
	if err != nil {
		return model.Sale{}, fmt.Errorf("failed to create sale: %w", err)
	}

	return sale, nil
}

func (r *SaleRepository) ListByUser(ctx context.Context, userID int64) ([]model.Sale, error) {
	query := r.db.Rebind(`
		SELECT id, user_id, date, item_name, category, quantity, price, total
		FROM sales
		WHERE user_id = ?
		ORDER BY id ASC`)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	sales := make([]model.Sale, 0)
	for rows.Next() {
		var (
			sale model.Sale
			date dateColumn
		)
		err := rows.Scan(
			&sale.ID, &sale.UserID, &date, &sale.ItemName, &sale.Category,
			&sale.Quantity, &sale.Price, &sale.Total,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sale.Date = date.Date
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sales: %w", err)
	}

	return sales, nil
}
