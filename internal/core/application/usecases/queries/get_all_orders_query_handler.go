package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all order read models from the database.
// Results are sorted by creation time so the listing reads chronologically.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with their line items.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			delivery_address,
			delivery_type,
			payment_method,
			status,
			total,
			created_at
		FROM orders
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, itemsErr := loadOrderItems(ctx, h.db, orders[i].ID)
		if itemsErr != nil {
			return nil, itemsErr
		}
		orders[i].Items = items
	}

	return orders, nil
}
