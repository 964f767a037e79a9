package queries

import (
	"context"
	"database/sql"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such order
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the order with its line items in
// request sequence. Returns a not-found error when the id is unknown.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
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
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	items, err := loadOrderItems(ctx, h.db, resp.ID)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var id, customerID uuid.UUID
	var status int
	var total decimal.Decimal
	var createdAt time.Time

	err := rows.Scan(
		&id,
		&customerID,
		&resp.DeliveryAddress,
		&resp.DeliveryType,
		&resp.PaymentMethod,
		&status,
		&total,
		&createdAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.CustomerID = custID

	totalMoney, err := kernel.NewMoney(total)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Total = totalMoney

	resp.Status = order.Status(status).String()
	resp.CreatedAt = createdAt

	return resp, nil
}

// loadOrderItems reads the line items of one order ordered by line number.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			product_name,
			unit_price,
			quantity,
			subtotal
		FROM order_items
		WHERE order_id = ?
		ORDER BY line_no
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		var productID uuid.UUID
		var unitPrice, subtotal decimal.Decimal

		err = rows.Scan(
			&productID,
			&item.ProductName,
			&unitPrice,
			&item.Quantity,
			&subtotal,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ProductID = id

		if item.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, err
		}
		if item.Subtotal, err = kernel.NewMoney(subtotal); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
