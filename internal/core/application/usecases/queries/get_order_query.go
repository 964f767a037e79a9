// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read directly from the database
// for efficient data retrieval.
package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line items.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve the order with the given id.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse represents one line of an order read model, in the
// sequence the customer requested it.
type OrderItemResponse struct {
	ProductID   kernel.UUID
	ProductName string
	UnitPrice   kernel.Money
	Quantity    int
	Subtotal    kernel.Money
}

// OrderResponse represents the order read model returned by order queries.
type OrderResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	DeliveryAddress string
	DeliveryType    string
	PaymentMethod   string
	Status          string
	Total           kernel.Money
	CreatedAt       time.Time
	Items           []OrderItemResponse
}
