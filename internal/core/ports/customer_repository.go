package ports

import (
	"context"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer records.
type CustomerRepository interface {
	// Add persists a new customer (including ad-hoc guest customers
	// created during order placement).
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
