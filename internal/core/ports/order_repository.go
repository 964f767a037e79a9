// Package ports defines the persistence contracts between the domain core and
// the infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations must persist an order together with its line items
// atomically: a partially stored order is never observable.
type OrderRepository interface {
	// Add persists a new order aggregate with all its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status changes of an existing order.
	// Returns a not-found error if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its line items in their original sequence.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingCreatedBefore retrieves orders still in Pending status
	// whose creation time is strictly before the cutoff. Used by the
	// stale-order cancellation job.
	GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
