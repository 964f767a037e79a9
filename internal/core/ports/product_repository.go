package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new catalog product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product (e.g. availability).
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	// Returns a not-found error naming the identifier when absent.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)
}
