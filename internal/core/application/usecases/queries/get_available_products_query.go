package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetAvailableProductsQueryIsNotConstructed = errors.New(
	"GetAvailableProductsQuery must be created via NewGetAvailableProductsQuery constructor",
)

// GetAvailableProductsQuery retrieves the orderable part of the catalog.
// Products flagged unavailable stay out of the listing.
type GetAvailableProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableProductsQuery creates a query to retrieve the current menu.
// This is a parameterless query.
func NewGetAvailableProductsQuery() GetAvailableProductsQuery {
	return GetAvailableProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableProductsQueryIsNotConstructed)
}

// ProductResponse represents a catalog product read model.
type ProductResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
}
