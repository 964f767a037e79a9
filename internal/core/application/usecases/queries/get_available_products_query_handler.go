package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAvailableProductsQueryHandler retrieves the orderable catalog from the
// database. Results are sorted by name for a stable menu listing.
type GetAvailableProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableProductsQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableProductsQueryHandler(db *gorm.DB) GetAvailableProductsQueryHandler {
	return GetAvailableProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve all available products.
func (h GetAvailableProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price
		FROM products
		WHERE available
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		var resp ProductResponse
		var id uuid.UUID
		var price decimal.Decimal

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Description,
			&price,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = productID

		if resp.Price, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}

		products = append(products, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
