package ports

import (
	"context"

	"ordering/internal/core/domain/model/invoice"
)

// InvoiceRepository defines the persistence contract for invoice records.
// Invoices are flat rows keyed by their caller-assigned number.
type InvoiceRepository interface {
	// Save inserts or replaces the invoice with the given number.
	Save(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice by number.
	Get(ctx context.Context, number int) (*invoice.Invoice, error)

	// GetAll retrieves every stored invoice ordered by number.
	GetAll(ctx context.Context) ([]*invoice.Invoice, error)

	// Delete removes the invoice with the given number.
	// Returns a not-found error when it does not exist.
	Delete(ctx context.Context, number int) error
}
