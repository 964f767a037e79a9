package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrGetInvoiceQueryIsNotConstructed = errors.New(
		"GetInvoiceQuery must be created via NewGetInvoiceQuery constructor",
	)
	ErrGetAllInvoicesQueryIsNotConstructed = errors.New(
		"GetAllInvoicesQuery must be created via NewGetAllInvoicesQuery constructor",
	)
)

// GetInvoiceQuery retrieves a single invoice by its number.
type GetInvoiceQuery struct { //nolint:recvcheck //using for validation
	number int

	guard guard.ConstructorGuard
}

// NewGetInvoiceQuery creates a query to retrieve the invoice with the given
// number. The number must be positive.
func NewGetInvoiceQuery(number int) (GetInvoiceQuery, error) {
	if number <= 0 {
		return GetInvoiceQuery{}, errs.NewValueIsInvalidError("invoice number")
	}

	return GetInvoiceQuery{
		number: number,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}

// Number returns the number of the invoice to retrieve.
func (q GetInvoiceQuery) Number() int {
	return q.number
}

// GetAllInvoicesQuery retrieves every stored invoice.
type GetAllInvoicesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllInvoicesQuery creates a query to retrieve all invoices.
// This is a parameterless query.
func NewGetAllInvoicesQuery() GetAllInvoicesQuery {
	return GetAllInvoicesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllInvoicesQueryIsNotConstructed)
}

// InvoiceResponse represents an invoice read model.
type InvoiceResponse struct {
	Number  int
	Concept string
	Amount  kernel.Money
}
