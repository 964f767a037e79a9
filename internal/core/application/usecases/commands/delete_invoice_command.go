package commands

import (
	"errors"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrDeleteInvoiceCommandIsNotConstructed = errors.New(
	"DeleteInvoiceCommand must be created via NewDeleteInvoiceCommand constructor",
)

// DeleteInvoiceCommand represents a request to remove a stored invoice.
type DeleteInvoiceCommand struct { //nolint:recvcheck //using for validation
	number int

	guard guard.ConstructorGuard
}

// NewDeleteInvoiceCommand creates a command to delete the invoice with the
// given number.
func NewDeleteInvoiceCommand(number int) (DeleteInvoiceCommand, error) {
	if number <= 0 {
		return DeleteInvoiceCommand{}, errs.NewValueIsInvalidError("invoice number")
	}

	return DeleteInvoiceCommand{
		number: number,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrDeleteInvoiceCommandIsNotConstructed)
}

// Number returns the number of the invoice to delete.
func (c DeleteInvoiceCommand) Number() int {
	return c.number
}
