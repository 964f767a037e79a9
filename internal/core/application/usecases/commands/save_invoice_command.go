package commands

import (
	"errors"

	"ordering/internal/core/domain/model/invoice"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrSaveInvoiceCommandIsNotConstructed = errors.New(
	"SaveInvoiceCommand must be created via NewSaveInvoiceCommand constructor",
)

// SaveInvoiceCommand represents a request to store an invoice record.
// Saving an existing number replaces the stored invoice.
type SaveInvoiceCommand struct { //nolint:recvcheck //using for validation
	number  int
	concept string
	amount  kernel.Money

	guard guard.ConstructorGuard
}

// NewSaveInvoiceCommand creates a command to store an invoice.
// Field rules follow invoice.NewInvoice and are enforced there; the command
// only carries the raw values.
func NewSaveInvoiceCommand(number int, concept string, amount kernel.Money) (SaveInvoiceCommand, error) {
	// Build the aggregate up front so a malformed invoice fails at command
	// construction, the same point other commands reject bad input.
	if _, err := invoice.NewInvoice(number, concept, amount); err != nil {
		return SaveInvoiceCommand{}, err
	}

	return SaveInvoiceCommand{
		number:  number,
		concept: concept,
		amount:  amount,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrSaveInvoiceCommandIsNotConstructed)
}

// Number returns the caller-assigned invoice number.
func (c SaveInvoiceCommand) Number() int {
	return c.number
}

// Concept returns the invoice concept text.
func (c SaveInvoiceCommand) Concept() string {
	return c.concept
}

// Amount returns the invoice amount.
func (c SaveInvoiceCommand) Amount() kernel.Money {
	return c.amount
}
