package invoice

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
	// created through the NewInvoice constructor.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")
)

const (
	conceptMinLen = 3
	conceptMaxLen = 100
)

// Invoice is a flat billing record with a caller-assigned number, a concept
// text and a positive amount. It carries no lifecycle and no relation to the
// order aggregate.
type Invoice struct {
	number  int
	concept string
	amount  kernel.Money

	isConstructed bool
}

// NewInvoice creates an invoice record. The number must be positive, the
// concept between 3 and 100 characters, and the amount greater than zero.
func NewInvoice(number int, concept string, amount kernel.Money) (*Invoice, error) {
	invoice := &Invoice{
		isConstructed: true,
	}

	if err := errors.Join(
		invoice.setNumber(number),
		invoice.setConcept(concept),
		invoice.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return invoice, nil
}

// Validate ensures the Invoice instance was properly constructed.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}

	return nil
}

// Number returns the caller-assigned invoice number.
func (i *Invoice) Number() int {
	return i.number
}

// Concept returns the invoice concept text.
func (i *Invoice) Concept() string {
	return i.concept
}

// Amount returns the invoice amount.
func (i *Invoice) Amount() kernel.Money {
	return i.amount
}

func (i *Invoice) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("invoice number is invalid",
			fmt.Errorf("%d is not greater than 0", number))
	}
	i.number = number
	return nil
}

func (i *Invoice) setConcept(concept string) error {
	trimmed := strings.TrimSpace(concept)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("invoice concept")
	}
	if len(trimmed) < conceptMinLen || len(trimmed) > conceptMaxLen {
		return errs.NewValueIsOutOfRangeError("invoice concept length", len(trimmed), conceptMinLen, conceptMaxLen)
	}
	i.concept = concept
	return nil
}

func (i *Invoice) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if amount.IsEqual(kernel.ZeroMoney()) {
		return errs.NewValueIsInvalidErrorWithCause("invoice amount is invalid",
			errors.New("amount must be greater than zero"))
	}
	i.amount = amount
	return nil
}
