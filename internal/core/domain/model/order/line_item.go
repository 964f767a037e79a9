package order

import (
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created via
// the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError(
	"line item must be created via NewLineItem constructor")

// LineItem is an immutable value object owned by an Order. It references a
// catalog product and captures the unit price that was current at assembly
// time, so later catalog price changes never affect a placed order. The
// subtotal is computed once at construction, in decimal.
type LineItem struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	productName string
	unitPrice   kernel.Money
	quantity    int
	subtotal    kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item for the given product with the captured
// unit price. Quantity must be at least 1; the product name is kept for
// display and error reporting.
func NewLineItem(productID kernel.UUID, productName string, unitPrice kernel.Money, quantity int) (LineItem, error) {
	if err := productID.Validate(); err != nil {
		return LineItem{}, err
	}
	if strings.TrimSpace(productName) == "" {
		return LineItem{}, errs.NewValueIsRequiredError("product name")
	}
	if err := unitPrice.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity < 1 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	subtotal, err := unitPrice.MulInt(quantity)
	if err != nil {
		return LineItem{}, err
	}

	return LineItem{
		productID:   productID,
		productName: productName,
		unitPrice:   unitPrice,
		quantity:    quantity,
		subtotal:    subtotal,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ProductID returns the identifier of the ordered product.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// ProductName returns the product display name captured at assembly time.
func (li LineItem) ProductName() string {
	return li.productName
}

// UnitPrice returns the price captured at assembly time.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Subtotal returns unit price multiplied by quantity.
func (li LineItem) Subtotal() kernel.Money {
	return li.subtotal
}

// Validate ensures the line item was built through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}
