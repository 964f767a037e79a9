package services

import (
	"fmt"
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/pkg/errs"
)

// AssemblyLine pairs an already-resolved catalog product with the requested
// quantity. Resolution (and the not-found failure mode) happens in the
// application layer; the assembler only sees products that exist.
type AssemblyLine struct {
	Product  *product.Product
	Quantity int
}

// OrderAssembler is a domain service that turns a validated request into a
// finalized order.
//
// Assembly rules, applied in this sequence and failing fast:
//   - the customer must be present with non-blank phone and delivery address
//   - every requested product must be available; one unavailable product
//     rejects the whole order, no partial assembly
//   - each line item captures the product's current unit price; subtotals and
//     the order total are computed in exact decimal
//
// The assembled order starts in Pending status with the supplied timestamp.
// The assembler holds no state and performs no I/O.
type OrderAssembler struct{}

// NewOrderAssembler creates an OrderAssembler instance.
func NewOrderAssembler() OrderAssembler {
	return OrderAssembler{}
}

// Assemble builds a finalized order from resolved products and requested
// quantities. Line items come out in the same sequence as the input lines.
func (a OrderAssembler) Assemble(
	orderID kernel.UUID,
	cust *customer.Customer,
	deliveryAddress string,
	deliveryType string,
	paymentMethod string,
	lines []AssemblyLine,
	assembledAt time.Time,
) (*order.Order, error) {
	if err := cust.ValidateDeliveryData(); err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("order items")
	}

	items := make([]order.LineItem, 0, len(lines))
	for _, line := range lines {
		if err := line.Product.Validate(); err != nil {
			return nil, err
		}

		if !line.Product.IsAvailable() {
			return nil, errs.NewValueIsInvalidErrorWithCause("product is not available",
				fmt.Errorf("product %q is not available", line.Product.Name()))
		}

		item, err := order.NewLineItem(line.Product.ID(), line.Product.Name(), line.Product.Price(), line.Quantity)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return order.NewOrder(orderID, cust.ID(), deliveryAddress, deliveryType, paymentMethod, items, assembledAt)
}
