package order

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for a customer order. It exclusively owns its
// line items and maintains these invariants:
//   - at least one line item, in the sequence the customer requested
//   - total always equals the sum of line item subtotals; it is recomputed
//     from the items and never accepted from outside
//   - status only changes through ChangeStatus, which enforces the
//     transition table
//
// Private fields keep the invariants intact; construction goes through
// NewOrder (fresh orders) or RestoreOrder (persistence).
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	deliveryAddress string
	deliveryType    string
	paymentMethod   string
	items           []LineItem
	createdAt       time.Time
	status          Status
	total           kernel.Money

	isConstructed bool
}

// NewOrder creates a freshly assembled order in Pending status.
// The items must already carry their captured unit prices; the total is
// computed here as the exact decimal sum of their subtotals.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	deliveryAddress string,
	deliveryType string,
	paymentMethod string,
	items []LineItem,
	createdAt time.Time,
) (*Order, error) {
	return newOrder(id, customerID, deliveryAddress, deliveryType, paymentMethod, items, createdAt, Pending)
}

// RestoreOrder reconstructs an order from persistence with its stored status.
// The total is recomputed from the restored line items, so a stored total
// column can never drift from the items it summarizes.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	deliveryAddress string,
	deliveryType string,
	paymentMethod string,
	items []LineItem,
	createdAt time.Time,
	status Status,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return newOrder(id, customerID, deliveryAddress, deliveryType, paymentMethod, items, createdAt, status)
}

func newOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	deliveryAddress string,
	deliveryType string,
	paymentMethod string,
	items []LineItem,
	createdAt time.Time,
	status Status,
) (*Order, error) {
	order := &Order{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setDeliveryAddress(deliveryAddress),
		order.setDeliveryType(deliveryType),
		order.setPaymentMethod(paymentMethod),
		order.setCreatedAt(createdAt),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryAddress returns the address captured when the order was placed.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryType returns the delivery-type tag, e.g. "delivery" or "pickup".
func (o *Order) DeliveryType() string {
	return o.deliveryType
}

// PaymentMethod returns the payment-method tag, e.g. "cash" or "card".
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// Items returns the line items in the sequence the customer requested.
// The returned slice is a copy; the order keeps exclusive ownership.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// CreatedAt returns the assembly timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the sum of all line item subtotals.
func (o *Order) Total() kernel.Money {
	return o.total
}

// ChangeStatus moves the order to the requested status if the transition
// table allows it from the current status. On rejection the error names both
// the current and the requested status, and the order is left unchanged.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if strings.TrimSpace(deliveryAddress) == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setDeliveryType(deliveryType string) error {
	if strings.TrimSpace(deliveryType) == "" {
		return errs.NewValueIsRequiredError("delivery type")
	}
	o.deliveryType = deliveryType
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod string) error {
	if strings.TrimSpace(paymentMethod) == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt
	return nil
}

// setItems stores the item sequence and recomputes the total from it.
func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	total := kernel.ZeroMoney()
	owned := make([]LineItem, len(items))
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}

		sum, err := total.Add(item.Subtotal())
		if err != nil {
			return err
		}
		total = sum
		owned[i] = item
	}

	o.items = owned
	o.total = total
	return nil
}
