package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one requested position of an order: which product and how many.
// Products are referenced by id only; resolution against the catalog happens
// in the handler.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order.
// Carries either a reference to an existing customer or the contact data to
// register a guest customer, plus the requested product lines.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, nil, "555-0101", "12 Elm St",
//	    "DELIVERY", "CASH", []OrderLine{{ProductID: productID, Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, assembler)
//	placed, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerID    kernel.UUID
	hasCustomerID bool
	customerPhone string
	address       string
	deliveryType  string
	paymentMethod string
	lines         []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// customerID may be nil; the handler then registers a guest customer from the
// phone and address. Lines must be non-empty with positive quantities.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID *kernel.UUID,
	customerPhone string,
	address string,
	deliveryType string,
	paymentMethod string,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		customerPhone: customerPhone,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setAddress(address),
		orderCommand.setDeliveryType(deliveryType),
		orderCommand.setPaymentMethod(paymentMethod),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the referenced customer id and whether one was supplied.
func (c CreateOrderCommand) CustomerID() (kernel.UUID, bool) {
	return c.customerID, c.hasCustomerID
}

// CustomerPhone returns the contact phone for guest registration.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// Address returns the delivery address of the order.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// DeliveryType returns how the order reaches the customer.
func (c CreateOrderCommand) DeliveryType() string {
	return c.deliveryType
}

// PaymentMethod returns how the order will be paid.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// Lines returns the requested product lines in request order.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = *customerID
	c.hasCustomerID = true
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setDeliveryType(deliveryType string) error {
	if deliveryType == "" {
		return errs.NewValueIsRequiredError("deliveryType")
	}

	c.deliveryType = deliveryType
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
