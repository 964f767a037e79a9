package customer

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not
	// created through NewCustomer or NewGuestCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or NewGuestCustomer")
)

// GuestName is the display name used for customers created ad hoc during
// order placement, when the caller supplies contact data but no customer id.
const GuestName = "Guest"

// Customer holds the contact and delivery data an order depends on. Phone and
// delivery address are mandatory: an order cannot be finalized for a customer
// missing either. Email is optional.
type Customer struct {
	id              kernel.UUID
	name            string
	email           string
	phone           string
	deliveryAddress string

	isConstructed bool
}

// NewCustomer creates a customer record. Name, phone, and delivery address
// must be non-blank; email may be empty.
func NewCustomer(id kernel.UUID, name, email, phone, deliveryAddress string) (*Customer, error) {
	customer := &Customer{
		email: email,

		isConstructed: true,
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setPhone(phone),
		customer.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// NewGuestCustomer creates a first-time customer from the contact data of an
// incoming order, with the placeholder display name.
func NewGuestCustomer(id kernel.UUID, phone, deliveryAddress string) (*Customer, error) {
	return NewCustomer(id, GuestName, "", phone, deliveryAddress)
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}

	return nil
}

// ValidateDeliveryData checks the invariant order assembly depends on:
// a present customer with non-blank phone and delivery address.
func (c *Customer) ValidateDeliveryData() error {
	if c == nil {
		return errs.NewValueIsRequiredError("customer")
	}
	if strings.TrimSpace(c.phone) == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	if strings.TrimSpace(c.deliveryAddress) == "" {
		return errs.NewValueIsRequiredError("customer delivery address")
	}
	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the optional email address.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the contact phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// DeliveryAddress returns the customer's delivery address.
func (c *Customer) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setDeliveryAddress(deliveryAddress string) error {
	if strings.TrimSpace(deliveryAddress) == "" {
		return errs.NewValueIsRequiredError("customer delivery address")
	}
	c.deliveryAddress = deliveryAddress
	return nil
}
