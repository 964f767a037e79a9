package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       kernel.Money
	available   bool

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a catalog product.
// Validates that the id, name, and price are present and well formed.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	available bool,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		description: description,
		available:   available,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setName(name),
		productCommand.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the optional product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the unit price of the product.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// Available reports whether the product can be ordered right away.
func (c CreateProductCommand) Available() bool {
	return c.available
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
