package product

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct constructor.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is a catalog entry: a named item with a base unit price and an
// availability flag. The ordering core reads products to price line items;
// an unavailable product cannot be ordered.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	available   bool

	isConstructed bool
}

// NewProduct creates a catalog product. Name must be non-blank and the price
// a valid non-negative Money value. The description is optional.
func NewProduct(id kernel.UUID, name, description string, price kernel.Money, available bool) (*Product, error) {
	product := &Product{
		description: description,
		available:   available,

		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the optional product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current base unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// IsAvailable reports whether the product can currently be ordered.
func (p *Product) IsAvailable() bool {
	return p.available
}

// SetAvailable flips the availability flag. Orders already placed keep their
// captured prices and are unaffected.
func (p *Product) SetAvailable(available bool) {
	p.available = available
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
