package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrSetProductAvailabilityCommandIsNotConstructed = errors.New(
	"SetProductAvailabilityCommand must be created via NewSetProductAvailabilityCommand constructor",
)

// SetProductAvailabilityCommand represents a request to flip a product's
// availability flag, taking it on or off the orderable menu.
type SetProductAvailabilityCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetProductAvailabilityCommand creates a command to change product availability.
func NewSetProductAvailabilityCommand(productID kernel.UUID, available bool) (SetProductAvailabilityCommand, error) {
	availabilityCommand := SetProductAvailabilityCommand{
		available: available,

		guard: guard.NewConstructorGuard(),
	}

	if err := availabilityCommand.setProductID(productID); err != nil {
		return SetProductAvailabilityCommand{}, err
	}

	return availabilityCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SetProductAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetProductAvailabilityCommandIsNotConstructed)
}

// ProductID returns the unique identifier of the product to update.
func (c SetProductAvailabilityCommand) ProductID() kernel.UUID {
	return c.productID
}

// Available returns the requested availability state.
func (c SetProductAvailabilityCommand) Available() bool {
	return c.available
}

func (c *SetProductAvailabilityCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
