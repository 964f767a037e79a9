package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand represents a request to cancel pending orders that
// have sat unconfirmed longer than the given age.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel pending orders older
// than the given duration. The duration must be positive.
func NewCancelStaleOrdersCommand(olderThan time.Duration) (CancelStaleOrdersCommand, error) {
	if olderThan <= 0 {
		return CancelStaleOrdersCommand{}, errs.NewValueIsInvalidError("olderThan")
	}

	return CancelStaleOrdersCommand{
		olderThan: olderThan,

		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// OlderThan returns the age threshold beyond which a pending order is stale.
func (c CancelStaleOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}
