package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
)

// CancelStaleOrdersCommandHandler cancels pending orders that were never
// confirmed. Each cancellation goes through the order's own status guard, so
// only orders still in a status that allows cancellation are touched.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for stale order cleanup.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every pending order created before now minus the command's
// age threshold. Returns how many orders were cancelled. All cancellations
// commit together.
func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.OlderThan())
	orderRepo := uow.OrderRepository()
	stale, err := orderRepo.GetAllPendingCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, aggregate := range stale {
		if err = aggregate.ChangeStatus(order.Cancelled); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}

		cancelled++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cancelled, nil
}
