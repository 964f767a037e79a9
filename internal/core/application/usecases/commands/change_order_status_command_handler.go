package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler handles order lifecycle advancement.
// Loads the order, applies the transition through the aggregate's guard, and
// persists the new status. Load, decision, and save happen in one transaction.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.InPreparation)
//
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrValueIsInvalid) {
//	    // transition not allowed from the current status
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status change operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command and returns the updated order.
// A missing order or an illegal transition aborts without touching storage;
// the order keeps its current status in either case.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
