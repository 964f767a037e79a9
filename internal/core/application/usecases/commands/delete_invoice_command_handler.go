package commands

import (
	"context"
)

// DeleteInvoiceCommandHandler handles invoice deletion.
// Deleting a number that was never stored fails with a not-found error.
type DeleteInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewDeleteInvoiceCommandHandler creates a handler for invoice deletion.
func NewDeleteInvoiceCommandHandler(uowFactory InvoiceUoWFactory) DeleteInvoiceCommandHandler {
	return DeleteInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice deletion command.
func (h DeleteInvoiceCommandHandler) Handle(ctx context.Context, cmd DeleteInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.InvoiceRepository().Delete(ctx, cmd.Number()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
