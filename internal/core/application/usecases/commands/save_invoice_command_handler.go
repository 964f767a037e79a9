package commands

import (
	"context"

	"ordering/internal/core/domain/model/invoice"
)

// SaveInvoiceCommandHandler handles invoice upserts.
type SaveInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewSaveInvoiceCommandHandler creates a handler for invoice storage.
func NewSaveInvoiceCommandHandler(uowFactory InvoiceUoWFactory) SaveInvoiceCommandHandler {
	return SaveInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice save command and returns the stored invoice.
func (h SaveInvoiceCommandHandler) Handle(ctx context.Context, cmd SaveInvoiceCommand) (*invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := invoice.NewInvoice(cmd.Number(), cmd.Concept(), cmd.Amount())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.InvoiceRepository().Save(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
