package commands

import (
	"context"

	"ordering/internal/core/domain/model/product"
)

// SetProductAvailabilityCommandHandler handles availability changes of catalog
// products. Load, flag change, and save happen in one transaction.
type SetProductAvailabilityCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewSetProductAvailabilityCommandHandler creates a handler for availability changes.
func NewSetProductAvailabilityCommandHandler(uowFactory ProductUoWFactory) SetProductAvailabilityCommandHandler {
	return SetProductAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability change and returns the updated product.
// A missing product id aborts with a not-found error.
func (h SetProductAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd SetProductAvailabilityCommand,
) (*product.Product, error) {
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

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	aggregate.SetAvailable(cmd.Available())

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
