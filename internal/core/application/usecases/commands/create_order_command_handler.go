package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves the customer, checks delivery data before touching the catalog,
// resolves every requested product, and hands the result to the OrderAssembler.
// The guest customer (if any) and the order are persisted in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewOrderAssembler())
//	cmd, _ := NewCreateOrderCommand(orderID, nil, "555-0101", "12 Elm St",
//	    "DELIVERY", "CARD", lines)
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("Order %s placed, total %s", placed.ID(), placed.Total())
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	assembler  services.OrderAssembler
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
// Requires a CreateOrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	assembler services.OrderAssembler,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		assembler:  assembler,
	}
}

// Handle processes the order placement command and returns the stored order.
// Fails fast: a missing customer, blank delivery data, an unknown product id,
// or an unavailable product abort the whole order before anything is written.
// The catalog is never consulted when delivery data is incomplete.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	cust, isGuest, err := h.resolveCustomer(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	if err = cust.ValidateDeliveryData(); err != nil {
		return nil, err
	}

	productRepo := uow.ProductRepository()
	lines := make([]services.AssemblyLine, 0, len(cmd.Lines()))
	for _, requested := range cmd.Lines() {
		resolved, getErr := productRepo.Get(ctx, requested.ProductID)
		if getErr != nil {
			return nil, getErr
		}

		lines = append(lines, services.AssemblyLine{Product: resolved, Quantity: requested.Quantity})
	}

	placed, err := h.assembler.Assemble(
		cmd.OrderID(),
		cust,
		cmd.Address(),
		cmd.DeliveryType(),
		cmd.PaymentMethod(),
		lines,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if isGuest {
		if err = uow.CustomerRepository().Add(ctx, cust); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

// resolveCustomer loads the referenced customer, or builds an unsaved guest
// customer from the command's contact data when no id was supplied. The guest
// flag tells the caller the customer still needs to be persisted.
func (h CreateOrderCommandHandler) resolveCustomer(
	ctx context.Context,
	uow CreateOrderUoW,
	cmd CreateOrderCommand,
) (*customer.Customer, bool, error) {
	if customerID, ok := cmd.CustomerID(); ok {
		cust, err := uow.CustomerRepository().Get(ctx, customerID)
		if err != nil {
			return nil, false, err
		}
		return cust, false, nil
	}

	guest, err := customer.NewGuestCustomer(kernel.NewUUID(), cmd.CustomerPhone(), cmd.Address())
	if err != nil {
		return nil, false, err
	}
	return guest, true, nil
}
