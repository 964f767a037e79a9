package commands_test

import (
	"errors"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), "Pizza Margherita", mustMoney(t, "10.00"), 2)
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), "12 Elm St", "DELIVERY", "CASH",
		[]order.LineItem{item}, time.Now().UTC(), status)
	require.NoError(t, err)
	return aggregate
}

func TestChangeOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, order.Pending)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.InPreparation)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.InPreparation, updated.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, order.Pending)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Delivered)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "Pending")
	assert.Contains(t, err.Error(), "Delivered")

	// Nothing is written and the order keeps its current status.
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.Equal(t, order.Pending, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_TerminalStatus(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, order.Delivered)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Cancelled)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Delivered, aggregate.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.InPreparation)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	aggregate := storedOrder(t, order.ReadyForDelivery)
	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), order.Delivered)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)
	h := commands.NewChangeOrderStatusCommandHandler(factory)

	_, err := h.Handle(ctx, commands.ChangeOrderStatusCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
