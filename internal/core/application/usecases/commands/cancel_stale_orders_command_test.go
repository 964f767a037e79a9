package commands_test

import (
	"errors"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelStaleOrdersCommand(t *testing.T) {
	t.Run("creates command", func(t *testing.T) {
		cmd, err := commands.NewCancelStaleOrdersCommand(30 * time.Minute)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 30*time.Minute, cmd.OlderThan())
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		_, err := commands.NewCancelStaleOrdersCommand(0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CancelStaleOrdersCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCancelStaleOrdersCommandIsNotConstructed)
	})
}

func TestCancelStaleOrdersCommandHandler_Handle_CancelsPendingOrders(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelStaleOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	first := storedOrder(t, order.Pending)
	second := storedOrder(t, order.Pending)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllPendingCreatedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{first, second}, nil).Once(),
		repo.On("Update", mock.Anything, first).Return(nil).Once(),
		repo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)
	assert.Equal(t, order.Cancelled, first.Status())
	assert.Equal(t, order.Cancelled, second.Status())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCancelStaleOrdersCommandHandler_Handle_NothingToCancel(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelStaleOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllPendingCreatedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 0, cancelled)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCancelStaleOrdersCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelStaleOrdersCommand(30 * time.Minute)
	require.NoError(t, err)

	stale := storedOrder(t, order.Pending)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllPendingCreatedBefore", mock.Anything, mock.AnythingOfType("time.Time")).
			Return([]*order.Order{stale}, nil).Once(),
		repo.On("Update", mock.Anything, stale).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelStaleOrdersCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
