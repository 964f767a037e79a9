package commands_test

import (
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustProduct(t *testing.T, name, price string, available bool) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, "", mustMoney(t, price), available)
	require.NoError(t, err)
	return p
}

func newCreateOrderHandler(factory commands.CreateOrderUoWFactory) commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(factory, services.NewOrderAssembler())
}

func TestCreateOrderCommandHandler_Handle_GuestSuccess(t *testing.T) {
	ctx := t.Context()
	pizza := mustProduct(t, "Pizza Margherita", "10.00", true)
	soda := mustProduct(t, "Soda", "15.50", true)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil, "555-0101", "12 Elm St", "DELIVERY", "CASH",
		[]commands.OrderLine{
			{ProductID: pizza.ID(), Quantity: 3},
			{ProductID: soda.ID(), Quantity: 1},
		})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, pizza.ID()).Return(pizza, nil).Once(),
		productRepo.On("Get", mock.Anything, soda.ID()).Return(soda, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory)
	placed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, placed)

	assert.Equal(t, "45.50", placed.Total().String())
	assert.Equal(t, "Pending", placed.Status().String())
	require.Len(t, placed.Items(), 2)
	assert.Equal(t, "Pizza Margherita", placed.Items()[0].ProductName())
	assert.Equal(t, "Soda", placed.Items()[1].ProductName())

	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ExistingCustomer(t *testing.T) {
	ctx := t.Context()
	pizza := mustProduct(t, "Pizza Margherita", "10.00", true)
	cust, err := customer.NewCustomer(kernel.NewUUID(), "Ana", "ana@example.com", "555-0102", "7 Oak Ave")
	require.NoError(t, err)

	customerID := cust.ID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), &customerID, "", "7 Oak Ave", "PICKUP", "CARD",
		[]commands.OrderLine{{ProductID: pizza.ID(), Quantity: 1}})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).Return(cust, nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, pizza.ID()).Return(pizza, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory)
	placed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, placed.CustomerID().IsEqual(customerID))

	customerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), &customerID, "", "7 Oak Ave", "PICKUP", "CARD",
		testLines())
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", mock.Anything, customerID).
			Return(nil, errs.NewObjectNotFoundError("customer", customerID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	productRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_MissingDeliveryData(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil, "   ", "12 Elm St", "DELIVERY", "CASH",
		testLines())
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	// Catalog must never be consulted when the delivery data is incomplete.
	productRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "ProductRepository")
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	missingID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil, "555-0101", "12 Elm St", "DELIVERY", "CASH",
		[]commands.OrderLine{{ProductID: missingID, Quantity: 1}})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, missingID).
			Return(nil, errs.NewObjectNotFoundError("product", missingID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnavailableProduct(t *testing.T) {
	ctx := t.Context()
	pizza := mustProduct(t, "Pizza Margherita", "10.00", true)
	soldOut := mustProduct(t, "Product C", "5.00", false)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil, "555-0101", "12 Elm St", "DELIVERY", "CASH",
		[]commands.OrderLine{
			{ProductID: pizza.ID(), Quantity: 1},
			{ProductID: soldOut.ID(), Quantity: 2},
		})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, pizza.ID()).Return(pizza, nil).Once(),
		productRepo.On("Get", mock.Anything, soldOut.ID()).Return(soldOut, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "Product C")

	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockCreateOrderUoWFactory)
	h := newCreateOrderHandler(factory)

	_, err := h.Handle(ctx, commands.CreateOrderCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	pizza := mustProduct(t, "Pizza Margherita", "10.00", true)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), nil, "555-0101", "12 Elm St", "DELIVERY", "CASH",
		[]commands.OrderLine{{ProductID: pizza.ID(), Quantity: 1}})
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	customerRepo := new(MockCustomerRepository)
	uow := new(MockCreateOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Get", mock.Anything, pizza.ID()).Return(pizza, nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newCreateOrderHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
