package commands_test

import (
	"testing"

	"pastelstand/internal/core/application/usecases/commands"
	"pastelstand/internal/core/domain/model/flavor"
	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/core/domain/model/order"
	"pastelstand/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cheese := mustFlavor(t, "Queijo", 3, "10.90")
	customerID := kernel.NewUUID()

	aggregate, err := order.NewOrder(kernel.NewUUID(), customerID, "Ana", fixtureNow)
	require.NoError(t, err)
	for range 2 {
		_, err = aggregate.AddItem(
			kernel.NewUUID(), cheese.ID(), cheese.Name(), cheese.Price(), "", fixtureNow,
		)
		require.NoError(t, err)
	}

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), customerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	flavorRepo := new(MockFlavorRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForCustomer", mock.Anything, aggregate.ID(), customerID).
			Return(aggregate, nil).Once(),
		uow.On("FlavorRepository").Return(flavorRepo).Once(),
		flavorRepo.On("GetByIDs", mock.Anything, []kernel.UUID{cheese.ID()}).
			Return(map[kernel.UUID]*flavor.Flavor{cheese.ID(): cheese}, nil).Once(),
		flavorRepo.On("Update", mock.Anything, cheese).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderFlavorUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// Both units went back to stock and every item is cancelled.
	require.Equal(t, 5, cheese.AvailableQuantity())
	for _, item := range aggregate.Items() {
		require.Equal(t, order.Cancelled, item.Status())
	}

	orderRepo.AssertExpectations(t)
	flavorRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_OrderNotFoundForCustomer(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCancelOrderCommand(orderID, customerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForCustomer", mock.Anything, orderID, customerID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderFlavorUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	requireBusinessCode(t, err, errs.CodeOrderNotFound)
}

func TestCancelOrderCommandHandler_Handle_NotCancelableOnceStarted(t *testing.T) {
	ctx := t.Context()

	cheese := mustFlavor(t, "Queijo", 3, "10.90")
	customerID := kernel.NewUUID()

	aggregate, err := order.NewOrder(kernel.NewUUID(), customerID, "Ana", fixtureNow)
	require.NoError(t, err)
	item, err := aggregate.AddItem(
		kernel.NewUUID(), cheese.ID(), cheese.Name(), cheese.Price(), "", fixtureNow,
	)
	require.NoError(t, err)
	_, err = aggregate.AdvanceItem(item.ID(), nil, fixtureNow)
	require.NoError(t, err)

	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), customerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForCustomer", mock.Anything, aggregate.ID(), customerID).
			Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderFlavorUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	requireBusinessCode(t, err, errs.CodeOrderCannotBeCancelled)

	// Stock untouched on a rejected cancellation.
	require.Equal(t, 3, cheese.AvailableQuantity())
}
