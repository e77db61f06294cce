package commands_test

import (
	"testing"

	"pastelstand/internal/core/application/usecases/commands"
	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/core/domain/model/order"
	"pastelstand/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustOrderWithItem(t *testing.T) (*order.Order, kernel.UUID) {
	t.Helper()

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Ana", fixtureNow)
	require.NoError(t, err)

	item, err := aggregate.AddItem(
		kernel.NewUUID(), kernel.NewUUID(), "Queijo",
		decimal.RequireFromString("10.90"), "", fixtureNow,
	)
	require.NoError(t, err)

	return aggregate, item.ID()
}

func TestAdvanceOrderItemCommandHandler_Handle_AutoAdvance(t *testing.T) {
	ctx := t.Context()

	aggregate, itemID := mustOrderWithItem(t)
	cmd, err := commands.NewAdvanceOrderItemCommand(aggregate.ID(), itemID, nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderItemCommandHandler(factory)
	view, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.True(t, view.ID.IsEqual(itemID))
	require.Equal(t, order.Frying, view.Status)
	require.Equal(t, "Queijo", view.FlavorName)
	require.NotNil(t, view.LastUpdatedAt)

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAdvanceOrderItemCommandHandler_Handle_ExplicitTarget(t *testing.T) {
	ctx := t.Context()

	aggregate, itemID := mustOrderWithItem(t)
	target := order.Frying
	cmd, err := commands.NewAdvanceOrderItemCommand(aggregate.ID(), itemID, &target)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderItemCommandHandler(factory)
	view, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Frying, view.Status)
}

func TestAdvanceOrderItemCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewAdvanceOrderItemCommand(orderID, kernel.NewUUID(), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	requireBusinessCode(t, err, errs.CodeOrderNotFound)
}

func TestAdvanceOrderItemCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := t.Context()

	aggregate, _ := mustOrderWithItem(t)
	cmd, err := commands.NewAdvanceOrderItemCommand(aggregate.ID(), kernel.NewUUID(), nil)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	requireBusinessCode(t, err, errs.CodeOrderItemNotFound)
}

func TestAdvanceOrderItemCommandHandler_Handle_NoOpTargetRejected(t *testing.T) {
	ctx := t.Context()

	aggregate, itemID := mustOrderWithItem(t)
	target := order.Pending
	cmd, err := commands.NewAdvanceOrderItemCommand(aggregate.ID(), itemID, &target)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderItemCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	requireBusinessCode(t, err, errs.CodeInvalidStatusTransition)
}
