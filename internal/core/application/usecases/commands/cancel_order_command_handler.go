package commands

import (
	"context"
	"errors"
	"time"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/core/domain/model/order"
	"pastelstand/internal/pkg/errs"
)

// CancelOrderCommandHandler handles order cancellation. An order can only be
// cancelled while every item is still Pending; on success each item moves to
// Cancelled and the reserved stock is released back to its flavor, all in
// one transaction.
type CancelOrderCommandHandler struct {
	uowFactory OrderFlavorUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderFlavorUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForCustomer(ctx, cmd.OrderID(), cmd.CustomerID())
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return errs.NewBusinessError(errs.CodeOrderNotFound, "orderId")
		}
		return err
	}

	if err = aggregate.Cancel(now); err != nil {
		return err
	}

	if err = h.releaseStock(ctx, uow, aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// releaseStock returns each cancelled item's unit to its flavor. Flavors
// referenced by items cannot be deleted, so every referenced flavor is
// expected to load.
func (h *CancelOrderCommandHandler) releaseStock(
	ctx context.Context, uow OrderFlavorUoW, aggregate *order.Order,
) error {
	counts := make(map[kernel.UUID]int)
	ids := make([]kernel.UUID, 0)
	for _, item := range aggregate.Items() {
		if _, seen := counts[item.FlavorID()]; !seen {
			ids = append(ids, item.FlavorID())
		}
		counts[item.FlavorID()] += item.Quantity()
	}

	flavorRepo := uow.FlavorRepository()
	flavors, err := flavorRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, id := range ids {
		fl, ok := flavors[id]
		if !ok {
			return errs.NewObjectNotFoundError("flavorId", id.String())
		}
		if err = fl.Release(counts[id]); err != nil {
			return err
		}
		if err = flavorRepo.Update(ctx, fl); err != nil {
			return err
		}
	}

	return nil
}
