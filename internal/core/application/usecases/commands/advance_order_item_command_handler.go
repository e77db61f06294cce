package commands

import (
	"context"
	"errors"
	"time"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/core/domain/model/order"
	"pastelstand/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// AdvancedItemView is the updated state of an item after a successful
// advance.
type AdvancedItemView struct {
	ID            kernel.UUID
	FlavorID      kernel.UUID
	FlavorName    string
	Quantity      int
	UnitPrice     decimal.Decimal
	Status        order.Status
	CreatedAt     time.Time
	LastUpdatedAt *time.Time
}

// AdvanceOrderItemCommandHandler handles moving a single item forward
// through the preparation workflow. Transition rules live on the order
// aggregate; the handler loads the aggregate, applies the advance, and
// persists the new status with its history entry.
type AdvanceOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceOrderItemCommandHandler creates a handler for item advances.
func NewAdvanceOrderItemCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderItemCommandHandler {
	return AdvanceOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance command and returns the updated item view.
func (h *AdvanceOrderItemCommandHandler) Handle(
	ctx context.Context, cmd AdvanceOrderItemCommand,
) (AdvancedItemView, error) {
	if err := cmd.Validate(); err != nil {
		return AdvancedItemView{}, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdvancedItemView{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return AdvancedItemView{}, errs.NewBusinessError(errs.CodeOrderNotFound, "orderId")
		}
		return AdvancedItemView{}, err
	}

	item, err := aggregate.AdvanceItem(cmd.ItemID(), cmd.Target(), now)
	if err != nil {
		return AdvancedItemView{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return AdvancedItemView{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvancedItemView{}, err
	}

	return AdvancedItemView{
		ID:            item.ID(),
		FlavorID:      item.FlavorID(),
		FlavorName:    item.FlavorName(),
		Quantity:      item.Quantity(),
		UnitPrice:     item.UnitPrice(),
		Status:        item.Status(),
		CreatedAt:     item.CreatedAt(),
		LastUpdatedAt: item.LastUpdatedAt(),
	}, nil
}
