package commands

import (
	"context"
	"errors"

	"pastelstand/internal/pkg/errs"
)

// UpdateFlavorInventoryCommandHandler handles absolute stock sets.
type UpdateFlavorInventoryCommandHandler struct {
	uowFactory FlavorUoWFactory
}

// NewUpdateFlavorInventoryCommandHandler creates a handler for inventory sets.
func NewUpdateFlavorInventoryCommandHandler(
	uowFactory FlavorUoWFactory,
) UpdateFlavorInventoryCommandHandler {
	return UpdateFlavorInventoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the inventory set command.
func (h *UpdateFlavorInventoryCommandHandler) Handle(
	ctx context.Context, cmd UpdateFlavorInventoryCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	flavorRepo := uow.FlavorRepository()

	aggregate, err := flavorRepo.Get(ctx, cmd.FlavorID())
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return errs.NewBusinessError(errs.CodeFlavorNotFound, "id")
		}
		return err
	}

	if err = aggregate.SetInventory(cmd.AvailableQuantity()); err != nil {
		return err
	}

	if err = flavorRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
