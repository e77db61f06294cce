package commands

import (
	"context"
	"errors"

	"pastelstand/internal/pkg/errs"
)

// UpdateFlavorCommandHandler handles full flavor updates: rename, reprice
// and replace presentation fields. The new name must not collide with any
// other flavor's name.
type UpdateFlavorCommandHandler struct {
	uowFactory FlavorUoWFactory
}

// NewUpdateFlavorCommandHandler creates a handler for flavor updates.
func NewUpdateFlavorCommandHandler(uowFactory FlavorUoWFactory) UpdateFlavorCommandHandler {
	return UpdateFlavorCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
func (h *UpdateFlavorCommandHandler) Handle(ctx context.Context, cmd UpdateFlavorCommand) error {
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

	conflicting, err := flavorRepo.GetByName(ctx, cmd.Name())
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	} else if !conflicting.ID().IsEqual(aggregate.ID()) {
		return errs.NewBusinessError(errs.CodeFlavorNameExists, "name", cmd.Name())
	}

	if err = aggregate.Rename(cmd.Name()); err != nil {
		return err
	}
	if err = aggregate.SetPrice(cmd.Price()); err != nil {
		return err
	}
	aggregate.ReplaceDetails(cmd.Description(), cmd.ImageURL())

	if err = flavorRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
