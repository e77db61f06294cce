package commands

import (
	"context"
	"errors"
	"time"

	"pastelstand/internal/core/domain/model/flavor"
	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/core/ports"
	"pastelstand/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// UpsertedFlavor describes one flavor after an upsert, with the stock level
// and price that resulted from it.
type UpsertedFlavor struct {
	ID                kernel.UUID
	Name              string
	AvailableQuantity int
	Price             decimal.Decimal
	Created           bool
}

// UpsertFlavorsCommandHandler handles by-name flavor upserts. An existing
// flavor gains the requested quantity, takes the requested price, and has
// its optional fields overwritten only when supplied; an unknown name
// creates a new flavor. The whole batch runs in one transaction.
type UpsertFlavorsCommandHandler struct {
	uowFactory FlavorUoWFactory
}

// NewUpsertFlavorsCommandHandler creates a handler for flavor upserts.
func NewUpsertFlavorsCommandHandler(uowFactory FlavorUoWFactory) UpsertFlavorsCommandHandler {
	return UpsertFlavorsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the upsert command and returns one result per spec, in
// request order.
func (h *UpsertFlavorsCommandHandler) Handle(
	ctx context.Context, cmd UpsertFlavorsCommand,
) ([]UpsertedFlavor, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	flavorRepo := uow.FlavorRepository()
	results := make([]UpsertedFlavor, 0, len(cmd.Specs()))

	for _, spec := range cmd.Specs() {
		upserted, err := h.upsertOne(ctx, flavorRepo, spec, now)
		if err != nil {
			return nil, err
		}
		results = append(results, upserted)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return results, nil
}

func (h *UpsertFlavorsCommandHandler) upsertOne(
	ctx context.Context, flavorRepo ports.FlavorRepository, spec FlavorSpec, now time.Time,
) (UpsertedFlavor, error) {
	existing, err := flavorRepo.GetByName(ctx, spec.Name)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if !errors.As(err, &notFound) {
			return UpsertedFlavor{}, err
		}

		created, createErr := flavor.NewFlavor(
			kernel.NewUUID(),
			spec.Name, spec.Description, spec.ImageURL,
			spec.AvailableQuantity, spec.Price, now,
		)
		if createErr != nil {
			return UpsertedFlavor{}, createErr
		}
		if createErr = flavorRepo.Add(ctx, created); createErr != nil {
			return UpsertedFlavor{}, createErr
		}

		return UpsertedFlavor{
			ID:                created.ID(),
			Name:              created.Name(),
			AvailableQuantity: created.AvailableQuantity(),
			Price:             created.Price(),
			Created:           true,
		}, nil
	}

	if err = existing.Restock(spec.AvailableQuantity); err != nil {
		return UpsertedFlavor{}, err
	}
	if err = existing.SetPrice(spec.Price); err != nil {
		return UpsertedFlavor{}, err
	}
	existing.UpdateDetails(spec.Description, spec.ImageURL)

	if err = flavorRepo.Update(ctx, existing); err != nil {
		return UpsertedFlavor{}, err
	}

	return UpsertedFlavor{
		ID:                existing.ID(),
		Name:              existing.Name(),
		AvailableQuantity: existing.AvailableQuantity(),
		Price:             existing.Price(),
	}, nil
}
