package commands

import (
	"errors"
	"strings"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/pkg/errs"
	"pastelstand/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateFlavorCommandIsNotConstructed = errors.New(
	"UpdateFlavorCommand must be created via NewUpdateFlavorCommand constructor",
)

// UpdateFlavorCommand represents an admin request to replace a flavor's
// name, price and presentation fields. Stock is managed separately.
type UpdateFlavorCommand struct { //nolint:recvcheck //using for validation
	flavorID    kernel.UUID
	name        string
	description string
	imageURL    string
	price       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateFlavorCommand creates a flavor update command.
func NewUpdateFlavorCommand(
	flavorID kernel.UUID,
	name, description, imageURL string,
	price decimal.Decimal,
) (UpdateFlavorCommand, error) {
	cmd := UpdateFlavorCommand{
		description: strings.TrimSpace(description),
		imageURL:    strings.TrimSpace(imageURL),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFlavorID(flavorID),
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return UpdateFlavorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateFlavorCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFlavorCommandIsNotConstructed)
}

// FlavorID returns the identifier of the flavor to update.
func (c UpdateFlavorCommand) FlavorID() kernel.UUID {
	return c.flavorID
}

// Name returns the new display name.
func (c UpdateFlavorCommand) Name() string {
	return c.name
}

// Description returns the new description, possibly empty.
func (c UpdateFlavorCommand) Description() string {
	return c.description
}

// ImageURL returns the new image reference, possibly empty.
func (c UpdateFlavorCommand) ImageURL() string {
	return c.imageURL
}

// Price returns the new unit price.
func (c UpdateFlavorCommand) Price() decimal.Decimal {
	return c.price
}

func (c *UpdateFlavorCommand) setFlavorID(flavorID kernel.UUID) error {
	if err := flavorID.Validate(); err != nil {
		return err
	}

	c.flavorID = flavorID
	return nil
}

func (c *UpdateFlavorCommand) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewBusinessError(errs.CodeFlavorNameRequired, "name")
	}

	c.name = trimmed
	return nil
}

func (c *UpdateFlavorCommand) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}

	c.price = price
	return nil
}
