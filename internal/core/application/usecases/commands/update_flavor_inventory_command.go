package commands

import (
	"errors"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/pkg/errs"
	"pastelstand/internal/pkg/guard"
)

var ErrUpdateFlavorInventoryCommandIsNotConstructed = errors.New(
	"UpdateFlavorInventoryCommand must be created via NewUpdateFlavorInventoryCommand constructor",
)

// UpdateFlavorInventoryCommand represents an admin request to set a
// flavor's stock to an absolute value, replacing whatever reservations and
// restocks have accumulated.
type UpdateFlavorInventoryCommand struct { //nolint:recvcheck //using for validation
	flavorID          kernel.UUID
	availableQuantity int

	guard guard.ConstructorGuard
}

// NewUpdateFlavorInventoryCommand creates an inventory set command.
func NewUpdateFlavorInventoryCommand(
	flavorID kernel.UUID, availableQuantity int,
) (UpdateFlavorInventoryCommand, error) {
	cmd := UpdateFlavorInventoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFlavorID(flavorID),
		cmd.setAvailableQuantity(availableQuantity),
	); err != nil {
		return UpdateFlavorInventoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateFlavorInventoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFlavorInventoryCommandIsNotConstructed)
}

// FlavorID returns the identifier of the flavor to restock.
func (c UpdateFlavorInventoryCommand) FlavorID() kernel.UUID {
	return c.flavorID
}

// AvailableQuantity returns the absolute stock level to apply.
func (c UpdateFlavorInventoryCommand) AvailableQuantity() int {
	return c.availableQuantity
}

func (c *UpdateFlavorInventoryCommand) setFlavorID(flavorID kernel.UUID) error {
	if err := flavorID.Validate(); err != nil {
		return err
	}

	c.flavorID = flavorID
	return nil
}

func (c *UpdateFlavorInventoryCommand) setAvailableQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("availableQuantity")
	}

	c.availableQuantity = quantity
	return nil
}
