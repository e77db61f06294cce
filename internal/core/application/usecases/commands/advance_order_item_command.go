package commands

import (
	"errors"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/core/domain/model/order"
	"pastelstand/internal/pkg/guard"
)

var ErrAdvanceOrderItemCommandIsNotConstructed = errors.New(
	"AdvanceOrderItemCommand must be created via NewAdvanceOrderItemCommand constructor",
)

// AdvanceOrderItemCommand represents a request to move one order item one
// step forward through the preparation workflow. Without an explicit target
// the next status in the canonical sequence is used.
type AdvanceOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID
	target  *order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderItemCommand creates a command to advance an order item.
// An explicit target, when supplied, must be a known status value; whether
// the transition itself is legal is decided by the order aggregate.
func NewAdvanceOrderItemCommand(
	orderID, itemID kernel.UUID, target *order.Status,
) (AdvanceOrderItemCommand, error) {
	cmd := AdvanceOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setTarget(target),
	); err != nil {
		return AdvanceOrderItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order owning the item.
func (c AdvanceOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to advance.
func (c AdvanceOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Target returns the explicit target status, or nil when the next status
// should be resolved automatically.
func (c AdvanceOrderItemCommand) Target() *order.Status {
	if c.target == nil {
		return nil
	}
	target := *c.target
	return &target
}

func (c *AdvanceOrderItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AdvanceOrderItemCommand) setTarget(target *order.Status) error {
	if target == nil {
		return nil
	}
	if err := target.Validate(); err != nil {
		return err
	}

	status := *target
	c.target = &status
	return nil
}
