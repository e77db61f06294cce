package commands

import (
	"errors"
	"strings"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/pkg/errs"
	"pastelstand/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderLine is one requested line of a checkout: a flavor, how many units of
// it, and optional free-form notes applied to every exploded unit.
type OrderLine struct {
	FlavorID kernel.UUID
	Quantity int
	Notes    string
}

// CreateOrderCommand represents a request to place a new order.
// Carries the customer's display name, an optional existing customer
// identifier, and at least one requested line.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, nil, "Ana", []OrderLine{
//	    {FlavorID: cheeseID, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   *kernel.UUID
	customerName string
	lines        []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the order ID is valid, the customer name is not blank,
// there is at least one line, and every line references a valid flavor
// with a positive quantity.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID *kernel.UUID,
	customerName string,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setCustomerName(customerName),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order to create.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the existing customer identifier and whether one was
// supplied. Without one, a new customer record is registered on the fly.
func (c CreateOrderCommand) CustomerID() (kernel.UUID, bool) {
	if c.customerID == nil {
		return kernel.UUID{}, false
	}
	return *c.customerID, true
}

// CustomerName returns the display name supplied with the request.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []OrderLine {
	return c.lines
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}

	id := *customerID
	c.customerID = &id
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	trimmed := strings.TrimSpace(customerName)
	if trimmed == "" {
		return errs.NewBusinessError(errs.CodeCustomerNameRequired, "customerName")
	}

	c.customerName = trimmed
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewBusinessError(errs.CodeOrderMustHaveItems, "items")
	}

	for _, line := range lines {
		if err := line.FlavorID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
