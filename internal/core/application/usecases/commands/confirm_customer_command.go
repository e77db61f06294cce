package commands

import (
	"errors"
	"strings"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/pkg/errs"
	"pastelstand/internal/pkg/guard"
)

var ErrConfirmCustomerCommandIsNotConstructed = errors.New(
	"ConfirmCustomerCommand must be created via NewConfirmCustomerCommand constructor",
)

// ConfirmCustomerCommand represents a returning customer proving ownership
// of an identity by supplying its display name alongside the identifier.
type ConfirmCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string

	guard guard.ConstructorGuard
}

// NewConfirmCustomerCommand creates a confirmation command.
func NewConfirmCustomerCommand(customerID kernel.UUID, name string) (ConfirmCustomerCommand, error) {
	cmd := ConfirmCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setName(name),
	); err != nil {
		return ConfirmCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmCustomerCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to confirm.
func (c ConfirmCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the display name supplied for the match.
func (c ConfirmCustomerCommand) Name() string {
	return c.name
}

func (c *ConfirmCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *ConfirmCustomerCommand) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewBusinessError(errs.CodeCustomerNameRequired, "name")
	}

	c.name = trimmed
	return nil
}
