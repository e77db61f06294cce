package commands

import (
	"errors"
	"strings"

	"pastelstand/internal/pkg/errs"
	"pastelstand/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand represents a self-service registration with a
// display name.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a registration command with a trimmed,
// non-blank display name.
func NewRegisterCustomerCommand(name string) (RegisterCustomerCommand, error) {
	cmd := RegisterCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// Name returns the display name to register.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

func (c *RegisterCustomerCommand) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewBusinessError(errs.CodeCustomerNameRequired, "name")
	}

	c.name = trimmed
	return nil
}
