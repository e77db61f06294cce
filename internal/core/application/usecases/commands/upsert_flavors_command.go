package commands

import (
	"errors"
	"strings"

	"pastelstand/internal/pkg/errs"
	"pastelstand/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpsertFlavorsCommandIsNotConstructed = errors.New(
	"UpsertFlavorsCommand must be created via NewUpsertFlavorsCommand constructor",
)

// FlavorSpec is one requested flavor upsert: a name keyed against the
// catalog, stock to add, the price to apply, and optional presentation
// fields that overwrite existing values only when non-blank.
type FlavorSpec struct {
	Name              string
	Description       string
	ImageURL          string
	AvailableQuantity int
	Price             decimal.Decimal
}

// UpsertFlavorsCommand represents an admin request to upsert one or more
// flavors by name. An existing flavor gains the requested quantity and takes
// the requested price; an unknown name creates a new flavor.
type UpsertFlavorsCommand struct { //nolint:recvcheck //using for validation
	specs []FlavorSpec

	guard guard.ConstructorGuard
}

// NewUpsertFlavorsCommand creates a flavor upsert command.
// Requires at least one spec with a non-blank name, non-negative quantity
// and non-negative price. Names duplicated within the request are rejected
// case-insensitively, one accumulated error per duplicate, so a batch caller
// sees every collision at once.
func NewUpsertFlavorsCommand(specs []FlavorSpec) (UpsertFlavorsCommand, error) {
	cmd := UpsertFlavorsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSpecs(specs); err != nil {
		return UpsertFlavorsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertFlavorsCommand) Validate() error {
	return c.guard.Validate(ErrUpsertFlavorsCommandIsNotConstructed)
}

// Specs returns the requested upserts with trimmed names.
func (c UpsertFlavorsCommand) Specs() []FlavorSpec {
	return c.specs
}

func (c *UpsertFlavorsCommand) setSpecs(specs []FlavorSpec) error {
	if len(specs) == 0 {
		return errs.NewValueIsRequiredError("flavors")
	}

	trimmed := make([]FlavorSpec, len(specs))
	seen := make(map[string]bool, len(specs))
	var duplicates errs.BusinessErrors

	for i, spec := range specs {
		spec.Name = strings.TrimSpace(spec.Name)
		if spec.Name == "" {
			return errs.NewBusinessError(errs.CodeFlavorNameRequired, "name")
		}
		if spec.AvailableQuantity < 0 {
			return errs.NewValueIsInvalidError("availableQuantity")
		}
		if spec.Price.IsNegative() {
			return errs.NewValueIsInvalidError("price")
		}

		key := strings.ToLower(spec.Name)
		if seen[key] {
			duplicates = append(duplicates,
				errs.NewBusinessError(errs.CodeFlavorNameExists, "name", spec.Name))
		}
		seen[key] = true
		trimmed[i] = spec
	}

	if len(duplicates) > 0 {
		return duplicates
	}

	c.specs = trimmed
	return nil
}
