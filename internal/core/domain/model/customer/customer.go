// Package customer implements the Customer aggregate: the identity a set of
// orders belongs to. Customers register once with a display name and are
// later confirmed by exact case-insensitive name match; a confirmation may
// correct the stored casing without breaking the identity.
package customer

import (
	"errors"
	"strings"
	"time"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the identity a set of orders belongs to. The volunteer flag
// distinguishes internal volunteer records from self-registered customers;
// volunteer records are excluded from customer-facing lookups.
type Customer struct {
	id          kernel.UUID
	name        string
	isVolunteer bool
	createdAt   time.Time

	isConstructed bool
}

// NewCustomer creates a new Customer with a trimmed, non-blank display name.
func NewCustomer(id kernel.UUID, name string, isVolunteer bool, createdAt time.Time) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, errs.NewBusinessError(errs.CodeCustomerNameRequired, "name")
	}

	return &Customer{
		id:            id,
		name:          trimmed,
		isVolunteer:   isVolunteer,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreCustomer reconstructs a persisted Customer from storage.
func RestoreCustomer(id kernel.UUID, name string, isVolunteer bool, createdAt time.Time) (*Customer, error) {
	return NewCustomer(id, name, isVolunteer, createdAt)
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// IsVolunteer reports whether this is an internal volunteer record.
func (c *Customer) IsVolunteer() bool {
	return c.isVolunteer
}

// CreatedAt returns when the customer registered.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// Confirm validates providedName against the stored name with an exact
// case-insensitive match, establishing that the caller owns this identity.
// When the match succeeds but the casing differs, the stored name is
// corrected to the provided casing; the second result reports whether such a
// correction happened so callers know to persist it.
//
// Returns CodeCustomerNameRequired for a blank name and
// CodeCustomerNameMismatch when the names do not match.
func (c *Customer) Confirm(providedName string) (renamed bool, err error) {
	trimmed := strings.TrimSpace(providedName)
	if trimmed == "" {
		return false, errs.NewBusinessError(errs.CodeCustomerNameRequired, "name")
	}

	if !strings.EqualFold(c.name, trimmed) {
		return false, errs.NewBusinessError(errs.CodeCustomerNameMismatch, "name")
	}

	if c.name != trimmed {
		c.name = trimmed
		return true, nil
	}

	return false, nil
}
