package flavor

import (
	"errors"
	"strings"
	"time"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrFlavorIsNotConstructed is returned when a Flavor instance was not
// created through the NewFlavor factory method.
var ErrFlavorIsNotConstructed = errors.New("Flavor must be created via NewFlavor constructor")

// Flavor represents a sellable pastel flavor with its own stock and price.
// It is the aggregate that owns the inventory ledger: available quantity is
// mutated only through Reserve (order creation), Release (order
// cancellation), Restock (admin upsert) and SetInventory (admin absolute
// set).
//
// Flavor invariants:
//   - name is non-blank and unique across flavors (uniqueness is enforced by
//     the store's constraint; the aggregate enforces non-blankness)
//   - available quantity never goes below zero
//   - price is a non-negative two-decimal amount
type Flavor struct {
	id                kernel.UUID
	name              string
	description       string
	imageURL          string
	availableQuantity int
	price             decimal.Decimal
	createdAt         time.Time

	isConstructed bool
}

// NewFlavor creates a new Flavor with validation.
//
// Parameters:
//   - id: unique identifier for the flavor
//   - name: display name, trimmed, must be non-blank
//   - description, imageURL: optional presentation fields
//   - availableQuantity: initial stock, must not be negative
//   - price: unit price, must not be negative
//   - createdAt: creation timestamp supplied by the caller's clock
func NewFlavor(
	id kernel.UUID,
	name, description, imageURL string,
	availableQuantity int,
	price decimal.Decimal,
	createdAt time.Time,
) (*Flavor, error) {
	flavor := &Flavor{
		description:   strings.TrimSpace(description),
		imageURL:      strings.TrimSpace(imageURL),
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		flavor.setID(id),
		flavor.setName(name),
		flavor.setAvailableQuantity(availableQuantity),
		flavor.setPrice(price),
	); err != nil {
		return nil, err
	}

	return flavor, nil
}

// RestoreFlavor reconstructs a persisted Flavor from storage.
func RestoreFlavor(
	id kernel.UUID,
	name, description, imageURL string,
	availableQuantity int,
	price decimal.Decimal,
	createdAt time.Time,
) (*Flavor, error) {
	return NewFlavor(id, name, description, imageURL, availableQuantity, price, createdAt)
}

// Validate ensures the Flavor instance was properly constructed.
func (f *Flavor) Validate() error {
	if f == nil || !f.isConstructed {
		return ErrFlavorIsNotConstructed
	}
	return nil
}

// ID returns the flavor's unique identifier.
func (f *Flavor) ID() kernel.UUID {
	return f.id
}

// Name returns the flavor's display name.
func (f *Flavor) Name() string {
	return f.name
}

// Description returns the optional description, empty when unset.
func (f *Flavor) Description() string {
	return f.description
}

// ImageURL returns the optional image reference, empty when unset.
func (f *Flavor) ImageURL() string {
	return f.imageURL
}

// AvailableQuantity returns the current stock level.
func (f *Flavor) AvailableQuantity() int {
	return f.availableQuantity
}

// Price returns the current unit price.
func (f *Flavor) Price() decimal.Decimal {
	return f.price
}

// CreatedAt returns when the flavor was created.
func (f *Flavor) CreatedAt() time.Time {
	return f.createdAt
}

// CanReserve checks whether quantity units can be reserved without mutating
// stock. Returns a CodeFlavorOutOfStock business error carrying the flavor
// name when stock is insufficient. Callers accumulate these errors across a
// whole order request before deciding to abort.
func (f *Flavor) CanReserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	if f.availableQuantity < quantity {
		return errs.NewBusinessError(errs.CodeFlavorOutOfStock, "items", f.name)
	}
	return nil
}

// Reserve decrements available stock by quantity. It fails with the same
// error as CanReserve when stock is insufficient, leaving stock unchanged.
// Reservation must happen inside the same transaction as the order insert so
// a concurrent reservation cannot oversell.
func (f *Flavor) Reserve(quantity int) error {
	if err := f.CanReserve(quantity); err != nil {
		return err
	}
	f.availableQuantity -= quantity
	return nil
}

// Release returns quantity units to stock, used when an order is cancelled.
// No upper bound is enforced.
func (f *Flavor) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	f.availableQuantity += quantity
	return nil
}

// Restock adds quantity units to stock during an admin upsert.
func (f *Flavor) Restock(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	f.availableQuantity += quantity
	return nil
}

// SetInventory replaces the stock level with an absolute value.
func (f *Flavor) SetInventory(quantity int) error {
	return f.setAvailableQuantity(quantity)
}

// SetPrice replaces the unit price. Existing order items keep their
// snapshotted prices.
func (f *Flavor) SetPrice(price decimal.Decimal) error {
	return f.setPrice(price)
}

// Rename changes the flavor's display name.
func (f *Flavor) Rename(name string) error {
	return f.setName(name)
}

// UpdateDetails overwrites description and image when the supplied values
// are non-blank; blank values leave the current ones untouched.
func (f *Flavor) UpdateDetails(description, imageURL string) {
	if trimmed := strings.TrimSpace(description); trimmed != "" {
		f.description = trimmed
	}
	if trimmed := strings.TrimSpace(imageURL); trimmed != "" {
		f.imageURL = trimmed
	}
}

// ReplaceDetails replaces description and image unconditionally, used by the
// full-update admin operation.
func (f *Flavor) ReplaceDetails(description, imageURL string) {
	f.description = strings.TrimSpace(description)
	f.imageURL = strings.TrimSpace(imageURL)
}

func (f *Flavor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Flavor) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewBusinessError(errs.CodeFlavorNameRequired, "name")
	}
	f.name = trimmed
	return nil
}

func (f *Flavor) setAvailableQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidError("availableQuantity")
	}
	f.availableQuantity = quantity
	return nil
}

func (f *Flavor) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}
	f.price = price
	return nil
}
