package order

import (
	"errors"
	"time"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the aggregate's AddItem method or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via Order.AddItem or RestoreItem")

// Item is one single-quantity unit of a flavor within an order, tracked
// independently through the preparation workflow. A multi-quantity request
// explodes into multiple Item rows at order creation.
//
// Item invariants:
//   - quantity is always 1
//   - unitPrice is a point-in-time snapshot of the flavor's price, immune to
//     later price changes
//   - every status change appends exactly one HistoryEntry
type Item struct {
	id            kernel.UUID
	flavorID      kernel.UUID
	flavorName    string
	quantity      int
	status        Status
	notes         string
	unitPrice     decimal.Decimal
	createdAt     time.Time
	lastUpdatedAt *time.Time
	history       []HistoryEntry

	isConstructed bool
}

// newItem creates an Item in the initial Pending status with its first
// history entry seeded at createdAt. Only the Order aggregate calls this.
func newItem(
	id kernel.UUID,
	flavorID kernel.UUID,
	flavorName string,
	unitPrice decimal.Decimal,
	notes string,
	createdAt time.Time,
) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := flavorID.Validate(); err != nil {
		return nil, err
	}
	if unitPrice.IsNegative() {
		return nil, errs.NewValueIsInvalidError("unitPrice")
	}

	return &Item{
		id:            id,
		flavorID:      flavorID,
		flavorName:    flavorName,
		quantity:      1,
		status:        Pending,
		notes:         notes,
		unitPrice:     unitPrice,
		createdAt:     createdAt,
		history:       []HistoryEntry{newHistoryEntry(Pending, createdAt)},
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a persisted Item from storage, including its
// status history. It bypasses the initial-status seeding performed by
// newItem since the persisted history already contains it.
func RestoreItem(
	id kernel.UUID,
	flavorID kernel.UUID,
	flavorName string,
	status Status,
	notes string,
	unitPrice decimal.Decimal,
	createdAt time.Time,
	lastUpdatedAt *time.Time,
	history []HistoryEntry,
) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := flavorID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if unitPrice.IsNegative() {
		return nil, errs.NewValueIsInvalidError("unitPrice")
	}

	return &Item{
		id:            id,
		flavorID:      flavorID,
		flavorName:    flavorName,
		quantity:      1,
		status:        status,
		notes:         notes,
		unitPrice:     unitPrice,
		createdAt:     createdAt,
		lastUpdatedAt: lastUpdatedAt,
		history:       history,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// FlavorID returns the identifier of the flavor this item was ordered as.
func (i *Item) FlavorID() kernel.UUID {
	return i.flavorID
}

// FlavorName returns the display name of the item's flavor.
func (i *Item) FlavorName() string {
	return i.flavorName
}

// Quantity returns the item quantity, which is always 1.
func (i *Item) Quantity() int {
	return i.quantity
}

// Status returns the item's current workflow status.
func (i *Item) Status() Status {
	return i.status
}

// Notes returns optional preparation notes supplied by the customer.
func (i *Item) Notes() string {
	return i.notes
}

// UnitPrice returns the price snapshotted from the flavor at order time.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// CreatedAt returns when the item was created.
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// LastUpdatedAt returns when the item's status last changed.
// Returns nil if the status never changed after creation.
func (i *Item) LastUpdatedAt() *time.Time {
	return i.lastUpdatedAt
}

// History returns the item's status history, oldest entry first.
func (i *Item) History() []HistoryEntry {
	return i.history
}

// changeStatus sets the item's status and last-updated timestamp and appends
// one history entry. Transition legality is checked by the Order aggregate
// before calling this.
func (i *Item) changeStatus(target Status, now time.Time) {
	i.status = target
	changedAt := now
	i.lastUpdatedAt = &changedAt
	i.history = append(i.history, newHistoryEntry(target, now))
}
