package order

import (
	"errors"
	"strings"
	"time"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder factory method. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents one checkout transaction. It is the aggregate root that
// owns its items and their status histories, and is the only entry point for
// mutating them.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning customer reference
//   - The customer name snapshot is captured at creation and decoupled from
//     later customer renames
//   - totalAmount equals the sum of its items' unit prices at the instant of
//     creation and is immutable thereafter
//   - Items advance monotonically forward through the workflow, or move to
//     Cancelled; the whole order can be cancelled only while every item is
//     still Pending
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the owning customer
	customerID kernel.UUID

	// customerName is the name snapshot captured at creation time
	customerName string

	// totalAmount is the sum of all items' unit prices, fixed at creation
	totalAmount decimal.Decimal

	// createdAt is when the order was placed
	createdAt time.Time

	// items are the exploded single-quantity order lines
	items []*Item

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new empty Order with validation. Items are added one at
// a time with AddItem, which keeps totalAmount consistent with the item set.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the owning customer's identifier
//   - customerName: name snapshot captured at creation (must be non-blank)
//   - createdAt: creation timestamp supplied by the caller's clock
//
// Returns the created order, or a validation error if any parameter is
// invalid.
func NewOrder(id, customerID kernel.UUID, customerName string, createdAt time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, errs.NewValueIsRequiredError("customerName")
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		customerName:  customerName,
		totalAmount:   decimal.Zero,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs a persisted Order from storage together with its
// items. The stored total amount is trusted as-is: it is a creation-time
// snapshot and intentionally not recomputed from items.
func RestoreOrder(
	id, customerID kernel.UUID,
	customerName string,
	totalAmount decimal.Decimal,
	createdAt time.Time,
	items []*Item,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		customerName:  customerName,
		totalAmount:   totalAmount,
		createdAt:     createdAt,
		items:         items,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CustomerName returns the name snapshot captured at creation time.
func (o *Order) CustomerName() string {
	return o.customerName
}

// TotalAmount returns the order total fixed at creation time.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns the order's items in creation order.
func (o *Order) Items() []*Item {
	return o.items
}

// Item returns the item with the given identifier, if present.
func (o *Order) Item(itemID kernel.UUID) (*Item, bool) {
	for _, item := range o.items {
		if item.id.IsEqual(itemID) {
			return item, true
		}
	}
	return nil, false
}

// AddItem creates one single-quantity item on the order in the initial
// Pending status, seeds its first history entry at createdAt, and adds the
// unit price to the order total. A request for quantity N is exploded by the
// caller into N AddItem calls, each tracked independently through the
// workflow.
//
// Returns the created item, or a validation error.
func (o *Order) AddItem(
	itemID kernel.UUID,
	flavorID kernel.UUID,
	flavorName string,
	unitPrice decimal.Decimal,
	notes string,
	createdAt time.Time,
) (*Item, error) {
	item, err := newItem(itemID, flavorID, flavorName, unitPrice, notes, createdAt)
	if err != nil {
		return nil, err
	}

	o.items = append(o.items, item)
	o.totalAmount = o.totalAmount.Add(unitPrice)
	return item, nil
}

// AdvanceItem moves one item forward through the workflow.
//
// When target is nil the next status in the canonical sequence is resolved
// automatically. An explicit target must differ from the current status
// (no-op advances are rejected even though the policy accepts same-index
// transitions) and must be a legal forward transition; an explicit Cancelled
// target is always rejected since cancellation is a distinct operation.
//
// Returns the updated item on success, or a business error:
//   - CodeOrderItemNotFound: no such item on this order
//   - CodeOrderItemAlreadyCompleted: item is already in a terminal status
//   - CodeOrderItemAlreadyAtFinalStage: nothing left to advance to
//   - CodeInvalidStatusTransition: explicit target is not a legal step
func (o *Order) AdvanceItem(itemID kernel.UUID, target *Status, now time.Time) (*Item, error) {
	item, ok := o.Item(itemID)
	if !ok {
		return nil, errs.NewBusinessError(errs.CodeOrderItemNotFound, "orderItemId")
	}

	if IsFinalStatus(item.status) {
		return nil, errs.NewBusinessError(errs.CodeOrderItemAlreadyCompleted, "targetStatus")
	}

	var resolved Status
	if target == nil {
		next, hasNext := NextStatus(item.status)
		if !hasNext {
			return nil, errs.NewBusinessError(errs.CodeOrderItemAlreadyAtFinalStage, "targetStatus")
		}
		resolved = next
	} else {
		resolved = *target
		if resolved == item.status || !IsValidForwardTransition(item.status, resolved) {
			return nil, errs.NewBusinessError(errs.CodeInvalidStatusTransition, "targetStatus")
		}
	}

	item.changeStatus(resolved, now)
	return item, nil
}

// IsCancelable reports whether the whole order can still be cancelled:
// it has at least one item and every item is still Pending.
func (o *Order) IsCancelable() bool {
	if len(o.items) == 0 {
		return false
	}
	for _, item := range o.items {
		if item.status != Pending {
			return false
		}
	}
	return true
}

// Cancel moves every item to the Cancelled status with a fresh history entry
// each. Once any item has started preparation the whole order is locked and
// CodeOrderCannotBeCancelled is returned.
func (o *Order) Cancel(now time.Time) error {
	if !o.IsCancelable() {
		return errs.NewBusinessError(errs.CodeOrderCannotBeCancelled, "orderId")
	}

	for _, item := range o.items {
		item.changeStatus(Cancelled, now)
	}
	return nil
}
