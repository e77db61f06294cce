package order

import (
	"fmt"

	"pastelstand/internal/pkg/errs"
)

// Status represents the lifecycle state of an order item.
// It implements a state machine with a fixed forward sequence of preparation
// stages, plus a side-terminal Cancelled state reachable from any non-final
// stage but never through the forward sequence.
//
// State transitions:
//
//	Pending ──> Frying ──> ReadyForPickup ──> Completed
//	   │          │              │
//	   └──────────┴──────────────┴──> Cancelled
//
// Status is a value object that answers transition-legality queries and
// provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order item is first created.
	// Items in this status have not entered preparation yet; an order is
	// cancelable only while every item is still Pending.
	Pending

	// Frying indicates the item is being prepared in the kitchen.
	Frying

	// ReadyForPickup indicates preparation is done and the item is waiting
	// at the counter.
	ReadyForPickup

	// Completed indicates the item has been handed over to the customer.
	// This is the final stage of the forward sequence.
	Completed

	// Cancelled is the side-terminal state. It is reachable only through
	// order cancellation, never through the forward sequence.
	Cancelled
)

// orderedStatuses is the canonical forward sequence. Cancelled is
// deliberately excluded: it has no position in the ordering.
var orderedStatuses = [...]Status{Pending, Frying, ReadyForPickup, Completed}

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Frying:         "Frying",
		ReadyForPickup: "ReadyForPickup",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		Frying:         "Frying",
		ReadyForPickup: "ReadyForPickup",
		Completed:      "Completed",
		Cancelled:      "Cancelled",
	}
}

// statusIndex returns the position of s in the canonical forward sequence,
// or -1 when s is not part of it (Unknown, Cancelled).
func statusIndex(s Status) int {
	for i, ordered := range orderedStatuses {
		if ordered == s {
			return i
		}
	}
	return -1
}

// NextStatus returns the status immediately following current in the
// canonical forward sequence. The second result is false when current has no
// successor: it is the last ordered status, or it is outside the sequence
// entirely (Cancelled, Unknown).
//
// Example:
//
//	next, ok := order.NextStatus(order.Pending) // Frying, true
//	_, ok = order.NextStatus(order.Completed)   // _, false
func NextStatus(current Status) (Status, bool) {
	index := statusIndex(current)
	if index < 0 || index+1 >= len(orderedStatuses) {
		return Unknown, false
	}
	return orderedStatuses[index+1], true
}

// IsValidForwardTransition reports whether moving from current to target is
// legal under the workflow policy: both statuses must be part of the
// canonical sequence, and target's position must be equal to current's or
// exactly one greater. Same-position transitions are accepted here so a
// caller can re-request the current value; the Order aggregate separately
// rejects no-op advances.
func IsValidForwardTransition(current, target Status) bool {
	currentIndex := statusIndex(current)
	targetIndex := statusIndex(target)
	return currentIndex >= 0 && targetIndex >= 0 &&
		targetIndex >= currentIndex && targetIndex <= currentIndex+1
}

// IsFinalStatus reports whether status is terminal: either the designated
// Cancelled marker or the last position of the canonical sequence.
func IsFinalStatus(status Status) bool {
	return status == Cancelled || statusIndex(status) == len(orderedStatuses)-1
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Frying, ReadyForPickup, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus converts a string representation back into a Status.
// Only valid statuses parse successfully; anything else returns an error.
// Used at the transport boundary where target statuses arrive as names.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}
