package order

import (
	"time"

	"pastelstand/internal/core/domain/model/kernel"
)

// HistoryEntry is one row of an item's append-only status audit trail.
// Exactly one entry is recorded every time an item's status changes,
// including the initial Pending state at creation. Entries are immutable
// once written and ordered by their change timestamp.
type HistoryEntry struct {
	id        kernel.UUID
	status    Status
	changedAt time.Time

	// isNew marks entries appended during the current unit of work so the
	// repository can insert only rows that do not exist yet.
	isNew bool
}

// newHistoryEntry creates an entry for a status change happening now.
func newHistoryEntry(status Status, changedAt time.Time) HistoryEntry {
	return HistoryEntry{
		id:        kernel.NewUUID(),
		status:    status,
		changedAt: changedAt,
		isNew:     true,
	}
}

// RestoreHistoryEntry reconstructs a persisted entry from storage.
func RestoreHistoryEntry(id kernel.UUID, status Status, changedAt time.Time) (HistoryEntry, error) {
	if err := id.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		id:        id,
		status:    status,
		changedAt: changedAt,
	}, nil
}

// ID returns the entry's unique identifier.
func (h HistoryEntry) ID() kernel.UUID {
	return h.id
}

// Status returns the status recorded by this entry.
func (h HistoryEntry) Status() Status {
	return h.status
}

// ChangedAt returns when the status change happened.
func (h HistoryEntry) ChangedAt() time.Time {
	return h.changedAt
}

// IsNew reports whether the entry was appended during the current unit of
// work and has not been persisted yet.
func (h HistoryEntry) IsNew() bool {
	return h.isNew
}
