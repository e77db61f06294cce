package kernel

import (
	"fmt"

	"pastelstand/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID,
// one that never went through a constructor.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies orders, order items, flavors and customers. It wraps
// github.com/google/uuid so the rest of the domain never touches the
// library type directly, and so the zero value is detectably invalid.
//
// Construct through NewUUID, UUIDFromString or UUIDFromBytes; the value is
// immutable afterwards.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random version 4 identifier.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical textual form, as received in HTTP
// path and body parameters.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes restores an identifier from its 16-byte database
// representation. A nil UUID read back from storage is rejected.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID for persistence DTOs. Slice it
// (`id.Bytes()[:]`) when a []byte is needed.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both values carry the same identifier.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the zero value; any constructed UUID passes.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
