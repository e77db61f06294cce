package ports

import (
	"context"

	"pastelstand/internal/core/domain/model/customer"
	"pastelstand/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer
// aggregates. Lookups exclude volunteer records: those exist only to
// attribute internal orders and are not customer-facing identities.
type CustomerRepository interface {
	// Add persists a new customer aggregate.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate, such as a
	// casing correction recorded during confirmation.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a non-volunteer customer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
