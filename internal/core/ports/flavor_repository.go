package ports

import (
	"context"

	"pastelstand/internal/core/domain/model/flavor"
	"pastelstand/internal/core/domain/model/kernel"
)

// FlavorRepository defines the persistence contract for flavor aggregates.
// Stock mutations performed on the aggregate (reserve, release, restock) are
// persisted via Update and must run inside the same transaction as the order
// mutation that caused them.
type FlavorRepository interface {
	// Add persists a new flavor aggregate. The flavor name carries a unique
	// constraint; a name collision surfaces as a business error.
	Add(ctx context.Context, aggregate *flavor.Flavor) error

	// Update persists changes to an existing flavor aggregate.
	Update(ctx context.Context, aggregate *flavor.Flavor) error

	// Get retrieves a flavor aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*flavor.Flavor, error)

	// GetByIDs retrieves all flavors matching the given identifier set in a
	// single batched fetch, locking the rows for update within the calling
	// transaction so concurrent stock mutations serialize. Missing
	// identifiers are simply absent from the result; the caller decides
	// whether an absence is an error.
	GetByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*flavor.Flavor, error)

	// GetByName retrieves a flavor by its exact name. Returns an
	// ObjectNotFoundError when no flavor carries that name.
	GetByName(ctx context.Context, name string) (*flavor.Flavor, error)
}
