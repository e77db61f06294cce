// Package ports defines repository interfaces for the stand manager domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their items and each item's status
// history; retrieval always rehydrates the complete aggregate.
type OrderRepository interface {
	// Add persists a new order aggregate including all its items and their
	// seeded initial history entries.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists item status changes on an existing aggregate and
	// appends any new history entries. History rows already persisted are
	// never touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier with items
	// (in creation order) and their histories (oldest first).
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForCustomer retrieves an order only when it is owned by the given
	// customer, used by cancellation to stop a customer from cancelling
	// another customer's order.
	GetForCustomer(ctx context.Context, id, customerID kernel.UUID) (*order.Order, error)
}
