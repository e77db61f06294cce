// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pastelstand/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// FlavorRepoFactory provides access to the flavor repository within a transaction.
	FlavorRepoFactory interface {
		FlavorRepository() ports.FlavorRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderUoW manages transactions for order-only operations,
	// such as advancing an item through the workflow.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FlavorUoW manages transactions for flavor-only operations
	// (admin upserts, price and inventory updates).
	FlavorUoW interface {
		TxManager
		FlavorRepoFactory
	}

	// FlavorUoWFactory creates new flavor unit of work instances.
	FlavorUoWFactory interface {
		Create() FlavorUoW
	}

	// CustomerUoW manages transactions for customer-only operations
	// (registration, confirmation).
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// OrderFlavorUoW manages transactions spanning orders and flavor stock.
	// Used by cancellation, which releases reserved stock while cancelling
	// the order's items.
	OrderFlavorUoW interface {
		TxManager
		OrderRepoFactory
		FlavorRepoFactory
	}

	// OrderFlavorUoWFactory creates new order+flavor unit of work instances.
	OrderFlavorUoWFactory interface {
		Create() OrderFlavorUoW
	}

	// UoW manages transactions across all three aggregates. Used by order
	// creation, which resolves the customer, reserves flavor stock, and
	// inserts the order in one atomic transaction.
	UoW interface {
		TxManager
		OrderRepoFactory
		FlavorRepoFactory
		CustomerRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
