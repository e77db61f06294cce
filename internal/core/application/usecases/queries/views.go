// Package queries contains read-only views over the order, flavor and
// customer tables. Handlers read the database directly and never mutate
// state; aggregates and their invariants stay on the command side.
package queries

import (
	"time"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// StatusHistoryView is one recorded status transition of an order item.
type StatusHistoryView struct {
	Status    order.Status
	ChangedAt time.Time
}

// OrderItemView is the read model of a single-unit order item. History is
// populated only by queries that promise it, oldest entry first.
type OrderItemView struct {
	ID            kernel.UUID
	FlavorID      kernel.UUID
	FlavorName    string
	Quantity      int
	UnitPrice     decimal.Decimal
	Status        order.Status
	Notes         string
	CreatedAt     time.Time
	LastUpdatedAt *time.Time
	History       []StatusHistoryView
}

// OrderView is the read model of one order with whatever item subset the
// query promises.
type OrderView struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CustomerName string
	TotalAmount  decimal.Decimal
	CreatedAt    time.Time
	Items        []OrderItemView
}

// CustomerOrdersGroup is a set of orders grouped under the owning customer,
// carrying the customer's live name rather than per-order snapshots.
type CustomerOrdersGroup struct {
	CustomerID   kernel.UUID
	CustomerName string
	Orders       []OrderView
}
