package queries

import (
	"errors"
	"strings"

	"pastelstand/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves orders that have reached an end state:
// at least one completed or cancelled item. Newest orders first, grouped by
// customer, each item carrying its full status history. An optional search
// text narrows the result to matching customers.
type GetOrderHistoryQuery struct {
	search string

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query over finished orders.
// Search may be empty.
func NewGetOrderHistoryQuery(search string) GetOrderHistoryQuery {
	return GetOrderHistoryQuery{
		search: strings.TrimSpace(search),
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// Search returns the trimmed search text, empty when unfiltered.
func (q GetOrderHistoryQuery) Search() string {
	return q.search
}
