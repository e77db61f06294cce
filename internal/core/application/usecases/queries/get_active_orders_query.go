package queries

import (
	"errors"
	"strings"

	"pastelstand/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every order that still has at least one
// item in preparation, grouped by customer for the kitchen board. An
// optional search text narrows the result to customers whose name or
// identifier matches case-insensitively.
type GetActiveOrdersQuery struct {
	search string

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for the kitchen's active board.
// Search may be empty.
func NewGetActiveOrdersQuery(search string) GetActiveOrdersQuery {
	return GetActiveOrdersQuery{
		search: strings.TrimSpace(search),
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// Search returns the trimmed search text, empty when unfiltered.
func (q GetActiveOrdersQuery) Search() string {
	return q.search
}
