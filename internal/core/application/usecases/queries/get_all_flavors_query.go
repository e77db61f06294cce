package queries

import (
	"errors"
	"time"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAllFlavorsQueryIsNotConstructed = errors.New(
	"GetAllFlavorsQuery must be created via NewGetAllFlavorsQuery constructor",
)

// GetAllFlavorsQuery retrieves the whole flavor catalog ordered by name.
type GetAllFlavorsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllFlavorsQuery creates a catalog query.
func NewGetAllFlavorsQuery() GetAllFlavorsQuery {
	return GetAllFlavorsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllFlavorsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllFlavorsQueryIsNotConstructed)
}

// FlavorView is the read model of one catalog entry.
type FlavorView struct {
	ID                kernel.UUID
	Name              string
	Description       string
	ImageURL          string
	AvailableQuantity int
	Price             decimal.Decimal
	CreatedAt         time.Time
}
