package queries

import (
	"errors"
	"time"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery retrieves one customer record by identifier. Volunteer
// records are internal and excluded from the lookup.
type GetCustomerQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a customer lookup query.
func NewGetCustomerQuery(customerID kernel.UUID) (GetCustomerQuery, error) {
	query := GetCustomerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCustomerID(customerID); err != nil {
		return GetCustomerQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerID returns the identifier to look up.
func (q GetCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetCustomerQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

// CustomerView is the read model of one customer record.
type CustomerView struct {
	ID        kernel.UUID
	Name      string
	CreatedAt time.Time
}
