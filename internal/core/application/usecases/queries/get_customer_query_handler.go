package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerQueryHandler reads one customer record from the database.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for customer lookups.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no
// non-volunteer customer has that identifier.
func (h GetCustomerQueryHandler) Handle(
	ctx context.Context, query GetCustomerQuery,
) (CustomerView, error) {
	if err := query.Validate(); err != nil {
		return CustomerView{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			created_at
		FROM customers
		WHERE id = ? AND is_volunteer = FALSE
	`, query.CustomerID().Bytes()).Row()

	var (
		rawID     uuid.UUID
		name      string
		createdAt time.Time
	)
	if err := row.Scan(&rawID, &name, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CustomerView{}, errs.NewObjectNotFoundError("customerId", query.CustomerID().String())
		}
		return CustomerView{}, err
	}

	id, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return CustomerView{}, err
	}

	return CustomerView{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt,
	}, nil
}
