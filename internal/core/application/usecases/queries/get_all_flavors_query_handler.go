package queries

import (
	"context"
	"time"

	"pastelstand/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllFlavorsQueryHandler reads the flavor catalog from the database.
type GetAllFlavorsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllFlavorsQueryHandler creates a handler for catalog queries.
func NewGetAllFlavorsQueryHandler(db *gorm.DB) GetAllFlavorsQueryHandler {
	return GetAllFlavorsQueryHandler{db: db}
}

// Handle executes the query. Flavors come back ordered by name.
func (h GetAllFlavorsQueryHandler) Handle(
	ctx context.Context, query GetAllFlavorsQuery,
) ([]FlavorView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			image_url,
			available_quantity,
			price,
			created_at
		FROM flavors
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flavors := make([]FlavorView, 0)
	for rows.Next() {
		var (
			rawID             uuid.UUID
			name              string
			description       string
			imageURL          string
			availableQuantity int
			price             decimal.Decimal
			createdAt         time.Time
		)
		if err = rows.Scan(
			&rawID, &name, &description, &imageURL,
			&availableQuantity, &price, &createdAt,
		); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}

		flavors = append(flavors, FlavorView{
			ID:                id,
			Name:              name,
			Description:       description,
			ImageURL:          imageURL,
			AvailableQuantity: availableQuantity,
			Price:             price,
			CreatedAt:         createdAt,
		})
	}

	return flavors, rows.Err()
}
