// Package flavorrepo persists flavor aggregates with GORM. The flavor name
// carries a unique index; violations surface as business errors so admin
// callers get a structured response instead of a raw constraint failure.
package flavorrepo

import (
	"time"

	"pastelstand/internal/core/domain/model/flavor"
	"pastelstand/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FlavorDTO represents the database structure for catalog entries.
type FlavorDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name              string          `gorm:"uniqueIndex;not null"`
	Description       string          `gorm:"not null;default:''"`
	ImageURL          string          `gorm:"not null;default:''"`
	AvailableQuantity int             `gorm:"not null"`
	Price             decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt         time.Time       `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "flavors".
func (FlavorDTO) TableName() string {
	return "flavors"
}

func fromDomain(aggregate *flavor.Flavor) FlavorDTO {
	return FlavorDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		Description:       aggregate.Description(),
		ImageURL:          aggregate.ImageURL(),
		AvailableQuantity: aggregate.AvailableQuantity(),
		Price:             aggregate.Price(),
		CreatedAt:         aggregate.CreatedAt(),
	}
}

func toDomain(dto FlavorDTO) (*flavor.Flavor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return flavor.RestoreFlavor(
		id, dto.Name, dto.Description, dto.ImageURL,
		dto.AvailableQuantity, dto.Price, dto.CreatedAt,
	)
}
