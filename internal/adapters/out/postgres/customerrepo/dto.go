// Package customerrepo persists customer aggregates with GORM.
package customerrepo

import (
	"time"

	"pastelstand/internal/core/domain/model/customer"
	"pastelstand/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for customer records.
type CustomerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	IsVolunteer bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		IsVolunteer: aggregate.IsVolunteer(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.IsVolunteer, dto.CreatedAt)
}
