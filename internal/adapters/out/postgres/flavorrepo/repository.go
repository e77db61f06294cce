package flavorrepo

import (
	"context"
	"errors"

	"pastelstand/internal/core/domain/model/flavor"
	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFlavorRepository implements FlavorRepository using GORM.
type GormFlavorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFlavorRepository creates a new GORM flavor repository.
func NewGormFlavorRepository(db *gorm.DB, tracker aggregateTracker) *GormFlavorRepository {
	return &GormFlavorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new flavor to the database. A name collision on the unique
// index is returned as a business error carrying the offending name.
func (r *GormFlavorRepository) Add(ctx context.Context, aggregate *flavor.Flavor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewBusinessError(errs.CodeFlavorNameExists, "name", aggregate.Name())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing flavor to the database.
func (r *GormFlavorRepository) Update(ctx context.Context, aggregate *flavor.Flavor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&FlavorDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewBusinessError(errs.CodeFlavorNameExists, "name", aggregate.Name())
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a flavor by ID.
func (r *GormFlavorRepository) Get(ctx context.Context, id kernel.UUID) (*flavor.Flavor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FlavorDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("flavorId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves all flavors matching the given identifiers in one query.
// Identifiers without a matching row are absent from the result map.
//
// The rows are read with SELECT ... FOR UPDATE. Both callers mutate stock on
// the returned aggregates inside the surrounding transaction, and without the
// row lock two concurrent reservations of the last unit would each read the
// old quantity and both write an absolute value back.
func (r *GormFlavorRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*flavor.Flavor, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []FlavorDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Find(&dtos, "id IN ?", raw).Error
	if err != nil {
		return nil, err
	}

	flavors := make(map[kernel.UUID]*flavor.Flavor, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		flavors[aggregate.ID()] = aggregate
	}

	return flavors, nil
}

// GetByName retrieves a flavor by its exact name.
func (r *GormFlavorRepository) GetByName(ctx context.Context, name string) (*flavor.Flavor, error) {
	var dto FlavorDTO
	err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("name", name)
		}
		return nil, err
	}

	return toDomain(dto)
}
