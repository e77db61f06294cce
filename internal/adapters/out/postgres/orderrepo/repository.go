// Package orderrepo persists order aggregates with GORM across three
// tables: orders, order_items and order_item_status_histories. Writes are
// explicit per table so history rows stay append only.
package orderrepo

import (
	"context"
	"errors"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/core/domain/model/order"
	"pastelstand/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with all its items and their initial history rows.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := orderFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	for _, item := range aggregate.Items() {
		itemDTO := itemFromDomain(aggregate.ID(), item)
		if err := r.db.WithContext(ctx).Create(&itemDTO).Error; err != nil {
			return err
		}

		for _, entry := range item.History() {
			historyDTO := historyFromDomain(item.ID(), entry)
			if err := r.db.WithContext(ctx).Create(&historyDTO).Error; err != nil {
				return err
			}
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves item status changes and appends history entries recorded
// since the aggregate was loaded. Existing history rows are left untouched.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for _, item := range aggregate.Items() {
		itemDTO := itemFromDomain(aggregate.ID(), item)
		result := r.db.WithContext(ctx).
			Model(&OrderItemDTO{}).
			Where("id = ?", itemDTO.ID).
			Select("*").
			Updates(&itemDTO)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		for _, entry := range item.History() {
			if !entry.IsNew() {
				continue
			}
			historyDTO := historyFromDomain(item.ID(), entry)
			if err := r.db.WithContext(ctx).Create(&historyDTO).Error; err != nil {
				return err
			}
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its items and their histories.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return r.rehydrate(ctx, dto)
}

// GetForCustomer retrieves an order only when the given customer owns it.
// An order belonging to someone else looks exactly like a missing order.
func (r *GormOrderRepository) GetForCustomer(ctx context.Context, id, customerID kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND customer_id = ?", id.Bytes(), customerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return r.rehydrate(ctx, dto)
}

func (r *GormOrderRepository) rehydrate(ctx context.Context, dto OrderDTO) (*order.Order, error) {
	var itemDTOs []OrderItemDTO
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&itemDTOs, "order_id = ?", dto.ID).Error
	if err != nil {
		return nil, err
	}

	itemIDs := make([]uuid.UUID, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		itemIDs = append(itemIDs, itemDTO.ID)
	}

	historiesByItem := make(map[uuid.UUID][]StatusHistoryDTO)
	if len(itemIDs) > 0 {
		var historyDTOs []StatusHistoryDTO
		err = r.db.WithContext(ctx).
			Order("changed_at, id").
			Find(&historyDTOs, "order_item_id IN ?", itemIDs).Error
		if err != nil {
			return nil, err
		}
		for _, h := range historyDTOs {
			historiesByItem[h.OrderItemID] = append(historiesByItem[h.OrderItemID], h)
		}
	}

	items := make([]*order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := itemToDomain(itemDTO, historiesByItem[itemDTO.ID])
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return orderToDomain(dto, items)
}
