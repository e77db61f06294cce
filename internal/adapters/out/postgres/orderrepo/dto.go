package orderrepo

import (
	"time"

	"pastelstand/internal/adapters/out/postgres/customerrepo"
	"pastelstand/internal/adapters/out/postgres/flavorrepo"
	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for orders. The customer name
// is denormalized onto the row as a snapshot taken at order creation.
type OrderDTO struct {
	ID           uuid.UUID                 `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID                 `gorm:"type:uuid;not null;index"`
	Customer     *customerrepo.CustomerDTO `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	CustomerName string                    `gorm:"not null"`
	TotalAmount  decimal.Decimal           `gorm:"type:numeric(10,2);not null"`
	CreatedAt    time.Time                 `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for order items. Flavor
// name and unit price are snapshots so later catalog edits never rewrite
// past orders. Deleting a flavor with sold items is rejected by the
// RESTRICT constraint.
type OrderItemDTO struct {
	ID            uuid.UUID              `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID              `gorm:"type:uuid;not null;index"`
	Order         *OrderDTO              `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	FlavorID      uuid.UUID              `gorm:"type:uuid;not null"`
	Flavor        *flavorrepo.FlavorDTO  `gorm:"foreignKey:FlavorID;constraint:OnDelete:RESTRICT"`
	FlavorName    string                 `gorm:"not null"`
	Quantity      int                    `gorm:"not null"`
	UnitPrice     decimal.Decimal        `gorm:"type:numeric(10,2);not null"`
	Status        int                    `gorm:"not null;index"`
	Notes         string                 `gorm:"not null;default:''"`
	CreatedAt     time.Time              `gorm:"not null"`
	LastUpdatedAt *time.Time
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StatusHistoryDTO represents one audit entry of an item's status timeline.
// Rows are append only.
type StatusHistoryDTO struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	OrderItemID uuid.UUID     `gorm:"type:uuid;not null;index"`
	OrderItem   *OrderItemDTO `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE"`
	Status      int           `gorm:"not null"`
	ChangedAt   time.Time     `gorm:"not null"`
}

// TableName overrides GORM's default naming.
func (StatusHistoryDTO) TableName() string {
	return "order_item_status_histories"
}

func orderFromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		CustomerName: aggregate.CustomerName(),
		TotalAmount:  aggregate.TotalAmount(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func itemFromDomain(orderID kernel.UUID, item *order.Item) OrderItemDTO {
	return OrderItemDTO{
		ID:            item.ID().Bytes(),
		OrderID:       orderID.Bytes(),
		FlavorID:      item.FlavorID().Bytes(),
		FlavorName:    item.FlavorName(),
		Quantity:      item.Quantity(),
		UnitPrice:     item.UnitPrice(),
		Status:        int(item.Status()),
		Notes:         item.Notes(),
		CreatedAt:     item.CreatedAt(),
		LastUpdatedAt: item.LastUpdatedAt(),
	}
}

func historyFromDomain(itemID kernel.UUID, entry order.HistoryEntry) StatusHistoryDTO {
	return StatusHistoryDTO{
		ID:          entry.ID().Bytes(),
		OrderItemID: itemID.Bytes(),
		Status:      int(entry.Status()),
		ChangedAt:   entry.ChangedAt(),
	}
}

func itemToDomain(dto OrderItemDTO, histories []StatusHistoryDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	flavorID, err := kernel.UUIDFromBytes(dto.FlavorID[:])
	if err != nil {
		return nil, err
	}

	entries := make([]order.HistoryEntry, 0, len(histories))
	for _, h := range histories {
		entryID, idErr := kernel.UUIDFromBytes(h.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		entry, entryErr := order.RestoreHistoryEntry(entryID, order.Status(h.Status), h.ChangedAt)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return order.RestoreItem(
		id, flavorID, dto.FlavorName, order.Status(dto.Status),
		dto.Notes, dto.UnitPrice, dto.CreatedAt, dto.LastUpdatedAt, entries,
	)
}

func orderToDomain(dto OrderDTO, items []*order.Item) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, dto.CustomerName, dto.TotalAmount, dto.CreatedAt, items)
}
