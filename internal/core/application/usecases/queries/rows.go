package queries

import (
	"context"
	"time"

	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func terminalStatusValues() []int {
	return []int{int(order.Completed), int(order.Cancelled)}
}

// fetchItemViews loads item read models for a set of orders, keyed by the
// raw order id. With activeOnly set, items already in a terminal status are
// skipped. Items come back in creation order within each order.
func fetchItemViews(
	ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID, activeOnly bool,
) (map[uuid.UUID][]OrderItemView, error) {
	itemsByOrder := make(map[uuid.UUID][]OrderItemView)
	if len(orderIDs) == 0 {
		return itemsByOrder, nil
	}

	sql := `
		SELECT
			id,
			order_id,
			flavor_id,
			flavor_name,
			quantity,
			unit_price,
			status,
			notes,
			created_at,
			last_updated_at
		FROM order_items
		WHERE order_id IN ?`
	args := []any{orderIDs}
	if activeOnly {
		sql += ` AND status NOT IN ?`
		args = append(args, terminalStatusValues())
	}
	sql += ` ORDER BY created_at, id`

	rows, err := db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rawID         uuid.UUID
			rawOrderID    uuid.UUID
			rawFlavorID   uuid.UUID
			flavorName    string
			quantity      int
			unitPrice     decimal.Decimal
			status        int
			notes         string
			createdAt     time.Time
			lastUpdatedAt *time.Time
		)

		if err = rows.Scan(
			&rawID, &rawOrderID, &rawFlavorID, &flavorName, &quantity,
			&unitPrice, &status, &notes, &createdAt, &lastUpdatedAt,
		); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}
		flavorID, idErr := kernel.UUIDFromBytes(rawFlavorID[:])
		if idErr != nil {
			return nil, idErr
		}

		itemsByOrder[rawOrderID] = append(itemsByOrder[rawOrderID], OrderItemView{
			ID:            itemID,
			FlavorID:      flavorID,
			FlavorName:    flavorName,
			Quantity:      quantity,
			UnitPrice:     unitPrice,
			Status:        order.Status(status),
			Notes:         notes,
			CreatedAt:     createdAt,
			LastUpdatedAt: lastUpdatedAt,
		})
	}

	return itemsByOrder, rows.Err()
}

// attachHistories loads every item's status history, oldest entry first, and
// attaches it to the views in place.
func attachHistories(
	ctx context.Context, db *gorm.DB, itemsByOrder map[uuid.UUID][]OrderItemView,
) error {
	itemIndex := make(map[uuid.UUID]*OrderItemView)
	itemIDs := make([]uuid.UUID, 0)
	for orderID := range itemsByOrder {
		items := itemsByOrder[orderID]
		for i := range items {
			raw := items[i].ID.Bytes()
			itemIndex[raw] = &items[i]
			itemIDs = append(itemIDs, raw)
		}
	}
	if len(itemIDs) == 0 {
		return nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_item_id,
			status,
			changed_at
		FROM order_item_status_histories
		WHERE order_item_id IN ?
		ORDER BY changed_at, id
	`, itemIDs).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rawItemID uuid.UUID
			status    int
			changedAt time.Time
		)
		if err = rows.Scan(&rawItemID, &status, &changedAt); err != nil {
			return err
		}

		if item, ok := itemIndex[rawItemID]; ok {
			item.History = append(item.History, StatusHistoryView{
				Status:    order.Status(status),
				ChangedAt: changedAt,
			})
		}
	}

	return rows.Err()
}
