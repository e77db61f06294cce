package queries

import (
	"context"
	"time"

	"pastelstand/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler reads the active kitchen board from the
// database: orders with at least one item still in preparation, grouped by
// customer, each order carrying only its non-terminal items.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for the active board.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Groups come back in order of each customer's
// earliest active order, orders within a group by creation time, items
// within an order by creation time.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context, query GetActiveOrdersQuery,
) ([]CustomerOrdersGroup, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			c.id,
			c.name,
			o.total_amount,
			o.created_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE EXISTS (
			SELECT 1 FROM order_items i
			WHERE i.order_id = o.id AND i.status NOT IN ?
		)`
	args := []any{terminalStatusValues()}
	if search := query.Search(); search != "" {
		sql += ` AND (c.name ILIKE ? OR CAST(c.id AS TEXT) ILIKE ?)`
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}
	sql += ` ORDER BY o.created_at, o.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]CustomerOrdersGroup, 0)
	groupIndex := make(map[uuid.UUID]int)
	orderIDs := make([]uuid.UUID, 0)

	for rows.Next() {
		var (
			rawOrderID    uuid.UUID
			rawCustomerID uuid.UUID
			customerName  string
			totalAmount   decimal.Decimal
			createdAt     time.Time
		)
		if err = rows.Scan(
			&rawOrderID, &rawCustomerID, &customerName, &totalAmount, &createdAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(rawOrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		customerID, idErr := kernel.UUIDFromBytes(rawCustomerID[:])
		if idErr != nil {
			return nil, idErr
		}

		idx, ok := groupIndex[rawCustomerID]
		if !ok {
			idx = len(groups)
			groupIndex[rawCustomerID] = idx
			groups = append(groups, CustomerOrdersGroup{
				CustomerID:   customerID,
				CustomerName: customerName,
			})
		}

		groups[idx].Orders = append(groups[idx].Orders, OrderView{
			ID:           orderID,
			CustomerID:   customerID,
			CustomerName: customerName,
			TotalAmount:  totalAmount,
			CreatedAt:    createdAt,
		})
		orderIDs = append(orderIDs, rawOrderID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	itemsByOrder, err := fetchItemViews(ctx, h.db, orderIDs, true)
	if err != nil {
		return nil, err
	}

	for gi := range groups {
		for oi := range groups[gi].Orders {
			raw := groups[gi].Orders[oi].ID.Bytes()
			groups[gi].Orders[oi].Items = itemsByOrder[raw]
		}
	}

	return groups, nil
}
