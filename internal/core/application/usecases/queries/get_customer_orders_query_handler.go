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

// GetCustomerOrdersQueryHandler reads one customer's order timeline from
// the database, newest order first, items with their whole status history.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer timelines.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context, query GetCustomerOrdersQuery,
) ([]CustomerOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			c.name,
			o.total_amount,
			o.created_at
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC, o.id
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]CustomerOrderView, 0)
	orderIDs := make([]uuid.UUID, 0)

	for rows.Next() {
		var (
			rawOrderID   uuid.UUID
			customerName string
			totalAmount  decimal.Decimal
			createdAt    time.Time
		)
		if err = rows.Scan(&rawOrderID, &customerName, &totalAmount, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(rawOrderID[:])
		if idErr != nil {
			return nil, idErr
		}

		views = append(views, CustomerOrderView{
			OrderView: OrderView{
				ID:           orderID,
				CustomerID:   query.CustomerID(),
				CustomerName: customerName,
				TotalAmount:  totalAmount,
				CreatedAt:    createdAt,
			},
		})
		orderIDs = append(orderIDs, rawOrderID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	itemsByOrder, err := fetchItemViews(ctx, h.db, orderIDs, false)
	if err != nil {
		return nil, err
	}
	if err = attachHistories(ctx, h.db, itemsByOrder); err != nil {
		return nil, err
	}

	for i := range views {
		items := itemsByOrder[views[i].ID.Bytes()]
		views[i].Items = items
		views[i].IsCancelable = isCancelable(items)
	}

	return views, nil
}

// isCancelable mirrors the aggregate rule: at least one item and every item
// still Pending.
func isCancelable(items []OrderItemView) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if item.Status != order.Pending {
			return false
		}
	}
	return true
}
