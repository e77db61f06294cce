package queries

import (
	"context"
	"time"

	"pastelstand/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetDailyReportQueryHandler reads one UTC day of orders, items and status
// history from the database and aggregates them with BuildDailyReport.
type GetDailyReportQueryHandler struct {
	db *gorm.DB
}

// NewGetDailyReportQueryHandler creates a handler for daily reports.
func NewGetDailyReportQueryHandler(db *gorm.DB) GetDailyReportQueryHandler {
	return GetDailyReportQueryHandler{db: db}
}

// Handle executes the report query.
func (h GetDailyReportQueryHandler) Handle(
	ctx context.Context, query GetDailyReportQuery,
) (DailyReportView, error) {
	if err := query.Validate(); err != nil {
		return DailyReportView{}, err
	}

	from := query.Date()
	to := from.Add(24 * time.Hour)

	orders, err := h.fetchOrders(ctx, from, to)
	if err != nil {
		return DailyReportView{}, err
	}

	orderIDs := make([]uuid.UUID, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	items, err := h.fetchItems(ctx, orderIDs)
	if err != nil {
		return DailyReportView{}, err
	}

	itemIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
	}

	histories, err := h.fetchHistories(ctx, itemIDs)
	if err != nil {
		return DailyReportView{}, err
	}

	return BuildDailyReport(query.Date(), orders, items, histories), nil
}

func (h GetDailyReportQueryHandler) fetchOrders(
	ctx context.Context, from, to time.Time,
) ([]ReportOrderRow, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			total_amount,
			created_at
		FROM orders
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at
	`, from, to).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ReportOrderRow, 0)
	for rows.Next() {
		var row ReportOrderRow
		if err = rows.Scan(&row.ID, &row.TotalAmount, &row.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, row)
	}

	return orders, rows.Err()
}

func (h GetDailyReportQueryHandler) fetchItems(
	ctx context.Context, orderIDs []uuid.UUID,
) ([]ReportItemRow, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			flavor_name,
			quantity,
			unit_price,
			status
		FROM order_items
		WHERE order_id IN ?
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ReportItemRow, 0)
	for rows.Next() {
		var (
			row       ReportItemRow
			unitPrice decimal.Decimal
			status    int
		)
		if err = rows.Scan(
			&row.ID, &row.OrderID, &row.FlavorName, &row.Quantity, &unitPrice, &status,
		); err != nil {
			return nil, err
		}
		row.UnitPrice = unitPrice
		row.Status = order.Status(status)
		items = append(items, row)
	}

	return items, rows.Err()
}

func (h GetDailyReportQueryHandler) fetchHistories(
	ctx context.Context, itemIDs []uuid.UUID,
) ([]ReportHistoryRow, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_item_id,
			status,
			changed_at
		FROM order_item_status_histories
		WHERE order_item_id IN ?
		ORDER BY changed_at
	`, itemIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	histories := make([]ReportHistoryRow, 0)
	for rows.Next() {
		var (
			row    ReportHistoryRow
			status int
		)
		if err = rows.Scan(&row.ItemID, &status, &row.ChangedAt); err != nil {
			return nil, err
		}
		row.Status = order.Status(status)
		histories = append(histories, row)
	}

	return histories, rows.Err()
}
