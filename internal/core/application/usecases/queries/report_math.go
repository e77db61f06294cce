package queries

import (
	"sort"
	"time"

	"pastelstand/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportOrderRow is one order of the reported day as read from storage.
type ReportOrderRow struct {
	ID          uuid.UUID
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}

// ReportItemRow is one item of the reported day's orders.
type ReportItemRow struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	FlavorName string
	Quantity   int
	UnitPrice  decimal.Decimal
	Status     order.Status
}

// ReportHistoryRow is one status transition of a reported item, rows sorted
// by changed-at within each item.
type ReportHistoryRow struct {
	ItemID    uuid.UUID
	Status    order.Status
	ChangedAt time.Time
}

// BuildDailyReport aggregates the day's rows into the report view. It is a
// pure function over already-fetched rows so the aggregation rules can be
// tested without a database.
func BuildDailyReport(
	date time.Time,
	orders []ReportOrderRow,
	items []ReportItemRow,
	histories []ReportHistoryRow,
) DailyReportView {
	report := DailyReportView{
		Date:          date,
		TotalOrders:   len(orders),
		TotalRevenue:  decimal.Zero,
		AverageTicket: decimal.Zero,
	}

	for _, o := range orders {
		report.TotalRevenue = report.TotalRevenue.Add(o.TotalAmount)
		report.OrdersByHour[o.CreatedAt.UTC().Hour()]++
	}
	if len(orders) > 0 {
		report.AverageTicket = report.TotalRevenue.
			Div(decimal.NewFromInt(int64(len(orders)))).
			Round(2)
	}

	report.TotalItems = countNonCancelledItems(items)
	report.PopularFlavors = rankFlavors(items)
	report.AverageCompletionSeconds = averageCompletionSeconds(orders, items, histories)
	report.StatusDurations = statusDurations(histories)

	return report
}

func countNonCancelledItems(items []ReportItemRow) int {
	count := 0
	for _, item := range items {
		if item.Status != order.Cancelled {
			count += item.Quantity
		}
	}
	return count
}

// rankFlavors ranks non-cancelled items by units sold, then alphabetically
// for equal counts.
func rankFlavors(items []ReportItemRow) []FlavorPopularity {
	byName := make(map[string]*FlavorPopularity)
	for _, item := range items {
		if item.Status == order.Cancelled {
			continue
		}

		entry, ok := byName[item.FlavorName]
		if !ok {
			entry = &FlavorPopularity{FlavorName: item.FlavorName, Revenue: decimal.Zero}
			byName[item.FlavorName] = entry
		}
		entry.Quantity += item.Quantity
		entry.Revenue = entry.Revenue.Add(
			item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		)
	}

	ranked := make([]FlavorPopularity, 0, len(byName))
	for _, entry := range byName {
		ranked = append(ranked, *entry)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].FlavorName < ranked[j].FlavorName
	})

	return ranked
}

// averageCompletionSeconds computes the mean time from order creation to
// the completion of its last item. Orders that never reached a completed
// item are excluded from the mean, not counted as zero. Returns nil when no
// order completed.
func averageCompletionSeconds(
	orders []ReportOrderRow,
	items []ReportItemRow,
	histories []ReportHistoryRow,
) *float64 {
	orderByItem := make(map[uuid.UUID]uuid.UUID, len(items))
	for _, item := range items {
		orderByItem[item.ID] = item.OrderID
	}

	completedAt := make(map[uuid.UUID]time.Time)
	for _, h := range histories {
		if h.Status != order.Completed {
			continue
		}
		orderID, ok := orderByItem[h.ItemID]
		if !ok {
			continue
		}
		if last, seen := completedAt[orderID]; !seen || h.ChangedAt.After(last) {
			completedAt[orderID] = h.ChangedAt
		}
	}

	var total float64
	var count int
	for _, o := range orders {
		done, ok := completedAt[o.ID]
		if !ok {
			continue
		}
		seconds := done.Sub(o.CreatedAt).Seconds()
		if seconds < 0 {
			continue
		}
		total += seconds
		count++
	}

	if count == 0 {
		return nil
	}
	mean := total / float64(count)
	return &mean
}

// statusDurations aggregates how long items sat in each status from the
// deltas between consecutive history entries. Entries must arrive in
// recorded order per item. A negative delta means clock skew between
// writers and is discarded rather than clamped.
func statusDurations(histories []ReportHistoryRow) []StatusDuration {
	byItem := make(map[uuid.UUID][]ReportHistoryRow)
	for _, h := range histories {
		byItem[h.ItemID] = append(byItem[h.ItemID], h)
	}

	type acc struct {
		total   float64
		min     float64
		max     float64
		samples int
	}
	byStatus := make(map[order.Status]*acc)

	for _, entries := range byItem {
		for i := 0; i+1 < len(entries); i++ {
			seconds := entries[i+1].ChangedAt.Sub(entries[i].ChangedAt).Seconds()
			if seconds < 0 {
				continue
			}

			a, ok := byStatus[entries[i].Status]
			if !ok {
				a = &acc{min: seconds, max: seconds}
				byStatus[entries[i].Status] = a
			}
			if seconds < a.min {
				a.min = seconds
			}
			if seconds > a.max {
				a.max = seconds
			}
			a.total += seconds
			a.samples++
		}
	}

	durations := make([]StatusDuration, 0, len(byStatus))
	for status, a := range byStatus {
		durations = append(durations, StatusDuration{
			Status:         status,
			AverageSeconds: a.total / float64(a.samples),
			MinSeconds:     a.min,
			MaxSeconds:     a.max,
			Samples:        a.samples,
		})
	}
	sort.Slice(durations, func(i, j int) bool {
		return durations[i].Status < durations[j].Status
	})

	return durations
}
