package queries

import (
	"errors"
	"time"

	"pastelstand/internal/core/domain/model/order"
	"pastelstand/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDailyReportQueryIsNotConstructed = errors.New(
	"GetDailyReportQuery must be created via NewGetDailyReportQuery constructor",
)

// GetDailyReportQuery aggregates one UTC calendar day of orders into the
// operational report: revenue, popular flavors, hourly load and per-status
// timing.
type GetDailyReportQuery struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetDailyReportQuery creates a report query for the UTC day containing
// the given instant.
func NewGetDailyReportQuery(date time.Time) GetDailyReportQuery {
	utc := date.UTC()
	return GetDailyReportQuery{
		date:  time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetDailyReportQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyReportQueryIsNotConstructed)
}

// Date returns the UTC midnight opening the reported day.
func (q GetDailyReportQuery) Date() time.Time {
	return q.date
}

// FlavorPopularity ranks one flavor by units sold on the reported day.
type FlavorPopularity struct {
	FlavorName string
	Quantity   int
	Revenue    decimal.Decimal
}

// StatusDuration describes how long items sat in one workflow status,
// in seconds, over the reported day.
type StatusDuration struct {
	Status         order.Status
	AverageSeconds float64
	MinSeconds     float64
	MaxSeconds     float64
	Samples        int
}

// DailyReportView is the aggregated report for one UTC day.
type DailyReportView struct {
	Date        time.Time
	TotalOrders int

	// TotalRevenue sums order totals, including cancelled orders, matching
	// the order-level revenue ledger.
	TotalRevenue decimal.Decimal

	// TotalItems counts non-cancelled items only.
	TotalItems int

	// AverageTicket is revenue per order rounded to two decimals, zero when
	// no orders were placed.
	AverageTicket decimal.Decimal

	// AverageCompletionSeconds is the mean time from order creation to its
	// last item completing. Nil when no order completed that day.
	AverageCompletionSeconds *float64

	PopularFlavors  []FlavorPopularity
	OrdersByHour    [24]int
	StatusDurations []StatusDuration
}
