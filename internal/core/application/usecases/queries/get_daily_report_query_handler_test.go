package queries_test

import (
	"context"
	"testing"
	"time"

	"pastelstand/internal/adapters/out/postgres/customerrepo"
	"pastelstand/internal/adapters/out/postgres/flavorrepo"
	"pastelstand/internal/adapters/out/postgres/orderrepo"
	"pastelstand/internal/core/application/usecases/queries"
	"pastelstand/internal/core/domain/model/customer"
	"pastelstand/internal/core/domain/model/flavor"
	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetDailyReportQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetDailyReportQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
	flavorRepo   *flavorrepo.GormFlavorRepository
	customerRepo *customerrepo.GormCustomerRepository
}

func (suite *GetDailyReportQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&flavorrepo.FlavorDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.StatusHistoryDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDailyReportQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.flavorRepo = flavorrepo.NewGormFlavorRepository(db, &mockAggregateTracker{})
	suite.customerRepo = customerrepo.NewGormCustomerRepository(db, &mockAggregateTracker{})
}

func (suite *GetDailyReportQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetDailyReportQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE order_item_status_histories, order_items, orders, flavors, customers CASCADE",
	).Error
	suite.Require().NoError(err)
}

func (suite *GetDailyReportQueryHandlerTestSuite) TestHandle_EmptyDay_ReturnsZeroReport() {
	day := time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC)

	report, err := suite.handler.Handle(context.Background(), queries.NewGetDailyReportQuery(day))
	suite.Require().NoError(err)

	suite.Equal(0, report.TotalOrders)
	suite.True(report.TotalRevenue.IsZero())
	suite.Equal(0, report.TotalItems)
	suite.Nil(report.AverageCompletionSeconds)
	suite.Empty(report.PopularFlavors)
}

func (suite *GetDailyReportQueryHandlerTestSuite) TestHandle_FullDay() {
	ctx := context.Background()
	day := time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC)
	at := func(hour, minute int) time.Time {
		return time.Date(2025, 11, 7, hour, minute, 0, 0, time.UTC)
	}

	ana := suite.seedCustomer("Ana")
	bruno := suite.seedCustomer("Bruno")
	queijo := suite.seedFlavor("Queijo", "10.90")
	carne := suite.seedFlavor("Carne", "12.90")

	// Completed order: two Queijo items, last handover at 10:20.
	completed := suite.seedOrder(ana, queijo, 2, at(10, 0))
	for i, item := range completed.Items() {
		id := item.ID()
		_, err := completed.AdvanceItem(id, nil, at(10, 5))
		suite.Require().NoError(err)
		_, err = completed.AdvanceItem(id, nil, at(10, 10))
		suite.Require().NoError(err)
		_, err = completed.AdvanceItem(id, nil, at(10, 15+5*i))
		suite.Require().NoError(err)
	}
	suite.Require().NoError(suite.orderRepo.Update(ctx, completed))

	// Cancelled order: one Carne item. Revenue still counts it, item
	// and flavor popularity do not.
	cancelled := suite.seedOrder(bruno, carne, 1, at(11, 30))
	suite.Require().NoError(cancelled.Cancel(at(11, 35)))
	suite.Require().NoError(suite.orderRepo.Update(ctx, cancelled))

	// An order from the previous day never shows up.
	suite.seedOrder(ana, queijo, 1, at(10, 0).AddDate(0, 0, -1))

	report, err := suite.handler.Handle(ctx, queries.NewGetDailyReportQuery(day))
	suite.Require().NoError(err)

	suite.Equal(day, report.Date)
	suite.Equal(2, report.TotalOrders)
	suite.True(decimal.RequireFromString("34.70").Equal(report.TotalRevenue))
	suite.Equal(2, report.TotalItems)
	suite.True(decimal.RequireFromString("17.35").Equal(report.AverageTicket))

	suite.Require().NotNil(report.AverageCompletionSeconds)
	suite.InDelta(1200.0, *report.AverageCompletionSeconds, 0.01)

	suite.Require().Len(report.PopularFlavors, 1)
	suite.Equal("Queijo", report.PopularFlavors[0].FlavorName)
	suite.Equal(2, report.PopularFlavors[0].Quantity)
	suite.True(decimal.RequireFromString("21.80").Equal(report.PopularFlavors[0].Revenue))

	suite.Equal(1, report.OrdersByHour[10])
	suite.Equal(1, report.OrdersByHour[11])
	suite.Equal(0, report.OrdersByHour[9])

	suite.Require().Len(report.StatusDurations, 3)
	pending := report.StatusDurations[0]
	suite.Equal(order.Pending, pending.Status)
	suite.Equal(3, pending.Samples)
	suite.InDelta(300.0, pending.AverageSeconds, 0.01)

	frying := report.StatusDurations[1]
	suite.Equal(order.Frying, frying.Status)
	suite.Equal(2, frying.Samples)

	ready := report.StatusDurations[2]
	suite.Equal(order.ReadyForPickup, ready.Status)
	suite.Equal(2, ready.Samples)
	suite.InDelta(300.0, ready.MinSeconds, 0.01)
	suite.InDelta(600.0, ready.MaxSeconds, 0.01)
	suite.InDelta(450.0, ready.AverageSeconds, 0.01)
}

func (suite *GetDailyReportQueryHandlerTestSuite) TestHandle_TruncatesQueryDateToMidnight() {
	ctx := context.Background()

	clara := suite.seedCustomer("Clara")
	queijo := suite.seedFlavor("Queijo", "10.90")
	suite.seedOrder(clara, queijo, 1, time.Date(2025, 11, 7, 8, 0, 0, 0, time.UTC))

	afternoon := time.Date(2025, 11, 7, 16, 45, 12, 0, time.UTC)
	report, err := suite.handler.Handle(ctx, queries.NewGetDailyReportQuery(afternoon))
	suite.Require().NoError(err)

	suite.Equal(time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC), report.Date)
	suite.Equal(1, report.TotalOrders)
}

func (suite *GetDailyReportQueryHandlerTestSuite) seedCustomer(name string) *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), name, false, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.customerRepo.Add(context.Background(), c))
	return c
}

func (suite *GetDailyReportQueryHandlerTestSuite) seedFlavor(name, price string) *flavor.Flavor {
	f, err := flavor.NewFlavor(
		kernel.NewUUID(), name, "", "", 50,
		decimal.RequireFromString(price), time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.flavorRepo.Add(context.Background(), f))
	return f
}

func (suite *GetDailyReportQueryHandlerTestSuite) seedOrder(
	c *customer.Customer, f *flavor.Flavor, items int, createdAt time.Time,
) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), c.ID(), c.Name(), createdAt)
	suite.Require().NoError(err)
	for range items {
		_, err = o.AddItem(kernel.NewUUID(), f.ID(), f.Name(), f.Price(), "", createdAt)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func TestGetDailyReportQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDailyReportQueryHandlerTestSuite))
}
