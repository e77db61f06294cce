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

// mockAggregateTracker implements the repositories' tracker for test purposes.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

type GetActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetActiveOrdersQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
	flavorRepo   *flavorrepo.GormFlavorRepository
	customerRepo *customerrepo.GormCustomerRepository
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetActiveOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.flavorRepo = flavorrepo.NewGormFlavorRepository(db, &mockAggregateTracker{})
	suite.customerRepo = customerrepo.NewGormCustomerRepository(db, &mockAggregateTracker{})
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE order_item_status_histories, order_items, orders, flavors, customers CASCADE",
	).Error
	suite.Require().NoError(err)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveOrdersQuery("")

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_GroupsOrdersByCustomer() {
	ctx := context.Background()

	ana := suite.seedCustomer("Ana")
	bruno := suite.seedCustomer("Bruno")
	queijo := suite.seedFlavor("Queijo", "10.90")

	order1 := suite.seedOrder(ana, queijo, 2, time.Now().UTC().Add(-2*time.Hour))
	order2 := suite.seedOrder(ana, queijo, 1, time.Now().UTC().Add(-time.Hour))
	order3 := suite.seedOrder(bruno, queijo, 1, time.Now().UTC())

	query := queries.NewGetActiveOrdersQuery("")
	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)

	suite.Equal("Ana", result[0].CustomerName)
	suite.Require().Len(result[0].Orders, 2)
	suite.Equal(order1.ID(), result[0].Orders[0].ID)
	suite.Equal(order2.ID(), result[0].Orders[1].ID)
	suite.Len(result[0].Orders[0].Items, 2)

	suite.Equal("Bruno", result[1].CustomerName)
	suite.Require().Len(result[1].Orders, 1)
	suite.Equal(order3.ID(), result[1].Orders[0].ID)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ExcludesFullyTerminalOrders() {
	ctx := context.Background()

	clara := suite.seedCustomer("Clara")
	carne := suite.seedFlavor("Carne", "12.90")

	cancelled := suite.seedOrder(clara, carne, 1, time.Now().UTC())
	suite.Require().NoError(cancelled.Cancel(time.Now().UTC()))
	suite.Require().NoError(suite.orderRepo.Update(ctx, cancelled))

	query := queries.NewGetActiveOrdersQuery("")
	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_SkipsTerminalItemsInActiveOrders() {
	ctx := context.Background()

	diego := suite.seedCustomer("Diego")
	chocolate := suite.seedFlavor("Chocolate", "10.00")

	mixed := suite.seedOrder(diego, chocolate, 2, time.Now().UTC())
	itemID := mixed.Items()[0].ID()
	now := time.Now().UTC()
	for range 3 {
		_, err := mixed.AdvanceItem(itemID, nil, now)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(suite.orderRepo.Update(ctx, mixed))

	query := queries.NewGetActiveOrdersQuery("")
	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Require().Len(result[0].Orders, 1)
	// The completed item is hidden from the preparation board.
	suite.Require().Len(result[0].Orders[0].Items, 1)
	suite.Equal(order.Pending, result[0].Orders[0].Items[0].Status)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_SearchByCustomerName() {
	ctx := context.Background()

	ana := suite.seedCustomer("Ana Paula")
	bruno := suite.seedCustomer("Bruno")
	queijo := suite.seedFlavor("Queijo", "10.90")

	suite.seedOrder(ana, queijo, 1, time.Now().UTC())
	suite.seedOrder(bruno, queijo, 1, time.Now().UTC())

	query := queries.NewGetActiveOrdersQuery("paul")
	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal("Ana Paula", result[0].CustomerName)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_SearchByCustomerID() {
	ctx := context.Background()

	elisa := suite.seedCustomer("Elisa")
	queijo := suite.seedFlavor("Queijo", "10.90")
	suite.seedOrder(elisa, queijo, 1, time.Now().UTC())

	query := queries.NewGetActiveOrdersQuery(elisa.ID().String()[:8])
	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal(elisa.ID(), result[0].CustomerID)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) seedCustomer(name string) *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(), name, false, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.customerRepo.Add(context.Background(), c))
	return c
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) seedFlavor(name, price string) *flavor.Flavor {
	f, err := flavor.NewFlavor(
		kernel.NewUUID(), name, "", "", 50,
		decimal.RequireFromString(price), time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.flavorRepo.Add(context.Background(), f))
	return f
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) seedOrder(
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

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}
