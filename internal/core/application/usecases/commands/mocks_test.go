package commands_test

import (
	"context"

	"pastelstand/internal/core/application/usecases/commands"
	"pastelstand/internal/core/domain/model/customer"
	"pastelstand/internal/core/domain/model/flavor"
	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/core/domain/model/order"
	"pastelstand/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForCustomer(
	ctx context.Context, id, customerID kernel.UUID,
) (*order.Order, error) {
	args := m.Called(ctx, id, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockFlavorRepository struct{ mock.Mock }

func (m *MockFlavorRepository) Add(ctx context.Context, aggregate *flavor.Flavor) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockFlavorRepository) Update(ctx context.Context, aggregate *flavor.Flavor) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockFlavorRepository) Get(ctx context.Context, id kernel.UUID) (*flavor.Flavor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flavor.Flavor), args.Error(1)
}

func (m *MockFlavorRepository) GetByIDs(
	ctx context.Context, ids []kernel.UUID,
) (map[kernel.UUID]*flavor.Flavor, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]*flavor.Flavor), args.Error(1)
}

func (m *MockFlavorRepository) GetByName(ctx context.Context, name string) (*flavor.Flavor, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flavor.Flavor), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

// MockUoW satisfies every unit of work interface in the package, so each
// handler test wires only the expectations it needs.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) FlavorRepository() ports.FlavorRepository {
	args := m.Called()
	return args.Get(0).(ports.FlavorRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockFlavorUoWFactory struct{ mock.Mock }

func (m *MockFlavorUoWFactory) Create() commands.FlavorUoW {
	args := m.Called()
	return args.Get(0).(commands.FlavorUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockOrderFlavorUoWFactory struct{ mock.Mock }

func (m *MockOrderFlavorUoWFactory) Create() commands.OrderFlavorUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderFlavorUoW)
}
