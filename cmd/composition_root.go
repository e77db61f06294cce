package cmd

import (
	"pastelstand/internal/adapters/out/postgres"
	"pastelstand/internal/core/application/usecases/commands"
	"pastelstand/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmCustomerCommandHandler() commands.ConfirmCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpsertFlavorsCommandHandler() commands.UpsertFlavorsCommandHandler {
	var f commands.FlavorUoWFactory = FuncFlavorUoWFactory(func() commands.FlavorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpsertFlavorsCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateFlavorCommandHandler() commands.UpdateFlavorCommandHandler {
	var f commands.FlavorUoWFactory = FuncFlavorUoWFactory(func() commands.FlavorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateFlavorCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateFlavorInventoryCommandHandler() commands.UpdateFlavorInventoryCommandHandler {
	var f commands.FlavorUoWFactory = FuncFlavorUoWFactory(func() commands.FlavorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateFlavorInventoryCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderItemCommandHandler() commands.AdvanceOrderItemCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderFlavorUoWFactory = FuncOrderFlavorUoWFactory(func() commands.OrderFlavorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllFlavorsQueryHandler() queries.GetAllFlavorsQueryHandler {
	return queries.NewGetAllFlavorsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailyReportQueryHandler() queries.GetDailyReportQueryHandler {
	return queries.NewGetDailyReportQueryHandler(c.gormDB)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncFlavorUoWFactory func() commands.FlavorUoW

func (f FuncFlavorUoWFactory) Create() commands.FlavorUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderFlavorUoWFactory func() commands.OrderFlavorUoW

func (f FuncOrderFlavorUoWFactory) Create() commands.OrderFlavorUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
