package cmd

import (
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"

	"gorm.io/gorm"
)

// CompositionRoot wires the persistence layer into command and query handlers.
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

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, services.NewOrderAssembler())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateSetProductAvailabilityCommandHandler() commands.SetProductAvailabilityCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetProductAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateSaveInvoiceCommandHandler() commands.SaveInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteInvoiceCommandHandler() commands.DeleteInvoiceCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteInvoiceCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableProductsQueryHandler() queries.GetAvailableProductsQueryHandler {
	return queries.NewGetAvailableProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInvoiceQueryHandler() queries.GetInvoiceQueryHandler {
	return queries.NewGetInvoiceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllInvoicesQueryHandler() queries.GetAllInvoicesQueryHandler {
	return queries.NewGetAllInvoicesQueryHandler(c.gormDB)
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}
