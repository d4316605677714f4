package cmd

import (
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	allocator  *services.Allocator
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		allocator:  services.NewAllocator(),
	}
}

func (c *CompositionRoot) CreateRegisterParcelCommandHandler() commands.RegisterParcelCommandHandler {
	var f commands.RegistrationUoWFactory = FuncRegistrationUoWFactory(func() commands.RegistrationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterParcelCommandHandler(f, c.allocator)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	var f commands.StatusUpdateUoWFactory = FuncStatusUpdateUoWFactory(func() commands.StatusUpdateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateFindParcelQueryHandler() queries.FindParcelQueryHandler {
	return queries.NewFindParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSummaryReportQueryHandler() queries.SummaryReportQueryHandler {
	return queries.NewSummaryReportQueryHandler(c.gormDB)
}

type FuncRegistrationUoWFactory func() commands.RegistrationUoW

func (f FuncRegistrationUoWFactory) Create() commands.RegistrationUoW {
	return f()
}

type FuncStatusUpdateUoWFactory func() commands.StatusUpdateUoW

func (f FuncStatusUpdateUoWFactory) Create() commands.StatusUpdateUoW {
	return f()
}
