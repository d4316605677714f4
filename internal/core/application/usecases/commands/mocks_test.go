package commands_test

import (
	"context"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/parcel"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, p *parcel.Parcel) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockParcelRepository) GetByBarcode(ctx context.Context, barcode string) (*parcel.Parcel, error) {
	args := m.Called(ctx, barcode)
	if p, ok := args.Get(0).(*parcel.Parcel); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockParcelRepository) ExistsByBarcode(ctx context.Context, barcode string) (bool, error) {
	args := m.Called(ctx, barcode)
	return args.Bool(0), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Location, error) {
	args := m.Called(ctx, id)
	if l, ok := args.Get(0).(*catalog.Location); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLocationRepository) FindFreeByCategory(ctx context.Context, categoryID kernel.UUID) (*catalog.Location, error) {
	args := m.Called(ctx, categoryID)
	if l, ok := args.Get(0).(*catalog.Location); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLocationRepository) Update(ctx context.Context, l *catalog.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) GetByName(ctx context.Context, name catalog.CategoryName) (*catalog.Category, error) {
	args := m.Called(ctx, name)
	if c, ok := args.Get(0).(*catalog.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoryRepository) GetAll(ctx context.Context) ([]*catalog.Category, error) {
	args := m.Called(ctx)
	if cs, ok := args.Get(0).([]*catalog.Category); ok {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Append(ctx context.Context, entry *audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockRegistrationUoW struct{ mock.Mock }

func (m *MockRegistrationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegistrationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegistrationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRegistrationUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockRegistrationUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

func (m *MockRegistrationUoW) CategoryRepository() ports.CategoryRepository {
	args := m.Called()
	return args.Get(0).(ports.CategoryRepository)
}

func (m *MockRegistrationUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockRegistrationUoWFactory struct{ mock.Mock }

func (m *MockRegistrationUoWFactory) Create() commands.RegistrationUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistrationUoW)
}

type MockStatusUpdateUoW struct{ mock.Mock }

func (m *MockStatusUpdateUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatusUpdateUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatusUpdateUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStatusUpdateUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockStatusUpdateUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

func (m *MockStatusUpdateUoW) AuditRepository() ports.AuditRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditRepository)
}

type MockStatusUpdateUoWFactory struct{ mock.Mock }

func (m *MockStatusUpdateUoWFactory) Create() commands.StatusUpdateUoW {
	args := m.Called()
	return args.Get(0).(commands.StatusUpdateUoW)
}
