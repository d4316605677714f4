package commands_test

import (
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/parcel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedParcelWithLocation(t *testing.T) (*parcel.Parcel, *catalog.Location) {
	t.Helper()

	category := heavyCategory(t)
	location, err := catalog.RestoreLocation(
		kernel.NamedUUID("location/D01-01"), category.Zone(), 1, 1, category.ID(), true)
	require.NoError(t, err)

	dims, err := parcel.NewDimensions(60, 40, 40, 40)
	require.NoError(t, err)

	locationID := location.ID()
	p, err := parcel.RestoreParcel(
		kernel.NewUUID(), "PKG-0100", dims, "Houston, USA", "Standard",
		category.ID(), &locationID, parcel.Stored,
		time.Date(2025, 5, 20, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	return p, location
}

func TestUpdateParcelStatusCommand_Validation(t *testing.T) {
	t.Run("empty barcode", func(t *testing.T) {
		_, err := commands.NewUpdateParcelStatusCommand("", "Delivered")
		require.ErrorIs(t, err, commands.ErrBarcodeIsRequired)
	})

	t.Run("unknown label", func(t *testing.T) {
		_, err := commands.NewUpdateParcelStatusCommand("PKG-0100", "Lost")
		require.Error(t, err)
	})

	t.Run("label parsing is forgiving", func(t *testing.T) {
		cmd, err := commands.NewUpdateParcelStatusCommand("PKG-0100", "in transit")
		require.NoError(t, err)
		assert.Equal(t, parcel.InTransit, cmd.Status())
	})
}

func TestUpdateParcelStatusCommandHandler_Handle_InTransit(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateParcelStatusCommand("PKG-0100", "InTransit")
	require.NoError(t, err)

	trackedParcel, location := storedParcelWithLocation(t)

	parcelRepo := new(MockParcelRepository)
	locationRepo := new(MockLocationRepository)
	auditRepo := new(MockAuditRepository)

	uow := new(MockStatusUpdateUoW)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("LocationRepository").Return(locationRepo)
	uow.On("AuditRepository").Return(auditRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		parcelRepo.On("GetByBarcode", mock.Anything, "PKG-0100").Return(trackedParcel, nil).Once(),
		locationRepo.On("Get", mock.Anything, location.ID()).Return(location, nil).Once(),
		parcelRepo.On("Update", mock.Anything, trackedParcel).Return(nil).Once(),
		auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUpdateUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelStatusCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Stored", result.OldStatus)
	assert.Equal(t, "InTransit", result.NewStatus)
	assert.Empty(t, result.ReleasedLocation)
	assert.Equal(t, parcel.InTransit, trackedParcel.Status())
	assert.True(t, location.IsOccupied())
	parcelRepo.AssertExpectations(t)
	locationRepo.AssertExpectations(t)
	auditRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateParcelStatusCommandHandler_Handle_DeliveryReleasesLocation(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateParcelStatusCommand("PKG-0100", "Delivered")
	require.NoError(t, err)

	trackedParcel, location := storedParcelWithLocation(t)

	parcelRepo := new(MockParcelRepository)
	locationRepo := new(MockLocationRepository)
	auditRepo := new(MockAuditRepository)

	uow := new(MockStatusUpdateUoW)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("LocationRepository").Return(locationRepo)
	uow.On("AuditRepository").Return(auditRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		parcelRepo.On("GetByBarcode", mock.Anything, "PKG-0100").Return(trackedParcel, nil).Once(),
		locationRepo.On("Get", mock.Anything, location.ID()).Return(location, nil).Once(),
		locationRepo.On("Update", mock.Anything, location).Return(nil).Once(),
		parcelRepo.On("Update", mock.Anything, trackedParcel).Return(nil).Once(),
		auditRepo.On("Append", mock.Anything, mock.AnythingOfType("*audit.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUpdateUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelStatusCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Delivered", result.NewStatus)
	assert.Equal(t, "D01-01", result.ReleasedLocation)
	assert.Equal(t, parcel.Delivered, trackedParcel.Status())
	assert.Nil(t, trackedParcel.LocationID())
	assert.False(t, location.IsOccupied())
	uow.AssertExpectations(t)
}

func TestUpdateParcelStatusCommandHandler_Handle_ParcelNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateParcelStatusCommand("PKG-MISSING", "Delivered")
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	uow := new(MockStatusUpdateUoW)
	uow.On("ParcelRepository").Return(parcelRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		parcelRepo.On("GetByBarcode", mock.Anything, "PKG-MISSING").
			Return(nil, errs.NewObjectNotFoundError("parcel", kernel.NewUUID())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUpdateUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestUpdateParcelStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateParcelStatusCommand("PKG-0100", "Received")
	require.NoError(t, err)

	trackedParcel, location := storedParcelWithLocation(t)

	parcelRepo := new(MockParcelRepository)
	locationRepo := new(MockLocationRepository)

	uow := new(MockStatusUpdateUoW)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("LocationRepository").Return(locationRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		parcelRepo.On("GetByBarcode", mock.Anything, "PKG-0100").Return(trackedParcel, nil).Once(),
		locationRepo.On("Get", mock.Anything, location.ID()).Return(location, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStatusUpdateUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateParcelStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, parcel.Stored, trackedParcel.Status())
	uow.AssertExpectations(t)
}

func TestUpdateParcelStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateParcelStatusCommand{} // not constructed properly
	factory := new(MockStatusUpdateUoWFactory)
	h := commands.NewUpdateParcelStatusCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
