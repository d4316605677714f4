package commands

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/parcel"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/errs"
)

// RegisterParcelResult reports the outcome of a successful registration.
type RegisterParcelResult struct {
	ParcelID     kernel.UUID
	Category     catalog.CategoryName
	LocationCode string
	Status       string
}

// RegisterParcelCommandHandler handles the business logic for parcel intake.
// Categorizes the parcel, claims the lowest free location in the category's
// zone and records the registration in the audit trail, all in one
// transaction.
type RegisterParcelCommandHandler struct {
	uowFactory RegistrationUoWFactory
	allocator  *services.Allocator
}

// NewRegisterParcelCommandHandler creates a handler for parcel registration.
// Requires a RegistrationUoWFactory for transactional persistence and the
// category allocation service.
func NewRegisterParcelCommandHandler(
	uowFactory RegistrationUoWFactory,
	allocator *services.Allocator,
) RegisterParcelCommandHandler {
	return RegisterParcelCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

// Handle processes the registration command.
// Returns DuplicateBarcodeError when the barcode is already registered and
// NoAvailableLocationError when the category's zone has no free shelf. Either
// failure leaves the database untouched.
func (h *RegisterParcelCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterParcelCommand,
) (RegisterParcelResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterParcelResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RegisterParcelResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.ParcelRepository().ExistsByBarcode(ctx, cmd.Barcode())
	if err != nil {
		return RegisterParcelResult{}, err
	}
	if exists {
		return RegisterParcelResult{}, errs.NewDuplicateBarcodeError(cmd.Barcode())
	}

	categoryName := h.allocator.Categorize(
		cmd.Dimensions().Weight(), cmd.Priority(), cmd.Destination())

	category, err := uow.CategoryRepository().GetByName(ctx, categoryName)
	if err != nil {
		return RegisterParcelResult{}, err
	}

	location, err := uow.LocationRepository().FindFreeByCategory(ctx, category.ID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return RegisterParcelResult{}, errs.NewNoAvailableLocationError(string(categoryName))
		}
		return RegisterParcelResult{}, err
	}

	if err = location.Occupy(); err != nil {
		return RegisterParcelResult{}, err
	}
	if err = uow.LocationRepository().Update(ctx, location); err != nil {
		return RegisterParcelResult{}, err
	}

	newParcel, err := parcel.NewParcel(
		kernel.NewUUID(),
		cmd.Barcode(),
		cmd.Dimensions(),
		cmd.Destination(),
		cmd.Priority(),
		category.ID(),
		location.ID(),
	)
	if err != nil {
		return RegisterParcelResult{}, err
	}

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return RegisterParcelResult{}, err
	}

	entry, err := audit.NewRegisteredEntry(
		kernel.NewUUID(),
		newParcel.ID(),
		newParcel.Status().String(),
		location.Code(),
		fmt.Sprintf("assigned to %s at %s", categoryName, location.Code()),
	)
	if err != nil {
		return RegisterParcelResult{}, err
	}

	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return RegisterParcelResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RegisterParcelResult{}, err
	}

	return RegisterParcelResult{
		ParcelID:     newParcel.ID(),
		Category:     categoryName,
		LocationCode: location.Code(),
		Status:       newParcel.Status().String(),
	}, nil
}
