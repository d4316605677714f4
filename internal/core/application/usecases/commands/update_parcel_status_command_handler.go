package commands

import (
	"context"

	"warehouse/internal/core/domain/model/audit"
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/parcel"
)

// UpdateParcelStatusResult reports the outcome of a successful status change.
// ReleasedLocation carries the freed shelf's code when the change delivered
// the parcel, empty otherwise.
type UpdateParcelStatusResult struct {
	ParcelID         kernel.UUID
	Barcode          string
	OldStatus        string
	NewStatus        string
	ReleasedLocation string
}

// UpdateParcelStatusCommandHandler handles the business logic for lifecycle
// status changes. Enforces the transition table, releases the storage
// location on delivery and records the change in the audit trail, all in one
// transaction.
type UpdateParcelStatusCommandHandler struct {
	uowFactory StatusUpdateUoWFactory
}

// NewUpdateParcelStatusCommandHandler creates a handler for status changes.
// Requires a StatusUpdateUoWFactory for transactional persistence.
func NewUpdateParcelStatusCommandHandler(uowFactory StatusUpdateUoWFactory) UpdateParcelStatusCommandHandler {
	return UpdateParcelStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Returns ObjectNotFoundError when no parcel carries the barcode and
// ValueIsInvalidError when the transition is outside the table. Either
// failure leaves the database untouched.
func (h *UpdateParcelStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateParcelStatusCommand,
) (UpdateParcelStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateParcelStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateParcelStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trackedParcel, err := uow.ParcelRepository().GetByBarcode(ctx, cmd.Barcode())
	if err != nil {
		return UpdateParcelStatusResult{}, err
	}

	oldStatus := trackedParcel.Status()

	var location *catalog.Location
	if locationID := trackedParcel.LocationID(); locationID != nil {
		location, err = uow.LocationRepository().Get(ctx, *locationID)
		if err != nil {
			return UpdateParcelStatusResult{}, err
		}
	}

	if err = trackedParcel.TransitionTo(cmd.Status()); err != nil {
		return UpdateParcelStatusResult{}, err
	}

	oldLocationCode := ""
	newLocationCode := ""
	releasedLocation := ""
	if location != nil {
		oldLocationCode = location.Code()
		newLocationCode = location.Code()
	}

	if location != nil && trackedParcel.Status() == parcel.Delivered {
		if err = location.Release(); err != nil {
			return UpdateParcelStatusResult{}, err
		}
		if err = uow.LocationRepository().Update(ctx, location); err != nil {
			return UpdateParcelStatusResult{}, err
		}
		newLocationCode = ""
		releasedLocation = location.Code()
	}

	if err = uow.ParcelRepository().Update(ctx, trackedParcel); err != nil {
		return UpdateParcelStatusResult{}, err
	}

	entry, err := audit.NewStatusUpdateEntry(
		kernel.NewUUID(),
		trackedParcel.ID(),
		oldStatus.String(),
		trackedParcel.Status().String(),
		oldLocationCode,
		newLocationCode,
		"",
	)
	if err != nil {
		return UpdateParcelStatusResult{}, err
	}

	if err = uow.AuditRepository().Append(ctx, entry); err != nil {
		return UpdateParcelStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateParcelStatusResult{}, err
	}

	return UpdateParcelStatusResult{
		ParcelID:         trackedParcel.ID(),
		Barcode:          trackedParcel.Barcode(),
		OldStatus:        oldStatus.String(),
		NewStatus:        trackedParcel.Status().String(),
		ReleasedLocation: releasedLocation,
	}, nil
}
