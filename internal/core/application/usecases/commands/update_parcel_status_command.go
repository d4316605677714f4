package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/parcel"
	"warehouse/internal/pkg/guard"
)

var ErrUpdateParcelStatusCommandIsNotConstructed = errors.New(
	"UpdateParcelStatusCommand must be created via NewUpdateParcelStatusCommand constructor",
)

// UpdateParcelStatusCommand represents a request to move a parcel to a new
// lifecycle status. The status label is parsed case-insensitively at
// construction time, so an unknown label never reaches the transaction.
type UpdateParcelStatusCommand struct { //nolint:recvcheck //using for validation
	barcode string
	status  parcel.Status

	guard guard.ConstructorGuard
}

// NewUpdateParcelStatusCommand creates a command to change a parcel's status.
// Validates that the barcode is not empty and the label names a known status.
func NewUpdateParcelStatusCommand(barcode string, statusLabel string) (UpdateParcelStatusCommand, error) {
	statusCommand := UpdateParcelStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if barcode == "" {
		return UpdateParcelStatusCommand{}, ErrBarcodeIsRequired
	}
	statusCommand.barcode = barcode

	status, err := parcel.StatusFromLabel(statusLabel)
	if err != nil {
		return UpdateParcelStatusCommand{}, err
	}
	statusCommand.status = status

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelStatusCommandIsNotConstructed if validation fails.
func (c UpdateParcelStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelStatusCommandIsNotConstructed)
}

// Barcode returns the parcel's unique external identifier.
func (c UpdateParcelStatusCommand) Barcode() string {
	return c.barcode
}

// Status returns the target lifecycle status.
func (c UpdateParcelStatusCommand) Status() parcel.Status {
	return c.status
}
