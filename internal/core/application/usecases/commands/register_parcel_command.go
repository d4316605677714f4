package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/parcel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrRegisterParcelCommandIsNotConstructed = errors.New(
		"RegisterParcelCommand must be created via NewRegisterParcelCommand constructor",
	)
	ErrBarcodeIsRequired     = errors.New("barcode is required")
	ErrDestinationIsRequired = errors.New("destination is required")
	ErrPriorityIsRequired    = errors.New("priority is required")
)

// RegisterParcelCommand represents a request to register an incoming parcel.
// Encapsulates the barcode, physical dimensions, destination and priority tag.
//
// Example:
//
//	dims, _ := parcel.NewDimensions(12.5, 30, 20, 15)
//	cmd, err := NewRegisterParcelCommand("PKG-0001", dims, "Boston, USA", "Standard")
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//
//	handler := NewRegisterParcelCommandHandler(uowFactory, allocator)
//	result, err := handler.Handle(ctx, cmd)
type RegisterParcelCommand struct { //nolint:recvcheck //using for validation
	barcode     string
	dimensions  parcel.Dimensions
	destination string
	priority    string

	guard guard.ConstructorGuard
}

// NewRegisterParcelCommand creates a command to register a parcel.
// Validates that the barcode, destination and priority tag are not empty and
// that the dimensions were properly constructed.
func NewRegisterParcelCommand(
	barcode string,
	dimensions parcel.Dimensions,
	destination string,
	priority string,
) (RegisterParcelCommand, error) {
	registerCommand := RegisterParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setBarcode(barcode),
		registerCommand.setDimensions(dimensions),
		registerCommand.setDestination(destination),
		registerCommand.setPriority(priority),
	); err != nil {
		return RegisterParcelCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterParcelCommandIsNotConstructed if validation fails.
func (c RegisterParcelCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParcelCommandIsNotConstructed)
}

// Barcode returns the parcel's unique external identifier.
func (c RegisterParcelCommand) Barcode() string {
	return c.barcode
}

// Dimensions returns the parcel's weight and physical size.
func (c RegisterParcelCommand) Dimensions() parcel.Dimensions {
	return c.dimensions
}

// Destination returns the delivery destination.
func (c RegisterParcelCommand) Destination() string {
	return c.destination
}

// Priority returns the caller-supplied priority tag.
func (c RegisterParcelCommand) Priority() string {
	return c.priority
}

func (c *RegisterParcelCommand) setBarcode(barcode string) error {
	if barcode == "" {
		return ErrBarcodeIsRequired
	}

	c.barcode = barcode
	return nil
}

func (c *RegisterParcelCommand) setDimensions(dimensions parcel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}

	c.dimensions = dimensions
	return nil
}

func (c *RegisterParcelCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}

func (c *RegisterParcelCommand) setPriority(priority string) error {
	if priority == "" {
		return ErrPriorityIsRequired
	}

	c.priority = priority
	return nil
}
