package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recoverable warehouse outcomes. Callers match them
// with errors.Is; the structured variants below carry the offending values.
var (
	ErrDuplicateBarcode    = errors.New("barcode already registered")
	ErrNoAvailableLocation = errors.New("no available location")
)

// DuplicateBarcodeError indicates that a package registration was rejected
// because another package already carries the same barcode.
type DuplicateBarcodeError struct {
	Barcode string
}

// NewDuplicateBarcodeError creates a DuplicateBarcodeError for the given barcode.
func NewDuplicateBarcodeError(barcode string) *DuplicateBarcodeError {
	return &DuplicateBarcodeError{Barcode: barcode}
}

func (e *DuplicateBarcodeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateBarcode, e.Barcode)
}

func (e *DuplicateBarcodeError) Unwrap() error {
	return ErrDuplicateBarcode
}

// NoAvailableLocationError indicates that every storage location of the
// package's category is occupied. This is a normal outcome of a full
// warehouse, not a fault: nothing has been written when it is returned.
type NoAvailableLocationError struct {
	Category string
}

// NewNoAvailableLocationError creates a NoAvailableLocationError for the given
// category name.
func NewNoAvailableLocationError(category string) *NoAvailableLocationError {
	return &NoAvailableLocationError{Category: category}
}

func (e *NoAvailableLocationError) Error() string {
	return fmt.Sprintf("%s: category %s is full", ErrNoAvailableLocation, e.Category)
}

func (e *NoAvailableLocationError) Unwrap() error {
	return ErrNoAvailableLocation
}
