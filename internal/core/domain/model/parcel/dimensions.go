package parcel

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrDimensionsAreNotConstructed is returned when a Dimensions instance was
// not created through the NewDimensions factory function.
var ErrDimensionsAreNotConstructed = errors.New("Dimensions must be created via NewDimensions constructor")

// Dimensions is an immutable value object describing a parcel's weight in
// kilograms and its length, width and height in centimeters. All components
// must be strictly positive.
type Dimensions struct {
	weight float64
	length float64
	width  float64
	height float64

	guard kernel.ConstructorGuard
}

// NewDimensions creates Dimensions with validation. Every component must be
// greater than zero; violations are aggregated into a single error.
func NewDimensions(weight, length, width, height float64) (Dimensions, error) {
	dims := Dimensions{
		weight: weight,
		length: length,
		width:  width,
		height: height,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		positive("weight", weight),
		positive("length", length),
		positive("width", width),
		positive("height", height),
	); err != nil {
		return Dimensions{}, err
	}

	return dims, nil
}

func positive(name string, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%v is not greater than 0", value))
	}
	return nil
}

// Validate ensures the Dimensions were created via NewDimensions.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

// Weight returns the weight in kilograms.
func (d Dimensions) Weight() float64 {
	return d.weight
}

// Length returns the length in centimeters.
func (d Dimensions) Length() float64 {
	return d.length
}

// Width returns the width in centimeters.
func (d Dimensions) Width() float64 {
	return d.width
}

// Height returns the height in centimeters.
func (d Dimensions) Height() float64 {
	return d.height
}
