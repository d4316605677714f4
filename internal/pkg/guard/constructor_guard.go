// Package guard implements the constructor-guard pattern used by commands,
// queries and value objects across the application. A zero-value guard marks
// an object that bypassed its constructor; validation then fails instead of
// letting an unvalidated object flow into a transaction.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects created through their designated
// constructor from zero-value instances.
//
// Example:
//
//	type RegisterParcelCommand struct {
//	    barcode string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewRegisterParcelCommand(barcode string) (RegisterParcelCommand, error) {
//	    if barcode == "" {
//	        return RegisterParcelCommand{}, errs.NewValueIsRequiredError("barcode")
//	    }
//	    return RegisterParcelCommand{barcode: barcode, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RegisterParcelCommand) Validate() error {
//	    return c.guard.Validate(ErrRegisterParcelCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its holder as properly
// constructed. Call it in every constructor that must not be bypassed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the holder was built via its constructor.
// For a zero-value guard it returns validationError, falling back to
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
