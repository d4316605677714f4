package kernel

import "errors"

// ErrDefaultConstructorGuard is the fallback error returned by
// ConstructorGuard.Validate when no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures domain entities and value objects are only created
// through their designated constructor functions. A zero-value struct carries
// a zero-value guard and fails validation, which prevents unvalidated objects
// from entering the model.
//
// Embed a guard as a private field and set it with NewConstructorGuard inside
// every constructor:
//
//	type Location struct {
//	    code  string
//	    guard ConstructorGuard
//	}
//
//	func NewLocation(...) (*Location, error) {
//	    return &Location{code: code, guard: NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its holder as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructor-produced holder. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
