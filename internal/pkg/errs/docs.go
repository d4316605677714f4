// Package errs provides standardized error types for the warehouse application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes general-purpose error types:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a numeric value is outside its bounds
//   - ObjectNotFoundError: for when an object cannot be found
//
// and the warehouse outcome errors that callers are expected to handle under
// normal operating conditions:
//   - DuplicateBarcodeError: a package with the same barcode is already registered
//   - NoAvailableLocationError: a category's storage location pool is exhausted
//
// Each error type follows a consistent pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for errors.Is/errors.As support
//
// Outcome errors are returned as values, never panicked: a full warehouse or
// a duplicate barcode is a business result, not a fault.
package errs
