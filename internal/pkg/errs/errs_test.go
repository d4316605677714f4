package errs_test

import (
	"errors"
	"testing"

	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("barcode", "000000000001")

		assert.Equal(t, "barcode", err.ParamName)
		assert.Equal(t, "000000000001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 000000000001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("barcode", "000000000001", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: barcode, ID is: 000000000001 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown label")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: unknown label)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("aisle", 12, 1, 5)

		assert.Equal(t, "aisle", err.ParamName)
		assert.Equal(t, 12, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		assert.Equal(t, "value is invalid: 12 is aisle, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("barcode")

	assert.Equal(t, "barcode", err.ParamName)
	assert.Equal(t, "value is required: barcode", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	cause := errors.New("missing required field")
	withCause := errs.NewValueIsRequiredErrorWithCause("barcode", cause)
	assert.Equal(t, "value is required: barcode (cause: missing required field)", withCause.Error())
}

func TestDuplicateBarcodeError(t *testing.T) {
	err := errs.NewDuplicateBarcodeError("000000000001")

	assert.Equal(t, "000000000001", err.Barcode)
	assert.Equal(t, "barcode already registered: 000000000001", err.Error())
	require.ErrorIs(t, err, errs.ErrDuplicateBarcode)

	var dup *errs.DuplicateBarcodeError
	require.ErrorAs(t, error(err), &dup)
	assert.Equal(t, "000000000001", dup.Barcode)
}

func TestNoAvailableLocationError(t *testing.T) {
	err := errs.NewNoAvailableLocationError("Heavy")

	assert.Equal(t, "Heavy", err.Category)
	assert.Equal(t, "no available location: category Heavy is full", err.Error())
	require.ErrorIs(t, err, errs.ErrNoAvailableLocation)
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("barcode", "x"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("shelf", 9, 1, 4), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("barcode"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewDuplicateBarcodeError("x"), errs.ErrDuplicateBarcode)
	require.ErrorIs(t, errs.NewNoAvailableLocationError("Express"), errs.ErrNoAvailableLocation)
}
