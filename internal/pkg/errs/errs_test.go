package errs_test

import (
	"errors"
	"testing"

	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("merchantPaymentId", "M1")

		assert.Equal(t, "merchantPaymentId", err.ParamName)
		assert.Equal(t, "M1", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: M1", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("shipmentId", int64(7), cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: shipmentId, ID is: 7 (cause: database connection failed)",
			err.Error())
	})

	t.Run("numeric ids are formatted plainly", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("productId", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("quantity")

		assert.Equal(t, "value is invalid: quantity", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("0 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)

		assert.Equal(t, "value is invalid: quantity (cause: 0 is not greater than 0)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 150, 1, 99)

		assert.Equal(t, 150, err.Value)
		assert.Equal(t, "value is invalid: 150 is quantity, min value is 1, max value is 99", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredErrorWithCause("postalCode", errors.New("empty"))

	assert.Equal(t, "value is required: postalCode (cause: empty)", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestMissingAddressError(t *testing.T) {
	err := errs.NewMissingAddressError("u-1")

	assert.Equal(t, "shipping address is missing: user u-1", err.Error())
	require.ErrorIs(t, err, errs.ErrMissingAddress)
}

func TestGatewayError(t *testing.T) {
	t.Run("status and code are reported", func(t *testing.T) {
		err := errs.NewGatewayError("create qr code", 400, "INVALID_PARAMS")

		assert.Equal(t, "payment gateway error: create qr code, status 400, code INVALID_PARAMS", err.Error())
		require.ErrorIs(t, err, errs.ErrGateway)
	})

	t.Run("cause stays matchable", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewGatewayErrorWithCause("create qr code", cause)

		require.ErrorIs(t, err, errs.ErrGateway)
		require.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "(cause: connection reset)")
	})
}

func TestUnauthorizedError(t *testing.T) {
	err := errs.NewUnauthorizedError("payment", "M1")

	assert.Equal(t, "unauthorized: payment M1 is owned by another user", err.Error())
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestTransactionError(t *testing.T) {
	cause := errs.NewConflictError("merchantPaymentId", "M1")
	err := errs.NewTransactionError(cause)

	require.ErrorIs(t, err, errs.ErrTransaction)
	require.ErrorIs(t, err, errs.ErrConflict)

	var conflict *errs.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "M1", conflict.Value)
}

func TestIllegalTransitionError(t *testing.T) {
	err := errs.NewIllegalTransitionError("created", "delivered")

	assert.Equal(t, "illegal status transition: delivered is not allowed from created", err.Error())
	require.ErrorIs(t, err, errs.ErrIllegalTransition)
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "transaction failed", errs.ErrTransaction.Error())
	assert.Equal(t, "conflict", errs.ErrConflict.Error())
}
