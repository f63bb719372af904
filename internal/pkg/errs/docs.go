// Package errs provides standardized error types for the storefront application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for common validation scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// And the error taxonomy of the order pipeline:
//   - MissingAddressError: The user has no saved shipping address
//   - GatewayError: The payment gateway failed or answered without a checkout URL
//   - UnauthorizedError: The authenticated user does not own the requested resource
//   - TransactionError: A database write failed and the unit of work was rolled back
//   - ConflictError: A unique constraint rejected the write
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels and extract
// details with errors.As against the struct types.
package errs
