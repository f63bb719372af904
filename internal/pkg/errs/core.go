package errs

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAddress = errors.New("shipping address is missing")
	ErrGateway        = errors.New("payment gateway error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrTransaction    = errors.New("transaction failed")
	ErrConflict       = errors.New("conflict")

	ErrIllegalTransition = errors.New("illegal status transition")
)

// MissingAddressError is returned when an order is placed by a user without a saved address.
type MissingAddressError struct {
	UserID string
}

func NewMissingAddressError(userID string) *MissingAddressError {
	return &MissingAddressError{UserID: userID}
}

func (e *MissingAddressError) Error() string {
	return fmt.Sprintf("%s: user %s", ErrMissingAddress, e.UserID)
}

func (e *MissingAddressError) Unwrap() error {
	return ErrMissingAddress
}

// GatewayError wraps any failure of the outbound payment gateway, including a
// successful HTTP exchange whose body carries no checkout URL.
type GatewayError struct {
	Operation  string
	StatusCode int
	Code       string
	Cause      error
}

func NewGatewayError(operation string, statusCode int, code string) *GatewayError {
	return &GatewayError{Operation: operation, StatusCode: statusCode, Code: code}
}

func NewGatewayErrorWithCause(operation string, cause error) *GatewayError {
	return &GatewayError{Operation: operation, Cause: cause}
}

func (e *GatewayError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrGateway, e.Operation)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s, status %d", msg, e.StatusCode)
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s, code %s", msg, e.Code)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *GatewayError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrGateway, e.Cause}
	}
	return []error{ErrGateway}
}

// UnauthorizedError is returned when a resource exists but belongs to another user.
type UnauthorizedError struct {
	Resource string
	ID       string
}

func NewUnauthorizedError(resource, id string) *UnauthorizedError {
	return &UnauthorizedError{Resource: resource, ID: id}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: %s %s is owned by another user", ErrUnauthorized, e.Resource, sanitize(e.ID))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// TransactionError marks a failed unit of work. It unwraps to both ErrTransaction
// and the original cause so the root cause stays matchable with errors.Is.
type TransactionError struct {
	Cause error
}

func NewTransactionError(cause error) *TransactionError {
	return &TransactionError{Cause: cause}
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s (cause: %v)", ErrTransaction, e.Cause)
}

func (e *TransactionError) Unwrap() []error {
	return []error{ErrTransaction, e.Cause}
}

// ConflictError reports a write rejected by a unique constraint.
type ConflictError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewConflictError(paramName string, value any) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value}
}

func NewConflictErrorWithCause(paramName string, value any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, Value: value, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s already exists (cause: %v)", ErrConflict, e.ParamName, sanitize(e.Value), e.Cause)
	}
	return fmt.Sprintf("%s: %s %s already exists", ErrConflict, e.ParamName, sanitize(e.Value))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// IllegalTransitionError is returned when an action is not legal from the current shipment state.
type IllegalTransitionError struct {
	From   string
	Action string
}

func NewIllegalTransitionError(from, action string) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, Action: action}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s is not allowed from %s", ErrIllegalTransition, e.Action, e.From)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
