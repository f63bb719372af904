// Package pgerrs classifies PostgreSQL errors raised through lib/pq.
package pgerrs

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolation     = pq.ErrorCode("23505")
	foreignKeyViolation = pq.ErrorCode("23503")
	checkViolation      = pq.ErrorCode("23514")
)

// UniqueViolation reports whether err is a unique constraint violation and, if
// so, the name of the violated constraint.
func UniqueViolation(err error) (string, bool) {
	return matches(err, uniqueViolation)
}

func ForeignKeyViolation(err error) (string, bool) {
	return matches(err, foreignKeyViolation)
}

func CheckViolation(err error) (string, bool) {
	return matches(err, checkViolation)
}

func matches(err error, code pq.ErrorCode) (string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != code {
		return "", false
	}
	return pqErr.Constraint, true
}
