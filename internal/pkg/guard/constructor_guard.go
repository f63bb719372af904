// Package guard provides ConstructorGuard, a marker embedded in commands, queries and
// entities so that zero values built with a struct literal can be told apart from
// values produced by their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. Embed it as a field and call
// Validate from the owner's Validate method:
//
//	var ErrCartNotConstructed = errors.New("Cart must be created via NewCart")
//
//	func (c Cart) Validate() error {
//	    return c.guard.Validate(ErrCartNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard, otherwise validationError
// (or ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
