// Package guard marks value objects as built through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil error for an object that was not constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands and queries so that a zero-value
// struct literal can be told apart from one produced by its constructor.
//
// Example:
//
//	var ErrGetOrdersQueryIsNotConstructed = errors.New("GetOrdersQuery must be created via NewGetOrdersQuery")
//
//	type GetOrdersQuery struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewGetOrdersQuery() GetOrdersQuery {
//	    return GetOrdersQuery{guard: guard.NewConstructorGuard()}
//	}
//
//	func (q GetOrdersQuery) Validate() error {
//	    return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard flagged as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
