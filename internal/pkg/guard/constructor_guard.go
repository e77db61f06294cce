// Package guard provides the constructor guard pattern used by commands and
// queries to ensure they are only created through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and commands are only created
// through their designated constructor functions. A zero-value struct fails
// validation, which prevents bypassing the constructor's invariant checks.
//
// Example:
//
//	type RegisterCustomerCommand struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRegisterCustomerCommand(name string) (RegisterCustomerCommand, error) {
//	    if name == "" {
//	        return RegisterCustomerCommand{}, errs.NewValueIsRequiredError("name")
//	    }
//	    return RegisterCustomerCommand{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RegisterCustomerCommand) Validate() error {
//	    return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns validationError for zero-value objects, or
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
