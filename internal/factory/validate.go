package factory

import (
	"fmt"
	"reflect"

	"gridpkg/internal/grid"
)

var (
	// GridCapability is the interface every grid type must implement.
	GridCapability = reflect.TypeFor[grid.Grid]()
	// ObjectCapability is the interface every grid-object type must implement.
	ObjectCapability = reflect.TypeFor[grid.Object]()
)

// IsValidType verifies that t is assignable to base and exposes a
// constructor accepting sig. Assignability is checked first, so a type that
// fails both checks reports ErrTypeMismatch.
func IsValidType(t *Type, base reflect.Type, sig Signature) (bool, error) {
	if t == nil {
		return false, fmt.Errorf("%w: nil type", ErrInvalidArgument)
	}
	if !t.AssignableTo(base) {
		return false, fmt.Errorf("%w: %s is not compatible with %s", ErrTypeMismatch, t.Name(), base)
	}
	if !t.HasConstructor(sig) {
		return false, fmt.Errorf("%w: %s has no %s constructor", ErrNoConstructor, t.Name(), sig)
	}
	return true, nil
}

// IsValidGridType validates t against the grid capability and sig, which is
// Dimensions for bounded grids and NoArgs for unbounded ones.
func IsValidGridType(t *Type, sig Signature) (bool, error) {
	return IsValidType(t, GridCapability, sig)
}

// IsValidGridObjectType validates t against the grid-object capability and sig.
func IsValidGridObjectType(t *Type, sig Signature) (bool, error) {
	return IsValidType(t, ObjectCapability, sig)
}

// HasFourArgConstructor reports whether the grid-object type t can be built
// from a grid, location, direction and color.
func HasFourArgConstructor(t *Type) bool {
	ok, err := IsValidGridObjectType(t, GridLocationDirectionColor)
	return ok && err == nil
}

// validate applies the contract for category c.
func validate(t *Type, c Category) error {
	var err error
	switch c {
	case BoundedGrid:
		_, err = IsValidGridType(t, Dimensions)
	case UnboundedGrid:
		_, err = IsValidGridType(t, NoArgs)
	case GridObject:
		if !t.AssignableTo(ObjectCapability) {
			err = fmt.Errorf("%w: %s is not compatible with %s", ErrTypeMismatch, t.Name(), ObjectCapability)
		}
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
	return err
}
