package factory

import "errors"

var (
	// ErrTypeNotFound is returned when a name does not resolve to a declared type.
	ErrTypeNotFound = errors.New("factory: type not found")
	// ErrTypeMismatch is returned when a type does not satisfy the required capability.
	ErrTypeMismatch = errors.New("factory: type mismatch")
	// ErrNoConstructor is returned when a type lacks the required constructor.
	ErrNoConstructor = errors.New("factory: no matching constructor")
	// ErrConstructionFailed wraps any failure raised while constructing an instance.
	ErrConstructionFailed = errors.New("factory: construction failed")
	// ErrInvalidArgument is returned by the default-type setters for unsuitable types.
	ErrInvalidArgument = errors.New("factory: invalid argument")
	// ErrUnknownCategory is returned for category labels outside the known set.
	ErrUnknownCategory = errors.New("factory: unknown category")
	// ErrDuplicateType is returned when a catalog already holds a different type under a name.
	ErrDuplicateType = errors.New("factory: duplicate type name")
)
