package store

import "errors"

var (
	// ErrNotFound is returned when a key is not present in the store.
	ErrNotFound = errors.New("key not found")
	// ErrTypeMismatch is returned when a stored value is not of the requested type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrNilValue is returned when an operation needs the type of a nil value.
	ErrNilValue = errors.New("stored value is nil")
	// ErrUnsupportedType is returned when no JSON schema can describe a value's type.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrRecursiveType is returned when a type refers to itself and cannot be inlined.
	ErrRecursiveType = errors.New("recursive type")
)
