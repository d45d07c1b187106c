package internal

import "errors"

var (
	// ErrInvalidPosition is returned whenever a public Sheet operation is given
	// a Position that fails IsValid.
	ErrInvalidPosition = errors.New("invalid position")
	// ErrParseFailure is returned when a formula's expression body fails to parse.
	ErrParseFailure = errors.New("formula parse failure")
	// ErrCircularDependency is returned when assigning a formula would create a
	// cycle in the dependency graph. The assignee's cell is left unchanged.
	ErrCircularDependency = errors.New("circular dependency")
)
