// Package entity contains the core business entities and rules of the
// library domain. These types have no knowledge of databases, HTTP, or any
// infrastructure concerns.
package entity

import "fmt"

// ValidationError reports a field that violates a business rule. Callers can
// recover by correcting the input.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on %s: %s", e.Field, e.Message)
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}

// DuplicateError reports a unique-constraint violation, e.g. ISBN reuse or a
// second active loan of the same book by the same member.
type DuplicateError struct {
	Entity string
	Field  string
	Value  string
}

func (e DuplicateError) Error() string {
	return fmt.Sprintf("%s with %s %s already exists", e.Entity, e.Field, e.Value)
}

// CapacityError reports a business-rule limit being exceeded.
type CapacityError struct {
	Message string
}

func (e CapacityError) Error() string { return e.Message }

// StateError reports an illegal state transition, e.g. returning a loan that
// is already returned.
type StateError struct {
	Message string
}

func (e StateError) Error() string { return e.Message }

// UnavailableError reports a resource that exists but cannot currently be
// used, e.g. borrowing a book that is already lent out.
type UnavailableError struct {
	Entity string
	Reason string
}

func (e UnavailableError) Error() string {
	return fmt.Sprintf("%s is not available: %s", e.Entity, e.Reason)
}
