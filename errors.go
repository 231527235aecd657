// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"fmt"
	"strings"
)

// ShapeConflictError reports an object whose key set matches zero or several
// variants of a field-presence-discriminated union.
type ShapeConflictError struct {
	// Family is the union family being resolved, e.g. "FileContent".
	Family string

	// Keys is the sorted key set of the offending object.
	Keys []string
}

// Error returns the error message.
func (e *ShapeConflictError) Error() string {
	return fmt.Sprintf("%s: ambiguous shape, keys [%s] match no single variant", e.Family, strings.Join(e.Keys, " "))
}

// UnknownVariantError reports an unrecognized tag on an explicitly tagged union.
type UnknownVariantError struct {
	// Family is the union family being resolved, e.g. "SecurityScheme".
	Family string

	// Tag is the unrecognized discriminator value.
	Tag string
}

// Error returns the error message.
func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("%s: unknown variant tag %q", e.Family, e.Tag)
}

// MissingFieldError reports a required field absent from a decoded document.
type MissingFieldError struct {
	// Field is the wire name of the missing field, dotted for nesting.
	Field string
}

// Error returns the error message.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// TypeMismatchError reports a field present with the wrong JSON shape.
type TypeMismatchError struct {
	// Field is the JSON pointer of the offending value.
	Field string

	// Expected describes the shape the schema requires.
	Expected string

	// Actual describes the shape found on the wire.
	Actual string
}

// Error returns the error message.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch at %q: expected %s, got %s", e.Field, e.Expected, e.Actual)
}

// ValidationError reports a constructor-time or post-decode constraint
// violation. No half-valid entity is ever observable: constructors fail with
// this error instead of returning the entity.
type ValidationError struct {
	// Field is the wire name of the offending field.
	Field string

	// Constraint describes the violated constraint.
	Constraint string
}

// Error returns the error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Constraint)
}

// InvalidStateError reports a task state string outside the defined set.
type InvalidStateError struct {
	// Value is the malformed state string.
	Value string
}

// Error returns the error message.
func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid task state %q", e.Value)
}

// FinalFlagMismatchError reports a TaskStatusUpdateEvent whose final flag is
// set while its status state is not terminal.
type FinalFlagMismatchError struct {
	// State is the non-terminal state carried by the final event.
	State TaskState
}

// Error returns the error message.
func (e *FinalFlagMismatchError) Error() string {
	return fmt.Sprintf("final event carries non-terminal state %q", e.State)
}
