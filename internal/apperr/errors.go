// Package apperr defines the failure taxonomy of the journal engine.
// Every invariant check raises one of these; nothing here is retried
// internally, the transport layer decides what to do with them.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError reports referenced ids that do not exist in the expected scope.
type NotFoundError struct {
	Entity string
	IDs    []int64
}

func (e *NotFoundError) Error() string {
	if len(e.IDs) == 0 {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("%s not found: %s", e.Entity, strings.Join(ids, ", "))
}

func NotFound(entity string, ids ...int64) error {
	return &NotFoundError{Entity: entity, IDs: ids}
}

// ConflictError reports a uniqueness invariant that would be violated.
type ConflictError struct {
	Entity string
	Field  string
	Value  any
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s with %s=%v already exists", e.Entity, e.Field, e.Value)
}

func Conflict(entity, field string, value any) error {
	return &ConflictError{Entity: entity, Field: field, Value: value}
}

// TransferError reports an update or patch that tried to change a field
// designated immutable after creation.
type TransferError struct {
	Field string
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer not allowed: %s is immutable", e.Field)
}

// VariousParentsError reports a batch operation that implied more than one
// distinct parent.
type VariousParentsError struct {
	Field string
	Got   []int64
}

func (e *VariousParentsError) Error() string {
	return fmt.Sprintf("batch references various parent entities via %s: %v", e.Field, e.Got)
}

// IncorrectTargetError reports a person link whose role/target combination
// violates the cardinality table.
type IncorrectTargetError struct {
	Role   string
	Target string
}

func (e *IncorrectTargetError) Error() string {
	return fmt.Sprintf("incorrect target %s on user role %s", e.Target, e.Role)
}

// MultipleTargetsError reports input that supplied two mutually exclusive
// references at once.
type MultipleTargetsError struct{}

func (e *MultipleTargetsError) Error() string {
	return "multiple targets supplied, expected at most one"
}

// PairedAttributesError reports two fields that must be set together but
// were not.
type PairedAttributesError struct {
	Fields []string
}

func (e *PairedAttributesError) Error() string {
	return fmt.Sprintf("paired attributes must be supplied together: %s", strings.Join(e.Fields, ", "))
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

func IsTransfer(err error) bool {
	var e *TransferError
	return errors.As(err, &e)
}

func IsVariousParents(err error) bool {
	var e *VariousParentsError
	return errors.As(err, &e)
}

// IsBadInput reports taxonomy members the transport maps to a 400-class
// response: malformed targets and paired-attribute violations.
func IsBadInput(err error) bool {
	var mt *MultipleTargetsError
	var pa *PairedAttributesError
	var it *IncorrectTargetError
	return errors.As(err, &mt) || errors.As(err, &pa) || errors.As(err, &it)
}
