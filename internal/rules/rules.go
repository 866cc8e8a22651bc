// Package rules holds the invariant checks applied before every entity
// mutation. All checks are pure: they look only at the snapshots they are
// handed, raise a typed failure on violation and never correct data.
package rules

import (
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/apperr"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

// EnsureUnique fails with Conflict when another entity in scope already
// carries the same value. The entity being updated is excluded by id so an
// update does not collide with itself.
func EnsureUnique[T comparable](entity, field string, value T, others map[int64]T, excludeID int64) error {
	for id, v := range others {
		if id == excludeID {
			continue
		}
		if v == value {
			return apperr.Conflict(entity, field, value)
		}
	}
	return nil
}

// EnsureImmutable fails with TransferNotAllowed when a full update tries to
// change a field that is fixed at creation.
func EnsureImmutable[T comparable](oldValue, newValue T, field string) error {
	if oldValue != newValue {
		return &apperr.TransferError{Field: field}
	}
	return nil
}

// EnsureImmutablePatch is the patch variant: an omitted field can never trip
// a transfer violation.
func EnsureImmutablePatch[T comparable](oldValue T, patch *T, field string) error {
	if patch == nil {
		return nil
	}
	return EnsureImmutable(oldValue, *patch, field)
}

// EnsureSingleParent fails with VariousParentEntities unless every item of a
// batch resolves to the same parent id. The single parent id is returned so
// the pipeline resolves it once and propagates it.
func EnsureSingleParent[E any](field string, items []E, parentOf func(E) int64) (int64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	parent := parentOf(items[0])
	for _, item := range items[1:] {
		if got := parentOf(item); got != parent {
			return 0, &apperr.VariousParentsError{Field: field, Got: []int64{parent, got}}
		}
	}
	return parent, nil
}

// EnsurePaired fails with PairedAttributesRuleViolation when exactly one of
// two fields that must travel together is set.
func EnsurePaired(field1, field2 string, set1, set2 bool) error {
	if set1 != set2 {
		return &apperr.PairedAttributesError{Fields: []string{field1, field2}}
	}
	return nil
}

// EnsureLinkTarget enforces the role/target cardinality table:
// ADMIN carries no target, TEACHER exactly one employee, HEADMAN exactly one
// student.
func EnsureLinkTarget(role models.UserRole, target models.LinkTarget) error {
	var want models.TargetKind
	switch role {
	case models.RoleAdmin:
		want = models.TargetNone
	case models.RoleTeacher:
		want = models.TargetEmployee
	case models.RoleHeadman:
		want = models.TargetStudent
	default:
		return &apperr.IncorrectTargetError{Role: string(role), Target: string(target.Kind)}
	}
	if target.Kind != want {
		return &apperr.IncorrectTargetError{Role: string(role), Target: string(target.Kind)}
	}
	return nil
}

// EnsureUniqueLinkTarget fails with Conflict when the same employee or
// student is already bound to another person link.
func EnsureUniqueLinkTarget(target models.LinkTarget, links []models.PersonLink, excludeID int64) error {
	if target.Kind == models.TargetNone {
		return nil
	}
	for _, link := range links {
		if link.ID == excludeID {
			continue
		}
		if link.Target == target {
			return apperr.Conflict("person link", string(target.Kind)+"_id", target.ID)
		}
	}
	return nil
}
