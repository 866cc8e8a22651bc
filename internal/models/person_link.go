package models

import (
	"github.com/go-playground/validator/v10"
)

// UserRole is the role of a login identity.
type UserRole string

const (
	RoleAdmin   UserRole = "ADMIN"
	RoleTeacher UserRole = "TEACHER"
	RoleHeadman UserRole = "HEADMAN"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleHeadman:
		return true
	default:
		return false
	}
}

// TargetKind tags the person a link points at.
type TargetKind string

const (
	TargetNone     TargetKind = "none"
	TargetEmployee TargetKind = "employee"
	TargetStudent  TargetKind = "student"
)

// LinkTarget is the tagged variant over {employee, student, absent}. Modeling
// it as a kind+id pair instead of two nullable ids makes the cardinality
// rules structurally checkable.
type LinkTarget struct {
	Kind TargetKind `json:"kind"`
	ID   int64      `json:"id,omitempty"`
}

func NoTarget() LinkTarget {
	return LinkTarget{Kind: TargetNone}
}

func EmployeeTarget(id int64) LinkTarget {
	return LinkTarget{Kind: TargetEmployee, ID: id}
}

func StudentTarget(id int64) LinkTarget {
	return LinkTarget{Kind: TargetStudent, ID: id}
}

// PersonLink binds a login identity to the person record it represents.
// Role and target are immutable once set.
type PersonLink struct {
	ID         int64      `db:"id" json:"id"`
	UserID     int64      `db:"user_id" json:"user_id" validate:"required"`
	Role       UserRole   `db:"role" json:"role" validate:"required,oneof=ADMIN TEACHER HEADMAN"`
	Target     LinkTarget `db:"-" json:"target"`
	CreatedAt  int64      `db:"created_at" json:"created_at"`
	ModifiedAt int64      `db:"modified_at" json:"modified_at"`
}

// NewPersonLink is the wire payload: two optional refs that collapse into a
// LinkTarget. Supplying both is a MultipleTargets violation, caught by the
// mutation pipeline before any rules run.
type NewPersonLink struct {
	UserID     int64    `json:"user_id" validate:"required"`
	Role       UserRole `json:"role" validate:"required,oneof=ADMIN TEACHER HEADMAN"`
	EmployeeID *int64   `json:"employee_id"`
	StudentID  *int64   `json:"student_id"`
}

type PatchPersonLink struct {
	UserID     *int64    `json:"user_id"`
	Role       *UserRole `json:"role" validate:"omitempty,oneof=ADMIN TEACHER HEADMAN"`
	EmployeeID *int64    `json:"employee_id"`
	StudentID  *int64    `json:"student_id"`
}

func (l *PersonLink) Validate() error {
	return validator.New().Struct(l)
}

func (l *NewPersonLink) Validate() error {
	return validator.New().Struct(l)
}

func (l *PatchPersonLink) Validate() error {
	return validator.New().Struct(l)
}
