package models

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

// AttendanceType is the recorded presence status for one class period.
type AttendanceType string

const (
	AttendancePresent AttendanceType = "present"
	AttendanceAbsent  AttendanceType = "absent"
	AttendanceExcused AttendanceType = "excused"
	AttendanceLate    AttendanceType = "late"
)

// Valid returns true when the type is a supported value.
func (t AttendanceType) Valid() bool {
	switch t {
	case AttendancePresent, AttendanceAbsent, AttendanceExcused, AttendanceLate:
		return true
	default:
		return false
	}
}

// Attendance marks one student in one class period of one day. The slot
// (student, date, class) is unique; student, course, date and class never
// change after creation, only the type does.
type Attendance struct {
	ID             int64          `db:"id" json:"id"`
	StudentID      int64          `db:"student_id" json:"student_id" validate:"required"`
	CourseID       int64          `db:"course_id" json:"course_id" validate:"required"`
	AttendedDate   string         `db:"attended_date" json:"attended_date" validate:"required,datetime=2006-01-02"`
	AttendedClass  int            `db:"attended_class" json:"attended_class" validate:"min=1"`
	AttendanceType AttendanceType `db:"attendance_type" json:"attendance_type" validate:"required,oneof=present absent excused late"`
	CreatedAt      int64          `db:"created_at" json:"created_at"`
	ModifiedAt     int64          `db:"modified_at" json:"modified_at"`
}

type NewAttendance struct {
	StudentID      int64          `json:"student_id" validate:"required"`
	CourseID       int64          `json:"course_id" validate:"required"`
	AttendedDate   string         `json:"attended_date" validate:"required,datetime=2006-01-02"`
	AttendedClass  int            `json:"attended_class" validate:"min=1"`
	AttendanceType AttendanceType `json:"attendance_type" validate:"required,oneof=present absent excused late"`
}

// PatchAttendance may only touch the type; the other fields are present so
// the engine can reject transfer attempts explicitly instead of silently
// ignoring them.
type PatchAttendance struct {
	StudentID      *int64          `json:"student_id"`
	CourseID       *int64          `json:"course_id"`
	AttendedDate   *string         `json:"attended_date" validate:"omitempty,datetime=2006-01-02"`
	AttendedClass  *int            `json:"attended_class" validate:"omitempty,min=1"`
	AttendanceType *AttendanceType `json:"attendance_type" validate:"omitempty,oneof=present absent excused late"`
}

// SlotKey identifies the uniqueness scope of an attendance record within one
// student's history.
func (a *Attendance) SlotKey() string {
	return attendanceSlotKey(a.AttendedDate, a.AttendedClass)
}

func (a *NewAttendance) SlotKey() string {
	return attendanceSlotKey(a.AttendedDate, a.AttendedClass)
}

func attendanceSlotKey(date string, class int) string {
	return date + "#" + strconv.Itoa(class)
}

func (a *Attendance) Validate() error {
	return validator.New().Struct(a)
}

func (a *NewAttendance) Validate() error {
	return validator.New().Struct(a)
}

func (a *PatchAttendance) Validate() error {
	return validator.New().Struct(a)
}
