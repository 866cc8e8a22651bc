package models

import (
	"github.com/go-playground/validator/v10"
)

// Task is a graded unit of work inside a course. TaskNumber orders tasks
// for display; it is unique within the course whenever non-null, and goes
// null transiently during bulk renumbering.
type Task struct {
	ID                int64  `db:"id" json:"id"`
	CourseID          int64  `db:"course_id" json:"course_id" validate:"required"`
	TaskNumber        *int   `db:"task_number" json:"task_number,omitempty"`
	Title             string `db:"title" json:"title" validate:"required,max=250"`
	MaxScore          int    `db:"max_score" json:"max_score" validate:"min=0"`
	MaxPenaltyPercent int    `db:"max_penalty_percent" json:"max_penalty_percent" validate:"min=0,max=100"`
	Announced         bool   `db:"announced" json:"announced"`
	AnnouncementAt    *int64 `db:"announcement_at" json:"announcement_at,omitempty"`
	DeadlinesEnabled  bool   `db:"deadlines_enabled" json:"deadlines_enabled"`
	SoftDeadlineAt    *int64 `db:"soft_deadline_at" json:"soft_deadline_at,omitempty"`
	HardDeadlineAt    *int64 `db:"hard_deadline_at" json:"hard_deadline_at,omitempty"`
	CreatedAt         int64  `db:"created_at" json:"created_at"`
	ModifiedAt        int64  `db:"modified_at" json:"modified_at"`
}

type NewTask struct {
	CourseID          int64  `json:"course_id" validate:"required"`
	TaskNumber        *int   `json:"task_number"`
	Title             string `json:"title" validate:"required,max=250"`
	MaxScore          int    `json:"max_score" validate:"min=0"`
	MaxPenaltyPercent int    `json:"max_penalty_percent" validate:"min=0,max=100"`
	Announced         bool   `json:"announced"`
	AnnouncementAt    *int64 `json:"announcement_at"`
	DeadlinesEnabled  bool   `json:"deadlines_enabled"`
	SoftDeadlineAt    *int64 `json:"soft_deadline_at"`
	HardDeadlineAt    *int64 `json:"hard_deadline_at"`
}

type PatchTask struct {
	CourseID          *int64  `json:"course_id"`
	TaskNumber        *int    `json:"task_number"`
	Title             *string `json:"title" validate:"omitempty,max=250"`
	MaxScore          *int    `json:"max_score" validate:"omitempty,min=0"`
	MaxPenaltyPercent *int    `json:"max_penalty_percent" validate:"omitempty,min=0,max=100"`
	Announced         *bool   `json:"announced"`
	AnnouncementAt    *int64  `json:"announcement_at"`
	DeadlinesEnabled  *bool   `json:"deadlines_enabled"`
	SoftDeadlineAt    *int64  `json:"soft_deadline_at"`
	HardDeadlineAt    *int64  `json:"hard_deadline_at"`
}

func (t *Task) Validate() error {
	return validator.New().Struct(t)
}

func (t *NewTask) Validate() error {
	return validator.New().Struct(t)
}

func (t *PatchTask) Validate() error {
	return validator.New().Struct(t)
}
