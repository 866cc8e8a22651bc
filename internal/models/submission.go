package models

import (
	"github.com/go-playground/validator/v10"
)

// Submission is identified by its (task, student) pair; at most one exists
// per pair. MainScore is derived by the scoring engine, AdditionalScore is a
// caller-supplied bonus or penalty on top of it.
type Submission struct {
	TaskID            int64   `db:"task_id" json:"task_id" validate:"required"`
	StudentID         int64   `db:"student_id" json:"student_id" validate:"required"`
	SubmittedAt       int64   `db:"submitted_at" json:"submitted_at" validate:"required"`
	SatisfiedCriteria []int64 `db:"-" json:"satisfied_criteria"`
	MainScore         float64 `db:"main_score" json:"main_score"`
	AdditionalScore   int     `db:"additional_score" json:"additional_score"`
	CreatedAt         int64   `db:"created_at" json:"created_at"`
	ModifiedAt        int64   `db:"modified_at" json:"modified_at"`
}

// TotalScore is the caller-facing grade: derived main score plus the manual
// adjustment.
func (s *Submission) TotalScore() float64 {
	return s.MainScore + float64(s.AdditionalScore)
}

type NewSubmission struct {
	TaskID            int64   `json:"task_id" validate:"required"`
	StudentID         int64   `json:"student_id" validate:"required"`
	SubmittedAt       int64   `json:"submitted_at" validate:"required"`
	SatisfiedCriteria []int64 `json:"satisfied_criteria"`
	AdditionalScore   int     `json:"additional_score"`
}

// PatchSubmission leaves nil fields untouched; a nil SatisfiedCriteria keeps
// the current set, an empty non-nil slice clears it.
type PatchSubmission struct {
	SubmittedAt       *int64  `json:"submitted_at"`
	SatisfiedCriteria []int64 `json:"satisfied_criteria"`
	AdditionalScore   *int    `json:"additional_score"`
}

func (s *Submission) Validate() error {
	return validator.New().Struct(s)
}

func (s *NewSubmission) Validate() error {
	return validator.New().Struct(s)
}
