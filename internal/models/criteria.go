package models

import (
	"github.com/go-playground/validator/v10"
)

// Criteria is a weighted grading criterion of a task. Name is unique within
// the task; weights do not have to sum to 100.
type Criteria struct {
	ID              int64  `db:"id" json:"id"`
	TaskID          int64  `db:"task_id" json:"task_id" validate:"required"`
	Name            string `db:"name" json:"name" validate:"required,max=250"`
	CriteriaPercent int    `db:"criteria_percent" json:"criteria_percent" validate:"min=0,max=100"`
	CreatedAt       int64  `db:"created_at" json:"created_at"`
	ModifiedAt      int64  `db:"modified_at" json:"modified_at"`
}

type NewCriteria struct {
	TaskID          int64  `json:"task_id" validate:"required"`
	Name            string `json:"name" validate:"required,max=250"`
	CriteriaPercent int    `json:"criteria_percent" validate:"min=0,max=100"`
}

type PatchCriteria struct {
	TaskID          *int64  `json:"task_id"`
	Name            *string `json:"name" validate:"omitempty,max=250"`
	CriteriaPercent *int    `json:"criteria_percent" validate:"omitempty,min=0,max=100"`
}

func (c *Criteria) Validate() error {
	return validator.New().Struct(c)
}

func (c *NewCriteria) Validate() error {
	return validator.New().Struct(c)
}

func (c *PatchCriteria) Validate() error {
	return validator.New().Struct(c)
}
