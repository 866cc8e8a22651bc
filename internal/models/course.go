package models

import (
	"github.com/go-playground/validator/v10"
)

// Course is the top-level journal scope. Name is unique per owner.
type Course struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name" validate:"required,max=250"`
	OwnerID    int64  `db:"owner_id" json:"owner_id" validate:"required"`
	CreatedAt  int64  `db:"created_at" json:"created_at"`
	ModifiedAt int64  `db:"modified_at" json:"modified_at"`
}

// NewCourse is the create/update payload for a course.
type NewCourse struct {
	Name    string `json:"name" validate:"required,max=250"`
	OwnerID int64  `json:"owner_id" validate:"required"`
}

// PatchCourse carries only the fields the caller wants changed.
type PatchCourse struct {
	Name    *string `json:"name" validate:"omitempty,max=250"`
	OwnerID *int64  `json:"owner_id"`
}

func (c *Course) Validate() error {
	return validator.New().Struct(c)
}

func (c *NewCourse) Validate() error {
	return validator.New().Struct(c)
}

func (c *PatchCourse) Validate() error {
	return validator.New().Struct(c)
}
