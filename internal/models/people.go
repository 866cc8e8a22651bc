package models

import (
	"github.com/go-playground/validator/v10"
)

// User is a login identity that can own courses.
type User struct {
	ID        int64  `db:"id" json:"id"`
	Email     string `db:"email" json:"email" validate:"required,email"`
	FullName  string `db:"full_name" json:"full_name"`
	CreatedAt int64  `db:"created_at" json:"created_at"`
}

// Student is an enrolled person submissions and attendance refer to.
type Student struct {
	ID        int64  `db:"id" json:"id"`
	FullName  string `db:"full_name" json:"full_name" validate:"required,max=250"`
	CreatedAt int64  `db:"created_at" json:"created_at"`
}

// Employee is a staff person a teacher link refers to.
type Employee struct {
	ID         int64  `db:"id" json:"id"`
	FullName   string `db:"full_name" json:"full_name" validate:"required,max=250"`
	Department string `db:"department" json:"department"`
	CreatedAt  int64  `db:"created_at" json:"created_at"`
}

type NewUser struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"max=250"`
}

type NewStudent struct {
	FullName string `json:"full_name" validate:"required,max=250"`
}

type NewEmployee struct {
	FullName   string `json:"full_name" validate:"required,max=250"`
	Department string `json:"department" validate:"max=250"`
}

func (u *User) Validate() error {
	return validator.New().Struct(u)
}

func (s *Student) Validate() error {
	return validator.New().Struct(s)
}

func (e *Employee) Validate() error {
	return validator.New().Struct(e)
}

func (u *NewUser) Validate() error {
	return validator.New().Struct(u)
}

func (s *NewStudent) Validate() error {
	return validator.New().Struct(s)
}

func (e *NewEmployee) Validate() error {
	return validator.New().Struct(e)
}
