package store

import (
	"fmt"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

func (s *BaseStore) GetUser(id int64) (*models.User, error) {
	var u models.User
	found, err := s.getRow(&u, `
		SELECT id, email, full_name, created_at
		FROM users
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &u, nil
}

func (s *BaseStore) CreateUser(u *models.User) error {
	err := s.DB.Get(&u.ID, s.Converter(`
		INSERT INTO users (email, full_name, created_at)
		VALUES (?, ?, ?)
		RETURNING id
	`), u.Email, u.FullName, u.CreatedAt)
	return s.wrapWrite(err, "user", "email", u.Email)
}

func (s *BaseStore) GetStudent(id int64) (*models.Student, error) {
	var st models.Student
	found, err := s.getRow(&st, `
		SELECT id, full_name, created_at
		FROM students
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &st, nil
}

func (s *BaseStore) CreateStudent(st *models.Student) error {
	err := s.DB.Get(&st.ID, s.Converter(`
		INSERT INTO students (full_name, created_at)
		VALUES (?, ?)
		RETURNING id
	`), st.FullName, st.CreatedAt)
	return s.wrapWrite(err, "student", "full_name", st.FullName)
}

func (s *BaseStore) GetEmployee(id int64) (*models.Employee, error) {
	var e models.Employee
	found, err := s.getRow(&e, `
		SELECT id, full_name, department, created_at
		FROM employees
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &e, nil
}

func (s *BaseStore) CreateEmployee(e *models.Employee) error {
	err := s.DB.Get(&e.ID, s.Converter(`
		INSERT INTO employees (full_name, department, created_at)
		VALUES (?, ?, ?)
		RETURNING id
	`), e.FullName, e.Department, e.CreatedAt)
	return s.wrapWrite(err, "employee", "full_name", e.FullName)
}
