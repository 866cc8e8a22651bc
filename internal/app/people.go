package app

import (
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/apperr"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/metrics"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

// People are append-only reference data: once submissions or links point at
// them the row never changes, so the family only has Get and Create.

func (s *Service) GetUser(id int64) (*models.User, error) {
	user, err := s.Store.GetUser(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user", id)
	}
	return user, nil
}

func (s *Service) CreateUser(in models.NewUser) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	user := &models.User{
		Email:     in.Email,
		FullName:  in.FullName,
		CreatedAt: s.Clock.Now().Unix(),
	}
	if err := s.Store.CreateUser(user); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("user", "create").Inc()
	return user, nil
}

func (s *Service) GetStudent(id int64) (*models.Student, error) {
	student, err := s.Store.GetStudent(id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperr.NotFound("student", id)
	}
	return student, nil
}

func (s *Service) CreateStudent(in models.NewStudent) (*models.Student, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	student := &models.Student{
		FullName:  in.FullName,
		CreatedAt: s.Clock.Now().Unix(),
	}
	if err := s.Store.CreateStudent(student); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("student", "create").Inc()
	return student, nil
}

func (s *Service) GetEmployee(id int64) (*models.Employee, error) {
	employee, err := s.Store.GetEmployee(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperr.NotFound("employee", id)
	}
	return employee, nil
}

func (s *Service) CreateEmployee(in models.NewEmployee) (*models.Employee, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	employee := &models.Employee{
		FullName:   in.FullName,
		Department: in.Department,
		CreatedAt:  s.Clock.Now().Unix(),
	}
	if err := s.Store.CreateEmployee(employee); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("employee", "create").Inc()
	return employee, nil
}
