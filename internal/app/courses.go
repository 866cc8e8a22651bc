package app

import (
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/apperr"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/metrics"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/rules"
)

func (s *Service) GetCourse(id int64) (*models.Course, error) {
	course, err := s.Store.GetCourse(id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperr.NotFound("course", id)
	}
	return course, nil
}

func (s *Service) ListOwnerCourses(ownerID int64) ([]models.Course, error) {
	return s.Store.ListOwnerCourses(ownerID)
}

func (s *Service) CreateCourse(in models.NewCourse) (*models.Course, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkCourseName(in.OwnerID, in.Name, 0); err != nil {
		return nil, err
	}

	now := s.Clock.Now().Unix()
	course := &models.Course{
		Name:       in.Name,
		OwnerID:    in.OwnerID,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	if err := s.Store.CreateCourse(course); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("course", "create").Inc()
	return course, nil
}

func (s *Service) UpdateCourse(id int64, in models.NewCourse) (*models.Course, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	course, err := s.GetCourse(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCourseName(in.OwnerID, in.Name, id); err != nil {
		return nil, err
	}

	course.Name = in.Name
	course.OwnerID = in.OwnerID
	course.ModifiedAt = s.Clock.Now().Unix()
	if err := s.Store.UpdateCourse(course); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("course", "update").Inc()
	return course, nil
}

func (s *Service) PatchCourse(id int64, in models.PatchCourse) (*models.Course, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	course, err := s.GetCourse(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		course.Name = *in.Name
	}
	if in.OwnerID != nil {
		course.OwnerID = *in.OwnerID
	}
	if err := s.checkCourseName(course.OwnerID, course.Name, id); err != nil {
		return nil, err
	}

	course.ModifiedAt = s.Clock.Now().Unix()
	if err := s.Store.UpdateCourse(course); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("course", "patch").Inc()
	return course, nil
}

func (s *Service) DeleteCourse(id int64) error {
	if _, err := s.GetCourse(id); err != nil {
		return err
	}
	if err := s.Store.DeleteCourse(id); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("course", "delete").Inc()
	return nil
}

// checkCourseName resolves the owner and runs the unique-per-owner name
// check. The store's unique index remains the correctness authority; this
// pass exists for fast caller feedback.
func (s *Service) checkCourseName(ownerID int64, name string, excludeID int64) error {
	owner, err := s.Store.GetUser(ownerID)
	if err != nil {
		return err
	}
	if owner == nil {
		return apperr.NotFound("user", ownerID)
	}

	siblings, err := s.Store.ListOwnerCourses(ownerID)
	if err != nil {
		return err
	}
	names := make(map[int64]string, len(siblings))
	for _, c := range siblings {
		names[c.ID] = c.Name
	}
	return rules.EnsureUnique("course", "name", name, names, excludeID)
}
