package app

import (
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/apperr"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/metrics"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/rules"
)

func (s *Service) GetPersonLink(id int64) (*models.PersonLink, error) {
	link, err := s.Store.GetPersonLink(id)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, apperr.NotFound("person link", id)
	}
	return link, nil
}

func (s *Service) ListPersonLinks() ([]models.PersonLink, error) {
	return s.Store.ListPersonLinks()
}

func (s *Service) CreatePersonLink(in models.NewPersonLink) (*models.PersonLink, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	target, err := linkTargetFrom(in.EmployeeID, in.StudentID)
	if err != nil {
		return nil, err
	}
	if err := rules.EnsureLinkTarget(in.Role, target); err != nil {
		return nil, err
	}
	if err := s.resolveLinkRefs(in.UserID, target); err != nil {
		return nil, err
	}
	if err := s.checkLinkTarget(target, 0); err != nil {
		return nil, err
	}

	now := s.Clock.Now().Unix()
	link := &models.PersonLink{
		UserID:     in.UserID,
		Role:       in.Role,
		Target:     target,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	if err := s.Store.CreatePersonLink(link); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("person_link", "create").Inc()
	return link, nil
}

// UpdatePersonLink replaces the link. Role and target are immutable once
// set; in practice only the login identity may move.
func (s *Service) UpdatePersonLink(id int64, in models.NewPersonLink) (*models.PersonLink, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	link, err := s.GetPersonLink(id)
	if err != nil {
		return nil, err
	}
	target, err := linkTargetFrom(in.EmployeeID, in.StudentID)
	if err != nil {
		return nil, err
	}
	if err := rules.EnsureImmutable(link.Role, in.Role, "role"); err != nil {
		return nil, err
	}
	if err := rules.EnsureImmutable(link.Target, target, "target"); err != nil {
		return nil, err
	}
	if err := s.resolveLinkRefs(in.UserID, target); err != nil {
		return nil, err
	}

	link.UserID = in.UserID
	link.ModifiedAt = s.Clock.Now().Unix()
	if err := s.Store.UpdatePersonLink(link); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("person_link", "update").Inc()
	return link, nil
}

func (s *Service) PatchPersonLink(id int64, in models.PatchPersonLink) (*models.PersonLink, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	link, err := s.GetPersonLink(id)
	if err != nil {
		return nil, err
	}
	if err := rules.EnsureImmutablePatch(link.Role, in.Role, "role"); err != nil {
		return nil, err
	}
	if in.EmployeeID != nil || in.StudentID != nil {
		target, err := linkTargetFrom(in.EmployeeID, in.StudentID)
		if err != nil {
			return nil, err
		}
		if err := rules.EnsureImmutable(link.Target, target, "target"); err != nil {
			return nil, err
		}
	}

	if in.UserID != nil {
		user, err := s.Store.GetUser(*in.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, apperr.NotFound("user", *in.UserID)
		}
		link.UserID = *in.UserID
	}
	link.ModifiedAt = s.Clock.Now().Unix()
	if err := s.Store.UpdatePersonLink(link); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("person_link", "patch").Inc()
	return link, nil
}

func (s *Service) DeletePersonLink(id int64) error {
	if _, err := s.GetPersonLink(id); err != nil {
		return err
	}
	if err := s.Store.DeletePersonLink(id); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("person_link", "delete").Inc()
	return nil
}

// linkTargetFrom collapses the two optional wire refs into the tagged
// variant, rejecting input that supplies both.
func linkTargetFrom(employeeID, studentID *int64) (models.LinkTarget, error) {
	switch {
	case employeeID != nil && studentID != nil:
		return models.LinkTarget{}, &apperr.MultipleTargetsError{}
	case employeeID != nil:
		return models.EmployeeTarget(*employeeID), nil
	case studentID != nil:
		return models.StudentTarget(*studentID), nil
	default:
		return models.NoTarget(), nil
	}
}

func (s *Service) resolveLinkRefs(userID int64, target models.LinkTarget) error {
	user, err := s.Store.GetUser(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("user", userID)
	}

	switch target.Kind {
	case models.TargetEmployee:
		employee, err := s.Store.GetEmployee(target.ID)
		if err != nil {
			return err
		}
		if employee == nil {
			return apperr.NotFound("employee", target.ID)
		}
	case models.TargetStudent:
		student, err := s.Store.GetStudent(target.ID)
		if err != nil {
			return err
		}
		if student == nil {
			return apperr.NotFound("student", target.ID)
		}
	}
	return nil
}

// checkLinkTarget is the optimistic pass; the partial unique indexes on
// person_links are the race-proof authority and also surface as Conflict.
func (s *Service) checkLinkTarget(target models.LinkTarget, excludeID int64) error {
	links, err := s.Store.ListPersonLinks()
	if err != nil {
		return err
	}
	return rules.EnsureUniqueLinkTarget(target, links, excludeID)
}
