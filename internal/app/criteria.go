package app

import (
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/apperr"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/metrics"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/rules"
)

func (s *Service) GetCriteria(id int64) (*models.Criteria, error) {
	criteria, err := s.Store.GetCriteria(id)
	if err != nil {
		return nil, err
	}
	if criteria == nil {
		return nil, apperr.NotFound("criteria", id)
	}
	return criteria, nil
}

func (s *Service) ListTaskCriteria(taskID int64) ([]models.Criteria, error) {
	if _, err := s.GetTask(taskID); err != nil {
		return nil, err
	}
	return s.Store.ListTaskCriteria(taskID)
}

func (s *Service) CreateCriteria(in models.NewCriteria) (*models.Criteria, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.GetTask(in.TaskID); err != nil {
		return nil, err
	}
	if err := s.checkCriteriaName(in.TaskID, in.Name, 0); err != nil {
		return nil, err
	}

	now := s.Clock.Now().Unix()
	criteria := &models.Criteria{
		TaskID:          in.TaskID,
		Name:            in.Name,
		CriteriaPercent: in.CriteriaPercent,
		CreatedAt:       now,
		ModifiedAt:      now,
	}
	if err := s.Store.CreateCriteria(criteria); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("criteria", "create").Inc()
	return criteria, nil
}

// BatchCreateCriteria creates all criteria of one task in a single call. The
// batch must name exactly one parent task, which is resolved once.
func (s *Service) BatchCreateCriteria(items []models.NewCriteria) ([]models.Criteria, error) {
	if len(items) == 0 {
		return nil, nil
	}
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return nil, err
		}
	}
	taskID, err := rules.EnsureSingleParent("task_id", items,
		func(c models.NewCriteria) int64 { return c.TaskID })
	if err != nil {
		return nil, err
	}
	if _, err := s.GetTask(taskID); err != nil {
		return nil, err
	}

	existing, err := s.Store.ListTaskCriteria(taskID)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(existing))
	for _, c := range existing {
		names[c.ID] = c.Name
	}

	now := s.Clock.Now().Unix()
	created := make([]models.Criteria, 0, len(items))
	for i, in := range items {
		if err := rules.EnsureUnique("criteria", "name", in.Name, names, 0); err != nil {
			return nil, err
		}
		// items within the batch must not collide with each other either
		names[int64(-(i + 1))] = in.Name

		criteria := models.Criteria{
			TaskID:          taskID,
			Name:            in.Name,
			CriteriaPercent: in.CriteriaPercent,
			CreatedAt:       now,
			ModifiedAt:      now,
		}
		created = append(created, criteria)
	}

	records := make([]*models.Criteria, len(created))
	for i := range created {
		records[i] = &created[i]
	}
	if err := s.Store.CreateCriteriaBatch(records); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("criteria", "batch_create").Inc()
	return created, nil
}

func (s *Service) UpdateCriteria(id int64, in models.NewCriteria) (*models.Criteria, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	criteria, err := s.GetCriteria(id)
	if err != nil {
		return nil, err
	}
	if err := rules.EnsureImmutable(criteria.TaskID, in.TaskID, "task_id"); err != nil {
		return nil, err
	}
	if err := s.checkCriteriaName(criteria.TaskID, in.Name, id); err != nil {
		return nil, err
	}

	criteria.Name = in.Name
	criteria.CriteriaPercent = in.CriteriaPercent
	criteria.ModifiedAt = s.Clock.Now().Unix()
	if err := s.Store.UpdateCriteria(criteria); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("criteria", "update").Inc()
	return criteria, nil
}

func (s *Service) PatchCriteria(id int64, in models.PatchCriteria) (*models.Criteria, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	criteria, err := s.GetCriteria(id)
	if err != nil {
		return nil, err
	}
	if err := rules.EnsureImmutablePatch(criteria.TaskID, in.TaskID, "task_id"); err != nil {
		return nil, err
	}

	if in.Name != nil {
		criteria.Name = *in.Name
	}
	if in.CriteriaPercent != nil {
		criteria.CriteriaPercent = *in.CriteriaPercent
	}
	if err := s.checkCriteriaName(criteria.TaskID, criteria.Name, id); err != nil {
		return nil, err
	}

	criteria.ModifiedAt = s.Clock.Now().Unix()
	if err := s.Store.UpdateCriteria(criteria); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("criteria", "patch").Inc()
	return criteria, nil
}

func (s *Service) DeleteCriteria(id int64) error {
	if _, err := s.GetCriteria(id); err != nil {
		return err
	}
	if err := s.Store.DeleteCriteria(id); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("criteria", "delete").Inc()
	return nil
}

func (s *Service) checkCriteriaName(taskID int64, name string, excludeID int64) error {
	siblings, err := s.Store.ListTaskCriteria(taskID)
	if err != nil {
		return err
	}
	names := make(map[int64]string, len(siblings))
	for _, c := range siblings {
		names[c.ID] = c.Name
	}
	return rules.EnsureUnique("criteria", "name", name, names, excludeID)
}
