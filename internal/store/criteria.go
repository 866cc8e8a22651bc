package store

import (
	"fmt"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

func (s *BaseStore) GetCriteria(id int64) (*models.Criteria, error) {
	var c models.Criteria
	found, err := s.getRow(&c, `
		SELECT id, task_id, name, criteria_percent, created_at, modified_at
		FROM criteria
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get criteria: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &c, nil
}

func (s *BaseStore) ListTaskCriteria(taskID int64) ([]models.Criteria, error) {
	var criteria []models.Criteria
	err := s.DB.Select(&criteria, s.Converter(`
		SELECT id, task_id, name, criteria_percent, created_at, modified_at
		FROM criteria
		WHERE task_id = ?
		ORDER BY name
	`), taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list criteria: %w", err)
	}
	return criteria, nil
}

func (s *BaseStore) CreateCriteria(c *models.Criteria) error {
	err := s.DB.Get(&c.ID, s.Converter(`
		INSERT INTO criteria (task_id, name, criteria_percent, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`), c.TaskID, c.Name, c.CriteriaPercent, c.CreatedAt, c.ModifiedAt)
	return s.wrapWrite(err, "criteria", "name", c.Name)
}

// CreateCriteriaBatch inserts all criteria in one transaction; either the
// whole batch lands or none of it does.
func (s *BaseStore) CreateCriteriaBatch(items []*models.Criteria) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin criteria batch: %w", err)
	}
	defer tx.Rollback()

	insert := s.Converter(`
		INSERT INTO criteria (task_id, name, criteria_percent, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`)
	for _, c := range items {
		err := tx.Get(&c.ID, insert,
			c.TaskID, c.Name, c.CriteriaPercent, c.CreatedAt, c.ModifiedAt)
		if err != nil {
			return s.wrapWrite(err, "criteria", "name", c.Name)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit criteria batch: %w", err)
	}
	return nil
}

func (s *BaseStore) UpdateCriteria(c *models.Criteria) error {
	_, err := s.DB.Exec(s.Converter(`
		UPDATE criteria
		SET task_id = ?, name = ?, criteria_percent = ?, modified_at = ?
		WHERE id = ?
	`), c.TaskID, c.Name, c.CriteriaPercent, c.ModifiedAt, c.ID)
	return s.wrapWrite(err, "criteria", "name", c.Name)
}

func (s *BaseStore) DeleteCriteria(id int64) error {
	if _, err := s.DB.Exec(s.Converter(`DELETE FROM criteria WHERE id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete criteria: %w", err)
	}
	return nil
}
