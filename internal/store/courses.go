package store

import (
	"fmt"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

func (s *BaseStore) GetCourse(id int64) (*models.Course, error) {
	var c models.Course
	found, err := s.getRow(&c, `
		SELECT id, name, owner_id, created_at, modified_at
		FROM courses
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &c, nil
}

func (s *BaseStore) ListOwnerCourses(ownerID int64) ([]models.Course, error) {
	var courses []models.Course
	err := s.DB.Select(&courses, s.Converter(`
		SELECT id, name, owner_id, created_at, modified_at
		FROM courses
		WHERE owner_id = ?
		ORDER BY name
	`), ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

func (s *BaseStore) CreateCourse(c *models.Course) error {
	err := s.DB.Get(&c.ID, s.Converter(`
		INSERT INTO courses (name, owner_id, created_at, modified_at)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`), c.Name, c.OwnerID, c.CreatedAt, c.ModifiedAt)
	return s.wrapWrite(err, "course", "name", c.Name)
}

func (s *BaseStore) UpdateCourse(c *models.Course) error {
	_, err := s.DB.Exec(s.Converter(`
		UPDATE courses
		SET name = ?, owner_id = ?, modified_at = ?
		WHERE id = ?
	`), c.Name, c.OwnerID, c.ModifiedAt, c.ID)
	return s.wrapWrite(err, "course", "name", c.Name)
}

func (s *BaseStore) DeleteCourse(id int64) error {
	if _, err := s.DB.Exec(s.Converter(`DELETE FROM courses WHERE id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}
