package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

const taskColumns = `
	id, course_id, task_number, title, max_score, max_penalty_percent,
	announced, announcement_at, deadlines_enabled, soft_deadline_at,
	hard_deadline_at, created_at, modified_at
`

func (s *BaseStore) GetTask(id int64) (*models.Task, error) {
	var t models.Task
	found, err := s.getRow(&t, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &t, nil
}

func (s *BaseStore) GetTasksByIDs(ids []int64) ([]models.Task, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`
		SELECT `+taskColumns+`
		FROM tasks
		WHERE id IN (?)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build task query: %w", err)
	}
	var tasks []models.Task
	if err := s.DB.Select(&tasks, s.Converter(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	return tasks, nil
}

func (s *BaseStore) ListCourseTasks(courseID int64) ([]models.Task, error) {
	var tasks []models.Task
	err := s.DB.Select(&tasks, s.Converter(`
		SELECT `+taskColumns+`
		FROM tasks
		WHERE course_id = ?
		ORDER BY task_number IS NULL, task_number, id
	`), courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *BaseStore) CreateTask(t *models.Task) error {
	err := s.DB.Get(&t.ID, s.Converter(`
		INSERT INTO tasks (
			course_id, task_number, title, max_score, max_penalty_percent,
			announced, announcement_at, deadlines_enabled, soft_deadline_at,
			hard_deadline_at, created_at, modified_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`), t.CourseID, t.TaskNumber, t.Title, t.MaxScore, t.MaxPenaltyPercent,
		t.Announced, t.AnnouncementAt, t.DeadlinesEnabled, t.SoftDeadlineAt,
		t.HardDeadlineAt, t.CreatedAt, t.ModifiedAt)
	return s.wrapWrite(err, "task", "task_number", t.TaskNumber)
}

func (s *BaseStore) UpdateTask(t *models.Task) error {
	_, err := s.DB.Exec(s.Converter(`
		UPDATE tasks
		SET course_id = ?, task_number = ?, title = ?, max_score = ?,
			max_penalty_percent = ?, announced = ?, announcement_at = ?,
			deadlines_enabled = ?, soft_deadline_at = ?, hard_deadline_at = ?,
			modified_at = ?
		WHERE id = ?
	`), t.CourseID, t.TaskNumber, t.Title, t.MaxScore,
		t.MaxPenaltyPercent, t.Announced, t.AnnouncementAt,
		t.DeadlinesEnabled, t.SoftDeadlineAt, t.HardDeadlineAt,
		t.ModifiedAt, t.ID)
	return s.wrapWrite(err, "task", "task_number", t.TaskNumber)
}

func (s *BaseStore) DeleteTask(id int64) error {
	if _, err := s.DB.Exec(s.Converter(`DELETE FROM tasks WHERE id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// RenumberTasks applies a bulk renumbering atomically. Phase one nulls out
// the number of every changed task so the per-course unique index never sees
// a transient collision; phase two assigns the new numbers. Both phases run
// in one transaction.
func (s *BaseStore) RenumberTasks(courseID int64, numbers map[int64]int, modifiedAt int64) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin renumbering: %w", err)
	}
	defer tx.Rollback()

	nullOut := s.Converter(`
		UPDATE tasks SET task_number = NULL, modified_at = ?
		WHERE id = ? AND course_id = ?
	`)
	for id := range numbers {
		if _, err := tx.Exec(nullOut, modifiedAt, id, courseID); err != nil {
			return fmt.Errorf("failed to clear task number: %w", err)
		}
	}

	assign := s.Converter(`
		UPDATE tasks SET task_number = ?, modified_at = ?
		WHERE id = ? AND course_id = ?
	`)
	for id, number := range numbers {
		if _, err := tx.Exec(assign, number, modifiedAt, id, courseID); err != nil {
			return s.wrapWrite(err, "task", "task_number", number)
		}
	}

	if err := tx.Commit(); err != nil {
		return s.wrapWrite(err, "task", "task_number", nil)
	}
	return nil
}
