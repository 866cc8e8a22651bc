package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

const submissionColumns = `
	task_id, student_id, submitted_at, main_score, additional_score,
	created_at, modified_at
`

func (s *BaseStore) GetSubmission(taskID, studentID int64) (*models.Submission, error) {
	var sub models.Submission
	found, err := s.getRow(&sub, `
		SELECT `+submissionColumns+`
		FROM submissions
		WHERE task_id = ? AND student_id = ?
	`, taskID, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	if !found {
		return nil, nil
	}
	if err := s.loadSatisfiedCriteria(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *BaseStore) ListTaskSubmissions(taskID int64) ([]models.Submission, error) {
	var subs []models.Submission
	err := s.DB.Select(&subs, s.Converter(`
		SELECT `+submissionColumns+`
		FROM submissions
		WHERE task_id = ?
		ORDER BY student_id
	`), taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	for i := range subs {
		if err := s.loadSatisfiedCriteria(&subs[i]); err != nil {
			return nil, err
		}
	}
	return subs, nil
}

func (s *BaseStore) ListCourseSubmissions(courseID int64) ([]models.Submission, error) {
	var subs []models.Submission
	err := s.DB.Select(&subs, s.Converter(`
		SELECT s.task_id, s.student_id, s.submitted_at, s.main_score,
			s.additional_score, s.created_at, s.modified_at
		FROM submissions s
		JOIN tasks t ON t.id = s.task_id
		WHERE t.course_id = ?
		ORDER BY s.student_id, s.task_id
	`), courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list course submissions: %w", err)
	}
	for i := range subs {
		if err := s.loadSatisfiedCriteria(&subs[i]); err != nil {
			return nil, err
		}
	}
	return subs, nil
}

func (s *BaseStore) loadSatisfiedCriteria(sub *models.Submission) error {
	err := s.DB.Select(&sub.SatisfiedCriteria, s.Converter(`
		SELECT criteria_id
		FROM submission_criteria
		WHERE task_id = ? AND student_id = ?
		ORDER BY criteria_id
	`), sub.TaskID, sub.StudentID)
	if err != nil {
		return fmt.Errorf("failed to load satisfied criteria: %w", err)
	}
	return nil
}

func (s *BaseStore) CreateSubmission(sub *models.Submission) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin submission create: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(s.Converter(`
		INSERT INTO submissions (
			task_id, student_id, submitted_at, main_score, additional_score,
			created_at, modified_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`), sub.TaskID, sub.StudentID, sub.SubmittedAt, sub.MainScore,
		sub.AdditionalScore, sub.CreatedAt, sub.ModifiedAt)
	if err != nil {
		return s.wrapWrite(err, "submission", "task_id/student_id",
			fmt.Sprintf("%d/%d", sub.TaskID, sub.StudentID))
	}

	if err := s.insertSatisfiedCriteria(tx, sub); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit submission: %w", err)
	}
	return nil
}

func (s *BaseStore) UpdateSubmission(sub *models.Submission) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin submission update: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(s.Converter(`
		UPDATE submissions
		SET submitted_at = ?, main_score = ?, additional_score = ?, modified_at = ?
		WHERE task_id = ? AND student_id = ?
	`), sub.SubmittedAt, sub.MainScore, sub.AdditionalScore, sub.ModifiedAt,
		sub.TaskID, sub.StudentID)
	if err != nil {
		return fmt.Errorf("failed to update submission: %w", err)
	}

	_, err = tx.Exec(s.Converter(`
		DELETE FROM submission_criteria WHERE task_id = ? AND student_id = ?
	`), sub.TaskID, sub.StudentID)
	if err != nil {
		return fmt.Errorf("failed to reset satisfied criteria: %w", err)
	}

	if err := s.insertSatisfiedCriteria(tx, sub); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit submission: %w", err)
	}
	return nil
}

func (s *BaseStore) insertSatisfiedCriteria(tx *sqlx.Tx, sub *models.Submission) error {
	insert := s.Converter(`
		INSERT INTO submission_criteria (task_id, student_id, criteria_id)
		VALUES (?, ?, ?)
	`)
	for _, id := range sub.SatisfiedCriteria {
		if _, err := tx.Exec(insert, sub.TaskID, sub.StudentID, id); err != nil {
			return fmt.Errorf("failed to record satisfied criteria %d: %w", id, err)
		}
	}
	return nil
}

func (s *BaseStore) DeleteSubmission(taskID, studentID int64) error {
	_, err := s.DB.Exec(s.Converter(`
		DELETE FROM submissions WHERE task_id = ? AND student_id = ?
	`), taskID, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}
	return nil
}
