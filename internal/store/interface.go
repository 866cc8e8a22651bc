package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/apperr"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

// JournalStore is the persistence collaborator of the mutation pipeline.
// Getters return (nil, nil) when the row is absent; translating that into
// NotFound is the pipeline's job. Writes that hit a unique index surface
// Conflict, never a raw driver error.
type JournalStore interface {
	Close() error
	ApplyMigrations(dir string) error

	GetUser(id int64) (*models.User, error)
	CreateUser(u *models.User) error

	GetStudent(id int64) (*models.Student, error)
	CreateStudent(s *models.Student) error

	GetEmployee(id int64) (*models.Employee, error)
	CreateEmployee(e *models.Employee) error

	GetCourse(id int64) (*models.Course, error)
	ListOwnerCourses(ownerID int64) ([]models.Course, error)
	CreateCourse(c *models.Course) error
	UpdateCourse(c *models.Course) error
	DeleteCourse(id int64) error

	GetTask(id int64) (*models.Task, error)
	GetTasksByIDs(ids []int64) ([]models.Task, error)
	ListCourseTasks(courseID int64) ([]models.Task, error)
	CreateTask(t *models.Task) error
	UpdateTask(t *models.Task) error
	DeleteTask(id int64) error
	// RenumberTasks commits a bulk renumbering in one transaction using a
	// two-phase write: null out every changed number first, then assign.
	RenumberTasks(courseID int64, numbers map[int64]int, modifiedAt int64) error

	GetCriteria(id int64) (*models.Criteria, error)
	ListTaskCriteria(taskID int64) ([]models.Criteria, error)
	CreateCriteria(c *models.Criteria) error
	CreateCriteriaBatch(items []*models.Criteria) error
	UpdateCriteria(c *models.Criteria) error
	DeleteCriteria(id int64) error

	GetSubmission(taskID, studentID int64) (*models.Submission, error)
	ListTaskSubmissions(taskID int64) ([]models.Submission, error)
	ListCourseSubmissions(courseID int64) ([]models.Submission, error)
	CreateSubmission(s *models.Submission) error
	UpdateSubmission(s *models.Submission) error
	DeleteSubmission(taskID, studentID int64) error

	GetAttendance(id int64) (*models.Attendance, error)
	ListStudentAttendance(studentID int64) ([]models.Attendance, error)
	ListCourseAttendance(courseID int64) ([]models.Attendance, error)
	CreateAttendance(a *models.Attendance) error
	CreateAttendanceBatch(items []*models.Attendance) error
	UpdateAttendance(a *models.Attendance) error
	DeleteAttendance(id int64) error

	GetPersonLink(id int64) (*models.PersonLink, error)
	ListPersonLinks() ([]models.PersonLink, error)
	CreatePersonLink(l *models.PersonLink) error
	UpdatePersonLink(l *models.PersonLink) error
	DeletePersonLink(id int64) error
}

// BaseStore provides common functionality for different DB implementations.
// Converter rewrites `?` placeholders for the dialect; UniqueViolation
// recognizes the dialect's unique-index error so it can be mapped to
// Conflict.
type BaseStore struct {
	DB              *sqlx.DB
	Converter       func(string) string
	UniqueViolation func(error) bool
}

func (s *BaseStore) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

// ApplyMigrations applies SQL migrations from a directory, translating
// dialect if needed.
func (s *BaseStore) ApplyMigrations(dir string, translateSQL func(string) string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, file := range files {
		if !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		content, err := os.ReadFile(fmt.Sprintf("%s/%s", dir, file.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file.Name(), err)
		}

		sql := string(content)
		if translateSQL != nil {
			sql = translateSQL(sql)
		}

		if _, err := s.DB.Exec(sql); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file.Name(), err)
		}
	}

	return nil
}

// wrapWrite turns the dialect's unique-index violation into Conflict and
// wraps everything else with context.
func (s *BaseStore) wrapWrite(err error, entity, field string, value any) error {
	if err == nil {
		return nil
	}
	if s.UniqueViolation != nil && s.UniqueViolation(err) {
		return apperr.Conflict(entity, field, value)
	}
	return fmt.Errorf("failed to write %s: %w", entity, err)
}

func (s *BaseStore) getRow(dest any, query string, args ...any) (bool, error) {
	err := s.DB.Get(dest, s.Converter(query), args...)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
