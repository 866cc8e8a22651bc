package store

import (
	"fmt"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

const attendanceColumns = `
	id, student_id, course_id, attended_date, attended_class,
	attendance_type, created_at, modified_at
`

func (s *BaseStore) GetAttendance(id int64) (*models.Attendance, error) {
	var a models.Attendance
	found, err := s.getRow(&a, `
		SELECT `+attendanceColumns+`
		FROM attendance
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &a, nil
}

func (s *BaseStore) ListStudentAttendance(studentID int64) ([]models.Attendance, error) {
	var records []models.Attendance
	err := s.DB.Select(&records, s.Converter(`
		SELECT `+attendanceColumns+`
		FROM attendance
		WHERE student_id = ?
		ORDER BY attended_date, attended_class
	`), studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list student attendance: %w", err)
	}
	return records, nil
}

func (s *BaseStore) ListCourseAttendance(courseID int64) ([]models.Attendance, error) {
	var records []models.Attendance
	err := s.DB.Select(&records, s.Converter(`
		SELECT `+attendanceColumns+`
		FROM attendance
		WHERE course_id = ?
		ORDER BY attended_date, attended_class, student_id
	`), courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list course attendance: %w", err)
	}
	return records, nil
}

func (s *BaseStore) CreateAttendance(a *models.Attendance) error {
	err := s.DB.Get(&a.ID, s.Converter(`
		INSERT INTO attendance (
			student_id, course_id, attended_date, attended_class,
			attendance_type, created_at, modified_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`), a.StudentID, a.CourseID, a.AttendedDate, a.AttendedClass,
		a.AttendanceType, a.CreatedAt, a.ModifiedAt)
	return s.wrapWrite(err, "attendance", "slot", a.SlotKey())
}

// CreateAttendanceBatch inserts all records in one transaction; either the
// whole batch lands or none of it does.
func (s *BaseStore) CreateAttendanceBatch(items []*models.Attendance) error {
	tx, err := s.DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin attendance batch: %w", err)
	}
	defer tx.Rollback()

	insert := s.Converter(`
		INSERT INTO attendance (
			student_id, course_id, attended_date, attended_class,
			attendance_type, created_at, modified_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`)
	for _, a := range items {
		err := tx.Get(&a.ID, insert,
			a.StudentID, a.CourseID, a.AttendedDate, a.AttendedClass,
			a.AttendanceType, a.CreatedAt, a.ModifiedAt)
		if err != nil {
			return s.wrapWrite(err, "attendance", "slot", a.SlotKey())
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit attendance batch: %w", err)
	}
	return nil
}

func (s *BaseStore) UpdateAttendance(a *models.Attendance) error {
	_, err := s.DB.Exec(s.Converter(`
		UPDATE attendance
		SET attendance_type = ?, modified_at = ?
		WHERE id = ?
	`), a.AttendanceType, a.ModifiedAt, a.ID)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	return nil
}

func (s *BaseStore) DeleteAttendance(id int64) error {
	if _, err := s.DB.Exec(s.Converter(`DELETE FROM attendance WHERE id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}
