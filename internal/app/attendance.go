package app

import (
	"strconv"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/apperr"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/metrics"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/rules"
)

func (s *Service) GetAttendance(id int64) (*models.Attendance, error) {
	record, err := s.Store.GetAttendance(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperr.NotFound("attendance", id)
	}
	return record, nil
}

func (s *Service) ListCourseAttendance(courseID int64) ([]models.Attendance, error) {
	if _, err := s.GetCourse(courseID); err != nil {
		return nil, err
	}
	return s.Store.ListCourseAttendance(courseID)
}

func (s *Service) CreateAttendance(in models.NewAttendance) (*models.Attendance, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.resolveAttendanceRefs(in.StudentID, in.CourseID); err != nil {
		return nil, err
	}
	if err := s.checkAttendanceSlot(in.StudentID, in.SlotKey(), 0); err != nil {
		return nil, err
	}

	now := s.Clock.Now().Unix()
	record := &models.Attendance{
		StudentID:      in.StudentID,
		CourseID:       in.CourseID,
		AttendedDate:   in.AttendedDate,
		AttendedClass:  in.AttendedClass,
		AttendanceType: in.AttendanceType,
		CreatedAt:      now,
		ModifiedAt:     now,
	}
	if err := s.Store.CreateAttendance(record); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("attendance", "create").Inc()
	return record, nil
}

// BatchCreateAttendance marks one class session for many students: the batch
// must name exactly one course, resolved once and propagated to every item.
func (s *Service) BatchCreateAttendance(items []models.NewAttendance) ([]models.Attendance, error) {
	if len(items) == 0 {
		return nil, nil
	}
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return nil, err
		}
	}
	courseID, err := rules.EnsureSingleParent("course_id", items,
		func(a models.NewAttendance) int64 { return a.CourseID })
	if err != nil {
		return nil, err
	}
	if _, err := s.GetCourse(courseID); err != nil {
		return nil, err
	}

	now := s.Clock.Now().Unix()
	records := make([]*models.Attendance, len(items))
	seen := make(map[string]struct{}, len(items))
	for i, in := range items {
		student, err := s.Store.GetStudent(in.StudentID)
		if err != nil {
			return nil, err
		}
		if student == nil {
			return nil, apperr.NotFound("student", in.StudentID)
		}

		slot := in.SlotKey()
		perStudent := slot + "@" + strconv.FormatInt(in.StudentID, 10)
		if _, dup := seen[perStudent]; dup {
			return nil, apperr.Conflict("attendance", "slot", slot)
		}
		seen[perStudent] = struct{}{}

		if err := s.checkAttendanceSlot(in.StudentID, slot, 0); err != nil {
			return nil, err
		}
		records[i] = &models.Attendance{
			StudentID:      in.StudentID,
			CourseID:       courseID,
			AttendedDate:   in.AttendedDate,
			AttendedClass:  in.AttendedClass,
			AttendanceType: in.AttendanceType,
			CreatedAt:      now,
			ModifiedAt:     now,
		}
	}

	if err := s.Store.CreateAttendanceBatch(records); err != nil {
		return nil, err
	}
	created := make([]models.Attendance, len(records))
	for i, r := range records {
		created[i] = *r
	}
	metrics.MutationsTotal.WithLabelValues("attendance", "batch_create").Inc()
	return created, nil
}

// UpdateAttendance replaces the record; student, course, date and class are
// immutable, so effectively only the type may differ.
func (s *Service) UpdateAttendance(id int64, in models.NewAttendance) (*models.Attendance, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	record, err := s.GetAttendance(id)
	if err != nil {
		return nil, err
	}
	if err := rules.EnsureImmutable(record.StudentID, in.StudentID, "student_id"); err != nil {
		return nil, err
	}
	if err := rules.EnsureImmutable(record.CourseID, in.CourseID, "course_id"); err != nil {
		return nil, err
	}
	if err := rules.EnsureImmutable(record.AttendedDate, in.AttendedDate, "attended_date"); err != nil {
		return nil, err
	}
	if err := rules.EnsureImmutable(record.AttendedClass, in.AttendedClass, "attended_class"); err != nil {
		return nil, err
	}

	record.AttendanceType = in.AttendanceType
	record.ModifiedAt = s.Clock.Now().Unix()
	if err := s.Store.UpdateAttendance(record); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("attendance", "update").Inc()
	return record, nil
}

func (s *Service) PatchAttendance(id int64, in models.PatchAttendance) (*models.Attendance, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	record, err := s.GetAttendance(id)
	if err != nil {
		return nil, err
	}
	if err := rules.EnsureImmutablePatch(record.StudentID, in.StudentID, "student_id"); err != nil {
		return nil, err
	}
	if err := rules.EnsureImmutablePatch(record.CourseID, in.CourseID, "course_id"); err != nil {
		return nil, err
	}
	if err := rules.EnsureImmutablePatch(record.AttendedDate, in.AttendedDate, "attended_date"); err != nil {
		return nil, err
	}
	if err := rules.EnsureImmutablePatch(record.AttendedClass, in.AttendedClass, "attended_class"); err != nil {
		return nil, err
	}

	if in.AttendanceType != nil {
		record.AttendanceType = *in.AttendanceType
	}
	record.ModifiedAt = s.Clock.Now().Unix()
	if err := s.Store.UpdateAttendance(record); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("attendance", "patch").Inc()
	return record, nil
}

func (s *Service) DeleteAttendance(id int64) error {
	if _, err := s.GetAttendance(id); err != nil {
		return err
	}
	if err := s.Store.DeleteAttendance(id); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("attendance", "delete").Inc()
	return nil
}

func (s *Service) resolveAttendanceRefs(studentID, courseID int64) error {
	student, err := s.Store.GetStudent(studentID)
	if err != nil {
		return err
	}
	if student == nil {
		return apperr.NotFound("student", studentID)
	}
	if _, err := s.GetCourse(courseID); err != nil {
		return err
	}
	return nil
}

func (s *Service) checkAttendanceSlot(studentID int64, slot string, excludeID int64) error {
	history, err := s.Store.ListStudentAttendance(studentID)
	if err != nil {
		return err
	}
	slots := make(map[int64]string, len(history))
	for _, a := range history {
		slots[a.ID] = a.SlotKey()
	}
	return rules.EnsureUnique("attendance", "slot", slot, slots, excludeID)
}
