package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/apperr"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

func intp(v int) *int { return &v }

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.ApplyMigrations("../../../migrations"))
	return s
}

func seedCourse(t *testing.T, s *SQLiteStore) (ownerID, courseID, studentID int64) {
	t.Helper()

	owner := &models.User{Email: "teacher@example.edu", FullName: "Jan Kowalski", CreatedAt: 1000}
	require.NoError(t, s.CreateUser(owner))

	course := &models.Course{Name: "Databases", OwnerID: owner.ID, CreatedAt: 1000, ModifiedAt: 1000}
	require.NoError(t, s.CreateCourse(course))

	student := &models.Student{FullName: "Anna Nowak", CreatedAt: 1000}
	require.NoError(t, s.CreateStudent(student))

	return owner.ID, course.ID, student.ID
}

func TestCourseNameUniquePerOwner(t *testing.T) {
	s := newTestStore(t)
	ownerID, _, _ := seedCourse(t, s)

	dup := &models.Course{Name: "Databases", OwnerID: ownerID, CreatedAt: 1001, ModifiedAt: 1001}
	err := s.CreateCourse(dup)
	assert.True(t, apperr.IsConflict(err))

	other := &models.User{Email: "other@example.edu", CreatedAt: 1001}
	require.NoError(t, s.CreateUser(other))
	sameName := &models.Course{Name: "Databases", OwnerID: other.ID, CreatedAt: 1001, ModifiedAt: 1001}
	assert.NoError(t, s.CreateCourse(sameName))
}

func TestTaskNumberUniqueWithinCourse(t *testing.T) {
	s := newTestStore(t)
	_, courseID, _ := seedCourse(t, s)

	first := &models.Task{CourseID: courseID, TaskNumber: intp(1), Title: "lab01", CreatedAt: 1000, ModifiedAt: 1000}
	require.NoError(t, s.CreateTask(first))

	dup := &models.Task{CourseID: courseID, TaskNumber: intp(1), Title: "lab01-bis", CreatedAt: 1001, ModifiedAt: 1001}
	err := s.CreateTask(dup)
	assert.True(t, apperr.IsConflict(err))

	unnumberedA := &models.Task{CourseID: courseID, Title: "draft a", CreatedAt: 1001, ModifiedAt: 1001}
	unnumberedB := &models.Task{CourseID: courseID, Title: "draft b", CreatedAt: 1001, ModifiedAt: 1001}
	assert.NoError(t, s.CreateTask(unnumberedA))
	assert.NoError(t, s.CreateTask(unnumberedB))
}

func TestListCourseTasksOrder(t *testing.T) {
	s := newTestStore(t)
	_, courseID, _ := seedCourse(t, s)

	unnumbered := &models.Task{CourseID: courseID, Title: "draft", CreatedAt: 1000, ModifiedAt: 1000}
	require.NoError(t, s.CreateTask(unnumbered))
	second := &models.Task{CourseID: courseID, TaskNumber: intp(2), Title: "lab02", CreatedAt: 1000, ModifiedAt: 1000}
	require.NoError(t, s.CreateTask(second))
	first := &models.Task{CourseID: courseID, TaskNumber: intp(1), Title: "lab01", CreatedAt: 1000, ModifiedAt: 1000}
	require.NoError(t, s.CreateTask(first))

	tasks, err := s.ListCourseTasks(courseID)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "lab01", tasks[0].Title)
	assert.Equal(t, "lab02", tasks[1].Title)
	assert.Equal(t, "draft", tasks[2].Title)
}

func TestRenumberTasksSwap(t *testing.T) {
	s := newTestStore(t)
	_, courseID, _ := seedCourse(t, s)

	first := &models.Task{CourseID: courseID, TaskNumber: intp(1), Title: "lab01", CreatedAt: 1000, ModifiedAt: 1000}
	second := &models.Task{CourseID: courseID, TaskNumber: intp(2), Title: "lab02", CreatedAt: 1000, ModifiedAt: 1000}
	require.NoError(t, s.CreateTask(first))
	require.NoError(t, s.CreateTask(second))

	// a naive pair of sequential updates would trip the unique index here
	err := s.RenumberTasks(courseID, map[int64]int{first.ID: 2, second.ID: 1}, 2000)
	require.NoError(t, err)

	tasks, err := s.ListCourseTasks(courseID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "lab02", tasks[0].Title)
	assert.Equal(t, "lab01", tasks[1].Title)
	assert.Equal(t, int64(2000), tasks[0].ModifiedAt)
	assert.Equal(t, int64(2000), tasks[1].ModifiedAt)
}

func TestSubmissionRoundTrip(t *testing.T) {
	s := newTestStore(t)
	_, courseID, studentID := seedCourse(t, s)

	task := &models.Task{CourseID: courseID, TaskNumber: intp(1), Title: "lab01", MaxScore: 10, CreatedAt: 1000, ModifiedAt: 1000}
	require.NoError(t, s.CreateTask(task))

	tests := &models.Criteria{TaskID: task.ID, Name: "tests pass", CriteriaPercent: 60, CreatedAt: 1000, ModifiedAt: 1000}
	report := &models.Criteria{TaskID: task.ID, Name: "report", CriteriaPercent: 40, CreatedAt: 1000, ModifiedAt: 1000}
	require.NoError(t, s.CreateCriteria(tests))
	require.NoError(t, s.CreateCriteria(report))

	sub := &models.Submission{
		TaskID:            task.ID,
		StudentID:         studentID,
		SubmittedAt:       1500,
		SatisfiedCriteria: []int64{report.ID, tests.ID},
		MainScore:         10,
		CreatedAt:         1500,
		ModifiedAt:        1500,
	}
	require.NoError(t, s.CreateSubmission(sub))

	got, err := s.GetSubmission(task.ID, studentID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []int64{tests.ID, report.ID}, got.SatisfiedCriteria)
	assert.Equal(t, 10.0, got.MainScore)

	dup := &models.Submission{TaskID: task.ID, StudentID: studentID, SubmittedAt: 1600, CreatedAt: 1600, ModifiedAt: 1600}
	assert.True(t, apperr.IsConflict(s.CreateSubmission(dup)))

	got.SatisfiedCriteria = []int64{report.ID}
	got.MainScore = 4
	got.ModifiedAt = 1700
	require.NoError(t, s.UpdateSubmission(got))

	got, err = s.GetSubmission(task.ID, studentID)
	require.NoError(t, err)
	assert.Equal(t, []int64{report.ID}, got.SatisfiedCriteria)
	assert.Equal(t, 4.0, got.MainScore)

	require.NoError(t, s.DeleteSubmission(task.ID, studentID))
	got, err = s.GetSubmission(task.ID, studentID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAttendanceSlotUnique(t *testing.T) {
	s := newTestStore(t)
	_, courseID, studentID := seedCourse(t, s)

	record := &models.Attendance{
		StudentID:      studentID,
		CourseID:       courseID,
		AttendedDate:   "2024-09-02",
		AttendedClass:  2,
		AttendanceType: models.AttendancePresent,
		CreatedAt:      1000,
		ModifiedAt:     1000,
	}
	require.NoError(t, s.CreateAttendance(record))

	dup := &models.Attendance{
		StudentID:      studentID,
		CourseID:       courseID,
		AttendedDate:   "2024-09-02",
		AttendedClass:  2,
		AttendanceType: models.AttendanceLate,
		CreatedAt:      1001,
		ModifiedAt:     1001,
	}
	assert.True(t, apperr.IsConflict(s.CreateAttendance(dup)))

	otherClass := &models.Attendance{
		StudentID:      studentID,
		CourseID:       courseID,
		AttendedDate:   "2024-09-02",
		AttendedClass:  3,
		AttendanceType: models.AttendancePresent,
		CreatedAt:      1001,
		ModifiedAt:     1001,
	}
	assert.NoError(t, s.CreateAttendance(otherClass))
}

func TestAttendanceBatchIsAtomic(t *testing.T) {
	s := newTestStore(t)
	_, courseID, studentID := seedCourse(t, s)

	other := &models.Student{FullName: "Piotr Zielinski", CreatedAt: 1000}
	require.NoError(t, s.CreateStudent(other))

	taken := &models.Attendance{
		StudentID: studentID, CourseID: courseID,
		AttendedDate: "2024-09-02", AttendedClass: 2,
		AttendanceType: models.AttendancePresent,
		CreatedAt:      1000, ModifiedAt: 1000,
	}
	require.NoError(t, s.CreateAttendance(taken))

	batch := []*models.Attendance{
		{StudentID: other.ID, CourseID: courseID, AttendedDate: "2024-09-02", AttendedClass: 2,
			AttendanceType: models.AttendancePresent, CreatedAt: 1001, ModifiedAt: 1001},
		{StudentID: studentID, CourseID: courseID, AttendedDate: "2024-09-02", AttendedClass: 2,
			AttendanceType: models.AttendanceLate, CreatedAt: 1001, ModifiedAt: 1001},
	}
	assert.True(t, apperr.IsConflict(s.CreateAttendanceBatch(batch)))

	records, err := s.ListStudentAttendance(other.ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCriteriaBatchIsAtomic(t *testing.T) {
	s := newTestStore(t)
	_, courseID, _ := seedCourse(t, s)

	task := &models.Task{CourseID: courseID, TaskNumber: intp(1), Title: "lab01", MaxScore: 10, CreatedAt: 1000, ModifiedAt: 1000}
	require.NoError(t, s.CreateTask(task))

	taken := &models.Criteria{TaskID: task.ID, Name: "tests pass", CriteriaPercent: 60, CreatedAt: 1000, ModifiedAt: 1000}
	require.NoError(t, s.CreateCriteria(taken))

	batch := []*models.Criteria{
		{TaskID: task.ID, Name: "report", CriteriaPercent: 40, CreatedAt: 1001, ModifiedAt: 1001},
		{TaskID: task.ID, Name: "tests pass", CriteriaPercent: 20, CreatedAt: 1001, ModifiedAt: 1001},
	}
	assert.True(t, apperr.IsConflict(s.CreateCriteriaBatch(batch)))

	// the first item must not survive its sibling's failure
	records, err := s.ListTaskCriteria(task.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "tests pass", records[0].Name)
}

func TestPersonLinkTargetMapping(t *testing.T) {
	s := newTestStore(t)
	_, _, studentID := seedCourse(t, s)

	teacher := &models.User{Email: "maria@example.edu", FullName: "Maria Wisniewska", CreatedAt: 1000}
	headman := &models.User{Email: "anna@example.edu", FullName: "Anna Nowak", CreatedAt: 1000}
	require.NoError(t, s.CreateUser(teacher))
	require.NoError(t, s.CreateUser(headman))

	employee := &models.Employee{FullName: "Maria Wisniewska", Department: "CS", CreatedAt: 1000}
	require.NoError(t, s.CreateEmployee(employee))

	teacherLink := &models.PersonLink{
		UserID: teacher.ID, Role: models.RoleTeacher,
		Target:    models.EmployeeTarget(employee.ID),
		CreatedAt: 1000, ModifiedAt: 1000,
	}
	require.NoError(t, s.CreatePersonLink(teacherLink))

	headmanLink := &models.PersonLink{
		UserID: headman.ID, Role: models.RoleHeadman,
		Target:    models.StudentTarget(studentID),
		CreatedAt: 1000, ModifiedAt: 1000,
	}
	require.NoError(t, s.CreatePersonLink(headmanLink))

	got, err := s.GetPersonLink(teacherLink.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.RoleTeacher, got.Role)
	assert.Equal(t, models.EmployeeTarget(employee.ID), got.Target)

	links, err := s.ListPersonLinks()
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, models.StudentTarget(studentID), links[1].Target)

	t.Run("one link per user", func(t *testing.T) {
		second := &models.PersonLink{
			UserID: teacher.ID, Role: models.RoleAdmin,
			Target:    models.NoTarget(),
			CreatedAt: 1001, ModifiedAt: 1001,
		}
		assert.True(t, apperr.IsConflict(s.CreatePersonLink(second)))
	})

	t.Run("one link per employee", func(t *testing.T) {
		third := &models.User{Email: "impostor@example.edu", CreatedAt: 1001}
		require.NoError(t, s.CreateUser(third))
		claim := &models.PersonLink{
			UserID: third.ID, Role: models.RoleTeacher,
			Target:    models.EmployeeTarget(employee.ID),
			CreatedAt: 1001, ModifiedAt: 1001,
		}
		assert.True(t, apperr.IsConflict(s.CreatePersonLink(claim)))
	})
}

func TestGettersReturnNilForMissingRows(t *testing.T) {
	s := newTestStore(t)

	course, err := s.GetCourse(42)
	require.NoError(t, err)
	assert.Nil(t, course)

	task, err := s.GetTask(42)
	require.NoError(t, err)
	assert.Nil(t, task)

	link, err := s.GetPersonLink(42)
	require.NoError(t, err)
	assert.Nil(t, link)
}
