package app

import (
	"strconv"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/apperr"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/metrics"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/rules"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/scoring"
)

func (s *Service) GetSubmission(taskID, studentID int64) (*models.Submission, error) {
	sub, err := s.Store.GetSubmission(taskID, studentID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, apperr.NotFound("submission", taskID, studentID)
	}
	return sub, nil
}

func (s *Service) ListTaskSubmissions(taskID int64) ([]models.Submission, error) {
	if _, err := s.GetTask(taskID); err != nil {
		return nil, err
	}
	return s.Store.ListTaskSubmissions(taskID)
}

func (s *Service) CreateSubmission(in models.NewSubmission) (*models.Submission, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	task, err := s.GetTask(in.TaskID)
	if err != nil {
		return nil, err
	}
	student, err := s.Store.GetStudent(in.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperr.NotFound("student", in.StudentID)
	}

	existing, err := s.Store.GetSubmission(in.TaskID, in.StudentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("submission", "task_id/student_id",
			strconv.FormatInt(in.TaskID, 10)+"/"+strconv.FormatInt(in.StudentID, 10))
	}

	criteria, err := s.Store.ListTaskCriteria(in.TaskID)
	if err != nil {
		return nil, err
	}
	if err := checkSatisfiedCriteria(in.SatisfiedCriteria, criteria); err != nil {
		return nil, err
	}

	now := s.Clock.Now().Unix()
	sub := &models.Submission{
		TaskID:            in.TaskID,
		StudentID:         in.StudentID,
		SubmittedAt:       in.SubmittedAt,
		SatisfiedCriteria: in.SatisfiedCriteria,
		AdditionalScore:   in.AdditionalScore,
		CreatedAt:         now,
		ModifiedAt:        now,
	}
	sub.MainScore = scoring.Score(*task, *sub, criteria)

	if err := s.Store.CreateSubmission(sub); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("submission", "create").Inc()
	metrics.SubmissionScore.
		WithLabelValues(strconv.FormatInt(task.CourseID, 10)).
		Observe(sub.MainScore)
	return sub, nil
}

// UpdateSubmission replaces the submission wholesale. Unlike PatchSubmission
// a nil SatisfiedCriteria clears the set rather than keeping it.
func (s *Service) UpdateSubmission(taskID, studentID int64, in models.NewSubmission) (*models.Submission, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	sub, err := s.GetSubmission(taskID, studentID)
	if err != nil {
		return nil, err
	}
	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	if err := rules.EnsureImmutable(taskID, in.TaskID, "task_id"); err != nil {
		return nil, err
	}
	if err := rules.EnsureImmutable(studentID, in.StudentID, "student_id"); err != nil {
		return nil, err
	}

	criteria, err := s.Store.ListTaskCriteria(taskID)
	if err != nil {
		return nil, err
	}
	if err := checkSatisfiedCriteria(in.SatisfiedCriteria, criteria); err != nil {
		return nil, err
	}

	sub.SubmittedAt = in.SubmittedAt
	sub.SatisfiedCriteria = in.SatisfiedCriteria
	sub.AdditionalScore = in.AdditionalScore
	sub.MainScore = scoring.Score(*task, *sub, criteria)
	sub.ModifiedAt = s.Clock.Now().Unix()
	if err := s.Store.UpdateSubmission(sub); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("submission", "update").Inc()
	return sub, nil
}

func (s *Service) PatchSubmission(taskID, studentID int64, in models.PatchSubmission) (*models.Submission, error) {
	sub, err := s.GetSubmission(taskID, studentID)
	if err != nil {
		return nil, err
	}
	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}

	if in.SubmittedAt != nil {
		sub.SubmittedAt = *in.SubmittedAt
	}
	if in.SatisfiedCriteria != nil {
		sub.SatisfiedCriteria = in.SatisfiedCriteria
	}
	if in.AdditionalScore != nil {
		sub.AdditionalScore = *in.AdditionalScore
	}

	criteria, err := s.Store.ListTaskCriteria(taskID)
	if err != nil {
		return nil, err
	}
	if err := checkSatisfiedCriteria(sub.SatisfiedCriteria, criteria); err != nil {
		return nil, err
	}

	sub.MainScore = scoring.Score(*task, *sub, criteria)
	sub.ModifiedAt = s.Clock.Now().Unix()
	if err := s.Store.UpdateSubmission(sub); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("submission", "patch").Inc()
	return sub, nil
}

func (s *Service) DeleteSubmission(taskID, studentID int64) error {
	if _, err := s.GetSubmission(taskID, studentID); err != nil {
		return err
	}
	if err := s.Store.DeleteSubmission(taskID, studentID); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("submission", "delete").Inc()
	return nil
}

// RescoreSubmission recomputes the derived score on demand, e.g. after the
// task's deadlines or criteria changed.
func (s *Service) RescoreSubmission(taskID, studentID int64) (*models.Submission, error) {
	sub, err := s.GetSubmission(taskID, studentID)
	if err != nil {
		return nil, err
	}
	task, err := s.GetTask(taskID)
	if err != nil {
		return nil, err
	}
	criteria, err := s.Store.ListTaskCriteria(taskID)
	if err != nil {
		return nil, err
	}

	sub.MainScore = scoring.Score(*task, *sub, criteria)
	sub.ModifiedAt = s.Clock.Now().Unix()
	if err := s.Store.UpdateSubmission(sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// CourseScoreboard aggregates every submission of a course into a
// student -> task -> total score table.
func (s *Service) CourseScoreboard(courseID int64) (map[int64]map[int64]float64, error) {
	if _, err := s.GetCourse(courseID); err != nil {
		return nil, err
	}
	subs, err := s.Store.ListCourseSubmissions(courseID)
	if err != nil {
		return nil, err
	}

	scores := make(map[int64]map[int64]float64)
	for _, sub := range subs {
		if scores[sub.StudentID] == nil {
			scores[sub.StudentID] = make(map[int64]float64)
		}
		scores[sub.StudentID][sub.TaskID] = sub.TotalScore()
	}
	return scores, nil
}

// checkSatisfiedCriteria rejects references to criteria outside the
// submission's task.
func checkSatisfiedCriteria(satisfied []int64, taskCriteria []models.Criteria) error {
	known := make(map[int64]struct{}, len(taskCriteria))
	for _, c := range taskCriteria {
		known[c.ID] = struct{}{}
	}
	var missing []int64
	for _, id := range satisfied {
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return apperr.NotFound("criteria", missing...)
	}
	return nil
}
