package app

import (
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/apperr"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/metrics"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/ordering"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/rules"
)

func (s *Service) GetTask(id int64) (*models.Task, error) {
	task, err := s.Store.GetTask(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperr.NotFound("task", id)
	}
	return task, nil
}

// ListCourseTasks returns the course's tasks in display order: numbered
// first, unnumbered trailing.
func (s *Service) ListCourseTasks(courseID int64) ([]models.Task, error) {
	if _, err := s.GetCourse(courseID); err != nil {
		return nil, err
	}
	tasks, err := s.Store.ListCourseTasks(courseID)
	if err != nil {
		return nil, err
	}
	ordering.SortTasks(tasks)
	return tasks, nil
}

func (s *Service) CreateTask(in models.NewTask) (*models.Task, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.GetCourse(in.CourseID); err != nil {
		return nil, err
	}
	if err := rules.EnsurePaired("soft_deadline_at", "hard_deadline_at",
		in.SoftDeadlineAt != nil, in.HardDeadlineAt != nil); err != nil {
		return nil, err
	}

	now := s.Clock.Now().Unix()
	task := &models.Task{
		CourseID:          in.CourseID,
		TaskNumber:        in.TaskNumber,
		Title:             in.Title,
		MaxScore:          in.MaxScore,
		MaxPenaltyPercent: in.MaxPenaltyPercent,
		Announced:         in.Announced,
		AnnouncementAt:    in.AnnouncementAt,
		DeadlinesEnabled:  in.DeadlinesEnabled,
		SoftDeadlineAt:    in.SoftDeadlineAt,
		HardDeadlineAt:    in.HardDeadlineAt,
		CreatedAt:         now,
		ModifiedAt:        now,
	}
	if err := s.checkTaskNumber(in.CourseID, *task); err != nil {
		return nil, err
	}

	if err := s.Store.CreateTask(task); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("task", "create").Inc()
	return task, nil
}

func (s *Service) UpdateTask(id int64, in models.NewTask) (*models.Task, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	task, err := s.GetTask(id)
	if err != nil {
		return nil, err
	}
	if err := rules.EnsureImmutable(task.CourseID, in.CourseID, "course_id"); err != nil {
		return nil, err
	}
	if err := rules.EnsurePaired("soft_deadline_at", "hard_deadline_at",
		in.SoftDeadlineAt != nil, in.HardDeadlineAt != nil); err != nil {
		return nil, err
	}

	task.TaskNumber = in.TaskNumber
	task.Title = in.Title
	task.MaxScore = in.MaxScore
	task.MaxPenaltyPercent = in.MaxPenaltyPercent
	task.Announced = in.Announced
	task.AnnouncementAt = in.AnnouncementAt
	task.DeadlinesEnabled = in.DeadlinesEnabled
	task.SoftDeadlineAt = in.SoftDeadlineAt
	task.HardDeadlineAt = in.HardDeadlineAt
	task.ModifiedAt = s.Clock.Now().Unix()

	if err := s.checkTaskNumber(task.CourseID, *task); err != nil {
		return nil, err
	}
	if err := s.Store.UpdateTask(task); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("task", "update").Inc()
	return task, nil
}

func (s *Service) PatchTask(id int64, in models.PatchTask) (*models.Task, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	task, err := s.GetTask(id)
	if err != nil {
		return nil, err
	}
	if err := rules.EnsureImmutablePatch(task.CourseID, in.CourseID, "course_id"); err != nil {
		return nil, err
	}

	if in.TaskNumber != nil {
		task.TaskNumber = in.TaskNumber
	}
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.MaxScore != nil {
		task.MaxScore = *in.MaxScore
	}
	if in.MaxPenaltyPercent != nil {
		task.MaxPenaltyPercent = *in.MaxPenaltyPercent
	}
	if in.Announced != nil {
		task.Announced = *in.Announced
	}
	if in.AnnouncementAt != nil {
		task.AnnouncementAt = in.AnnouncementAt
	}
	if in.DeadlinesEnabled != nil {
		task.DeadlinesEnabled = *in.DeadlinesEnabled
	}
	if in.SoftDeadlineAt != nil {
		task.SoftDeadlineAt = in.SoftDeadlineAt
	}
	if in.HardDeadlineAt != nil {
		task.HardDeadlineAt = in.HardDeadlineAt
	}
	if err := rules.EnsurePaired("soft_deadline_at", "hard_deadline_at",
		task.SoftDeadlineAt != nil, task.HardDeadlineAt != nil); err != nil {
		return nil, err
	}

	task.ModifiedAt = s.Clock.Now().Unix()
	if err := s.checkTaskNumber(task.CourseID, *task); err != nil {
		return nil, err
	}
	if err := s.Store.UpdateTask(task); err != nil {
		return nil, err
	}
	metrics.MutationsTotal.WithLabelValues("task", "patch").Inc()
	return task, nil
}

func (s *Service) DeleteTask(id int64) error {
	if _, err := s.GetTask(id); err != nil {
		return err
	}
	if err := s.Store.DeleteTask(id); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("task", "delete").Inc()
	return nil
}

// ReorderTasks renumbers tasks of one course in bulk. Input is validated
// before any storage access; the commit is the store's two-phase write.
func (s *Service) ReorderTasks(courseID int64, items []ordering.ReorderItem) error {
	if err := ordering.ValidateRequest(items); err != nil {
		return err
	}
	if _, err := s.GetCourse(courseID); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.TaskID
	}
	tasks, err := s.Store.GetTasksByIDs(ids)
	if err != nil {
		return err
	}
	if len(tasks) != len(ids) {
		found := make(map[int64]struct{}, len(tasks))
		for _, t := range tasks {
			found[t.ID] = struct{}{}
		}
		var missing []int64
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				missing = append(missing, id)
			}
		}
		return apperr.NotFound("task", missing...)
	}

	parent, err := rules.EnsureSingleParent("course_id", tasks,
		func(t models.Task) int64 { return t.CourseID })
	if err != nil {
		return err
	}
	if parent != courseID {
		return &apperr.VariousParentsError{Field: "course_id", Got: []int64{courseID, parent}}
	}

	courseTasks, err := s.Store.ListCourseTasks(courseID)
	if err != nil {
		return err
	}
	numbers := make(map[int64]int, len(items))
	changed := make([]models.Task, len(items))
	byID := make(map[int64]models.Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}
	for i, item := range items {
		t := byID[item.TaskID]
		number := item.Number
		t.TaskNumber = &number
		changed[i] = t
		numbers[item.TaskID] = number
	}
	if err := ordering.EnsureNoConflicts(courseTasks, changed...); err != nil {
		return err
	}

	if err := s.Store.RenumberTasks(courseID, numbers, s.Clock.Now().Unix()); err != nil {
		return err
	}
	metrics.MutationsTotal.WithLabelValues("task", "reorder").Inc()
	return nil
}

// checkTaskNumber overlays the pending change onto the course numbering and
// rejects collisions; same algorithm the bulk reorder uses, for one task.
func (s *Service) checkTaskNumber(courseID int64, changed models.Task) error {
	if changed.TaskNumber == nil {
		return nil
	}
	courseTasks, err := s.Store.ListCourseTasks(courseID)
	if err != nil {
		return err
	}
	return ordering.EnsureNoConflicts(courseTasks, changed)
}
