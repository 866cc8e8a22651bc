package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

func i64p(v int64) *int64 { return &v }

func TestScore_DeadlineWindow(t *testing.T) {
	base := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC).Unix()

	task := models.Task{
		ID:                1,
		CourseID:          1,
		Title:             "lab01",
		MaxScore:          15,
		MaxPenaltyPercent: 50,
		DeadlinesEnabled:  true,
		SoftDeadlineAt:    i64p(base + 30*60),
		HardDeadlineAt:    i64p(base + 60*60),
	}
	criteria := []models.Criteria{
		{ID: 10, TaskID: 1, Name: "tests pass", CriteriaPercent: 20},
		{ID: 11, TaskID: 1, Name: "report", CriteriaPercent: 30},
	}

	testCases := []struct {
		name      string
		submitted int64
		satisfied []int64
		expected  float64
	}{
		{
			name:      "Midway into decay window with partial criteria",
			submitted: base + 45*60,
			satisfied: []int64{10},
			expected:  4.5,
		},
		{
			name:      "Past hard deadline saturates at max penalty",
			submitted: base + 120*60,
			satisfied: []int64{10, 11},
			expected:  7.5,
		},
		{
			name:      "On time with all criteria gives full score",
			submitted: base + 10*60,
			satisfied: []int64{10, 11},
			expected:  15,
		},
		{
			name:      "Submitting long before soft deadline never exceeds full score",
			submitted: base - 48*3600,
			satisfied: []int64{10, 11},
			expected:  15,
		},
		{
			name:      "Satisfying an unknown criterion id counts for nothing",
			submitted: base + 10*60,
			satisfied: []int64{999},
			expected:  0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sub := models.Submission{
				TaskID:            task.ID,
				StudentID:         1,
				SubmittedAt:       tc.submitted,
				SatisfiedCriteria: tc.satisfied,
			}
			assert.InDelta(t, tc.expected, Score(task, sub, criteria), 1e-9)
		})
	}
}

func TestScore_EdgeCases(t *testing.T) {
	base := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC).Unix()

	t.Run("zero max score is always zero", func(t *testing.T) {
		task := models.Task{MaxScore: 0, DeadlinesEnabled: true, SoftDeadlineAt: i64p(base), HardDeadlineAt: i64p(base)}
		sub := models.Submission{SubmittedAt: base + 3600}
		assert.Equal(t, 0.0, Score(task, sub, nil))
	})

	t.Run("disabled deadlines skip the penalty entirely", func(t *testing.T) {
		task := models.Task{MaxScore: 10, MaxPenaltyPercent: 50, DeadlinesEnabled: false}
		sub := models.Submission{SubmittedAt: base + 100*24*3600}
		assert.Equal(t, 10.0, Score(task, sub, nil))
	})

	t.Run("enabled deadlines with nil timestamps skip the penalty", func(t *testing.T) {
		task := models.Task{MaxScore: 10, MaxPenaltyPercent: 50, DeadlinesEnabled: true}
		sub := models.Submission{SubmittedAt: base}
		assert.Equal(t, 10.0, Score(task, sub, nil))
	})

	t.Run("no criteria grades as fully satisfied", func(t *testing.T) {
		task := models.Task{MaxScore: 10}
		sub := models.Submission{SubmittedAt: base}
		assert.Equal(t, 10.0, Score(task, sub, nil))
	})

	t.Run("all-zero criteria weights grade as fully satisfied", func(t *testing.T) {
		task := models.Task{MaxScore: 10}
		criteria := []models.Criteria{
			{ID: 1, CriteriaPercent: 0},
			{ID: 2, CriteriaPercent: 0},
		}
		sub := models.Submission{SubmittedAt: base}
		assert.Equal(t, 10.0, Score(task, sub, criteria))
	})

	t.Run("coinciding deadlines are a single cutoff", func(t *testing.T) {
		task := models.Task{
			MaxScore:          10,
			MaxPenaltyPercent: 30,
			DeadlinesEnabled:  true,
			SoftDeadlineAt:    i64p(base),
			HardDeadlineAt:    i64p(base),
		}
		onTime := models.Submission{SubmittedAt: base}
		late := models.Submission{SubmittedAt: base + 1}
		assert.Equal(t, 10.0, Score(task, onTime, nil))
		assert.Equal(t, 3.0, Score(task, late, nil))
	})

	t.Run("result rounds half-up to two decimals", func(t *testing.T) {
		task := models.Task{MaxScore: 10}
		criteria := []models.Criteria{
			{ID: 1, CriteriaPercent: 1},
			{ID: 2, CriteriaPercent: 1},
			{ID: 3, CriteriaPercent: 1},
		}
		sub := models.Submission{SatisfiedCriteria: []int64{1}}
		assert.Equal(t, 3.33, Score(task, sub, criteria))
	})
}

func TestScore_Monotonicity(t *testing.T) {
	base := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC).Unix()

	task := models.Task{
		MaxScore:          20,
		MaxPenaltyPercent: 40,
		DeadlinesEnabled:  true,
		SoftDeadlineAt:    i64p(base),
		HardDeadlineAt:    i64p(base + 7*24*3600),
	}

	prev := Score(task, models.Submission{SubmittedAt: base - 3600}, nil)
	for offset := int64(0); offset <= 8*24*3600; offset += 6 * 3600 {
		cur := Score(task, models.Submission{SubmittedAt: base + offset}, nil)
		assert.LessOrEqual(t, cur, prev, "later submission scored higher at offset %d", offset)
		assert.GreaterOrEqual(t, cur, 12.0)
		prev = cur
	}
}

func TestScore_Idempotent(t *testing.T) {
	base := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC).Unix()
	task := models.Task{
		MaxScore:          15,
		MaxPenaltyPercent: 50,
		DeadlinesEnabled:  true,
		SoftDeadlineAt:    i64p(base + 30*60),
		HardDeadlineAt:    i64p(base + 60*60),
	}
	criteria := []models.Criteria{{ID: 10, CriteriaPercent: 20}, {ID: 11, CriteriaPercent: 30}}
	sub := models.Submission{SubmittedAt: base + 45*60, SatisfiedCriteria: []int64{10}}

	first := Score(task, sub, criteria)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Score(task, sub, criteria))
	}
}
