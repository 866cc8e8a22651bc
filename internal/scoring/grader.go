package scoring

import (
	"math"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

const minuteSeconds = 60

// Score computes the derived grade of a submission from deadline timing and
// satisfied-criteria weighting. Pure: same inputs, same result, no I/O.
func Score(task models.Task, sub models.Submission, criteria []models.Criteria) float64 {
	if task.MaxScore == 0 {
		return 0
	}

	p := deadlineFactor(task, sub.SubmittedAt)
	c := criteriaFactor(sub.SatisfiedCriteria, criteria)

	return round2(p * c * float64(task.MaxScore))
}

// deadlineFactor is the lateness multiplier p in [1-mpd, 1.0]. Timestamps
// are diffed in minutes from a stable epoch one day before the earliest of
// the three, keeping the ratios well away from precision trouble.
func deadlineFactor(task models.Task, submittedAt int64) float64 {
	if !task.DeadlinesEnabled || task.SoftDeadlineAt == nil || task.HardDeadlineAt == nil {
		return 1.0
	}

	soft := *task.SoftDeadlineAt
	hard := *task.HardDeadlineAt
	zero := min(soft, hard, submittedAt) - 24*60*minuteSeconds

	softMin := float64((soft - zero) / minuteSeconds)
	hardMin := float64((hard - zero) / minuteSeconds)
	subMin := float64((submittedAt - zero) / minuteSeconds)

	mpd := float64(task.MaxPenaltyPercent) / 100

	if soft == hard {
		// single cutoff, no decay window
		if submittedAt <= soft {
			return 1.0
		}
		return mpd
	}

	p := 1 - mpd*(subMin-softMin)/(hardMin-softMin)
	return clamp(p, 1-mpd, 1.0)
}

// criteriaFactor is the fraction of weighted criteria satisfied. A task with
// no weighted criteria grades as fully satisfied.
func criteriaFactor(satisfied []int64, criteria []models.Criteria) float64 {
	set := make(map[int64]struct{}, len(satisfied))
	for _, id := range satisfied {
		set[id] = struct{}{}
	}

	var allScore, satisfiedScore int
	for _, c := range criteria {
		allScore += c.CriteriaPercent
		if _, ok := set[c.ID]; ok {
			satisfiedScore += c.CriteriaPercent
		}
	}
	if allScore == 0 {
		return 1.0
	}
	return float64(satisfiedScore) / float64(allScore)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// round2 rounds half-up at two decimal places.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
