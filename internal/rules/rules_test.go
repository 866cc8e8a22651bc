package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/apperr"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

func TestEnsureUnique(t *testing.T) {
	others := map[int64]string{
		1: "Databases",
		2: "Algorithms",
	}

	t.Run("fresh value passes", func(t *testing.T) {
		assert.NoError(t, EnsureUnique("course", "name", "Compilers", others, 0))
	})

	t.Run("taken value conflicts", func(t *testing.T) {
		err := EnsureUnique("course", "name", "Databases", others, 0)
		assert.True(t, apperr.IsConflict(err))
	})

	t.Run("entity does not collide with itself", func(t *testing.T) {
		assert.NoError(t, EnsureUnique("course", "name", "Databases", others, 1))
	})

	t.Run("same value on a different entity still conflicts", func(t *testing.T) {
		err := EnsureUnique("course", "name", "Databases", others, 2)
		assert.True(t, apperr.IsConflict(err))
	})
}

func TestEnsureImmutable(t *testing.T) {
	t.Run("unchanged passes", func(t *testing.T) {
		assert.NoError(t, EnsureImmutable(int64(7), int64(7), "course_id"))
	})

	t.Run("changed is a transfer violation", func(t *testing.T) {
		err := EnsureImmutable(int64(7), int64(8), "course_id")
		assert.True(t, apperr.IsTransfer(err))
	})

	t.Run("patch with nil field passes", func(t *testing.T) {
		assert.NoError(t, EnsureImmutablePatch(int64(7), nil, "course_id"))
	})

	t.Run("patch restating the value passes", func(t *testing.T) {
		same := int64(7)
		assert.NoError(t, EnsureImmutablePatch(int64(7), &same, "course_id"))
	})

	t.Run("patch moving the value is a transfer violation", func(t *testing.T) {
		other := int64(8)
		err := EnsureImmutablePatch(int64(7), &other, "course_id")
		assert.True(t, apperr.IsTransfer(err))
	})
}

func TestEnsureSingleParent(t *testing.T) {
	type item struct{ courseID int64 }
	parentOf := func(i item) int64 { return i.courseID }

	t.Run("empty batch passes", func(t *testing.T) {
		parent, err := EnsureSingleParent("course_id", nil, parentOf)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), parent)
	})

	t.Run("uniform batch returns the parent", func(t *testing.T) {
		parent, err := EnsureSingleParent("course_id", []item{{3}, {3}, {3}}, parentOf)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), parent)
	})

	t.Run("mixed parents fail", func(t *testing.T) {
		_, err := EnsureSingleParent("course_id", []item{{3}, {4}}, parentOf)
		assert.True(t, apperr.IsVariousParents(err))
	})
}

func TestEnsurePaired(t *testing.T) {
	assert.NoError(t, EnsurePaired("soft_deadline_at", "hard_deadline_at", true, true))
	assert.NoError(t, EnsurePaired("soft_deadline_at", "hard_deadline_at", false, false))
	assert.Error(t, EnsurePaired("soft_deadline_at", "hard_deadline_at", true, false))
	assert.Error(t, EnsurePaired("soft_deadline_at", "hard_deadline_at", false, true))
}

func TestEnsureLinkTarget(t *testing.T) {
	testCases := []struct {
		name   string
		role   models.UserRole
		target models.LinkTarget
		ok     bool
	}{
		{"admin without target", models.RoleAdmin, models.NoTarget(), true},
		{"admin with student target", models.RoleAdmin, models.StudentTarget(5), false},
		{"teacher with employee target", models.RoleTeacher, models.EmployeeTarget(2), true},
		{"teacher without target", models.RoleTeacher, models.NoTarget(), false},
		{"teacher with student target", models.RoleTeacher, models.StudentTarget(5), false},
		{"headman with student target", models.RoleHeadman, models.StudentTarget(5), true},
		{"headman with employee target", models.RoleHeadman, models.EmployeeTarget(2), false},
		{"unknown role", models.UserRole("JANITOR"), models.NoTarget(), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := EnsureLinkTarget(tc.role, tc.target)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, apperr.IsBadInput(err))
			}
		})
	}
}

func TestEnsureUniqueLinkTarget(t *testing.T) {
	links := []models.PersonLink{
		{ID: 1, UserID: 10, Role: models.RoleTeacher, Target: models.EmployeeTarget(2)},
		{ID: 2, UserID: 11, Role: models.RoleHeadman, Target: models.StudentTarget(5)},
	}

	t.Run("unclaimed target passes", func(t *testing.T) {
		assert.NoError(t, EnsureUniqueLinkTarget(models.EmployeeTarget(3), links, 0))
	})

	t.Run("claimed target conflicts", func(t *testing.T) {
		err := EnsureUniqueLinkTarget(models.StudentTarget(5), links, 0)
		assert.True(t, apperr.IsConflict(err))
	})

	t.Run("link keeps its own target", func(t *testing.T) {
		assert.NoError(t, EnsureUniqueLinkTarget(models.StudentTarget(5), links, 2))
	})

	t.Run("absent targets never collide", func(t *testing.T) {
		admins := []models.PersonLink{
			{ID: 3, UserID: 12, Role: models.RoleAdmin, Target: models.NoTarget()},
		}
		assert.NoError(t, EnsureUniqueLinkTarget(models.NoTarget(), admins, 0))
	})
}
