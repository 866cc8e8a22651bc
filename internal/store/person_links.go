package store

import (
	"fmt"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/models"
)

// personLinkRow is the two-nullable-columns shape the schema stores; the
// tagged LinkTarget variant exists only in memory.
type personLinkRow struct {
	ID         int64  `db:"id"`
	UserID     int64  `db:"user_id"`
	Role       string `db:"role"`
	EmployeeID *int64 `db:"employee_id"`
	StudentID  *int64 `db:"student_id"`
	CreatedAt  int64  `db:"created_at"`
	ModifiedAt int64  `db:"modified_at"`
}

func (r personLinkRow) toModel() models.PersonLink {
	link := models.PersonLink{
		ID:         r.ID,
		UserID:     r.UserID,
		Role:       models.UserRole(r.Role),
		Target:     models.NoTarget(),
		CreatedAt:  r.CreatedAt,
		ModifiedAt: r.ModifiedAt,
	}
	switch {
	case r.EmployeeID != nil:
		link.Target = models.EmployeeTarget(*r.EmployeeID)
	case r.StudentID != nil:
		link.Target = models.StudentTarget(*r.StudentID)
	}
	return link
}

func rowFromLink(l *models.PersonLink) personLinkRow {
	row := personLinkRow{
		ID:         l.ID,
		UserID:     l.UserID,
		Role:       string(l.Role),
		CreatedAt:  l.CreatedAt,
		ModifiedAt: l.ModifiedAt,
	}
	switch l.Target.Kind {
	case models.TargetEmployee:
		row.EmployeeID = &l.Target.ID
	case models.TargetStudent:
		row.StudentID = &l.Target.ID
	}
	return row
}

func (s *BaseStore) GetPersonLink(id int64) (*models.PersonLink, error) {
	var row personLinkRow
	found, err := s.getRow(&row, `
		SELECT id, user_id, role, employee_id, student_id, created_at, modified_at
		FROM person_links
		WHERE id = ?
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get person link: %w", err)
	}
	if !found {
		return nil, nil
	}
	link := row.toModel()
	return &link, nil
}

func (s *BaseStore) ListPersonLinks() ([]models.PersonLink, error) {
	var rows []personLinkRow
	err := s.DB.Select(&rows, `
		SELECT id, user_id, role, employee_id, student_id, created_at, modified_at
		FROM person_links
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list person links: %w", err)
	}
	links := make([]models.PersonLink, len(rows))
	for i, row := range rows {
		links[i] = row.toModel()
	}
	return links, nil
}

func (s *BaseStore) CreatePersonLink(l *models.PersonLink) error {
	row := rowFromLink(l)
	err := s.DB.Get(&l.ID, s.Converter(`
		INSERT INTO person_links (user_id, role, employee_id, student_id, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id
	`), row.UserID, row.Role, row.EmployeeID, row.StudentID, row.CreatedAt, row.ModifiedAt)
	return s.wrapWrite(err, "person link", string(l.Target.Kind)+"_id", l.Target.ID)
}

func (s *BaseStore) UpdatePersonLink(l *models.PersonLink) error {
	row := rowFromLink(l)
	_, err := s.DB.Exec(s.Converter(`
		UPDATE person_links
		SET user_id = ?, role = ?, employee_id = ?, student_id = ?, modified_at = ?
		WHERE id = ?
	`), row.UserID, row.Role, row.EmployeeID, row.StudentID, row.ModifiedAt, row.ID)
	return s.wrapWrite(err, "person link", string(l.Target.Kind)+"_id", l.Target.ID)
}

func (s *BaseStore) DeletePersonLink(id int64) error {
	if _, err := s.DB.Exec(s.Converter(`DELETE FROM person_links WHERE id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete person link: %w", err)
	}
	return nil
}
