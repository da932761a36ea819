package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"portfolio/internal/models"

	"github.com/google/uuid"
)

type SkillRepository struct {
	db *sql.DB
}

func NewSkillRepository(db *sql.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

var _ Skills = (*SkillRepository)(nil)

const (
	insertSkillSQL = `INSERT INTO skills (id, name, icon_url, user_id, created_at) VALUES (?, ?, ?, ?, ?)`

	// Mutations are scoped by the (id, user_id) compound key so a cross-user
	// id simply matches nothing.
	updateSkillSQL = `UPDATE skills SET name = ?, icon_url = ? WHERE id = ? AND user_id = ?`
	deleteSkillSQL = `DELETE FROM skills WHERE id = ? AND user_id = ?`

	listSkillsSQL = `SELECT id, name, icon_url, user_id, created_at FROM skills WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	getSkillSQL   = `SELECT id, name, icon_url, user_id, created_at FROM skills WHERE id = ? AND user_id = ?`
)

func (r *SkillRepository) ListByUser(ctx context.Context, userID string) ([]models.Skill, error) {
	rows, err := r.db.QueryContext(ctx, listSkillsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list skills for user %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Skill, 0, 16)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a new skill. ID and CreatedAt are set if empty.
func (r *SkillRepository) Create(ctx context.Context, s models.Skill) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, insertSkillSQL,
		s.ID, s.Name, nullable(s.IconURL), s.UserID, s.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert skill %q: %w", s.Name, err)
	}
	return nil
}

// Update rewrites name/icon for the (id, user_id) pair.
// Returns (nil, nil) when no row matches.
func (r *SkillRepository) Update(ctx context.Context, s models.Skill) (*models.Skill, error) {
	res, err := r.db.ExecContext(ctx, updateSkillSQL,
		s.Name, nullable(s.IconURL), s.ID, s.UserID)
	if err != nil {
		return nil, fmt.Errorf("update skill %q: %w", s.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update skill %q rows affected: %w", s.ID, err)
	}
	if affected == 0 {
		return nil, nil
	}

	var out models.Skill
	var icon sql.NullString
	err = r.db.QueryRowContext(ctx, getSkillSQL, s.ID, s.UserID).
		Scan(&out.ID, &out.Name, &icon, &out.UserID, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("reload skill %q: %w", s.ID, err)
	}
	out.IconURL = icon.String
	out.CreatedAt = out.CreatedAt.UTC()
	return &out, nil
}

// Delete removes the (id, user_id) pair, reporting whether a row was removed.
func (r *SkillRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteSkillSQL, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete skill %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete skill %q rows affected: %w", id, err)
	}
	return affected > 0, nil
}

func scanSkill(rows *sql.Rows) (models.Skill, error) {
	var s models.Skill
	var icon sql.NullString
	if err := rows.Scan(&s.ID, &s.Name, &icon, &s.UserID, &s.CreatedAt); err != nil {
		return models.Skill{}, err
	}
	s.IconURL = icon.String
	s.CreatedAt = s.CreatedAt.UTC()
	return s, nil
}

// nullable maps "" to NULL so optional columns stay NULL instead of empty text.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
