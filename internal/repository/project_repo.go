package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"portfolio/internal/models"

	"github.com/google/uuid"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

var _ Projects = (*ProjectRepository)(nil)

const (
	insertProjectSQL = `INSERT INTO projects (id, title, description, link, image_url, user_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	updateProjectSQL = `UPDATE projects SET title = ?, description = ?, link = ?, image_url = ? WHERE id = ? AND user_id = ?`
	deleteProjectSQL = `DELETE FROM projects WHERE id = ? AND user_id = ?`
	listProjectsSQL  = `SELECT id, title, description, link, image_url, user_id, created_at FROM projects WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	getProjectSQL    = `SELECT id, title, description, link, image_url, user_id, created_at FROM projects WHERE id = ? AND user_id = ?`
)

func (r *ProjectRepository) ListByUser(ctx context.Context, userID string) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, listProjectsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects for user %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p models.Project) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, insertProjectSQL,
		p.ID, p.Title, nullable(p.Description), nullable(p.Link), nullable(p.ImageURL), p.UserID, p.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert project %q: %w", p.Title, err)
	}
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, p models.Project) (*models.Project, error) {
	res, err := r.db.ExecContext(ctx, updateProjectSQL,
		p.Title, nullable(p.Description), nullable(p.Link), nullable(p.ImageURL), p.ID, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("update project %q: %w", p.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update project %q rows affected: %w", p.ID, err)
	}
	if affected == 0 {
		return nil, nil
	}

	out, err := scanProject(func(dst ...any) error {
		return r.db.QueryRowContext(ctx, getProjectSQL, p.ID, p.UserID).Scan(dst...)
	})
	if err != nil {
		return nil, fmt.Errorf("reload project %q: %w", p.ID, err)
	}
	return &out, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteProjectSQL, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete project %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete project %q rows affected: %w", id, err)
	}
	return affected > 0, nil
}

// scanProject reads one project row through the given scan function.
func scanProject(scan func(dst ...any) error) (models.Project, error) {
	var p models.Project
	var desc, link, img sql.NullString
	if err := scan(&p.ID, &p.Title, &desc, &link, &img, &p.UserID, &p.CreatedAt); err != nil {
		return models.Project{}, err
	}
	p.Description = desc.String
	p.Link = link.String
	p.ImageURL = img.String
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}
