package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"portfolio/internal/models"

	"github.com/google/uuid"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

var _ Contacts = (*ContactRepository)(nil)

const (
	insertContactSQL = `INSERT INTO contacts (id, type, value, user_id, created_at) VALUES (?, ?, ?, ?, ?)`
	updateContactSQL = `UPDATE contacts SET type = ?, value = ? WHERE id = ? AND user_id = ?`
	deleteContactSQL = `DELETE FROM contacts WHERE id = ? AND user_id = ?`
	listContactsSQL  = `SELECT id, type, value, user_id, created_at FROM contacts WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	getContactSQL    = `SELECT id, type, value, user_id, created_at FROM contacts WHERE id = ? AND user_id = ?`
)

func (r *ContactRepository) ListByUser(ctx context.Context, userID string) ([]models.Contact, error) {
	rows, err := r.db.QueryContext(ctx, listContactsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list contacts for user %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Contact, 0, 8)
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Type, &c.Value, &c.UserID, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.CreatedAt = c.CreatedAt.UTC()
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContactRepository) Create(ctx context.Context, c models.Contact) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, insertContactSQL,
		c.ID, c.Type, c.Value, c.UserID, c.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert contact %q: %w", c.Type, err)
	}
	return nil
}

func (r *ContactRepository) Update(ctx context.Context, c models.Contact) (*models.Contact, error) {
	res, err := r.db.ExecContext(ctx, updateContactSQL, c.Type, c.Value, c.ID, c.UserID)
	if err != nil {
		return nil, fmt.Errorf("update contact %q: %w", c.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update contact %q rows affected: %w", c.ID, err)
	}
	if affected == 0 {
		return nil, nil
	}

	var out models.Contact
	err = r.db.QueryRowContext(ctx, getContactSQL, c.ID, c.UserID).
		Scan(&out.ID, &out.Type, &out.Value, &out.UserID, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("reload contact %q: %w", c.ID, err)
	}
	out.CreatedAt = out.CreatedAt.UTC()
	return &out, nil
}

func (r *ContactRepository) Delete(ctx context.Context, id, userID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteContactSQL, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete contact %q: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete contact %q rows affected: %w", id, err)
	}
	return affected > 0, nil
}
