package repository

import (
	"context"
	"database/sql"
	"errors"

	"portfolio/internal/models"
)

// ErrConflict marks a unique-constraint violation (username or email taken).
var ErrConflict = errors.New("unique value already in use")

type Users interface {
	Create(ctx context.Context, u models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// Update applies the non-nil fields of upd to the row and returns the
	// updated row. Returns (nil, nil) if the user does not exist.
	Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error)
}

type Skills interface {
	ListByUser(ctx context.Context, userID string) ([]models.Skill, error)
	Create(ctx context.Context, s models.Skill) error
	// Update is scoped by (id, user_id); returns (nil, nil) when no row matches.
	Update(ctx context.Context, s models.Skill) (*models.Skill, error)
	// Delete is scoped by (id, user_id); reports whether a row was removed.
	Delete(ctx context.Context, id, userID string) (bool, error)
}

type Projects interface {
	ListByUser(ctx context.Context, userID string) ([]models.Project, error)
	Create(ctx context.Context, p models.Project) error
	Update(ctx context.Context, p models.Project) (*models.Project, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
}

type Contacts interface {
	ListByUser(ctx context.Context, userID string) ([]models.Contact, error)
	Create(ctx context.Context, c models.Contact) error
	Update(ctx context.Context, c models.Contact) (*models.Contact, error)
	Delete(ctx context.Context, id, userID string) (bool, error)
}

type Repository struct {
	Users    Users
	Skills   Skills
	Projects Projects
	Contacts Contacts
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserRepository(db),
		Skills:   NewSkillRepository(db),
		Projects: NewProjectRepository(db),
		Contacts: NewContactRepository(db),
	}
}
