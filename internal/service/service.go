package service

import (
	"context"
	"errors"
	"io"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/repository"
)

// Domain errors shared across services. Handlers translate these to HTTP
// codes in exactly one place.
var (
	// ErrValidation marks bad client input; wrap it with the field detail.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound covers missing rows and ownership mismatches alike: all
	// mutations are scoped by (id, user_id), so a foreign row looks absent.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict marks a duplicate email or username.
	ErrConflict = errors.New("email or username already in use")
)

type Authorization interface {
	SignUp(ctx context.Context, name, email, password string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (string, *models.Identity, error)
	ParseToken(accessToken string) (*Claims, error)
}

type Profile interface {
	Get(ctx context.Context, userID string) (*models.Portfolio, error)
	Update(ctx context.Context, userID string, upd models.UserUpdate) (*models.User, error)
	GetPublic(ctx context.Context, userID string) (*models.PublicProfile, error)
}

type Skills interface {
	List(ctx context.Context, userID string) ([]models.Skill, error)
	Create(ctx context.Context, userID string, in SkillInput) (*models.Skill, error)
	Update(ctx context.Context, userID, id string, in SkillInput) (*models.Skill, error)
	Delete(ctx context.Context, userID, id string) error
}

type Projects interface {
	List(ctx context.Context, userID string) ([]models.Project, error)
	Create(ctx context.Context, userID string, in ProjectInput) (*models.Project, error)
	Update(ctx context.Context, userID, id string, in ProjectInput) (*models.Project, error)
	Delete(ctx context.Context, userID, id string) error
}

type Contacts interface {
	List(ctx context.Context, userID string) ([]models.Contact, error)
	Create(ctx context.Context, userID string, in ContactInput) (*models.Contact, error)
	Update(ctx context.Context, userID, id string, in ContactInput) (*models.Contact, error)
	Delete(ctx context.Context, userID, id string) error
}

// Portfolio exposes the unauthenticated public read path.
type Portfolio interface {
	GetByUsername(ctx context.Context, username string) (*models.Portfolio, error)
}

// Uploads stores user-submitted images and returns their public URL path.
type Uploads interface {
	Store(ctx context.Context, filename string, size int64, r io.Reader) (string, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Profile
	Skills
	Projects
	Contacts
	Portfolio
	Uploads
}

// Config carries the knobs the services need beyond their repos.
type Config struct {
	TokenSecret    string
	TokenTTL       time.Duration
	UploadDir      string
	UploadBaseURL  string
	UploadMaxBytes int64
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg Config) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, cfg.TokenSecret, cfg.TokenTTL),
		Profile:       NewProfileService(repos),
		Skills:        NewSkillService(repos.Skills),
		Projects:      NewProjectService(repos.Projects),
		Contacts:      NewContactService(repos.Contacts),
		Portfolio:     NewPortfolioService(repos),
		Uploads:       NewUploadService(cfg.UploadDir, cfg.UploadBaseURL, cfg.UploadMaxBytes),
	}
}
