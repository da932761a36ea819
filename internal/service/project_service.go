package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/repository"

	"github.com/google/uuid"
)

// ProjectInput is the client-controlled part of a project.
type ProjectInput struct {
	Title       string
	Description string
	Link        string
	ImageURL    string
}

// ProjectService enforces ownership the same way SkillService does.
type ProjectService struct {
	projects repository.Projects
}

func NewProjectService(projects repository.Projects) *ProjectService {
	return &ProjectService{projects: projects}
}

func (s *ProjectService) List(ctx context.Context, userID string) ([]models.Project, error) {
	return s.projects.ListByUser(ctx, userID)
}

func (s *ProjectService) Create(ctx context.Context, userID string, in ProjectInput) (*models.Project, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	p := models.Project{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Link:        strings.TrimSpace(in.Link),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProjectService) Update(ctx context.Context, userID, id string, in ProjectInput) (*models.Project, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	out, err := s.projects.Update(ctx, models.Project{
		ID:          id,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Link:        strings.TrimSpace(in.Link),
		ImageURL:    strings.TrimSpace(in.ImageURL),
		UserID:      userID,
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, ErrNotFound
	}
	return out, nil
}

func (s *ProjectService) Delete(ctx context.Context, userID, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	removed, err := s.projects.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
