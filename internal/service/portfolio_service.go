package service

import (
	"context"

	"portfolio/internal/models"
	"portfolio/internal/repository"
)

// PortfolioService serves the unauthenticated public read path.
type PortfolioService struct {
	repos *repository.Repository
}

func NewPortfolioService(repos *repository.Repository) *PortfolioService {
	return &PortfolioService{repos: repos}
}

// GetByUsername returns the user's public portfolio: the profile joined with
// skills, projects and contacts, each newest-first. The password hash never
// appears in the payload (excluded at the model level).
func (s *PortfolioService) GetByUsername(ctx context.Context, username string) (*models.Portfolio, error) {
	u, err := s.repos.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return assemblePortfolio(ctx, s.repos, u)
}

// assemblePortfolio joins a user row with its collections.
func assemblePortfolio(ctx context.Context, repos *repository.Repository, u *models.User) (*models.Portfolio, error) {
	skills, err := repos.Skills.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	projects, err := repos.Projects.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	contacts, err := repos.Contacts.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return &models.Portfolio{
		User:     *u,
		Skills:   skills,
		Projects: projects,
		Contacts: contacts,
	}, nil
}
