package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio/internal/models"
	"portfolio/internal/repository"
)

// ProfileService reads and updates the authenticated user's own profile.
type ProfileService struct {
	repos *repository.Repository
}

func NewProfileService(repos *repository.Repository) *ProfileService {
	return &ProfileService{repos: repos}
}

// Get returns the caller's profile joined with their collections.
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Portfolio, error) {
	u, err := s.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return assemblePortfolio(ctx, s.repos, u)
}

// Update applies a partial profile update for the caller. The target row is
// always the session user; any client-supplied user id is ignored upstream.
func (s *ProfileService) Update(ctx context.Context, userID string, upd models.UserUpdate) (*models.User, error) {
	if upd.Empty() {
		return nil, fmt.Errorf("%w: no updatable field provided", ErrValidation)
	}
	if upd.Username != nil && strings.TrimSpace(*upd.Username) == "" {
		return nil, fmt.Errorf("%w: username cannot be blank", ErrValidation)
	}
	if upd.Email != nil && !strings.Contains(*upd.Email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrValidation)
	}

	u, err := s.repos.Users.Update(ctx, userID, upd)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

// GetPublic returns the reduced profile field set for a user id.
func (s *ProfileService) GetPublic(ctx context.Context, userID string) (*models.PublicProfile, error) {
	u, err := s.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return &models.PublicProfile{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Bio:       u.Bio,
		AvatarURL: u.AvatarURL,
	}, nil
}
