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

// SkillInput is the client-controlled part of a skill. The owning user always
// comes from the session, never from the payload.
type SkillInput struct {
	Name    string
	IconURL string
}

// SkillService enforces ownership for every skill mutation: the repo scopes
// all writes by (id, user_id), so a foreign row surfaces as ErrNotFound.
type SkillService struct {
	skills repository.Skills
}

func NewSkillService(skills repository.Skills) *SkillService {
	return &SkillService{skills: skills}
}

func (s *SkillService) List(ctx context.Context, userID string) ([]models.Skill, error) {
	return s.skills.ListByUser(ctx, userID)
}

func (s *SkillService) Create(ctx context.Context, userID string, in SkillInput) (*models.Skill, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	skill := models.Skill{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		IconURL:   strings.TrimSpace(in.IconURL),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.skills.Create(ctx, skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

func (s *SkillService) Update(ctx context.Context, userID, id string, in SkillInput) (*models.Skill, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	out, err := s.skills.Update(ctx, models.Skill{
		ID:      id,
		Name:    strings.TrimSpace(in.Name),
		IconURL: strings.TrimSpace(in.IconURL),
		UserID:  userID,
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, ErrNotFound
	}
	return out, nil
}

func (s *SkillService) Delete(ctx context.Context, userID, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	removed, err := s.skills.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
