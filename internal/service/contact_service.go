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

// ContactInput is the client-controlled part of a contact link.
type ContactInput struct {
	Type  string
	Value string
}

type ContactService struct {
	contacts repository.Contacts
}

func NewContactService(contacts repository.Contacts) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) List(ctx context.Context, userID string) ([]models.Contact, error) {
	return s.contacts.ListByUser(ctx, userID)
}

func (s *ContactService) Create(ctx context.Context, userID string, in ContactInput) (*models.Contact, error) {
	if strings.TrimSpace(in.Type) == "" || strings.TrimSpace(in.Value) == "" {
		return nil, fmt.Errorf("%w: type and value are required", ErrValidation)
	}
	c := models.Contact{
		ID:        uuid.NewString(),
		Type:      strings.TrimSpace(in.Type),
		Value:     strings.TrimSpace(in.Value),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.contacts.Create(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ContactService) Update(ctx context.Context, userID, id string, in ContactInput) (*models.Contact, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}
	if strings.TrimSpace(in.Type) == "" || strings.TrimSpace(in.Value) == "" {
		return nil, fmt.Errorf("%w: type and value are required", ErrValidation)
	}
	out, err := s.contacts.Update(ctx, models.Contact{
		ID:     id,
		Type:   strings.TrimSpace(in.Type),
		Value:  strings.TrimSpace(in.Value),
		UserID: userID,
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, ErrNotFound
	}
	return out, nil
}

func (s *ContactService) Delete(ctx context.Context, userID, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	removed, err := s.contacts.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}
