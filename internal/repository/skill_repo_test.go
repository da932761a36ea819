package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"portfolio/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockSkillRepo(t *testing.T) (*SkillRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewSkillRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestSkillRepository_ListByUser(t *testing.T) {
	repo, mock, cleanup := newMockSkillRepo(t)
	defer cleanup()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(listSkillsSQL)).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "icon_url", "user_id", "created_at"}).
			AddRow("s-2", "Go", "go.png", "u-1", now).
			AddRow("s-1", "SQL", nil, "u-1", now.Add(-time.Hour)))

	skills, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(skills) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(skills))
	}
	if skills[0].ID != "s-2" || skills[0].IconURL != "go.png" {
		t.Fatalf("unexpected first skill: %+v", skills[0])
	}
	// NULL icon scans to the empty string.
	if skills[1].IconURL != "" {
		t.Fatalf("expected empty icon for NULL column, got %q", skills[1].IconURL)
	}
}

func TestSkillRepository_Create(t *testing.T) {
	repo, mock, cleanup := newMockSkillRepo(t)
	defer cleanup()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(insertSkillSQL)).
		WithArgs("s-1", "Go", "go.png", "u-1", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), models.Skill{
		ID: "s-1", Name: "Go", IconURL: "go.png", UserID: "u-1", CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSkillRepository_Create_EmptyIconStoredAsNull(t *testing.T) {
	repo, mock, cleanup := newMockSkillRepo(t)
	defer cleanup()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(insertSkillSQL)).
		WithArgs("s-1", "Go", nil, "u-1", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), models.Skill{
		ID: "s-1", Name: "Go", UserID: "u-1", CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSkillRepository_Update(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("matching row is rewritten and reloaded", func(t *testing.T) {
		repo, mock, cleanup := newMockSkillRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(updateSkillSQL)).
			WithArgs("Golang", "go.png", "s-1", "u-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(getSkillSQL)).
			WithArgs("s-1", "u-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "icon_url", "user_id", "created_at"}).
				AddRow("s-1", "Golang", "go.png", "u-1", now))

		s, err := repo.Update(context.Background(), models.Skill{
			ID: "s-1", Name: "Golang", IconURL: "go.png", UserID: "u-1",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s == nil || s.Name != "Golang" {
			t.Fatalf("unexpected skill: %+v", s)
		}
	})

	t.Run("foreign owner matches nothing", func(t *testing.T) {
		repo, mock, cleanup := newMockSkillRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(updateSkillSQL)).
			WithArgs("Golang", nil, "s-1", "intruder").
			WillReturnResult(sqlmock.NewResult(0, 0))

		s, err := repo.Update(context.Background(), models.Skill{
			ID: "s-1", Name: "Golang", UserID: "intruder",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s != nil {
			t.Fatalf("expected nil for unmatched row, got %+v", s)
		}
	})

	t.Run("exec error is wrapped", func(t *testing.T) {
		repo, mock, cleanup := newMockSkillRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(updateSkillSQL)).
			WithArgs("Golang", nil, "s-1", "u-1").
			WillReturnError(errors.New("db exec failed"))

		_, err := repo.Update(context.Background(), models.Skill{
			ID: "s-1", Name: "Golang", UserID: "u-1",
		})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestSkillRepository_Delete(t *testing.T) {
	t.Run("own row removed", func(t *testing.T) {
		repo, mock, cleanup := newMockSkillRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteSkillSQL)).
			WithArgs("s-1", "u-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.Delete(context.Background(), "s-1", "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatal("expected deletion to be reported")
		}
	})

	t.Run("foreign owner matches nothing", func(t *testing.T) {
		repo, mock, cleanup := newMockSkillRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteSkillSQL)).
			WithArgs("s-1", "intruder").
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.Delete(context.Background(), "s-1", "intruder")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok {
			t.Fatal("expected no deletion for foreign owner")
		}
	})
}
