package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio/internal/models"
	"portfolio/internal/service"
)

func TestPortfolioHandler_PublicLookup(t *testing.T) {
	now := time.Now().UTC()
	p := &models.Portfolio{
		User: models.User{
			ID:           "u-1",
			Username:     "alice",
			Email:        "alice@example.com",
			PasswordHash: "$2a$10$secret-hash",
			FirstName:    "Alice",
		},
		Skills: []models.Skill{
			{ID: "s-2", Name: "Go", UserID: "u-1", CreatedAt: now},
			{ID: "s-1", Name: "SQL", UserID: "u-1", CreatedAt: now.Add(-time.Hour)},
		},
		Projects: []models.Project{},
		Contacts: []models.Contact{},
	}
	pf := &mockPortfolio{resp: p}
	s := &service.Service{Portfolio: pf}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/portfolio/alice", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if pf.lastUsername != "alice" {
		t.Fatalf("expected username forwarded, got %q", pf.lastUsername)
	}

	// The hash must never appear in the payload, under any key.
	if strings.Contains(w.Body.String(), "secret-hash") ||
		strings.Contains(strings.ToLower(w.Body.String()), "password") {
		t.Fatalf("password material leaked: %s", w.Body.String())
	}

	var out struct {
		Username string         `json:"username"`
		Skills   []models.Skill `json:"skills"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Username != "alice" || len(out.Skills) != 2 {
		t.Fatalf("unexpected payload: %+v", out)
	}
	// Newest-first ordering is preserved through serialization.
	if !out.Skills[0].CreatedAt.After(out.Skills[1].CreatedAt) {
		t.Fatalf("expected skills newest-first, got %+v", out.Skills)
	}
}

func TestPortfolioHandler_UnknownUsername(t *testing.T) {
	s := &service.Service{Portfolio: &mockPortfolio{err: service.ErrNotFound}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/portfolio/ghost", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPortfolioHandler_NoAuthRequired(t *testing.T) {
	// The public endpoint never consults the token middleware.
	auth := &mockAuth{parseErr: service.ErrValidation}
	s := &service.Service{
		Authorization: auth,
		Portfolio:     &mockPortfolio{resp: &models.Portfolio{User: models.User{Username: "alice"}}},
	}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/portfolio/alice", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("public lookup must not require auth, got %d", w.Code)
	}
}
