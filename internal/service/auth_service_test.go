package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"portfolio/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// mockUserRepo is a lightweight in-test mock for repository.Users.
type mockUserRepo struct {
	CreateFn        func(u models.User) error
	GetByEmailFn    func(email string) (*models.User, error)
	GetByUsernameFn func(username string) (*models.User, error)
	GetByIDFn       func(id string) (*models.User, error)
	UpdateFn        func(id string, upd models.UserUpdate) (*models.User, error)

	createCalls []models.User
	emailCalls  []string
}

func (m *mockUserRepo) Create(ctx context.Context, u models.User) error {
	m.createCalls = append(m.createCalls, u)
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(u)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.emailCalls = append(m.emailCalls, email)
	if m.GetByEmailFn == nil {
		return nil, nil
	}
	return m.GetByEmailFn(email)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.GetByUsernameFn == nil {
		return nil, nil
	}
	return m.GetByUsernameFn(username)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.GetByIDFn == nil {
		return nil, nil
	}
	return m.GetByIDFn(id)
}

func (m *mockUserRepo) Update(ctx context.Context, id string, upd models.UserUpdate) (*models.User, error) {
	if m.UpdateFn == nil {
		return nil, nil
	}
	return m.UpdateFn(id, upd)
}

func newTestAuthService(repo *mockUserRepo) *AuthService {
	return NewAuthService(repo, "test-secret", time.Hour)
}

// --- SignUp tests ---

func TestAuthService_SignUp_DerivesFieldsAndHashes(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newTestAuthService(repo)

	u, err := svc.SignUp(context.Background(), "Alice da Silva", "Alice@Example.com", "s3cr3t")
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}

	if len(repo.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(repo.createCalls))
	}
	created := repo.createCalls[0]
	if created.FirstName != "Alice" || created.LastName != "da Silva" {
		t.Errorf("name split wrong: %q / %q", created.FirstName, created.LastName)
	}
	if created.Username != "alice" {
		t.Errorf("expected username from email local part, got %q", created.Username)
	}
	if created.Email != "alice@example.com" {
		t.Errorf("expected normalized email, got %q", created.Email)
	}
	if created.ID == "" || u.ID != created.ID {
		t.Errorf("expected generated id returned, got %q vs %q", u.ID, created.ID)
	}
	if created.PasswordHash == "s3cr3t" {
		t.Errorf("expected hashed password not equal to raw password")
	}
	if err := verifyPassword(created.PasswordHash, "s3cr3t"); err != nil {
		t.Errorf("stored hash does not verify with original password: %v", err)
	}
}

func TestAuthService_SignUp_Validation(t *testing.T) {
	cases := []struct {
		name           string
		inName, email  string
		password       string
		wantValidation bool
	}{
		{"empty name", "", "a@b.com", "pw", true},
		{"blank password", "Alice", "a@b.com", "   ", true},
		{"bad email", "Alice", "not-an-email", "pw", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockUserRepo{}
			svc := newTestAuthService(repo)
			_, err := svc.SignUp(context.Background(), tc.inName, tc.email, tc.password)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if len(repo.createCalls) != 0 {
				t.Fatalf("expected no Create calls, got %d", len(repo.createCalls))
			}
		})
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			return &models.User{ID: "existing", Email: email}, nil
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.SignUp(context.Background(), "Alice", "taken@example.com", "pw")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	// Rejection must be repeatable.
	_, err = svc.SignUp(context.Background(), "Alice", "taken@example.com", "pw")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on retry, got %v", err)
	}
}

// --- SignIn tests ---

func TestAuthService_SignIn_SuccessRoundTrip(t *testing.T) {
	hash, err := hashPassword("letmein")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	user := &models.User{ID: "u-7", Username: "diana", FirstName: "Diana", PasswordHash: hash}
	repo := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) { return user, nil },
	}
	svc := newTestAuthService(repo)

	token, identity, err := svc.SignIn(context.Background(), "diana@example.com", "letmein")
	if err != nil {
		t.Fatalf("SignIn returned error: %v", err)
	}
	if identity.ID != "u-7" || identity.Username != "diana" {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken failed on freshly issued token: %v", err)
	}
	if claims.UserID != "u-7" || claims.Username != "diana" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) <= 0 {
		t.Fatalf("expected future expiry, got %v", claims.ExpiresAt)
	}
}

func TestAuthService_SignIn_NoEnumerationSignal(t *testing.T) {
	hash, _ := hashPassword("correct")
	repo := &mockUserRepo{
		GetByEmailFn: func(email string) (*models.User, error) {
			if email == "known@example.com" {
				return &models.User{ID: "u-1", PasswordHash: hash}, nil
			}
			return nil, nil
		},
	}
	svc := newTestAuthService(repo)

	_, _, errWrongPassword := svc.SignIn(context.Background(), "known@example.com", "wrong")
	_, _, errUnknownEmail := svc.SignIn(context.Background(), "ghost@example.com", "whatever")

	if !errors.Is(errWrongPassword, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPassword)
	}
	if !errors.Is(errUnknownEmail, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknownEmail)
	}
	// Identical error values: nothing to distinguish the two cases by.
	if errWrongPassword.Error() != errUnknownEmail.Error() {
		t.Fatalf("error messages differ: %q vs %q", errWrongPassword, errUnknownEmail)
	}
}

// --- ParseToken tests ---

func TestAuthService_ParseToken_RejectsWrongKeyAndAlg(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{})

	// token signed with another secret
	other := NewAuthService(&mockUserRepo{}, "other-secret", time.Hour)
	tok, err := other.issueToken(&models.User{ID: "u-1", Username: "x"})
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}
	if _, err := svc.ParseToken(tok); err == nil {
		t.Fatalf("expected error for token signed with different key")
	}

	// token signed with RSA instead of HMAC
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}
	rsaTok := jwt.NewWithClaims(jwt.SigningMethodRS256, &Claims{UserID: "u-1"})
	signed, err := rsaTok.SignedString(key)
	if err != nil {
		t.Fatalf("sign rsa token: %v", err)
	}
	if _, err := svc.ParseToken(signed); err == nil {
		t.Fatalf("expected error for non-HMAC signing method")
	}
}

func TestAuthService_ParseToken_RejectsExpired(t *testing.T) {
	repo := &mockUserRepo{}
	svc := &AuthService{users: repo, signingKey: []byte("test-secret"), tokenTTL: -time.Minute}

	tok, err := svc.issueToken(&models.User{ID: "u-1", Username: "x"})
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}
	if _, err := svc.ParseToken(tok); err == nil {
		t.Fatalf("expected error for expired token")
	}
}
