package handlers

import (
	"context"
	"io"

	"portfolio/internal/logger"
	"portfolio/internal/models"
	"portfolio/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpUser  *models.User
	signUpErr   error
	signInToken string
	signInID    *models.Identity
	signInErr   error
	parseClaims *service.Claims
	parseErr    error

	lastSignUpName  string
	lastSignUpEmail string
	lastSignInEmail string
	lastParseToken  string
}

func (m *mockAuth) SignUp(ctx context.Context, name, email, password string) (*models.User, error) {
	m.lastSignUpName = name
	m.lastSignUpEmail = email
	return m.signUpUser, m.signUpErr
}

func (m *mockAuth) SignIn(ctx context.Context, email, password string) (string, *models.Identity, error) {
	m.lastSignInEmail = email
	return m.signInToken, m.signInID, m.signInErr
}

func (m *mockAuth) ParseToken(token string) (*service.Claims, error) {
	m.lastParseToken = token
	return m.parseClaims, m.parseErr
}

type mockProfile struct {
	portfolio *models.Portfolio
	user      *models.User
	public    *models.PublicProfile
	err       error

	lastUserID string
	lastUpdate models.UserUpdate
}

func (m *mockProfile) Get(ctx context.Context, userID string) (*models.Portfolio, error) {
	m.lastUserID = userID
	return m.portfolio, m.err
}

func (m *mockProfile) Update(ctx context.Context, userID string, upd models.UserUpdate) (*models.User, error) {
	m.lastUserID = userID
	m.lastUpdate = upd
	return m.user, m.err
}

func (m *mockProfile) GetPublic(ctx context.Context, userID string) (*models.PublicProfile, error) {
	m.lastUserID = userID
	return m.public, m.err
}

type mockSkills struct {
	list    []models.Skill
	created *models.Skill
	updated *models.Skill
	err     error

	lastUserID string
	lastID     string
	lastInput  service.SkillInput
}

func (m *mockSkills) List(ctx context.Context, userID string) ([]models.Skill, error) {
	m.lastUserID = userID
	return m.list, m.err
}

func (m *mockSkills) Create(ctx context.Context, userID string, in service.SkillInput) (*models.Skill, error) {
	m.lastUserID = userID
	m.lastInput = in
	return m.created, m.err
}

func (m *mockSkills) Update(ctx context.Context, userID, id string, in service.SkillInput) (*models.Skill, error) {
	m.lastUserID = userID
	m.lastID = id
	m.lastInput = in
	return m.updated, m.err
}

func (m *mockSkills) Delete(ctx context.Context, userID, id string) error {
	m.lastUserID = userID
	m.lastID = id
	return m.err
}

type mockProjects struct {
	list    []models.Project
	created *models.Project
	updated *models.Project
	err     error

	lastUserID string
	lastID     string
	lastInput  service.ProjectInput
}

func (m *mockProjects) List(ctx context.Context, userID string) ([]models.Project, error) {
	m.lastUserID = userID
	return m.list, m.err
}

func (m *mockProjects) Create(ctx context.Context, userID string, in service.ProjectInput) (*models.Project, error) {
	m.lastUserID = userID
	m.lastInput = in
	return m.created, m.err
}

func (m *mockProjects) Update(ctx context.Context, userID, id string, in service.ProjectInput) (*models.Project, error) {
	m.lastUserID = userID
	m.lastID = id
	m.lastInput = in
	return m.updated, m.err
}

func (m *mockProjects) Delete(ctx context.Context, userID, id string) error {
	m.lastUserID = userID
	m.lastID = id
	return m.err
}

type mockContacts struct {
	list    []models.Contact
	created *models.Contact
	updated *models.Contact
	err     error

	lastUserID string
	lastID     string
	lastInput  service.ContactInput
}

func (m *mockContacts) List(ctx context.Context, userID string) ([]models.Contact, error) {
	m.lastUserID = userID
	return m.list, m.err
}

func (m *mockContacts) Create(ctx context.Context, userID string, in service.ContactInput) (*models.Contact, error) {
	m.lastUserID = userID
	m.lastInput = in
	return m.created, m.err
}

func (m *mockContacts) Update(ctx context.Context, userID, id string, in service.ContactInput) (*models.Contact, error) {
	m.lastUserID = userID
	m.lastID = id
	m.lastInput = in
	return m.updated, m.err
}

func (m *mockContacts) Delete(ctx context.Context, userID, id string) error {
	m.lastUserID = userID
	m.lastID = id
	return m.err
}

type mockPortfolio struct {
	resp *models.Portfolio
	err  error

	lastUsername string
}

func (m *mockPortfolio) GetByUsername(ctx context.Context, username string) (*models.Portfolio, error) {
	m.lastUsername = username
	return m.resp, m.err
}

type mockUploads struct {
	url string
	err error

	lastFilename string
	lastSize     int64
}

func (m *mockUploads) Store(ctx context.Context, filename string, size int64, r io.Reader) (string, error) {
	m.lastFilename = filename
	m.lastSize = size
	_, _ = io.Copy(io.Discard, r)
	return m.url, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, logger.Get(logger.ErrorLevel))
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
