package handlers

import (
	"context"
	"errors"

	"video_studio/internal/models"
	"video_studio/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

// errMockStore stands in for an unexpected store failure.
var errMockStore = errors.New("mock store failure")

type mockAuth struct {
	signUpUser  *models.User
	signUpToken string
	signUpErr   error

	signInUser  *models.User
	signInToken string
	signInErr   error

	parseIdentity service.Identity
	parseErr      error

	currentUser *models.User
	currentErr  error

	lastSignUp     service.SignUpParams
	lastSignIn     [2]string
	lastParseToken string
}

func (m *mockAuth) SignUp(_ context.Context, p service.SignUpParams) (*models.User, string, error) {
	m.lastSignUp = p
	return m.signUpUser, m.signUpToken, m.signUpErr
}

func (m *mockAuth) SignIn(_ context.Context, email, password string) (*models.User, string, error) {
	m.lastSignIn = [2]string{email, password}
	return m.signInUser, m.signInToken, m.signInErr
}

func (m *mockAuth) ParseToken(token string) (service.Identity, error) {
	m.lastParseToken = token
	return m.parseIdentity, m.parseErr
}

func (m *mockAuth) CurrentUser(_ context.Context, _ string) (*models.User, error) {
	return m.currentUser, m.currentErr
}

type mockProjects struct {
	listResp  []models.ProjectSummary
	listErr   error
	getResp   *models.ProjectDetail
	getErr    error
	createVal *models.ProjectSummary
	createErr error
	updateVal *models.ProjectSummary
	updateErr error
	deleteErr error

	lastOwner  string
	lastID     string
	lastCreate service.CreateProjectParams
	lastUpdate service.UpdateProjectParams
}

func (m *mockProjects) List(_ context.Context, ownerID string) ([]models.ProjectSummary, error) {
	m.lastOwner = ownerID
	return m.listResp, m.listErr
}

func (m *mockProjects) Get(_ context.Context, id, ownerID string) (*models.ProjectDetail, error) {
	m.lastID, m.lastOwner = id, ownerID
	return m.getResp, m.getErr
}

func (m *mockProjects) Create(_ context.Context, ownerID string, p service.CreateProjectParams) (*models.ProjectSummary, error) {
	m.lastOwner, m.lastCreate = ownerID, p
	return m.createVal, m.createErr
}

func (m *mockProjects) Update(_ context.Context, id, ownerID string, p service.UpdateProjectParams) (*models.ProjectSummary, error) {
	m.lastID, m.lastOwner, m.lastUpdate = id, ownerID, p
	return m.updateVal, m.updateErr
}

func (m *mockProjects) Delete(_ context.Context, id, ownerID string) error {
	m.lastID, m.lastOwner = id, ownerID
	return m.deleteErr
}

type mockActivity struct {
	resp []models.ActivityEntry
	err  error
}

func (m *mockActivity) Recent(_ context.Context, _ string, _ int) ([]models.ActivityEntry, error) {
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
