package service

import (
	"context"

	"video_studio/internal/logger"
	"video_studio/internal/models"
	"video_studio/internal/repository"
)

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	UserID string
	Email  string
}

type Authorization interface {
	SignUp(ctx context.Context, p SignUpParams) (*models.User, string, error)
	SignIn(ctx context.Context, email, password string) (*models.User, string, error)
	ParseToken(accessToken string) (Identity, error)
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
}

// Projects exposes ownership-scoped CRUD; ownerID is always the
// authenticated caller, never a client-supplied field.
type Projects interface {
	List(ctx context.Context, ownerID string) ([]models.ProjectSummary, error)
	Get(ctx context.Context, id, ownerID string) (*models.ProjectDetail, error)
	Create(ctx context.Context, ownerID string, p CreateProjectParams) (*models.ProjectSummary, error)
	Update(ctx context.Context, id, ownerID string, p UpdateProjectParams) (*models.ProjectSummary, error)
	Delete(ctx context.Context, id, ownerID string) error
}

// Activity exposes the audit trail written on project mutations.
type Activity interface {
	Recent(ctx context.Context, userID string, limit int) ([]models.ActivityEntry, error)
}

type Service struct {
	Authorization
	Projects
	Activity
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, jwtSecret string, log *logger.Logger) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, jwtSecret),
		Projects:      NewProjectService(repos.Projects, repos.Activity, log),
		Activity:      NewActivityService(repos.Activity),
	}
}
