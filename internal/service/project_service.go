package service

import (
	"context"
	"fmt"
	"strings"

	"video_studio/internal/logger"
	"video_studio/internal/models"
	"video_studio/internal/repository"
)

const actionCreatedProject = "created_project"

// ProjectService implements ownership-scoped project CRUD. Ownership is
// re-verified on every call against the store; nothing is cached from a
// prior read.
type ProjectService struct {
	projects repository.Projects
	activity repository.Activity
	log      *logger.Logger
}

func NewProjectService(projects repository.Projects, activity repository.Activity, log *logger.Logger) *ProjectService {
	return &ProjectService{projects: projects, activity: activity, log: log}
}

type CreateProjectParams struct {
	Name        string
	Description *string
	FolderID    *string
}

// UpdateProjectParams carries a partial update. Description and FolderID use
// presence flags so an explicit null clears the field while an omitted field
// is left untouched.
type UpdateProjectParams struct {
	Name           *string
	Description    *string
	SetDescription bool
	FolderID       *string
	SetFolderID    bool
}

func (s *ProjectService) List(ctx context.Context, ownerID string) ([]models.ProjectSummary, error) {
	return s.projects.ListByOwner(ctx, ownerID)
}

func (s *ProjectService) Get(ctx context.Context, id, ownerID string) (*models.ProjectDetail, error) {
	p, err := s.projects.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Create stores a new project owned by ownerID and appends an audit entry.
// The audit write is best-effort: its failure is logged, not surfaced.
func (s *ProjectService) Create(ctx context.Context, ownerID string, p CreateProjectParams) (*models.ProjectSummary, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("%w: project name is required", ErrValidation)
	}

	created, err := s.projects.Create(ctx, ownerID, p.Name, p.Description, p.FolderID)
	if err != nil {
		return nil, err
	}

	if err := s.activity.Append(ctx, models.ActivityEntry{
		UserID: ownerID,
		Action: actionCreatedProject,
		Metadata: map[string]any{
			"projectId":   created.ID,
			"projectName": created.Name,
		},
	}); err != nil && s.log != nil {
		s.log.Warnw("activity_append_failed", "err", err, "projectId", created.ID)
	}

	return created, nil
}

// Update re-verifies ownership with a fresh lookup, then applies the partial
// change set. The update statement itself is still filtered by owner, so a
// concurrent racer matches zero rows.
func (s *ProjectService) Update(ctx context.Context, id, ownerID string, p UpdateProjectParams) (*models.ProjectSummary, error) {
	existing, err := s.projects.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	ch := repository.ProjectChanges{
		Description:    p.Description,
		SetDescription: p.SetDescription,
		FolderID:       p.FolderID,
		SetFolderID:    p.SetFolderID,
	}
	// Empty name is treated as omitted, matching create's requirement that a
	// name is never blank.
	if p.Name != nil && strings.TrimSpace(*p.Name) != "" {
		ch.Name = p.Name
	}

	updated, err := s.projects.Update(ctx, id, ownerID, ch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete re-verifies ownership, then removes the project permanently.
func (s *ProjectService) Delete(ctx context.Context, id, ownerID string) error {
	existing, err := s.projects.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	deleted, err := s.projects.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		// Lost a race with a concurrent delete; same outcome for the caller.
		return ErrNotFound
	}
	return nil
}
