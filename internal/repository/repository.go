package repository

import (
	"context"
	"database/sql"

	"video_studio/internal/models"
	"video_studio/internal/repository/db"
)

type Users interface {
	Create(ctx context.Context, email, name, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// Projects is the ownership-scoped project store. Every method that touches a
// single project filters by (id, ownerID) inside the statement itself, so a
// concurrent mutation by a non-owner matches zero rows instead of corrupting
// data.
type Projects interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.ProjectSummary, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.ProjectDetail, error)
	Create(ctx context.Context, ownerID, name string, description, folderID *string) (*models.ProjectSummary, error)
	Update(ctx context.Context, id, ownerID string, ch ProjectChanges) (*models.ProjectSummary, error)
	Delete(ctx context.Context, id, ownerID string) (bool, error)
}

// ProjectChanges carries a partial update. The Set* flags distinguish
// "explicitly cleared" (flag true, pointer nil) from "field omitted"
// (flag false).
type ProjectChanges struct {
	Name           *string
	Description    *string
	SetDescription bool
	FolderID       *string
	SetFolderID    bool
}

type Activity interface {
	Append(ctx context.Context, e models.ActivityEntry) error
	ListRecent(ctx context.Context, userID string, limit int) ([]models.ActivityEntry, error)
}

type Repository struct {
	Users    Users
	Projects Projects
	Activity Activity
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Users:    NewUserSQLite(sqlDB),
		Projects: NewProjectSQLite(sqlDB),
		Activity: NewActivitySQLite(sqlDB),
	}
}

// InitDB opens the SQLite database at path and applies the schema.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
