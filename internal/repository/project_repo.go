package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"video_studio/internal/models"

	"github.com/google/uuid"
)

type ProjectSQLite struct {
	db *sql.DB
}

func NewProjectSQLite(db *sql.DB) *ProjectSQLite {
	return &ProjectSQLite{db: db}
}

var _ Projects = (*ProjectSQLite)(nil)

const (
	projectColumns = `id, name, description, owner_id, folder_id, team_id, created_at, updated_at`

	selectProjectsByOwnerSQL = `SELECT ` + projectColumns + ` FROM projects WHERE owner_id = ? ORDER BY updated_at DESC`

	// Single filter on both id and owner: a wrong id and a wrong owner are
	// indistinguishable to the caller.
	selectProjectByIDAndOwnerSQL = `SELECT ` + projectColumns + ` FROM projects WHERE id = ? AND owner_id = ?`

	insertProjectSQL = `INSERT INTO projects (id, name, description, owner_id, folder_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`

	deleteProjectSQL = `DELETE FROM projects WHERE id = ? AND owner_id = ?`

	selectVideoSummariesSQL = `SELECT id, title, thumbnail_url, status FROM videos WHERE project_id = ? ORDER BY created_at ASC`
	selectVideosSQL         = `SELECT id, project_id, title, thumbnail_url, status, created_at FROM videos WHERE project_id = ? ORDER BY created_at ASC`
	selectFolderRefSQL      = `SELECT id, name FROM folders WHERE id = ?`
	selectFolderSQL         = `SELECT id, name, owner_id, created_at FROM folders WHERE id = ?`
	selectTeamSQL           = `SELECT id, name FROM teams WHERE id = ?`
	selectTeamMembersSQL    = `SELECT tm.role, u.id, u.name, u.email FROM team_members tm JOIN users u ON u.id = tm.user_id WHERE tm.team_id = ?`
)

// ListByOwner returns the caller's projects, most recently updated first,
// each with lightweight video summaries and a folder reference.
func (r *ProjectSQLite) ListByOwner(ctx context.Context, ownerID string) ([]models.ProjectSummary, error) {
	rows, err := r.db.QueryContext(ctx, selectProjectsByOwnerSQL, ownerID)
	if err != nil {
		return nil, fmt.Errorf("select projects for owner: %w", err)
	}
	defer rows.Close()

	out := make([]models.ProjectSummary, 0, 16)
	for rows.Next() {
		var p models.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, models.ProjectSummary{Project: p})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	for i := range out {
		if err := r.fillSummary(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// GetByIDAndOwner fetches one project with full nested relations.
// Returns (nil, nil) when no row matches both id and owner.
func (r *ProjectSQLite) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*models.ProjectDetail, error) {
	var p models.Project
	row := r.db.QueryRowContext(ctx, selectProjectByIDAndOwnerSQL, id, ownerID)
	if err := scanProject(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	d := models.ProjectDetail{Project: p, Videos: []models.Video{}}

	videos, err := r.loadVideos(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	d.Videos = videos

	if p.FolderID != nil {
		var f models.Folder
		err := r.db.QueryRowContext(ctx, selectFolderSQL, *p.FolderID).
			Scan(&f.ID, &f.Name, &f.OwnerID, &f.CreatedAt)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("select folder %q: %w", *p.FolderID, err)
		}
		if err == nil {
			f.CreatedAt = f.CreatedAt.UTC()
			d.Folder = &f
		}
	}

	if p.TeamID != nil {
		team, err := r.loadTeam(ctx, *p.TeamID)
		if err != nil {
			return nil, err
		}
		d.Team = team
	}

	return &d, nil
}

// Create inserts a project owned by ownerID and returns it with its folder
// reference resolved. The owner is never client-supplied.
func (r *ProjectSQLite) Create(ctx context.Context, ownerID, name string, description, folderID *string) (*models.ProjectSummary, error) {
	now := time.Now().UTC()
	p := models.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		FolderID:    folderID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err := r.db.ExecContext(ctx, insertProjectSQL,
		p.ID, p.Name, p.Description, p.OwnerID, p.FolderID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert project %q: %w", name, err)
	}

	s := models.ProjectSummary{Project: p, Videos: []models.VideoSummary{}}
	if err := r.fillFolderRef(ctx, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Update applies a partial change set. The statement itself is filtered by
// (id, owner_id) so a concurrent delete or a non-owner request matches zero
// rows. Returns (nil, nil) when nothing matched.
func (r *ProjectSQLite) Update(ctx context.Context, id, ownerID string, ch ProjectChanges) (*models.ProjectSummary, error) {
	var (
		sets []string
		args []any
	)
	if ch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *ch.Name)
	}
	if ch.SetDescription {
		sets = append(sets, "description = ?")
		args = append(args, ch.Description)
	}
	if ch.SetFolderID {
		sets = append(sets, "folder_id = ?")
		args = append(args, ch.FolderID)
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC())

	q := "UPDATE projects SET " + strings.Join(sets, ", ") + " WHERE id = ? AND owner_id = ?"
	args = append(args, id, ownerID)

	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("update project %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected for project %q: %w", id, err)
	}
	if n == 0 {
		return nil, nil
	}

	var p models.Project
	row := r.db.QueryRowContext(ctx, selectProjectByIDAndOwnerSQL, id, ownerID)
	if err := scanProject(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	s := models.ProjectSummary{Project: p}
	if err := r.fillSummary(ctx, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes the project permanently, filtered by (id, owner_id).
// Reports whether a row was removed.
func (r *ProjectSQLite) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteProjectSQL, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("delete project %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for project %q: %w", id, err)
	}
	return n > 0, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner, p *models.Project) error {
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.OwnerID,
		&p.FolderID,
		&p.TeamID,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("scan project row: %w", err)
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return nil
}

func (r *ProjectSQLite) fillSummary(ctx context.Context, s *models.ProjectSummary) error {
	videos, err := r.loadVideoSummaries(ctx, s.ID)
	if err != nil {
		return err
	}
	s.Videos = videos
	return r.fillFolderRef(ctx, s)
}

func (r *ProjectSQLite) fillFolderRef(ctx context.Context, s *models.ProjectSummary) error {
	if s.FolderID == nil {
		return nil
	}
	var ref models.FolderRef
	err := r.db.QueryRowContext(ctx, selectFolderRefSQL, *s.FolderID).Scan(&ref.ID, &ref.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("select folder %q: %w", *s.FolderID, err)
	}
	s.Folder = &ref
	return nil
}

func (r *ProjectSQLite) loadVideoSummaries(ctx context.Context, projectID string) ([]models.VideoSummary, error) {
	rows, err := r.db.QueryContext(ctx, selectVideoSummariesSQL, projectID)
	if err != nil {
		return nil, fmt.Errorf("select videos for project %q: %w", projectID, err)
	}
	defer rows.Close()

	out := make([]models.VideoSummary, 0, 8)
	for rows.Next() {
		var v models.VideoSummary
		if err := rows.Scan(&v.ID, &v.Title, &v.ThumbnailURL, &v.Status); err != nil {
			return nil, fmt.Errorf("scan video summary: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *ProjectSQLite) loadVideos(ctx context.Context, projectID string) ([]models.Video, error) {
	rows, err := r.db.QueryContext(ctx, selectVideosSQL, projectID)
	if err != nil {
		return nil, fmt.Errorf("select videos for project %q: %w", projectID, err)
	}
	defer rows.Close()

	out := make([]models.Video, 0, 8)
	for rows.Next() {
		var v models.Video
		if err := rows.Scan(&v.ID, &v.ProjectID, &v.Title, &v.ThumbnailURL, &v.Status, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		v.CreatedAt = v.CreatedAt.UTC()
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *ProjectSQLite) loadTeam(ctx context.Context, teamID string) (*models.Team, error) {
	var t models.Team
	err := r.db.QueryRowContext(ctx, selectTeamSQL, teamID).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select team %q: %w", teamID, err)
	}

	rows, err := r.db.QueryContext(ctx, selectTeamMembersSQL, teamID)
	if err != nil {
		return nil, fmt.Errorf("select members for team %q: %w", teamID, err)
	}
	defer rows.Close()

	t.Members = make([]models.TeamMember, 0, 4)
	for rows.Next() {
		var m models.TeamMember
		if err := rows.Scan(&m.Role, &m.User.ID, &m.User.Name, &m.User.Email); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		t.Members = append(t.Members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &t, nil
}
