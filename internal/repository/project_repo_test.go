package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockProjectRepo(t *testing.T) (*ProjectSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewProjectSQLite(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

var projectCols = []string{"id", "name", "description", "owner_id", "folder_id", "team_id", "created_at", "updated_at"}

func projectRow(id, owner string) *sqlmock.Rows {
	now := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	return sqlmock.NewRows(projectCols).
		AddRow(id, "P1", nil, owner, nil, nil, now, now)
}

func TestProjectSQLite_ListByOwner(t *testing.T) {
	repo, mock, cleanup := newMockProjectRepo(t)
	defer cleanup()

	now := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	rows := sqlmock.NewRows(projectCols).
		AddRow("p-2", "Newer", nil, "u-1", nil, nil, now, now.Add(time.Hour)).
		AddRow("p-1", "Older", "desc", "u-1", "f-1", nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(selectProjectsByOwnerSQL)).
		WithArgs("u-1").
		WillReturnRows(rows)

	// nested loads per project: videos, then folder ref when set
	mock.ExpectQuery(regexp.QuoteMeta(selectVideoSummariesSQL)).
		WithArgs("p-2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "thumbnail_url", "status"}).
			AddRow("v-1", "Intro cut", "https://cdn/thumb1.jpg", "ready"))
	mock.ExpectQuery(regexp.QuoteMeta(selectVideoSummariesSQL)).
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "thumbnail_url", "status"}))
	mock.ExpectQuery(regexp.QuoteMeta(selectFolderRefSQL)).
		WithArgs("f-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("f-1", "Campaigns"))

	got, err := repo.ListByOwner(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(got))
	}
	if got[0].ID != "p-2" || got[1].ID != "p-1" {
		t.Fatalf("order not preserved: %q, %q", got[0].ID, got[1].ID)
	}
	if len(got[0].Videos) != 1 || got[0].Videos[0].Status != "ready" {
		t.Fatalf("unexpected videos: %+v", got[0].Videos)
	}
	if got[1].Folder == nil || got[1].Folder.Name != "Campaigns" {
		t.Fatalf("unexpected folder ref: %+v", got[1].Folder)
	}
	if got[0].Folder != nil {
		t.Fatalf("expected nil folder ref, got %+v", got[0].Folder)
	}
}

func TestProjectSQLite_GetByIDAndOwner(t *testing.T) {
	t.Run("single filter on id and owner", func(t *testing.T) {
		repo, mock, cleanup := newMockProjectRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectProjectByIDAndOwnerSQL)).
			WithArgs("p-1", "u-1").
			WillReturnRows(projectRow("p-1", "u-1"))
		mock.ExpectQuery(regexp.QuoteMeta(selectVideosSQL)).
			WithArgs("p-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "title", "thumbnail_url", "status", "created_at"}))

		got, err := repo.GetByIDAndOwner(context.Background(), "p-1", "u-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || got.ID != "p-1" || got.OwnerID != "u-1" {
			t.Fatalf("unexpected project: %+v", got)
		}
	})

	t.Run("wrong owner matches nothing", func(t *testing.T) {
		repo, mock, cleanup := newMockProjectRepo(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectProjectByIDAndOwnerSQL)).
			WithArgs("p-1", "user-b").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.GetByIDAndOwner(context.Background(), "p-1", "user-b")
		if err != nil {
			t.Fatalf("expected (nil, nil), got err %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil project, got %+v", got)
		}
	})
}

func TestProjectSQLite_Create(t *testing.T) {
	repo, mock, cleanup := newMockProjectRepo(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(insertProjectSQL)).
		WithArgs(sqlmock.AnyArg(), "P1", nil, "u-1", nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	got, err := repo.Create(context.Background(), "u-1", "P1", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID == "" {
		t.Fatal("expected generated id")
	}
	if got.OwnerID != "u-1" || got.Name != "P1" {
		t.Fatalf("unexpected project: %+v", got)
	}
	if len(got.Videos) != 0 {
		t.Fatalf("new project must have no videos: %+v", got.Videos)
	}
}

func TestProjectSQLite_Update(t *testing.T) {
	t.Run("clearing description only touches that column", func(t *testing.T) {
		repo, mock, cleanup := newMockProjectRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta("UPDATE projects SET description = ?, updated_at = ? WHERE id = ? AND owner_id = ?")).
			WithArgs(nil, sqlmock.AnyArg(), "p-1", "u-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(selectProjectByIDAndOwnerSQL)).
			WithArgs("p-1", "u-1").
			WillReturnRows(projectRow("p-1", "u-1"))
		mock.ExpectQuery(regexp.QuoteMeta(selectVideoSummariesSQL)).
			WithArgs("p-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "thumbnail_url", "status"}))

		got, err := repo.Update(context.Background(), "p-1", "u-1", ProjectChanges{SetDescription: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil || got.Description != nil {
			t.Fatalf("expected cleared description, got %+v", got)
		}
	})

	t.Run("zero rows means gone or not owned", func(t *testing.T) {
		repo, mock, cleanup := newMockProjectRepo(t)
		defer cleanup()

		name := "Renamed"
		mock.ExpectExec(regexp.QuoteMeta("UPDATE projects SET name = ?, updated_at = ? WHERE id = ? AND owner_id = ?")).
			WithArgs(name, sqlmock.AnyArg(), "p-1", "user-b").
			WillReturnResult(sqlmock.NewResult(0, 0))

		got, err := repo.Update(context.Background(), "p-1", "user-b", ProjectChanges{Name: &name})
		if err != nil {
			t.Fatalf("expected (nil, nil), got err %v", err)
		}
		if got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})
}

func TestProjectSQLite_Delete(t *testing.T) {
	tests := []struct {
		name    string
		ownerID string
		rows    int64
		want    bool
	}{
		{name: "owner deletes", ownerID: "u-1", rows: 1, want: true},
		{name: "non-owner matches nothing", ownerID: "user-b", rows: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockProjectRepo(t)
			defer cleanup()

			mock.ExpectExec(regexp.QuoteMeta(deleteProjectSQL)).
				WithArgs("p-1", tt.ownerID).
				WillReturnResult(sqlmock.NewResult(0, tt.rows))

			got, err := repo.Delete(context.Background(), "p-1", tt.ownerID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("deleted=%v, want %v", got, tt.want)
			}
		})
	}
}
