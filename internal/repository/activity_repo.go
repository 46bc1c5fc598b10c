package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"video_studio/internal/models"

	"github.com/google/uuid"
)

type ActivitySQLite struct {
	db *sql.DB
}

func NewActivitySQLite(db *sql.DB) *ActivitySQLite { return &ActivitySQLite{db: db} }

var _ Activity = (*ActivitySQLite)(nil)

const (
	insertActivitySQL = `INSERT INTO activity_log (id, user_id, action, meta, occurred_at) VALUES (?, ?, ?, ?, ?)`

	selectRecentActivitySQL = `SELECT id, user_id, action, meta, occurred_at FROM activity_log WHERE user_id = ? ORDER BY occurred_at DESC LIMIT ?`
)

// Append inserts a new audit entry. If ID or OccurredAt are empty, they’re set.
func (r *ActivitySQLite) Append(ctx context.Context, e models.ActivityEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	// marshal metadata if present
	var metaPtr *string
	if e.Metadata != nil {
		if b, err := json.Marshal(e.Metadata); err == nil {
			s := string(b)
			metaPtr = &s
		}
	}

	_, err := r.db.ExecContext(ctx, insertActivitySQL,
		e.ID, e.UserID, e.Action, metaPtr, e.OccurredAt)
	if err != nil {
		return fmt.Errorf("insert activity entry: %w", err)
	}
	return nil
}

// ListRecent returns the newest entries for a user, most recent first.
func (r *ActivitySQLite) ListRecent(ctx context.Context, userID string, limit int) ([]models.ActivityEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectRecentActivitySQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("select activity for user: %w", err)
	}
	defer rows.Close()

	out := make([]models.ActivityEntry, 0, limit)
	for rows.Next() {
		var e models.ActivityEntry
		var metaStr sql.NullString
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &metaStr, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan activity entry: %w", err)
		}
		e.OccurredAt = e.OccurredAt.UTC()

		if metaStr.Valid && metaStr.String != "" {
			var v any
			if err := json.Unmarshal([]byte(metaStr.String), &v); err == nil {
				e.Metadata = v
			} else {
				e.Metadata = metaStr.String // keep raw if malformed
			}
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
