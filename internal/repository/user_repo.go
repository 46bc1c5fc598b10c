package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"video_studio/internal/models"

	"github.com/google/uuid"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

const (
	insertUserSQL = `INSERT INTO users (id, email, name, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`

	selectUserByEmailSQL = `SELECT id, email, name, password_hash, created_at FROM users WHERE email = ?`
	selectUserByIDSQL    = `SELECT id, email, name, password_hash, created_at FROM users WHERE id = ?`
)

// Create inserts a new user and returns the stored record.
func (r *UserSQLite) Create(ctx context.Context, email, name, passwordHash string) (*models.User, error) {
	u := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := r.db.ExecContext(ctx, insertUserSQL, u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert user %q: %w", email, err)
	}
	return &u, nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUserByEmailSQL, email)
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, selectUserByIDSQL, id)
}

func (r *UserSQLite) getOne(ctx context.Context, query, arg string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", arg, err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}
