package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/kateryna-ts/NiceFrogbeta/pkg/domain"
)

// ErrNotFound indicates the requested record does not exist
var ErrNotFound = errors.New("not found")

// UserRepository stores the local user profile
type UserRepository struct {
	db *sqlx.DB
}

// CreateUser inserts a new user record
func (r *UserRepository) CreateUser(ctx context.Context, u *domain.User) error {
	return withRetry(ctx, func() error {
		query := `
			INSERT INTO users (id, username, first_name, last_name, email, password, bio, location, joined_at, onboarding_complete)
			VALUES (:id, :username, :first_name, :last_name, :email, :password, :bio, :location, :joined_at, :onboarding_complete)
		`
		if _, err := r.db.NamedExecContext(ctx, query, u); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
}

// GetUser returns a user by id
func (r *UserRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := r.db.GetContext(ctx, &u, "SELECT * FROM users WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// GetUserByEmail returns a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	err := r.db.GetContext(ctx, &u, "SELECT * FROM users WHERE email = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// UpdateUser overwrites the mutable profile fields
func (r *UserRepository) UpdateUser(ctx context.Context, u *domain.User) error {
	return withRetry(ctx, func() error {
		query := `
			UPDATE users
			SET username = :username, first_name = :first_name, last_name = :last_name,
			    bio = :bio, location = :location, onboarding_complete = :onboarding_complete
			WHERE id = :id
		`
		res, err := r.db.NamedExecContext(ctx, query, u)
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrNotFound
		}
		return nil
	})
}
