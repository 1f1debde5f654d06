package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateUserParams represents parameters for creating a user on registration
type CreateUserParams struct {
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
}

const sqlCheckIfEmailExists = `
SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

func (s *Store) CheckIfEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlCheckIfEmailExists, email)
	if err != nil {
		return false, fmt.Errorf("failed to check if email exists: %w", err)
	}
	return exists, nil
}

const sqlCreateUser = `
INSERT INTO users (email, password_hash, first_name, last_name, role)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, email, password_hash, first_name, last_name, role, email_verified, last_login_at, created_at, updated_at`

func (s *Store) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlCreateUser,
		params.Email, params.PasswordHash, params.FirstName, params.LastName, params.Role)
	if err != nil {
		s.logger.Error(ctx, "failed to create user", err)
		return User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

const sqlGetUserByEmail = `
SELECT id, email, password_hash, first_name, last_name, role, email_verified, last_login_at, created_at, updated_at
FROM users
WHERE email = $1`

func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByEmail, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

const sqlGetUserByID = `
SELECT id, email, password_hash, first_name, last_name, role, email_verified, last_login_at, created_at, updated_at
FROM users
WHERE id = $1`

func (s *Store) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	var user User
	err := s.db.GetContext(ctx, &user, sqlGetUserByID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

const sqlStampLastLogin = `
UPDATE users SET last_login_at = NOW(), updated_at = NOW() WHERE id = $1`

func (s *Store) StampLastLogin(ctx context.Context, userID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlStampLastLogin, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to stamp last login", err)
		return fmt.Errorf("failed to stamp last login: %w", err)
	}
	return nil
}
