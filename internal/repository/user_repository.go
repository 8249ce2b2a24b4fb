package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"blog-service/internal/domain"
)

const uniqueViolation = "23505"

// PostgresUserRepository implements UserRepository using PostgreSQL.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgresUserRepository.
func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// Create inserts a new user. A username or email collision maps to
// domain.ErrUserExists via the unique constraints.
func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, username, email, first_name, last_name, password_hash, date_of_birth, is_staff, is_superuser, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`, user.ID, user.Username, user.Email, user.FirstName, user.LastName,
		user.PasswordHash, user.DateOfBirth, user.IsStaff, user.IsSuperuser, user.Active,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("insert user: %w", domain.ErrUserExists)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID returns the user with the given ID, or domain.ErrNotFound.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

// GetByUsername returns the user with the given username, or domain.ErrNotFound.
func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.get(ctx, `WHERE username = $1`, username)
}

func (r *PostgresUserRepository) get(ctx context.Context, where string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, email, first_name, last_name, password_hash, date_of_birth, is_staff, is_superuser, is_active, created_at, updated_at
		FROM users `+where,
		arg,
	).Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash,
		&u.DateOfBirth, &u.IsStaff, &u.IsSuperuser, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("query user: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

// UpdateProfile sets the user's name fields and date of birth.
func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id, firstName, lastName string, dateOfBirth *time.Time) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, `
		UPDATE users
		SET first_name = $2, last_name = $3, date_of_birth = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, username, email, first_name, last_name, password_hash, date_of_birth, is_staff, is_superuser, is_active, created_at, updated_at
	`, id, firstName, lastName, dateOfBirth,
	).Scan(&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash,
		&u.DateOfBirth, &u.IsStaff, &u.IsSuperuser, &u.Active, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("update profile: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &u, nil
}

// Delete removes a user. The schema cascades the deletion to the user's
// articles and comments.
func (r *PostgresUserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete user: %w", domain.ErrNotFound)
	}
	return nil
}
