package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/ricardobalbino/mercadolivreInverse/internal/errs"
	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// CreateIfAbsent inserts a user row; a duplicate ID is a silent no-op so the
// first provisioning call wins and later calls leave the profile untouched.
func (r *UserRepo) CreateIfAbsent(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (id, display_name, role, city, reputation, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO NOTHING`
	_, err := r.db.Pool.Exec(ctx, q, u.ID, u.DisplayName, u.Role, u.City, u.ReputationScore, u.CreatedAt)
	return storeErr(err)
}

// GetByID selects a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const q = `
SELECT id, display_name, role, city, reputation, created_at
FROM users WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var u model.User
	if err := row.Scan(&u.ID, &u.DisplayName, &u.Role, &u.City, &u.ReputationScore, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, storeErr(err)
	}
	return &u, nil
}

// UpdateProfile changes mutable profile fields of an existing user.
func (r *UserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, displayName, city string) error {
	const q = `
UPDATE users SET display_name=$2, city=$3 WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, id, displayName, city)
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
