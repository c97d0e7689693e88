// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
)

// UserRepository provides access to marketplace actors.
type UserRepository interface {
	// CreateIfAbsent inserts the user unless a row with the same ID already
	// exists. Repeated calls with the same ID are no-ops after the first.
	CreateIfAbsent(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	// UpdateProfile changes display name and city of an existing user.
	UpdateProfile(ctx context.Context, id uuid.UUID, displayName, city string) error
}
