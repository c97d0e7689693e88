package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/ricardobalbino/mercadolivreInverse/internal/errs"
	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
	"github.com/ricardobalbino/mercadolivreInverse/internal/repository"
)

// UserService provisions and serves marketplace actors.
type UserService interface {
	// Provision materializes a user record for an acting buyer/seller id.
	// Idempotent: repeated calls with the same id keep the first profile.
	Provision(ctx context.Context, actor model.Actor) (*model.User, error)
	// Get returns a user by id.
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	// UpdateProfile changes the caller's own display name and city.
	UpdateProfile(ctx context.Context, actorID, id uuid.UUID, displayName, city string) (*model.User, error)
}

type UserServiceImpl struct {
	users repository.UserRepository
}

// NewUserService constructs UserService.
func NewUserService(users repository.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{users: users}
}

// Provision inserts the actor's user record if absent and returns the stored row.
func (s *UserServiceImpl) Provision(ctx context.Context, actor model.Actor) (*model.User, error) {
	if actor.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty actor id", errs.ErrValidation)
	}
	if actor.DisplayName == "" {
		return nil, fmt.Errorf("%w: empty display name", errs.ErrValidation)
	}
	if !actor.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", errs.ErrValidation, actor.Role)
	}

	u := &model.User{
		ID:          actor.ID,
		DisplayName: actor.DisplayName,
		Role:        actor.Role,
		City:        actor.City,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.users.CreateIfAbsent(ctx, u); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, actor.ID)
}

// Get fetches a single user by id.
func (s *UserServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: empty user id", errs.ErrValidation)
	}
	return s.users.GetByID(ctx, id)
}

// UpdateProfile edits mutable profile fields. Only the owner may edit.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, actorID, id uuid.UUID, displayName, city string) (*model.User, error) {
	if actorID != id {
		return nil, errs.ErrUnauthorized
	}
	if displayName == "" {
		return nil, fmt.Errorf("%w: empty display name", errs.ErrValidation)
	}
	if err := s.users.UpdateProfile(ctx, id, displayName, city); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, id)
}
