// Package service contains the negotiation core: request lifecycle, offer
// ranking, acceptance coordination, actor provisioning and reputation.
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

// RequestService owns request creation, listing and cascading deletion.
type RequestService interface {
	// Create persists a new OPEN request for the acting buyer.
	Create(ctx context.Context, actor model.Actor, in model.NewRequest) (*model.Request, error)
	// Get returns a single request by id.
	Get(ctx context.Context, id uuid.UUID) (*model.Request, error)
	// List returns requests newest-first. limit <= 0 disables pagination.
	List(ctx context.Context, limit, offset int) ([]model.Request, error)
	// Delete removes the request and all of its offers. Only the owning
	// buyer may delete.
	Delete(ctx context.Context, id, requesterID uuid.UUID) error
}

type RequestServiceImpl struct {
	requests repository.RequestRepository
	users    repository.UserRepository
}

// NewRequestService constructs RequestService.
func NewRequestService(requests repository.RequestRepository, users repository.UserRepository) *RequestServiceImpl {
	return &RequestServiceImpl{requests: requests, users: users}
}

// Create validates buyer input, lazily provisions the buyer and persists an
// OPEN request with no accepted offer.
func (s *RequestServiceImpl) Create(ctx context.Context, actor model.Actor, in model.NewRequest) (*model.Request, error) {
	if actor.Role != model.RoleBuyer {
		return nil, errs.ErrUnauthorized
	}
	if in.Title == "" {
		return nil, fmt.Errorf("%w: empty title", errs.ErrValidation)
	}
	if in.Description == "" {
		return nil, fmt.Errorf("%w: empty description", errs.ErrValidation)
	}
	if in.MaxPrice <= 0 {
		return nil, fmt.Errorf("%w: max price must be positive", errs.ErrValidation)
	}
	if in.RadiusKm < 0 {
		return nil, fmt.Errorf("%w: radius must not be negative", errs.ErrValidation)
	}

	if _, err := provision(ctx, s.users, actor); err != nil {
		return nil, err
	}

	city := in.City
	if city == "" {
		city = actor.City
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	req := &model.Request{
		ID:          id,
		Title:       in.Title,
		Category:    in.Category,
		Description: in.Description,
		MaxPrice:    in.MaxPrice,
		RadiusKm:    in.RadiusKm,
		City:        city,
		BuyerID:     actor.ID,
		Status:      model.StatusOpen,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// Get fetches a single request.
func (s *RequestServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.Request, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: empty request id", errs.ErrValidation)
	}
	return s.requests.GetByID(ctx, id)
}

// List returns requests ordered newest-first.
func (s *RequestServiceImpl) List(ctx context.Context, limit, offset int) ([]model.Request, error) {
	if offset < 0 {
		offset = 0
	}
	return s.requests.List(ctx, limit, offset)
}

// Delete checks ownership and delegates the all-or-nothing cascade to the store.
func (s *RequestServiceImpl) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	if id == uuid.Nil || requesterID == uuid.Nil {
		return fmt.Errorf("%w: empty id", errs.ErrValidation)
	}
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req.BuyerID != requesterID {
		return errs.ErrUnauthorized
	}
	return s.requests.Delete(ctx, id)
}

// provision materializes the acting user before its first write. Shared by
// the request and offer services so every create call is self-sufficient.
func provision(ctx context.Context, users repository.UserRepository, actor model.Actor) (*model.User, error) {
	u := &model.User{
		ID:          actor.ID,
		DisplayName: actor.DisplayName,
		Role:        actor.Role,
		City:        actor.City,
		CreatedAt:   time.Now().UTC(),
	}
	if err := users.CreateIfAbsent(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
