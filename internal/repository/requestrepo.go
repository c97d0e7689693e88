package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
)

// RequestRepository provides access to buyer requests and owns the two
// store-level transitions with real failure modes: the cascading delete and
// the compare-and-set acceptance.
type RequestRepository interface {
	// Create inserts a new request.
	Create(ctx context.Context, r *model.Request) error
	// GetByID loads a request by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Request, error)
	// List returns requests newest-first. limit <= 0 means no limit.
	List(ctx context.Context, limit, offset int) ([]model.Request, error)
	// Delete removes the request and all offers referencing it in a single
	// transaction. Returns errs.ErrNotFound if the request does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
	// Accept flips the request to ACCEPTED and records the offer, but only
	// if the request is still OPEN. Returns errs.ErrAlreadyAccepted when the
	// request exists and has already been accepted, errs.ErrNotFound when it
	// does not exist.
	Accept(ctx context.Context, requestID, offerID uuid.UUID) error
}
