package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
)

// OfferRepository provides access to seller offers. Offers are immutable:
// there is no update and no single-offer delete, removal happens only via
// the request cascade.
type OfferRepository interface {
	// Create inserts a new offer.
	Create(ctx context.Context, o *model.Offer) error
	// GetByID loads an offer by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Offer, error)
	// ListByRequest returns offers for a request ordered by price ascending,
	// ties broken by creation time ascending (earliest submission wins).
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]model.Offer, error)
	// ListBySeller returns a seller's offers newest-first.
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]model.Offer, error)
}
