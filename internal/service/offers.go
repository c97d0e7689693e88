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

// OfferService owns offer creation and the price-ordered views. Offers are
// created against a verified request handle: a missing request fails with
// ErrNotFound and an accepted one with ErrAlreadyAccepted, so closed
// negotiations never gain new offers.
type OfferService interface {
	// Create persists a new offer by the acting seller.
	Create(ctx context.Context, actor model.Actor, in model.NewOffer) (*model.Offer, error)
	// List returns offers selected by the filter. With neither side of the
	// filter set it returns an empty slice.
	List(ctx context.Context, f model.OfferFilter) ([]model.Offer, error)
}

type OfferServiceImpl struct {
	offers   repository.OfferRepository
	requests repository.RequestRepository
	users    repository.UserRepository
}

// NewOfferService constructs OfferService.
func NewOfferService(offers repository.OfferRepository, requests repository.RequestRepository, users repository.UserRepository) *OfferServiceImpl {
	return &OfferServiceImpl{offers: offers, requests: requests, users: users}
}

// Create validates seller input, verifies the target request is still open,
// lazily provisions the seller and persists the offer.
func (s *OfferServiceImpl) Create(ctx context.Context, actor model.Actor, in model.NewOffer) (*model.Offer, error) {
	if actor.Role != model.RoleSeller {
		return nil, errs.ErrUnauthorized
	}
	if in.RequestID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing request id", errs.ErrValidation)
	}
	if in.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", errs.ErrValidation)
	}
	if in.EtaDays <= 0 {
		return nil, fmt.Errorf("%w: eta must be positive", errs.ErrValidation)
	}

	req, err := s.requests.GetByID(ctx, in.RequestID)
	if err != nil {
		return nil, err
	}
	if req.Status != model.StatusOpen {
		return nil, fmt.Errorf("%w: request is no longer open", errs.ErrAlreadyAccepted)
	}

	if _, err := provision(ctx, s.users, actor); err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	o := &model.Offer{
		ID:        id,
		RequestID: in.RequestID,
		SellerID:  actor.ID,
		Price:     in.Price,
		Condition: in.Condition,
		Message:   in.Message,
		EtaDays:   in.EtaDays,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.offers.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// List dispatches on the filter. Both sides set means the request view
// narrowed to one seller; neither set is the safety default: nothing.
func (s *OfferServiceImpl) List(ctx context.Context, f model.OfferFilter) ([]model.Offer, error) {
	switch {
	case f.RequestID != nil:
		out, err := s.offers.ListByRequest(ctx, *f.RequestID)
		if err != nil || f.SellerID == nil {
			return out, err
		}
		filtered := []model.Offer{}
		for _, o := range out {
			if o.SellerID == *f.SellerID {
				filtered = append(filtered, o)
			}
		}
		return filtered, nil
	case f.SellerID != nil:
		return s.offers.ListBySeller(ctx, *f.SellerID)
	default:
		return []model.Offer{}, nil
	}
}
