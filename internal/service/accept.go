package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/ricardobalbino/mercadolivreInverse/internal/errs"
	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
	"github.com/ricardobalbino/mercadolivreInverse/internal/repository"
)

// AcceptanceService coordinates the one-way OPEN -> ACCEPTED transition
// binding a request to exactly one of its offers.
type AcceptanceService interface {
	// Accept validates the offer against the request and flips the request
	// to ACCEPTED. Fails with ErrInvalidOffer if the offer does not exist or
	// belongs to another request, ErrUnauthorized if the caller is not the
	// owning buyer, and ErrAlreadyAccepted if the request already closed.
	Accept(ctx context.Context, requestID, offerID, buyerID uuid.UUID) error
}

type AcceptanceServiceImpl struct {
	requests repository.RequestRepository
	offers   repository.OfferRepository
}

// NewAcceptanceService constructs AcceptanceService.
func NewAcceptanceService(requests repository.RequestRepository, offers repository.OfferRepository) *AcceptanceServiceImpl {
	return &AcceptanceServiceImpl{requests: requests, offers: offers}
}

// Accept runs the acceptance transition. The final state change is a
// store-level compare-and-set, so two concurrent accepts on the same request
// cannot both win.
func (s *AcceptanceServiceImpl) Accept(ctx context.Context, requestID, offerID, buyerID uuid.UUID) error {
	if requestID == uuid.Nil || offerID == uuid.Nil {
		return fmt.Errorf("%w: empty id", errs.ErrValidation)
	}

	offer, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return fmt.Errorf("%w: no such offer", errs.ErrInvalidOffer)
		}
		return err
	}
	if offer.RequestID != requestID {
		return fmt.Errorf("%w: offer belongs to another request", errs.ErrInvalidOffer)
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.BuyerID != buyerID {
		return errs.ErrUnauthorized
	}
	if req.Status != model.StatusOpen {
		return errs.ErrAlreadyAccepted
	}

	return s.requests.Accept(ctx, requestID, offerID)
}
