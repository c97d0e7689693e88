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

// ReputationService captures post-acceptance ratings. It is pull-based: it
// consults the request's status and accepted offer, and never gates the
// acceptance itself.
type ReputationService interface {
	// Rate records a rating of the negotiation counterparty for an ACCEPTED
	// request. The rater must be the buyer or the accepted offer's seller;
	// the ratee is the other party.
	Rate(ctx context.Context, requestID, raterID uuid.UUID, score float64, comment string) (*model.Rating, error)
	// ListForUser returns ratings received by a user, newest-first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Rating, error)
}

type ReputationServiceImpl struct {
	ratings  repository.RatingRepository
	requests repository.RequestRepository
	offers   repository.OfferRepository
}

// NewReputationService constructs ReputationService.
func NewReputationService(ratings repository.RatingRepository, requests repository.RequestRepository, offers repository.OfferRepository) *ReputationServiceImpl {
	return &ReputationServiceImpl{ratings: ratings, requests: requests, offers: offers}
}

// Rate validates eligibility and stores the rating.
func (s *ReputationServiceImpl) Rate(ctx context.Context, requestID, raterID uuid.UUID, score float64, comment string) (*model.Rating, error) {
	if score < 1 || score > 5 {
		return nil, fmt.Errorf("%w: score must be between 1 and 5", errs.ErrValidation)
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != model.StatusAccepted || req.AcceptedOfferID == nil {
		return nil, fmt.Errorf("%w: request has no accepted offer", errs.ErrValidation)
	}

	offer, err := s.offers.GetByID(ctx, *req.AcceptedOfferID)
	if err != nil {
		return nil, err
	}

	var rateeID uuid.UUID
	switch raterID {
	case req.BuyerID:
		rateeID = offer.SellerID
	case offer.SellerID:
		rateeID = req.BuyerID
	default:
		return nil, errs.ErrUnauthorized
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	rt := &model.Rating{
		ID:        id,
		RequestID: requestID,
		RaterID:   raterID,
		RateeID:   rateeID,
		Score:     score,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.ratings.Create(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

// ListForUser returns the ratings received by a user.
func (s *ReputationServiceImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Rating, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty user id", errs.ErrValidation)
	}
	return s.ratings.ListByRatee(ctx, userID)
}
