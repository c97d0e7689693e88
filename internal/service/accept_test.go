package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/ricardobalbino/mercadolivreInverse/internal/errs"
	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
)

func TestAcceptanceService_OfferMissing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewAcceptanceService(&fakeRequestRepo{}, &fakeOfferRepo{getErr: errs.ErrNotFound})

	err := s.Accept(ctx, uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))
	if !errors.Is(err, errs.ErrInvalidOffer) {
		t.Fatalf("want ErrInvalidOffer for missing offer, got %v", err)
	}
}

func TestAcceptanceService_CrossRequestOffer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reqID := uuid.Must(uuid.NewV4())
	otherReq := uuid.Must(uuid.NewV4())
	buyerID := uuid.Must(uuid.NewV4())
	offerID := uuid.Must(uuid.NewV4())

	requests := &fakeRequestRepo{getOut: &model.Request{ID: reqID, BuyerID: buyerID, Status: model.StatusOpen}}
	offers := &fakeOfferRepo{getOut: &model.Offer{ID: offerID, RequestID: otherReq}}
	s := NewAcceptanceService(requests, offers)

	err := s.Accept(ctx, reqID, offerID, buyerID)
	if !errors.Is(err, errs.ErrInvalidOffer) {
		t.Fatalf("want ErrInvalidOffer for cross-request offer, got %v", err)
	}
	if requests.acceptedReq != uuid.Nil {
		t.Fatalf("request status must stay untouched")
	}
}

func TestAcceptanceService_NotOwner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reqID := uuid.Must(uuid.NewV4())
	offerID := uuid.Must(uuid.NewV4())
	buyerID := uuid.Must(uuid.NewV4())

	requests := &fakeRequestRepo{getOut: &model.Request{ID: reqID, BuyerID: buyerID, Status: model.StatusOpen}}
	offers := &fakeOfferRepo{getOut: &model.Offer{ID: offerID, RequestID: reqID}}
	s := NewAcceptanceService(requests, offers)

	err := s.Accept(ctx, reqID, offerID, uuid.Must(uuid.NewV4()))
	if !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized for non-owner, got %v", err)
	}
}

func TestAcceptanceService_AlreadyAccepted(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reqID := uuid.Must(uuid.NewV4())
	offerID := uuid.Must(uuid.NewV4())
	buyerID := uuid.Must(uuid.NewV4())
	prev := uuid.Must(uuid.NewV4())

	requests := &fakeRequestRepo{getOut: &model.Request{
		ID: reqID, BuyerID: buyerID, Status: model.StatusAccepted, AcceptedOfferID: &prev,
	}}
	offers := &fakeOfferRepo{getOut: &model.Offer{ID: offerID, RequestID: reqID}}
	s := NewAcceptanceService(requests, offers)

	err := s.Accept(ctx, reqID, offerID, buyerID)
	if !errors.Is(err, errs.ErrAlreadyAccepted) {
		t.Fatalf("want ErrAlreadyAccepted, got %v", err)
	}
	if requests.acceptedReq != uuid.Nil {
		t.Fatalf("accepted offer must never be overwritten")
	}
}

func TestAcceptanceService_OK(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reqID := uuid.Must(uuid.NewV4())
	offerID := uuid.Must(uuid.NewV4())
	buyerID := uuid.Must(uuid.NewV4())

	requests := &fakeRequestRepo{getOut: &model.Request{ID: reqID, BuyerID: buyerID, Status: model.StatusOpen}}
	offers := &fakeOfferRepo{getOut: &model.Offer{ID: offerID, RequestID: reqID}}
	s := NewAcceptanceService(requests, offers)

	if err := s.Accept(ctx, reqID, offerID, buyerID); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if requests.acceptedReq != reqID || requests.acceptedOffer != offerID {
		t.Fatalf("transition not delegated to the store CAS")
	}
}

func TestAcceptanceService_RaceLoser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reqID := uuid.Must(uuid.NewV4())
	offerID := uuid.Must(uuid.NewV4())
	buyerID := uuid.Must(uuid.NewV4())

	// the service saw OPEN, but a concurrent accept won at the store
	requests := &fakeRequestRepo{
		getOut:    &model.Request{ID: reqID, BuyerID: buyerID, Status: model.StatusOpen},
		acceptErr: errs.ErrAlreadyAccepted,
	}
	offers := &fakeOfferRepo{getOut: &model.Offer{ID: offerID, RequestID: reqID}}
	s := NewAcceptanceService(requests, offers)

	err := s.Accept(ctx, reqID, offerID, buyerID)
	if !errors.Is(err, errs.ErrAlreadyAccepted) {
		t.Fatalf("CAS loser must surface ErrAlreadyAccepted, got %v", err)
	}
}
