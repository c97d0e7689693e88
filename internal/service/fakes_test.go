package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
	"github.com/ricardobalbino/mercadolivreInverse/internal/repository"
)

type fakeUserRepo struct {
	created   []model.User
	createErr error
	getOut    *model.User
	getErr    error
	updateErr error
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) CreateIfAbsent(_ context.Context, u *model.User) error {
	f.created = append(f.created, *u)
	return f.createErr
}
func (f *fakeUserRepo) GetByID(_ context.Context, _ uuid.UUID) (*model.User, error) {
	return f.getOut, f.getErr
}
func (f *fakeUserRepo) UpdateProfile(_ context.Context, _ uuid.UUID, _, _ string) error {
	return f.updateErr
}

type fakeRequestRepo struct {
	created   []model.Request
	createErr error

	getOut *model.Request
	getErr error

	listOut []model.Request
	listErr error

	deletedID uuid.UUID
	deleteErr error

	acceptedReq   uuid.UUID
	acceptedOffer uuid.UUID
	acceptErr     error
}

var _ repository.RequestRepository = (*fakeRequestRepo)(nil)

func (f *fakeRequestRepo) Create(_ context.Context, r *model.Request) error {
	f.created = append(f.created, *r)
	return f.createErr
}
func (f *fakeRequestRepo) GetByID(_ context.Context, _ uuid.UUID) (*model.Request, error) {
	return f.getOut, f.getErr
}
func (f *fakeRequestRepo) List(_ context.Context, _, _ int) ([]model.Request, error) {
	return append([]model.Request(nil), f.listOut...), f.listErr
}
func (f *fakeRequestRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.deletedID = id
	return f.deleteErr
}
func (f *fakeRequestRepo) Accept(_ context.Context, requestID, offerID uuid.UUID) error {
	f.acceptedReq, f.acceptedOffer = requestID, offerID
	return f.acceptErr
}

type fakeOfferRepo struct {
	created   []model.Offer
	createErr error

	getOut *model.Offer
	getErr error

	byReqOut    []model.Offer
	byReqErr    error
	bySellerOut []model.Offer
	bySellerErr error
}

var _ repository.OfferRepository = (*fakeOfferRepo)(nil)

func (f *fakeOfferRepo) Create(_ context.Context, o *model.Offer) error {
	f.created = append(f.created, *o)
	return f.createErr
}
func (f *fakeOfferRepo) GetByID(_ context.Context, _ uuid.UUID) (*model.Offer, error) {
	return f.getOut, f.getErr
}
func (f *fakeOfferRepo) ListByRequest(_ context.Context, _ uuid.UUID) ([]model.Offer, error) {
	return append([]model.Offer(nil), f.byReqOut...), f.byReqErr
}
func (f *fakeOfferRepo) ListBySeller(_ context.Context, _ uuid.UUID) ([]model.Offer, error) {
	return append([]model.Offer(nil), f.bySellerOut...), f.bySellerErr
}

type fakeRatingRepo struct {
	created   []model.Rating
	createErr error
	listOut   []model.Rating
	listErr   error
}

var _ repository.RatingRepository = (*fakeRatingRepo)(nil)

func (f *fakeRatingRepo) Create(_ context.Context, rt *model.Rating) error {
	f.created = append(f.created, *rt)
	return f.createErr
}
func (f *fakeRatingRepo) ListByRatee(_ context.Context, _ uuid.UUID) ([]model.Rating, error) {
	return append([]model.Rating(nil), f.listOut...), f.listErr
}
