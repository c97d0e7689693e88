package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
	"github.com/ricardobalbino/mercadolivreInverse/internal/repository"
)

// seedNS namespaces the deterministic demo actor ids, so repeated seeding
// reuses the same users.
var seedNS = uuid.NewV5(uuid.NamespaceOID, "mercadolivre-inverse/seed")

// SeedService loads demo data: one buyer, two sellers, a request with two
// competing offers. Demo users are stable across runs; the request and its
// offers are fresh each call.
type SeedService interface {
	Seed(ctx context.Context) error
}

type SeedServiceImpl struct {
	users    repository.UserRepository
	requests repository.RequestRepository
	offers   repository.OfferRepository
}

// NewSeedService constructs SeedService.
func NewSeedService(users repository.UserRepository, requests repository.RequestRepository, offers repository.OfferRepository) *SeedServiceImpl {
	return &SeedServiceImpl{users: users, requests: requests, offers: offers}
}

// Seed inserts the demo dataset.
func (s *SeedServiceImpl) Seed(ctx context.Context) error {
	now := time.Now().UTC()

	buyer := &model.User{
		ID: uuid.NewV5(seedNS, "buyer1"), DisplayName: "Ricardo (comprador)",
		Role: model.RoleBuyer, City: "São Paulo", ReputationScore: 4.7, CreatedAt: now,
	}
	seller1 := &model.User{
		ID: uuid.NewV5(seedNS, "seller1"), DisplayName: "Loja Centro SP",
		Role: model.RoleSeller, City: "São Paulo", ReputationScore: 4.8, CreatedAt: now,
	}
	seller2 := &model.User{
		ID: uuid.NewV5(seedNS, "seller2"), DisplayName: "Tech Zona Sul",
		Role: model.RoleSeller, City: "São Paulo", ReputationScore: 4.5, CreatedAt: now,
	}
	for _, u := range []*model.User{buyer, seller1, seller2} {
		if err := s.users.CreateIfAbsent(ctx, u); err != nil {
			return err
		}
	}

	reqID, err := uuid.NewV4()
	if err != nil {
		return err
	}
	req := &model.Request{
		ID:          reqID,
		Title:       "Notebook Gamer RTX 4060",
		Category:    "Eletrônicos",
		Description: "16GB, 512GB+, aceito seminovo",
		MaxPrice:    5500,
		RadiusKm:    15,
		City:        "São Paulo",
		BuyerID:     buyer.ID,
		Status:      model.StatusOpen,
		CreatedAt:   now,
	}
	if err := s.requests.Create(ctx, req); err != nil {
		return err
	}

	demo := []model.Offer{
		{SellerID: seller1.ID, Price: 5299, Condition: "seminovo", Message: "Dell G15, 10 meses de uso", EtaDays: 1},
		{SellerID: seller2.ID, Price: 4990, Condition: "usado", Message: "Acer Nitro, NF e garantia 7 dias", EtaDays: 2},
	}
	for _, o := range demo {
		id, err := uuid.NewV4()
		if err != nil {
			return err
		}
		o.ID = id
		o.RequestID = req.ID
		o.CreatedAt = now
		if err := s.offers.Create(ctx, &o); err != nil {
			return err
		}
	}
	return nil
}
