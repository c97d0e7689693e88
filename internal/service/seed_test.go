package service

import (
	"context"
	"testing"

	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
)

func TestSeedService_Seed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	users := &fakeUserRepo{}
	requests := &fakeRequestRepo{}
	offers := &fakeOfferRepo{}
	s := NewSeedService(users, requests, offers)

	if err := s.Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if len(users.created) != 3 {
		t.Fatalf("want 3 demo users, got %d", len(users.created))
	}
	if len(requests.created) != 1 {
		t.Fatalf("want 1 demo request, got %d", len(requests.created))
	}
	if len(offers.created) != 2 {
		t.Fatalf("want 2 demo offers, got %d", len(offers.created))
	}
	for _, o := range offers.created {
		if o.RequestID != requests.created[0].ID {
			t.Fatalf("demo offers must target the demo request")
		}
	}
	if requests.created[0].Status != model.StatusOpen {
		t.Fatalf("demo request must start OPEN")
	}
}

func TestSeedService_StableDemoActors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	first := &fakeUserRepo{}
	second := &fakeUserRepo{}

	if err := NewSeedService(first, &fakeRequestRepo{}, &fakeOfferRepo{}).Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := NewSeedService(second, &fakeRequestRepo{}, &fakeOfferRepo{}).Seed(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}

	for i := range first.created {
		if first.created[i].ID != second.created[i].ID {
			t.Fatalf("demo actor ids must be stable across runs")
		}
	}
}
