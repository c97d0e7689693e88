// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Role classifies a marketplace actor.
type Role string

// Actor roles.
const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool { return r == RoleBuyer || r == RoleSeller }

// RequestStatus is the negotiation state of a buyer request.
type RequestStatus string

// Request lifecycle states. OPEN is the only state that admits acceptance;
// ACCEPTED is terminal.
const (
	StatusOpen     RequestStatus = "OPEN"
	StatusAccepted RequestStatus = "ACCEPTED"
)

// User is a marketplace actor, created lazily on first action and never deleted.
// ReputationScore is maintained exclusively by the reputation subsystem.
type User struct {
	ID              uuid.UUID `json:"id"`
	DisplayName     string    `json:"displayName"`
	Role            Role      `json:"role"`
	City            string    `json:"city"`
	ReputationScore float64   `json:"reputationScore"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Request is a buyer's posted want with a price ceiling and search area.
// AcceptedOfferID is non-nil iff Status is ACCEPTED; the referenced offer
// always belongs to this request.
type Request struct {
	ID              uuid.UUID     `json:"id"`
	Title           string        `json:"title"`
	Category        string        `json:"category"`
	Description     string        `json:"description"`
	MaxPrice        float64       `json:"maxPrice"`
	RadiusKm        float64       `json:"radiusKm"`
	City            string        `json:"city"`
	BuyerID         uuid.UUID     `json:"buyerId"`
	Status          RequestStatus `json:"status"`
	AcceptedOfferID *uuid.UUID    `json:"acceptedOfferId"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// Offer is a seller's proposal against a specific request. Offers are
// immutable once created and removed only by request cascade.
type Offer struct {
	ID        uuid.UUID `json:"id"`
	RequestID uuid.UUID `json:"requestId"`
	SellerID  uuid.UUID `json:"sellerId"`
	Price     float64   `json:"price"`
	Condition string    `json:"condition"`
	Message   string    `json:"message"`
	EtaDays   int       `json:"etaDays"`
	CreatedAt time.Time `json:"createdAt"`
}

// Rating is a post-acceptance review of the negotiation counterparty.
// One rating per (request, rater).
type Rating struct {
	ID        uuid.UUID `json:"id"`
	RequestID uuid.UUID `json:"requestId"`
	RaterID   uuid.UUID `json:"raterId"`
	RateeID   uuid.UUID `json:"rateeId"`
	Score     float64   `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// Actor identifies the caller of an operation together with the profile
// fields needed for lazy provisioning.
type Actor struct {
	ID          uuid.UUID
	DisplayName string
	Role        Role
	City        string
}

// NewRequest carries buyer input for request creation.
type NewRequest struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	MaxPrice    float64 `json:"maxPrice"`
	RadiusKm    float64 `json:"radiusKm"`
	City        string  `json:"city"`
}

// NewOffer carries seller input for offer creation.
type NewOffer struct {
	RequestID uuid.UUID `json:"requestId"`
	Price     float64   `json:"price"`
	Condition string    `json:"condition"`
	Message   string    `json:"message"`
	EtaDays   int       `json:"etaDays"`
}

// OfferFilter selects offers by request or by seller. With neither set the
// query yields nothing; a full scan is never exposed.
type OfferFilter struct {
	RequestID *uuid.UUID
	SellerID  *uuid.UUID
}
