// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates malformed or missing caller input.
	ErrValidation = errors.New("validation")

	// ErrInvalidOffer indicates the offer does not exist or belongs to a
	// different request than the one being accepted.
	ErrInvalidOffer = errors.New("invalid offer")

	// ErrAlreadyAccepted indicates the request already left the OPEN state.
	ErrAlreadyAccepted = errors.New("already accepted")

	// ErrUnauthorized indicates the caller does not own the entity it is acting on.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStoreUnavailable indicates an infrastructure fault talking to the
	// store. Callers may retry with backoff; every other sentinel is a
	// caller-input problem and must not be retried.
	ErrStoreUnavailable = errors.New("store unavailable")
)
