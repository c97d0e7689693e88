package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
)

// RatingRepository stores counterparty ratings and keeps the ratee's
// reputation score consistent with them.
type RatingRepository interface {
	// Create inserts the rating and recomputes the ratee's reputation score
	// as the mean of all their ratings, in one transaction. Returns
	// errs.ErrValidation if a rating for (request, rater) already exists.
	Create(ctx context.Context, rt *model.Rating) error
	// ListByRatee returns ratings received by a user, newest-first.
	ListByRatee(ctx context.Context, rateeID uuid.UUID) ([]model.Rating, error)
}
