package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/ricardobalbino/mercadolivreInverse/internal/errs"
	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
)

// OfferRepo implements OfferRepository using PostgreSQL.
type OfferRepo struct{ db *DB }

// NewOfferRepo constructs an offer repository.
func NewOfferRepo(db *DB) *OfferRepo { return &OfferRepo{db: db} }

const offerCols = `id, request_id, seller_id, price, condition, message, eta_days, created_at`

// Create inserts a new offer row. A foreign key violation means the target
// request was deleted between the service-level check and the insert; that
// race surfaces as ErrNotFound, never as an orphaned row.
func (r *OfferRepo) Create(ctx context.Context, o *model.Offer) error {
	const q = `
INSERT INTO offers (id, request_id, seller_id, price, condition, message, eta_days, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Pool.Exec(ctx, q,
		o.ID, o.RequestID, o.SellerID, o.Price, o.Condition, o.Message, o.EtaDays, o.CreatedAt)
	if isForeignKeyViolation(err) {
		return errs.ErrNotFound
	}
	return storeErr(err)
}

// GetByID selects an offer by ID.
func (r *OfferRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Offer, error) {
	const q = `
SELECT ` + offerCols + `
FROM offers WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var o model.Offer
	if err := row.Scan(&o.ID, &o.RequestID, &o.SellerID, &o.Price, &o.Condition, &o.Message, &o.EtaDays, &o.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, storeErr(err)
	}
	return &o, nil
}

// ListByRequest returns offers for a request, cheapest first; equal prices
// keep submission order.
func (r *OfferRepo) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]model.Offer, error) {
	const q = `
SELECT ` + offerCols + `
FROM offers
WHERE request_id=$1
ORDER BY price ASC, created_at ASC`
	return r.list(ctx, q, requestID)
}

// ListBySeller returns a seller's offers newest-first.
func (r *OfferRepo) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]model.Offer, error) {
	const q = `
SELECT ` + offerCols + `
FROM offers
WHERE seller_id=$1
ORDER BY created_at DESC`
	return r.list(ctx, q, sellerID)
}

func (r *OfferRepo) list(ctx context.Context, q string, arg any) ([]model.Offer, error) {
	rows, err := r.db.Pool.Query(ctx, q, arg)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	out := []model.Offer{}
	for rows.Next() {
		var o model.Offer
		if err := rows.Scan(&o.ID, &o.RequestID, &o.SellerID, &o.Price, &o.Condition, &o.Message, &o.EtaDays, &o.CreatedAt); err != nil {
			return nil, storeErr(err)
		}
		out = append(out, o)
	}
	return out, storeErr(rows.Err())
}
