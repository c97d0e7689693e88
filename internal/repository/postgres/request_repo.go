package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/ricardobalbino/mercadolivreInverse/internal/errs"
	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
)

// RequestRepo implements RequestRepository using PostgreSQL.
type RequestRepo struct{ db *DB }

// NewRequestRepo constructs a request repository.
func NewRequestRepo(db *DB) *RequestRepo { return &RequestRepo{db: db} }

const requestCols = `id, title, category, description, max_price, radius_km, city, buyer_id, status, accepted_offer_id, created_at`

// Create inserts a new request row.
func (r *RequestRepo) Create(ctx context.Context, req *model.Request) error {
	const q = `
INSERT INTO requests (id, title, category, description, max_price, radius_km, city, buyer_id, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Pool.Exec(ctx, q,
		req.ID, req.Title, req.Category, req.Description,
		req.MaxPrice, req.RadiusKm, req.City, req.BuyerID, req.Status, req.CreatedAt)
	return storeErr(err)
}

// GetByID selects a request by ID.
func (r *RequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Request, error) {
	const q = `
SELECT ` + requestCols + `
FROM requests WHERE id=$1`
	req, err := scanRequest(r.db.Pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, storeErr(err)
	}
	return req, nil
}

// List returns requests newest-first with optional pagination.
func (r *RequestRepo) List(ctx context.Context, limit, offset int) ([]model.Request, error) {
	const q = `
SELECT ` + requestCols + `
FROM requests
ORDER BY created_at DESC
LIMIT NULLIF($1, 0) OFFSET $2`
	if limit < 0 {
		limit = 0
	}
	rows, err := r.db.Pool.Query(ctx, q, limit, offset)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	out := []model.Request{}
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, storeErr(err)
		}
		out = append(out, *req)
	}
	return out, storeErr(rows.Err())
}

// Delete removes the request's offers and then the request itself inside one
// transaction, so the cascade is all-or-nothing.
func (r *RequestRepo) Delete(ctx context.Context, id uuid.UUID) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return storeErr(err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = storeErr(e)
		}
	}()

	const delOffers = `DELETE FROM offers WHERE request_id=$1`
	const delRequest = `DELETE FROM requests WHERE id=$1`

	if _, err = tx.Exec(ctx, delOffers, id); err != nil {
		return storeErr(err)
	}
	tag, execErr := tx.Exec(ctx, delRequest, id)
	if execErr != nil {
		err = storeErr(execErr)
		return err
	}
	if tag.RowsAffected() == 0 {
		err = errs.ErrNotFound
		return err
	}
	return nil
}

// Accept performs a compare-and-set transition to ACCEPTED. The WHERE clause
// guards the state machine: a request that already left OPEN is never
// overwritten, regardless of concurrent callers.
func (r *RequestRepo) Accept(ctx context.Context, requestID, offerID uuid.UUID) error {
	const cas = `
UPDATE requests SET status='ACCEPTED', accepted_offer_id=$2
WHERE id=$1 AND status='OPEN'`
	tag, err := r.db.Pool.Exec(ctx, cas, requestID, offerID)
	if err != nil {
		return storeErr(err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Zero rows: either the request is gone or it was accepted first.
	const probe = `SELECT status FROM requests WHERE id=$1`
	var status model.RequestStatus
	if err := r.db.Pool.QueryRow(ctx, probe, requestID).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.ErrNotFound
		}
		return storeErr(err)
	}
	return errs.ErrAlreadyAccepted
}

// scanRequest reads a request row, unwrapping the nullable accepted offer id.
func scanRequest(row pgx.Row) (*model.Request, error) {
	var (
		req      model.Request
		accepted uuid.NullUUID
	)
	if err := row.Scan(&req.ID, &req.Title, &req.Category, &req.Description,
		&req.MaxPrice, &req.RadiusKm, &req.City, &req.BuyerID,
		&req.Status, &accepted, &req.CreatedAt); err != nil {
		return nil, err
	}
	if accepted.Valid {
		id := accepted.UUID
		req.AcceptedOfferID = &id
	}
	return &req, nil
}
