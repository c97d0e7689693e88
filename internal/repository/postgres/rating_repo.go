package postgres

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/ricardobalbino/mercadolivreInverse/internal/errs"
	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
)

// RatingRepo implements RatingRepository using PostgreSQL.
type RatingRepo struct{ db *DB }

// NewRatingRepo constructs a rating repository.
func NewRatingRepo(db *DB) *RatingRepo { return &RatingRepo{db: db} }

// Create inserts the rating and refreshes the ratee's reputation score in
// the same transaction, so the score never drifts from the stored ratings.
func (r *RatingRepo) Create(ctx context.Context, rt *model.Rating) (err error) {
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

	const ins = `
INSERT INTO ratings (id, request_id, rater_id, ratee_id, score, comment, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	const refresh = `
UPDATE users SET reputation = (SELECT AVG(score) FROM ratings WHERE ratee_id=$1)
WHERE id=$1`

	if _, err = tx.Exec(ctx, ins,
		rt.ID, rt.RequestID, rt.RaterID, rt.RateeID, rt.Score, rt.Comment, rt.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			err = fmt.Errorf("%w: request already rated by this user", errs.ErrValidation)
			return err
		}
		err = storeErr(err)
		return err
	}
	if _, err = tx.Exec(ctx, refresh, rt.RateeID); err != nil {
		err = storeErr(err)
		return err
	}
	return nil
}

// ListByRatee returns ratings received by a user, newest-first.
func (r *RatingRepo) ListByRatee(ctx context.Context, rateeID uuid.UUID) ([]model.Rating, error) {
	const q = `
SELECT id, request_id, rater_id, ratee_id, score, comment, created_at
FROM ratings
WHERE ratee_id=$1
ORDER BY created_at DESC`
	rows, err := r.db.Pool.Query(ctx, q, rateeID)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	out := []model.Rating{}
	for rows.Next() {
		var rt model.Rating
		if err := rows.Scan(&rt.ID, &rt.RequestID, &rt.RaterID, &rt.RateeID, &rt.Score, &rt.Comment, &rt.CreatedAt); err != nil {
			return nil, storeErr(err)
		}
		out = append(out, rt)
	}
	return out, storeErr(rows.Err())
}
