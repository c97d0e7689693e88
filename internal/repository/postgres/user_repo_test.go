package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/ricardobalbino/mercadolivreInverse/internal/errs"
	"github.com/ricardobalbino/mercadolivreInverse/internal/model"
)

func newDB(t *testing.T) (*DB, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return &DB{Pool: mock}, mock
}

func TestUserRepo_CreateIfAbsent(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)

	ctx := context.Background()
	now := time.Now().UTC()
	id := uuid.Must(uuid.NewV4())
	u := &model.User{ID: id, DisplayName: "Loja Centro SP", Role: model.RoleSeller, City: "São Paulo", CreatedAt: now}

	mock.ExpectExec(`INSERT INTO users .+ ON CONFLICT \(id\) DO NOTHING`).
		WithArgs(id, "Loja Centro SP", model.RoleSeller, "São Paulo", float64(0), now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, r.CreateIfAbsent(ctx, u))

	// second call conflicts silently: zero rows affected is still success
	mock.ExpectExec(`INSERT INTO users .+ ON CONFLICT \(id\) DO NOTHING`).
		WithArgs(id, "Loja Centro SP", model.RoleSeller, "São Paulo", float64(0), now).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	require.NoError(t, r.CreateIfAbsent(ctx, u))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByID_OK_And_NotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)

	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())
	ts := time.Now().UTC()

	mock.ExpectQuery(`SELECT id, display_name, role, city, reputation, created_at FROM users WHERE id=\$1`).
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows([]string{"id", "display_name", "role", "city", "reputation", "created_at"}).
			AddRow(id, "Ricardo", model.RoleBuyer, "São Paulo", 4.7, ts))

	u, err := r.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Ricardo", u.DisplayName)
	require.Equal(t, model.RoleBuyer, u.Role)
	require.Equal(t, 4.7, u.ReputationScore)

	mock.ExpectQuery(`SELECT id, display_name, role, city, reputation, created_at FROM users WHERE id=\$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	_, err = r.GetByID(ctx, id)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUserRepo_UpdateProfile(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)

	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	mock.ExpectExec(`UPDATE users SET display_name=\$2, city=\$3 WHERE id=\$1`).
		WithArgs(id, "Novo Nome", "Campinas").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, r.UpdateProfile(ctx, id, "Novo Nome", "Campinas"))

	mock.ExpectExec(`UPDATE users SET display_name=\$2, city=\$3 WHERE id=\$1`).
		WithArgs(id, "Novo Nome", "Campinas").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.ErrorIs(t, r.UpdateProfile(ctx, id, "Novo Nome", "Campinas"), errs.ErrNotFound)
}
