package postgres

import (
	"context"
	"testing"

	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

func TestCredentialRepo_Add_Duplicate(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCredentialRepo(db)

	c := &model.GateCredential{
		VaultID: uuid.Must(uuid.NewV4()), CredID: []byte("cred"),
		Credential: []byte(`{"id":"cred"}`), SignCount: 0,
	}

	mock.ExpectExec(`INSERT INTO gate_credentials`).
		WithArgs(c.VaultID, c.CredID, c.Credential, c.SignCount).
		WillReturnError(uniqueViolation())

	require.ErrorIs(t, r.Add(context.Background(), c), errs.ErrAlreadyExists)
}

func TestCredentialRepo_UpdateSignCount_NotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewCredentialRepo(db)

	vaultID := uuid.Must(uuid.NewV4())
	mock.ExpectExec(`UPDATE gate_credentials SET sign_count=\$3`).
		WithArgs(vaultID, []byte("cred"), uint32(9)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.ErrorIs(t, r.UpdateSignCount(context.Background(), vaultID, []byte("cred"), 9), errs.ErrNotFound)
}

func TestGateSessionRepo_Take_DeletesAndReturns(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewGateSessionRepo(db)

	vaultID := uuid.Must(uuid.NewV4())
	mock.ExpectQuery(`DELETE FROM gate_sessions WHERE id=\$1`).
		WithArgs("sess-1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "vault_id", "kind", "data", "expires_at", "created_at",
		}).AddRow("sess-1", vaultID, "unlock", []byte(`{}`), sampleTime(), sampleTime()))

	s, err := r.Take(context.Background(), "sess-1")
	require.NoError(t, err)
	require.Equal(t, "unlock", s.Kind)
	require.Equal(t, vaultID, s.VaultID)
}

func TestGateSessionRepo_Take_AlreadyConsumed(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewGateSessionRepo(db)

	// the second attempt at the same challenge finds nothing to delete
	mock.ExpectQuery(`DELETE FROM gate_sessions WHERE id=\$1`).
		WithArgs("sess-1").
		WillReturnError(pgx.ErrNoRows)

	_, err := r.Take(context.Background(), "sess-1")
	require.ErrorIs(t, err, errs.ErrNotFound)
}
