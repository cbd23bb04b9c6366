package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func sampleTime() time.Time {
	return time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
}

func TestBlobRepo_Put_NormalizesNilCredentialID(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewBlobRepo(db)

	b := &model.WrappedKeyBlob{
		ID: uuid.Must(uuid.NewV4()), VaultID: uuid.Must(uuid.NewV4()),
		WrapType: model.WrapTypePassphrase, WrapVersion: 1, PolicyVersion: 1,
		Salt: []byte("s"), Nonce: []byte("n"), Ciphertext: []byte("ct"), AAD: []byte("aad"),
	}

	mock.ExpectExec(`INSERT INTO wrapped_key_blobs`).
		WithArgs(b.ID, b.VaultID, "passphrase", uint32(1), uint32(1),
			[]byte{}, []byte("s"), []byte("n"), []byte("ct"), []byte("aad")).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, r.Put(context.Background(), b))
}

func TestBlobRepo_Get_OK(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewBlobRepo(db)

	vaultID := uuid.Must(uuid.NewV4())
	blobID := uuid.Must(uuid.NewV4())
	credID := []byte("cred-1")

	mock.ExpectQuery(`SELECT id, vault_id, wrap_type`).
		WithArgs(vaultID, "credential", credID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "vault_id", "wrap_type", "wrap_version", "policy_version",
			"credential_id", "salt", "nonce", "ciphertext", "aad", "created_at",
		}).AddRow(blobID, vaultID, "credential", uint32(1), uint32(2),
			credID, []byte("s"), []byte("n"), []byte("ct"), []byte("aad"), sampleTime()))

	blob, err := r.Get(context.Background(), vaultID, model.WrapTypeCredential, credID)
	require.NoError(t, err)
	require.Equal(t, blobID, blob.ID)
	require.Equal(t, uint32(2), blob.PolicyVersion)
	require.Equal(t, credID, blob.CredentialID)
}

func TestBlobRepo_Get_NotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewBlobRepo(db)

	vaultID := uuid.Must(uuid.NewV4())
	mock.ExpectQuery(`SELECT id, vault_id, wrap_type`).
		WithArgs(vaultID, "passphrase", []byte{}).
		WillReturnError(pgx.ErrNoRows)

	_, err := r.Get(context.Background(), vaultID, model.WrapTypePassphrase, nil)
	require.ErrorIs(t, err, errs.ErrNotFound)
}
