package postgres

import (
	"context"
	"errors"

	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// BlobRepo implements BlobRepository using PostgreSQL. The server only ever
// sees these rows as opaque bytes.
type BlobRepo struct{ db *DB }

// NewBlobRepo constructs a wrapped-key-blob repository.
func NewBlobRepo(db *DB) *BlobRepo { return &BlobRepo{db: db} }

// Put inserts or replaces the blob occupying (vault_id, wrap_type, credential_id).
// Replacement is how rewrap works: the KEK stays the same, the wrap changes.
func (r *BlobRepo) Put(ctx context.Context, b *model.WrappedKeyBlob) error {
	const q = `
INSERT INTO wrapped_key_blobs (id, vault_id, wrap_type, wrap_version, policy_version, credential_id, salt, nonce, ciphertext, aad)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (vault_id, wrap_type, credential_id) DO UPDATE
SET id=EXCLUDED.id, wrap_version=EXCLUDED.wrap_version, policy_version=EXCLUDED.policy_version,
    salt=EXCLUDED.salt, nonce=EXCLUDED.nonce, ciphertext=EXCLUDED.ciphertext, aad=EXCLUDED.aad,
    created_at=now()`
	_, err := r.db.Pool.Exec(ctx, q,
		b.ID, b.VaultID, string(b.WrapType), b.WrapVersion, b.PolicyVersion,
		credKey(b.CredentialID), b.Salt, b.Nonce, b.Ciphertext, b.AAD)
	return err
}

// Get loads the blob for a slot.
func (r *BlobRepo) Get(
	ctx context.Context, vaultID uuid.UUID, wrapType model.WrapType, credentialID []byte,
) (*model.WrappedKeyBlob, error) {
	const q = `
SELECT id, vault_id, wrap_type, wrap_version, policy_version, credential_id, salt, nonce, ciphertext, aad, created_at
FROM wrapped_key_blobs
WHERE vault_id=$1 AND wrap_type=$2 AND credential_id=$3`
	row := r.db.Pool.QueryRow(ctx, q, vaultID, string(wrapType), credKey(credentialID))
	return scanBlob(row)
}

// credKey normalizes a nil credential id to empty bytes so the unique index
// treats "no credential" as a single slot.
func credKey(id []byte) []byte {
	if id == nil {
		return []byte{}
	}
	return id
}

func scanBlob(row pgx.Row) (*model.WrappedKeyBlob, error) {
	var (
		b        model.WrappedKeyBlob
		wrapType string
	)
	if err := row.Scan(&b.ID, &b.VaultID, &wrapType, &b.WrapVersion, &b.PolicyVersion,
		&b.CredentialID, &b.Salt, &b.Nonce, &b.Ciphertext, &b.AAD, &b.CreatedAt); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	b.WrapType = model.WrapType(wrapType)
	if len(b.CredentialID) == 0 {
		b.CredentialID = nil
	}
	return &b, nil
}
