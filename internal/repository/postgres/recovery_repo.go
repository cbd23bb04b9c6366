package postgres

import (
	"context"
	"errors"

	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// RecoveryRepo implements RecoveryCodeRepository using PostgreSQL. The unique
// index on code_hash plus the conditional used_at update make redemption
// single-use under concurrent attempts without advisory locks.
type RecoveryRepo struct{ db *DB }

// NewRecoveryRepo constructs a recovery-code repository.
func NewRecoveryRepo(db *DB) *RecoveryRepo { return &RecoveryRepo{db: db} }

// Replace drops all unused codes and their blobs for the vault and inserts the
// new issue set in one transaction, so a generate call invalidates every
// previously issued unused code.
func (r *RecoveryRepo) Replace(
	ctx context.Context, vaultID uuid.UUID, issues []model.RecoveryIssue,
) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const delBlobs = `
DELETE FROM wrapped_key_blobs
WHERE id IN (SELECT blob_id FROM recovery_codes WHERE vault_id=$1 AND used_at IS NULL)`
	const delCodes = `DELETE FROM recovery_codes WHERE vault_id=$1 AND used_at IS NULL`
	if _, err = tx.Exec(ctx, delBlobs, vaultID); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, delCodes, vaultID); err != nil {
		return err
	}

	const insBlob = `
INSERT INTO wrapped_key_blobs (id, vault_id, wrap_type, wrap_version, policy_version, credential_id, salt, nonce, ciphertext, aad)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	const insCode = `
INSERT INTO recovery_codes (id, vault_id, code_hash, blob_id)
VALUES (gen_random_uuid(), $1, $2, $3)`
	for i := range issues {
		b := &issues[i].Blob
		if _, err = tx.Exec(ctx, insBlob,
			b.ID, b.VaultID, string(b.WrapType), b.WrapVersion, b.PolicyVersion,
			credKey(b.CredentialID), b.Salt, b.Nonce, b.Ciphertext, b.AAD); err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, insCode, vaultID, issues[i].CodeHash, b.ID); err != nil {
			return err
		}
	}
	return nil
}

// List returns code metadata for the vault, newest first. Code material never
// leaves the row as anything but a hash.
func (r *RecoveryRepo) List(ctx context.Context, vaultID uuid.UUID) ([]model.RecoveryCode, error) {
	const q = `
SELECT id, vault_id, code_hash, used_at, created_at
FROM recovery_codes WHERE vault_id=$1
ORDER BY created_at DESC`
	rows, err := r.db.Pool.Query(ctx, q, vaultID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RecoveryCode
	for rows.Next() {
		var c model.RecoveryCode
		if err = rows.Scan(&c.ID, &c.VaultID, &c.CodeHash, &c.UsedAt, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Redeem consumes the matching unused code and returns its blob. The
// conditional update is the single point of contention: of two simultaneous
// redemptions exactly one sees used_at IS NULL.
func (r *RecoveryRepo) Redeem(
	ctx context.Context, vaultID uuid.UUID, codeHash []byte,
) (blob *model.WrappedKeyBlob, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const upd = `
UPDATE recovery_codes SET used_at=now()
WHERE vault_id=$1 AND code_hash=$2 AND used_at IS NULL
RETURNING blob_id`
	var blobID uuid.UUID
	if err = tx.QueryRow(ctx, upd, vaultID, codeHash).Scan(&blobID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrRecoveryCodeInvalidOrUsed
		}
		return nil, err
	}

	const sel = `
SELECT id, vault_id, wrap_type, wrap_version, policy_version, credential_id, salt, nonce, ciphertext, aad, created_at
FROM wrapped_key_blobs WHERE id=$1`
	blob, err = scanBlob(tx.QueryRow(ctx, sel, blobID))
	if err != nil {
		return nil, err
	}
	return blob, nil
}
