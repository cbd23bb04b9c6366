package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// VaultRepo implements VaultRepository using PostgreSQL. The generation column
// is only ever moved by single-statement increments, so there is no window in
// which racing devices can observe partial state.
type VaultRepo struct{ db *DB }

// NewVaultRepo constructs a vault repository.
func NewVaultRepo(db *DB) *VaultRepo { return &VaultRepo{db: db} }

// Create inserts a new vault row with generation 0 (unlocked).
func (r *VaultRepo) Create(ctx context.Context, v *model.Vault) error {
	params, err := json.Marshal(v.KDFParams)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO vaults (id, user_id, policy_version, passphrase_salt, kdf_params, enforce_tier, generation)
VALUES ($1, $2, $3, $4, $5, $6, 0)`
	_, err = r.db.Pool.Exec(ctx, q, v.ID, v.UserID, v.PolicyVersion, v.PassphraseSalt, params, v.EnforceTier)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// GetByUserID selects a vault by owner.
func (r *VaultRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Vault, error) {
	const q = `
SELECT id, user_id, policy_version, passphrase_salt, kdf_params, locked_at, lock_reason, enforce_tier, generation, created_at, updated_at
FROM vaults WHERE user_id=$1`
	row := r.db.Pool.QueryRow(ctx, q, userID)

	var (
		v      model.Vault
		params []byte
		reason *string
	)
	if err := row.Scan(&v.ID, &v.UserID, &v.PolicyVersion, &v.PassphraseSalt, &params,
		&v.LockedAt, &reason, &v.EnforceTier, &v.Generation, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	if err := json.Unmarshal(params, &v.KDFParams); err != nil {
		return nil, err
	}
	if reason != nil {
		v.LockReason = model.LockReason(*reason)
	}
	return &v, nil
}

// GetState returns the poll contract fields for a vault.
func (r *VaultRepo) GetState(ctx context.Context, vaultID uuid.UUID) (model.LockState, error) {
	const q = `
SELECT locked_at IS NOT NULL, COALESCE(lock_reason, ''), generation
FROM vaults WHERE id=$1`
	var st model.LockState
	var reason string
	if err := r.db.Pool.QueryRow(ctx, q, vaultID).Scan(&st.Locked, &reason, &st.Generation); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.LockState{}, errs.ErrNotFound
		}
		return model.LockState{}, err
	}
	st.LockReason = model.LockReason(reason)
	return st, nil
}

// Lock moves the vault to Locked, bumps the generation and records the event.
func (r *VaultRepo) Lock(
	ctx context.Context, vaultID uuid.UUID, reason model.LockReason, enforceTier int32,
) (gen int64, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
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
UPDATE vaults
SET locked_at=now(), lock_reason=$2, enforce_tier=$3, generation=generation+1, updated_at=now()
WHERE id=$1
RETURNING generation`
	if err = tx.QueryRow(ctx, upd, vaultID, string(reason), enforceTier).Scan(&gen); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errs.ErrNotFound
		}
		return 0, err
	}

	const ev = `
INSERT INTO vault_lock_events (id, vault_id, generation, locked, lock_reason)
VALUES (gen_random_uuid(), $1, $2, true, $3)`
	if _, err = tx.Exec(ctx, ev, vaultID, gen, string(reason)); err != nil {
		return 0, err
	}
	return gen, nil
}

// ConfirmUnlock moves the vault to Unlocked only if the generation the client
// observed is still current. A newer remote lock makes the guard fail and the
// unlock is rejected as stale.
func (r *VaultRepo) ConfirmUnlock(
	ctx context.Context, vaultID uuid.UUID, observedGen int64,
) (gen int64, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
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
UPDATE vaults
SET locked_at=NULL, lock_reason=NULL, generation=generation+1, updated_at=now()
WHERE id=$1 AND generation=$2
RETURNING generation`
	err = tx.QueryRow(ctx, upd, vaultID, observedGen).Scan(&gen)
	if errors.Is(err, pgx.ErrNoRows) {
		const sel = `SELECT generation FROM vaults WHERE id=$1`
		var cur int64
		if scanErr := tx.QueryRow(ctx, sel, vaultID).Scan(&cur); scanErr != nil {
			if errors.Is(scanErr, pgx.ErrNoRows) {
				return 0, errs.ErrNotFound
			}
			return 0, scanErr
		}
		return 0, errs.ErrStaleGeneration
	}
	if err != nil {
		return 0, err
	}

	const ev = `
INSERT INTO vault_lock_events (id, vault_id, generation, locked, lock_reason)
VALUES (gen_random_uuid(), $1, $2, false, '')`
	if _, err = tx.Exec(ctx, ev, vaultID, gen); err != nil {
		return 0, err
	}
	return gen, nil
}

// SetPassphraseParams records the active passphrase wrap parameters.
func (r *VaultRepo) SetPassphraseParams(
	ctx context.Context, vaultID uuid.UUID, policyVersion uint32, salt []byte, params model.KDFParams,
) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return err
	}
	const q = `
UPDATE vaults
SET policy_version=$2, passphrase_salt=$3, kdf_params=$4, updated_at=now()
WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q, vaultID, policyVersion, salt, raw)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
