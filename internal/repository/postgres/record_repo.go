package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// RecordRepo implements RecordRepository using PostgreSQL.
type RecordRepo struct{ db *DB }

// NewRecordRepo constructs an encrypted-record repository.
func NewRecordRepo(db *DB) *RecordRepo { return &RecordRepo{db: db} }

// UpsertBatch inserts/updates records with optimistic concurrency and returns new versions.
func (r *RecordRepo) UpsertBatch(
	ctx context.Context, vaultID uuid.UUID, ups []model.UpsertRecord,
) (results []model.RecordVersion, err error) {
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

	results = make([]model.RecordVersion, 0, len(ups))
	const sel = `SELECT ver FROM records WHERE id=$1 AND vault_id=$2 FOR UPDATE`
	const ins = `
INSERT INTO records (id, vault_id, record_type, policy_version, nonce, ciphertext, aad, ver, deleted)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,false)`
	const upd = `
UPDATE records SET record_type=$3, policy_version=$4, nonce=$5, ciphertext=$6, aad=$7, ver=$8, deleted=false
WHERE id=$1 AND vault_id=$2`

	for i, up := range ups {
		var curVer int64
		row := tx.QueryRow(ctx, sel, up.ID, vaultID)
		scanErr := row.Scan(&curVer)
		switch {
		case scanErr == nil:
			if curVer != up.BaseVer {
				return nil, fmt.Errorf("record[%d]: %w", i, errs.ErrVersionConflict)
			}
			newVer := curVer + 1
			if _, err = tx.Exec(ctx, upd, up.ID, vaultID, up.RecordType, up.PolicyVersion,
				up.Nonce, up.Ciphertext, up.AAD, newVer); err != nil {
				return nil, err
			}
			results = append(results, model.RecordVersion{ID: up.ID, NewVer: newVer})
		case errors.Is(scanErr, pgx.ErrNoRows):
			if up.BaseVer != 0 {
				return nil, fmt.Errorf("record[%d]: %w", i, errs.ErrVersionConflict)
			}
			if _, err = tx.Exec(ctx, ins, up.ID, vaultID, up.RecordType, up.PolicyVersion,
				up.Nonce, up.Ciphertext, up.AAD, int64(1)); err != nil {
				return nil, err
			}
			results = append(results, model.RecordVersion{ID: up.ID, NewVer: 1})
		default:
			return nil, scanErr
		}
	}
	return results, nil
}

// Delete marks a record as deleted (tombstone) with version increment.
func (r *RecordRepo) Delete(
	ctx context.Context, vaultID, recordID uuid.UUID, baseVer int64,
) (ver model.RecordVersion, err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.RecordVersion{}, err
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

	const sel = `SELECT ver FROM records WHERE id=$1 AND vault_id=$2 FOR UPDATE`
	const upd = `UPDATE records SET deleted=true, nonce=NULL, ciphertext=NULL, aad=NULL, ver=$3 WHERE id=$1 AND vault_id=$2`

	var curVer int64
	if err = tx.QueryRow(ctx, sel, recordID, vaultID).Scan(&curVer); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RecordVersion{}, errs.ErrNotFound
		}
		return model.RecordVersion{}, err
	}
	if curVer != baseVer {
		return model.RecordVersion{}, errs.ErrVersionConflict
	}
	newVer := curVer + 1
	if _, err = tx.Exec(ctx, upd, recordID, vaultID, newVer); err != nil {
		return model.RecordVersion{}, err
	}
	return model.RecordVersion{ID: recordID, NewVer: newVer}, nil
}

// GetChangesSince returns changes strictly after the provided version.
func (r *RecordRepo) GetChangesSince(ctx context.Context, vaultID uuid.UUID, sinceVer int64) ([]model.RecordChange, error) {
	const q = `
SELECT id, ver, deleted, updated_at, record_type, policy_version, nonce, ciphertext, aad
FROM records
WHERE vault_id=$1 AND ver>$2
ORDER BY ver ASC`
	rows, err := r.db.Pool.Query(ctx, q, vaultID, sinceVer)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RecordChange
	for rows.Next() {
		var (
			ch             model.RecordChange
			ts             time.Time
			nonce, ct, aad []byte
		)
		if err = rows.Scan(&ch.ID, &ch.Ver, &ch.Deleted, &ts, &ch.RecordType,
			&ch.PolicyVersion, &nonce, &ct, &aad); err != nil {
			return nil, err
		}
		ch.UpdatedAt = ts
		if !ch.Deleted {
			ch.Nonce, ch.Ciphertext, ch.AAD = nonce, ct, aad
		}
		out = append(out, ch)
	}
	return out, rows.Err()
}

// Get returns a single record by id.
func (r *RecordRepo) Get(ctx context.Context, vaultID, recordID uuid.UUID) (*model.EncryptedRecord, error) {
	const q = `
SELECT id, vault_id, record_type, policy_version, nonce, ciphertext, aad, ver, deleted, updated_at
FROM records WHERE vault_id=$1 AND id=$2`
	row := r.db.Pool.QueryRow(ctx, q, vaultID, recordID)
	var rec model.EncryptedRecord
	if err := row.Scan(&rec.ID, &rec.VaultID, &rec.RecordType, &rec.PolicyVersion,
		&rec.Nonce, &rec.Ciphertext, &rec.AAD, &rec.Ver, &rec.Deleted, &rec.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// GetMaxVersion returns the current maximum version for a vault.
func (r *RecordRepo) GetMaxVersion(ctx context.Context, vaultID uuid.UUID) (int64, error) {
	const q = `SELECT COALESCE(MAX(ver),0) FROM records WHERE vault_id=$1`
	var v int64
	if err := r.db.Pool.QueryRow(ctx, q, vaultID).Scan(&v); err != nil {
		return 0, err
	}
	return v, nil
}
