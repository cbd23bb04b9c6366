package postgres

import (
	"context"
	"errors"

	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// CredentialRepo implements CredentialRepository using PostgreSQL.
type CredentialRepo struct{ db *DB }

// NewCredentialRepo constructs a presence-credential repository.
func NewCredentialRepo(db *DB) *CredentialRepo { return &CredentialRepo{db: db} }

// Add inserts a credential row.
func (r *CredentialRepo) Add(ctx context.Context, c *model.GateCredential) error {
	const q = `
INSERT INTO gate_credentials (vault_id, cred_id, credential, sign_count)
VALUES ($1, $2, $3, $4)`
	_, err := r.db.Pool.Exec(ctx, q, c.VaultID, c.CredID, c.Credential, c.SignCount)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Get selects one credential by id.
func (r *CredentialRepo) Get(ctx context.Context, vaultID uuid.UUID, credID []byte) (*model.GateCredential, error) {
	const q = `
SELECT vault_id, cred_id, credential, sign_count, created_at
FROM gate_credentials WHERE vault_id=$1 AND cred_id=$2`
	row := r.db.Pool.QueryRow(ctx, q, vaultID, credID)
	var c model.GateCredential
	if err := row.Scan(&c.VaultID, &c.CredID, &c.Credential, &c.SignCount, &c.CreatedAt); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, errs.ErrNotFound
	}
	return &c, nil
}

// List returns all credentials for a vault.
func (r *CredentialRepo) List(ctx context.Context, vaultID uuid.UUID) ([]model.GateCredential, error) {
	const q = `
SELECT vault_id, cred_id, credential, sign_count, created_at
FROM gate_credentials WHERE vault_id=$1
ORDER BY created_at ASC`
	rows, err := r.db.Pool.Query(ctx, q, vaultID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.GateCredential
	for rows.Next() {
		var c model.GateCredential
		if err = rows.Scan(&c.VaultID, &c.CredID, &c.Credential, &c.SignCount, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpdateSignCount persists the replay counter after a verified assertion.
func (r *CredentialRepo) UpdateSignCount(ctx context.Context, vaultID uuid.UUID, credID []byte, signCount uint32) error {
	const q = `UPDATE gate_credentials SET sign_count=$3 WHERE vault_id=$1 AND cred_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, vaultID, credID, signCount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// GateSessionRepo implements GateSessionRepository using PostgreSQL.
type GateSessionRepo struct{ db *DB }

// NewGateSessionRepo constructs a challenge-session repository.
func NewGateSessionRepo(db *DB) *GateSessionRepo { return &GateSessionRepo{db: db} }

// Put inserts a session row.
func (r *GateSessionRepo) Put(ctx context.Context, s *model.GateSession) error {
	const q = `
INSERT INTO gate_sessions (id, vault_id, kind, data, expires_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Pool.Exec(ctx, q, s.ID, s.VaultID, s.Kind, s.Data, s.ExpiresAt)
	return err
}

// Take deletes and returns a session in one statement, so a challenge can be
// attempted at most once no matter how the attempt ends.
func (r *GateSessionRepo) Take(ctx context.Context, id string) (*model.GateSession, error) {
	const q = `
DELETE FROM gate_sessions WHERE id=$1
RETURNING id, vault_id, kind, data, expires_at, created_at`
	row := r.db.Pool.QueryRow(ctx, q, id)
	var s model.GateSession
	if err := row.Scan(&s.ID, &s.VaultID, &s.Kind, &s.Data, &s.ExpiresAt, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}
