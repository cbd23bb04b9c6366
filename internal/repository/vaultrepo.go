// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/and161185/lockbox/internal/model"
	"github.com/gofrs/uuid/v5"
)

// VaultRepository provides access to the single authoritative vault row per
// user. Every mutation is a single atomic statement or transaction scoped to
// that row; racing devices never lose an update, the loser observes its action
// already reflected.
type VaultRepository interface {
	// Create inserts a new vault. Returns ErrAlreadyExists if the user has one.
	Create(ctx context.Context, v *model.Vault) error

	// GetByUserID loads a vault by owner.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Vault, error)

	// GetState returns the poll contract fields {locked, lock_reason, generation}.
	GetState(ctx context.Context, vaultID uuid.UUID) (model.LockState, error)

	// Lock transitions to Locked, increments the generation and appends a lock
	// event in the same transaction. Returns the new generation.
	Lock(ctx context.Context, vaultID uuid.UUID, reason model.LockReason, enforceTier int32) (int64, error)

	// ConfirmUnlock transitions to Unlocked guarded by the generation the
	// client observed when its unlock ceremony started. Returns the new
	// generation, or ErrStaleGeneration if a newer lock won the race.
	ConfirmUnlock(ctx context.Context, vaultID uuid.UUID, observedGen int64) (int64, error)

	// SetPassphraseParams records the salt and KDF parameters of the current
	// passphrase wrap (updated on rewrap and policy migration).
	SetPassphraseParams(ctx context.Context, vaultID uuid.UUID, policyVersion uint32, salt []byte, params model.KDFParams) error
}

// BlobRepository stores wrapped key blobs. One blob per (vault, wrap_type,
// credential_id); recovery blobs are managed through RecoveryCodeRepository.
type BlobRepository interface {
	// Put inserts or replaces a blob for its (vault, wrap_type, credential_id) slot.
	Put(ctx context.Context, b *model.WrappedKeyBlob) error

	// Get loads a blob by slot. credentialID is nil for passphrase wraps.
	Get(ctx context.Context, vaultID uuid.UUID, wrapType model.WrapType, credentialID []byte) (*model.WrappedKeyBlob, error)
}
