package repository

import (
	"context"

	"github.com/and161185/lockbox/internal/model"
	"github.com/gofrs/uuid/v5"
)

// RecoveryCodeRepository stores recovery code hashes and their associated
// recovery-wrapped blobs. Codes are single-use; consumption is guarded by an
// atomic conditional update so concurrent redemptions yield exactly one winner.
type RecoveryCodeRepository interface {
	// Replace atomically deletes all unused codes (and their blobs) for the
	// vault and inserts the new issue set.
	Replace(ctx context.Context, vaultID uuid.UUID, issues []model.RecoveryIssue) error

	// List returns code metadata (never code material), newest first.
	List(ctx context.Context, vaultID uuid.UUID) ([]model.RecoveryCode, error)

	// Redeem marks the matching unused code consumed and returns its blob.
	// Returns ErrRecoveryCodeInvalidOrUsed if the hash is unknown or already used.
	Redeem(ctx context.Context, vaultID uuid.UUID, codeHash []byte) (*model.WrappedKeyBlob, error)
}
