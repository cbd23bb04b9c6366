// Package vaultclient is the device-side half of the vault protocol: it holds
// the unlocked master key, runs unlock ceremonies and reconciles lock state
// against the server's generation counter. The server never sees anything this
// package derives.
package vaultclient

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/lockbox/internal/model"
)

// VaultInfo is the server-side view a device needs before it can unlock:
// identity, current lock state and the passphrase KDF inputs.
type VaultInfo struct {
	VaultID        uuid.UUID
	State          model.LockState
	PolicyVersion  uint32
	PassphraseSalt []byte
	KDFParams      model.KDFParams
}

// API is the transport seam to the vault server. The gRPC client implements
// it; tests substitute fakes.
type API interface {
	// InitVault creates the vault with its initial passphrase blob.
	InitVault(ctx context.Context, vaultID uuid.UUID, policyVersion uint32, salt []byte, params model.KDFParams, blob *model.WrappedKeyBlob) error
	// VaultInfo returns lock state plus passphrase KDF inputs.
	VaultInfo(ctx context.Context) (*VaultInfo, error)
	// Lock applies a lock transition and returns the new generation.
	Lock(ctx context.Context, reason model.LockReason) (int64, error)
	// ConfirmUnlock records a completed unlock against the observed generation.
	ConfirmUnlock(ctx context.Context, observedGen int64) (int64, error)
	// PassphraseBlob fetches the passphrase-wrapped key blob.
	PassphraseBlob(ctx context.Context) (*model.WrappedKeyBlob, error)
	// Rewrap replaces the passphrase wrap on the server.
	Rewrap(ctx context.Context, salt []byte, params model.KDFParams, blob *model.WrappedKeyBlob) error
	// PutCredentialBlob stores a credential-wrapped blob.
	PutCredentialBlob(ctx context.Context, blob *model.WrappedKeyBlob) error
	// ReplaceRecoveryCodes installs a new recovery issue set, invalidating
	// every unused code.
	ReplaceRecoveryCodes(ctx context.Context, issues []model.RecoveryIssue) error
	// RedeemRecoveryCode consumes a code and returns its blob.
	RedeemRecoveryCode(ctx context.Context, codeHash []byte) (*model.WrappedKeyBlob, error)
}
