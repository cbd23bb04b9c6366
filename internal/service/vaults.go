// Package service contains application services for vault lifecycle, lock
// state, record storage, presence-gated unlock and recovery.
package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/model"
	"github.com/and161185/lockbox/internal/policy"
	"github.com/and161185/lockbox/internal/repository"
)

// VaultService defines vault lifecycle and wrapped-key-blob operations.
// The server side never handles key material, only opaque blobs.
type VaultService interface {
	// Init creates the vault row and stores the initial passphrase blob.
	Init(ctx context.Context, v *model.Vault, blob *model.WrappedKeyBlob) error
	// Get loads the vault for an authenticated user.
	Get(ctx context.Context, userID uuid.UUID) (*model.Vault, error)
	// GetBlob releases the passphrase blob. Credential blobs are released only
	// through the unlock gate, recovery blobs only through redemption.
	GetBlob(ctx context.Context, userID uuid.UUID) (*model.WrappedKeyBlob, error)
	// Rewrap replaces the passphrase blob and salt; the KEK stays unchanged.
	// The vault must be unlocked.
	Rewrap(ctx context.Context, userID uuid.UUID, salt []byte, params model.KDFParams, blob *model.WrappedKeyBlob) error
	// PutCredentialBlob stores a credential-wrapped blob for a registered
	// gate credential. The vault must be unlocked.
	PutCredentialBlob(ctx context.Context, userID uuid.UUID, blob *model.WrappedKeyBlob) error
}

type VaultServiceImpl struct {
	vaults repository.VaultRepository
	blobs  repository.BlobRepository
	creds  repository.CredentialRepository
	reg    *policy.Registry
}

// NewVaultService constructs VaultService with required dependencies.
func NewVaultService(
	vaults repository.VaultRepository,
	blobs repository.BlobRepository,
	creds repository.CredentialRepository,
	reg *policy.Registry,
) *VaultServiceImpl {
	return &VaultServiceImpl{vaults: vaults, blobs: blobs, creds: creds, reg: reg}
}

// Init validates and persists a new vault with its initial passphrase wrap.
func (s *VaultServiceImpl) Init(ctx context.Context, v *model.Vault, blob *model.WrappedKeyBlob) error {
	if v == nil || blob == nil {
		return errors.New("validation: nil vault/blob")
	}
	if v.ID == uuid.Nil || v.UserID == uuid.Nil {
		return errors.New("validation: empty vault/user id")
	}
	if len(v.PassphraseSalt) == 0 {
		return errors.New("validation: empty passphrase salt")
	}
	if _, err := s.reg.Get(v.PolicyVersion); err != nil {
		return err
	}
	if err := validateBlob(blob, v.ID, model.WrapTypePassphrase); err != nil {
		return err
	}
	if err := s.vaults.Create(ctx, v); err != nil {
		return err
	}
	return s.blobs.Put(ctx, blob)
}

// Get loads the vault by owner.
func (s *VaultServiceImpl) Get(ctx context.Context, userID uuid.UUID) (*model.Vault, error) {
	if userID == uuid.Nil {
		return nil, errors.New("validation: empty userID")
	}
	return s.vaults.GetByUserID(ctx, userID)
}

// GetBlob releases the passphrase blob for the user's vault. Fetching a blob
// is always permitted; opening it requires the passphrase and happens on the
// client only.
func (s *VaultServiceImpl) GetBlob(ctx context.Context, userID uuid.UUID) (*model.WrappedKeyBlob, error) {
	v, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.blobs.Get(ctx, v.ID, model.WrapTypePassphrase, nil)
}

// Rewrap replaces the passphrase wrap. The vault must be unlocked: a locked
// vault means no device is holding the KEK, so a rewrap request cannot be genuine.
func (s *VaultServiceImpl) Rewrap(
	ctx context.Context, userID uuid.UUID, salt []byte, params model.KDFParams, blob *model.WrappedKeyBlob,
) error {
	v, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if v.Locked() {
		return errs.ErrVaultLocked
	}
	if len(salt) == 0 {
		return errors.New("validation: empty salt")
	}
	if err := validateBlob(blob, v.ID, model.WrapTypePassphrase); err != nil {
		return err
	}
	if _, err := s.reg.Get(blob.PolicyVersion); err != nil {
		return err
	}
	if err := s.blobs.Put(ctx, blob); err != nil {
		return err
	}
	return s.vaults.SetPassphraseParams(ctx, v.ID, blob.PolicyVersion, salt, params)
}

// PutCredentialBlob stores a KEK copy wrapped under a credential secret.
// The referenced gate credential must already be registered, otherwise the
// blob could never be released.
func (s *VaultServiceImpl) PutCredentialBlob(ctx context.Context, userID uuid.UUID, blob *model.WrappedKeyBlob) error {
	v, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if v.Locked() {
		return errs.ErrVaultLocked
	}
	if err := validateBlob(blob, v.ID, model.WrapTypeCredential); err != nil {
		return err
	}
	if len(blob.CredentialID) == 0 {
		return errors.New("validation: empty credential id")
	}
	if _, err := s.reg.Get(blob.PolicyVersion); err != nil {
		return err
	}
	if _, err := s.creds.Get(ctx, v.ID, blob.CredentialID); err != nil {
		return err
	}
	return s.blobs.Put(ctx, blob)
}

func validateBlob(b *model.WrappedKeyBlob, vaultID uuid.UUID, wt model.WrapType) error {
	if b == nil {
		return errors.New("validation: nil blob")
	}
	if b.ID == uuid.Nil || b.VaultID != vaultID {
		return errors.New("validation: blob vault mismatch")
	}
	if b.WrapType != wt {
		return errors.New("validation: unexpected wrap type")
	}
	if len(b.Nonce) == 0 || len(b.Ciphertext) == 0 || len(b.AAD) == 0 {
		return errors.New("validation: empty blob fields")
	}
	return nil
}
