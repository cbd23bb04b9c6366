package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/limiter"
	"github.com/and161185/lockbox/internal/model"
	"github.com/and161185/lockbox/internal/repository"
)

// RecoveryService stores recovery code hashes and releases recovery blobs.
// Plaintext codes never reach the server; only SHA-256 hashes cross the wire
// at issue time, and redemption looks up by hash.
type RecoveryService interface {
	// Replace installs a freshly issued code set, invalidating all previously
	// issued unused codes. The vault must be unlocked.
	Replace(ctx context.Context, userID uuid.UUID, issues []model.RecoveryIssue) error
	// List returns code metadata only (issued/consumed timestamps).
	List(ctx context.Context, userID uuid.UUID) ([]model.RecoveryCode, error)
	// Redeem consumes a matching unused code and releases its blob. Rate
	// limited per (vault, ip): redemption attempts are the one place the
	// server observes secret-bearing guesses.
	Redeem(ctx context.Context, userID uuid.UUID, codeHash []byte, ip string) (*model.WrappedKeyBlob, error)
}

// SHA-256 digest length for code hashes.
const codeHashLen = 32

type RecoveryServiceImpl struct {
	vaults repository.VaultRepository
	codes  repository.RecoveryCodeRepository
	lim    limiter.Limiter
}

// NewRecoveryService constructs RecoveryService with required dependencies.
func NewRecoveryService(vaults repository.VaultRepository, codes repository.RecoveryCodeRepository, lim limiter.Limiter) *RecoveryServiceImpl {
	return &RecoveryServiceImpl{vaults: vaults, codes: codes, lim: lim}
}

// Replace validates and installs a new recovery issue set.
func (s *RecoveryServiceImpl) Replace(ctx context.Context, userID uuid.UUID, issues []model.RecoveryIssue) error {
	v, err := s.getVault(ctx, userID)
	if err != nil {
		return err
	}
	if v.Locked() {
		return errs.ErrVaultLocked
	}
	if len(issues) == 0 {
		return errors.New("validation: empty issue set")
	}
	for i := range issues {
		if len(issues[i].CodeHash) != codeHashLen {
			return fmt.Errorf("validation: issue[%d] bad code hash length", i)
		}
		b := &issues[i].Blob
		if b.ID == uuid.Nil || b.VaultID != v.ID || b.WrapType != model.WrapTypeRecovery {
			return fmt.Errorf("validation: issue[%d] bad blob", i)
		}
		if len(b.Salt) == 0 || len(b.Nonce) == 0 || len(b.Ciphertext) == 0 || len(b.AAD) == 0 {
			return fmt.Errorf("validation: issue[%d] empty blob fields", i)
		}
	}
	return s.codes.Replace(ctx, v.ID, issues)
}

// List returns code metadata for the user's vault.
func (s *RecoveryServiceImpl) List(ctx context.Context, userID uuid.UUID) ([]model.RecoveryCode, error) {
	v, err := s.getVault(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.codes.List(ctx, v.ID)
}

// Redeem applies rate limiting, then consumes the code atomically. A failed
// lookup counts as a failed attempt; the generic error does not reveal whether
// the code was wrong or already used.
func (s *RecoveryServiceImpl) Redeem(
	ctx context.Context, userID uuid.UUID, codeHash []byte, ip string,
) (*model.WrappedKeyBlob, error) {
	if len(codeHash) != codeHashLen {
		return nil, errs.ErrRecoveryCodeInvalidOrUsed
	}
	v, err := s.getVault(ctx, userID)
	if err != nil {
		return nil, err
	}

	ipHash := limiter.HashIP(ip)
	allowed, _, err := s.lim.Allow(ctx, v.ID, ipHash)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errs.ErrRateLimited
	}

	blob, err := s.codes.Redeem(ctx, v.ID, codeHash)
	if err != nil {
		if errors.Is(err, errs.ErrRecoveryCodeInvalidOrUsed) {
			if blocked, _, ferr := s.lim.Failure(ctx, v.ID, ipHash); ferr == nil && blocked {
				return nil, errs.ErrRateLimited
			}
		}
		return nil, err
	}
	_ = s.lim.Success(ctx, v.ID, ipHash)
	return blob, nil
}

func (s *RecoveryServiceImpl) getVault(ctx context.Context, userID uuid.UUID) (*model.Vault, error) {
	if userID == uuid.Nil {
		return nil, errors.New("validation: empty userID")
	}
	return s.vaults.GetByUserID(ctx, userID)
}
