package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/lockbox/internal/model"
	"github.com/and161185/lockbox/internal/repository"
)

// LockCoordinator is the server-authoritative half of the lock state machine.
// It owns the per-vault generation counter: every transition increments it, it
// never decreases, and devices reconcile against it by numeric comparison.
type LockCoordinator interface {
	// State returns {locked, lock_reason, generation} for polling.
	State(ctx context.Context, userID uuid.UUID) (model.LockState, error)
	// Lock transitions Unlocked->Locked (or refreshes a lock) and returns the
	// new generation. The server never learns why beyond the reason code.
	Lock(ctx context.Context, userID uuid.UUID, reason model.LockReason) (int64, error)
	// ConfirmUnlock records that a device completed an unlock ceremony against
	// observedGen. Returns ErrStaleGeneration if a newer lock intervened; the
	// device must purge and re-prompt.
	ConfirmUnlock(ctx context.Context, userID uuid.UUID, observedGen int64) (int64, error)
}

type LockCoordinatorImpl struct {
	vaults repository.VaultRepository
}

// NewLockCoordinator constructs a LockCoordinator.
func NewLockCoordinator(vaults repository.VaultRepository) *LockCoordinatorImpl {
	return &LockCoordinatorImpl{vaults: vaults}
}

// State resolves the vault and returns its poll contract fields.
func (c *LockCoordinatorImpl) State(ctx context.Context, userID uuid.UUID) (model.LockState, error) {
	v, err := c.getVault(ctx, userID)
	if err != nil {
		return model.LockState{}, err
	}
	return c.vaults.GetState(ctx, v.ID)
}

// Lock applies a lock transition with the given reason.
func (c *LockCoordinatorImpl) Lock(ctx context.Context, userID uuid.UUID, reason model.LockReason) (int64, error) {
	if !reason.Valid() {
		return 0, errors.New("validation: unknown lock reason")
	}
	v, err := c.getVault(ctx, userID)
	if err != nil {
		return 0, err
	}
	return c.vaults.Lock(ctx, v.ID, reason, v.EnforceTier)
}

// ConfirmUnlock applies the generation-guarded unlock transition.
func (c *LockCoordinatorImpl) ConfirmUnlock(ctx context.Context, userID uuid.UUID, observedGen int64) (int64, error) {
	if observedGen < 0 {
		return 0, errors.New("validation: negative generation")
	}
	v, err := c.getVault(ctx, userID)
	if err != nil {
		return 0, err
	}
	return c.vaults.ConfirmUnlock(ctx, v.ID, observedGen)
}

func (c *LockCoordinatorImpl) getVault(ctx context.Context, userID uuid.UUID) (*model.Vault, error) {
	if userID == uuid.Nil {
		return nil, errors.New("validation: empty userID")
	}
	return c.vaults.GetByUserID(ctx, userID)
}
