package vaultkey

import (
	"sync"

	"github.com/and161185/lockbox/internal/errs"
)

// Handle owns the in-memory KEK. It is the only place key bytes live while a
// vault is unlocked; callers borrow the key for the duration of a single
// cipher operation and never retain it. Purge zeroes the bytes and is invoked
// on every lock transition.
type Handle struct {
	mu     sync.Mutex
	key    []byte
	purged bool
}

// NewHandle takes ownership of key. The caller must not use key afterwards.
func NewHandle(key []byte) *Handle {
	return &Handle{key: key}
}

// Use calls fn with the key bytes while holding the handle lock. fn must not
// retain the slice. Returns ErrVaultLocked after Purge.
func (h *Handle) Use(fn func(key []byte) error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.purged || len(h.key) == 0 {
		return errs.ErrVaultLocked
	}
	return fn(h.key)
}

// Purge zeroes the key material. Idempotent.
func (h *Handle) Purge() {
	h.mu.Lock()
	defer h.mu.Unlock()
	Zero(h.key)
	h.key = nil
	h.purged = true
}

// Purged reports whether the key has been destroyed.
func (h *Handle) Purged() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.purged || len(h.key) == 0
}

// Zero overwrites a byte slice with zeros.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
