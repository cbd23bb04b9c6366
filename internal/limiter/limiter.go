// Package limiter defines interfaces and implementations for unlock-attempt
// rate limiting. Failed passphrase unlocks and recovery redemptions count
// against a sliding window per (vault, ip); a saturated window places a
// temporary block.
package limiter

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Limiter controls unlock attempts and temporary lockouts.
type Limiter interface {
	// Allow reports whether an unlock attempt is currently allowed and an
	// optional retry-after duration.
	Allow(ctx context.Context, vaultID uuid.UUID, ipHash []byte) (bool, time.Duration, error)
	// Success resets counters after a successful unlock.
	Success(ctx context.Context, vaultID uuid.UUID, ipHash []byte) error
	// Failure records a failed attempt; may place a temporary block.
	Failure(ctx context.Context, vaultID uuid.UUID, ipHash []byte) (bool, time.Duration, error)
}
