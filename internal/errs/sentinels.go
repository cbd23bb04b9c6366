// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Vault error taxonomy. Cryptographic verification failures are terminal for
// the operation and must never carry content fragments, only an error kind.
var (
	// ErrWeakPassphrase indicates the passphrase fails the minimum strength policy.
	ErrWeakPassphrase = errors.New("weak passphrase")

	// ErrInvalidPassphrase indicates the key blob could not be opened with the
	// derived key. Deliberately indistinguishable from a corrupted blob.
	ErrInvalidPassphrase = errors.New("unable to unlock")

	// ErrVaultLocked indicates no key is held and plaintext access is refused.
	ErrVaultLocked = errors.New("vault locked")

	// ErrTamperedRecord indicates AAD or authentication-tag mismatch on decrypt.
	ErrTamperedRecord = errors.New("tampered record")

	// ErrAssertionInvalid indicates a presence assertion failed signature verification.
	ErrAssertionInvalid = errors.New("assertion invalid")

	// ErrCounterReplay indicates a non-increasing authenticator sign counter.
	ErrCounterReplay = errors.New("counter replay")

	// ErrChallengeExpired indicates the unlock challenge outlived its TTL.
	ErrChallengeExpired = errors.New("challenge expired")

	// ErrStaleGeneration indicates an unlock raced a newer lock and must be rejected.
	ErrStaleGeneration = errors.New("stale generation")

	// ErrRecoveryCodeInvalidOrUsed indicates the recovery code is unknown or consumed.
	ErrRecoveryCodeInvalidOrUsed = errors.New("recovery code invalid or used")
)

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrVersionConflict indicates optimistic concurrency failure (base version mismatch).
	ErrVersionConflict = errors.New("version conflict")

	// ErrUnauthorized indicates failed authentication/authorization.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates temporary unlock lock-out due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., vault already initialized).
	ErrAlreadyExists = errors.New("already exists")
)
