package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
)

// HashRecoveryCode returns the SHA-256 digest of a normalized recovery code.
// Only this digest is ever persisted; lookup by digest requires the hash to be
// deterministic, so no salt is involved (codes carry enough entropy of their own).
func HashRecoveryCode(code string) []byte {
	h := sha256.Sum256([]byte(code))
	return h[:]
}

// EqualHashes compares two digests in constant time.
func EqualHashes(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
