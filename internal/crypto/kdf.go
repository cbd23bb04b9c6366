// Package crypto implements the primitive layer shared by key wrapping and
// record encryption: policy-dispatched KDF and AEAD construction, randomness,
// and recovery-code hashing. It never touches storage or transport.
package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"

	"github.com/and161185/lockbox/internal/policy"
)

// RandBytes returns n cryptographically secure random bytes.
func RandBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// DeriveKey stretches a low-entropy secret (passphrase, credential secret or
// recovery code) into a wrapping key using the KDF the policy names. This is
// the one deliberately expensive call in the subsystem; callers on an
// interactive path run it off the main loop.
func DeriveKey(p policy.Policy, secret, salt []byte) ([]byte, error) {
	switch p.KDF {
	case policy.KDFPBKDF2SHA256:
		return pbkdf2.Key(secret, salt, int(p.Iterations), p.KeyLen, sha256.New), nil
	case policy.KDFArgon2id:
		return argon2.IDKey(secret, salt, p.ArgonTime, p.ArgonMemory, p.ArgonThreads, uint32(p.KeyLen)), nil
	default:
		return nil, fmt.Errorf("unsupported KDF %q", p.KDF)
	}
}
