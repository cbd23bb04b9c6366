package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/and161185/lockbox/internal/policy"
)

// NewAEAD constructs the AEAD the policy names. The key length must match
// p.KeyLen.
func NewAEAD(p policy.Policy, key []byte) (cipher.AEAD, error) {
	if len(key) != p.KeyLen {
		return nil, fmt.Errorf("key length %d, want %d", len(key), p.KeyLen)
	}
	switch p.AEAD {
	case policy.AEADAESGCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return cipher.NewGCM(block)
	case policy.AEADXChaCha20Poly305:
		return chacha20poly1305.NewX(key)
	default:
		return nil, fmt.Errorf("unsupported AEAD %q", p.AEAD)
	}
}
