// Package vaultkey derives, wraps and holds the vault master key (KEK).
// The KEK exists only inside a Handle on whichever device currently has the
// vault unlocked; it is never serialized, logged or transmitted in plaintext.
package vaultkey

import (
	"encoding/binary"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "github.com/and161185/lockbox/internal/crypto"
	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/policy"
)

// KEKLen is the master key size in bytes.
const KEKLen = 32

// NewKEK generates a fresh random master key.
func NewKEK() ([]byte, error) {
	return pkgcrypto.RandBytes(KEKLen)
}

// BlobAAD builds the canonical associated data for a wrapped key blob:
// user id, vault id and policy version fixed-width first, then the
// credential id (empty for passphrase and recovery wraps) trailing.
func BlobAAD(userID, vaultID uuid.UUID, policyVersion uint32, credentialID []byte) []byte {
	aad := make([]byte, 0, 16+16+4+len(credentialID))
	aad = append(aad, userID.Bytes()...)
	aad = append(aad, vaultID.Bytes()...)
	var v [4]byte
	binary.BigEndian.PutUint32(v[:], policyVersion)
	aad = append(aad, v[:]...)
	aad = append(aad, credentialID...)
	return aad
}

// Wrap seals the KEK under wrapKey with a fresh random nonce, binding aad.
// Returns nonce and ciphertext separately per the wire contract.
func Wrap(p policy.Policy, wrapKey, kek, aad []byte) (nonce, ciphertext []byte, err error) {
	aead, err := pkgcrypto.NewAEAD(p, wrapKey)
	if err != nil {
		return nil, nil, err
	}
	nonce, err = pkgcrypto.RandBytes(p.NonceLen)
	if err != nil {
		return nil, nil, err
	}
	return nonce, aead.Seal(nil, nonce, kek, aad), nil
}

// Unwrap opens a wrapped KEK. Any authentication failure comes back as
// ErrInvalidPassphrase regardless of cause, so a caller cannot tell a wrong
// secret from a corrupted blob.
func Unwrap(p policy.Policy, wrapKey, nonce, ciphertext, aad []byte) ([]byte, error) {
	aead, err := pkgcrypto.NewAEAD(p, wrapKey)
	if err != nil {
		return nil, err
	}
	if len(nonce) != p.NonceLen {
		return nil, errs.ErrInvalidPassphrase
	}
	kek, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, errs.ErrInvalidPassphrase
	}
	return kek, nil
}
