// Package recordcipher seals and opens individual content records with the
// vault master key. The key is borrowed from a vaultkey.Handle per operation;
// no plaintext leaves this package while the vault is locked.
package recordcipher

import (
	"bytes"
	"encoding/binary"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "github.com/and161185/lockbox/internal/crypto"
	"github.com/and161185/lockbox/internal/crypto/vaultkey"
	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/policy"
)

// Sealed is the opaque result of encrypting one record. These are the only
// fields the server ever stores for a record.
type Sealed struct {
	PolicyVersion uint32
	Nonce         []byte
	Ciphertext    []byte
	AAD           []byte
}

// RecordAAD builds the canonical associated data for a record: user id and
// record id fixed-width first, then the policy version, then the record type
// trailing.
func RecordAAD(userID, recordID uuid.UUID, policyVersion uint32, recordType string) []byte {
	aad := make([]byte, 0, 16+16+4+len(recordType))
	aad = append(aad, userID.Bytes()...)
	aad = append(aad, recordID.Bytes()...)
	var v [4]byte
	binary.BigEndian.PutUint32(v[:], policyVersion)
	aad = append(aad, v[:]...)
	aad = append(aad, recordType...)
	return aad
}

// Encrypt seals plaintext under the held KEK with a fresh random nonce and the
// active policy version. Returns ErrVaultLocked if the handle is purged.
func Encrypt(reg *policy.Registry, h *vaultkey.Handle, userID, recordID uuid.UUID, recordType string, plaintext []byte) (Sealed, error) {
	p := reg.Default()
	aad := RecordAAD(userID, recordID, p.Version, recordType)

	var out Sealed
	err := h.Use(func(key []byte) error {
		aead, err := pkgcrypto.NewAEAD(p, key)
		if err != nil {
			return err
		}
		nonce, err := pkgcrypto.RandBytes(p.NonceLen)
		if err != nil {
			return err
		}
		out = Sealed{
			PolicyVersion: p.Version,
			Nonce:         nonce,
			Ciphertext:    aead.Seal(nil, nonce, plaintext, aad),
			AAD:           aad,
		}
		return nil
	})
	if err != nil {
		return Sealed{}, err
	}
	return out, nil
}

// Decrypt opens a sealed record after verifying that its AAD matches the
// expected record identity. The AAD check runs before any AEAD work so a
// ciphertext substituted from another record or user is rejected without
// touching the key. Dispatches on the policy version stamped in the record,
// not on the current default.
func Decrypt(reg *policy.Registry, h *vaultkey.Handle, userID, recordID uuid.UUID, recordType string, sealed Sealed) ([]byte, error) {
	expected := RecordAAD(userID, recordID, sealed.PolicyVersion, recordType)
	if !bytes.Equal(expected, sealed.AAD) {
		return nil, errs.ErrTamperedRecord
	}
	p, err := reg.Get(sealed.PolicyVersion)
	if err != nil {
		return nil, errs.ErrTamperedRecord
	}
	if len(sealed.Nonce) != p.NonceLen {
		return nil, errs.ErrTamperedRecord
	}

	var plaintext []byte
	err = h.Use(func(key []byte) error {
		aead, err := pkgcrypto.NewAEAD(p, key)
		if err != nil {
			return err
		}
		pt, err := aead.Open(nil, sealed.Nonce, sealed.Ciphertext, expected)
		if err != nil {
			return errs.ErrTamperedRecord
		}
		plaintext = pt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plaintext, nil
}
