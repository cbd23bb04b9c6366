package crypto

import (
	"bytes"
	"testing"

	"github.com/and161185/lockbox/internal/policy"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	t.Parallel()
	reg := policy.NewRegistry()
	for _, ver := range reg.Versions() {
		p, err := reg.Get(ver)
		if err != nil {
			t.Fatalf("get policy %d: %v", ver, err)
		}
		a, err := DeriveKey(p, []byte("correct horse 1"), []byte("salt-16-bytes!!!"))
		if err != nil {
			t.Fatalf("derive v%d: %v", ver, err)
		}
		b, err := DeriveKey(p, []byte("correct horse 1"), []byte("salt-16-bytes!!!"))
		if err != nil {
			t.Fatalf("derive v%d: %v", ver, err)
		}
		if !bytes.Equal(a, b) {
			t.Fatalf("v%d: same inputs produced different keys", ver)
		}
		if len(a) != p.KeyLen {
			t.Fatalf("v%d: key length %d, want %d", ver, len(a), p.KeyLen)
		}
	}
}

func TestDeriveKey_SaltChangesKey(t *testing.T) {
	t.Parallel()
	p := policy.NewRegistry().Default()
	a, _ := DeriveKey(p, []byte("correct horse 1"), []byte("salt-aaaaaaaaaaa"))
	b, _ := DeriveKey(p, []byte("correct horse 1"), []byte("salt-bbbbbbbbbbb"))
	if bytes.Equal(a, b) {
		t.Fatal("different salts produced the same key")
	}
}

func TestDeriveKey_UnknownKDF(t *testing.T) {
	t.Parallel()
	if _, err := DeriveKey(policy.Policy{KDF: "scrypt", KeyLen: 32}, []byte("x"), []byte("y")); err == nil {
		t.Fatal("want error for unsupported KDF")
	}
}

func TestNewAEAD_KeyLenMismatch(t *testing.T) {
	t.Parallel()
	p := policy.NewRegistry().Default()
	if _, err := NewAEAD(p, make([]byte, 16)); err == nil {
		t.Fatal("want error for short key")
	}
}

func TestNewAEAD_NonceSizesMatchPolicy(t *testing.T) {
	t.Parallel()
	reg := policy.NewRegistry()
	for _, ver := range reg.Versions() {
		p, _ := reg.Get(ver)
		aead, err := NewAEAD(p, make([]byte, p.KeyLen))
		if err != nil {
			t.Fatalf("v%d: %v", ver, err)
		}
		if aead.NonceSize() != p.NonceLen {
			t.Fatalf("v%d: aead nonce %d, policy says %d", ver, aead.NonceSize(), p.NonceLen)
		}
	}
}

func TestHashRecoveryCode(t *testing.T) {
	t.Parallel()
	a := HashRecoveryCode("ABCD-EFGH-JKLM")
	b := HashRecoveryCode("ABCD-EFGH-JKLM")
	c := HashRecoveryCode("ABCD-EFGH-JKLN")
	if !EqualHashes(a, b) {
		t.Fatal("same code must hash identically")
	}
	if EqualHashes(a, c) {
		t.Fatal("different codes must not collide")
	}
	if len(a) != 32 {
		t.Fatalf("hash length %d, want 32", len(a))
	}
}

func TestRandBytes_Unique(t *testing.T) {
	t.Parallel()
	a, err := RandBytes(32)
	if err != nil {
		t.Fatal(err)
	}
	b, err := RandBytes(32)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("two random reads returned identical bytes")
	}
}
