package policy

import (
	"testing"
	"time"
)

func TestRegistry_BuiltinVersions(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	v1, err := r.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if v1.KDF != KDFPBKDF2SHA256 || v1.AEAD != AEADAESGCM || v1.Iterations != 100_000 {
		t.Fatalf("v1 parameters: %+v", v1)
	}
	if v1.NonceLen != 12 || v1.SaltLen != 16 || v1.KeyLen != 32 {
		t.Fatalf("v1 lengths: %+v", v1)
	}

	v2, err := r.Get(2)
	if err != nil {
		t.Fatal(err)
	}
	if v2.KDF != KDFArgon2id || v2.AEAD != AEADXChaCha20Poly305 || v2.NonceLen != 24 {
		t.Fatalf("v2 parameters: %+v", v2)
	}

	if d := r.Default(); d.Version != 1 {
		t.Fatalf("default version %d, want 1", d.Version)
	}
	if _, err := r.Get(9); err == nil {
		t.Fatal("want error for unknown version")
	}
}

func TestRegistry_SetDefault(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	if err := r.SetDefault(2); err != nil {
		t.Fatal(err)
	}
	if r.Default().Version != 2 {
		t.Fatal("default not switched")
	}
	if err := r.SetDefault(9); err == nil {
		t.Fatal("want error for unknown version")
	}
}

func TestRegistry_RegisterIsAppendOnly(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	// published versions are immutable
	if err := r.Register(Policy{Version: 1, AEAD: AEADAESGCM, KDF: KDFPBKDF2SHA256, KeyLen: 32, SaltLen: 16, NonceLen: 12}); err == nil {
		t.Fatal("want error re-registering v1")
	}
	if err := r.Register(Policy{Version: 3}); err == nil {
		t.Fatal("want error for zero-length parameters")
	}
	if err := r.Register(Policy{
		Version: 3, AEAD: AEADXChaCha20Poly305, KDF: KDFArgon2id,
		ArgonTime: 4, ArgonMemory: 128 * 1024, ArgonThreads: 2,
		KeyLen: 32, SaltLen: 16, NonceLen: 24,
	}); err != nil {
		t.Fatal(err)
	}
	got := r.Versions()
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("versions: %v", got)
	}
}

func TestRegistry_Deprecate(t *testing.T) {
	t.Parallel()
	r := NewRegistry()

	if err := r.Deprecate(1, time.Now()); err == nil {
		t.Fatal("must not deprecate the default version")
	}
	if err := r.Deprecate(2, time.Now()); err != nil {
		t.Fatal(err)
	}
	// deprecated versions stay readable but cannot become the default
	if _, err := r.Get(2); err != nil {
		t.Fatalf("deprecated version must stay resolvable: %v", err)
	}
	if err := r.SetDefault(2); err == nil {
		t.Fatal("want error promoting a deprecated version")
	}
}
