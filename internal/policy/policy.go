// Package policy holds versioned crypto parameter sets. Published versions are
// immutable; migration happens by appending a version and deprecating the old
// one. Decryption always dispatches on the version stamped into a blob or
// record, never on the current default.
package policy

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// AEAD algorithm identifiers.
const (
	AEADAESGCM           = "aes-256-gcm"
	AEADXChaCha20Poly305 = "xchacha20-poly1305"
)

// KDF algorithm identifiers.
const (
	KDFPBKDF2SHA256 = "pbkdf2-hmac-sha256"
	KDFArgon2id     = "argon2id"
)

// Policy is one immutable parameter set.
type Policy struct {
	Version uint32
	AEAD    string
	KDF     string

	// PBKDF2 parameters.
	Iterations uint32

	// Argon2id parameters.
	ArgonTime    uint32
	ArgonMemory  uint32 // KiB
	ArgonThreads uint8

	KeyLen     int
	SaltLen    int
	NonceLen   int
	Deprecated *time.Time
}

// Registry maps versions to parameter sets.
type Registry struct {
	mu       sync.RWMutex
	byVer    map[uint32]Policy
	defaults uint32
}

// NewRegistry returns a registry preloaded with the built-in versions:
// v1 (default): PBKDF2-HMAC-SHA256 100k iterations + AES-256-GCM;
// v2: Argon2id + XChaCha20-Poly1305.
func NewRegistry() *Registry {
	r := &Registry{byVer: make(map[uint32]Policy)}
	r.mustRegister(Policy{
		Version:    1,
		AEAD:       AEADAESGCM,
		KDF:        KDFPBKDF2SHA256,
		Iterations: 100_000,
		KeyLen:     32,
		SaltLen:    16,
		NonceLen:   12,
	})
	r.mustRegister(Policy{
		Version:      2,
		AEAD:         AEADXChaCha20Poly305,
		KDF:          KDFArgon2id,
		ArgonTime:    3,
		ArgonMemory:  64 * 1024,
		ArgonThreads: 1,
		KeyLen:       32,
		SaltLen:      16,
		NonceLen:     24,
	})
	r.defaults = 1
	return r
}

// Get returns the parameter set for a version.
func (r *Registry) Get(version uint32) (Policy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byVer[version]
	if !ok {
		return Policy{}, fmt.Errorf("unknown crypto policy version %d", version)
	}
	return p, nil
}

// Default returns the active parameter set used for new wraps and encrypts.
func (r *Registry) Default() Policy {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byVer[r.defaults]
}

// SetDefault switches the active version. The version must already be
// registered and not deprecated.
func (r *Registry) SetDefault(version uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byVer[version]
	if !ok {
		return fmt.Errorf("unknown crypto policy version %d", version)
	}
	if p.Deprecated != nil {
		return fmt.Errorf("crypto policy version %d is deprecated", version)
	}
	r.defaults = version
	return nil
}

// Register appends a new version. Re-registering an existing version is an
// error: published parameter sets are immutable.
func (r *Registry) Register(p Policy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byVer[p.Version]; ok {
		return fmt.Errorf("crypto policy version %d already registered", p.Version)
	}
	if p.KeyLen == 0 || p.SaltLen == 0 || p.NonceLen == 0 {
		return fmt.Errorf("crypto policy version %d has zero-length parameters", p.Version)
	}
	r.byVer[p.Version] = p
	return nil
}

// Deprecate marks a version as deprecated at the given time. Existing data
// under the version stays decryptable; new wraps must not use it.
func (r *Registry) Deprecate(version uint32, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byVer[version]
	if !ok {
		return fmt.Errorf("unknown crypto policy version %d", version)
	}
	if version == r.defaults {
		return fmt.Errorf("cannot deprecate the default crypto policy version %d", version)
	}
	p.Deprecated = &at
	r.byVer[version] = p
	return nil
}

// Versions returns all registered versions in ascending order.
func (r *Registry) Versions() []uint32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]uint32, 0, len(r.byVer))
	for v := range r.byVer {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (r *Registry) mustRegister(p Policy) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}
