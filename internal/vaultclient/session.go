package vaultclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "github.com/and161185/lockbox/internal/crypto"
	"github.com/and161185/lockbox/internal/crypto/vaultkey"
	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/model"
	"github.com/and161185/lockbox/internal/policy"
)

// DefaultIdleTimeout locks the session after this much inactivity.
const DefaultIdleTimeout = 10 * time.Minute

// Session owns the unlocked state of one vault on one device. The KEK lives
// only inside the session's Handle; every lock transition, local or observed
// remotely, purges it. All methods are safe for concurrent use.
type Session struct {
	api    API
	reg    *policy.Registry
	userID uuid.UUID

	idleTimeout time.Duration
	now         func() time.Time

	mu         sync.Mutex
	vaultID    uuid.UUID
	key        *vaultkey.Handle
	generation int64
	lastUsed   time.Time
}

// NewSession constructs a locked session. idleTimeout <= 0 selects the default.
func NewSession(api API, reg *policy.Registry, userID uuid.UUID, idleTimeout time.Duration) *Session {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &Session{
		api:         api,
		reg:         reg,
		userID:      userID,
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Unlocked reports whether the session currently holds the KEK.
func (s *Session) Unlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unlockedLocked()
}

// Generation returns the last generation this device reconciled against.
func (s *Session) Generation() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Key borrows the KEK handle for cipher operations and refreshes the idle
// clock. Returns ErrVaultLocked while locked or after the idle timeout fired.
func (s *Session) Key() (*vaultkey.Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.unlockedLocked() {
		return nil, errs.ErrVaultLocked
	}
	if s.now().Sub(s.lastUsed) >= s.idleTimeout {
		s.purgeLocked()
		return nil, errs.ErrVaultLocked
	}
	s.lastUsed = s.now()
	return s.key, nil
}

// Lock applies a lock transition on the server and purges the local key. The
// key is purged even if the server call fails: a device that wants to lock
// must never stay open because the network was down.
func (s *Session) Lock(ctx context.Context, reason model.LockReason) error {
	s.mu.Lock()
	s.purgeLocked()
	s.mu.Unlock()

	gen, err := s.api.Lock(ctx, reason)
	if err != nil {
		return err
	}
	s.adopt(gen)
	return nil
}

// CheckIdle locks the vault with reason idle if the inactivity window elapsed.
// It is called from the poll loop so an idle device locks for every device,
// not just locally.
func (s *Session) CheckIdle(ctx context.Context) error {
	s.mu.Lock()
	expired := s.unlockedLocked() && s.now().Sub(s.lastUsed) >= s.idleTimeout
	s.mu.Unlock()
	if !expired {
		return nil
	}
	return s.Lock(ctx, model.LockReasonIdle)
}

// Observe reconciles against a polled lock state. Generations only ever grow;
// a decrease means the device is talking to something that is not the vault's
// authoritative row, and the only safe reaction is to drop the key.
func (s *Session) Observe(st model.LockState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st.Generation < s.generation {
		s.purgeLocked()
		return fmt.Errorf("generation moved backwards (%d < %d): %w",
			st.Generation, s.generation, errs.ErrStaleGeneration)
	}
	if st.Locked && st.Generation > s.generation {
		// another device locked after we last reconciled
		s.purgeLocked()
	}
	s.generation = st.Generation
	return nil
}

// Poll performs one reconcile round: fetch state, observe it, run the idle check.
func (s *Session) Poll(ctx context.Context) error {
	info, err := s.api.VaultInfo(ctx)
	if err != nil {
		return err
	}
	if err := s.Observe(info.State); err != nil {
		return err
	}
	return s.CheckIdle(ctx)
}

// Run polls at the given interval until ctx is cancelled. Transient poll
// errors are reported through onErr (may be nil) and do not stop the loop.
func (s *Session) Run(ctx context.Context, interval time.Duration, onErr func(error)) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := s.Poll(ctx); err != nil && onErr != nil {
				onErr(err)
			}
		}
	}
}

// Init creates the vault: fresh KEK, passphrase wrap under the default policy.
// The session ends up unlocked at generation 0.
func (s *Session) Init(ctx context.Context, passphrase []byte) error {
	if err := CheckPassphrase(passphrase); err != nil {
		return err
	}
	vaultID, err := uuid.NewV4()
	if err != nil {
		return err
	}
	kek, err := vaultkey.NewKEK()
	if err != nil {
		return err
	}
	p := s.reg.Default()
	blob, salt, err := s.wrapPassphrase(ctx, p, vaultID, passphrase, kek)
	if err != nil {
		vaultkey.Zero(kek)
		return err
	}
	if err := s.api.InitVault(ctx, vaultID, p.Version, salt, kdfParamsFor(p), blob); err != nil {
		vaultkey.Zero(kek)
		return err
	}

	s.mu.Lock()
	s.vaultID = vaultID
	s.key = vaultkey.NewHandle(kek)
	s.generation = 0
	s.lastUsed = s.now()
	s.mu.Unlock()
	return nil
}

// UnlockWithPassphrase runs the passphrase unlock ceremony. The KDF runs off
// the calling goroutine so cancellation stays responsive; a cancelled unlock
// leaves no key material behind.
func (s *Session) UnlockWithPassphrase(ctx context.Context, passphrase []byte) error {
	info, err := s.api.VaultInfo(ctx)
	if err != nil {
		return err
	}
	if err := s.Observe(info.State); err != nil {
		return err
	}
	blob, err := s.api.PassphraseBlob(ctx)
	if err != nil {
		return err
	}
	return s.unlockWithBlob(ctx, info, blob, passphrase, nil)
}

// UnlockWithCredential completes a presence-gated unlock: the caller has
// already passed the server's ceremony and received the credential blob; the
// credential secret comes from the platform keystore.
func (s *Session) UnlockWithCredential(ctx context.Context, secret []byte, blob *model.WrappedKeyBlob) error {
	info, err := s.api.VaultInfo(ctx)
	if err != nil {
		return err
	}
	if err := s.Observe(info.State); err != nil {
		return err
	}
	return s.unlockWithBlob(ctx, info, blob, secret, blob.CredentialID)
}

// unlockWithBlob derives the wrapping key from secret, opens the blob and
// confirms the unlock against the generation observed in info. A stale
// confirmation purges the freshly derived key and surfaces ErrStaleGeneration.
func (s *Session) unlockWithBlob(
	ctx context.Context, info *VaultInfo, blob *model.WrappedKeyBlob, secret, credentialID []byte,
) error {
	p, err := s.reg.Get(blob.PolicyVersion)
	if err != nil {
		return err
	}
	wrapKey, err := deriveCtx(ctx, p, secret, blob.Salt)
	if err != nil {
		return err
	}
	defer vaultkey.Zero(wrapKey)

	aad := vaultkey.BlobAAD(s.userID, info.VaultID, blob.PolicyVersion, credentialID)
	kek, err := vaultkey.Unwrap(p, wrapKey, blob.Nonce, blob.Ciphertext, aad)
	if err != nil {
		return err
	}

	gen, err := s.api.ConfirmUnlock(ctx, info.State.Generation)
	if err != nil {
		vaultkey.Zero(kek)
		if errors.Is(err, errs.ErrStaleGeneration) {
			// a newer lock won the race; re-poll and re-prompt
			s.mu.Lock()
			s.purgeLocked()
			s.mu.Unlock()
		}
		return err
	}

	s.mu.Lock()
	s.vaultID = info.VaultID
	s.key = vaultkey.NewHandle(kek)
	s.generation = gen
	s.lastUsed = s.now()
	s.mu.Unlock()
	return nil
}

// RewrapPassphrase replaces the passphrase wrap with a new passphrase under
// the current default policy. The KEK does not change, so records stay readable.
func (s *Session) RewrapPassphrase(ctx context.Context, newPassphrase []byte) error {
	if err := CheckPassphrase(newPassphrase); err != nil {
		return err
	}
	s.mu.Lock()
	key, vaultID := s.key, s.vaultID
	s.mu.Unlock()
	if key == nil {
		return errs.ErrVaultLocked
	}

	p := s.reg.Default()
	var blob *model.WrappedKeyBlob
	var salt []byte
	err := key.Use(func(kek []byte) error {
		var e error
		blob, salt, e = s.wrapPassphrase(ctx, p, vaultID, newPassphrase, kek)
		return e
	})
	if err != nil {
		return err
	}
	return s.api.Rewrap(ctx, salt, kdfParamsFor(p), blob)
}

// RegisterCredentialWrap stores a KEK copy wrapped under a credential secret.
// Called after a gate credential registration succeeded; the secret never
// leaves the device.
func (s *Session) RegisterCredentialWrap(ctx context.Context, credentialID, secret []byte) error {
	if len(credentialID) == 0 || len(secret) == 0 {
		return errors.New("validation: empty credential id/secret")
	}
	s.mu.Lock()
	key, vaultID := s.key, s.vaultID
	s.mu.Unlock()
	if key == nil {
		return errs.ErrVaultLocked
	}

	p := s.reg.Default()
	salt, err := pkgcrypto.RandBytes(p.SaltLen)
	if err != nil {
		return err
	}
	wrapKey, err := deriveCtx(ctx, p, secret, salt)
	if err != nil {
		return err
	}
	defer vaultkey.Zero(wrapKey)

	var blob *model.WrappedKeyBlob
	err = key.Use(func(kek []byte) error {
		b, e := buildBlob(p, vaultID, s.userID, model.WrapTypeCredential, credentialID, salt, wrapKey, kek)
		blob = b
		return e
	})
	if err != nil {
		return err
	}
	return s.api.PutCredentialBlob(ctx, blob)
}

// wrapPassphrase derives a wrapping key from the passphrase with a fresh salt
// and seals the KEK into a passphrase blob.
func (s *Session) wrapPassphrase(
	ctx context.Context, p policy.Policy, vaultID uuid.UUID, passphrase, kek []byte,
) (*model.WrappedKeyBlob, []byte, error) {
	salt, err := pkgcrypto.RandBytes(p.SaltLen)
	if err != nil {
		return nil, nil, err
	}
	wrapKey, err := deriveCtx(ctx, p, passphrase, salt)
	if err != nil {
		return nil, nil, err
	}
	defer vaultkey.Zero(wrapKey)

	blob, err := buildBlob(p, vaultID, s.userID, model.WrapTypePassphrase, nil, salt, wrapKey, kek)
	if err != nil {
		return nil, nil, err
	}
	return blob, salt, nil
}

func buildBlob(
	p policy.Policy, vaultID, userID uuid.UUID, wt model.WrapType, credentialID, salt, wrapKey, kek []byte,
) (*model.WrappedKeyBlob, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	aad := vaultkey.BlobAAD(userID, vaultID, p.Version, credentialID)
	nonce, ct, err := vaultkey.Wrap(p, wrapKey, kek, aad)
	if err != nil {
		return nil, err
	}
	return &model.WrappedKeyBlob{
		ID:            id,
		VaultID:       vaultID,
		WrapType:      wt,
		WrapVersion:   1,
		PolicyVersion: p.Version,
		CredentialID:  credentialID,
		Salt:          salt,
		Nonce:         nonce,
		Ciphertext:    ct,
		AAD:           aad,
	}, nil
}

// deriveCtx runs the KDF on its own goroutine so a slow derivation cannot
// block cancellation. If ctx fires first, the result is zeroed when it lands.
func deriveCtx(ctx context.Context, p policy.Policy, secret, salt []byte) ([]byte, error) {
	type result struct {
		key []byte
		err error
	}
	ch := make(chan result, 1)
	go func() {
		key, err := pkgcrypto.DeriveKey(p, secret, salt)
		ch <- result{key: key, err: err}
	}()
	select {
	case <-ctx.Done():
		go func() {
			r := <-ch
			vaultkey.Zero(r.key)
		}()
		return nil, ctx.Err()
	case r := <-ch:
		return r.key, r.err
	}
}

func kdfParamsFor(p policy.Policy) model.KDFParams {
	return model.KDFParams{
		Algorithm:  p.KDF,
		Iterations: p.Iterations,
		MemoryKiB:  p.ArgonMemory,
		Threads:    p.ArgonThreads,
		SaltLen:    p.SaltLen,
	}
}

func (s *Session) unlockedLocked() bool {
	return s.key != nil && !s.key.Purged()
}

func (s *Session) purgeLocked() {
	if s.key != nil {
		s.key.Purge()
		s.key = nil
	}
}

func (s *Session) adopt(gen int64) {
	s.mu.Lock()
	if gen > s.generation {
		s.generation = gen
	}
	s.mu.Unlock()
}
