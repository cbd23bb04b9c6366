package vaultclient

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "github.com/and161185/lockbox/internal/crypto"
	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/model"
	"github.com/and161185/lockbox/internal/policy"
)

// fakeAPI is an in-memory vault server: one vault, one generation counter,
// blobs stored as the real server would store them.
type fakeAPI struct {
	vaultID       uuid.UUID
	state         model.LockState
	policyVersion uint32
	salt          []byte
	params        model.KDFParams
	passBlob      *model.WrappedKeyBlob
	credBlobs     map[string]*model.WrappedKeyBlob
	issues        []model.RecoveryIssue
	redeemed      map[string]bool

	lockErr       error
	beforeConfirm func() // runs between observe and confirm, simulates a racing device
	lockReasons   []model.LockReason
	rewraps       int
}

var _ API = (*fakeAPI)(nil)

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		credBlobs: make(map[string]*model.WrappedKeyBlob),
		redeemed:  make(map[string]bool),
	}
}

func (f *fakeAPI) InitVault(_ context.Context, vaultID uuid.UUID, policyVersion uint32, salt []byte, params model.KDFParams, blob *model.WrappedKeyBlob) error {
	if f.vaultID != uuid.Nil {
		return errs.ErrAlreadyExists
	}
	f.vaultID, f.policyVersion = vaultID, policyVersion
	f.salt, f.params, f.passBlob = salt, params, blob
	f.state = model.LockState{Generation: 0}
	return nil
}

func (f *fakeAPI) VaultInfo(_ context.Context) (*VaultInfo, error) {
	if f.vaultID == uuid.Nil {
		return nil, errs.ErrNotFound
	}
	return &VaultInfo{
		VaultID:        f.vaultID,
		State:          f.state,
		PolicyVersion:  f.policyVersion,
		PassphraseSalt: f.salt,
		KDFParams:      f.params,
	}, nil
}

func (f *fakeAPI) Lock(_ context.Context, reason model.LockReason) (int64, error) {
	if f.lockErr != nil {
		return 0, f.lockErr
	}
	f.lockReasons = append(f.lockReasons, reason)
	f.state.Generation++
	f.state.Locked, f.state.LockReason = true, reason
	return f.state.Generation, nil
}

func (f *fakeAPI) ConfirmUnlock(_ context.Context, observedGen int64) (int64, error) {
	if f.beforeConfirm != nil {
		f.beforeConfirm()
	}
	if observedGen != f.state.Generation {
		return 0, errs.ErrStaleGeneration
	}
	f.state.Generation++
	f.state.Locked, f.state.LockReason = false, ""
	return f.state.Generation, nil
}

func (f *fakeAPI) PassphraseBlob(_ context.Context) (*model.WrappedKeyBlob, error) {
	if f.passBlob == nil {
		return nil, errs.ErrNotFound
	}
	b := *f.passBlob
	return &b, nil
}

func (f *fakeAPI) Rewrap(_ context.Context, salt []byte, params model.KDFParams, blob *model.WrappedKeyBlob) error {
	f.salt, f.params, f.passBlob = salt, params, blob
	f.policyVersion = blob.PolicyVersion
	f.rewraps++
	return nil
}

func (f *fakeAPI) PutCredentialBlob(_ context.Context, blob *model.WrappedKeyBlob) error {
	b := *blob
	f.credBlobs[hex.EncodeToString(blob.CredentialID)] = &b
	return nil
}

func (f *fakeAPI) ReplaceRecoveryCodes(_ context.Context, issues []model.RecoveryIssue) error {
	f.issues = append([]model.RecoveryIssue(nil), issues...)
	f.redeemed = make(map[string]bool)
	return nil
}

func (f *fakeAPI) RedeemRecoveryCode(_ context.Context, codeHash []byte) (*model.WrappedKeyBlob, error) {
	key := hex.EncodeToString(codeHash)
	if f.redeemed[key] {
		return nil, errs.ErrRecoveryCodeInvalidOrUsed
	}
	for i := range f.issues {
		if pkgcrypto.EqualHashes(f.issues[i].CodeHash, codeHash) {
			f.redeemed[key] = true
			b := f.issues[i].Blob
			return &b, nil
		}
	}
	return nil, errs.ErrRecoveryCodeInvalidOrUsed
}

// testRegistry appends a single-iteration variant of the v1 parameters and
// makes it the default, so tests do not pay for a production-strength KDF.
func testRegistry(t *testing.T) *policy.Registry {
	t.Helper()
	reg := policy.NewRegistry()
	if err := reg.Register(policy.Policy{
		Version:    101,
		AEAD:       policy.AEADAESGCM,
		KDF:        policy.KDFPBKDF2SHA256,
		Iterations: 1,
		KeyLen:     32,
		SaltLen:    16,
		NonceLen:   12,
	}); err != nil {
		t.Fatal(err)
	}
	if err := reg.SetDefault(101); err != nil {
		t.Fatal(err)
	}
	return reg
}

func newTestSession(t *testing.T, api API) *Session {
	t.Helper()
	return NewSession(api, testRegistry(t), uuid.Must(uuid.NewV4()), 0)
}

func TestSession_InitAndUnlock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := newFakeAPI()
	s := newTestSession(t, api)

	if err := s.Init(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}
	if !s.Unlocked() {
		t.Fatal("session must be unlocked after init")
	}
	if g := s.Generation(); g != 0 {
		t.Fatalf("generation after init: %d, want 0", g)
	}
	if api.passBlob == nil || api.passBlob.WrapType != model.WrapTypePassphrase {
		t.Fatalf("server blob: %+v", api.passBlob)
	}
	if len(api.passBlob.CredentialID) != 0 {
		t.Fatal("passphrase blob must not carry a credential id")
	}

	// a second device unlocks with the same passphrase
	s2 := NewSession(api, testRegistry(t), s.userID, 0)
	if err := s2.UnlockWithPassphrase(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}
	if !s2.Unlocked() {
		t.Fatal("second device must be unlocked")
	}
	if g := s2.Generation(); g != 1 {
		t.Fatalf("generation after confirm: %d, want 1", g)
	}
	if _, err := s2.Key(); err != nil {
		t.Fatal(err)
	}
}

func TestSession_Init_WeakPassphrase(t *testing.T) {
	t.Parallel()
	api := newFakeAPI()
	s := newTestSession(t, api)
	if err := s.Init(context.Background(), []byte("short1")); !errors.Is(err, errs.ErrWeakPassphrase) {
		t.Fatalf("want ErrWeakPassphrase, got %v", err)
	}
	if api.vaultID != uuid.Nil {
		t.Fatal("weak passphrase must not reach the server")
	}
}

func TestSession_UnlockWithWrongPassphrase(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := newFakeAPI()
	s := newTestSession(t, api)
	if err := s.Init(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}

	s2 := NewSession(api, testRegistry(t), s.userID, 0)
	err := s2.UnlockWithPassphrase(ctx, []byte("wrong horse 99"))
	if !errors.Is(err, errs.ErrInvalidPassphrase) {
		t.Fatalf("want ErrInvalidPassphrase, got %v", err)
	}
	if s2.Unlocked() {
		t.Fatal("failed unlock must not leave a key behind")
	}
	if gen := api.state.Generation; gen != 0 {
		t.Fatalf("failed unlock must not touch the generation, got %d", gen)
	}
}

func TestSession_StaleConfirmPurgesKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := newFakeAPI()
	s := newTestSession(t, api)
	if err := s.Init(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}

	// another device slips a lock in between observe and confirm
	api.beforeConfirm = func() {
		api.beforeConfirm = nil
		api.state.Generation++
		api.state.Locked, api.state.LockReason = true, model.LockReasonForce
	}

	s2 := NewSession(api, testRegistry(t), s.userID, 0)
	err := s2.UnlockWithPassphrase(ctx, []byte("correct horse 9"))
	if !errors.Is(err, errs.ErrStaleGeneration) {
		t.Fatalf("want ErrStaleGeneration, got %v", err)
	}
	if s2.Unlocked() {
		t.Fatal("stale confirm must purge the derived key")
	}

	// the retry observes the new generation and wins
	if err := s2.UnlockWithPassphrase(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}
	if g := s2.Generation(); g != 2 {
		t.Fatalf("generation after retry: %d, want 2", g)
	}
}

func TestSession_IdleTimeoutPurgesKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := newFakeAPI()
	s := NewSession(api, testRegistry(t), uuid.Must(uuid.NewV4()), time.Minute)
	if err := s.Init(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}

	base := time.Now()
	s.now = func() time.Time { return base }
	if _, err := s.Key(); err != nil {
		t.Fatal(err)
	}

	s.now = func() time.Time { return base.Add(time.Minute) }
	if _, err := s.Key(); !errors.Is(err, errs.ErrVaultLocked) {
		t.Fatalf("want ErrVaultLocked after idle timeout, got %v", err)
	}
	if s.Unlocked() {
		t.Fatal("idle timeout must purge the key")
	}
}

func TestSession_CheckIdleLocksRemotely(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := newFakeAPI()
	s := NewSession(api, testRegistry(t), uuid.Must(uuid.NewV4()), time.Minute)
	if err := s.Init(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}

	base := time.Now()
	s.now = func() time.Time { return base }
	if err := s.CheckIdle(ctx); err != nil {
		t.Fatal(err)
	}
	if len(api.lockReasons) != 0 {
		t.Fatal("no lock expected before the window elapses")
	}

	s.now = func() time.Time { return base.Add(2 * time.Minute) }
	if err := s.CheckIdle(ctx); err != nil {
		t.Fatal(err)
	}
	if len(api.lockReasons) != 1 || api.lockReasons[0] != model.LockReasonIdle {
		t.Fatalf("lock reasons: %v", api.lockReasons)
	}
	if s.Unlocked() {
		t.Fatal("idle check must lock the session")
	}
}

func TestSession_LockPurgesEvenOnServerError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := newFakeAPI()
	s := newTestSession(t, api)
	if err := s.Init(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}

	api.lockErr = fmt.Errorf("server unreachable")
	if err := s.Lock(ctx, model.LockReasonLogout); err == nil {
		t.Fatal("want lock error surfaced")
	}
	if s.Unlocked() {
		t.Fatal("local key must be gone even when the server call fails")
	}
}

func TestSession_Observe(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := newFakeAPI()
	s := newTestSession(t, api)
	if err := s.Init(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}

	// same generation, unlocked: nothing happens
	if err := s.Observe(model.LockState{Generation: 0}); err != nil {
		t.Fatal(err)
	}
	if !s.Unlocked() {
		t.Fatal("key must survive a no-op observe")
	}

	// another device locked at a newer generation
	if err := s.Observe(model.LockState{Locked: true, LockReason: model.LockReasonForce, Generation: 3}); err != nil {
		t.Fatal(err)
	}
	if s.Unlocked() {
		t.Fatal("remote lock must purge the key")
	}
	if g := s.Generation(); g != 3 {
		t.Fatalf("generation not adopted: %d", g)
	}

	// generations never go backwards
	err := s.Observe(model.LockState{Generation: 2})
	if !errors.Is(err, errs.ErrStaleGeneration) {
		t.Fatalf("want ErrStaleGeneration on a backwards generation, got %v", err)
	}
}

func TestSession_Poll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := newFakeAPI()
	s := newTestSession(t, api)
	if err := s.Init(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}

	// a second device locks the vault; the poll round picks it up
	other := NewSession(api, testRegistry(t), s.userID, 0)
	if err := other.Lock(ctx, model.LockReasonForce); err != nil {
		t.Fatal(err)
	}
	if err := s.Poll(ctx); err != nil {
		t.Fatal(err)
	}
	if s.Unlocked() {
		t.Fatal("poll must apply the remote lock")
	}
	if g := s.Generation(); g != 1 {
		t.Fatalf("generation after poll: %d, want 1", g)
	}
}

func TestSession_RewrapPassphrase(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := newFakeAPI()
	s := newTestSession(t, api)
	if err := s.Init(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}
	oldSalt := append([]byte(nil), api.salt...)

	if err := s.RewrapPassphrase(ctx, []byte("new horse 2024")); err != nil {
		t.Fatal(err)
	}
	if api.rewraps != 1 {
		t.Fatalf("rewrap calls: %d", api.rewraps)
	}
	if string(api.salt) == string(oldSalt) {
		t.Fatal("rewrap must generate a fresh salt")
	}

	// old passphrase is dead, new one opens the vault
	s2 := NewSession(api, testRegistry(t), s.userID, 0)
	if err := s2.UnlockWithPassphrase(ctx, []byte("correct horse 9")); !errors.Is(err, errs.ErrInvalidPassphrase) {
		t.Fatalf("old passphrase must fail, got %v", err)
	}
	if err := s2.UnlockWithPassphrase(ctx, []byte("new horse 2024")); err != nil {
		t.Fatal(err)
	}
}

func TestSession_RewrapRequiresUnlocked(t *testing.T) {
	t.Parallel()
	s := newTestSession(t, newFakeAPI())
	err := s.RewrapPassphrase(context.Background(), []byte("new horse 2024"))
	if !errors.Is(err, errs.ErrVaultLocked) {
		t.Fatalf("want ErrVaultLocked, got %v", err)
	}
}

func TestSession_CredentialWrap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := newFakeAPI()
	s := newTestSession(t, api)
	if err := s.Init(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}

	credID := []byte{0xAA, 0xBB, 0xCC}
	secret := []byte("platform-keystore-secret")
	if err := s.RegisterCredentialWrap(ctx, credID, secret); err != nil {
		t.Fatal(err)
	}
	blob := api.credBlobs[hex.EncodeToString(credID)]
	if blob == nil || blob.WrapType != model.WrapTypeCredential {
		t.Fatalf("credential blob: %+v", blob)
	}

	s2 := NewSession(api, testRegistry(t), s.userID, 0)
	if err := s2.UnlockWithCredential(ctx, secret, blob); err != nil {
		t.Fatal(err)
	}
	if !s2.Unlocked() {
		t.Fatal("credential unlock must hold the key")
	}

	// the credential blob is bound to its credential id
	tampered := *blob
	tampered.CredentialID = []byte{0x01}
	s3 := NewSession(api, testRegistry(t), s.userID, 0)
	if err := s3.UnlockWithCredential(ctx, secret, &tampered); !errors.Is(err, errs.ErrInvalidPassphrase) {
		t.Fatalf("want ErrInvalidPassphrase on a foreign credential id, got %v", err)
	}
}
