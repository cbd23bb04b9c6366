package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/model"
	"github.com/and161185/lockbox/internal/repository"
)

// memRecoveryRepo consumes codes under a mutex the way the SQL layer's
// conditional UPDATE does: the first matching redemption wins, every later
// one sees the code as used.
type memRecoveryRepo struct {
	mu    sync.Mutex
	codes map[string]*model.WrappedKeyBlob
}

var _ repository.RecoveryCodeRepository = (*memRecoveryRepo)(nil)

func (m *memRecoveryRepo) Replace(_ context.Context, _ uuid.UUID, issues []model.RecoveryIssue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes = make(map[string]*model.WrappedKeyBlob, len(issues))
	for i := range issues {
		b := issues[i].Blob
		m.codes[string(issues[i].CodeHash)] = &b
	}
	return nil
}

func (m *memRecoveryRepo) List(context.Context, uuid.UUID) ([]model.RecoveryCode, error) {
	return nil, nil
}

func (m *memRecoveryRepo) Redeem(_ context.Context, _ uuid.UUID, codeHash []byte) (*model.WrappedKeyBlob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	blob, ok := m.codes[string(codeHash)]
	if !ok {
		return nil, errs.ErrRecoveryCodeInvalidOrUsed
	}
	delete(m.codes, string(codeHash))
	return blob, nil
}

func sampleIssue(vaultID uuid.UUID) model.RecoveryIssue {
	h := sha256.Sum256([]byte("AAAA-BBBB-CCCC"))
	blob := sampleBlob(vaultID, model.WrapTypeRecovery, nil)
	return model.RecoveryIssue{CodeHash: h[:], Blob: *blob}
}

func TestRecoveryService_Replace(t *testing.T) {
	t.Parallel()
	v := sampleVault(false)
	codes := &fakeRecoveryRepo{}
	s := NewRecoveryService(&fakeVaultRepo{vault: v}, codes, &fakeLimiter{allowed: true})

	issues := []model.RecoveryIssue{sampleIssue(v.ID), sampleIssue(v.ID)}
	if err := s.Replace(context.Background(), v.UserID, issues); err != nil {
		t.Fatal(err)
	}
	if len(codes.replaceIn) != 2 {
		t.Fatalf("stored issues: %d", len(codes.replaceIn))
	}
}

func TestRecoveryService_Replace_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	locked := sampleVault(true)
	s := NewRecoveryService(&fakeVaultRepo{vault: locked}, &fakeRecoveryRepo{}, &fakeLimiter{allowed: true})
	if err := s.Replace(ctx, locked.UserID, []model.RecoveryIssue{sampleIssue(locked.ID)}); !errors.Is(err, errs.ErrVaultLocked) {
		t.Fatalf("want ErrVaultLocked, got %v", err)
	}

	v := sampleVault(false)
	codes := &fakeRecoveryRepo{}
	s = NewRecoveryService(&fakeVaultRepo{vault: v}, codes, &fakeLimiter{allowed: true})

	if err := s.Replace(ctx, v.UserID, nil); err == nil {
		t.Fatal("want error on empty issue set")
	}

	shortHash := sampleIssue(v.ID)
	shortHash.CodeHash = []byte{1, 2, 3}
	if err := s.Replace(ctx, v.UserID, []model.RecoveryIssue{shortHash}); err == nil {
		t.Fatal("want error on bad code hash length")
	}

	foreign := sampleIssue(uuid.Must(uuid.NewV4()))
	if err := s.Replace(ctx, v.UserID, []model.RecoveryIssue{foreign}); err == nil {
		t.Fatal("want error on blob bound to another vault")
	}

	wrongWrap := sampleIssue(v.ID)
	wrongWrap.Blob.WrapType = model.WrapTypePassphrase
	if err := s.Replace(ctx, v.UserID, []model.RecoveryIssue{wrongWrap}); err == nil {
		t.Fatal("want error on non-recovery wrap type")
	}
	if codes.replaceIn != nil {
		t.Fatal("invalid issue sets must not reach the repository")
	}
}

func TestRecoveryService_List(t *testing.T) {
	t.Parallel()
	v := sampleVault(true)
	used := time.Now()
	codes := &fakeRecoveryRepo{listOut: []model.RecoveryCode{
		{VaultID: v.ID},
		{VaultID: v.ID, UsedAt: &used},
	}}
	s := NewRecoveryService(&fakeVaultRepo{vault: v}, codes, &fakeLimiter{allowed: true})

	out, err := s.List(context.Background(), v.UserID)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[1].UsedAt == nil {
		t.Fatalf("list: %+v", out)
	}
}

func TestRecoveryService_Redeem(t *testing.T) {
	t.Parallel()
	v := sampleVault(true)
	hash := sha256.Sum256([]byte("AAAA-BBBB-CCCC"))
	blob := sampleBlob(v.ID, model.WrapTypeRecovery, nil)
	codes := &fakeRecoveryRepo{redeemOut: blob}
	lim := &fakeLimiter{allowed: true}
	s := NewRecoveryService(&fakeVaultRepo{vault: v}, codes, lim)

	got, err := s.Redeem(context.Background(), v.UserID, hash[:], "203.0.113.7")
	if err != nil {
		t.Fatal(err)
	}
	if got != blob {
		t.Fatal("wrong blob released")
	}
	if !bytes.Equal(codes.redeemInHash, hash[:]) {
		t.Fatal("redeem must look up by the exact hash")
	}
	if lim.successes != 1 {
		t.Fatal("successful redeem must reset the limiter")
	}
}

func TestRecoveryService_Redeem_ConcurrentSingleUse(t *testing.T) {
	t.Parallel()
	v := sampleVault(true)
	hash := sha256.Sum256([]byte("AAAA-BBBB-CCCC"))
	codes := &memRecoveryRepo{}
	err := codes.Replace(context.Background(), v.ID, []model.RecoveryIssue{{
		CodeHash: hash[:],
		Blob:     *sampleBlob(v.ID, model.WrapTypeRecovery, nil),
	}})
	if err != nil {
		t.Fatal(err)
	}
	s := NewRecoveryService(&fakeVaultRepo{vault: v}, codes, &fakeLimiter{allowed: true})

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Redeem(context.Background(), v.UserID, hash[:], "203.0.113.7")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var won, used int
	for err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, errs.ErrRecoveryCodeInvalidOrUsed):
			used++
		default:
			t.Fatalf("unexpected redeem error: %v", err)
		}
	}
	if won != 1 || used != 1 {
		t.Fatalf("want exactly one winner: %d succeeded, %d saw the code as used", won, used)
	}
}

func TestRecoveryService_Redeem_BadHashLength(t *testing.T) {
	t.Parallel()
	v := sampleVault(true)
	lim := &fakeLimiter{allowed: true}
	s := NewRecoveryService(&fakeVaultRepo{vault: v}, &fakeRecoveryRepo{}, lim)

	_, err := s.Redeem(context.Background(), v.UserID, []byte("short"), "203.0.113.7")
	if !errors.Is(err, errs.ErrRecoveryCodeInvalidOrUsed) {
		t.Fatalf("want ErrRecoveryCodeInvalidOrUsed, got %v", err)
	}
}

func TestRecoveryService_Redeem_RateLimited(t *testing.T) {
	t.Parallel()
	v := sampleVault(true)
	hash := sha256.Sum256([]byte("AAAA-BBBB-CCCC"))
	s := NewRecoveryService(&fakeVaultRepo{vault: v}, &fakeRecoveryRepo{}, &fakeLimiter{allowed: false})

	_, err := s.Redeem(context.Background(), v.UserID, hash[:], "203.0.113.7")
	if !errors.Is(err, errs.ErrRateLimited) {
		t.Fatalf("want ErrRateLimited, got %v", err)
	}
}

func TestRecoveryService_Redeem_FailureCountsAndBlocks(t *testing.T) {
	t.Parallel()
	v := sampleVault(true)
	hash := sha256.Sum256([]byte("XXXX-YYYY-ZZZZ"))
	codes := &fakeRecoveryRepo{redeemErr: errs.ErrRecoveryCodeInvalidOrUsed}
	lim := &fakeLimiter{allowed: true, blockAfter: 2}
	s := NewRecoveryService(&fakeVaultRepo{vault: v}, codes, lim)

	_, err := s.Redeem(context.Background(), v.UserID, hash[:], "203.0.113.7")
	if !errors.Is(err, errs.ErrRecoveryCodeInvalidOrUsed) {
		t.Fatalf("first failure: want ErrRecoveryCodeInvalidOrUsed, got %v", err)
	}
	if lim.failures != 1 {
		t.Fatalf("limiter failures: %d", lim.failures)
	}

	// the second failure saturates the window
	_, err = s.Redeem(context.Background(), v.UserID, hash[:], "203.0.113.7")
	if !errors.Is(err, errs.ErrRateLimited) {
		t.Fatalf("second failure: want ErrRateLimited, got %v", err)
	}
}
