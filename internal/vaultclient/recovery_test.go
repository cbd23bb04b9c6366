package vaultclient

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/model"
)

func TestGenerateRecoveryCode_Format(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateRecoveryCode()
		if err != nil {
			t.Fatal(err)
		}
		parts := strings.Split(code, "-")
		if len(parts) != recoveryGroups {
			t.Fatalf("code %q: want %d groups", code, recoveryGroups)
		}
		for _, p := range parts {
			if len(p) != recoveryGroupLen {
				t.Fatalf("code %q: group %q wrong length", code, p)
			}
			for _, r := range p {
				if !strings.ContainsRune(recoveryAlphabet, r) {
					t.Fatalf("code %q: character %q outside alphabet", code, r)
				}
			}
		}
		if seen[code] {
			t.Fatalf("duplicate code %q", code)
		}
		seen[code] = true
	}
}

func TestNormalizeRecoveryCode(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"ABCD-EFGH-JKLM", "ABCD-EFGH-JKLM", true},
		{"abcd efgh jklm", "ABCD-EFGH-JKLM", true},
		{"  abcdEFGHjklm ", "ABCD-EFGH-JKLM", true},
		{"ABCD-EFGH-JKL", "", false},   // too short
		{"ABCD-EFGH-JKLMN", "", false}, // too long
		{"ABCD-EFGH-JKL0", "", false},  // 0 not in alphabet
		{"ABCD-EFGH-JKLI", "", false},  // I not in alphabet
		{"ABCD_EFGH_JKLM", "", false},  // unexpected separator
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := NormalizeRecoveryCode(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("normalize(%q) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Fatalf("normalize(%q): want error", tc.in)
		}
	}
}

func TestSession_IssueRecoveryCodes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := newFakeAPI()
	s := newTestSession(t, api)
	if err := s.Init(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}

	codes, err := s.IssueRecoveryCodes(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(codes) != 3 || len(api.issues) != 3 {
		t.Fatalf("codes %d, issues %d", len(codes), len(api.issues))
	}
	for _, iss := range api.issues {
		if iss.Blob.WrapType != model.WrapTypeRecovery {
			t.Fatalf("issue blob wrap type %q", iss.Blob.WrapType)
		}
		if len(iss.Blob.CredentialID) != 0 {
			t.Fatal("recovery blob must not carry a credential id")
		}
		for _, code := range codes {
			if strings.Contains(string(iss.Blob.Ciphertext), code) {
				t.Fatal("plaintext code leaked into a blob")
			}
		}
	}
}

func TestSession_IssueRecoveryCodes_DefaultCountAndLocked(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := newFakeAPI()
	s := newTestSession(t, api)

	if _, err := s.IssueRecoveryCodes(ctx, 0); !errors.Is(err, errs.ErrVaultLocked) {
		t.Fatalf("want ErrVaultLocked on a locked session, got %v", err)
	}

	if err := s.Init(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}
	codes, err := s.IssueRecoveryCodes(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(codes) != DefaultCodeCount {
		t.Fatalf("default issue count %d, want %d", len(codes), DefaultCodeCount)
	}
}

func TestSession_RedeemRecoveryCode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := newFakeAPI()
	s := newTestSession(t, api)
	if err := s.Init(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}
	codes, err := s.IssueRecoveryCodes(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}

	// the passphrase is forgotten; a fresh device redeems a code
	s2 := NewSession(api, testRegistry(t), s.userID, 0)
	messy := strings.ToLower(strings.ReplaceAll(codes[0], "-", " "))
	if err := s2.RedeemRecoveryCode(ctx, messy, []byte("replacement 77")); err != nil {
		t.Fatal(err)
	}
	if !s2.Unlocked() {
		t.Fatal("redeem must leave the session unlocked")
	}
	if api.rewraps != 1 {
		t.Fatal("redeem must rewrap the passphrase blob")
	}

	// the redeemed code is spent
	s3 := NewSession(api, testRegistry(t), s.userID, 0)
	err = s3.RedeemRecoveryCode(ctx, codes[0], []byte("replacement 78"))
	if !errors.Is(err, errs.ErrRecoveryCodeInvalidOrUsed) {
		t.Fatalf("want ErrRecoveryCodeInvalidOrUsed on reuse, got %v", err)
	}

	// the new passphrase works, the old one does not
	s4 := NewSession(api, testRegistry(t), s.userID, 0)
	if err := s4.UnlockWithPassphrase(ctx, []byte("correct horse 9")); !errors.Is(err, errs.ErrInvalidPassphrase) {
		t.Fatalf("old passphrase must be dead after redeem, got %v", err)
	}
	if err := s4.UnlockWithPassphrase(ctx, []byte("replacement 77")); err != nil {
		t.Fatal(err)
	}
}

func TestSession_RedeemRecoveryCode_WeakNewPassphraseDoesNotBurnCode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := newFakeAPI()
	s := newTestSession(t, api)
	if err := s.Init(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}
	codes, err := s.IssueRecoveryCodes(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}

	s2 := NewSession(api, testRegistry(t), s.userID, 0)
	if err := s2.RedeemRecoveryCode(ctx, codes[0], []byte("weak")); !errors.Is(err, errs.ErrWeakPassphrase) {
		t.Fatalf("want ErrWeakPassphrase, got %v", err)
	}
	// the code must still be redeemable afterwards
	if err := s2.RedeemRecoveryCode(ctx, codes[0], []byte("replacement 77")); err != nil {
		t.Fatal(err)
	}
}

func TestSession_RedeemRecoveryCode_RetriesConfirmAfterRacingLock(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := newFakeAPI()
	s := newTestSession(t, api)
	if err := s.Init(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}
	codes, err := s.IssueRecoveryCodes(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}

	// another device force-locks between redemption and the confirm; the code
	// was already consumed server-side, so the confirm must be retried against
	// the fresh generation instead of wasting the code
	api.beforeConfirm = func() {
		api.beforeConfirm = nil
		api.state.Generation++
		api.state.Locked, api.state.LockReason = true, model.LockReasonForce
	}

	s2 := NewSession(api, testRegistry(t), s.userID, 0)
	if err := s2.RedeemRecoveryCode(ctx, codes[0], []byte("replacement 77")); err != nil {
		t.Fatal(err)
	}
	if !s2.Unlocked() {
		t.Fatal("redeem must leave the session unlocked after the retry")
	}
	if api.rewraps != 1 {
		t.Fatal("redeem must rewrap the passphrase blob")
	}

	// the retried redeem spent exactly one code
	s3 := NewSession(api, testRegistry(t), s.userID, 0)
	if err := s3.RedeemRecoveryCode(ctx, codes[0], []byte("replacement 78")); !errors.Is(err, errs.ErrRecoveryCodeInvalidOrUsed) {
		t.Fatalf("want ErrRecoveryCodeInvalidOrUsed on reuse, got %v", err)
	}
	if err := s3.RedeemRecoveryCode(ctx, codes[1], []byte("replacement 78")); err != nil {
		t.Fatal(err)
	}
}

func TestSession_RedeemRecoveryCode_UnknownCode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	api := newFakeAPI()
	s := newTestSession(t, api)
	if err := s.Init(ctx, []byte("correct horse 9")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.IssueRecoveryCodes(ctx, 1); err != nil {
		t.Fatal(err)
	}

	s2 := NewSession(api, testRegistry(t), uuid.Must(uuid.NewV4()), 0)
	err := s2.RedeemRecoveryCode(ctx, "ABCD-EFGH-JKLM", []byte("replacement 77"))
	if !errors.Is(err, errs.ErrRecoveryCodeInvalidOrUsed) {
		t.Fatalf("want ErrRecoveryCodeInvalidOrUsed, got %v", err)
	}
}
