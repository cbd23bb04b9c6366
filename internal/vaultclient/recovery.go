package vaultclient

import (
	"context"
	"crypto/rand"
	"errors"
	"strings"

	pkgcrypto "github.com/and161185/lockbox/internal/crypto"
	"github.com/and161185/lockbox/internal/crypto/vaultkey"
	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/model"
)

// Recovery code format: three groups of four characters from an alphabet with
// ambiguous glyphs removed (no I, O, 0, 1).
const (
	recoveryAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	recoveryGroupLen   = 4
	recoveryGroups     = 3
	DefaultCodeCount   = 8
	recoverySeparators = "- "
)

// A redeemed code is single-use, so a generation race during the confirm is
// retried against refreshed state instead of surfacing StaleGeneration.
const redeemConfirmRetries = 3

// GenerateRecoveryCode returns one fresh code in canonical XXXX-XXXX-XXXX form.
func GenerateRecoveryCode() (string, error) {
	raw := make([]byte, recoveryGroups*recoveryGroupLen)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	var b strings.Builder
	for i, c := range raw {
		if i > 0 && i%recoveryGroupLen == 0 {
			b.WriteByte('-')
		}
		b.WriteByte(recoveryAlphabet[int(c)%len(recoveryAlphabet)])
	}
	return b.String(), nil
}

// NormalizeRecoveryCode canonicalizes user input: uppercase, separators
// stripped, dashes reinserted between groups. Returns an error if what is
// left does not have the right shape.
func NormalizeRecoveryCode(code string) (string, error) {
	var compact strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(code)) {
		if strings.ContainsRune(recoverySeparators, r) {
			continue
		}
		if !strings.ContainsRune(recoveryAlphabet, r) {
			return "", errors.New("recovery code: unexpected character")
		}
		compact.WriteRune(r)
	}
	s := compact.String()
	if len(s) != recoveryGroups*recoveryGroupLen {
		return "", errors.New("recovery code: wrong length")
	}
	var out strings.Builder
	for i := 0; i < len(s); i += recoveryGroupLen {
		if i > 0 {
			out.WriteByte('-')
		}
		out.WriteString(s[i : i+recoveryGroupLen])
	}
	return out.String(), nil
}

// IssueRecoveryCodes generates n codes, wraps the KEK once per code and
// replaces the server-side issue set. The plaintext codes are returned exactly
// once for display; only their hashes survive anywhere else. Requires an
// unlocked session. n <= 0 selects the default count.
func (s *Session) IssueRecoveryCodes(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		n = DefaultCodeCount
	}
	s.mu.Lock()
	key, vaultID := s.key, s.vaultID
	s.mu.Unlock()
	if key == nil {
		return nil, errs.ErrVaultLocked
	}

	p := s.reg.Default()
	codes := make([]string, 0, n)
	issues := make([]model.RecoveryIssue, 0, n)
	for i := 0; i < n; i++ {
		code, err := GenerateRecoveryCode()
		if err != nil {
			return nil, err
		}
		salt, err := pkgcrypto.RandBytes(p.SaltLen)
		if err != nil {
			return nil, err
		}
		wrapKey, err := deriveCtx(ctx, p, []byte(code), salt)
		if err != nil {
			return nil, err
		}
		var blob *model.WrappedKeyBlob
		err = key.Use(func(kek []byte) error {
			b, e := buildBlob(p, vaultID, s.userID, model.WrapTypeRecovery, nil, salt, wrapKey, kek)
			blob = b
			return e
		})
		vaultkey.Zero(wrapKey)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
		issues = append(issues, model.RecoveryIssue{
			CodeHash: pkgcrypto.HashRecoveryCode(code),
			Blob:     *blob,
		})
	}
	if err := s.api.ReplaceRecoveryCodes(ctx, issues); err != nil {
		return nil, err
	}
	return codes, nil
}

// RedeemRecoveryCode unlocks the vault with a recovery code and immediately
// rewraps the KEK under a new passphrase. The rewrap is not optional: a
// redeemed code has been typed somewhere, so the passphrase wrap it bypassed
// must be replaced before the session is handed back.
func (s *Session) RedeemRecoveryCode(ctx context.Context, code string, newPassphrase []byte) error {
	if err := CheckPassphrase(newPassphrase); err != nil {
		return err
	}
	canonical, err := NormalizeRecoveryCode(code)
	if err != nil {
		return err
	}

	info, err := s.api.VaultInfo(ctx)
	if err != nil {
		return err
	}
	if err := s.Observe(info.State); err != nil {
		return err
	}
	blob, err := s.api.RedeemRecoveryCode(ctx, pkgcrypto.HashRecoveryCode(canonical))
	if err != nil {
		return err
	}

	// The code is consumed server-side the moment redemption succeeds. A lock
	// racing the confirm must not waste it: the released blob is still in hand,
	// so refresh the observed generation and confirm again.
	err = s.unlockWithBlob(ctx, info, blob, []byte(canonical), nil)
	for attempt := 0; attempt < redeemConfirmRetries && errors.Is(err, errs.ErrStaleGeneration); attempt++ {
		info, err = s.api.VaultInfo(ctx)
		if err != nil {
			return err
		}
		if err = s.Observe(info.State); err != nil {
			return err
		}
		err = s.unlockWithBlob(ctx, info, blob, []byte(canonical), nil)
	}
	if err != nil {
		return err
	}
	return s.RewrapPassphrase(ctx, newPassphrase)
}
