package vaultclient

import (
	"unicode"
	"unicode/utf8"

	"github.com/and161185/lockbox/internal/errs"
)

// MinPassphraseLen is the minimum passphrase length in runes.
const MinPassphraseLen = 10

// CheckPassphrase enforces the minimum strength rule: at least
// MinPassphraseLen runes with at least one letter and one digit. Runs on the
// client only; the server never sees a passphrase to judge.
func CheckPassphrase(passphrase []byte) error {
	if utf8.RuneCount(passphrase) < MinPassphraseLen {
		return errs.ErrWeakPassphrase
	}
	var hasLetter, hasDigit bool
	for _, r := range string(passphrase) {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errs.ErrWeakPassphrase
	}
	return nil
}
