// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// LockReason classifies vault lock transitions.
type LockReason string

// Lock reasons. Only Idle and Backgrounded can be cleared with a passphrase
// alone; Logout requires a fresh session first.
const (
	LockReasonIdle         LockReason = "idle"
	LockReasonBackgrounded LockReason = "backgrounded"
	LockReasonLogout       LockReason = "logout"
	LockReasonForce        LockReason = "force"
	LockReasonRotation     LockReason = "rotation"
	LockReasonAdmin        LockReason = "admin"
)

// Valid reports whether the reason is one of the known lock reasons.
func (r LockReason) Valid() bool {
	switch r {
	case LockReasonIdle, LockReasonBackgrounded, LockReasonLogout,
		LockReasonForce, LockReasonRotation, LockReasonAdmin:
		return true
	}
	return false
}

// WrapType identifies which unlock method a wrapped key blob belongs to.
type WrapType string

const (
	WrapTypePassphrase WrapType = "passphrase"
	WrapTypeCredential WrapType = "credential"
	WrapTypeRecovery   WrapType = "recovery"
)

// KDFParams records the key-derivation parameters a vault was initialized with.
// The policy registry is the source of truth for active versions; this is the
// historical record stored on the vault row.
type KDFParams struct {
	Algorithm  string `json:"algorithm"`
	Iterations uint32 `json:"iterations,omitempty"`
	MemoryKiB  uint32 `json:"memory_kib,omitempty"`
	Threads    uint8  `json:"threads,omitempty"`
	SaltLen    int    `json:"salt_len"`
}

// Vault is the single authoritative server-side row per user. The master key
// itself is never part of this entity.
type Vault struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	PolicyVersion  uint32
	PassphraseSalt []byte
	KDFParams      KDFParams
	LockedAt       *time.Time // nil while unlocked
	LockReason     LockReason // empty while unlocked
	EnforceTier    int32
	Generation     int64 // monotonically increasing lock epoch, never decreases
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Locked reports whether the vault is in the locked state.
func (v *Vault) Locked() bool { return v.LockedAt != nil }

// LockState is the poll contract every device reads at a fixed interval.
type LockState struct {
	Locked     bool
	LockReason LockReason
	Generation int64
}

// WrappedKeyBlob is a ciphertext of the KEK under a derived wrapping key.
// AAD binds user, vault, credential and policy version so a blob cannot be
// replayed against another vault, user or policy.
type WrappedKeyBlob struct {
	ID            uuid.UUID
	VaultID       uuid.UUID
	WrapType      WrapType
	WrapVersion   uint32
	PolicyVersion uint32
	CredentialID  []byte // set for WrapTypeCredential, else nil
	Salt          []byte // KDF salt for the wrapping key
	Nonce         []byte
	Ciphertext    []byte
	AAD           []byte
	CreatedAt     time.Time
}

// EncryptedRecord is a single content record sealed on the client.
// The server only ever sees these opaque fields.
type EncryptedRecord struct {
	ID            uuid.UUID
	VaultID       uuid.UUID
	RecordType    string
	PolicyVersion uint32
	Nonce         []byte
	Ciphertext    []byte
	AAD           []byte
	Ver           int64 // optimistic concurrency version (>= 1 once stored)
	Deleted       bool
	UpdatedAt     time.Time
}

// UpsertRecord is a client change intent with optimistic concurrency base version.
type UpsertRecord struct {
	ID            uuid.UUID
	BaseVer       int64
	RecordType    string
	PolicyVersion uint32
	Nonce         []byte
	Ciphertext    []byte
	AAD           []byte
}

// RecordVersion reports the new version after a successful change.
type RecordVersion struct {
	ID        uuid.UUID
	NewVer    int64
	UpdatedAt time.Time
}

// RecordChange describes a single record mutation for delta sync.
type RecordChange struct {
	ID            uuid.UUID
	Ver           int64
	Deleted       bool
	UpdatedAt     time.Time
	RecordType    string
	PolicyVersion uint32
	Nonce         []byte // nil if Deleted
	Ciphertext    []byte // nil if Deleted
	AAD           []byte // nil if Deleted
}

// RecoveryCode is the persisted half of an issued recovery code: only the hash
// survives, the plaintext is shown to the user exactly once.
type RecoveryCode struct {
	ID        uuid.UUID
	VaultID   uuid.UUID
	CodeHash  []byte // SHA-256 of the normalized code, unique
	UsedAt    *time.Time
	CreatedAt time.Time
}

// RecoveryIssue pairs a code hash with the recovery-wrapped key blob produced
// for that code. The plaintext code never appears in this entity.
type RecoveryIssue struct {
	CodeHash []byte
	Blob     WrappedKeyBlob
}

// GateCredential is a registered presence credential (public key material and
// replay counter); it carries no key-wrapping ability of its own.
type GateCredential struct {
	VaultID    uuid.UUID
	CredID     []byte
	Credential []byte // serialized webauthn credential (public key, flags)
	SignCount  uint32
	CreatedAt  time.Time
}

// GateSession is a single-use, short-TTL unlock or registration challenge.
type GateSession struct {
	ID        string
	VaultID   uuid.UUID
	Kind      string // "register" or "unlock"
	Data      []byte // serialized webauthn session data
	ExpiresAt time.Time
	CreatedAt time.Time
}

// LockEvent is an audit entry appended on every lock/unlock transition.
type LockEvent struct {
	ID         uuid.UUID
	VaultID    uuid.UUID
	Generation int64
	Locked     bool
	LockReason LockReason
	CreatedAt  time.Time
}
