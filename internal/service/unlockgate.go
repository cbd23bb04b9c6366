package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/gofrs/uuid/v5"

	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/limiter"
	"github.com/and161185/lockbox/internal/model"
	"github.com/and161185/lockbox/internal/repository"
)

// Gate session kinds.
const (
	gateKindRegister = "register"
	gateKindUnlock   = "unlock"
)

// GateConfig controls WebAuthn relying party settings for the unlock gate.
type GateConfig struct {
	RPDisplayName string        `env:"LOCKBOX_WEBAUTHN_RP_DISPLAY_NAME" envDefault:"Lockbox"`
	RPID          string        `env:"LOCKBOX_WEBAUTHN_RP_ID"           envDefault:"localhost"`
	RPOrigins     []string      `env:"LOCKBOX_WEBAUTHN_RP_ORIGINS"      envSeparator:"," envDefault:"https://localhost:8443"`
	ChallengeTTL  time.Duration `env:"LOCKBOX_WEBAUTHN_CHALLENGE_TTL"   envDefault:"2m"`
}

// LoadGateConfigFromEnv returns gate configuration with defaults.
func LoadGateConfigFromEnv() GateConfig {
	var cfg GateConfig
	if err := env.Parse(&cfg); err != nil {
		return GateConfig{
			RPDisplayName: "Lockbox",
			RPID:          "localhost",
			RPOrigins:     []string{"https://localhost:8443"},
			ChallengeTTL:  2 * time.Minute,
		}
	}
	return cfg
}

// UnlockGate releases presence-wrapped key blobs behind a proof-of-presence
// ceremony. It is strictly an authorization gate: verification never requires
// the KEK, so the gate cannot become a decryption oracle.
type UnlockGate interface {
	// BeginRegistration issues a single-use credential-creation challenge.
	BeginRegistration(ctx context.Context, userID uuid.UUID) (optionsJSON []byte, sessionID string, err error)
	// FinishRegistration verifies the attestation and stores the credential.
	FinishRegistration(ctx context.Context, userID uuid.UUID, sessionID string, responseJSON []byte) (credID []byte, err error)
	// BeginUnlock issues a single-use, short-TTL assertion challenge.
	BeginUnlock(ctx context.Context, userID uuid.UUID) (optionsJSON []byte, sessionID string, err error)
	// FinishUnlock verifies the signed assertion and the replay counter, and
	// only on success releases the credential's wrapped key blob.
	FinishUnlock(ctx context.Context, userID uuid.UUID, sessionID string, responseJSON []byte, ip string) (*model.WrappedKeyBlob, error)
}

// ceremonyProvider is the slice of *webauthn.WebAuthn the gate uses (fakeable in tests).
type ceremonyProvider interface {
	BeginRegistration(user webauthn.User, opts ...webauthn.RegistrationOption) (*protocol.CredentialCreation, *webauthn.SessionData, error)
	CreateCredential(user webauthn.User, session webauthn.SessionData, response *protocol.ParsedCredentialCreationData) (*webauthn.Credential, error)
	BeginLogin(user webauthn.User, opts ...webauthn.LoginOption) (*protocol.CredentialAssertion, *webauthn.SessionData, error)
	ValidateLogin(user webauthn.User, session webauthn.SessionData, response *protocol.ParsedCredentialAssertionData) (*webauthn.Credential, error)
}

// assertionParser decodes raw ceremony responses (fakeable in tests).
type assertionParser interface {
	ParseCredentialCreationResponseBytes(data []byte) (*protocol.ParsedCredentialCreationData, error)
	ParseCredentialRequestResponseBytes(data []byte) (*protocol.ParsedCredentialAssertionData, error)
}

type defaultParser struct{}

func (defaultParser) ParseCredentialCreationResponseBytes(data []byte) (*protocol.ParsedCredentialCreationData, error) {
	return protocol.ParseCredentialCreationResponseBytes(data)
}

func (defaultParser) ParseCredentialRequestResponseBytes(data []byte) (*protocol.ParsedCredentialAssertionData, error) {
	return protocol.ParseCredentialRequestResponseBytes(data)
}

type UnlockGateImpl struct {
	vaults   repository.VaultRepository
	creds    repository.CredentialRepository
	sessions repository.GateSessionRepository
	blobs    repository.BlobRepository
	web      ceremonyProvider
	parser   assertionParser
	lim      limiter.Limiter
	ttl      time.Duration
	now      func() time.Time
}

// NewUnlockGate constructs the gate from config and repositories.
func NewUnlockGate(
	cfg GateConfig,
	vaults repository.VaultRepository,
	creds repository.CredentialRepository,
	sessions repository.GateSessionRepository,
	blobs repository.BlobRepository,
	lim limiter.Limiter,
) (*UnlockGateImpl, error) {
	web, err := webauthn.New(&webauthn.Config{
		RPDisplayName: cfg.RPDisplayName,
		RPID:          cfg.RPID,
		RPOrigins:     cfg.RPOrigins,
	})
	if err != nil {
		return nil, err
	}
	return &UnlockGateImpl{
		vaults:   vaults,
		creds:    creds,
		sessions: sessions,
		blobs:    blobs,
		web:      web,
		parser:   defaultParser{},
		lim:      lim,
		ttl:      cfg.ChallengeTTL,
		now:      time.Now,
	}, nil
}

// gateUser adapts a vault to the webauthn.User interface. The vault id doubles
// as the user handle; display naming is irrelevant to the gate.
type gateUser struct {
	vaultID     uuid.UUID
	credentials []webauthn.Credential
}

func (u *gateUser) WebAuthnID() []byte                         { return u.vaultID.Bytes() }
func (u *gateUser) WebAuthnName() string                       { return u.vaultID.String() }
func (u *gateUser) WebAuthnDisplayName() string                { return u.vaultID.String() }
func (u *gateUser) WebAuthnIcon() string                       { return "" }
func (u *gateUser) WebAuthnCredentials() []webauthn.Credential { return u.credentials }

// BeginRegistration starts a credential-creation ceremony.
func (g *UnlockGateImpl) BeginRegistration(ctx context.Context, userID uuid.UUID) ([]byte, string, error) {
	v, user, err := g.loadGateUser(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	opts := []webauthn.RegistrationOption{
		webauthn.WithResidentKeyRequirement(protocol.ResidentKeyRequirementRequired),
	}
	if len(user.credentials) > 0 {
		opts = append(opts, webauthn.WithExclusions(webauthn.Credentials(user.credentials).CredentialDescriptors()))
	}
	creation, session, err := g.web.BeginRegistration(user, opts...)
	if err != nil {
		return nil, "", err
	}

	sessionID, err := g.storeSession(ctx, v.ID, gateKindRegister, session)
	if err != nil {
		return nil, "", err
	}
	optionsJSON, err := json.Marshal(creation)
	if err != nil {
		return nil, "", err
	}
	return optionsJSON, sessionID, nil
}

// FinishRegistration verifies the attestation response and persists the new
// credential with its initial sign counter.
func (g *UnlockGateImpl) FinishRegistration(ctx context.Context, userID uuid.UUID, sessionID string, responseJSON []byte) ([]byte, error) {
	v, user, err := g.loadGateUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	session, err := g.takeSession(ctx, v.ID, sessionID, gateKindRegister)
	if err != nil {
		return nil, err
	}

	parsed, err := g.parser.ParseCredentialCreationResponseBytes(responseJSON)
	if err != nil {
		return nil, errs.ErrAssertionInvalid
	}
	credential, err := g.web.CreateCredential(user, *session, parsed)
	if err != nil {
		return nil, errs.ErrAssertionInvalid
	}

	raw, err := json.Marshal(credential)
	if err != nil {
		return nil, err
	}
	if err := g.creds.Add(ctx, &model.GateCredential{
		VaultID:    v.ID,
		CredID:     credential.ID,
		Credential: raw,
		SignCount:  credential.Authenticator.SignCount,
	}); err != nil {
		return nil, err
	}
	return credential.ID, nil
}

// BeginUnlock starts an assertion ceremony over the vault's registered credentials.
func (g *UnlockGateImpl) BeginUnlock(ctx context.Context, userID uuid.UUID) ([]byte, string, error) {
	v, user, err := g.loadGateUser(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if len(user.credentials) == 0 {
		return nil, "", errs.ErrNotFound
	}

	assertion, session, err := g.web.BeginLogin(user)
	if err != nil {
		return nil, "", err
	}
	sessionID, err := g.storeSession(ctx, v.ID, gateKindUnlock, session)
	if err != nil {
		return nil, "", err
	}
	optionsJSON, err := json.Marshal(assertion)
	if err != nil {
		return nil, "", err
	}
	return optionsJSON, sessionID, nil
}

// FinishUnlock verifies the assertion signature against the registered public
// key, enforces a strictly increasing sign counter, and releases the blob.
func (g *UnlockGateImpl) FinishUnlock(
	ctx context.Context, userID uuid.UUID, sessionID string, responseJSON []byte, ip string,
) (*model.WrappedKeyBlob, error) {
	v, user, err := g.loadGateUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	// Rate limiting comes first: a blocked caller must not burn its single-use
	// challenge and can retry with the same session once the block lifts.
	ipHash := limiter.HashIP(ip)
	allowed, _, err := g.lim.Allow(ctx, v.ID, ipHash)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errs.ErrRateLimited
	}

	session, err := g.takeSession(ctx, v.ID, sessionID, gateKindUnlock)
	if err != nil {
		return nil, err
	}

	parsed, err := g.parser.ParseCredentialRequestResponseBytes(responseJSON)
	if err != nil {
		return nil, g.fail(ctx, v.ID, ipHash, errs.ErrAssertionInvalid)
	}
	validated, err := g.web.ValidateLogin(user, *session, parsed)
	if err != nil {
		return nil, g.fail(ctx, v.ID, ipHash, errs.ErrAssertionInvalid)
	}

	stored, err := g.creds.Get(ctx, v.ID, validated.ID)
	if err != nil {
		return nil, g.fail(ctx, v.ID, ipHash, errs.ErrAssertionInvalid)
	}
	// Authenticators that support counters must report strictly increasing
	// values; an equal or lower counter means a cloned or replayed assertion.
	newCount := validated.Authenticator.SignCount
	if (stored.SignCount > 0 || newCount > 0) && newCount <= stored.SignCount {
		return nil, g.fail(ctx, v.ID, ipHash, errs.ErrCounterReplay)
	}
	if err := g.creds.UpdateSignCount(ctx, v.ID, validated.ID, newCount); err != nil {
		return nil, err
	}

	_ = g.lim.Success(ctx, v.ID, ipHash)
	return g.blobs.Get(ctx, v.ID, model.WrapTypeCredential, validated.ID)
}

func (g *UnlockGateImpl) fail(ctx context.Context, vaultID uuid.UUID, ipHash []byte, kind error) error {
	if blocked, _, err := g.lim.Failure(ctx, vaultID, ipHash); err == nil && blocked {
		return errs.ErrRateLimited
	}
	return kind
}

func (g *UnlockGateImpl) loadGateUser(ctx context.Context, userID uuid.UUID) (*model.Vault, *gateUser, error) {
	if userID == uuid.Nil {
		return nil, nil, errors.New("validation: empty userID")
	}
	v, err := g.vaults.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	records, err := g.creds.List(ctx, v.ID)
	if err != nil {
		return nil, nil, err
	}
	user := &gateUser{vaultID: v.ID}
	for i := range records {
		var c webauthn.Credential
		if err := json.Unmarshal(records[i].Credential, &c); err != nil {
			return nil, nil, err
		}
		// The persisted sign counter is authoritative; the serialized snapshot
		// may lag behind it.
		c.Authenticator.SignCount = records[i].SignCount
		user.credentials = append(user.credentials, c)
	}
	return v, user, nil
}

func (g *UnlockGateImpl) storeSession(ctx context.Context, vaultID uuid.UUID, kind string, session *webauthn.SessionData) (string, error) {
	data, err := json.Marshal(session)
	if err != nil {
		return "", err
	}
	sid, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	sessionID := sid.String()
	err = g.sessions.Put(ctx, &model.GateSession{
		ID:        sessionID,
		VaultID:   vaultID,
		Kind:      kind,
		Data:      data,
		ExpiresAt: g.now().Add(g.ttl),
	})
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

// takeSession consumes a challenge session. A missing, foreign, mismatched or
// expired session all come back as ErrChallengeExpired: the challenge is gone
// either way and the caller must begin a new ceremony.
func (g *UnlockGateImpl) takeSession(ctx context.Context, vaultID uuid.UUID, sessionID, kind string) (*webauthn.SessionData, error) {
	if sessionID == "" {
		return nil, errs.ErrChallengeExpired
	}
	s, err := g.sessions.Take(ctx, sessionID)
	if err != nil {
		return nil, errs.ErrChallengeExpired
	}
	if s.VaultID != vaultID || s.Kind != kind {
		return nil, errs.ErrChallengeExpired
	}
	if g.now().After(s.ExpiresAt) {
		return nil, errs.ErrChallengeExpired
	}
	var data webauthn.SessionData
	if err := json.Unmarshal(s.Data, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
