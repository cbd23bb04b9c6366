package repository

import (
	"context"

	"github.com/and161185/lockbox/internal/model"
	"github.com/gofrs/uuid/v5"
)

// CredentialRepository stores registered presence credentials and their replay
// counters.
type CredentialRepository interface {
	// Add inserts a credential. Returns ErrAlreadyExists on duplicate id.
	Add(ctx context.Context, c *model.GateCredential) error

	// Get loads one credential by id.
	Get(ctx context.Context, vaultID uuid.UUID, credID []byte) (*model.GateCredential, error)

	// List returns all credentials registered for a vault.
	List(ctx context.Context, vaultID uuid.UUID) ([]model.GateCredential, error)

	// UpdateSignCount persists the authenticator counter after a verified assertion.
	UpdateSignCount(ctx context.Context, vaultID uuid.UUID, credID []byte, signCount uint32) error
}

// GateSessionRepository stores single-use challenge sessions.
type GateSessionRepository interface {
	// Put inserts a session.
	Put(ctx context.Context, s *model.GateSession) error

	// Take removes and returns a session in one step, making every challenge
	// single-use regardless of outcome. Returns ErrNotFound if absent.
	Take(ctx context.Context, id string) (*model.GateSession, error)
}
