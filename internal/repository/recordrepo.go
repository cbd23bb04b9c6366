package repository

import (
	"context"

	"github.com/and161185/lockbox/internal/model"
	"github.com/gofrs/uuid/v5"
)

// RecordRepository provides versioned access to encrypted records.
type RecordRepository interface {
	// UpsertBatch inserts or updates records using optimistic concurrency.
	UpsertBatch(ctx context.Context, vaultID uuid.UUID, ups []model.UpsertRecord) ([]model.RecordVersion, error)

	// Delete sets tombstone on a record (ver++) with base version check.
	Delete(ctx context.Context, vaultID, recordID uuid.UUID, baseVer int64) (model.RecordVersion, error)

	// GetChangesSince returns all changes with version greater than sinceVer.
	GetChangesSince(ctx context.Context, vaultID uuid.UUID, sinceVer int64) ([]model.RecordChange, error)

	// Get returns a single record by ID.
	Get(ctx context.Context, vaultID, recordID uuid.UUID) (*model.EncryptedRecord, error)

	// GetMaxVersion returns the latest version for a vault.
	GetMaxVersion(ctx context.Context, vaultID uuid.UUID) (int64, error)
}
