package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/lockbox/internal/model"
	"github.com/and161185/lockbox/internal/repository"
)

// RecordService defines operations over encrypted records with versioning.
// Reading ciphertext and metadata is permitted regardless of lock state;
// plaintext only ever exists on an unlocked client.
type RecordService interface {
	// Upsert creates or updates records atomically and returns new versions.
	Upsert(ctx context.Context, userID uuid.UUID, ups []model.UpsertRecord) ([]model.RecordVersion, error)
	// Delete sets tombstone on a record and returns the new version.
	Delete(ctx context.Context, userID, id uuid.UUID, baseVer int64) (model.RecordVersion, error)
	// GetChanges returns changes since provided version for delta sync.
	GetChanges(ctx context.Context, userID uuid.UUID, sinceVer int64) ([]model.RecordChange, error)
	// GetOne returns a single record by ID.
	GetOne(ctx context.Context, userID, id uuid.UUID) (*model.EncryptedRecord, error)
}

type RecordServiceImpl struct {
	vaults   repository.VaultRepository
	repo     repository.RecordRepository
	maxBatch int
}

// NewRecordService constructs RecordService with batch limits.
func NewRecordService(vaults repository.VaultRepository, repo repository.RecordRepository, maxBatch int) *RecordServiceImpl {
	if maxBatch <= 0 {
		maxBatch = 1000
	}
	return &RecordServiceImpl{vaults: vaults, repo: repo, maxBatch: maxBatch}
}

// Upsert validates input and delegates atomic batch upsert to the repository.
func (s *RecordServiceImpl) Upsert(ctx context.Context, userID uuid.UUID, ups []model.UpsertRecord) ([]model.RecordVersion, error) {
	v, err := s.getVault(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ups) == 0 {
		return []model.RecordVersion{}, nil
	}
	if len(ups) > s.maxBatch {
		return nil, fmt.Errorf("validation: batch too large (%d > %d)", len(ups), s.maxBatch)
	}
	for i := range ups {
		if ups[i].ID == uuid.Nil {
			return nil, fmt.Errorf("validation: record[%d] empty id", i)
		}
		if ups[i].BaseVer < 0 {
			return nil, fmt.Errorf("validation: record[%d] negative base_ver", i)
		}
		if len(ups[i].Nonce) == 0 || len(ups[i].Ciphertext) == 0 || len(ups[i].AAD) == 0 {
			return nil, fmt.Errorf("validation: record[%d] empty sealed fields", i)
		}
	}
	return s.repo.UpsertBatch(ctx, v.ID, ups)
}

// Delete applies tombstone with optimistic concurrency (ver++).
func (s *RecordServiceImpl) Delete(ctx context.Context, userID, id uuid.UUID, baseVer int64) (model.RecordVersion, error) {
	v, err := s.getVault(ctx, userID)
	if err != nil {
		return model.RecordVersion{}, err
	}
	if id == uuid.Nil {
		return model.RecordVersion{}, errors.New("validation: empty id")
	}
	if baseVer < 0 {
		return model.RecordVersion{}, errors.New("validation: negative base_ver")
	}
	return s.repo.Delete(ctx, v.ID, id, baseVer)
}

// GetChanges returns all changes with ver > sinceVer ordered by ver ASC.
func (s *RecordServiceImpl) GetChanges(ctx context.Context, userID uuid.UUID, sinceVer int64) ([]model.RecordChange, error) {
	v, err := s.getVault(ctx, userID)
	if err != nil {
		return nil, err
	}
	if sinceVer < 0 {
		return nil, errors.New("validation: negative since_ver")
	}
	return s.repo.GetChangesSince(ctx, v.ID, sinceVer)
}

// GetOne fetches a single record by id.
func (s *RecordServiceImpl) GetOne(ctx context.Context, userID, id uuid.UUID) (*model.EncryptedRecord, error) {
	v, err := s.getVault(ctx, userID)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		return nil, errors.New("validation: empty id")
	}
	return s.repo.Get(ctx, v.ID, id)
}

func (s *RecordServiceImpl) getVault(ctx context.Context, userID uuid.UUID) (*model.Vault, error) {
	if userID == uuid.Nil {
		return nil, errors.New("validation: empty userID")
	}
	return s.vaults.GetByUserID(ctx, userID)
}
