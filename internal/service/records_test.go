package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/model"
)

func sampleUpsert() model.UpsertRecord {
	return model.UpsertRecord{
		ID:            uuid.Must(uuid.NewV4()),
		BaseVer:       0,
		RecordType:    "login",
		PolicyVersion: 1,
		Nonce:         []byte("nonce-nonce!"),
		Ciphertext:    []byte("sealed"),
		AAD:           []byte("aad"),
	}
}

func TestNewRecordService_DefaultMaxBatch(t *testing.T) {
	s := NewRecordService(&fakeVaultRepo{}, &fakeRecordRepo{}, 0)
	if s.maxBatch != 1000 {
		t.Fatalf("default maxBatch want 1000, got %d", s.maxBatch)
	}
}

func TestRecordService_Upsert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	v := sampleVault(false)
	repo := &fakeRecordRepo{upsertOut: []model.RecordVersion{{NewVer: 1}}}
	s := NewRecordService(&fakeVaultRepo{vault: v}, repo, 2)

	out, err := s.Upsert(ctx, v.UserID, []model.UpsertRecord{sampleUpsert()})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].NewVer != 1 {
		t.Fatalf("versions: %+v", out)
	}
	if repo.upsertInVault != v.ID {
		t.Fatal("upsert must be scoped to the user's vault")
	}
}

func TestRecordService_Upsert_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	v := sampleVault(false)
	repo := &fakeRecordRepo{}
	s := NewRecordService(&fakeVaultRepo{vault: v}, repo, 2)

	if _, err := s.Upsert(ctx, uuid.Nil, nil); err == nil {
		t.Fatal("want validation error on empty userID")
	}

	out, err := s.Upsert(ctx, v.UserID, nil)
	if err != nil || len(out) != 0 {
		t.Fatalf("empty batch: %v %v", out, err)
	}

	if _, err := s.Upsert(ctx, v.UserID, []model.UpsertRecord{sampleUpsert(), sampleUpsert(), sampleUpsert()}); err == nil {
		t.Fatal("want error on batch over limit")
	}

	noID := sampleUpsert()
	noID.ID = uuid.Nil
	if _, err := s.Upsert(ctx, v.UserID, []model.UpsertRecord{noID}); err == nil {
		t.Fatal("want error on empty record id")
	}

	negVer := sampleUpsert()
	negVer.BaseVer = -1
	if _, err := s.Upsert(ctx, v.UserID, []model.UpsertRecord{negVer}); err == nil {
		t.Fatal("want error on negative base_ver")
	}

	unsealed := sampleUpsert()
	unsealed.Ciphertext = nil
	if _, err := s.Upsert(ctx, v.UserID, []model.UpsertRecord{unsealed}); err == nil {
		t.Fatal("want error on empty sealed fields")
	}
	if repo.upsertInUps != nil {
		t.Fatal("invalid batches must not reach the repository")
	}
}

func TestRecordService_Upsert_VersionConflict(t *testing.T) {
	t.Parallel()
	v := sampleVault(false)
	repo := &fakeRecordRepo{upsertErr: errs.ErrVersionConflict}
	s := NewRecordService(&fakeVaultRepo{vault: v}, repo, 10)

	_, err := s.Upsert(context.Background(), v.UserID, []model.UpsertRecord{sampleUpsert()})
	if !errors.Is(err, errs.ErrVersionConflict) {
		t.Fatalf("want ErrVersionConflict, got %v", err)
	}
}

func TestRecordService_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	v := sampleVault(false)
	id := uuid.Must(uuid.NewV4())
	repo := &fakeRecordRepo{delOut: model.RecordVersion{ID: id, NewVer: 4}}
	s := NewRecordService(&fakeVaultRepo{vault: v}, repo, 10)

	out, err := s.Delete(ctx, v.UserID, id, 3)
	if err != nil {
		t.Fatal(err)
	}
	if out.NewVer != 4 || repo.delInID != id || repo.delInBase != 3 {
		t.Fatalf("delete: %+v (in id %s base %d)", out, repo.delInID, repo.delInBase)
	}

	if _, err := s.Delete(ctx, v.UserID, uuid.Nil, 0); err == nil {
		t.Fatal("want error on empty id")
	}
	if _, err := s.Delete(ctx, v.UserID, id, -1); err == nil {
		t.Fatal("want error on negative base_ver")
	}
}

func TestRecordService_GetChanges(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	v := sampleVault(false)
	repo := &fakeRecordRepo{chOut: []model.RecordChange{{Ver: 2}, {Ver: 3, Deleted: true}}}
	s := NewRecordService(&fakeVaultRepo{vault: v}, repo, 10)

	out, err := s.GetChanges(ctx, v.UserID, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || repo.chInSince != 1 {
		t.Fatalf("changes: %+v since %d", out, repo.chInSince)
	}

	if _, err := s.GetChanges(ctx, v.UserID, -1); err == nil {
		t.Fatal("want error on negative since_ver")
	}
}

func TestRecordService_GetOne(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	v := sampleVault(false)
	id := uuid.Must(uuid.NewV4())
	rec := &model.EncryptedRecord{ID: id, VaultID: v.ID, Ver: 2}
	s := NewRecordService(&fakeVaultRepo{vault: v}, &fakeRecordRepo{getOut: rec}, 10)

	got, err := s.GetOne(ctx, v.UserID, id)
	if err != nil {
		t.Fatal(err)
	}
	if got != rec {
		t.Fatal("wrong record returned")
	}
	if _, err := s.GetOne(ctx, v.UserID, uuid.Nil); err == nil {
		t.Fatal("want error on empty id")
	}
}
