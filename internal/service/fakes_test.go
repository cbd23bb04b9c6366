package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/limiter"
	"github.com/and161185/lockbox/internal/model"
	"github.com/and161185/lockbox/internal/repository"
)

type fakeVaultRepo struct {
	vault  *model.Vault
	getErr error

	createIn  *model.Vault
	createErr error

	state    model.LockState
	stateErr error

	lockInReason model.LockReason
	lockInTier   int32
	lockOut      int64
	lockErr      error

	confirmInGen int64
	confirmOut   int64
	confirmErr   error

	paramsInVer  uint32
	paramsInSalt []byte
	paramsIn     model.KDFParams
	paramsErr    error
}

var _ repository.VaultRepository = (*fakeVaultRepo)(nil)

func (f *fakeVaultRepo) Create(_ context.Context, v *model.Vault) error {
	f.createIn = v
	return f.createErr
}
func (f *fakeVaultRepo) GetByUserID(_ context.Context, _ uuid.UUID) (*model.Vault, error) {
	return f.vault, f.getErr
}
func (f *fakeVaultRepo) GetState(_ context.Context, _ uuid.UUID) (model.LockState, error) {
	return f.state, f.stateErr
}
func (f *fakeVaultRepo) Lock(_ context.Context, _ uuid.UUID, reason model.LockReason, tier int32) (int64, error) {
	f.lockInReason, f.lockInTier = reason, tier
	return f.lockOut, f.lockErr
}
func (f *fakeVaultRepo) ConfirmUnlock(_ context.Context, _ uuid.UUID, observedGen int64) (int64, error) {
	f.confirmInGen = observedGen
	return f.confirmOut, f.confirmErr
}
func (f *fakeVaultRepo) SetPassphraseParams(_ context.Context, _ uuid.UUID, policyVersion uint32, salt []byte, params model.KDFParams) error {
	f.paramsInVer, f.paramsInSalt, f.paramsIn = policyVersion, salt, params
	return f.paramsErr
}

type fakeBlobRepo struct {
	putIn  *model.WrappedKeyBlob
	putErr error

	getInWrap model.WrapType
	getInCred []byte
	getOut    *model.WrappedKeyBlob
	getErr    error
}

var _ repository.BlobRepository = (*fakeBlobRepo)(nil)

func (f *fakeBlobRepo) Put(_ context.Context, b *model.WrappedKeyBlob) error {
	f.putIn = b
	return f.putErr
}
func (f *fakeBlobRepo) Get(_ context.Context, _ uuid.UUID, wt model.WrapType, credID []byte) (*model.WrappedKeyBlob, error) {
	f.getInWrap, f.getInCred = wt, credID
	return f.getOut, f.getErr
}

type fakeCredRepo struct {
	addIn  *model.GateCredential
	addErr error

	getOut *model.GateCredential
	getErr error

	listOut []model.GateCredential
	listErr error

	countInCred []byte
	countIn     uint32
	countErr    error
}

var _ repository.CredentialRepository = (*fakeCredRepo)(nil)

func (f *fakeCredRepo) Add(_ context.Context, c *model.GateCredential) error {
	f.addIn = c
	return f.addErr
}
func (f *fakeCredRepo) Get(_ context.Context, _ uuid.UUID, _ []byte) (*model.GateCredential, error) {
	return f.getOut, f.getErr
}
func (f *fakeCredRepo) List(_ context.Context, _ uuid.UUID) ([]model.GateCredential, error) {
	return append([]model.GateCredential(nil), f.listOut...), f.listErr
}
func (f *fakeCredRepo) UpdateSignCount(_ context.Context, _ uuid.UUID, credID []byte, signCount uint32) error {
	f.countInCred, f.countIn = credID, signCount
	return f.countErr
}

type fakeRecordRepo struct {
	upsertInVault uuid.UUID
	upsertInUps   []model.UpsertRecord
	upsertOut     []model.RecordVersion
	upsertErr     error

	delInID   uuid.UUID
	delInBase int64
	delOut    model.RecordVersion
	delErr    error

	chInSince int64
	chOut     []model.RecordChange
	chErr     error

	getOut *model.EncryptedRecord
	getErr error
}

var _ repository.RecordRepository = (*fakeRecordRepo)(nil)

func (f *fakeRecordRepo) UpsertBatch(_ context.Context, vaultID uuid.UUID, ups []model.UpsertRecord) ([]model.RecordVersion, error) {
	f.upsertInVault, f.upsertInUps = vaultID, append([]model.UpsertRecord(nil), ups...)
	return append([]model.RecordVersion(nil), f.upsertOut...), f.upsertErr
}
func (f *fakeRecordRepo) Delete(_ context.Context, _, recordID uuid.UUID, baseVer int64) (model.RecordVersion, error) {
	f.delInID, f.delInBase = recordID, baseVer
	return f.delOut, f.delErr
}
func (f *fakeRecordRepo) GetChangesSince(_ context.Context, _ uuid.UUID, sinceVer int64) ([]model.RecordChange, error) {
	f.chInSince = sinceVer
	return append([]model.RecordChange(nil), f.chOut...), f.chErr
}
func (f *fakeRecordRepo) Get(_ context.Context, _, _ uuid.UUID) (*model.EncryptedRecord, error) {
	return f.getOut, f.getErr
}
func (f *fakeRecordRepo) GetMaxVersion(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

type fakeRecoveryRepo struct {
	replaceIn  []model.RecoveryIssue
	replaceErr error

	listOut []model.RecoveryCode
	listErr error

	redeemInHash []byte
	redeemOut    *model.WrappedKeyBlob
	redeemErr    error
}

var _ repository.RecoveryCodeRepository = (*fakeRecoveryRepo)(nil)

func (f *fakeRecoveryRepo) Replace(_ context.Context, _ uuid.UUID, issues []model.RecoveryIssue) error {
	f.replaceIn = append([]model.RecoveryIssue(nil), issues...)
	return f.replaceErr
}
func (f *fakeRecoveryRepo) List(_ context.Context, _ uuid.UUID) ([]model.RecoveryCode, error) {
	return append([]model.RecoveryCode(nil), f.listOut...), f.listErr
}
func (f *fakeRecoveryRepo) Redeem(_ context.Context, _ uuid.UUID, codeHash []byte) (*model.WrappedKeyBlob, error) {
	f.redeemInHash = append([]byte(nil), codeHash...)
	return f.redeemOut, f.redeemErr
}

type fakeGateSessions struct {
	putIn  *model.GateSession
	putErr error

	takeInID string
	takeOut  *model.GateSession
	takeErr  error
	takes    int
}

var _ repository.GateSessionRepository = (*fakeGateSessions)(nil)

func (f *fakeGateSessions) Put(_ context.Context, s *model.GateSession) error {
	f.putIn = s
	return f.putErr
}
func (f *fakeGateSessions) Take(_ context.Context, id string) (*model.GateSession, error) {
	f.takeInID = id
	f.takes++
	out := f.takeOut
	f.takeOut = nil // single-use
	if out == nil && f.takeErr == nil {
		return nil, errs.ErrNotFound
	}
	return out, f.takeErr
}

type fakeLimiter struct {
	allowed    bool
	allowErr   error
	failures   int
	blockAfter int // Failure reports blocked once failures reach this (0 = never)
	successes  int
}

var _ limiter.Limiter = (*fakeLimiter)(nil)

func (f *fakeLimiter) Allow(_ context.Context, _ uuid.UUID, _ []byte) (bool, time.Duration, error) {
	return f.allowed, 0, f.allowErr
}
func (f *fakeLimiter) Success(_ context.Context, _ uuid.UUID, _ []byte) error {
	f.successes++
	return nil
}
func (f *fakeLimiter) Failure(_ context.Context, _ uuid.UUID, _ []byte) (bool, time.Duration, error) {
	f.failures++
	return f.blockAfter > 0 && f.failures >= f.blockAfter, 0, nil
}
