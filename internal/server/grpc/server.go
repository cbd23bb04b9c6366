// Package grpcserver exposes the Lockbox vault gRPC API handlers.
package grpcserver

import (
	"context"
	"errors"
	"strings"
	"time"

	pb "github.com/and161185/lockbox/gen/go/lockbox/v1"
	"github.com/and161185/lockbox/internal/convert"
	"github.com/and161185/lockbox/internal/errs"
	"github.com/and161185/lockbox/internal/model"
	"github.com/and161185/lockbox/internal/service"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedVaultServer
	vaults   service.VaultService
	lock     service.LockCoordinator
	records  service.RecordService
	gate     service.UnlockGate
	recovery service.RecoveryService
	signKey  []byte
}

// New constructs a gRPC server with injected services.
func New(
	vaults service.VaultService,
	lock service.LockCoordinator,
	records service.RecordService,
	gate service.UnlockGate,
	recovery service.RecoveryService,
	signKey []byte,
) *Server {
	return &Server{vaults: vaults, lock: lock, records: records, gate: gate, recovery: recovery, signKey: signKey}
}

// mapErr translates sentinel errors into gRPC statuses. Messages stay generic:
// a caller cannot distinguish a wrong secret from a corrupted blob, and
// verification failures never echo content.
func mapErr(op string, err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, errs.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, errs.ErrVaultLocked):
		return status.Error(codes.FailedPrecondition, "vault is locked")
	case errors.Is(err, errs.ErrStaleGeneration):
		return status.Error(codes.FailedPrecondition, "stale generation")
	case errors.Is(err, errs.ErrVersionConflict):
		return status.Error(codes.FailedPrecondition, "version conflict")
	case errors.Is(err, errs.ErrChallengeExpired):
		return status.Error(codes.FailedPrecondition, "challenge expired")
	case errors.Is(err, errs.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, "rate limited")
	case errors.Is(err, errs.ErrAssertionInvalid):
		return status.Error(codes.PermissionDenied, "assertion invalid")
	case errors.Is(err, errs.ErrCounterReplay):
		return status.Error(codes.PermissionDenied, "counter replay")
	case errors.Is(err, errs.ErrRecoveryCodeInvalidOrUsed):
		return status.Error(codes.PermissionDenied, "recovery code invalid or used")
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}

func remoteIP(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return ""
}

// --- Lifecycle ---

// InitVault creates the vault row and stores the initial passphrase blob.
func (s *Server) InitVault(ctx context.Context, req *pb.InitVaultRequest) (*pb.InitVaultResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	vaultID, err := uuid.FromString(req.GetVaultId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad vault id")
	}
	blob, err := convert.FromProtoBlob(req.GetBlob())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad blob: %v", err)
	}
	v := &model.Vault{
		ID:             vaultID,
		UserID:         userID,
		PolicyVersion:  req.GetPolicyVersion(),
		PassphraseSalt: req.GetPassphraseSalt(),
		KDFParams:      convert.FromProtoKDFParams(req.GetKdfParams()),
	}
	if err := s.vaults.Init(ctx, v, blob); err != nil {
		return nil, mapErr("init vault", err)
	}
	return &pb.InitVaultResponse{}, nil
}

// GetVaultState returns the poll contract plus passphrase KDF inputs.
func (s *Server) GetVaultState(ctx context.Context, _ *pb.GetVaultStateRequest) (*pb.GetVaultStateResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	v, err := s.vaults.Get(ctx, userID)
	if err != nil {
		return nil, mapErr("get vault", err)
	}
	st, err := s.lock.State(ctx, userID)
	if err != nil {
		return nil, mapErr("get state", err)
	}

	state := &pb.VaultState{}
	state.SetLocked(st.Locked)
	state.SetLockReason(string(st.LockReason))
	state.SetGeneration(st.Generation)

	resp := &pb.GetVaultStateResponse{}
	resp.SetVaultId(v.ID.String())
	resp.SetState(state)
	resp.SetPolicyVersion(v.PolicyVersion)
	resp.SetPassphraseSalt(v.PassphraseSalt)
	resp.SetKdfParams(convert.ToProtoKDFParams(v.KDFParams))
	return resp, nil
}

// --- Lock state machine ---

// LockVault applies a lock transition and returns the new generation.
func (s *Server) LockVault(ctx context.Context, req *pb.LockVaultRequest) (*pb.LockVaultResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	reason := model.LockReason(req.GetReason())
	if !reason.Valid() {
		return nil, status.Error(codes.InvalidArgument, "bad lock reason")
	}
	gen, err := s.lock.Lock(ctx, userID, reason)
	if err != nil {
		return nil, mapErr("lock", err)
	}
	resp := &pb.LockVaultResponse{}
	resp.SetGeneration(gen)
	return resp, nil
}

// ConfirmUnlock applies the generation-guarded unlock transition.
func (s *Server) ConfirmUnlock(ctx context.Context, req *pb.ConfirmUnlockRequest) (*pb.ConfirmUnlockResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	gen, err := s.lock.ConfirmUnlock(ctx, userID, req.GetObservedGeneration())
	if err != nil {
		return nil, mapErr("confirm unlock", err)
	}
	resp := &pb.ConfirmUnlockResponse{}
	resp.SetGeneration(gen)
	return resp, nil
}

// --- Wrapped key blobs ---

// GetWrappedBlob releases the passphrase blob.
func (s *Server) GetWrappedBlob(ctx context.Context, _ *pb.GetWrappedBlobRequest) (*pb.GetWrappedBlobResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	blob, err := s.vaults.GetBlob(ctx, userID)
	if err != nil {
		return nil, mapErr("get blob", err)
	}
	resp := &pb.GetWrappedBlobResponse{}
	resp.SetBlob(convert.ToProtoBlob(blob))
	return resp, nil
}

// Rewrap replaces the passphrase blob and salt; the KEK stays unchanged.
func (s *Server) Rewrap(ctx context.Context, req *pb.RewrapRequest) (*pb.RewrapResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	blob, err := convert.FromProtoBlob(req.GetBlob())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad blob: %v", err)
	}
	if err := s.vaults.Rewrap(ctx, userID, req.GetSalt(), convert.FromProtoKDFParams(req.GetKdfParams()), blob); err != nil {
		return nil, mapErr("rewrap", err)
	}
	return &pb.RewrapResponse{}, nil
}

// PutCredentialBlob stores the credential-wrapped blob after registration.
func (s *Server) PutCredentialBlob(ctx context.Context, req *pb.PutCredentialBlobRequest) (*pb.PutCredentialBlobResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	blob, err := convert.FromProtoBlob(req.GetBlob())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad blob: %v", err)
	}
	if err := s.vaults.PutCredentialBlob(ctx, userID, blob); err != nil {
		return nil, mapErr("put credential blob", err)
	}
	return &pb.PutCredentialBlobResponse{}, nil
}

// --- Presence gate ---

// BeginCredentialRegistration issues a credential-creation challenge.
func (s *Server) BeginCredentialRegistration(ctx context.Context, _ *pb.BeginCredentialRegistrationRequest) (*pb.BeginCredentialRegistrationResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	options, sessionID, err := s.gate.BeginRegistration(ctx, userID)
	if err != nil {
		return nil, mapErr("begin registration", err)
	}
	resp := &pb.BeginCredentialRegistrationResponse{}
	resp.SetSessionId(sessionID)
	resp.SetOptionsJson(options)
	return resp, nil
}

// FinishCredentialRegistration verifies the attestation and stores the credential.
func (s *Server) FinishCredentialRegistration(ctx context.Context, req *pb.FinishCredentialRegistrationRequest) (*pb.FinishCredentialRegistrationResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	if req.GetSessionId() == "" || len(req.GetResponseJson()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "empty session/response")
	}
	credID, err := s.gate.FinishRegistration(ctx, userID, req.GetSessionId(), req.GetResponseJson())
	if err != nil {
		return nil, mapErr("finish registration", err)
	}
	resp := &pb.FinishCredentialRegistrationResponse{}
	resp.SetCredentialId(credID)
	return resp, nil
}

// BeginUnlockChallenge issues a single-use assertion challenge.
func (s *Server) BeginUnlockChallenge(ctx context.Context, _ *pb.BeginUnlockChallengeRequest) (*pb.BeginUnlockChallengeResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	options, sessionID, err := s.gate.BeginUnlock(ctx, userID)
	if err != nil {
		return nil, mapErr("begin unlock", err)
	}
	resp := &pb.BeginUnlockChallengeResponse{}
	resp.SetSessionId(sessionID)
	resp.SetOptionsJson(options)
	return resp, nil
}

// FinishUnlockChallenge verifies the assertion and releases the credential blob.
func (s *Server) FinishUnlockChallenge(ctx context.Context, req *pb.FinishUnlockChallengeRequest) (*pb.FinishUnlockChallengeResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	if req.GetSessionId() == "" || len(req.GetResponseJson()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "empty session/response")
	}
	blob, err := s.gate.FinishUnlock(ctx, userID, req.GetSessionId(), req.GetResponseJson(), remoteIP(ctx))
	if err != nil {
		return nil, mapErr("finish unlock", err)
	}
	resp := &pb.FinishUnlockChallengeResponse{}
	resp.SetBlob(convert.ToProtoBlob(blob))
	return resp, nil
}

// --- Recovery ---

// ReplaceRecoveryCodes installs a new recovery issue set.
func (s *Server) ReplaceRecoveryCodes(ctx context.Context, req *pb.ReplaceRecoveryCodesRequest) (*pb.ReplaceRecoveryCodesResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	issues, err := convert.FromProtoRecoveryIssues(req.GetIssues())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad issues: %v", err)
	}
	if err := s.recovery.Replace(ctx, userID, issues); err != nil {
		return nil, mapErr("replace recovery codes", err)
	}
	return &pb.ReplaceRecoveryCodesResponse{}, nil
}

// ListRecoveryCodes returns code metadata only.
func (s *Server) ListRecoveryCodes(ctx context.Context, _ *pb.ListRecoveryCodesRequest) (*pb.ListRecoveryCodesResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	codes_, err := s.recovery.List(ctx, userID)
	if err != nil {
		return nil, mapErr("list recovery codes", err)
	}
	resp := &pb.ListRecoveryCodesResponse{}
	resp.SetCodes(convert.ToProtoRecoveryCodeInfos(codes_))
	return resp, nil
}

// RedeemRecoveryCode consumes a code and releases the recovery blob.
func (s *Server) RedeemRecoveryCode(ctx context.Context, req *pb.RedeemRecoveryCodeRequest) (*pb.RedeemRecoveryCodeResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	blob, err := s.recovery.Redeem(ctx, userID, req.GetCodeHash(), remoteIP(ctx))
	if err != nil {
		return nil, mapErr("redeem recovery code", err)
	}
	resp := &pb.RedeemRecoveryCodeResponse{}
	resp.SetBlob(convert.ToProtoBlob(blob))
	return resp, nil
}

// --- Records ---

// UpsertRecords creates or updates records in batch with optimistic concurrency.
func (s *Server) UpsertRecords(ctx context.Context, req *pb.UpsertRecordsRequest) (*pb.UpsertRecordsResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	ups, err := convert.FromProtoUpsertRecords(req.GetRecords())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "bad records: %v", err)
	}
	res, err := s.records.Upsert(ctx, userID, ups)
	if err != nil {
		return nil, mapErr("upsert", err)
	}
	resp := &pb.UpsertRecordsResponse{}
	resp.SetResults(convert.ToProtoRecordVersions(res))
	return resp, nil
}

// GetRecord returns a single record by id. Ciphertext and metadata are
// readable regardless of lock state.
func (s *Server) GetRecord(ctx context.Context, req *pb.GetRecordRequest) (*pb.GetRecordResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	recordID, err := uuid.FromString(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad id")
	}
	rec, err := s.records.GetOne(ctx, userID, recordID)
	if err != nil {
		return nil, mapErr("get record", err)
	}
	resp := &pb.GetRecordResponse{}
	resp.SetRecord(convert.ToProtoRecord(rec))
	return resp, nil
}

// DeleteRecord marks a record as deleted (tombstone).
func (s *Server) DeleteRecord(ctx context.Context, req *pb.DeleteRecordRequest) (*pb.DeleteRecordResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	recordID, err := uuid.FromString(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad id")
	}
	ver, err := s.records.Delete(ctx, userID, recordID, req.GetBaseVer())
	if err != nil {
		return nil, mapErr("delete", err)
	}
	resp := &pb.DeleteRecordResponse{}
	resp.SetResult(convert.ToProtoRecordVersion(ver))
	return resp, nil
}

// GetRecordChanges returns changes since a given version for delta synchronization.
func (s *Server) GetRecordChanges(ctx context.Context, req *pb.GetRecordChangesRequest) (*pb.GetRecordChangesResponse, error) {
	userID, err := s.userIDFromCtx(ctx)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "no auth")
	}
	cs, err := s.records.GetChanges(ctx, userID, req.GetSinceVer())
	if err != nil {
		return nil, mapErr("get changes", err)
	}
	resp := &pb.GetRecordChangesResponse{}
	resp.SetChanges(convert.ToProtoRecordChanges(cs))
	return resp, nil
}

// userIDFromCtx returns the authenticated user for the call: the identity
// resolved by AuthUnary when present, the bearer token otherwise.
func (s *Server) userIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	if id, ok := UserIDFromCtx(ctx); ok {
		return id, nil
	}
	return verifyBearer(ctx, s.signKey)
}

// verifyBearer: extract "authorization: Bearer <JWT>", verify HS256, return sub as UUID.
// Token issuance belongs to the external identity layer; this is only the seam
// where its authenticated user_id enters the vault core.
func verifyBearer(ctx context.Context, signKey []byte) (uuid.UUID, error) {
	tok, err := bearerTokenFromMD(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return signKey, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	v := jwt.NewValidator(jwt.WithLeeway(30 * time.Second))
	if err := v.Validate(&claims); err != nil {
		return uuid.Nil, errors.New("token expired or not valid yet")
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil {
		return uuid.Nil, errors.New("bad subject")
	}
	return id, nil
}

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errors.New("no metadata")
	}
	for _, v := range md.Get("authorization") {
		v = strings.TrimSpace(v)
		if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
			t := strings.TrimSpace(v[7:])
			if t != "" {
				return t, nil
			}
		}
	}
	return "", errors.New("no bearer token")
}
