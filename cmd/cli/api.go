package main

import (
	"context"

	u "github.com/gofrs/uuid/v5"

	pb "github.com/and161185/lockbox/gen/go/lockbox/v1"
	"github.com/and161185/lockbox/internal/convert"
	"github.com/and161185/lockbox/internal/model"
	"github.com/and161185/lockbox/internal/vaultclient"
)

// grpcAPI adapts the generated Vault client to the vaultclient.API seam.
type grpcAPI struct {
	cli pb.VaultClient
}

var _ vaultclient.API = (*grpcAPI)(nil)

func (a *grpcAPI) InitVault(
	ctx context.Context, vaultID u.UUID, policyVersion uint32, salt []byte,
	params model.KDFParams, blob *model.WrappedKeyBlob,
) error {
	req := &pb.InitVaultRequest{}
	req.SetVaultId(vaultID.String())
	req.SetPolicyVersion(policyVersion)
	req.SetPassphraseSalt(salt)
	req.SetKdfParams(convert.ToProtoKDFParams(params))
	req.SetBlob(convert.ToProtoBlob(blob))
	_, err := a.cli.InitVault(ctx, req)
	return err
}

func (a *grpcAPI) VaultInfo(ctx context.Context) (*vaultclient.VaultInfo, error) {
	resp, err := a.cli.GetVaultState(ctx, &pb.GetVaultStateRequest{})
	if err != nil {
		return nil, err
	}
	vaultID, err := u.FromString(resp.GetVaultId())
	if err != nil {
		return nil, err
	}
	return &vaultclient.VaultInfo{
		VaultID: vaultID,
		State: model.LockState{
			Locked:     resp.GetState().GetLocked(),
			LockReason: model.LockReason(resp.GetState().GetLockReason()),
			Generation: resp.GetState().GetGeneration(),
		},
		PolicyVersion:  resp.GetPolicyVersion(),
		PassphraseSalt: resp.GetPassphraseSalt(),
		KDFParams:      convert.FromProtoKDFParams(resp.GetKdfParams()),
	}, nil
}

func (a *grpcAPI) Lock(ctx context.Context, reason model.LockReason) (int64, error) {
	req := &pb.LockVaultRequest{}
	req.SetReason(string(reason))
	resp, err := a.cli.LockVault(ctx, req)
	if err != nil {
		return 0, err
	}
	return resp.GetGeneration(), nil
}

func (a *grpcAPI) ConfirmUnlock(ctx context.Context, observedGen int64) (int64, error) {
	req := &pb.ConfirmUnlockRequest{}
	req.SetObservedGeneration(observedGen)
	resp, err := a.cli.ConfirmUnlock(ctx, req)
	if err != nil {
		return 0, err
	}
	return resp.GetGeneration(), nil
}

func (a *grpcAPI) PassphraseBlob(ctx context.Context) (*model.WrappedKeyBlob, error) {
	resp, err := a.cli.GetWrappedBlob(ctx, &pb.GetWrappedBlobRequest{})
	if err != nil {
		return nil, err
	}
	return convert.FromProtoBlob(resp.GetBlob())
}

func (a *grpcAPI) Rewrap(ctx context.Context, salt []byte, params model.KDFParams, blob *model.WrappedKeyBlob) error {
	req := &pb.RewrapRequest{}
	req.SetSalt(salt)
	req.SetKdfParams(convert.ToProtoKDFParams(params))
	req.SetBlob(convert.ToProtoBlob(blob))
	_, err := a.cli.Rewrap(ctx, req)
	return err
}

func (a *grpcAPI) PutCredentialBlob(ctx context.Context, blob *model.WrappedKeyBlob) error {
	req := &pb.PutCredentialBlobRequest{}
	req.SetBlob(convert.ToProtoBlob(blob))
	_, err := a.cli.PutCredentialBlob(ctx, req)
	return err
}

func (a *grpcAPI) ReplaceRecoveryCodes(ctx context.Context, issues []model.RecoveryIssue) error {
	out := make([]*pb.RecoveryIssue, 0, len(issues))
	for i := range issues {
		ri := &pb.RecoveryIssue{}
		ri.SetCodeHash(issues[i].CodeHash)
		ri.SetBlob(convert.ToProtoBlob(&issues[i].Blob))
		out = append(out, ri)
	}
	req := &pb.ReplaceRecoveryCodesRequest{}
	req.SetIssues(out)
	_, err := a.cli.ReplaceRecoveryCodes(ctx, req)
	return err
}

func (a *grpcAPI) RedeemRecoveryCode(ctx context.Context, codeHash []byte) (*model.WrappedKeyBlob, error) {
	req := &pb.RedeemRecoveryCodeRequest{}
	req.SetCodeHash(codeHash)
	resp, err := a.cli.RedeemRecoveryCode(ctx, req)
	if err != nil {
		return nil, err
	}
	return convert.FromProtoBlob(resp.GetBlob())
}
