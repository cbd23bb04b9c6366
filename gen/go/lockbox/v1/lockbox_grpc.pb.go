// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: lockbox/v1/lockbox.proto

package lockboxv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	Vault_InitVault_FullMethodName                    = "/lockbox.v1.Vault/InitVault"
	Vault_GetVaultState_FullMethodName                = "/lockbox.v1.Vault/GetVaultState"
	Vault_LockVault_FullMethodName                    = "/lockbox.v1.Vault/LockVault"
	Vault_ConfirmUnlock_FullMethodName                = "/lockbox.v1.Vault/ConfirmUnlock"
	Vault_GetWrappedBlob_FullMethodName               = "/lockbox.v1.Vault/GetWrappedBlob"
	Vault_Rewrap_FullMethodName                       = "/lockbox.v1.Vault/Rewrap"
	Vault_PutCredentialBlob_FullMethodName            = "/lockbox.v1.Vault/PutCredentialBlob"
	Vault_BeginCredentialRegistration_FullMethodName  = "/lockbox.v1.Vault/BeginCredentialRegistration"
	Vault_FinishCredentialRegistration_FullMethodName = "/lockbox.v1.Vault/FinishCredentialRegistration"
	Vault_BeginUnlockChallenge_FullMethodName         = "/lockbox.v1.Vault/BeginUnlockChallenge"
	Vault_FinishUnlockChallenge_FullMethodName        = "/lockbox.v1.Vault/FinishUnlockChallenge"
	Vault_ReplaceRecoveryCodes_FullMethodName         = "/lockbox.v1.Vault/ReplaceRecoveryCodes"
	Vault_ListRecoveryCodes_FullMethodName            = "/lockbox.v1.Vault/ListRecoveryCodes"
	Vault_RedeemRecoveryCode_FullMethodName           = "/lockbox.v1.Vault/RedeemRecoveryCode"
	Vault_UpsertRecords_FullMethodName                = "/lockbox.v1.Vault/UpsertRecords"
	Vault_GetRecord_FullMethodName                    = "/lockbox.v1.Vault/GetRecord"
	Vault_DeleteRecord_FullMethodName                 = "/lockbox.v1.Vault/DeleteRecord"
	Vault_GetRecordChanges_FullMethodName             = "/lockbox.v1.Vault/GetRecordChanges"
)

// VaultClient is the client API for Vault service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// Vault is the E2EE vault API. The server only ever stores and releases
// opaque bytes: wrapped key blobs and sealed records round-trip byte-exact.
type VaultClient interface {
	// Lifecycle.
	InitVault(ctx context.Context, in *InitVaultRequest, opts ...grpc.CallOption) (*InitVaultResponse, error)
	GetVaultState(ctx context.Context, in *GetVaultStateRequest, opts ...grpc.CallOption) (*GetVaultStateResponse, error)
	// Lock state machine.
	LockVault(ctx context.Context, in *LockVaultRequest, opts ...grpc.CallOption) (*LockVaultResponse, error)
	ConfirmUnlock(ctx context.Context, in *ConfirmUnlockRequest, opts ...grpc.CallOption) (*ConfirmUnlockResponse, error)
	// Wrapped key blobs.
	GetWrappedBlob(ctx context.Context, in *GetWrappedBlobRequest, opts ...grpc.CallOption) (*GetWrappedBlobResponse, error)
	Rewrap(ctx context.Context, in *RewrapRequest, opts ...grpc.CallOption) (*RewrapResponse, error)
	PutCredentialBlob(ctx context.Context, in *PutCredentialBlobRequest, opts ...grpc.CallOption) (*PutCredentialBlobResponse, error)
	// Presence gate.
	BeginCredentialRegistration(ctx context.Context, in *BeginCredentialRegistrationRequest, opts ...grpc.CallOption) (*BeginCredentialRegistrationResponse, error)
	FinishCredentialRegistration(ctx context.Context, in *FinishCredentialRegistrationRequest, opts ...grpc.CallOption) (*FinishCredentialRegistrationResponse, error)
	BeginUnlockChallenge(ctx context.Context, in *BeginUnlockChallengeRequest, opts ...grpc.CallOption) (*BeginUnlockChallengeResponse, error)
	FinishUnlockChallenge(ctx context.Context, in *FinishUnlockChallengeRequest, opts ...grpc.CallOption) (*FinishUnlockChallengeResponse, error)
	// Recovery.
	ReplaceRecoveryCodes(ctx context.Context, in *ReplaceRecoveryCodesRequest, opts ...grpc.CallOption) (*ReplaceRecoveryCodesResponse, error)
	ListRecoveryCodes(ctx context.Context, in *ListRecoveryCodesRequest, opts ...grpc.CallOption) (*ListRecoveryCodesResponse, error)
	RedeemRecoveryCode(ctx context.Context, in *RedeemRecoveryCodeRequest, opts ...grpc.CallOption) (*RedeemRecoveryCodeResponse, error)
	// Encrypted records.
	UpsertRecords(ctx context.Context, in *UpsertRecordsRequest, opts ...grpc.CallOption) (*UpsertRecordsResponse, error)
	GetRecord(ctx context.Context, in *GetRecordRequest, opts ...grpc.CallOption) (*GetRecordResponse, error)
	DeleteRecord(ctx context.Context, in *DeleteRecordRequest, opts ...grpc.CallOption) (*DeleteRecordResponse, error)
	GetRecordChanges(ctx context.Context, in *GetRecordChangesRequest, opts ...grpc.CallOption) (*GetRecordChangesResponse, error)
}

type vaultClient struct {
	cc grpc.ClientConnInterface
}

func NewVaultClient(cc grpc.ClientConnInterface) VaultClient {
	return &vaultClient{cc}
}

func (c *vaultClient) InitVault(ctx context.Context, in *InitVaultRequest, opts ...grpc.CallOption) (*InitVaultResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(InitVaultResponse)
	err := c.cc.Invoke(ctx, Vault_InitVault_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultClient) GetVaultState(ctx context.Context, in *GetVaultStateRequest, opts ...grpc.CallOption) (*GetVaultStateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetVaultStateResponse)
	err := c.cc.Invoke(ctx, Vault_GetVaultState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultClient) LockVault(ctx context.Context, in *LockVaultRequest, opts ...grpc.CallOption) (*LockVaultResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LockVaultResponse)
	err := c.cc.Invoke(ctx, Vault_LockVault_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultClient) ConfirmUnlock(ctx context.Context, in *ConfirmUnlockRequest, opts ...grpc.CallOption) (*ConfirmUnlockResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConfirmUnlockResponse)
	err := c.cc.Invoke(ctx, Vault_ConfirmUnlock_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultClient) GetWrappedBlob(ctx context.Context, in *GetWrappedBlobRequest, opts ...grpc.CallOption) (*GetWrappedBlobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetWrappedBlobResponse)
	err := c.cc.Invoke(ctx, Vault_GetWrappedBlob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultClient) Rewrap(ctx context.Context, in *RewrapRequest, opts ...grpc.CallOption) (*RewrapResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RewrapResponse)
	err := c.cc.Invoke(ctx, Vault_Rewrap_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultClient) PutCredentialBlob(ctx context.Context, in *PutCredentialBlobRequest, opts ...grpc.CallOption) (*PutCredentialBlobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PutCredentialBlobResponse)
	err := c.cc.Invoke(ctx, Vault_PutCredentialBlob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultClient) BeginCredentialRegistration(ctx context.Context, in *BeginCredentialRegistrationRequest, opts ...grpc.CallOption) (*BeginCredentialRegistrationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BeginCredentialRegistrationResponse)
	err := c.cc.Invoke(ctx, Vault_BeginCredentialRegistration_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultClient) FinishCredentialRegistration(ctx context.Context, in *FinishCredentialRegistrationRequest, opts ...grpc.CallOption) (*FinishCredentialRegistrationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FinishCredentialRegistrationResponse)
	err := c.cc.Invoke(ctx, Vault_FinishCredentialRegistration_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultClient) BeginUnlockChallenge(ctx context.Context, in *BeginUnlockChallengeRequest, opts ...grpc.CallOption) (*BeginUnlockChallengeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(BeginUnlockChallengeResponse)
	err := c.cc.Invoke(ctx, Vault_BeginUnlockChallenge_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultClient) FinishUnlockChallenge(ctx context.Context, in *FinishUnlockChallengeRequest, opts ...grpc.CallOption) (*FinishUnlockChallengeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FinishUnlockChallengeResponse)
	err := c.cc.Invoke(ctx, Vault_FinishUnlockChallenge_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultClient) ReplaceRecoveryCodes(ctx context.Context, in *ReplaceRecoveryCodesRequest, opts ...grpc.CallOption) (*ReplaceRecoveryCodesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReplaceRecoveryCodesResponse)
	err := c.cc.Invoke(ctx, Vault_ReplaceRecoveryCodes_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultClient) ListRecoveryCodes(ctx context.Context, in *ListRecoveryCodesRequest, opts ...grpc.CallOption) (*ListRecoveryCodesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListRecoveryCodesResponse)
	err := c.cc.Invoke(ctx, Vault_ListRecoveryCodes_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultClient) RedeemRecoveryCode(ctx context.Context, in *RedeemRecoveryCodeRequest, opts ...grpc.CallOption) (*RedeemRecoveryCodeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RedeemRecoveryCodeResponse)
	err := c.cc.Invoke(ctx, Vault_RedeemRecoveryCode_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultClient) UpsertRecords(ctx context.Context, in *UpsertRecordsRequest, opts ...grpc.CallOption) (*UpsertRecordsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpsertRecordsResponse)
	err := c.cc.Invoke(ctx, Vault_UpsertRecords_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultClient) GetRecord(ctx context.Context, in *GetRecordRequest, opts ...grpc.CallOption) (*GetRecordResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetRecordResponse)
	err := c.cc.Invoke(ctx, Vault_GetRecord_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultClient) DeleteRecord(ctx context.Context, in *DeleteRecordRequest, opts ...grpc.CallOption) (*DeleteRecordResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteRecordResponse)
	err := c.cc.Invoke(ctx, Vault_DeleteRecord_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaultClient) GetRecordChanges(ctx context.Context, in *GetRecordChangesRequest, opts ...grpc.CallOption) (*GetRecordChangesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetRecordChangesResponse)
	err := c.cc.Invoke(ctx, Vault_GetRecordChanges_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// VaultServer is the server API for Vault service.
// All implementations must embed UnimplementedVaultServer
// for forward compatibility.
//
// Vault is the E2EE vault API. The server only ever stores and releases
// opaque bytes: wrapped key blobs and sealed records round-trip byte-exact.
type VaultServer interface {
	// Lifecycle.
	InitVault(context.Context, *InitVaultRequest) (*InitVaultResponse, error)
	GetVaultState(context.Context, *GetVaultStateRequest) (*GetVaultStateResponse, error)
	// Lock state machine.
	LockVault(context.Context, *LockVaultRequest) (*LockVaultResponse, error)
	ConfirmUnlock(context.Context, *ConfirmUnlockRequest) (*ConfirmUnlockResponse, error)
	// Wrapped key blobs.
	GetWrappedBlob(context.Context, *GetWrappedBlobRequest) (*GetWrappedBlobResponse, error)
	Rewrap(context.Context, *RewrapRequest) (*RewrapResponse, error)
	PutCredentialBlob(context.Context, *PutCredentialBlobRequest) (*PutCredentialBlobResponse, error)
	// Presence gate.
	BeginCredentialRegistration(context.Context, *BeginCredentialRegistrationRequest) (*BeginCredentialRegistrationResponse, error)
	FinishCredentialRegistration(context.Context, *FinishCredentialRegistrationRequest) (*FinishCredentialRegistrationResponse, error)
	BeginUnlockChallenge(context.Context, *BeginUnlockChallengeRequest) (*BeginUnlockChallengeResponse, error)
	FinishUnlockChallenge(context.Context, *FinishUnlockChallengeRequest) (*FinishUnlockChallengeResponse, error)
	// Recovery.
	ReplaceRecoveryCodes(context.Context, *ReplaceRecoveryCodesRequest) (*ReplaceRecoveryCodesResponse, error)
	ListRecoveryCodes(context.Context, *ListRecoveryCodesRequest) (*ListRecoveryCodesResponse, error)
	RedeemRecoveryCode(context.Context, *RedeemRecoveryCodeRequest) (*RedeemRecoveryCodeResponse, error)
	// Encrypted records.
	UpsertRecords(context.Context, *UpsertRecordsRequest) (*UpsertRecordsResponse, error)
	GetRecord(context.Context, *GetRecordRequest) (*GetRecordResponse, error)
	DeleteRecord(context.Context, *DeleteRecordRequest) (*DeleteRecordResponse, error)
	GetRecordChanges(context.Context, *GetRecordChangesRequest) (*GetRecordChangesResponse, error)
	mustEmbedUnimplementedVaultServer()
}

// UnimplementedVaultServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedVaultServer struct{}

func (UnimplementedVaultServer) InitVault(context.Context, *InitVaultRequest) (*InitVaultResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InitVault not implemented")
}
func (UnimplementedVaultServer) GetVaultState(context.Context, *GetVaultStateRequest) (*GetVaultStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetVaultState not implemented")
}
func (UnimplementedVaultServer) LockVault(context.Context, *LockVaultRequest) (*LockVaultResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LockVault not implemented")
}
func (UnimplementedVaultServer) ConfirmUnlock(context.Context, *ConfirmUnlockRequest) (*ConfirmUnlockResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConfirmUnlock not implemented")
}
func (UnimplementedVaultServer) GetWrappedBlob(context.Context, *GetWrappedBlobRequest) (*GetWrappedBlobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetWrappedBlob not implemented")
}
func (UnimplementedVaultServer) Rewrap(context.Context, *RewrapRequest) (*RewrapResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Rewrap not implemented")
}
func (UnimplementedVaultServer) PutCredentialBlob(context.Context, *PutCredentialBlobRequest) (*PutCredentialBlobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PutCredentialBlob not implemented")
}
func (UnimplementedVaultServer) BeginCredentialRegistration(context.Context, *BeginCredentialRegistrationRequest) (*BeginCredentialRegistrationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BeginCredentialRegistration not implemented")
}
func (UnimplementedVaultServer) FinishCredentialRegistration(context.Context, *FinishCredentialRegistrationRequest) (*FinishCredentialRegistrationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FinishCredentialRegistration not implemented")
}
func (UnimplementedVaultServer) BeginUnlockChallenge(context.Context, *BeginUnlockChallengeRequest) (*BeginUnlockChallengeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BeginUnlockChallenge not implemented")
}
func (UnimplementedVaultServer) FinishUnlockChallenge(context.Context, *FinishUnlockChallengeRequest) (*FinishUnlockChallengeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FinishUnlockChallenge not implemented")
}
func (UnimplementedVaultServer) ReplaceRecoveryCodes(context.Context, *ReplaceRecoveryCodesRequest) (*ReplaceRecoveryCodesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReplaceRecoveryCodes not implemented")
}
func (UnimplementedVaultServer) ListRecoveryCodes(context.Context, *ListRecoveryCodesRequest) (*ListRecoveryCodesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListRecoveryCodes not implemented")
}
func (UnimplementedVaultServer) RedeemRecoveryCode(context.Context, *RedeemRecoveryCodeRequest) (*RedeemRecoveryCodeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RedeemRecoveryCode not implemented")
}
func (UnimplementedVaultServer) UpsertRecords(context.Context, *UpsertRecordsRequest) (*UpsertRecordsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpsertRecords not implemented")
}
func (UnimplementedVaultServer) GetRecord(context.Context, *GetRecordRequest) (*GetRecordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRecord not implemented")
}
func (UnimplementedVaultServer) DeleteRecord(context.Context, *DeleteRecordRequest) (*DeleteRecordResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteRecord not implemented")
}
func (UnimplementedVaultServer) GetRecordChanges(context.Context, *GetRecordChangesRequest) (*GetRecordChangesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRecordChanges not implemented")
}
func (UnimplementedVaultServer) mustEmbedUnimplementedVaultServer() {}
func (UnimplementedVaultServer) testEmbeddedByValue()               {}

// UnsafeVaultServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to VaultServer will
// result in compilation errors.
type UnsafeVaultServer interface {
	mustEmbedUnimplementedVaultServer()
}

func RegisterVaultServer(s grpc.ServiceRegistrar, srv VaultServer) {
	// If the following call pancis, it indicates UnimplementedVaultServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&Vault_ServiceDesc, srv)
}

func _Vault_InitVault_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InitVaultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).InitVault(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_InitVault_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).InitVault(ctx, req.(*InitVaultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vault_GetVaultState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetVaultStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).GetVaultState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_GetVaultState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).GetVaultState(ctx, req.(*GetVaultStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vault_LockVault_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LockVaultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).LockVault(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_LockVault_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).LockVault(ctx, req.(*LockVaultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vault_ConfirmUnlock_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmUnlockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).ConfirmUnlock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_ConfirmUnlock_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).ConfirmUnlock(ctx, req.(*ConfirmUnlockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vault_GetWrappedBlob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetWrappedBlobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).GetWrappedBlob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_GetWrappedBlob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).GetWrappedBlob(ctx, req.(*GetWrappedBlobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vault_Rewrap_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RewrapRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).Rewrap(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_Rewrap_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).Rewrap(ctx, req.(*RewrapRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vault_PutCredentialBlob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PutCredentialBlobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).PutCredentialBlob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_PutCredentialBlob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).PutCredentialBlob(ctx, req.(*PutCredentialBlobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vault_BeginCredentialRegistration_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BeginCredentialRegistrationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).BeginCredentialRegistration(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_BeginCredentialRegistration_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).BeginCredentialRegistration(ctx, req.(*BeginCredentialRegistrationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vault_FinishCredentialRegistration_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FinishCredentialRegistrationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).FinishCredentialRegistration(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_FinishCredentialRegistration_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).FinishCredentialRegistration(ctx, req.(*FinishCredentialRegistrationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vault_BeginUnlockChallenge_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BeginUnlockChallengeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).BeginUnlockChallenge(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_BeginUnlockChallenge_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).BeginUnlockChallenge(ctx, req.(*BeginUnlockChallengeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vault_FinishUnlockChallenge_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FinishUnlockChallengeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).FinishUnlockChallenge(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_FinishUnlockChallenge_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).FinishUnlockChallenge(ctx, req.(*FinishUnlockChallengeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vault_ReplaceRecoveryCodes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReplaceRecoveryCodesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).ReplaceRecoveryCodes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_ReplaceRecoveryCodes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).ReplaceRecoveryCodes(ctx, req.(*ReplaceRecoveryCodesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vault_ListRecoveryCodes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRecoveryCodesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).ListRecoveryCodes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_ListRecoveryCodes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).ListRecoveryCodes(ctx, req.(*ListRecoveryCodesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vault_RedeemRecoveryCode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RedeemRecoveryCodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).RedeemRecoveryCode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_RedeemRecoveryCode_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).RedeemRecoveryCode(ctx, req.(*RedeemRecoveryCodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vault_UpsertRecords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpsertRecordsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).UpsertRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_UpsertRecords_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).UpsertRecords(ctx, req.(*UpsertRecordsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vault_GetRecord_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).GetRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_GetRecord_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).GetRecord(ctx, req.(*GetRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vault_DeleteRecord_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteRecordRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).DeleteRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_DeleteRecord_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).DeleteRecord(ctx, req.(*DeleteRecordRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vault_GetRecordChanges_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRecordChangesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaultServer).GetRecordChanges(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Vault_GetRecordChanges_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaultServer).GetRecordChanges(ctx, req.(*GetRecordChangesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// Vault_ServiceDesc is the grpc.ServiceDesc for Vault service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var Vault_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "lockbox.v1.Vault",
	HandlerType: (*VaultServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "InitVault",
			Handler:    _Vault_InitVault_Handler,
		},
		{
			MethodName: "GetVaultState",
			Handler:    _Vault_GetVaultState_Handler,
		},
		{
			MethodName: "LockVault",
			Handler:    _Vault_LockVault_Handler,
		},
		{
			MethodName: "ConfirmUnlock",
			Handler:    _Vault_ConfirmUnlock_Handler,
		},
		{
			MethodName: "GetWrappedBlob",
			Handler:    _Vault_GetWrappedBlob_Handler,
		},
		{
			MethodName: "Rewrap",
			Handler:    _Vault_Rewrap_Handler,
		},
		{
			MethodName: "PutCredentialBlob",
			Handler:    _Vault_PutCredentialBlob_Handler,
		},
		{
			MethodName: "BeginCredentialRegistration",
			Handler:    _Vault_BeginCredentialRegistration_Handler,
		},
		{
			MethodName: "FinishCredentialRegistration",
			Handler:    _Vault_FinishCredentialRegistration_Handler,
		},
		{
			MethodName: "BeginUnlockChallenge",
			Handler:    _Vault_BeginUnlockChallenge_Handler,
		},
		{
			MethodName: "FinishUnlockChallenge",
			Handler:    _Vault_FinishUnlockChallenge_Handler,
		},
		{
			MethodName: "ReplaceRecoveryCodes",
			Handler:    _Vault_ReplaceRecoveryCodes_Handler,
		},
		{
			MethodName: "ListRecoveryCodes",
			Handler:    _Vault_ListRecoveryCodes_Handler,
		},
		{
			MethodName: "RedeemRecoveryCode",
			Handler:    _Vault_RedeemRecoveryCode_Handler,
		},
		{
			MethodName: "UpsertRecords",
			Handler:    _Vault_UpsertRecords_Handler,
		},
		{
			MethodName: "GetRecord",
			Handler:    _Vault_GetRecord_Handler,
		},
		{
			MethodName: "DeleteRecord",
			Handler:    _Vault_DeleteRecord_Handler,
		},
		{
			MethodName: "GetRecordChanges",
			Handler:    _Vault_GetRecordChanges_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lockbox/v1/lockbox.proto",
}
