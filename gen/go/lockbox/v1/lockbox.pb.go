// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.10
// 	protoc        (unknown)
// source: lockbox/v1/lockbox.proto

package lockboxv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type KDFParams struct {
	state                 protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Algorithm  string                 `protobuf:"bytes,1,opt,name=algorithm,proto3"`
	xxx_hidden_Iterations uint32                 `protobuf:"varint,2,opt,name=iterations,proto3"`
	xxx_hidden_MemoryKib  uint32                 `protobuf:"varint,3,opt,name=memory_kib,json=memoryKib,proto3"`
	xxx_hidden_Threads    uint32                 `protobuf:"varint,4,opt,name=threads,proto3"`
	xxx_hidden_SaltLen    int32                  `protobuf:"varint,5,opt,name=salt_len,json=saltLen,proto3"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *KDFParams) Reset() {
	*x = KDFParams{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *KDFParams) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*KDFParams) ProtoMessage() {}

func (x *KDFParams) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *KDFParams) GetAlgorithm() string {
	if x != nil {
		return x.xxx_hidden_Algorithm
	}
	return ""
}

func (x *KDFParams) GetIterations() uint32 {
	if x != nil {
		return x.xxx_hidden_Iterations
	}
	return 0
}

func (x *KDFParams) GetMemoryKib() uint32 {
	if x != nil {
		return x.xxx_hidden_MemoryKib
	}
	return 0
}

func (x *KDFParams) GetThreads() uint32 {
	if x != nil {
		return x.xxx_hidden_Threads
	}
	return 0
}

func (x *KDFParams) GetSaltLen() int32 {
	if x != nil {
		return x.xxx_hidden_SaltLen
	}
	return 0
}

func (x *KDFParams) SetAlgorithm(v string) {
	x.xxx_hidden_Algorithm = v
}

func (x *KDFParams) SetIterations(v uint32) {
	x.xxx_hidden_Iterations = v
}

func (x *KDFParams) SetMemoryKib(v uint32) {
	x.xxx_hidden_MemoryKib = v
}

func (x *KDFParams) SetThreads(v uint32) {
	x.xxx_hidden_Threads = v
}

func (x *KDFParams) SetSaltLen(v int32) {
	x.xxx_hidden_SaltLen = v
}

type KDFParams_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Algorithm  string
	Iterations uint32
	MemoryKib  uint32
	Threads    uint32
	SaltLen    int32
}

func (b0 KDFParams_builder) Build() *KDFParams {
	m0 := &KDFParams{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Algorithm = b.Algorithm
	x.xxx_hidden_Iterations = b.Iterations
	x.xxx_hidden_MemoryKib = b.MemoryKib
	x.xxx_hidden_Threads = b.Threads
	x.xxx_hidden_SaltLen = b.SaltLen
	return m0
}

type WrappedKeyBlob struct {
	state                    protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Id            string                 `protobuf:"bytes,1,opt,name=id,proto3"`
	xxx_hidden_VaultId       string                 `protobuf:"bytes,2,opt,name=vault_id,json=vaultId,proto3"`
	xxx_hidden_WrapType      string                 `protobuf:"bytes,3,opt,name=wrap_type,json=wrapType,proto3"`
	xxx_hidden_WrapVersion   uint32                 `protobuf:"varint,4,opt,name=wrap_version,json=wrapVersion,proto3"`
	xxx_hidden_PolicyVersion uint32                 `protobuf:"varint,5,opt,name=policy_version,json=policyVersion,proto3"`
	xxx_hidden_CredentialId  []byte                 `protobuf:"bytes,6,opt,name=credential_id,json=credentialId,proto3"`
	xxx_hidden_Salt          []byte                 `protobuf:"bytes,7,opt,name=salt,proto3"`
	xxx_hidden_Nonce         []byte                 `protobuf:"bytes,8,opt,name=nonce,proto3"`
	xxx_hidden_Ciphertext    []byte                 `protobuf:"bytes,9,opt,name=ciphertext,proto3"`
	xxx_hidden_Aad           []byte                 `protobuf:"bytes,10,opt,name=aad,proto3"`
	unknownFields            protoimpl.UnknownFields
	sizeCache                protoimpl.SizeCache
}

func (x *WrappedKeyBlob) Reset() {
	*x = WrappedKeyBlob{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WrappedKeyBlob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WrappedKeyBlob) ProtoMessage() {}

func (x *WrappedKeyBlob) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *WrappedKeyBlob) GetId() string {
	if x != nil {
		return x.xxx_hidden_Id
	}
	return ""
}

func (x *WrappedKeyBlob) GetVaultId() string {
	if x != nil {
		return x.xxx_hidden_VaultId
	}
	return ""
}

func (x *WrappedKeyBlob) GetWrapType() string {
	if x != nil {
		return x.xxx_hidden_WrapType
	}
	return ""
}

func (x *WrappedKeyBlob) GetWrapVersion() uint32 {
	if x != nil {
		return x.xxx_hidden_WrapVersion
	}
	return 0
}

func (x *WrappedKeyBlob) GetPolicyVersion() uint32 {
	if x != nil {
		return x.xxx_hidden_PolicyVersion
	}
	return 0
}

func (x *WrappedKeyBlob) GetCredentialId() []byte {
	if x != nil {
		return x.xxx_hidden_CredentialId
	}
	return nil
}

func (x *WrappedKeyBlob) GetSalt() []byte {
	if x != nil {
		return x.xxx_hidden_Salt
	}
	return nil
}

func (x *WrappedKeyBlob) GetNonce() []byte {
	if x != nil {
		return x.xxx_hidden_Nonce
	}
	return nil
}

func (x *WrappedKeyBlob) GetCiphertext() []byte {
	if x != nil {
		return x.xxx_hidden_Ciphertext
	}
	return nil
}

func (x *WrappedKeyBlob) GetAad() []byte {
	if x != nil {
		return x.xxx_hidden_Aad
	}
	return nil
}

func (x *WrappedKeyBlob) SetId(v string) {
	x.xxx_hidden_Id = v
}

func (x *WrappedKeyBlob) SetVaultId(v string) {
	x.xxx_hidden_VaultId = v
}

func (x *WrappedKeyBlob) SetWrapType(v string) {
	x.xxx_hidden_WrapType = v
}

func (x *WrappedKeyBlob) SetWrapVersion(v uint32) {
	x.xxx_hidden_WrapVersion = v
}

func (x *WrappedKeyBlob) SetPolicyVersion(v uint32) {
	x.xxx_hidden_PolicyVersion = v
}

func (x *WrappedKeyBlob) SetCredentialId(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_CredentialId = v
}

func (x *WrappedKeyBlob) SetSalt(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_Salt = v
}

func (x *WrappedKeyBlob) SetNonce(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_Nonce = v
}

func (x *WrappedKeyBlob) SetCiphertext(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_Ciphertext = v
}

func (x *WrappedKeyBlob) SetAad(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_Aad = v
}

type WrappedKeyBlob_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Id            string
	VaultId       string
	WrapType      string
	WrapVersion   uint32
	PolicyVersion uint32
	CredentialId  []byte
	Salt          []byte
	Nonce         []byte
	Ciphertext    []byte
	Aad           []byte
}

func (b0 WrappedKeyBlob_builder) Build() *WrappedKeyBlob {
	m0 := &WrappedKeyBlob{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Id = b.Id
	x.xxx_hidden_VaultId = b.VaultId
	x.xxx_hidden_WrapType = b.WrapType
	x.xxx_hidden_WrapVersion = b.WrapVersion
	x.xxx_hidden_PolicyVersion = b.PolicyVersion
	x.xxx_hidden_CredentialId = b.CredentialId
	x.xxx_hidden_Salt = b.Salt
	x.xxx_hidden_Nonce = b.Nonce
	x.xxx_hidden_Ciphertext = b.Ciphertext
	x.xxx_hidden_Aad = b.Aad
	return m0
}

type VaultState struct {
	state                 protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Locked     bool                   `protobuf:"varint,1,opt,name=locked,proto3"`
	xxx_hidden_LockReason string                 `protobuf:"bytes,2,opt,name=lock_reason,json=lockReason,proto3"`
	xxx_hidden_Generation int64                  `protobuf:"varint,3,opt,name=generation,proto3"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *VaultState) Reset() {
	*x = VaultState{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VaultState) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VaultState) ProtoMessage() {}

func (x *VaultState) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *VaultState) GetLocked() bool {
	if x != nil {
		return x.xxx_hidden_Locked
	}
	return false
}

func (x *VaultState) GetLockReason() string {
	if x != nil {
		return x.xxx_hidden_LockReason
	}
	return ""
}

func (x *VaultState) GetGeneration() int64 {
	if x != nil {
		return x.xxx_hidden_Generation
	}
	return 0
}

func (x *VaultState) SetLocked(v bool) {
	x.xxx_hidden_Locked = v
}

func (x *VaultState) SetLockReason(v string) {
	x.xxx_hidden_LockReason = v
}

func (x *VaultState) SetGeneration(v int64) {
	x.xxx_hidden_Generation = v
}

type VaultState_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Locked     bool
	LockReason string
	Generation int64
}

func (b0 VaultState_builder) Build() *VaultState {
	m0 := &VaultState{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Locked = b.Locked
	x.xxx_hidden_LockReason = b.LockReason
	x.xxx_hidden_Generation = b.Generation
	return m0
}

type InitVaultRequest struct {
	state                     protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_VaultId        string                 `protobuf:"bytes,1,opt,name=vault_id,json=vaultId,proto3"`
	xxx_hidden_PolicyVersion  uint32                 `protobuf:"varint,2,opt,name=policy_version,json=policyVersion,proto3"`
	xxx_hidden_PassphraseSalt []byte                 `protobuf:"bytes,3,opt,name=passphrase_salt,json=passphraseSalt,proto3"`
	xxx_hidden_KdfParams      *KDFParams             `protobuf:"bytes,4,opt,name=kdf_params,json=kdfParams,proto3"`
	xxx_hidden_Blob           *WrappedKeyBlob        `protobuf:"bytes,5,opt,name=blob,proto3"`
	unknownFields             protoimpl.UnknownFields
	sizeCache                 protoimpl.SizeCache
}

func (x *InitVaultRequest) Reset() {
	*x = InitVaultRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InitVaultRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InitVaultRequest) ProtoMessage() {}

func (x *InitVaultRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *InitVaultRequest) GetVaultId() string {
	if x != nil {
		return x.xxx_hidden_VaultId
	}
	return ""
}

func (x *InitVaultRequest) GetPolicyVersion() uint32 {
	if x != nil {
		return x.xxx_hidden_PolicyVersion
	}
	return 0
}

func (x *InitVaultRequest) GetPassphraseSalt() []byte {
	if x != nil {
		return x.xxx_hidden_PassphraseSalt
	}
	return nil
}

func (x *InitVaultRequest) GetKdfParams() *KDFParams {
	if x != nil {
		return x.xxx_hidden_KdfParams
	}
	return nil
}

func (x *InitVaultRequest) GetBlob() *WrappedKeyBlob {
	if x != nil {
		return x.xxx_hidden_Blob
	}
	return nil
}

func (x *InitVaultRequest) SetVaultId(v string) {
	x.xxx_hidden_VaultId = v
}

func (x *InitVaultRequest) SetPolicyVersion(v uint32) {
	x.xxx_hidden_PolicyVersion = v
}

func (x *InitVaultRequest) SetPassphraseSalt(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_PassphraseSalt = v
}

func (x *InitVaultRequest) SetKdfParams(v *KDFParams) {
	x.xxx_hidden_KdfParams = v
}

func (x *InitVaultRequest) SetBlob(v *WrappedKeyBlob) {
	x.xxx_hidden_Blob = v
}

func (x *InitVaultRequest) HasKdfParams() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_KdfParams != nil
}

func (x *InitVaultRequest) HasBlob() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_Blob != nil
}

func (x *InitVaultRequest) ClearKdfParams() {
	x.xxx_hidden_KdfParams = nil
}

func (x *InitVaultRequest) ClearBlob() {
	x.xxx_hidden_Blob = nil
}

type InitVaultRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	VaultId        string
	PolicyVersion  uint32
	PassphraseSalt []byte
	KdfParams      *KDFParams
	Blob           *WrappedKeyBlob
}

func (b0 InitVaultRequest_builder) Build() *InitVaultRequest {
	m0 := &InitVaultRequest{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_VaultId = b.VaultId
	x.xxx_hidden_PolicyVersion = b.PolicyVersion
	x.xxx_hidden_PassphraseSalt = b.PassphraseSalt
	x.xxx_hidden_KdfParams = b.KdfParams
	x.xxx_hidden_Blob = b.Blob
	return m0
}

type InitVaultResponse struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InitVaultResponse) Reset() {
	*x = InitVaultResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InitVaultResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InitVaultResponse) ProtoMessage() {}

func (x *InitVaultResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type InitVaultResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 InitVaultResponse_builder) Build() *InitVaultResponse {
	m0 := &InitVaultResponse{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type GetVaultStateRequest struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVaultStateRequest) Reset() {
	*x = GetVaultStateRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVaultStateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVaultStateRequest) ProtoMessage() {}

func (x *GetVaultStateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type GetVaultStateRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 GetVaultStateRequest_builder) Build() *GetVaultStateRequest {
	m0 := &GetVaultStateRequest{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type GetVaultStateResponse struct {
	state                     protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_VaultId        string                 `protobuf:"bytes,1,opt,name=vault_id,json=vaultId,proto3"`
	xxx_hidden_State          *VaultState            `protobuf:"bytes,2,opt,name=state,proto3"`
	xxx_hidden_PolicyVersion  uint32                 `protobuf:"varint,3,opt,name=policy_version,json=policyVersion,proto3"`
	xxx_hidden_PassphraseSalt []byte                 `protobuf:"bytes,4,opt,name=passphrase_salt,json=passphraseSalt,proto3"`
	xxx_hidden_KdfParams      *KDFParams             `protobuf:"bytes,5,opt,name=kdf_params,json=kdfParams,proto3"`
	unknownFields             protoimpl.UnknownFields
	sizeCache                 protoimpl.SizeCache
}

func (x *GetVaultStateResponse) Reset() {
	*x = GetVaultStateResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVaultStateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVaultStateResponse) ProtoMessage() {}

func (x *GetVaultStateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *GetVaultStateResponse) GetVaultId() string {
	if x != nil {
		return x.xxx_hidden_VaultId
	}
	return ""
}

func (x *GetVaultStateResponse) GetState() *VaultState {
	if x != nil {
		return x.xxx_hidden_State
	}
	return nil
}

func (x *GetVaultStateResponse) GetPolicyVersion() uint32 {
	if x != nil {
		return x.xxx_hidden_PolicyVersion
	}
	return 0
}

func (x *GetVaultStateResponse) GetPassphraseSalt() []byte {
	if x != nil {
		return x.xxx_hidden_PassphraseSalt
	}
	return nil
}

func (x *GetVaultStateResponse) GetKdfParams() *KDFParams {
	if x != nil {
		return x.xxx_hidden_KdfParams
	}
	return nil
}

func (x *GetVaultStateResponse) SetVaultId(v string) {
	x.xxx_hidden_VaultId = v
}

func (x *GetVaultStateResponse) SetState(v *VaultState) {
	x.xxx_hidden_State = v
}

func (x *GetVaultStateResponse) SetPolicyVersion(v uint32) {
	x.xxx_hidden_PolicyVersion = v
}

func (x *GetVaultStateResponse) SetPassphraseSalt(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_PassphraseSalt = v
}

func (x *GetVaultStateResponse) SetKdfParams(v *KDFParams) {
	x.xxx_hidden_KdfParams = v
}

func (x *GetVaultStateResponse) HasState() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_State != nil
}

func (x *GetVaultStateResponse) HasKdfParams() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_KdfParams != nil
}

func (x *GetVaultStateResponse) ClearState() {
	x.xxx_hidden_State = nil
}

func (x *GetVaultStateResponse) ClearKdfParams() {
	x.xxx_hidden_KdfParams = nil
}

type GetVaultStateResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	VaultId        string
	State          *VaultState
	PolicyVersion  uint32
	PassphraseSalt []byte
	KdfParams      *KDFParams
}

func (b0 GetVaultStateResponse_builder) Build() *GetVaultStateResponse {
	m0 := &GetVaultStateResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_VaultId = b.VaultId
	x.xxx_hidden_State = b.State
	x.xxx_hidden_PolicyVersion = b.PolicyVersion
	x.xxx_hidden_PassphraseSalt = b.PassphraseSalt
	x.xxx_hidden_KdfParams = b.KdfParams
	return m0
}

type LockVaultRequest struct {
	state             protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Reason string                 `protobuf:"bytes,1,opt,name=reason,proto3"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *LockVaultRequest) Reset() {
	*x = LockVaultRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LockVaultRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LockVaultRequest) ProtoMessage() {}

func (x *LockVaultRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *LockVaultRequest) GetReason() string {
	if x != nil {
		return x.xxx_hidden_Reason
	}
	return ""
}

func (x *LockVaultRequest) SetReason(v string) {
	x.xxx_hidden_Reason = v
}

type LockVaultRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Reason string
}

func (b0 LockVaultRequest_builder) Build() *LockVaultRequest {
	m0 := &LockVaultRequest{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Reason = b.Reason
	return m0
}

type LockVaultResponse struct {
	state                 protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Generation int64                  `protobuf:"varint,1,opt,name=generation,proto3"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *LockVaultResponse) Reset() {
	*x = LockVaultResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LockVaultResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LockVaultResponse) ProtoMessage() {}

func (x *LockVaultResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *LockVaultResponse) GetGeneration() int64 {
	if x != nil {
		return x.xxx_hidden_Generation
	}
	return 0
}

func (x *LockVaultResponse) SetGeneration(v int64) {
	x.xxx_hidden_Generation = v
}

type LockVaultResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Generation int64
}

func (b0 LockVaultResponse_builder) Build() *LockVaultResponse {
	m0 := &LockVaultResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Generation = b.Generation
	return m0
}

type ConfirmUnlockRequest struct {
	state                         protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_ObservedGeneration int64                  `protobuf:"varint,1,opt,name=observed_generation,json=observedGeneration,proto3"`
	unknownFields                 protoimpl.UnknownFields
	sizeCache                     protoimpl.SizeCache
}

func (x *ConfirmUnlockRequest) Reset() {
	*x = ConfirmUnlockRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmUnlockRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmUnlockRequest) ProtoMessage() {}

func (x *ConfirmUnlockRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *ConfirmUnlockRequest) GetObservedGeneration() int64 {
	if x != nil {
		return x.xxx_hidden_ObservedGeneration
	}
	return 0
}

func (x *ConfirmUnlockRequest) SetObservedGeneration(v int64) {
	x.xxx_hidden_ObservedGeneration = v
}

type ConfirmUnlockRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	ObservedGeneration int64
}

func (b0 ConfirmUnlockRequest_builder) Build() *ConfirmUnlockRequest {
	m0 := &ConfirmUnlockRequest{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_ObservedGeneration = b.ObservedGeneration
	return m0
}

type ConfirmUnlockResponse struct {
	state                 protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Generation int64                  `protobuf:"varint,1,opt,name=generation,proto3"`
	unknownFields         protoimpl.UnknownFields
	sizeCache             protoimpl.SizeCache
}

func (x *ConfirmUnlockResponse) Reset() {
	*x = ConfirmUnlockResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmUnlockResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmUnlockResponse) ProtoMessage() {}

func (x *ConfirmUnlockResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *ConfirmUnlockResponse) GetGeneration() int64 {
	if x != nil {
		return x.xxx_hidden_Generation
	}
	return 0
}

func (x *ConfirmUnlockResponse) SetGeneration(v int64) {
	x.xxx_hidden_Generation = v
}

type ConfirmUnlockResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Generation int64
}

func (b0 ConfirmUnlockResponse_builder) Build() *ConfirmUnlockResponse {
	m0 := &ConfirmUnlockResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Generation = b.Generation
	return m0
}

type GetWrappedBlobRequest struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetWrappedBlobRequest) Reset() {
	*x = GetWrappedBlobRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetWrappedBlobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetWrappedBlobRequest) ProtoMessage() {}

func (x *GetWrappedBlobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type GetWrappedBlobRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 GetWrappedBlobRequest_builder) Build() *GetWrappedBlobRequest {
	m0 := &GetWrappedBlobRequest{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type GetWrappedBlobResponse struct {
	state           protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Blob *WrappedKeyBlob        `protobuf:"bytes,1,opt,name=blob,proto3"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetWrappedBlobResponse) Reset() {
	*x = GetWrappedBlobResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetWrappedBlobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetWrappedBlobResponse) ProtoMessage() {}

func (x *GetWrappedBlobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *GetWrappedBlobResponse) GetBlob() *WrappedKeyBlob {
	if x != nil {
		return x.xxx_hidden_Blob
	}
	return nil
}

func (x *GetWrappedBlobResponse) SetBlob(v *WrappedKeyBlob) {
	x.xxx_hidden_Blob = v
}

func (x *GetWrappedBlobResponse) HasBlob() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_Blob != nil
}

func (x *GetWrappedBlobResponse) ClearBlob() {
	x.xxx_hidden_Blob = nil
}

type GetWrappedBlobResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Blob *WrappedKeyBlob
}

func (b0 GetWrappedBlobResponse_builder) Build() *GetWrappedBlobResponse {
	m0 := &GetWrappedBlobResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Blob = b.Blob
	return m0
}

type RewrapRequest struct {
	state                protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Salt      []byte                 `protobuf:"bytes,1,opt,name=salt,proto3"`
	xxx_hidden_KdfParams *KDFParams             `protobuf:"bytes,2,opt,name=kdf_params,json=kdfParams,proto3"`
	xxx_hidden_Blob      *WrappedKeyBlob        `protobuf:"bytes,3,opt,name=blob,proto3"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *RewrapRequest) Reset() {
	*x = RewrapRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RewrapRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RewrapRequest) ProtoMessage() {}

func (x *RewrapRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *RewrapRequest) GetSalt() []byte {
	if x != nil {
		return x.xxx_hidden_Salt
	}
	return nil
}

func (x *RewrapRequest) GetKdfParams() *KDFParams {
	if x != nil {
		return x.xxx_hidden_KdfParams
	}
	return nil
}

func (x *RewrapRequest) GetBlob() *WrappedKeyBlob {
	if x != nil {
		return x.xxx_hidden_Blob
	}
	return nil
}

func (x *RewrapRequest) SetSalt(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_Salt = v
}

func (x *RewrapRequest) SetKdfParams(v *KDFParams) {
	x.xxx_hidden_KdfParams = v
}

func (x *RewrapRequest) SetBlob(v *WrappedKeyBlob) {
	x.xxx_hidden_Blob = v
}

func (x *RewrapRequest) HasKdfParams() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_KdfParams != nil
}

func (x *RewrapRequest) HasBlob() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_Blob != nil
}

func (x *RewrapRequest) ClearKdfParams() {
	x.xxx_hidden_KdfParams = nil
}

func (x *RewrapRequest) ClearBlob() {
	x.xxx_hidden_Blob = nil
}

type RewrapRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Salt      []byte
	KdfParams *KDFParams
	Blob      *WrappedKeyBlob
}

func (b0 RewrapRequest_builder) Build() *RewrapRequest {
	m0 := &RewrapRequest{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Salt = b.Salt
	x.xxx_hidden_KdfParams = b.KdfParams
	x.xxx_hidden_Blob = b.Blob
	return m0
}

type RewrapResponse struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RewrapResponse) Reset() {
	*x = RewrapResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RewrapResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RewrapResponse) ProtoMessage() {}

func (x *RewrapResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type RewrapResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 RewrapResponse_builder) Build() *RewrapResponse {
	m0 := &RewrapResponse{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type PutCredentialBlobRequest struct {
	state           protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Blob *WrappedKeyBlob        `protobuf:"bytes,1,opt,name=blob,proto3"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *PutCredentialBlobRequest) Reset() {
	*x = PutCredentialBlobRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PutCredentialBlobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PutCredentialBlobRequest) ProtoMessage() {}

func (x *PutCredentialBlobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *PutCredentialBlobRequest) GetBlob() *WrappedKeyBlob {
	if x != nil {
		return x.xxx_hidden_Blob
	}
	return nil
}

func (x *PutCredentialBlobRequest) SetBlob(v *WrappedKeyBlob) {
	x.xxx_hidden_Blob = v
}

func (x *PutCredentialBlobRequest) HasBlob() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_Blob != nil
}

func (x *PutCredentialBlobRequest) ClearBlob() {
	x.xxx_hidden_Blob = nil
}

type PutCredentialBlobRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Blob *WrappedKeyBlob
}

func (b0 PutCredentialBlobRequest_builder) Build() *PutCredentialBlobRequest {
	m0 := &PutCredentialBlobRequest{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Blob = b.Blob
	return m0
}

type PutCredentialBlobResponse struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PutCredentialBlobResponse) Reset() {
	*x = PutCredentialBlobResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PutCredentialBlobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PutCredentialBlobResponse) ProtoMessage() {}

func (x *PutCredentialBlobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type PutCredentialBlobResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 PutCredentialBlobResponse_builder) Build() *PutCredentialBlobResponse {
	m0 := &PutCredentialBlobResponse{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type BeginCredentialRegistrationRequest struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BeginCredentialRegistrationRequest) Reset() {
	*x = BeginCredentialRegistrationRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BeginCredentialRegistrationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BeginCredentialRegistrationRequest) ProtoMessage() {}

func (x *BeginCredentialRegistrationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type BeginCredentialRegistrationRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 BeginCredentialRegistrationRequest_builder) Build() *BeginCredentialRegistrationRequest {
	m0 := &BeginCredentialRegistrationRequest{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type BeginCredentialRegistrationResponse struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_SessionId   string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3"`
	xxx_hidden_OptionsJson []byte                 `protobuf:"bytes,2,opt,name=options_json,json=optionsJson,proto3"`
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *BeginCredentialRegistrationResponse) Reset() {
	*x = BeginCredentialRegistrationResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BeginCredentialRegistrationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BeginCredentialRegistrationResponse) ProtoMessage() {}

func (x *BeginCredentialRegistrationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *BeginCredentialRegistrationResponse) GetSessionId() string {
	if x != nil {
		return x.xxx_hidden_SessionId
	}
	return ""
}

func (x *BeginCredentialRegistrationResponse) GetOptionsJson() []byte {
	if x != nil {
		return x.xxx_hidden_OptionsJson
	}
	return nil
}

func (x *BeginCredentialRegistrationResponse) SetSessionId(v string) {
	x.xxx_hidden_SessionId = v
}

func (x *BeginCredentialRegistrationResponse) SetOptionsJson(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_OptionsJson = v
}

type BeginCredentialRegistrationResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	SessionId   string
	OptionsJson []byte
}

func (b0 BeginCredentialRegistrationResponse_builder) Build() *BeginCredentialRegistrationResponse {
	m0 := &BeginCredentialRegistrationResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_SessionId = b.SessionId
	x.xxx_hidden_OptionsJson = b.OptionsJson
	return m0
}

type FinishCredentialRegistrationRequest struct {
	state                   protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_SessionId    string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3"`
	xxx_hidden_ResponseJson []byte                 `protobuf:"bytes,2,opt,name=response_json,json=responseJson,proto3"`
	unknownFields           protoimpl.UnknownFields
	sizeCache               protoimpl.SizeCache
}

func (x *FinishCredentialRegistrationRequest) Reset() {
	*x = FinishCredentialRegistrationRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinishCredentialRegistrationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinishCredentialRegistrationRequest) ProtoMessage() {}

func (x *FinishCredentialRegistrationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *FinishCredentialRegistrationRequest) GetSessionId() string {
	if x != nil {
		return x.xxx_hidden_SessionId
	}
	return ""
}

func (x *FinishCredentialRegistrationRequest) GetResponseJson() []byte {
	if x != nil {
		return x.xxx_hidden_ResponseJson
	}
	return nil
}

func (x *FinishCredentialRegistrationRequest) SetSessionId(v string) {
	x.xxx_hidden_SessionId = v
}

func (x *FinishCredentialRegistrationRequest) SetResponseJson(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_ResponseJson = v
}

type FinishCredentialRegistrationRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	SessionId    string
	ResponseJson []byte
}

func (b0 FinishCredentialRegistrationRequest_builder) Build() *FinishCredentialRegistrationRequest {
	m0 := &FinishCredentialRegistrationRequest{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_SessionId = b.SessionId
	x.xxx_hidden_ResponseJson = b.ResponseJson
	return m0
}

type FinishCredentialRegistrationResponse struct {
	state                   protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_CredentialId []byte                 `protobuf:"bytes,1,opt,name=credential_id,json=credentialId,proto3"`
	unknownFields           protoimpl.UnknownFields
	sizeCache               protoimpl.SizeCache
}

func (x *FinishCredentialRegistrationResponse) Reset() {
	*x = FinishCredentialRegistrationResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinishCredentialRegistrationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinishCredentialRegistrationResponse) ProtoMessage() {}

func (x *FinishCredentialRegistrationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *FinishCredentialRegistrationResponse) GetCredentialId() []byte {
	if x != nil {
		return x.xxx_hidden_CredentialId
	}
	return nil
}

func (x *FinishCredentialRegistrationResponse) SetCredentialId(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_CredentialId = v
}

type FinishCredentialRegistrationResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	CredentialId []byte
}

func (b0 FinishCredentialRegistrationResponse_builder) Build() *FinishCredentialRegistrationResponse {
	m0 := &FinishCredentialRegistrationResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_CredentialId = b.CredentialId
	return m0
}

type BeginUnlockChallengeRequest struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BeginUnlockChallengeRequest) Reset() {
	*x = BeginUnlockChallengeRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BeginUnlockChallengeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BeginUnlockChallengeRequest) ProtoMessage() {}

func (x *BeginUnlockChallengeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type BeginUnlockChallengeRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 BeginUnlockChallengeRequest_builder) Build() *BeginUnlockChallengeRequest {
	m0 := &BeginUnlockChallengeRequest{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type BeginUnlockChallengeResponse struct {
	state                  protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_SessionId   string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3"`
	xxx_hidden_OptionsJson []byte                 `protobuf:"bytes,2,opt,name=options_json,json=optionsJson,proto3"`
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *BeginUnlockChallengeResponse) Reset() {
	*x = BeginUnlockChallengeResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BeginUnlockChallengeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BeginUnlockChallengeResponse) ProtoMessage() {}

func (x *BeginUnlockChallengeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *BeginUnlockChallengeResponse) GetSessionId() string {
	if x != nil {
		return x.xxx_hidden_SessionId
	}
	return ""
}

func (x *BeginUnlockChallengeResponse) GetOptionsJson() []byte {
	if x != nil {
		return x.xxx_hidden_OptionsJson
	}
	return nil
}

func (x *BeginUnlockChallengeResponse) SetSessionId(v string) {
	x.xxx_hidden_SessionId = v
}

func (x *BeginUnlockChallengeResponse) SetOptionsJson(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_OptionsJson = v
}

type BeginUnlockChallengeResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	SessionId   string
	OptionsJson []byte
}

func (b0 BeginUnlockChallengeResponse_builder) Build() *BeginUnlockChallengeResponse {
	m0 := &BeginUnlockChallengeResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_SessionId = b.SessionId
	x.xxx_hidden_OptionsJson = b.OptionsJson
	return m0
}

type FinishUnlockChallengeRequest struct {
	state                   protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_SessionId    string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3"`
	xxx_hidden_ResponseJson []byte                 `protobuf:"bytes,2,opt,name=response_json,json=responseJson,proto3"`
	unknownFields           protoimpl.UnknownFields
	sizeCache               protoimpl.SizeCache
}

func (x *FinishUnlockChallengeRequest) Reset() {
	*x = FinishUnlockChallengeRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinishUnlockChallengeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinishUnlockChallengeRequest) ProtoMessage() {}

func (x *FinishUnlockChallengeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *FinishUnlockChallengeRequest) GetSessionId() string {
	if x != nil {
		return x.xxx_hidden_SessionId
	}
	return ""
}

func (x *FinishUnlockChallengeRequest) GetResponseJson() []byte {
	if x != nil {
		return x.xxx_hidden_ResponseJson
	}
	return nil
}

func (x *FinishUnlockChallengeRequest) SetSessionId(v string) {
	x.xxx_hidden_SessionId = v
}

func (x *FinishUnlockChallengeRequest) SetResponseJson(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_ResponseJson = v
}

type FinishUnlockChallengeRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	SessionId    string
	ResponseJson []byte
}

func (b0 FinishUnlockChallengeRequest_builder) Build() *FinishUnlockChallengeRequest {
	m0 := &FinishUnlockChallengeRequest{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_SessionId = b.SessionId
	x.xxx_hidden_ResponseJson = b.ResponseJson
	return m0
}

type FinishUnlockChallengeResponse struct {
	state           protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Blob *WrappedKeyBlob        `protobuf:"bytes,1,opt,name=blob,proto3"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *FinishUnlockChallengeResponse) Reset() {
	*x = FinishUnlockChallengeResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinishUnlockChallengeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinishUnlockChallengeResponse) ProtoMessage() {}

func (x *FinishUnlockChallengeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *FinishUnlockChallengeResponse) GetBlob() *WrappedKeyBlob {
	if x != nil {
		return x.xxx_hidden_Blob
	}
	return nil
}

func (x *FinishUnlockChallengeResponse) SetBlob(v *WrappedKeyBlob) {
	x.xxx_hidden_Blob = v
}

func (x *FinishUnlockChallengeResponse) HasBlob() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_Blob != nil
}

func (x *FinishUnlockChallengeResponse) ClearBlob() {
	x.xxx_hidden_Blob = nil
}

type FinishUnlockChallengeResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Blob *WrappedKeyBlob
}

func (b0 FinishUnlockChallengeResponse_builder) Build() *FinishUnlockChallengeResponse {
	m0 := &FinishUnlockChallengeResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Blob = b.Blob
	return m0
}

type RecoveryIssue struct {
	state               protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_CodeHash []byte                 `protobuf:"bytes,1,opt,name=code_hash,json=codeHash,proto3"`
	xxx_hidden_Blob     *WrappedKeyBlob        `protobuf:"bytes,2,opt,name=blob,proto3"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *RecoveryIssue) Reset() {
	*x = RecoveryIssue{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecoveryIssue) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecoveryIssue) ProtoMessage() {}

func (x *RecoveryIssue) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *RecoveryIssue) GetCodeHash() []byte {
	if x != nil {
		return x.xxx_hidden_CodeHash
	}
	return nil
}

func (x *RecoveryIssue) GetBlob() *WrappedKeyBlob {
	if x != nil {
		return x.xxx_hidden_Blob
	}
	return nil
}

func (x *RecoveryIssue) SetCodeHash(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_CodeHash = v
}

func (x *RecoveryIssue) SetBlob(v *WrappedKeyBlob) {
	x.xxx_hidden_Blob = v
}

func (x *RecoveryIssue) HasBlob() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_Blob != nil
}

func (x *RecoveryIssue) ClearBlob() {
	x.xxx_hidden_Blob = nil
}

type RecoveryIssue_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	CodeHash []byte
	Blob     *WrappedKeyBlob
}

func (b0 RecoveryIssue_builder) Build() *RecoveryIssue {
	m0 := &RecoveryIssue{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_CodeHash = b.CodeHash
	x.xxx_hidden_Blob = b.Blob
	return m0
}

type ReplaceRecoveryCodesRequest struct {
	state             protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Issues *[]*RecoveryIssue      `protobuf:"bytes,1,rep,name=issues,proto3"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *ReplaceRecoveryCodesRequest) Reset() {
	*x = ReplaceRecoveryCodesRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReplaceRecoveryCodesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReplaceRecoveryCodesRequest) ProtoMessage() {}

func (x *ReplaceRecoveryCodesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *ReplaceRecoveryCodesRequest) GetIssues() []*RecoveryIssue {
	if x != nil {
		if x.xxx_hidden_Issues != nil {
			return *x.xxx_hidden_Issues
		}
	}
	return nil
}

func (x *ReplaceRecoveryCodesRequest) SetIssues(v []*RecoveryIssue) {
	x.xxx_hidden_Issues = &v
}

type ReplaceRecoveryCodesRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Issues []*RecoveryIssue
}

func (b0 ReplaceRecoveryCodesRequest_builder) Build() *ReplaceRecoveryCodesRequest {
	m0 := &ReplaceRecoveryCodesRequest{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Issues = &b.Issues
	return m0
}

type ReplaceRecoveryCodesResponse struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReplaceRecoveryCodesResponse) Reset() {
	*x = ReplaceRecoveryCodesResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReplaceRecoveryCodesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReplaceRecoveryCodesResponse) ProtoMessage() {}

func (x *ReplaceRecoveryCodesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type ReplaceRecoveryCodesResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 ReplaceRecoveryCodesResponse_builder) Build() *ReplaceRecoveryCodesResponse {
	m0 := &ReplaceRecoveryCodesResponse{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type ListRecoveryCodesRequest struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRecoveryCodesRequest) Reset() {
	*x = ListRecoveryCodesRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRecoveryCodesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRecoveryCodesRequest) ProtoMessage() {}

func (x *ListRecoveryCodesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

type ListRecoveryCodesRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

}

func (b0 ListRecoveryCodesRequest_builder) Build() *ListRecoveryCodesRequest {
	m0 := &ListRecoveryCodesRequest{}
	b, x := &b0, m0
	_, _ = b, x
	return m0
}

type RecoveryCodeInfo struct {
	state                protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Id        string                 `protobuf:"bytes,1,opt,name=id,proto3"`
	xxx_hidden_CreatedAt *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=created_at,json=createdAt,proto3"`
	xxx_hidden_UsedAt    *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=used_at,json=usedAt,proto3"`
	xxx_hidden_Used      bool                   `protobuf:"varint,4,opt,name=used,proto3"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *RecoveryCodeInfo) Reset() {
	*x = RecoveryCodeInfo{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecoveryCodeInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecoveryCodeInfo) ProtoMessage() {}

func (x *RecoveryCodeInfo) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *RecoveryCodeInfo) GetId() string {
	if x != nil {
		return x.xxx_hidden_Id
	}
	return ""
}

func (x *RecoveryCodeInfo) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.xxx_hidden_CreatedAt
	}
	return nil
}

func (x *RecoveryCodeInfo) GetUsedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.xxx_hidden_UsedAt
	}
	return nil
}

func (x *RecoveryCodeInfo) GetUsed() bool {
	if x != nil {
		return x.xxx_hidden_Used
	}
	return false
}

func (x *RecoveryCodeInfo) SetId(v string) {
	x.xxx_hidden_Id = v
}

func (x *RecoveryCodeInfo) SetCreatedAt(v *timestamppb.Timestamp) {
	x.xxx_hidden_CreatedAt = v
}

func (x *RecoveryCodeInfo) SetUsedAt(v *timestamppb.Timestamp) {
	x.xxx_hidden_UsedAt = v
}

func (x *RecoveryCodeInfo) SetUsed(v bool) {
	x.xxx_hidden_Used = v
}

func (x *RecoveryCodeInfo) HasCreatedAt() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_CreatedAt != nil
}

func (x *RecoveryCodeInfo) HasUsedAt() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_UsedAt != nil
}

func (x *RecoveryCodeInfo) ClearCreatedAt() {
	x.xxx_hidden_CreatedAt = nil
}

func (x *RecoveryCodeInfo) ClearUsedAt() {
	x.xxx_hidden_UsedAt = nil
}

type RecoveryCodeInfo_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Id        string
	CreatedAt *timestamppb.Timestamp
	UsedAt    *timestamppb.Timestamp
	Used      bool
}

func (b0 RecoveryCodeInfo_builder) Build() *RecoveryCodeInfo {
	m0 := &RecoveryCodeInfo{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Id = b.Id
	x.xxx_hidden_CreatedAt = b.CreatedAt
	x.xxx_hidden_UsedAt = b.UsedAt
	x.xxx_hidden_Used = b.Used
	return m0
}

type ListRecoveryCodesResponse struct {
	state            protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Codes *[]*RecoveryCodeInfo   `protobuf:"bytes,1,rep,name=codes,proto3"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ListRecoveryCodesResponse) Reset() {
	*x = ListRecoveryCodesResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRecoveryCodesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRecoveryCodesResponse) ProtoMessage() {}

func (x *ListRecoveryCodesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *ListRecoveryCodesResponse) GetCodes() []*RecoveryCodeInfo {
	if x != nil {
		if x.xxx_hidden_Codes != nil {
			return *x.xxx_hidden_Codes
		}
	}
	return nil
}

func (x *ListRecoveryCodesResponse) SetCodes(v []*RecoveryCodeInfo) {
	x.xxx_hidden_Codes = &v
}

type ListRecoveryCodesResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Codes []*RecoveryCodeInfo
}

func (b0 ListRecoveryCodesResponse_builder) Build() *ListRecoveryCodesResponse {
	m0 := &ListRecoveryCodesResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Codes = &b.Codes
	return m0
}

type RedeemRecoveryCodeRequest struct {
	state               protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_CodeHash []byte                 `protobuf:"bytes,1,opt,name=code_hash,json=codeHash,proto3"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *RedeemRecoveryCodeRequest) Reset() {
	*x = RedeemRecoveryCodeRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RedeemRecoveryCodeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RedeemRecoveryCodeRequest) ProtoMessage() {}

func (x *RedeemRecoveryCodeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *RedeemRecoveryCodeRequest) GetCodeHash() []byte {
	if x != nil {
		return x.xxx_hidden_CodeHash
	}
	return nil
}

func (x *RedeemRecoveryCodeRequest) SetCodeHash(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_CodeHash = v
}

type RedeemRecoveryCodeRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	CodeHash []byte
}

func (b0 RedeemRecoveryCodeRequest_builder) Build() *RedeemRecoveryCodeRequest {
	m0 := &RedeemRecoveryCodeRequest{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_CodeHash = b.CodeHash
	return m0
}

type RedeemRecoveryCodeResponse struct {
	state           protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Blob *WrappedKeyBlob        `protobuf:"bytes,1,opt,name=blob,proto3"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *RedeemRecoveryCodeResponse) Reset() {
	*x = RedeemRecoveryCodeResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RedeemRecoveryCodeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RedeemRecoveryCodeResponse) ProtoMessage() {}

func (x *RedeemRecoveryCodeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *RedeemRecoveryCodeResponse) GetBlob() *WrappedKeyBlob {
	if x != nil {
		return x.xxx_hidden_Blob
	}
	return nil
}

func (x *RedeemRecoveryCodeResponse) SetBlob(v *WrappedKeyBlob) {
	x.xxx_hidden_Blob = v
}

func (x *RedeemRecoveryCodeResponse) HasBlob() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_Blob != nil
}

func (x *RedeemRecoveryCodeResponse) ClearBlob() {
	x.xxx_hidden_Blob = nil
}

type RedeemRecoveryCodeResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Blob *WrappedKeyBlob
}

func (b0 RedeemRecoveryCodeResponse_builder) Build() *RedeemRecoveryCodeResponse {
	m0 := &RedeemRecoveryCodeResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Blob = b.Blob
	return m0
}

type UpsertRecord struct {
	state                    protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Id            string                 `protobuf:"bytes,1,opt,name=id,proto3"`
	xxx_hidden_BaseVer       int64                  `protobuf:"varint,2,opt,name=base_ver,json=baseVer,proto3"`
	xxx_hidden_RecordType    string                 `protobuf:"bytes,3,opt,name=record_type,json=recordType,proto3"`
	xxx_hidden_PolicyVersion uint32                 `protobuf:"varint,4,opt,name=policy_version,json=policyVersion,proto3"`
	xxx_hidden_Nonce         []byte                 `protobuf:"bytes,5,opt,name=nonce,proto3"`
	xxx_hidden_Ciphertext    []byte                 `protobuf:"bytes,6,opt,name=ciphertext,proto3"`
	xxx_hidden_Aad           []byte                 `protobuf:"bytes,7,opt,name=aad,proto3"`
	unknownFields            protoimpl.UnknownFields
	sizeCache                protoimpl.SizeCache
}

func (x *UpsertRecord) Reset() {
	*x = UpsertRecord{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpsertRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpsertRecord) ProtoMessage() {}

func (x *UpsertRecord) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *UpsertRecord) GetId() string {
	if x != nil {
		return x.xxx_hidden_Id
	}
	return ""
}

func (x *UpsertRecord) GetBaseVer() int64 {
	if x != nil {
		return x.xxx_hidden_BaseVer
	}
	return 0
}

func (x *UpsertRecord) GetRecordType() string {
	if x != nil {
		return x.xxx_hidden_RecordType
	}
	return ""
}

func (x *UpsertRecord) GetPolicyVersion() uint32 {
	if x != nil {
		return x.xxx_hidden_PolicyVersion
	}
	return 0
}

func (x *UpsertRecord) GetNonce() []byte {
	if x != nil {
		return x.xxx_hidden_Nonce
	}
	return nil
}

func (x *UpsertRecord) GetCiphertext() []byte {
	if x != nil {
		return x.xxx_hidden_Ciphertext
	}
	return nil
}

func (x *UpsertRecord) GetAad() []byte {
	if x != nil {
		return x.xxx_hidden_Aad
	}
	return nil
}

func (x *UpsertRecord) SetId(v string) {
	x.xxx_hidden_Id = v
}

func (x *UpsertRecord) SetBaseVer(v int64) {
	x.xxx_hidden_BaseVer = v
}

func (x *UpsertRecord) SetRecordType(v string) {
	x.xxx_hidden_RecordType = v
}

func (x *UpsertRecord) SetPolicyVersion(v uint32) {
	x.xxx_hidden_PolicyVersion = v
}

func (x *UpsertRecord) SetNonce(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_Nonce = v
}

func (x *UpsertRecord) SetCiphertext(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_Ciphertext = v
}

func (x *UpsertRecord) SetAad(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_Aad = v
}

type UpsertRecord_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Id            string
	BaseVer       int64
	RecordType    string
	PolicyVersion uint32
	Nonce         []byte
	Ciphertext    []byte
	Aad           []byte
}

func (b0 UpsertRecord_builder) Build() *UpsertRecord {
	m0 := &UpsertRecord{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Id = b.Id
	x.xxx_hidden_BaseVer = b.BaseVer
	x.xxx_hidden_RecordType = b.RecordType
	x.xxx_hidden_PolicyVersion = b.PolicyVersion
	x.xxx_hidden_Nonce = b.Nonce
	x.xxx_hidden_Ciphertext = b.Ciphertext
	x.xxx_hidden_Aad = b.Aad
	return m0
}

type UpsertRecordsRequest struct {
	state              protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Records *[]*UpsertRecord       `protobuf:"bytes,1,rep,name=records,proto3"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *UpsertRecordsRequest) Reset() {
	*x = UpsertRecordsRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpsertRecordsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpsertRecordsRequest) ProtoMessage() {}

func (x *UpsertRecordsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *UpsertRecordsRequest) GetRecords() []*UpsertRecord {
	if x != nil {
		if x.xxx_hidden_Records != nil {
			return *x.xxx_hidden_Records
		}
	}
	return nil
}

func (x *UpsertRecordsRequest) SetRecords(v []*UpsertRecord) {
	x.xxx_hidden_Records = &v
}

type UpsertRecordsRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Records []*UpsertRecord
}

func (b0 UpsertRecordsRequest_builder) Build() *UpsertRecordsRequest {
	m0 := &UpsertRecordsRequest{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Records = &b.Records
	return m0
}

type RecordVersion struct {
	state             protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Id     string                 `protobuf:"bytes,1,opt,name=id,proto3"`
	xxx_hidden_NewVer int64                  `protobuf:"varint,2,opt,name=new_ver,json=newVer,proto3"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *RecordVersion) Reset() {
	*x = RecordVersion{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordVersion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordVersion) ProtoMessage() {}

func (x *RecordVersion) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *RecordVersion) GetId() string {
	if x != nil {
		return x.xxx_hidden_Id
	}
	return ""
}

func (x *RecordVersion) GetNewVer() int64 {
	if x != nil {
		return x.xxx_hidden_NewVer
	}
	return 0
}

func (x *RecordVersion) SetId(v string) {
	x.xxx_hidden_Id = v
}

func (x *RecordVersion) SetNewVer(v int64) {
	x.xxx_hidden_NewVer = v
}

type RecordVersion_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Id     string
	NewVer int64
}

func (b0 RecordVersion_builder) Build() *RecordVersion {
	m0 := &RecordVersion{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Id = b.Id
	x.xxx_hidden_NewVer = b.NewVer
	return m0
}

type UpsertRecordsResponse struct {
	state              protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Results *[]*RecordVersion      `protobuf:"bytes,1,rep,name=results,proto3"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *UpsertRecordsResponse) Reset() {
	*x = UpsertRecordsResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpsertRecordsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpsertRecordsResponse) ProtoMessage() {}

func (x *UpsertRecordsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *UpsertRecordsResponse) GetResults() []*RecordVersion {
	if x != nil {
		if x.xxx_hidden_Results != nil {
			return *x.xxx_hidden_Results
		}
	}
	return nil
}

func (x *UpsertRecordsResponse) SetResults(v []*RecordVersion) {
	x.xxx_hidden_Results = &v
}

type UpsertRecordsResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Results []*RecordVersion
}

func (b0 UpsertRecordsResponse_builder) Build() *UpsertRecordsResponse {
	m0 := &UpsertRecordsResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Results = &b.Results
	return m0
}

type Record struct {
	state                    protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Id            string                 `protobuf:"bytes,1,opt,name=id,proto3"`
	xxx_hidden_RecordType    string                 `protobuf:"bytes,2,opt,name=record_type,json=recordType,proto3"`
	xxx_hidden_PolicyVersion uint32                 `protobuf:"varint,3,opt,name=policy_version,json=policyVersion,proto3"`
	xxx_hidden_Nonce         []byte                 `protobuf:"bytes,4,opt,name=nonce,proto3"`
	xxx_hidden_Ciphertext    []byte                 `protobuf:"bytes,5,opt,name=ciphertext,proto3"`
	xxx_hidden_Aad           []byte                 `protobuf:"bytes,6,opt,name=aad,proto3"`
	xxx_hidden_Ver           int64                  `protobuf:"varint,7,opt,name=ver,proto3"`
	xxx_hidden_Deleted       bool                   `protobuf:"varint,8,opt,name=deleted,proto3"`
	xxx_hidden_UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3"`
	unknownFields            protoimpl.UnknownFields
	sizeCache                protoimpl.SizeCache
}

func (x *Record) Reset() {
	*x = Record{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Record) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Record) ProtoMessage() {}

func (x *Record) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *Record) GetId() string {
	if x != nil {
		return x.xxx_hidden_Id
	}
	return ""
}

func (x *Record) GetRecordType() string {
	if x != nil {
		return x.xxx_hidden_RecordType
	}
	return ""
}

func (x *Record) GetPolicyVersion() uint32 {
	if x != nil {
		return x.xxx_hidden_PolicyVersion
	}
	return 0
}

func (x *Record) GetNonce() []byte {
	if x != nil {
		return x.xxx_hidden_Nonce
	}
	return nil
}

func (x *Record) GetCiphertext() []byte {
	if x != nil {
		return x.xxx_hidden_Ciphertext
	}
	return nil
}

func (x *Record) GetAad() []byte {
	if x != nil {
		return x.xxx_hidden_Aad
	}
	return nil
}

func (x *Record) GetVer() int64 {
	if x != nil {
		return x.xxx_hidden_Ver
	}
	return 0
}

func (x *Record) GetDeleted() bool {
	if x != nil {
		return x.xxx_hidden_Deleted
	}
	return false
}

func (x *Record) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.xxx_hidden_UpdatedAt
	}
	return nil
}

func (x *Record) SetId(v string) {
	x.xxx_hidden_Id = v
}

func (x *Record) SetRecordType(v string) {
	x.xxx_hidden_RecordType = v
}

func (x *Record) SetPolicyVersion(v uint32) {
	x.xxx_hidden_PolicyVersion = v
}

func (x *Record) SetNonce(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_Nonce = v
}

func (x *Record) SetCiphertext(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_Ciphertext = v
}

func (x *Record) SetAad(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_Aad = v
}

func (x *Record) SetVer(v int64) {
	x.xxx_hidden_Ver = v
}

func (x *Record) SetDeleted(v bool) {
	x.xxx_hidden_Deleted = v
}

func (x *Record) SetUpdatedAt(v *timestamppb.Timestamp) {
	x.xxx_hidden_UpdatedAt = v
}

func (x *Record) HasUpdatedAt() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_UpdatedAt != nil
}

func (x *Record) ClearUpdatedAt() {
	x.xxx_hidden_UpdatedAt = nil
}

type Record_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Id            string
	RecordType    string
	PolicyVersion uint32
	Nonce         []byte
	Ciphertext    []byte
	Aad           []byte
	Ver           int64
	Deleted       bool
	UpdatedAt     *timestamppb.Timestamp
}

func (b0 Record_builder) Build() *Record {
	m0 := &Record{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Id = b.Id
	x.xxx_hidden_RecordType = b.RecordType
	x.xxx_hidden_PolicyVersion = b.PolicyVersion
	x.xxx_hidden_Nonce = b.Nonce
	x.xxx_hidden_Ciphertext = b.Ciphertext
	x.xxx_hidden_Aad = b.Aad
	x.xxx_hidden_Ver = b.Ver
	x.xxx_hidden_Deleted = b.Deleted
	x.xxx_hidden_UpdatedAt = b.UpdatedAt
	return m0
}

type GetRecordRequest struct {
	state         protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Id string                 `protobuf:"bytes,1,opt,name=id,proto3"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRecordRequest) Reset() {
	*x = GetRecordRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRecordRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRecordRequest) ProtoMessage() {}

func (x *GetRecordRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *GetRecordRequest) GetId() string {
	if x != nil {
		return x.xxx_hidden_Id
	}
	return ""
}

func (x *GetRecordRequest) SetId(v string) {
	x.xxx_hidden_Id = v
}

type GetRecordRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Id string
}

func (b0 GetRecordRequest_builder) Build() *GetRecordRequest {
	m0 := &GetRecordRequest{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Id = b.Id
	return m0
}

type GetRecordResponse struct {
	state             protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Record *Record                `protobuf:"bytes,1,opt,name=record,proto3"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *GetRecordResponse) Reset() {
	*x = GetRecordResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRecordResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRecordResponse) ProtoMessage() {}

func (x *GetRecordResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *GetRecordResponse) GetRecord() *Record {
	if x != nil {
		return x.xxx_hidden_Record
	}
	return nil
}

func (x *GetRecordResponse) SetRecord(v *Record) {
	x.xxx_hidden_Record = v
}

func (x *GetRecordResponse) HasRecord() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_Record != nil
}

func (x *GetRecordResponse) ClearRecord() {
	x.xxx_hidden_Record = nil
}

type GetRecordResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Record *Record
}

func (b0 GetRecordResponse_builder) Build() *GetRecordResponse {
	m0 := &GetRecordResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Record = b.Record
	return m0
}

type DeleteRecordRequest struct {
	state              protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Id      string                 `protobuf:"bytes,1,opt,name=id,proto3"`
	xxx_hidden_BaseVer int64                  `protobuf:"varint,2,opt,name=base_ver,json=baseVer,proto3"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *DeleteRecordRequest) Reset() {
	*x = DeleteRecordRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteRecordRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteRecordRequest) ProtoMessage() {}

func (x *DeleteRecordRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *DeleteRecordRequest) GetId() string {
	if x != nil {
		return x.xxx_hidden_Id
	}
	return ""
}

func (x *DeleteRecordRequest) GetBaseVer() int64 {
	if x != nil {
		return x.xxx_hidden_BaseVer
	}
	return 0
}

func (x *DeleteRecordRequest) SetId(v string) {
	x.xxx_hidden_Id = v
}

func (x *DeleteRecordRequest) SetBaseVer(v int64) {
	x.xxx_hidden_BaseVer = v
}

type DeleteRecordRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Id      string
	BaseVer int64
}

func (b0 DeleteRecordRequest_builder) Build() *DeleteRecordRequest {
	m0 := &DeleteRecordRequest{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Id = b.Id
	x.xxx_hidden_BaseVer = b.BaseVer
	return m0
}

type DeleteRecordResponse struct {
	state             protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Result *RecordVersion         `protobuf:"bytes,1,opt,name=result,proto3"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *DeleteRecordResponse) Reset() {
	*x = DeleteRecordResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteRecordResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteRecordResponse) ProtoMessage() {}

func (x *DeleteRecordResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *DeleteRecordResponse) GetResult() *RecordVersion {
	if x != nil {
		return x.xxx_hidden_Result
	}
	return nil
}

func (x *DeleteRecordResponse) SetResult(v *RecordVersion) {
	x.xxx_hidden_Result = v
}

func (x *DeleteRecordResponse) HasResult() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_Result != nil
}

func (x *DeleteRecordResponse) ClearResult() {
	x.xxx_hidden_Result = nil
}

type DeleteRecordResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Result *RecordVersion
}

func (b0 DeleteRecordResponse_builder) Build() *DeleteRecordResponse {
	m0 := &DeleteRecordResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Result = b.Result
	return m0
}

type GetRecordChangesRequest struct {
	state               protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_SinceVer int64                  `protobuf:"varint,1,opt,name=since_ver,json=sinceVer,proto3"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *GetRecordChangesRequest) Reset() {
	*x = GetRecordChangesRequest{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRecordChangesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRecordChangesRequest) ProtoMessage() {}

func (x *GetRecordChangesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *GetRecordChangesRequest) GetSinceVer() int64 {
	if x != nil {
		return x.xxx_hidden_SinceVer
	}
	return 0
}

func (x *GetRecordChangesRequest) SetSinceVer(v int64) {
	x.xxx_hidden_SinceVer = v
}

type GetRecordChangesRequest_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	SinceVer int64
}

func (b0 GetRecordChangesRequest_builder) Build() *GetRecordChangesRequest {
	m0 := &GetRecordChangesRequest{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_SinceVer = b.SinceVer
	return m0
}

type RecordChange struct {
	state                    protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Id            string                 `protobuf:"bytes,1,opt,name=id,proto3"`
	xxx_hidden_Ver           int64                  `protobuf:"varint,2,opt,name=ver,proto3"`
	xxx_hidden_Deleted       bool                   `protobuf:"varint,3,opt,name=deleted,proto3"`
	xxx_hidden_UpdatedAt     *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=updated_at,json=updatedAt,proto3"`
	xxx_hidden_RecordType    string                 `protobuf:"bytes,5,opt,name=record_type,json=recordType,proto3"`
	xxx_hidden_PolicyVersion uint32                 `protobuf:"varint,6,opt,name=policy_version,json=policyVersion,proto3"`
	xxx_hidden_Nonce         []byte                 `protobuf:"bytes,7,opt,name=nonce,proto3"`
	xxx_hidden_Ciphertext    []byte                 `protobuf:"bytes,8,opt,name=ciphertext,proto3"`
	xxx_hidden_Aad           []byte                 `protobuf:"bytes,9,opt,name=aad,proto3"`
	unknownFields            protoimpl.UnknownFields
	sizeCache                protoimpl.SizeCache
}

func (x *RecordChange) Reset() {
	*x = RecordChange{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecordChange) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecordChange) ProtoMessage() {}

func (x *RecordChange) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *RecordChange) GetId() string {
	if x != nil {
		return x.xxx_hidden_Id
	}
	return ""
}

func (x *RecordChange) GetVer() int64 {
	if x != nil {
		return x.xxx_hidden_Ver
	}
	return 0
}

func (x *RecordChange) GetDeleted() bool {
	if x != nil {
		return x.xxx_hidden_Deleted
	}
	return false
}

func (x *RecordChange) GetUpdatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.xxx_hidden_UpdatedAt
	}
	return nil
}

func (x *RecordChange) GetRecordType() string {
	if x != nil {
		return x.xxx_hidden_RecordType
	}
	return ""
}

func (x *RecordChange) GetPolicyVersion() uint32 {
	if x != nil {
		return x.xxx_hidden_PolicyVersion
	}
	return 0
}

func (x *RecordChange) GetNonce() []byte {
	if x != nil {
		return x.xxx_hidden_Nonce
	}
	return nil
}

func (x *RecordChange) GetCiphertext() []byte {
	if x != nil {
		return x.xxx_hidden_Ciphertext
	}
	return nil
}

func (x *RecordChange) GetAad() []byte {
	if x != nil {
		return x.xxx_hidden_Aad
	}
	return nil
}

func (x *RecordChange) SetId(v string) {
	x.xxx_hidden_Id = v
}

func (x *RecordChange) SetVer(v int64) {
	x.xxx_hidden_Ver = v
}

func (x *RecordChange) SetDeleted(v bool) {
	x.xxx_hidden_Deleted = v
}

func (x *RecordChange) SetUpdatedAt(v *timestamppb.Timestamp) {
	x.xxx_hidden_UpdatedAt = v
}

func (x *RecordChange) SetRecordType(v string) {
	x.xxx_hidden_RecordType = v
}

func (x *RecordChange) SetPolicyVersion(v uint32) {
	x.xxx_hidden_PolicyVersion = v
}

func (x *RecordChange) SetNonce(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_Nonce = v
}

func (x *RecordChange) SetCiphertext(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_Ciphertext = v
}

func (x *RecordChange) SetAad(v []byte) {
	if v == nil {
		v = []byte{}
	}
	x.xxx_hidden_Aad = v
}

func (x *RecordChange) HasUpdatedAt() bool {
	if x == nil {
		return false
	}
	return x.xxx_hidden_UpdatedAt != nil
}

func (x *RecordChange) ClearUpdatedAt() {
	x.xxx_hidden_UpdatedAt = nil
}

type RecordChange_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Id            string
	Ver           int64
	Deleted       bool
	UpdatedAt     *timestamppb.Timestamp
	RecordType    string
	PolicyVersion uint32
	Nonce         []byte
	Ciphertext    []byte
	Aad           []byte
}

func (b0 RecordChange_builder) Build() *RecordChange {
	m0 := &RecordChange{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Id = b.Id
	x.xxx_hidden_Ver = b.Ver
	x.xxx_hidden_Deleted = b.Deleted
	x.xxx_hidden_UpdatedAt = b.UpdatedAt
	x.xxx_hidden_RecordType = b.RecordType
	x.xxx_hidden_PolicyVersion = b.PolicyVersion
	x.xxx_hidden_Nonce = b.Nonce
	x.xxx_hidden_Ciphertext = b.Ciphertext
	x.xxx_hidden_Aad = b.Aad
	return m0
}

type GetRecordChangesResponse struct {
	state              protoimpl.MessageState `protogen:"opaque.v1"`
	xxx_hidden_Changes *[]*RecordChange       `protobuf:"bytes,1,rep,name=changes,proto3"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *GetRecordChangesResponse) Reset() {
	*x = GetRecordChangesResponse{}
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRecordChangesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRecordChangesResponse) ProtoMessage() {}

func (x *GetRecordChangesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lockbox_v1_lockbox_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *GetRecordChangesResponse) GetChanges() []*RecordChange {
	if x != nil {
		if x.xxx_hidden_Changes != nil {
			return *x.xxx_hidden_Changes
		}
	}
	return nil
}

func (x *GetRecordChangesResponse) SetChanges(v []*RecordChange) {
	x.xxx_hidden_Changes = &v
}

type GetRecordChangesResponse_builder struct {
	_ [0]func() // Prevents comparability and use of unkeyed literals for the builder.

	Changes []*RecordChange
}

func (b0 GetRecordChangesResponse_builder) Build() *GetRecordChangesResponse {
	m0 := &GetRecordChangesResponse{}
	b, x := &b0, m0
	_, _ = b, x
	x.xxx_hidden_Changes = &b.Changes
	return m0
}

var File_lockbox_v1_lockbox_proto protoreflect.FileDescriptor

const file_lockbox_v1_lockbox_proto_rawDesc = "" +
	"\n" +
	"\x18lockbox/v1/lockbox.proto\x12\n" +
	"lockbox.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\x9d\x01\n" +
	"\tKDFParams\x12\x1c\n" +
	"\talgorithm\x18\x01 \x01(\tR\talgorithm\x12\x1e\n" +
	"\n" +
	"iterations\x18\x02 \x01(\rR\n" +
	"iterations\x12\x1d\n" +
	"\n" +
	"memory_kib\x18\x03 \x01(\rR\tmemoryKib\x12\x18\n" +
	"\athreads\x18\x04 \x01(\rR\athreads\x12\x19\n" +
	"\bsalt_len\x18\x05 \x01(\x05R\asaltLen\"\xa3\x02\n" +
	"\x0eWrappedKeyBlob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bvault_id\x18\x02 \x01(\tR\avaultId\x12\x1b\n" +
	"\twrap_type\x18\x03 \x01(\tR\bwrapType\x12!\n" +
	"\fwrap_version\x18\x04 \x01(\rR\vwrapVersion\x12%\n" +
	"\x0epolicy_version\x18\x05 \x01(\rR\rpolicyVersion\x12#\n" +
	"\rcredential_id\x18\x06 \x01(\fR\fcredentialId\x12\x12\n" +
	"\x04salt\x18\a \x01(\fR\x04salt\x12\x14\n" +
	"\x05nonce\x18\b \x01(\fR\x05nonce\x12\x1e\n" +
	"\n" +
	"ciphertext\x18\t \x01(\fR\n" +
	"ciphertext\x12\x10\n" +
	"\x03aad\x18\n" +
	" \x01(\fR\x03aad\"e\n" +
	"\n" +
	"VaultState\x12\x16\n" +
	"\x06locked\x18\x01 \x01(\bR\x06locked\x12\x1f\n" +
	"\vlock_reason\x18\x02 \x01(\tR\n" +
	"lockReason\x12\x1e\n" +
	"\n" +
	"generation\x18\x03 \x01(\x03R\n" +
	"generation\"\xe3\x01\n" +
	"\x10InitVaultRequest\x12\x19\n" +
	"\bvault_id\x18\x01 \x01(\tR\avaultId\x12%\n" +
	"\x0epolicy_version\x18\x02 \x01(\rR\rpolicyVersion\x12'\n" +
	"\x0fpassphrase_salt\x18\x03 \x01(\fR\x0epassphraseSalt\x124\n" +
	"\n" +
	"kdf_params\x18\x04 \x01(\v2\x15.lockbox.v1.KDFParamsR\tkdfParams\x12.\n" +
	"\x04blob\x18\x05 \x01(\v2\x1a.lockbox.v1.WrappedKeyBlobR\x04blob\"\x13\n" +
	"\x11InitVaultResponse\"\x16\n" +
	"\x14GetVaultStateRequest\"\xe6\x01\n" +
	"\x15GetVaultStateResponse\x12\x19\n" +
	"\bvault_id\x18\x01 \x01(\tR\avaultId\x12,\n" +
	"\x05state\x18\x02 \x01(\v2\x16.lockbox.v1.VaultStateR\x05state\x12%\n" +
	"\x0epolicy_version\x18\x03 \x01(\rR\rpolicyVersion\x12'\n" +
	"\x0fpassphrase_salt\x18\x04 \x01(\fR\x0epassphraseSalt\x124\n" +
	"\n" +
	"kdf_params\x18\x05 \x01(\v2\x15.lockbox.v1.KDFParamsR\tkdfParams\"*\n" +
	"\x10LockVaultRequest\x12\x16\n" +
	"\x06reason\x18\x01 \x01(\tR\x06reason\"3\n" +
	"\x11LockVaultResponse\x12\x1e\n" +
	"\n" +
	"generation\x18\x01 \x01(\x03R\n" +
	"generation\"G\n" +
	"\x14ConfirmUnlockRequest\x12/\n" +
	"\x13observed_generation\x18\x01 \x01(\x03R\x12observedGeneration\"7\n" +
	"\x15ConfirmUnlockResponse\x12\x1e\n" +
	"\n" +
	"generation\x18\x01 \x01(\x03R\n" +
	"generation\"\x17\n" +
	"\x15GetWrappedBlobRequest\"H\n" +
	"\x16GetWrappedBlobResponse\x12.\n" +
	"\x04blob\x18\x01 \x01(\v2\x1a.lockbox.v1.WrappedKeyBlobR\x04blob\"\x89\x01\n" +
	"\rRewrapRequest\x12\x12\n" +
	"\x04salt\x18\x01 \x01(\fR\x04salt\x124\n" +
	"\n" +
	"kdf_params\x18\x02 \x01(\v2\x15.lockbox.v1.KDFParamsR\tkdfParams\x12.\n" +
	"\x04blob\x18\x03 \x01(\v2\x1a.lockbox.v1.WrappedKeyBlobR\x04blob\"\x10\n" +
	"\x0eRewrapResponse\"J\n" +
	"\x18PutCredentialBlobRequest\x12.\n" +
	"\x04blob\x18\x01 \x01(\v2\x1a.lockbox.v1.WrappedKeyBlobR\x04blob\"\x1b\n" +
	"\x19PutCredentialBlobResponse\"$\n" +
	"\"BeginCredentialRegistrationRequest\"g\n" +
	"#BeginCredentialRegistrationResponse\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12!\n" +
	"\foptions_json\x18\x02 \x01(\fR\voptionsJson\"i\n" +
	"#FinishCredentialRegistrationRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12#\n" +
	"\rresponse_json\x18\x02 \x01(\fR\fresponseJson\"K\n" +
	"$FinishCredentialRegistrationResponse\x12#\n" +
	"\rcredential_id\x18\x01 \x01(\fR\fcredentialId\"\x1d\n" +
	"\x1bBeginUnlockChallengeRequest\"`\n" +
	"\x1cBeginUnlockChallengeResponse\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12!\n" +
	"\foptions_json\x18\x02 \x01(\fR\voptionsJson\"b\n" +
	"\x1cFinishUnlockChallengeRequest\x12\x1d\n" +
	"\n" +
	"session_id\x18\x01 \x01(\tR\tsessionId\x12#\n" +
	"\rresponse_json\x18\x02 \x01(\fR\fresponseJson\"O\n" +
	"\x1dFinishUnlockChallengeResponse\x12.\n" +
	"\x04blob\x18\x01 \x01(\v2\x1a.lockbox.v1.WrappedKeyBlobR\x04blob\"\\\n" +
	"\rRecoveryIssue\x12\x1b\n" +
	"\tcode_hash\x18\x01 \x01(\fR\bcodeHash\x12.\n" +
	"\x04blob\x18\x02 \x01(\v2\x1a.lockbox.v1.WrappedKeyBlobR\x04blob\"P\n" +
	"\x1bReplaceRecoveryCodesRequest\x121\n" +
	"\x06issues\x18\x01 \x03(\v2\x19.lockbox.v1.RecoveryIssueR\x06issues\"\x1e\n" +
	"\x1cReplaceRecoveryCodesResponse\"\x1a\n" +
	"\x18ListRecoveryCodesRequest\"\xa6\x01\n" +
	"\x10RecoveryCodeInfo\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x129\n" +
	"\n" +
	"created_at\x18\x02 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x123\n" +
	"\aused_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x06usedAt\x12\x12\n" +
	"\x04used\x18\x04 \x01(\bR\x04used\"O\n" +
	"\x19ListRecoveryCodesResponse\x122\n" +
	"\x05codes\x18\x01 \x03(\v2\x1c.lockbox.v1.RecoveryCodeInfoR\x05codes\"8\n" +
	"\x19RedeemRecoveryCodeRequest\x12\x1b\n" +
	"\tcode_hash\x18\x01 \x01(\fR\bcodeHash\"L\n" +
	"\x1aRedeemRecoveryCodeResponse\x12.\n" +
	"\x04blob\x18\x01 \x01(\v2\x1a.lockbox.v1.WrappedKeyBlobR\x04blob\"\xc9\x01\n" +
	"\fUpsertRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bbase_ver\x18\x02 \x01(\x03R\abaseVer\x12\x1f\n" +
	"\vrecord_type\x18\x03 \x01(\tR\n" +
	"recordType\x12%\n" +
	"\x0epolicy_version\x18\x04 \x01(\rR\rpolicyVersion\x12\x14\n" +
	"\x05nonce\x18\x05 \x01(\fR\x05nonce\x12\x1e\n" +
	"\n" +
	"ciphertext\x18\x06 \x01(\fR\n" +
	"ciphertext\x12\x10\n" +
	"\x03aad\x18\a \x01(\fR\x03aad\"J\n" +
	"\x14UpsertRecordsRequest\x122\n" +
	"\arecords\x18\x01 \x03(\v2\x18.lockbox.v1.UpsertRecordR\arecords\"8\n" +
	"\rRecordVersion\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\anew_ver\x18\x02 \x01(\x03R\x06newVer\"L\n" +
	"\x15UpsertRecordsResponse\x123\n" +
	"\aresults\x18\x01 \x03(\v2\x19.lockbox.v1.RecordVersionR\aresults\"\x8f\x02\n" +
	"\x06Record\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vrecord_type\x18\x02 \x01(\tR\n" +
	"recordType\x12%\n" +
	"\x0epolicy_version\x18\x03 \x01(\rR\rpolicyVersion\x12\x14\n" +
	"\x05nonce\x18\x04 \x01(\fR\x05nonce\x12\x1e\n" +
	"\n" +
	"ciphertext\x18\x05 \x01(\fR\n" +
	"ciphertext\x12\x10\n" +
	"\x03aad\x18\x06 \x01(\fR\x03aad\x12\x10\n" +
	"\x03ver\x18\a \x01(\x03R\x03ver\x12\x18\n" +
	"\adeleted\x18\b \x01(\bR\adeleted\x129\n" +
	"\n" +
	"updated_at\x18\t \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\"\"\n" +
	"\x10GetRecordRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"?\n" +
	"\x11GetRecordResponse\x12*\n" +
	"\x06record\x18\x01 \x01(\v2\x12.lockbox.v1.RecordR\x06record\"@\n" +
	"\x13DeleteRecordRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bbase_ver\x18\x02 \x01(\x03R\abaseVer\"I\n" +
	"\x14DeleteRecordResponse\x121\n" +
	"\x06result\x18\x01 \x01(\v2\x19.lockbox.v1.RecordVersionR\x06result\"6\n" +
	"\x17GetRecordChangesRequest\x12\x1b\n" +
	"\tsince_ver\x18\x01 \x01(\x03R\bsinceVer\"\x95\x02\n" +
	"\fRecordChange\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x10\n" +
	"\x03ver\x18\x02 \x01(\x03R\x03ver\x12\x18\n" +
	"\adeleted\x18\x03 \x01(\bR\adeleted\x129\n" +
	"\n" +
	"updated_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\tupdatedAt\x12\x1f\n" +
	"\vrecord_type\x18\x05 \x01(\tR\n" +
	"recordType\x12%\n" +
	"\x0epolicy_version\x18\x06 \x01(\rR\rpolicyVersion\x12\x14\n" +
	"\x05nonce\x18\a \x01(\fR\x05nonce\x12\x1e\n" +
	"\n" +
	"ciphertext\x18\b \x01(\fR\n" +
	"ciphertext\x12\x10\n" +
	"\x03aad\x18\t \x01(\fR\x03aad\"N\n" +
	"\x18GetRecordChangesResponse\x122\n" +
	"\achanges\x18\x01 \x03(\v2\x18.lockbox.v1.RecordChangeR\achanges2\xa4\r\n" +
	"\x05Vault\x12H\n" +
	"\tInitVault\x12\x1c.lockbox.v1.InitVaultRequest\x1a\x1d.lockbox.v1.InitVaultResponse\x12T\n" +
	"\rGetVaultState\x12 .lockbox.v1.GetVaultStateRequest\x1a!.lockbox.v1.GetVaultStateResponse\x12H\n" +
	"\tLockVault\x12\x1c.lockbox.v1.LockVaultRequest\x1a\x1d.lockbox.v1.LockVaultResponse\x12T\n" +
	"\rConfirmUnlock\x12 .lockbox.v1.ConfirmUnlockRequest\x1a!.lockbox.v1.ConfirmUnlockResponse\x12W\n" +
	"\x0eGetWrappedBlob\x12!.lockbox.v1.GetWrappedBlobRequest\x1a\".lockbox.v1.GetWrappedBlobResponse\x12?\n" +
	"\x06Rewrap\x12\x19.lockbox.v1.RewrapRequest\x1a\x1a.lockbox.v1.RewrapResponse\x12`\n" +
	"\x11PutCredentialBlob\x12$.lockbox.v1.PutCredentialBlobRequest\x1a%.lockbox.v1.PutCredentialBlobResponse\x12~\n" +
	"\x1bBeginCredentialRegistration\x12..lockbox.v1.BeginCredentialRegistrationRequest\x1a/.lockbox.v1.BeginCredentialRegistrationResponse\x12\x81\x01\n" +
	"\x1cFinishCredentialRegistration\x12/.lockbox.v1.FinishCredentialRegistrationRequest\x1a0.lockbox.v1.FinishCredentialRegistrationResponse\x12i\n" +
	"\x14BeginUnlockChallenge\x12'.lockbox.v1.BeginUnlockChallengeRequest\x1a(.lockbox.v1.BeginUnlockChallengeResponse\x12l\n" +
	"\x15FinishUnlockChallenge\x12(.lockbox.v1.FinishUnlockChallengeRequest\x1a).lockbox.v1.FinishUnlockChallengeResponse\x12i\n" +
	"\x14ReplaceRecoveryCodes\x12'.lockbox.v1.ReplaceRecoveryCodesRequest\x1a(.lockbox.v1.ReplaceRecoveryCodesResponse\x12`\n" +
	"\x11ListRecoveryCodes\x12$.lockbox.v1.ListRecoveryCodesRequest\x1a%.lockbox.v1.ListRecoveryCodesResponse\x12c\n" +
	"\x12RedeemRecoveryCode\x12%.lockbox.v1.RedeemRecoveryCodeRequest\x1a&.lockbox.v1.RedeemRecoveryCodeResponse\x12T\n" +
	"\rUpsertRecords\x12 .lockbox.v1.UpsertRecordsRequest\x1a!.lockbox.v1.UpsertRecordsResponse\x12H\n" +
	"\tGetRecord\x12\x1c.lockbox.v1.GetRecordRequest\x1a\x1d.lockbox.v1.GetRecordResponse\x12Q\n" +
	"\fDeleteRecord\x12\x1f.lockbox.v1.DeleteRecordRequest\x1a .lockbox.v1.DeleteRecordResponse\x12]\n" +
	"\x10GetRecordChanges\x12#.lockbox.v1.GetRecordChangesRequest\x1a$.lockbox.v1.GetRecordChangesResponseB:Z8github.com/and161185/lockbox/gen/go/lockbox/v1;lockboxv1b\x06proto3"

var file_lockbox_v1_lockbox_proto_msgTypes = make([]protoimpl.MessageInfo, 45)
var file_lockbox_v1_lockbox_proto_goTypes = []any{
	(*KDFParams)(nil),                            // 0: lockbox.v1.KDFParams
	(*WrappedKeyBlob)(nil),                       // 1: lockbox.v1.WrappedKeyBlob
	(*VaultState)(nil),                           // 2: lockbox.v1.VaultState
	(*InitVaultRequest)(nil),                     // 3: lockbox.v1.InitVaultRequest
	(*InitVaultResponse)(nil),                    // 4: lockbox.v1.InitVaultResponse
	(*GetVaultStateRequest)(nil),                 // 5: lockbox.v1.GetVaultStateRequest
	(*GetVaultStateResponse)(nil),                // 6: lockbox.v1.GetVaultStateResponse
	(*LockVaultRequest)(nil),                     // 7: lockbox.v1.LockVaultRequest
	(*LockVaultResponse)(nil),                    // 8: lockbox.v1.LockVaultResponse
	(*ConfirmUnlockRequest)(nil),                 // 9: lockbox.v1.ConfirmUnlockRequest
	(*ConfirmUnlockResponse)(nil),                // 10: lockbox.v1.ConfirmUnlockResponse
	(*GetWrappedBlobRequest)(nil),                // 11: lockbox.v1.GetWrappedBlobRequest
	(*GetWrappedBlobResponse)(nil),               // 12: lockbox.v1.GetWrappedBlobResponse
	(*RewrapRequest)(nil),                        // 13: lockbox.v1.RewrapRequest
	(*RewrapResponse)(nil),                       // 14: lockbox.v1.RewrapResponse
	(*PutCredentialBlobRequest)(nil),             // 15: lockbox.v1.PutCredentialBlobRequest
	(*PutCredentialBlobResponse)(nil),            // 16: lockbox.v1.PutCredentialBlobResponse
	(*BeginCredentialRegistrationRequest)(nil),   // 17: lockbox.v1.BeginCredentialRegistrationRequest
	(*BeginCredentialRegistrationResponse)(nil),  // 18: lockbox.v1.BeginCredentialRegistrationResponse
	(*FinishCredentialRegistrationRequest)(nil),  // 19: lockbox.v1.FinishCredentialRegistrationRequest
	(*FinishCredentialRegistrationResponse)(nil), // 20: lockbox.v1.FinishCredentialRegistrationResponse
	(*BeginUnlockChallengeRequest)(nil),          // 21: lockbox.v1.BeginUnlockChallengeRequest
	(*BeginUnlockChallengeResponse)(nil),         // 22: lockbox.v1.BeginUnlockChallengeResponse
	(*FinishUnlockChallengeRequest)(nil),         // 23: lockbox.v1.FinishUnlockChallengeRequest
	(*FinishUnlockChallengeResponse)(nil),        // 24: lockbox.v1.FinishUnlockChallengeResponse
	(*RecoveryIssue)(nil),                        // 25: lockbox.v1.RecoveryIssue
	(*ReplaceRecoveryCodesRequest)(nil),          // 26: lockbox.v1.ReplaceRecoveryCodesRequest
	(*ReplaceRecoveryCodesResponse)(nil),         // 27: lockbox.v1.ReplaceRecoveryCodesResponse
	(*ListRecoveryCodesRequest)(nil),             // 28: lockbox.v1.ListRecoveryCodesRequest
	(*RecoveryCodeInfo)(nil),                     // 29: lockbox.v1.RecoveryCodeInfo
	(*ListRecoveryCodesResponse)(nil),            // 30: lockbox.v1.ListRecoveryCodesResponse
	(*RedeemRecoveryCodeRequest)(nil),            // 31: lockbox.v1.RedeemRecoveryCodeRequest
	(*RedeemRecoveryCodeResponse)(nil),           // 32: lockbox.v1.RedeemRecoveryCodeResponse
	(*UpsertRecord)(nil),                         // 33: lockbox.v1.UpsertRecord
	(*UpsertRecordsRequest)(nil),                 // 34: lockbox.v1.UpsertRecordsRequest
	(*RecordVersion)(nil),                        // 35: lockbox.v1.RecordVersion
	(*UpsertRecordsResponse)(nil),                // 36: lockbox.v1.UpsertRecordsResponse
	(*Record)(nil),                               // 37: lockbox.v1.Record
	(*GetRecordRequest)(nil),                     // 38: lockbox.v1.GetRecordRequest
	(*GetRecordResponse)(nil),                    // 39: lockbox.v1.GetRecordResponse
	(*DeleteRecordRequest)(nil),                  // 40: lockbox.v1.DeleteRecordRequest
	(*DeleteRecordResponse)(nil),                 // 41: lockbox.v1.DeleteRecordResponse
	(*GetRecordChangesRequest)(nil),              // 42: lockbox.v1.GetRecordChangesRequest
	(*RecordChange)(nil),                         // 43: lockbox.v1.RecordChange
	(*GetRecordChangesResponse)(nil),             // 44: lockbox.v1.GetRecordChangesResponse
	(*timestamppb.Timestamp)(nil),                // 45: google.protobuf.Timestamp
}
var file_lockbox_v1_lockbox_proto_depIdxs = []int32{
	0,  // 0: lockbox.v1.InitVaultRequest.kdf_params:type_name -> lockbox.v1.KDFParams
	1,  // 1: lockbox.v1.InitVaultRequest.blob:type_name -> lockbox.v1.WrappedKeyBlob
	2,  // 2: lockbox.v1.GetVaultStateResponse.state:type_name -> lockbox.v1.VaultState
	0,  // 3: lockbox.v1.GetVaultStateResponse.kdf_params:type_name -> lockbox.v1.KDFParams
	1,  // 4: lockbox.v1.GetWrappedBlobResponse.blob:type_name -> lockbox.v1.WrappedKeyBlob
	0,  // 5: lockbox.v1.RewrapRequest.kdf_params:type_name -> lockbox.v1.KDFParams
	1,  // 6: lockbox.v1.RewrapRequest.blob:type_name -> lockbox.v1.WrappedKeyBlob
	1,  // 7: lockbox.v1.PutCredentialBlobRequest.blob:type_name -> lockbox.v1.WrappedKeyBlob
	1,  // 8: lockbox.v1.FinishUnlockChallengeResponse.blob:type_name -> lockbox.v1.WrappedKeyBlob
	1,  // 9: lockbox.v1.RecoveryIssue.blob:type_name -> lockbox.v1.WrappedKeyBlob
	25, // 10: lockbox.v1.ReplaceRecoveryCodesRequest.issues:type_name -> lockbox.v1.RecoveryIssue
	45, // 11: lockbox.v1.RecoveryCodeInfo.created_at:type_name -> google.protobuf.Timestamp
	45, // 12: lockbox.v1.RecoveryCodeInfo.used_at:type_name -> google.protobuf.Timestamp
	29, // 13: lockbox.v1.ListRecoveryCodesResponse.codes:type_name -> lockbox.v1.RecoveryCodeInfo
	1,  // 14: lockbox.v1.RedeemRecoveryCodeResponse.blob:type_name -> lockbox.v1.WrappedKeyBlob
	33, // 15: lockbox.v1.UpsertRecordsRequest.records:type_name -> lockbox.v1.UpsertRecord
	35, // 16: lockbox.v1.UpsertRecordsResponse.results:type_name -> lockbox.v1.RecordVersion
	45, // 17: lockbox.v1.Record.updated_at:type_name -> google.protobuf.Timestamp
	37, // 18: lockbox.v1.GetRecordResponse.record:type_name -> lockbox.v1.Record
	35, // 19: lockbox.v1.DeleteRecordResponse.result:type_name -> lockbox.v1.RecordVersion
	45, // 20: lockbox.v1.RecordChange.updated_at:type_name -> google.protobuf.Timestamp
	43, // 21: lockbox.v1.GetRecordChangesResponse.changes:type_name -> lockbox.v1.RecordChange
	3,  // 22: lockbox.v1.Vault.InitVault:input_type -> lockbox.v1.InitVaultRequest
	5,  // 23: lockbox.v1.Vault.GetVaultState:input_type -> lockbox.v1.GetVaultStateRequest
	7,  // 24: lockbox.v1.Vault.LockVault:input_type -> lockbox.v1.LockVaultRequest
	9,  // 25: lockbox.v1.Vault.ConfirmUnlock:input_type -> lockbox.v1.ConfirmUnlockRequest
	11, // 26: lockbox.v1.Vault.GetWrappedBlob:input_type -> lockbox.v1.GetWrappedBlobRequest
	13, // 27: lockbox.v1.Vault.Rewrap:input_type -> lockbox.v1.RewrapRequest
	15, // 28: lockbox.v1.Vault.PutCredentialBlob:input_type -> lockbox.v1.PutCredentialBlobRequest
	17, // 29: lockbox.v1.Vault.BeginCredentialRegistration:input_type -> lockbox.v1.BeginCredentialRegistrationRequest
	19, // 30: lockbox.v1.Vault.FinishCredentialRegistration:input_type -> lockbox.v1.FinishCredentialRegistrationRequest
	21, // 31: lockbox.v1.Vault.BeginUnlockChallenge:input_type -> lockbox.v1.BeginUnlockChallengeRequest
	23, // 32: lockbox.v1.Vault.FinishUnlockChallenge:input_type -> lockbox.v1.FinishUnlockChallengeRequest
	26, // 33: lockbox.v1.Vault.ReplaceRecoveryCodes:input_type -> lockbox.v1.ReplaceRecoveryCodesRequest
	28, // 34: lockbox.v1.Vault.ListRecoveryCodes:input_type -> lockbox.v1.ListRecoveryCodesRequest
	31, // 35: lockbox.v1.Vault.RedeemRecoveryCode:input_type -> lockbox.v1.RedeemRecoveryCodeRequest
	34, // 36: lockbox.v1.Vault.UpsertRecords:input_type -> lockbox.v1.UpsertRecordsRequest
	38, // 37: lockbox.v1.Vault.GetRecord:input_type -> lockbox.v1.GetRecordRequest
	40, // 38: lockbox.v1.Vault.DeleteRecord:input_type -> lockbox.v1.DeleteRecordRequest
	42, // 39: lockbox.v1.Vault.GetRecordChanges:input_type -> lockbox.v1.GetRecordChangesRequest
	4,  // 40: lockbox.v1.Vault.InitVault:output_type -> lockbox.v1.InitVaultResponse
	6,  // 41: lockbox.v1.Vault.GetVaultState:output_type -> lockbox.v1.GetVaultStateResponse
	8,  // 42: lockbox.v1.Vault.LockVault:output_type -> lockbox.v1.LockVaultResponse
	10, // 43: lockbox.v1.Vault.ConfirmUnlock:output_type -> lockbox.v1.ConfirmUnlockResponse
	12, // 44: lockbox.v1.Vault.GetWrappedBlob:output_type -> lockbox.v1.GetWrappedBlobResponse
	14, // 45: lockbox.v1.Vault.Rewrap:output_type -> lockbox.v1.RewrapResponse
	16, // 46: lockbox.v1.Vault.PutCredentialBlob:output_type -> lockbox.v1.PutCredentialBlobResponse
	18, // 47: lockbox.v1.Vault.BeginCredentialRegistration:output_type -> lockbox.v1.BeginCredentialRegistrationResponse
	20, // 48: lockbox.v1.Vault.FinishCredentialRegistration:output_type -> lockbox.v1.FinishCredentialRegistrationResponse
	22, // 49: lockbox.v1.Vault.BeginUnlockChallenge:output_type -> lockbox.v1.BeginUnlockChallengeResponse
	24, // 50: lockbox.v1.Vault.FinishUnlockChallenge:output_type -> lockbox.v1.FinishUnlockChallengeResponse
	27, // 51: lockbox.v1.Vault.ReplaceRecoveryCodes:output_type -> lockbox.v1.ReplaceRecoveryCodesResponse
	30, // 52: lockbox.v1.Vault.ListRecoveryCodes:output_type -> lockbox.v1.ListRecoveryCodesResponse
	32, // 53: lockbox.v1.Vault.RedeemRecoveryCode:output_type -> lockbox.v1.RedeemRecoveryCodeResponse
	36, // 54: lockbox.v1.Vault.UpsertRecords:output_type -> lockbox.v1.UpsertRecordsResponse
	39, // 55: lockbox.v1.Vault.GetRecord:output_type -> lockbox.v1.GetRecordResponse
	41, // 56: lockbox.v1.Vault.DeleteRecord:output_type -> lockbox.v1.DeleteRecordResponse
	44, // 57: lockbox.v1.Vault.GetRecordChanges:output_type -> lockbox.v1.GetRecordChangesResponse
	40, // [40:58] is the sub-list for method output_type
	22, // [22:40] is the sub-list for method input_type
	22, // [22:22] is the sub-list for extension type_name
	22, // [22:22] is the sub-list for extension extendee
	0,  // [0:22] is the sub-list for field type_name
}

func init() { file_lockbox_v1_lockbox_proto_init() }
func file_lockbox_v1_lockbox_proto_init() {
	if File_lockbox_v1_lockbox_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_lockbox_v1_lockbox_proto_rawDesc), len(file_lockbox_v1_lockbox_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   45,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_lockbox_v1_lockbox_proto_goTypes,
		DependencyIndexes: file_lockbox_v1_lockbox_proto_depIdxs,
		MessageInfos:      file_lockbox_v1_lockbox_proto_msgTypes,
	}.Build()
	File_lockbox_v1_lockbox_proto = out.File
	file_lockbox_v1_lockbox_proto_goTypes = nil
	file_lockbox_v1_lockbox_proto_depIdxs = nil
}
