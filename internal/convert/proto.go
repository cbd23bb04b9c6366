// Package convert maps between protobuf messages and domain entities.
// Opaque fields (nonce, ciphertext, aad) round-trip byte-exact.
package convert

import (
	"fmt"
	"time"

	pb "github.com/and161185/lockbox/gen/go/lockbox/v1"
	"github.com/and161185/lockbox/internal/model"
	u "github.com/gofrs/uuid/v5"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func parseID(s, field string) (u.UUID, error) {
	var id u.UUID
	if err := id.UnmarshalText([]byte(s)); err != nil {
		return u.Nil, fmt.Errorf("invalid %s: %w", field, err)
	}
	return id, nil
}

// --- KDFParams ---

// ToProtoKDFParams converts domain KDF parameters to protobuf.
func ToProtoKDFParams(p model.KDFParams) *pb.KDFParams {
	kp := &pb.KDFParams{}
	kp.SetAlgorithm(p.Algorithm)
	kp.SetIterations(p.Iterations)
	kp.SetMemoryKib(p.MemoryKiB)
	kp.SetThreads(uint32(p.Threads))
	kp.SetSaltLen(int32(p.SaltLen))
	return kp
}

// FromProtoKDFParams converts protobuf KDF parameters to domain.
func FromProtoKDFParams(in *pb.KDFParams) model.KDFParams {
	if in == nil {
		return model.KDFParams{}
	}
	return model.KDFParams{
		Algorithm:  in.GetAlgorithm(),
		Iterations: in.GetIterations(),
		MemoryKiB:  in.GetMemoryKib(),
		Threads:    uint8(in.GetThreads()),
		SaltLen:    int(in.GetSaltLen()),
	}
}

// --- WrappedKeyBlob ---

// ToProtoBlob converts a domain blob to protobuf.
func ToProtoBlob(b *model.WrappedKeyBlob) *pb.WrappedKeyBlob {
	if b == nil {
		return nil
	}
	out := &pb.WrappedKeyBlob{}
	out.SetId(b.ID.String())
	out.SetVaultId(b.VaultID.String())
	out.SetWrapType(string(b.WrapType))
	out.SetWrapVersion(b.WrapVersion)
	out.SetPolicyVersion(b.PolicyVersion)
	out.SetCredentialId(b.CredentialID)
	out.SetSalt(b.Salt)
	out.SetNonce(b.Nonce)
	out.SetCiphertext(b.Ciphertext)
	out.SetAad(b.AAD)
	return out
}

// FromProtoBlob converts a protobuf blob to domain.
func FromProtoBlob(in *pb.WrappedKeyBlob) (*model.WrappedKeyBlob, error) {
	if in == nil {
		return nil, fmt.Errorf("nil blob")
	}
	id, err := parseID(in.GetId(), "blob id")
	if err != nil {
		return nil, err
	}
	vaultID, err := parseID(in.GetVaultId(), "vault id")
	if err != nil {
		return nil, err
	}
	return &model.WrappedKeyBlob{
		ID:            id,
		VaultID:       vaultID,
		WrapType:      model.WrapType(in.GetWrapType()),
		WrapVersion:   in.GetWrapVersion(),
		PolicyVersion: in.GetPolicyVersion(),
		CredentialID:  in.GetCredentialId(),
		Salt:          in.GetSalt(),
		Nonce:         in.GetNonce(),
		Ciphertext:    in.GetCiphertext(),
		AAD:           in.GetAad(),
	}, nil
}

// --- Records ---

// FromProtoUpsertRecord converts protobuf UpsertRecord to domain struct.
func FromProtoUpsertRecord(in *pb.UpsertRecord) (model.UpsertRecord, error) {
	if in == nil {
		return model.UpsertRecord{}, fmt.Errorf("nil UpsertRecord")
	}
	id, err := parseID(in.GetId(), "id")
	if err != nil {
		return model.UpsertRecord{}, err
	}
	return model.UpsertRecord{
		ID:            id,
		BaseVer:       in.GetBaseVer(),
		RecordType:    in.GetRecordType(),
		PolicyVersion: in.GetPolicyVersion(),
		Nonce:         in.GetNonce(),
		Ciphertext:    in.GetCiphertext(),
		AAD:           in.GetAad(),
	}, nil
}

// FromProtoUpsertRecords converts a slice of protobuf UpsertRecord to domain structs.
func FromProtoUpsertRecords(in []*pb.UpsertRecord) ([]model.UpsertRecord, error) {
	out := make([]model.UpsertRecord, 0, len(in))
	for i, r := range in {
		m, err := FromProtoUpsertRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record[%d]: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// ToProtoRecordVersion converts domain RecordVersion to protobuf result.
func ToProtoRecordVersion(v model.RecordVersion) *pb.RecordVersion {
	rv := &pb.RecordVersion{}
	rv.SetId(v.ID.String())
	rv.SetNewVer(v.NewVer)
	return rv
}

// ToProtoRecordVersions converts a slice of RecordVersion to protobuf results.
func ToProtoRecordVersions(vs []model.RecordVersion) []*pb.RecordVersion {
	out := make([]*pb.RecordVersion, 0, len(vs))
	for _, v := range vs {
		out = append(out, ToProtoRecordVersion(v))
	}
	return out
}

// ToProtoRecordChange converts a domain change to protobuf.
func ToProtoRecordChange(c model.RecordChange) *pb.RecordChange {
	ch := &pb.RecordChange{}
	ch.SetId(c.ID.String())
	ch.SetVer(c.Ver)
	ch.SetDeleted(c.Deleted)
	ch.SetUpdatedAt(ts(c.UpdatedAt))
	if !c.Deleted {
		ch.SetRecordType(c.RecordType)
		ch.SetPolicyVersion(c.PolicyVersion)
		ch.SetNonce(c.Nonce)
		ch.SetCiphertext(c.Ciphertext)
		ch.SetAad(c.AAD)
	}
	return ch
}

// ToProtoRecordChanges converts domain changes to protobuf changes for sync.
func ToProtoRecordChanges(cs []model.RecordChange) []*pb.RecordChange {
	out := make([]*pb.RecordChange, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToProtoRecordChange(c))
	}
	return out
}

// ToProtoRecord converts a domain EncryptedRecord to protobuf.
func ToProtoRecord(rec *model.EncryptedRecord) *pb.Record {
	if rec == nil {
		return nil
	}
	out := &pb.Record{}
	out.SetId(rec.ID.String())
	out.SetRecordType(rec.RecordType)
	out.SetPolicyVersion(rec.PolicyVersion)
	out.SetNonce(rec.Nonce)
	out.SetCiphertext(rec.Ciphertext)
	out.SetAad(rec.AAD)
	out.SetVer(rec.Ver)
	out.SetDeleted(rec.Deleted)
	out.SetUpdatedAt(ts(rec.UpdatedAt))
	return out
}

// --- Recovery ---

// FromProtoRecoveryIssues converts protobuf recovery issues to domain structs.
func FromProtoRecoveryIssues(in []*pb.RecoveryIssue) ([]model.RecoveryIssue, error) {
	out := make([]model.RecoveryIssue, 0, len(in))
	for i, iss := range in {
		if iss == nil {
			return nil, fmt.Errorf("issue[%d]: nil", i)
		}
		blob, err := FromProtoBlob(iss.GetBlob())
		if err != nil {
			return nil, fmt.Errorf("issue[%d]: %w", i, err)
		}
		out = append(out, model.RecoveryIssue{CodeHash: iss.GetCodeHash(), Blob: *blob})
	}
	return out, nil
}

// ToProtoRecoveryCodeInfo converts code metadata to protobuf. Code material
// never appears here, only issue/consume timestamps.
func ToProtoRecoveryCodeInfo(c model.RecoveryCode) *pb.RecoveryCodeInfo {
	info := &pb.RecoveryCodeInfo{}
	info.SetId(c.ID.String())
	info.SetCreatedAt(ts(c.CreatedAt))
	if c.UsedAt != nil {
		info.SetUsedAt(ts(*c.UsedAt))
		info.SetUsed(true)
	}
	return info
}

// ToProtoRecoveryCodeInfos converts a slice of code metadata to protobuf.
func ToProtoRecoveryCodeInfos(cs []model.RecoveryCode) []*pb.RecoveryCodeInfo {
	out := make([]*pb.RecoveryCodeInfo, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToProtoRecoveryCodeInfo(c))
	}
	return out
}
