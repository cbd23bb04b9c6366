package convert

import (
	"bytes"
	"strings"
	"testing"
	"time"

	pb "github.com/and161185/lockbox/gen/go/lockbox/v1"
	"github.com/and161185/lockbox/internal/model"
	u "github.com/gofrs/uuid/v5"
)

func mustUUID(t *testing.T, s string) u.UUID {
	t.Helper()
	id, err := u.FromString(s)
	if err != nil {
		t.Fatalf("bad uuid %q: %v", s, err)
	}
	return id
}

func TestToFromProtoBlob_Roundtrip(t *testing.T) {
	t.Parallel()

	if ToProtoBlob(nil) != nil {
		t.Fatalf("nil domain blob must give nil pb")
	}
	if _, err := FromProtoBlob(nil); err == nil {
		t.Fatalf("nil pb blob must error")
	}

	b := &model.WrappedKeyBlob{
		ID:            mustUUID(t, "6f1cbe8e-b2e7-4a3b-9f6e-2a2c0f2f9c11"),
		VaultID:       mustUUID(t, "11111111-1111-1111-1111-111111111111"),
		WrapType:      model.WrapTypeCredential,
		WrapVersion:   1,
		PolicyVersion: 2,
		CredentialID:  []byte{0xAA},
		Salt:          []byte("salt"),
		Nonce:         []byte{1, 2, 3},
		Ciphertext:    []byte{9, 9},
		AAD:           []byte("aad"),
	}
	got, err := FromProtoBlob(ToProtoBlob(b))
	if err != nil {
		t.Fatalf("roundtrip: %v", err)
	}
	if got.ID != b.ID || got.VaultID != b.VaultID || got.WrapType != b.WrapType {
		t.Fatalf("identity mismatch: %+v", got)
	}
	if got.PolicyVersion != 2 || got.WrapVersion != 1 {
		t.Fatalf("version mismatch: %+v", got)
	}
	if !bytes.Equal(got.Nonce, b.Nonce) || !bytes.Equal(got.Ciphertext, b.Ciphertext) ||
		!bytes.Equal(got.AAD, b.AAD) || !bytes.Equal(got.CredentialID, b.CredentialID) {
		t.Fatalf("opaque fields mismatch: %+v", got)
	}
}

func TestFromProtoBlob_InvalidUUID(t *testing.T) {
	t.Parallel()

	in := &pb.WrappedKeyBlob{}
	in.SetId("not-a-uuid")
	in.SetVaultId("22222222-2222-2222-2222-222222222222")
	if _, err := FromProtoBlob(in); err == nil || !strings.Contains(err.Error(), "invalid blob id") {
		t.Fatalf("want invalid blob id error, got: %v", err)
	}

	in = &pb.WrappedKeyBlob{}
	in.SetId("22222222-2222-2222-2222-222222222222")
	in.SetVaultId("nope")
	if _, err := FromProtoBlob(in); err == nil || !strings.Contains(err.Error(), "invalid vault id") {
		t.Fatalf("want invalid vault id error, got: %v", err)
	}
}

func TestKDFParams_Roundtrip(t *testing.T) {
	t.Parallel()

	if got := FromProtoKDFParams(nil); got != (model.KDFParams{}) {
		t.Fatalf("nil pb must give zero params, got %+v", got)
	}

	p := model.KDFParams{Algorithm: "argon2id", MemoryKiB: 64 * 1024, Threads: 1, SaltLen: 16}
	if got := FromProtoKDFParams(ToProtoKDFParams(p)); got != p {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
}

func TestFromProtoUpsertRecord_OK(t *testing.T) {
	t.Parallel()

	in := &pb.UpsertRecord{}
	in.SetId("6f1cbe8e-b2e7-4a3b-9f6e-2a2c0f2f9c11")
	in.SetBaseVer(10)
	in.SetRecordType("login")
	in.SetPolicyVersion(1)
	in.SetNonce([]byte{1})
	in.SetCiphertext([]byte{9, 9})
	in.SetAad([]byte{7})

	got, err := FromProtoUpsertRecord(in)
	if err != nil {
		t.Fatalf("FromProtoUpsertRecord: %v", err)
	}
	if got.ID.String() != in.GetId() || got.BaseVer != 10 || got.RecordType != "login" {
		t.Fatalf("field mismatch: %+v", got)
	}
	if string(got.Ciphertext) != "\x09\x09" {
		t.Fatalf("ciphertext mismatch")
	}
}

func TestFromProtoUpsertRecords_BatchAndEarlyError(t *testing.T) {
	t.Parallel()

	out, err := FromProtoUpsertRecords(nil)
	if err != nil || len(out) != 0 {
		t.Fatalf("nil slice should yield empty, err=%v", err)
	}

	ok := &pb.UpsertRecord{}
	ok.SetId("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	bad := &pb.UpsertRecord{}
	bad.SetId("bad-uuid")
	_, err = FromProtoUpsertRecords([]*pb.UpsertRecord{ok, bad})
	if err == nil || !strings.Contains(err.Error(), "record[1]") {
		t.Fatalf("expected early error at record[1], got: %v", err)
	}
}

func TestToProtoRecordVersions(t *testing.T) {
	t.Parallel()

	id := mustUUID(t, "22222222-2222-2222-2222-222222222222")
	ps := ToProtoRecordVersions([]model.RecordVersion{{ID: id, NewVer: 1}})
	if len(ps) != 1 || ps[0].GetId() != id.String() || ps[0].GetNewVer() != 1 {
		t.Fatalf("slice mapping mismatch")
	}
	if len(ToProtoRecordVersions(nil)) != 0 {
		t.Fatalf("nil slice must map to empty slice")
	}
}

func TestToProtoRecordChange_DeletedOmitsSealedFields(t *testing.T) {
	t.Parallel()

	id := mustUUID(t, "33333333-3333-3333-3333-333333333333")

	pd := ToProtoRecordChange(model.RecordChange{
		ID:         id,
		Ver:        5,
		Deleted:    true,
		Nonce:      []byte{1},
		Ciphertext: []byte{1, 2, 3},
		AAD:        []byte{1},
	})
	if !pd.GetDeleted() || len(pd.GetCiphertext()) != 0 || len(pd.GetNonce()) != 0 || len(pd.GetAad()) != 0 {
		t.Fatalf("deleted change must omit sealed fields")
	}
	if pd.GetUpdatedAt() != nil {
		t.Fatalf("zero time must map to nil timestamp")
	}

	ts := time.Now().UTC().Truncate(time.Second)
	pa := ToProtoRecordChange(model.RecordChange{
		ID:         id,
		Ver:        6,
		RecordType: "note",
		Nonce:      []byte{1},
		Ciphertext: []byte{9, 9},
		AAD:        []byte{1},
		UpdatedAt:  ts,
	})
	if pa.GetDeleted() || string(pa.GetCiphertext()) != "\x09\x09" || pa.GetRecordType() != "note" {
		t.Fatalf("active change mismatch: %+v", pa)
	}
	if pa.GetUpdatedAt() == nil || !pa.GetUpdatedAt().AsTime().UTC().Equal(ts) {
		t.Fatalf("timestamp mismatch")
	}
}

func TestToProtoRecord(t *testing.T) {
	t.Parallel()

	if ToProtoRecord(nil) != nil {
		t.Fatalf("nil record must give nil pb")
	}

	id := mustUUID(t, "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	ts := time.Now().UTC().Truncate(time.Second)
	r := ToProtoRecord(&model.EncryptedRecord{
		ID:            id,
		RecordType:    "login",
		PolicyVersion: 1,
		Nonce:         []byte{1},
		Ciphertext:    []byte{7, 7, 7},
		AAD:           []byte{2},
		Ver:           9,
		UpdatedAt:     ts,
	})
	if r.GetId() != id.String() || r.GetVer() != 9 || r.GetDeleted() {
		t.Fatalf("basic fields mismatch")
	}
	if string(r.GetCiphertext()) != "\x07\x07\x07" {
		t.Fatalf("ciphertext mismatch")
	}
	if r.GetUpdatedAt() == nil || !r.GetUpdatedAt().AsTime().UTC().Equal(ts) {
		t.Fatalf("timestamp mismatch")
	}
}

func TestFromProtoRecoveryIssues(t *testing.T) {
	t.Parallel()

	blob := &pb.WrappedKeyBlob{}
	blob.SetId("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	blob.SetVaultId("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb")
	blob.SetWrapType("recovery")
	iss := &pb.RecoveryIssue{}
	iss.SetCodeHash(bytes.Repeat([]byte{1}, 32))
	iss.SetBlob(blob)

	out, err := FromProtoRecoveryIssues([]*pb.RecoveryIssue{iss})
	if err != nil {
		t.Fatalf("FromProtoRecoveryIssues: %v", err)
	}
	if len(out) != 1 || out[0].Blob.WrapType != model.WrapTypeRecovery || len(out[0].CodeHash) != 32 {
		t.Fatalf("issue mapping mismatch: %+v", out)
	}

	if _, err := FromProtoRecoveryIssues([]*pb.RecoveryIssue{nil}); err == nil {
		t.Fatalf("nil issue must error")
	}
}

func TestToProtoRecoveryCodeInfo(t *testing.T) {
	t.Parallel()

	id := mustUUID(t, "cccccccc-cccc-cccc-cccc-cccccccccccc")
	used := time.Now().UTC().Truncate(time.Second)

	fresh := ToProtoRecoveryCodeInfo(model.RecoveryCode{ID: id})
	if fresh.GetUsed() || fresh.GetUsedAt() != nil {
		t.Fatalf("fresh code must not be marked used")
	}

	spent := ToProtoRecoveryCodeInfo(model.RecoveryCode{ID: id, UsedAt: &used})
	if !spent.GetUsed() || spent.GetUsedAt() == nil || !spent.GetUsedAt().AsTime().UTC().Equal(used) {
		t.Fatalf("spent code mapping mismatch: %+v", spent)
	}
}
