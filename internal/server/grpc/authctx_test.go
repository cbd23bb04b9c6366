package grpcserver

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
)

func TestWithUserID_And_UserIDFromCtx(t *testing.T) {
	t.Parallel()

	if id, ok := UserIDFromCtx(context.Background()); ok || id != uuid.Nil {
		t.Fatalf("expected no user id in empty ctx")
	}

	want := uuid.Must(uuid.NewV4())
	ctx := WithUserID(context.Background(), want)

	got, ok := UserIDFromCtx(ctx)
	if !ok || got != want {
		t.Fatalf("mismatch: got %s ok=%v, want %s", got, ok, want)
	}

	type ctxKey string
	const userIDKey ctxKey = "lockbox.userID"
	bad := context.WithValue(context.Background(), userIDKey, "not-uuid")
	if id, ok := UserIDFromCtx(bad); ok || id != uuid.Nil {
		t.Fatalf("expected miss on wrong typed value")
	}
}

func TestUserIDFromCtx_HandlerPrefersAnnotatedIdentity(t *testing.T) {
	t.Parallel()

	// identity resolved by AuthUnary wins without any metadata present
	s := &Server{signKey: []byte("k")}
	want := uuid.Must(uuid.NewV4())
	id, err := s.userIDFromCtx(WithUserID(context.Background(), want))
	if err != nil || id != want {
		t.Fatalf("annotated identity not used: id=%s err=%v", id, err)
	}
}
