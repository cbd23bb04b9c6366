package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc/credentials"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func withTmpConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "lockbox")
}

func Test_cfgDir_And_Paths(t *testing.T) {
	_ = withTmpConfig(t)
	got := cfgDir()
	base := os.Getenv("XDG_CONFIG_HOME") + "/lockbox"
	if got != base {
		t.Fatalf("cfgDir=%q, want %q", got, base)
	}
	if !strings.HasPrefix(tokenPath(), base) || !strings.HasSuffix(tokenPath(), "token.json") {
		t.Fatalf("tokenPath unexpected: %s", tokenPath())
	}
}

func Test_token_SaveLoad(t *testing.T) {
	_ = withTmpConfig(t)

	if _, err := loadToken(); err == nil {
		t.Fatalf("expected error when token file missing")
	}
	valid := tokenFile{AccessToken: "tok", UserID: "u-1", ExpiresAt: time.Now().Add(time.Minute)}
	if err := saveToken(valid); err != nil {
		t.Fatalf("saveToken: %v", err)
	}
	tf, err := loadToken()
	if err != nil || tf.AccessToken != "tok" || tf.UserID != "u-1" {
		t.Fatalf("loadToken: %+v err=%v", tf, err)
	}

	expired := tokenFile{AccessToken: "tok2", UserID: "u-1", ExpiresAt: time.Now().Add(-time.Minute)}
	if err := saveToken(expired); err != nil {
		t.Fatalf("saveToken expired: %v", err)
	}
	if _, err := loadToken(); err == nil {
		t.Fatalf("want error for expired token")
	}

	empty := tokenFile{AccessToken: "", UserID: "u-1", ExpiresAt: time.Now().Add(time.Minute)}
	if err := saveToken(empty); err != nil {
		t.Fatalf("saveToken empty: %v", err)
	}
	if _, err := loadToken(); err == nil {
		t.Fatalf("want error for empty token")
	}
}

func Test_token_FileIsPrivate(t *testing.T) {
	_ = withTmpConfig(t)
	if err := saveToken(tokenFile{AccessToken: "t", UserID: "u", ExpiresAt: time.Now().Add(time.Minute)}); err != nil {
		t.Fatalf("saveToken: %v", err)
	}
	info, err := os.Stat(cfgDir())
	if err != nil {
		t.Fatalf("config dir missing: %v", err)
	}
	if info.Mode().Perm() != 0o700 {
		t.Fatalf("config dir mode %v, want 0700", info.Mode().Perm())
	}
}

func Test_readAll_File_And_Stdin(t *testing.T) {
	t.Parallel()

	// file path
	tmp := filepath.Join(t.TempDir(), "f.txt")
	_ = os.WriteFile(tmp, []byte("hello"), 0o600)
	b, err := readAll(tmp)
	if err != nil || string(b) != "hello" {
		t.Fatalf("readAll(file): %q %v", b, err)
	}

	// stdin
	r, w, _ := os.Pipe()
	old := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = old }()
	go func() { _, _ = io.WriteString(w, "from-stdin"); _ = w.Close() }()
	b, err = readAll("-")
	if err != nil || string(b) != "from-stdin" {
		t.Fatalf("readAll(stdin): %q %v", b, err)
	}
}

func Test_printJSON_WritesPretty(t *testing.T) {
	t.Parallel()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() { os.Stdout = old }()

	printJSON(map[string]any{"a": 1})
	_ = w.Close()
	out, _ := io.ReadAll(r)

	var m map[string]any
	if json.Unmarshal(out, &m) != nil || m["a"] != float64(1) {
		t.Fatalf("printJSON produced invalid json: %s", string(out))
	}
	if !bytes.Contains(out, []byte("\n")) {
		t.Fatalf("printJSON should indent")
	}
}

func Test_tsString(t *testing.T) {
	t.Parallel()

	if tsString(nil) != "" {
		t.Fatalf("nil timestamp should be empty string")
	}
	now := time.Now().UTC().Truncate(time.Second)
	ts := timestamppb.New(now)
	s := tsString(ts)
	if !strings.Contains(s, now.Format("2006-01-02")) {
		t.Fatalf("tsString output unexpected: %s", s)
	}
}

func Test_bearerCreds_Metadata(t *testing.T) {
	t.Parallel()

	b := bearerCreds{token: "T"}
	md, err := b.GetRequestMetadata(context.Background())
	if err != nil {
		t.Fatalf("GetRequestMetadata: %v", err)
	}
	if md["authorization"] != "Bearer T" {
		t.Fatalf("auth header mismatch: %v", md)
	}
	if !b.RequireTransportSecurity() {
		t.Fatalf("bearerCreds must require TLS")
	}
}

func Test_loadTLS_Variants(t *testing.T) {
	t.Parallel()

	// insecure
	creds, err := loadTLS("", true)
	if err != nil || creds == nil {
		t.Fatalf("insecure: %v %v", creds, err)
	}

	// system default (no caPath)
	creds, err = loadTLS("", false)
	if err != nil || creds == nil {
		t.Fatalf("default tls: %v %v", creds, err)
	}

	// bad CA file
	tmp := filepath.Join(t.TempDir(), "bad.pem")
	_ = os.WriteFile(tmp, []byte("not pem"), 0o600)
	creds, err = loadTLS(tmp, false)
	if err == nil || creds != nil {
		t.Fatalf("bad CA should error, got creds=%v err=%v", creds, err)
	}

	// sanity check type
	_ = credentials.TransportCredentials(nil) // compile-time reference
}
