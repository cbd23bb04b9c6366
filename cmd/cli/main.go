// Command lockbox is a CLI client for the Lockbox vault service.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	pb "github.com/and161185/lockbox/gen/go/lockbox/v1"
	"github.com/and161185/lockbox/internal/crypto/recordcipher"
	"github.com/and161185/lockbox/internal/model"
	"github.com/and161185/lockbox/internal/policy"
	"github.com/and161185/lockbox/internal/vaultclient"
	u "github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ---- config/token store ----

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	UserID      string    `json:"user_id"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "lockbox")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "lockbox")
}

func tokenPath() string { return filepath.Join(cfgDir(), "token.json") }

func saveToken(tf tokenFile) error {
	_ = os.MkdirAll(cfgDir(), 0o700)
	f, err := os.Create(tokenPath())
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tf)
}

func loadToken() (tokenFile, error) {
	var tf tokenFile
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return tf, err
	}
	if err := json.Unmarshal(b, &tf); err != nil {
		return tf, err
	}
	if tf.AccessToken == "" || time.Now().After(tf.ExpiresAt) {
		return tf, errors.New("no valid token (set-token required)")
	}
	return tf, nil
}

// ---- grpc dial ----

type bearerCreds struct{ token string }

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return true }

func loadTLS(caPath string, insecure bool) (credentials.TransportCredentials, error) {
	if insecure {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

func dial(ctx context.Context, addr, caPath string, insecure bool, bearer string) (*grpc.ClientConn, pb.VaultClient, error) {
	creds, err := loadTLS(caPath, insecure)
	if err != nil {
		return nil, nil, err
	}
	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if bearer != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: bearer}))
	}
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, nil, err
	}
	return cc, pb.NewVaultClient(cc), nil
}

// client bundles one authenticated connection with the session built over it.
type client struct {
	cc     *grpc.ClientConn
	cli    pb.VaultClient
	sess   *vaultclient.Session
	userID u.UUID
}

func (c *client) Close() { _ = c.cc.Close() }

// openSession dials and builds a locked session bound to the stored identity.
func openSession(ctx context.Context, addr, caPath string, insecure bool) (*client, error) {
	tf, err := loadToken()
	if err != nil {
		return nil, err
	}
	userID, err := u.FromString(tf.UserID)
	if err != nil {
		return nil, fmt.Errorf("stored user id: %w", err)
	}
	cc, cli, err := dial(ctx, addr, caPath, insecure, tf.AccessToken)
	if err != nil {
		return nil, err
	}
	sess := vaultclient.NewSession(&grpcAPI{cli: cli}, policy.NewRegistry(), userID, 0)
	return &client{cc: cc, cli: cli, sess: sess, userID: userID}, nil
}

// ---- utils ----

func readAll(p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(p)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func usage() {
	fmt.Fprintf(os.Stderr, `lockbox CLI
Usage:
  lockbox -addr HOST:PORT [-cacert file | -insecure] <cmd> [args]

Commands:
  version
  set-token       -t <jwt>                          (saves token, user id from sub)
  init            -p <passphrase>
  state
  lock            [-reason idle|backgrounded|logout|force|rotation|admin]
  unlock          -p <passphrase>                   (confirms unlock, then exits)
  rewrap          -p <passphrase> -newp <new>
  recovery-issue  -p <passphrase> [-n 8]            (prints codes ONCE)
  recovery-list
  recovery-redeem -code <code> -newp <new passphrase>
  put             -p <passphrase> -id <uuid> -base <ver> [-type t] -file <blob>
  get             -p <passphrase> -id <uuid>
  rm              -id <uuid> -base <ver>
  list                                              (changes since 0, metadata only)
  sync            -since <ver>
`)
	os.Exit(2)
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

// main dispatches subcommands and configures TLS/auth for RPC calls.
func main() {
	// global flags
	addr := flag.String("addr", "localhost:8443", "server addr")
	caPath := flag.String("cacert", "", "CA cert (PEM)")
	insecure := flag.Bool("insecure", false, "skip cert verify (dev)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cmd {

	case "version":
		fmt.Printf("lockbox %s (%s)\n", version, buildDate)

	case "set-token":
		fs := flag.NewFlagSet("set-token", flag.ExitOnError)
		tok := fs.String("t", "", "bearer JWT from the identity layer")
		_ = fs.Parse(flag.Args()[1:])
		if *tok == "" {
			fmt.Fprintln(os.Stderr, "need -t")
			os.Exit(1)
		}
		var claims jwt.RegisteredClaims
		_, _ = jwt.ParseWithClaims(*tok, &claims, func(*jwt.Token) (any, error) { return nil, nil },
			jwt.WithoutClaimsValidation(),
		)
		if claims.Subject == "" {
			fail(errors.New("token has no sub claim"))
		}
		exp := time.Now().Add(15 * time.Minute)
		if claims.ExpiresAt != nil {
			exp = claims.ExpiresAt.Time
		}
		if err := saveToken(tokenFile{AccessToken: *tok, UserID: claims.Subject, ExpiresAt: exp}); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "init":
		fs := flag.NewFlagSet("init", flag.ExitOnError)
		pass := fs.String("p", "", "passphrase")
		_ = fs.Parse(flag.Args()[1:])
		if *pass == "" {
			fmt.Fprintln(os.Stderr, "need -p")
			os.Exit(1)
		}

		c, err := openSession(ctx, *addr, *caPath, *insecure)
		if err != nil {
			fail(err)
		}
		defer c.Close()

		if err := c.sess.Init(ctx, []byte(*pass)); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "state":
		c, err := openSession(ctx, *addr, *caPath, *insecure)
		if err != nil {
			fail(err)
		}
		defer c.Close()

		out, err := c.cli.GetVaultState(ctx, &pb.GetVaultStateRequest{})
		if err != nil {
			fail(err)
		}
		printJSON(map[string]any{
			"vault_id":   out.GetVaultId(),
			"locked":     out.GetState().GetLocked(),
			"reason":     out.GetState().GetLockReason(),
			"generation": out.GetState().GetGeneration(),
		})

	case "lock":
		fs := flag.NewFlagSet("lock", flag.ExitOnError)
		reason := fs.String("reason", "force", "lock reason")
		_ = fs.Parse(flag.Args()[1:])

		c, err := openSession(ctx, *addr, *caPath, *insecure)
		if err != nil {
			fail(err)
		}
		defer c.Close()

		if err := c.sess.Lock(ctx, model.LockReason(*reason)); err != nil {
			fail(err)
		}
		fmt.Printf("locked generation=%d\n", c.sess.Generation())

	case "unlock":
		fs := flag.NewFlagSet("unlock", flag.ExitOnError)
		pass := fs.String("p", "", "passphrase")
		_ = fs.Parse(flag.Args()[1:])
		if *pass == "" {
			fmt.Fprintln(os.Stderr, "need -p")
			os.Exit(1)
		}

		c, err := openSession(ctx, *addr, *caPath, *insecure)
		if err != nil {
			fail(err)
		}
		defer c.Close()

		if err := c.sess.UnlockWithPassphrase(ctx, []byte(*pass)); err != nil {
			fail(err)
		}
		fmt.Printf("unlocked generation=%d\n", c.sess.Generation())

	case "rewrap":
		fs := flag.NewFlagSet("rewrap", flag.ExitOnError)
		pass := fs.String("p", "", "current passphrase")
		newPass := fs.String("newp", "", "new passphrase")
		_ = fs.Parse(flag.Args()[1:])
		if *pass == "" || *newPass == "" {
			fmt.Fprintln(os.Stderr, "need -p and -newp")
			os.Exit(1)
		}

		c, err := openSession(ctx, *addr, *caPath, *insecure)
		if err != nil {
			fail(err)
		}
		defer c.Close()

		if err := c.sess.UnlockWithPassphrase(ctx, []byte(*pass)); err != nil {
			fail(err)
		}
		if err := c.sess.RewrapPassphrase(ctx, []byte(*newPass)); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "recovery-issue":
		fs := flag.NewFlagSet("recovery-issue", flag.ExitOnError)
		pass := fs.String("p", "", "passphrase")
		n := fs.Int("n", vaultclient.DefaultCodeCount, "number of codes")
		_ = fs.Parse(flag.Args()[1:])
		if *pass == "" {
			fmt.Fprintln(os.Stderr, "need -p")
			os.Exit(1)
		}

		c, err := openSession(ctx, *addr, *caPath, *insecure)
		if err != nil {
			fail(err)
		}
		defer c.Close()

		if err := c.sess.UnlockWithPassphrase(ctx, []byte(*pass)); err != nil {
			fail(err)
		}
		codes, err := c.sess.IssueRecoveryCodes(ctx, *n)
		if err != nil {
			fail(err)
		}
		fmt.Println("store these codes now; they are not shown again:")
		for _, c := range codes {
			fmt.Println("  " + c)
		}

	case "recovery-list":
		tf, err := loadToken()
		if err != nil {
			fail(err)
		}
		cc, cli, err := dial(ctx, *addr, *caPath, *insecure, tf.AccessToken)
		if err != nil {
			fail(err)
		}
		defer cc.Close()

		out, err := cli.ListRecoveryCodes(ctx, &pb.ListRecoveryCodesRequest{})
		if err != nil {
			fail(err)
		}
		type row struct{ ID, Created, Used string }
		rows := []row{}
		for _, c := range out.GetCodes() {
			used := ""
			if c.GetUsed() {
				used = tsString(c.GetUsedAt())
			}
			rows = append(rows, row{ID: c.GetId(), Created: tsString(c.GetCreatedAt()), Used: used})
		}
		printJSON(rows)

	case "recovery-redeem":
		fs := flag.NewFlagSet("recovery-redeem", flag.ExitOnError)
		code := fs.String("code", "", "recovery code")
		newPass := fs.String("newp", "", "new passphrase")
		_ = fs.Parse(flag.Args()[1:])
		if *code == "" || *newPass == "" {
			fmt.Fprintln(os.Stderr, "need -code and -newp")
			os.Exit(1)
		}

		c, err := openSession(ctx, *addr, *caPath, *insecure)
		if err != nil {
			fail(err)
		}
		defer c.Close()

		if err := c.sess.RedeemRecoveryCode(ctx, *code, []byte(*newPass)); err != nil {
			fail(err)
		}
		fmt.Println("ok; the used code and all unused codes need reissuing (recovery-issue)")

	case "put":
		fs := flag.NewFlagSet("put", flag.ExitOnError)
		pass := fs.String("p", "", "passphrase")
		id := fs.String("id", "", "record id (uuid, optional)")
		base := fs.Int64("base", 0, "base version (0 = create)")
		typ := fs.String("type", "note", "record type")
		dataFile := fs.String("file", "", "data file ('-'=stdin)")
		_ = fs.Parse(flag.Args()[1:])
		if *pass == "" || *dataFile == "" {
			fmt.Fprintln(os.Stderr, "need -p and -file")
			os.Exit(1)
		}
		if *id == "" {
			rid, _ := u.NewV4()
			*id = rid.String()
		}
		recordID, err := u.FromString(*id)
		if err != nil {
			fail(err)
		}

		c, err := openSession(ctx, *addr, *caPath, *insecure)
		if err != nil {
			fail(err)
		}
		defer c.Close()

		if err := c.sess.UnlockWithPassphrase(ctx, []byte(*pass)); err != nil {
			fail(err)
		}
		key, err := c.sess.Key()
		if err != nil {
			fail(err)
		}
		plain, err := readAll(*dataFile)
		if err != nil {
			fail(err)
		}
		sealed, err := recordcipher.Encrypt(policy.NewRegistry(), key, c.userID, recordID, *typ, plain)
		if err != nil {
			fail(err)
		}

		up := &pb.UpsertRecord{}
		up.SetId(*id)
		up.SetBaseVer(*base)
		up.SetRecordType(*typ)
		up.SetPolicyVersion(sealed.PolicyVersion)
		up.SetNonce(sealed.Nonce)
		up.SetCiphertext(sealed.Ciphertext)
		up.SetAad(sealed.AAD)
		req := &pb.UpsertRecordsRequest{}
		req.SetRecords([]*pb.UpsertRecord{up})

		out, err := c.cli.UpsertRecords(ctx, req)
		if err != nil {
			fail(err)
		}
		for _, r := range out.GetResults() {
			fmt.Printf("id=%s ver=%d\n", r.GetId(), r.GetNewVer())
		}

	case "get":
		fs := flag.NewFlagSet("get", flag.ExitOnError)
		pass := fs.String("p", "", "passphrase")
		id := fs.String("id", "", "record id (uuid)")
		_ = fs.Parse(flag.Args()[1:])
		if *pass == "" || *id == "" {
			fmt.Fprintln(os.Stderr, "need -p and -id")
			os.Exit(1)
		}
		recordID, err := u.FromString(*id)
		if err != nil {
			fail(err)
		}

		c, err := openSession(ctx, *addr, *caPath, *insecure)
		if err != nil {
			fail(err)
		}
		defer c.Close()

		if err := c.sess.UnlockWithPassphrase(ctx, []byte(*pass)); err != nil {
			fail(err)
		}
		key, err := c.sess.Key()
		if err != nil {
			fail(err)
		}

		greq := &pb.GetRecordRequest{}
		greq.SetId(*id)
		out, err := c.cli.GetRecord(ctx, greq)
		if err != nil {
			fail(err)
		}
		rec := out.GetRecord()
		if rec.GetDeleted() {
			fmt.Fprintln(os.Stderr, "record is deleted")
			os.Exit(1)
		}

		plain, err := recordcipher.Decrypt(policy.NewRegistry(), key, c.userID, recordID, rec.GetRecordType(), recordcipher.Sealed{
			PolicyVersion: rec.GetPolicyVersion(),
			Nonce:         rec.GetNonce(),
			Ciphertext:    rec.GetCiphertext(),
			AAD:           rec.GetAad(),
		})
		if err != nil {
			fail(err)
		}
		fmt.Printf("id=%s ver=%d type=%s at=%s\n", rec.GetId(), rec.GetVer(), rec.GetRecordType(), tsString(rec.GetUpdatedAt()))
		_, _ = os.Stdout.Write(plain)
		fmt.Println()

	case "rm":
		fs := flag.NewFlagSet("rm", flag.ExitOnError)
		id := fs.String("id", "", "record id (uuid)")
		base := fs.Int64("base", -1, "base version")
		_ = fs.Parse(flag.Args()[1:])
		if *id == "" || *base < 0 {
			fmt.Fprintln(os.Stderr, "need -id and -base")
			os.Exit(1)
		}

		tf, err := loadToken()
		if err != nil {
			fail(err)
		}
		cc, cli, err := dial(ctx, *addr, *caPath, *insecure, tf.AccessToken)
		if err != nil {
			fail(err)
		}
		defer cc.Close()

		dreq := &pb.DeleteRecordRequest{}
		dreq.SetId(*id)
		dreq.SetBaseVer(*base)
		out, err := cli.DeleteRecord(ctx, dreq)
		if err != nil {
			fail(err)
		}
		fmt.Printf("id=%s ver=%d\n", out.GetResult().GetId(), out.GetResult().GetNewVer())

	case "list", "sync":
		since := int64(0)
		if cmd == "sync" {
			fs := flag.NewFlagSet("sync", flag.ExitOnError)
			s := fs.Int64("since", 0, "since version")
			_ = fs.Parse(flag.Args()[1:])
			since = *s
		}

		tf, err := loadToken()
		if err != nil {
			fail(err)
		}
		cc, cli, err := dial(ctx, *addr, *caPath, *insecure, tf.AccessToken)
		if err != nil {
			fail(err)
		}
		defer cc.Close()

		creq := &pb.GetRecordChangesRequest{}
		creq.SetSinceVer(since)
		out, err := cli.GetRecordChanges(ctx, creq)
		if err != nil {
			fail(err)
		}
		type row struct{ ID, Type, Ver, Deleted, UpdatedAt string }
		rows := []row{}
		for _, c := range out.GetChanges() {
			rows = append(rows, row{
				ID:        c.GetId(),
				Type:      c.GetRecordType(),
				Ver:       fmt.Sprint(c.GetVer()),
				Deleted:   fmt.Sprint(c.GetDeleted()),
				UpdatedAt: tsString(c.GetUpdatedAt()),
			})
		}
		printJSON(rows)

	default:
		usage()
	}
}

// ---- helpers ----

func tsString(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return ""
	}
	return ts.AsTime().UTC().Format(time.RFC3339)
}

func fail(err error) {
	if s, ok := status.FromError(err); ok && s.Code() != 0 {
		fmt.Fprintf(os.Stderr, "rpc error: code=%s msg=%s\n", s.Code(), s.Message())
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
