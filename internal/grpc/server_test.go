package grpc

import (
	"bytes"
	"context"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	authsdk "github.com/SergSukh/api-yamdb-33-all/packages/auth-sdk"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const secret = "grpc-secret"

// logBuffer collects slog JSON lines written from server goroutines.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func captureLogs(t *testing.T) *logBuffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logs := &logBuffer{}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logs, nil)))
	return logs
}

func signToken(t *testing.T) string {
	t.Helper()
	claims := &authsdk.Claims{
		UserID:   3,
		Username: "carol",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func startServer(t *testing.T) (*Server, healthpb.HealthClient) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := newServer(lis, secret)
	go func() { _ = srv.Start() }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return srv, healthpb.NewHealthClient(conn)
}

func TestServer_Health(t *testing.T) {
	srv, client := startServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	assert.Equal(t, codes.NotFound, status.Code(err))

	srv.SetServing(false)
	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())

	srv.SetServing(true)
	for _, service := range []string{"", ServiceName} {
		resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus(), service)
	}
}

func TestServer_LogsCaller(t *testing.T) {
	logs := captureLogs(t)
	srv, client := startServer(t)
	srv.SetServing(true)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+signToken(t))

	_, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)

	out := logs.String()
	assert.Contains(t, out, `"method":"/grpc.health.v1.Health/Check"`)
	assert.Contains(t, out, `"user_id":3`)
	assert.Contains(t, out, `"username":"carol"`)
	assert.Contains(t, out, `"code":"OK"`)
}

func TestUnaryCallLogger(t *testing.T) {
	token := signToken(t)

	tests := []struct {
		name    string
		md      metadata.MD
		err     error
		wantID  string
		wantErr string
	}{
		{"bearer", metadata.Pairs("authorization", "Bearer "+token), nil, `"user_id":3`, `"code":"OK"`},
		{"access token header", metadata.Pairs("x-access-token", token), nil, `"user_id":3`, `"code":"OK"`},
		{"invalid token", metadata.Pairs("authorization", "Bearer junk"), nil, `"user_id":0`, `"code":"OK"`},
		{"handler error", metadata.MD{}, status.Error(codes.NotFound, "gone"), `"user_id":0`, `"code":"NotFound"`},
	}

	info := &grpc.UnaryServerInfo{FullMethod: "/yamdb.Test/Call"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			ctx := metadata.NewIncomingContext(context.Background(), tt.md)

			resp, err := UnaryCallLogger(secret)(ctx, "req", info, func(context.Context, any) (any, error) {
				return "resp", tt.err
			})
			assert.Equal(t, "resp", resp)
			assert.Equal(t, tt.err, err)

			out := logs.String()
			assert.Contains(t, out, `"method":"/yamdb.Test/Call"`)
			assert.Contains(t, out, tt.wantID)
			assert.Contains(t, out, tt.wantErr)
		})
	}
}
