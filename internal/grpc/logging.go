package grpc

import (
	"context"
	"log/slog"
	"time"

	authsdk "github.com/SergSukh/api-yamdb-33-all/packages/auth-sdk"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryCallLogger logs every unary call with the caller named by its bearer
// token. Missing or invalid tokens are logged as user_id 0.
func UnaryCallLogger(secret string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logCall(ctx, secret, info.FullMethod, start, err)
		return resp, err
	}
}

// StreamCallLogger is UnaryCallLogger for streams (health Watch, reflection).
func StreamCallLogger(secret string) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		logCall(ss.Context(), secret, info.FullMethod, start, err)
		return err
	}
}

func logCall(ctx context.Context, secret, method string, start time.Time, err error) {
	caller := authsdk.GetUserFromContext(ctx, secret)
	slog.InfoContext(ctx, "grpc call",
		"method", method,
		"user_id", caller.UserID,
		"username", caller.Username,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
}
