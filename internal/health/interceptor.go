package health

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"workbook_service/pkg/ctxdata"
	"workbook_service/pkg/logging"
)

func NewMetadataUnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get("x-trace-id"); len(values) > 0 {
				ctx = ctxdata.WithTraceID(ctx, values[0])
			}
			if values := md.Get("x-user-id"); len(values) > 0 {
				if id, err := uuid.Parse(values[0]); err == nil {
					ctx = ctxdata.WithUserID(ctx, id)
				}
			}
		}

		return handler(ctx, req)
	}
}

func NewUnaryLoggingInterceptor(logger *logging.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		start := time.Now()

		clientIP := "unknown"
		if p, ok := peer.FromContext(ctx); ok {
			clientIP = p.Addr.String()
		}

		ctx = logging.ContextWithLogger(ctx, logger)
		resp, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("client_ip", clientIP),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
			logger.Error(ctx, "grpc request failed", fields...)
		} else {
			logger.Debug(ctx, "grpc request handled", fields...)
		}

		return resp, err
	}
}

// recoveryHandler turns a handler panic into codes.Internal.
func recoveryHandler(logger *logging.Logger) func(ctx context.Context, p any) error {
	return func(ctx context.Context, p any) error {
		logger.Error(ctx, "grpc handler panicked", zap.Any("panic", p))
		return status.Errorf(codes.Internal, "internal error")
	}
}
