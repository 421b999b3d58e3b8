// Package health serves the standard gRPC health protocol for the service.
// Status follows a set of dependency probes re-evaluated on an interval.
package health

import (
	"context"
	"sort"
	"time"

	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"workbook_service/pkg/logging"
)

// ServiceName is the name reported alongside the overall "" status.
const ServiceName = "workbook.v1.WorkbookService"

// Probe reports whether a dependency is reachable.
type Probe func(ctx context.Context) error

type Checker struct {
	health  *grpchealth.Server
	probes  map[string]Probe
	timeout time.Duration
	logger  *logging.Logger
}

func NewChecker(logger *logging.Logger, timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	c := &Checker{
		health:  grpchealth.NewServer(),
		probes:  make(map[string]Probe),
		timeout: timeout,
		logger:  logger,
	}
	c.set(healthpb.HealthCheckResponse_NOT_SERVING)
	return c
}

// AddProbe registers a named probe. Not safe to call once Run has started.
func (c *Checker) AddProbe(name string, probe Probe) {
	c.probes[name] = probe
}

// Check runs every probe once and publishes the combined status. It returns
// the names of the failing probes in sorted order.
func (c *Checker) Check(ctx context.Context) []string {
	var failed []string
	for name, probe := range c.probes {
		probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
		err := probe(probeCtx)
		cancel()
		if err != nil {
			c.logger.Warn(ctx, "health probe failed", zap.String("probe", name), zap.Error(err))
			failed = append(failed, name)
		}
	}
	sort.Strings(failed)

	if len(failed) == 0 {
		c.set(healthpb.HealthCheckResponse_SERVING)
	} else {
		c.set(healthpb.HealthCheckResponse_NOT_SERVING)
	}
	return failed
}

// Run re-checks probes every interval until ctx is done, then marks the
// service as shutting down.
func (c *Checker) Run(ctx context.Context, interval time.Duration) {
	c.Check(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.health.Shutdown()
			return
		case <-ticker.C:
			c.Check(ctx)
		}
	}
}

func (c *Checker) set(s healthpb.HealthCheckResponse_ServingStatus) {
	c.health.SetServingStatus("", s)
	c.health.SetServingStatus(ServiceName, s)
}

// NewServer builds a gRPC server exposing the checker's health service.
func NewServer(logger *logging.Logger, checker *Checker) *grpc.Server {
	interceptor := grpc_middleware.ChainUnaryServer(
		grpc_recovery.UnaryServerInterceptor(
			grpc_recovery.WithRecoveryHandlerContext(recoveryHandler(logger)),
		),
		NewMetadataUnaryInterceptor(),
		NewUnaryLoggingInterceptor(logger),
	)

	srv := grpc.NewServer(grpc.UnaryInterceptor(interceptor))
	healthpb.RegisterHealthServer(srv, checker.health)
	return srv
}
