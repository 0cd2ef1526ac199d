// Package server hosts the daemon's gRPC endpoint. The import pipeline is
// driven by the filesystem watcher; the endpoint exposes liveness (health
// service) and reflection for grpcurl-style inspection.
package server

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type Server struct {
	grpc   *grpc.Server
	health *health.Server
	logger *slog.Logger
	addr   string
}

func New(addr string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	gs := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	reflection.Register(gs)
	return &Server{grpc: gs, health: hs, logger: logger, addr: addr}
}

// Serve listens on the configured address and blocks until Stop.
func (s *Server) Serve() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.logger.Error("listen failed", "addr", s.addr, "error", err)
		return err
	}
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.logger.Info("grpc server listening", "addr", s.addr)
	return s.grpc.Serve(lis)
}

// WatchDB keeps the health status in sync with database reachability.
func (s *Server) WatchDB(ctx context.Context, pool *pgxpool.Pool, interval time.Duration) {
	if pool == nil || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := pool.Ping(ctx); err != nil {
				s.logger.Warn("db unreachable, marking not serving", "error", err)
				s.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
			} else {
				s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
			}
		}
	}
}

// Stop drains in-flight RPCs and shuts the listener down.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
	s.logger.Info("grpc server stopped")
}
