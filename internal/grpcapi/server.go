package grpcapi

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"github.com/phrazzld/task-api/internal/grpcapi/todopb"
	"github.com/phrazzld/task-api/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// Names of the analytics service as registered on the server.
const (
	ProtoFile      = "todo_analytics.proto"
	ServiceName    = "todo.TodoAnalytics"
	GetStatsMethod = todopb.TodoAnalytics_GetStats_FullMethodName
)

// analyticsServer adapts service.AnalyticsService to todopb.TodoAnalyticsServer.
type analyticsServer struct {
	todopb.UnimplementedTodoAnalyticsServer
	analytics service.AnalyticsService
}

var _ todopb.TodoAnalyticsServer = (*analyticsServer)(nil)

// GetStats implements todopb.TodoAnalyticsServer.
func (s *analyticsServer) GetStats(ctx context.Context, _ *todopb.StatsRequest) (*todopb.StatsResponse, error) {
	stats, err := s.analytics.GetStats(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return toStatsResponse(stats), nil
}

// toStatus maps service errors to gRPC status errors without leaking detail.
func toStatus(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		return status.Error(codes.Internal, "failed to compute task statistics")
	}
}

// Server hosts todo.TodoAnalytics together with the standard health and
// reflection services.
type Server struct {
	grpc   *grpc.Server
	health *health.Server
	logger *slog.Logger
}

// NewServer builds a gRPC server for analytics. Extra options are appended
// after the logging and recovery interceptors.
func NewServer(analytics service.AnalyticsService, logger *slog.Logger, opts ...grpc.ServerOption) (*Server, error) {
	if analytics == nil {
		return nil, service.NewTaskServiceError("create_grpc_server", "analytics cannot be nil", service.ErrNilDependency)
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "grpc_server"))

	serverOpts := append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			UnaryTraceInterceptor(logger),
			UnaryRecoveryInterceptor(),
			UnaryLoggingInterceptor(),
		),
	}, opts...)

	gs := grpc.NewServer(serverOpts...)
	todopb.RegisterTodoAnalyticsServer(gs, &analyticsServer{analytics: analytics})

	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(gs, hs)

	reflection.Register(gs)

	return &Server{grpc: gs, health: hs, logger: logger}, nil
}

// Serve accepts connections on lis until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("gRPC server listening", slog.String("addr", lis.Addr().String()))
	if err := s.grpc.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// Stop marks the server as not serving and drains in-flight calls. If ctx
// expires first, remaining calls are cut off.
func (s *Server) Stop(ctx context.Context) error {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		<-done
		return ctx.Err()
	}
}
