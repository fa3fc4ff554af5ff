package grpcapi_test

import (
	"context"
	"errors"
	"math"
	"net"
	"testing"

	"github.com/phrazzld/task-api/internal/domain"
	"github.com/phrazzld/task-api/internal/grpcapi"
	"github.com/phrazzld/task-api/internal/grpcapi/todopb"
	"github.com/phrazzld/task-api/internal/mocks"
	"github.com/phrazzld/task-api/internal/platform/logger"
	"github.com/phrazzld/task-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
)

// startServer serves analytics over an in-memory listener and returns a
// connected client.
func startServer(t *testing.T, analytics service.AnalyticsService) *grpc.ClientConn {
	t.Helper()
	conn, _ := startServerWithLog(t, analytics)
	return conn
}

func startServerWithLog(t *testing.T, analytics service.AnalyticsService) (*grpc.ClientConn, *logger.Buffer) {
	t.Helper()

	log, buf := logger.NewCapture()
	srv, err := grpcapi.NewServer(analytics, log)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() { _ = srv.Stop(context.Background()) })

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn, buf
}

func TestNewServer_NilAnalytics(t *testing.T) {
	srv, err := grpcapi.NewServer(nil, nil)
	assert.Nil(t, srv)
	assert.ErrorIs(t, err, service.ErrNilDependency)
}

func TestGetStats(t *testing.T) {
	store := mocks.NewInMemoryTaskStore()
	for i, s := range []domain.TaskStatus{domain.TaskStatusActive, domain.TaskStatusActive, domain.TaskStatusCompleted} {
		store.Put(domain.Task{ID: int64(i + 1), Title: "t", Status: s})
	}
	analytics, err := service.NewAnalyticsService(store, nil)
	require.NoError(t, err)

	conn := startServer(t, analytics)
	client := grpcapi.NewClient(conn)

	stats, err := client.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, service.Stats{ActiveCount: 2, CompletedCount: 1}, stats)

	store.Put(domain.Task{ID: 4, Title: "t", Status: domain.TaskStatusCompleted})
	stats, err = client.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.CompletedCount, "stats are read live")
}

func TestGetStats_WireFormat(t *testing.T) {
	conn := startServer(t, &mocks.MockAnalyticsService{Stats: service.Stats{ActiveCount: 5, CompletedCount: 300}})

	out := &todopb.StatsResponse{}
	require.NoError(t, conn.Invoke(context.Background(), "/todo.TodoAnalytics/GetStats", &todopb.StatsRequest{}, out))

	raw, err := proto.Marshal(out)
	require.NoError(t, err)
	// field 1 varint 5, field 2 varint 300
	assert.Equal(t, []byte{0x08, 0x05, 0x10, 0xac, 0x02}, raw)
}

func TestGetStats_ClampsToInt32(t *testing.T) {
	conn := startServer(t, &mocks.MockAnalyticsService{Stats: service.Stats{ActiveCount: math.MaxInt32 + 10}})

	stats, err := grpcapi.NewClient(conn).GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, stats.ActiveCount)
}

func TestGetStats_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"store failure", errors.New("connection to 10.0.0.1:5432 refused"), codes.Internal},
		{"deadline", context.DeadlineExceeded, codes.DeadlineExceeded},
		{"canceled", context.Canceled, codes.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := startServer(t, &mocks.MockAnalyticsService{
				Err: service.NewTaskServiceError("get_stats", "failed", tt.err),
			})

			_, err := grpcapi.NewClient(conn).GetStats(context.Background())
			require.Error(t, err)

			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, st.Code())
			assert.NotContains(t, st.Message(), "10.0.0.1")
		})
	}
}

func TestGetStats_PanicBecomesInternal(t *testing.T) {
	conn := startServer(t, &mocks.MockAnalyticsService{
		GetStatsFn: func(context.Context) (service.Stats, error) { panic("boom") },
	})

	_, err := grpcapi.NewClient(conn).GetStats(context.Background())
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestGetStats_LogsWithClientTraceID(t *testing.T) {
	conn, buf := startServerWithLog(t, &mocks.MockAnalyticsService{})

	ctx := metadata.AppendToOutgoingContext(context.Background(), grpcapi.TraceMetadataKey, "trace-42")
	_, err := grpcapi.NewClient(conn).GetStats(ctx)
	require.NoError(t, err)

	entries, err := buf.Entries()
	require.NoError(t, err)

	var found bool
	for _, e := range entries {
		if e["msg"] == "gRPC call completed" {
			found = true
			assert.Equal(t, "trace-42", e[logger.TraceIDKey])
			assert.Equal(t, grpcapi.GetStatsMethod, e["method"])
			assert.Equal(t, "OK", e["code"])
		}
	}
	assert.True(t, found)
}

func TestHealthService(t *testing.T) {
	conn := startServer(t, &mocks.MockAnalyticsService{})

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(),
		&healthpb.HealthCheckRequest{Service: grpcapi.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestReflectionListsAnalyticsService(t *testing.T) {
	conn := startServer(t, &mocks.MockAnalyticsService{})

	stream, err := reflectionpb.NewServerReflectionClient(conn).ServerReflectionInfo(context.Background())
	require.NoError(t, err)

	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)

	var names []string
	for _, svc := range resp.GetListServicesResponse().GetService() {
		names = append(names, svc.GetName())
	}
	assert.Contains(t, names, grpcapi.ServiceName)

	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: "todo.StatsResponse",
		},
	}))
	resp, err = stream.Recv()
	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetFileDescriptorResponse().GetFileDescriptorProto())
	require.NoError(t, stream.CloseSend())
}
