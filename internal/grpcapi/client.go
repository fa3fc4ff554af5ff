package grpcapi

import (
	"context"

	"github.com/phrazzld/task-api/internal/grpcapi/todopb"
	"github.com/phrazzld/task-api/internal/service"
	"google.golang.org/grpc"
)

// Client calls todo.TodoAnalytics.
type Client struct {
	rpc todopb.TodoAnalyticsClient
}

// NewClient wraps an established connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{rpc: todopb.NewTodoAnalyticsClient(cc)}
}

// GetStats returns the current task counts.
func (c *Client) GetStats(ctx context.Context, opts ...grpc.CallOption) (service.Stats, error) {
	resp, err := c.rpc.GetStats(ctx, &todopb.StatsRequest{}, opts...)
	if err != nil {
		return service.Stats{}, err
	}
	return fromStatsResponse(resp), nil
}
