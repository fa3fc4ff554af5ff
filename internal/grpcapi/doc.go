// Package grpcapi exposes the task analytics over gRPC as the
// todo.TodoAnalytics service, next to the standard health and reflection
// services. Messages and stubs are generated into todopb.
package grpcapi
