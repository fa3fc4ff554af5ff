// Package todopb holds the protobuf messages and gRPC stubs generated from
// todo_analytics.proto.
package todopb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative todo_analytics.proto
