// Package store defines the task persistence contract and the error values
// shared by its implementations. The PostgreSQL implementation lives in
// internal/platform/postgres; tests use the in-memory one in internal/mocks.
package store
