// Package service provides the application-level operations over tasks:
// read-through cached queries, mutations that invalidate the cache and emit
// status-change events, and the analytics counters served over gRPC.
package service
