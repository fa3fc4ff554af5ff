// Package api handles incoming HTTP requests, request validation and
// response formatting for the task REST surface. It acts as an adapter
// between external clients and the task service, translating HTTP concerns
// to service calls and service outcomes back to status codes.
package api
