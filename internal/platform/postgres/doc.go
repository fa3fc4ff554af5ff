// Package postgres provides the PostgreSQL implementation of the task
// repository defined in the internal/store package, along with connection
// setup and the embedded goose migrations that create its schema.
package postgres
