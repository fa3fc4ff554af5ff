// Package testdb provides utilities for tests that need a real PostgreSQL
// database. Tests are skipped when DATABASE_URL is not set.
package testdb
