//go:build integration

// Package testdb provides a seeded PostgreSQL database for integration tests.
//
// A database URL in NEWS_TEST_DATABASE_URL or DATABASE_URL is used when set;
// otherwise a disposable postgres container is started with testcontainers.
// Every Reseed call drops, migrates and reloads the fixture dataset, so tests
// that mutate data reseed before they run.
package testdb
