// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in internal/store, the embedded goose schema migrations,
// and the mapping of PostgreSQL error codes onto the store's error tags.
package postgres
