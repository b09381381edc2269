//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/news-api/internal/seed"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// TestTimeout bounds container start-up and seeding.
const TestTimeout = 2 * time.Minute

// PostgresImage is the container image used when no database URL is configured.
const PostgresImage = "postgres:16-alpine"

// Database is an open test database and whatever must be torn down with it.
type Database struct {
	DB        *sql.DB
	URL       string
	container *tcpostgres.PostgresContainer
}

// Start connects to the configured test database, starting a container when
// none is configured. Call Close when done.
func Start(ctx context.Context) (*Database, error) {
	d := &Database{URL: DatabaseURL()}

	if d.URL == "" {
		ctr, err := tcpostgres.Run(ctx, PostgresImage,
			tcpostgres.WithDatabase("nc_news_test"),
			tcpostgres.WithUsername("news"),
			tcpostgres.WithPassword("news"),
			tcpostgres.BasicWaitStrategies(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to start postgres container: %w", err)
		}
		d.container = ctr

		url, err := ctr.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			_ = d.Close()
			return nil, fmt.Errorf("failed to get container connection string: %w", err)
		}
		d.URL = url
	}

	db, err := sql.Open("pgx", d.URL)
	if err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("failed to open test database: %w", err)
	}
	d.DB = db

	if err := db.PingContext(ctx); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("failed to ping test database: %w", err)
	}

	return d, nil
}

// Close closes the pool and terminates the container, if one was started.
func (d *Database) Close() error {
	var errs []error
	if d.DB != nil {
		errs = append(errs, d.DB.Close())
	}
	if d.container != nil {
		errs = append(errs, testcontainers.TerminateContainer(d.container))
	}
	return errors.Join(errs...)
}

// Reseed drops, migrates and reloads the fixture dataset.
func (d *Database) Reseed(ctx context.Context) error {
	data, err := seed.TestData()
	if err != nil {
		return err
	}
	return seed.Seed(ctx, d.DB, data)
}

// Open starts a database for a single test and closes it on cleanup.
func Open(t *testing.T) *Database {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	d, err := Start(ctx)
	require.NoError(t, err, "failed to start test database")
	t.Cleanup(func() {
		if err := d.Close(); err != nil {
			t.Logf("warning: failed to close test database: %v", err)
		}
	})

	return d
}

// MustReseed reseeds the database, failing the test on error.
func (d *Database) MustReseed(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	require.NoError(t, d.Reseed(ctx), "failed to reseed test database")
}
