package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/news-api/internal/api"
	"github.com/phrazzld/news-api/internal/config"
	"github.com/phrazzld/news-api/internal/platform/postgres"
)

// application holds the shared dependencies of the server and owns their
// cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	stores api.Stores
}

// newApplication wires the postgres stores over db.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	return &application{
		config: cfg,
		logger: logger,
		db:     db,
		stores: api.Stores{
			Topics:   postgres.NewPostgresTopicStore(db, logger),
			Articles: postgres.NewPostgresArticleStore(db, logger),
			Comments: postgres.NewPostgresCommentStore(db, logger),
			Users:    postgres.NewPostgresUserStore(db, logger),
		},
	}
}

// Run serves HTTP until ctx is cancelled, then shuts down and cleans up.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()

	router := newRouter(app.logger, app.stores)
	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		closeDatabase(app.db, app.logger)
	}
	app.logger.Info("application shutdown completed")
}
