// Package seed resets the database schema and loads a fixture dataset. It is
// used by the seed command and the integration tests; the server never seeds.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/platform/postgres"
	"github.com/phrazzld/news-api/internal/store"
)

const dropTables = `DROP TABLE IF EXISTS comments, articles, users, topics, ` + postgres.MigrationsTable

type table struct {
	name    string
	columns []string
	rows    [][]any
}

// Seed drops every table, re-applies the migrations and inserts data.
// Inserts run in one transaction, parents before children.
func Seed(ctx context.Context, db *sql.DB, data Data) error {
	log := logger.FromContext(ctx).With(slog.String("component", "seed"))

	if _, err := db.ExecContext(ctx, dropTables); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}

	if err := postgres.Migrate(ctx, db, "up", log); err != nil {
		return err
	}

	tables := []table{
		{"topics", []string{"slug", "description"}, topicRows(data.Topics)},
		{"users", []string{"username", "avatar_url", "name"}, userRows(data.Users)},
		{"articles", []string{"title", "body", "votes", "topic", "author", "created_at"}, articleRows(data.Articles)},
		{"comments", []string{"author", "article_id", "votes", "created_at", "body"}, commentRows(data.Comments)},
	}

	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		for _, t := range tables {
			query, args, err := insertStatement(t.name, t.columns, t.rows)
			if err != nil {
				return err
			}
			if query == "" {
				continue
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("failed to insert %s: %w", t.name, postgres.MapError(err))
			}
			log.Debug("inserted fixtures", slog.String("table", t.name), slog.Int("rows", len(t.rows)))
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("database seeded",
		slog.Int("topics", len(data.Topics)),
		slog.Int("users", len(data.Users)),
		slog.Int("articles", len(data.Articles)),
		slog.Int("comments", len(data.Comments)))
	return nil
}
