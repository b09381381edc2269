package postgres

import (
	"context"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsFS(t *testing.T) {
	files, err := fs.Glob(MigrationsFS(), MigrationsDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	content, err := fs.ReadFile(MigrationsFS(), files[0])
	require.NoError(t, err)
	for _, table := range []string{"topics", "users", "articles", "comments"} {
		assert.Contains(t, string(content), "CREATE TABLE "+table)
	}
	assert.Contains(t, string(content), "-- +goose Down")
}

func TestMigrate_UnknownCommand(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	err = Migrate(context.Background(), db, "sideways", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSlogGooseLogger(t *testing.T) {
	l, buf := logger.NewTestLogger(t)
	gl := &slogGooseLogger{logger: l}

	gl.Printf("applied %d migrations", 1)
	gl.Fatalf("failed: %s", "boom")

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "applied 1 migrations", entries[0]["msg"])
	assert.Equal(t, slog.LevelInfo.String(), entries[0]["level"])
	assert.Equal(t, "failed: boom", entries[1]["msg"])
	assert.Equal(t, slog.LevelError.String(), entries[1]["level"])
}
