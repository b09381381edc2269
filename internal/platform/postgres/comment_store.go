package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

const commentColumns = `comment_id, author, article_id, votes, created_at, body`

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the CommentStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

// ListByArticle implements store.CommentStore.ListByArticle
func (s *PostgresCommentStore) ListByArticle(
	ctx context.Context,
	articleID int,
) ([]domain.ArticleComment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("listing comments for article", slog.Int("article_id", articleID))

	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`,
		articleID,
	).Scan(&exists)
	if err != nil {
		log.Error("failed to check article", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	if !exists {
		log.Debug("article not found", slog.Int("article_id", articleID))
		return nil, store.ErrArticleNotFound
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT comment_id, votes, created_at, author, body FROM comments WHERE article_id = $1`,
		articleID,
	)
	if err != nil {
		log.Error("failed to list comments", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	comments := []domain.ArticleComment{}
	for rows.Next() {
		var c domain.ArticleComment
		if err := rows.Scan(&c.CommentID, &c.Votes, &c.CreatedAt, &c.Author, &c.Body); err != nil {
			log.Error("failed to scan comment row", slog.String("error", err.Error()))
			return nil, err
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating comment rows", slog.String("error", err.Error()))
		return nil, err
	}

	return comments, nil
}

// Create implements store.CommentStore.Create
// Returns store.ErrReferenceMissing if the author or the article does not exist.
func (s *PostgresCommentStore) Create(
	ctx context.Context,
	comment domain.NewComment,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create", slog.String("error", err.Error()))
		return nil, err
	}

	query := `INSERT INTO comments (author, article_id, body)
VALUES ($1, $2, $3)
RETURNING ` + commentColumns

	var c domain.Comment
	err := s.db.QueryRowContext(ctx, query, comment.Author, comment.ArticleID, comment.Body).
		Scan(&c.CommentID, &c.Author, &c.ArticleID, &c.Votes, &c.CreatedAt, &c.Body)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrReferenceMissing) {
			log.Warn("foreign key violation during comment creation",
				slog.String("error", err.Error()),
				slog.Int("article_id", comment.ArticleID),
				slog.String("author", comment.Author))
			return nil, fmt.Errorf("%w: article %d or user %q",
				store.ErrReferenceMissing, comment.ArticleID, comment.Author)
		}

		log.Error("failed to create comment",
			slog.String("error", err.Error()),
			slog.Int("article_id", comment.ArticleID))
		return nil, store.NewStoreError("comment", "create", "insert failed", mapped)
	}

	log.Info("comment created",
		slog.Int("comment_id", c.CommentID),
		slog.Int("article_id", c.ArticleID))
	return &c, nil
}

// GetByID implements store.CommentStore.GetByID
func (s *PostgresCommentStore) GetByID(ctx context.Context, id int) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving comment by ID", slog.Int("comment_id", id))

	var c domain.Comment
	err := s.db.QueryRowContext(ctx, `SELECT `+commentColumns+` FROM comments WHERE comment_id = $1`, id).
		Scan(&c.CommentID, &c.Author, &c.ArticleID, &c.Votes, &c.CreatedAt, &c.Body)
	if err != nil {
		return nil, s.mapCommentError(log, "get", id, err)
	}

	return &c, nil
}

// IncrementVotes implements store.CommentStore.IncrementVotes
func (s *PostgresCommentStore) IncrementVotes(
	ctx context.Context,
	id int,
	delta int,
) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("incrementing comment votes", slog.Int("comment_id", id), slog.Int("delta", delta))

	query := `UPDATE comments SET votes = votes + $2
WHERE comment_id = $1
RETURNING ` + commentColumns

	var c domain.Comment
	err := s.db.QueryRowContext(ctx, query, id, delta).
		Scan(&c.CommentID, &c.Author, &c.ArticleID, &c.Votes, &c.CreatedAt, &c.Body)
	if err != nil {
		return nil, s.mapCommentError(log, "update_votes", id, err)
	}

	log.Info("comment votes updated", slog.Int("comment_id", id), slog.Int("votes", c.Votes))
	return &c, nil
}

// Delete implements store.CommentStore.Delete
// Returns store.ErrNothingDeleted if no comment had the given ID.
func (s *PostgresCommentStore) Delete(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("deleting comment", slog.Int("comment_id", id))

	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		log.Error("failed to delete comment",
			slog.Int("comment_id", id),
			slog.String("error", err.Error()))
		return store.NewStoreError("comment", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrNothingDeleted); err != nil {
		if errors.Is(err, store.ErrNothingDeleted) {
			log.Debug("no comment deleted", slog.Int("comment_id", id))
		}
		return err
	}

	log.Info("comment deleted", slog.Int("comment_id", id))
	return nil
}

func (s *PostgresCommentStore) mapCommentError(log *slog.Logger, op string, id int, err error) error {
	mapped := MapError(err)
	switch {
	case errors.Is(mapped, store.ErrNotFound):
		log.Debug("comment not found", slog.Int("comment_id", id))
		return store.ErrCommentNotFound
	case errors.Is(mapped, store.ErrInvalidInput):
		log.Warn("comment input rejected by database",
			slog.String("operation", op),
			slog.Int("comment_id", id),
			slog.String("error", err.Error()))
		return store.NewStoreError("comment", op, "invalid input", mapped)
	default:
		log.Error("comment query failed",
			slog.String("operation", op),
			slog.Int("comment_id", id),
			slog.String("error", err.Error()))
		return store.NewStoreError("comment", op, "query failed", mapped)
	}
}
