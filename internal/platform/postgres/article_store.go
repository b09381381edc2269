package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

// sortExpressions maps each sortable column onto its SQL expression.
// Only these strings are ever interpolated into the listing query.
var sortExpressions = map[domain.SortColumn]string{
	domain.SortByAuthor:       "articles.author",
	domain.SortByTitle:        "articles.title",
	domain.SortByArticleID:    "articles.article_id",
	domain.SortByTopic:        "articles.topic",
	domain.SortByCreatedAt:    "articles.created_at",
	domain.SortByVotes:        "articles.votes",
	domain.SortByCommentCount: "comment_count",
}

const articleColumns = `articles.article_id, articles.title, articles.body, articles.votes,
	articles.topic, articles.author, articles.created_at`

// PostgresArticleStore implements the store.ArticleStore interface
// using a PostgreSQL database as the storage backend.
type PostgresArticleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresArticleStore creates a new PostgreSQL implementation of the ArticleStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresArticleStore(db store.DBTX, logger *slog.Logger) *PostgresArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresArticleStore{
		db:     db,
		logger: logger.With(slog.String("component", "article_store")),
	}
}

// Ensure PostgresArticleStore implements store.ArticleStore interface
var _ store.ArticleStore = (*PostgresArticleStore)(nil)

// buildArticleListQuery renders the listing SQL and its arguments. The
// ordering comes from whitelisted values only; the topic is always bound.
func buildArticleListQuery(q domain.ArticleQuery) (string, []any, error) {
	sortExpr, ok := sortExpressions[q.SortBy]
	if !ok {
		return "", nil, domain.NewValidationError("sort_by", "is not a sortable column", domain.ErrInvalidSort)
	}
	if q.Order != domain.OrderAsc && q.Order != domain.OrderDesc {
		return "", nil, domain.NewValidationError("order", "must be ASC or DESC", domain.ErrInvalidOrder)
	}

	var b strings.Builder
	var args []any

	b.WriteString(`SELECT articles.author, articles.title, articles.article_id, articles.topic,
	articles.created_at, articles.votes, COUNT(comments.comment_id) AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id`)

	if q.HasTopic() {
		args = append(args, q.Topic)
		fmt.Fprintf(&b, "\nWHERE articles.topic = $%d", len(args))
	}

	b.WriteString("\nGROUP BY articles.article_id")
	fmt.Fprintf(&b, "\nORDER BY %s %s", sortExpr, q.Order)

	return b.String(), args, nil
}

// List implements store.ArticleStore.List
// Returns store.ErrTopicNotFound if the query filters on an unknown topic.
func (s *PostgresArticleStore) List(
	ctx context.Context,
	q domain.ArticleQuery,
) ([]domain.ArticleSummary, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("listing articles",
		slog.String("sort_by", string(q.SortBy)),
		slog.String("order", string(q.Order)),
		slog.String("topic", q.Topic))

	query, args, err := buildArticleListQuery(q)
	if err != nil {
		return nil, err
	}

	if q.HasTopic() {
		exists, err := topicExists(ctx, s.db, q.Topic)
		if err != nil {
			log.Error("failed to check topic", slog.String("error", err.Error()))
			return nil, err
		}
		if !exists {
			log.Debug("topic not found", slog.String("topic", q.Topic))
			return nil, store.ErrTopicNotFound
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list articles", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	articles := []domain.ArticleSummary{}
	for rows.Next() {
		var a domain.ArticleSummary
		if err := rows.Scan(
			&a.Author,
			&a.Title,
			&a.ArticleID,
			&a.Topic,
			&a.CreatedAt,
			&a.Votes,
			&a.CommentCount,
		); err != nil {
			log.Error("failed to scan article row", slog.String("error", err.Error()))
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating article rows", slog.String("error", err.Error()))
		return nil, err
	}

	return articles, nil
}

// GetByID implements store.ArticleStore.GetByID
// Returns store.ErrArticleNotFound if the article does not exist.
func (s *PostgresArticleStore) GetByID(ctx context.Context, id int) (*domain.ArticleDetail, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("retrieving article by ID", slog.Int("article_id", id))

	query := `SELECT ` + articleColumns + `, COUNT(comments.comment_id) AS comment_count
FROM articles
LEFT JOIN comments ON comments.article_id = articles.article_id
WHERE articles.article_id = $1
GROUP BY articles.article_id`

	var a domain.ArticleDetail
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&a.ArticleID,
		&a.Title,
		&a.Body,
		&a.Votes,
		&a.Topic,
		&a.Author,
		&a.CreatedAt,
		&a.CommentCount,
	)
	if err != nil {
		return nil, s.mapArticleError(log, "get", id, err)
	}

	return &a, nil
}

// IncrementVotes implements store.ArticleStore.IncrementVotes
// The addition happens in the UPDATE itself so concurrent votes are not lost.
func (s *PostgresArticleStore) IncrementVotes(
	ctx context.Context,
	id int,
	delta int,
) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("incrementing article votes", slog.Int("article_id", id), slog.Int("delta", delta))

	query := `UPDATE articles SET votes = votes + $2
WHERE articles.article_id = $1
RETURNING ` + articleColumns

	var a domain.Article
	err := s.db.QueryRowContext(ctx, query, id, delta).Scan(
		&a.ArticleID,
		&a.Title,
		&a.Body,
		&a.Votes,
		&a.Topic,
		&a.Author,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, s.mapArticleError(log, "update_votes", id, err)
	}

	log.Info("article votes updated", slog.Int("article_id", id), slog.Int("votes", a.Votes))
	return &a, nil
}

func (s *PostgresArticleStore) mapArticleError(log *slog.Logger, op string, id int, err error) error {
	mapped := MapError(err)
	switch {
	case errors.Is(mapped, store.ErrNotFound):
		log.Debug("article not found", slog.Int("article_id", id))
		return store.ErrArticleNotFound
	case errors.Is(mapped, store.ErrInvalidInput):
		log.Warn("article input rejected by database",
			slog.String("operation", op),
			slog.Int("article_id", id),
			slog.String("error", err.Error()))
		return store.NewStoreError("article", op, "invalid input", mapped)
	default:
		log.Error("article query failed",
			slog.String("operation", op),
			slog.Int("article_id", id),
			slog.String("error", err.Error()))
		return store.NewStoreError("article", op, "query failed", mapped)
	}
}
