package store

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
)

// ArticleStore defines the interface for article persistence.
type ArticleStore interface {
	// List returns articles with their comment counts, ordered and filtered
	// according to the query. Returns ErrTopicNotFound when the query names a
	// topic that does not exist.
	List(ctx context.Context, query domain.ArticleQuery) ([]domain.ArticleSummary, error)

	// GetByID returns one article with its comment count.
	// Returns ErrArticleNotFound if the article does not exist.
	GetByID(ctx context.Context, id int) (*domain.ArticleDetail, error)

	// IncrementVotes adds delta to the article's votes in a single statement
	// and returns the updated row.
	// Returns ErrArticleNotFound if the article does not exist.
	IncrementVotes(ctx context.Context, id int, delta int) (*domain.Article, error)
}
