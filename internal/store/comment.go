package store

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
)

// CommentStore defines the interface for comment persistence.
type CommentStore interface {
	// ListByArticle returns the comments of an article in storage order.
	// Returns ErrArticleNotFound if the article does not exist; an existing
	// article without comments yields an empty slice.
	ListByArticle(ctx context.Context, articleID int) ([]domain.ArticleComment, error)

	// Create inserts a comment and returns the stored row.
	// Returns a domain validation error if author or body is empty, and
	// ErrReferenceMissing if the author or article does not exist.
	Create(ctx context.Context, comment domain.NewComment) (*domain.Comment, error)

	// GetByID returns one comment.
	// Returns ErrCommentNotFound if the comment does not exist.
	GetByID(ctx context.Context, id int) (*domain.Comment, error)

	// IncrementVotes adds delta to the comment's votes in a single statement
	// and returns the updated row.
	// Returns ErrCommentNotFound if the comment does not exist.
	IncrementVotes(ctx context.Context, id int, delta int) (*domain.Comment, error)

	// Delete removes a comment.
	// Returns ErrNothingDeleted if no comment had the given ID.
	Delete(ctx context.Context, id int) error
}
