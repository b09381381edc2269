package store

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// ListUsernames returns the username of every user.
	ListUsernames(ctx context.Context) ([]domain.UserSummary, error)

	// GetByUsername returns the full user record.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
