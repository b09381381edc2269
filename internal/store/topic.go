package store

import (
	"context"

	"github.com/phrazzld/news-api/internal/domain"
)

// TopicStore defines the interface for topic persistence.
type TopicStore interface {
	// List returns every topic.
	List(ctx context.Context) ([]domain.Topic, error)
}
