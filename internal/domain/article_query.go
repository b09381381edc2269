package domain

import "strings"

// SortColumn is a column the article listing may be ordered by.
type SortColumn string

// Sortable columns.
const (
	SortByAuthor       SortColumn = "author"
	SortByTitle        SortColumn = "title"
	SortByArticleID    SortColumn = "article_id"
	SortByTopic        SortColumn = "topic"
	SortByCreatedAt    SortColumn = "created_at"
	SortByVotes        SortColumn = "votes"
	SortByCommentCount SortColumn = "comment_count"
)

// SortOrder is the direction of the article listing.
type SortOrder string

// Sort directions.
const (
	OrderAsc  SortOrder = "ASC"
	OrderDesc SortOrder = "DESC"
)

// Listing defaults applied when a parameter is absent.
const (
	DefaultSortColumn = SortByCreatedAt
	DefaultSortOrder  = OrderDesc
)

var sortColumns = map[SortColumn]struct{}{
	SortByAuthor:       {},
	SortByTitle:        {},
	SortByArticleID:    {},
	SortByTopic:        {},
	SortByCreatedAt:    {},
	SortByVotes:        {},
	SortByCommentCount: {},
}

// ArticleQuery holds the validated parameters of an article listing.
// Only values from the whitelists above can appear in SortBy and Order, so
// both are safe to place into SQL text. Topic is always bound as a parameter.
type ArticleQuery struct {
	SortBy SortColumn
	Order  SortOrder
	Topic  string
}

// NewArticleQuery validates raw listing parameters. Empty strings mean the
// parameter was not supplied. Sort is checked before order.
func NewArticleQuery(sortBy, order, topic string) (ArticleQuery, error) {
	q := ArticleQuery{
		SortBy: DefaultSortColumn,
		Order:  DefaultSortOrder,
		Topic:  topic,
	}

	if sortBy != "" {
		col := SortColumn(sortBy)
		if _, ok := sortColumns[col]; !ok {
			return ArticleQuery{}, NewValidationError("sort_by", "is not a sortable column", ErrInvalidSort)
		}
		q.SortBy = col
	}

	if order != "" {
		switch SortOrder(strings.ToUpper(order)) {
		case OrderAsc:
			q.Order = OrderAsc
		case OrderDesc:
			q.Order = OrderDesc
		default:
			return ArticleQuery{}, NewValidationError("order", "must be ASC or DESC", ErrInvalidOrder)
		}
	}

	return q, nil
}

// HasTopic reports whether the listing is filtered to a single topic.
func (q ArticleQuery) HasTopic() bool {
	return q.Topic != ""
}
