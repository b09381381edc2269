package domain

import "time"

// Article is a stored article row.
type Article struct {
	ArticleID int       `json:"article_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	Topic     string    `json:"topic"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// ArticleDetail is a single article together with its comment count.
// The count is serialized as a JSON string, matching how clients have always
// received the database's bigint COUNT.
type ArticleDetail struct {
	Article
	CommentCount int64 `json:"comment_count,string"`
}

// ArticleSummary is the listing view of an article. It carries no body.
type ArticleSummary struct {
	Author       string    `json:"author"`
	Title        string    `json:"title"`
	ArticleID    int       `json:"article_id"`
	Topic        string    `json:"topic"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int64     `json:"comment_count,string"`
}
