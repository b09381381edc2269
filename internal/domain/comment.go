package domain

import "time"

// Comment is a stored comment row.
type Comment struct {
	CommentID int       `json:"comment_id"`
	Author    string    `json:"author"`
	ArticleID int       `json:"article_id"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	Body      string    `json:"body"`
}

// ArticleComment is the view of a comment when listed under its article.
type ArticleComment struct {
	CommentID int       `json:"comment_id"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
}

// NewComment is the input for inserting a comment. Votes and created_at are
// left to the database defaults.
type NewComment struct {
	ArticleID int
	Author    string
	Body      string
}

// Validate checks that the author and body are present.
// Whether the author and article exist is left to the foreign keys.
func (c NewComment) Validate() error {
	if c.Author == "" {
		return NewValidationError("username", "is required", ErrMissingField)
	}
	if c.Body == "" {
		return NewValidationError("body", "is required", ErrMissingField)
	}
	return nil
}
