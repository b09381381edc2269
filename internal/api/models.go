package api

import "github.com/phrazzld/news-api/internal/domain"

// PostCommentRequest defines the payload for posting a comment. Unknown
// fields are ignored.
type PostCommentRequest struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body"     validate:"required"`
}

// TopicsResponse wraps the topic listing.
type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// ArticlesResponse wraps the article listing.
type ArticlesResponse struct {
	Articles []domain.ArticleSummary `json:"articles"`
}

// ArticleDetailResponse wraps a single article with its comment count.
type ArticleDetailResponse struct {
	Article *domain.ArticleDetail `json:"article"`
}

// ArticleResponse wraps a single article row, as returned after a vote.
type ArticleResponse struct {
	Article *domain.Article `json:"article"`
}

// CommentsResponse wraps the comments of one article.
type CommentsResponse struct {
	Comments []domain.ArticleComment `json:"comments"`
}

// CommentResponse wraps a single comment.
type CommentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

// UsersResponse wraps the username listing.
type UsersResponse struct {
	Users []domain.UserSummary `json:"users"`
}

// UserResponse wraps a single user under the "username" key.
type UserResponse struct {
	Username *domain.User `json:"username"`
}
