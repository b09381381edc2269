package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/store"
)

// ArticleHandler handles article-related HTTP requests, including the
// comments nested under an article.
type ArticleHandler struct {
	articles store.ArticleStore
	comments store.CommentStore
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articles store.ArticleStore, comments store.CommentStore) *ArticleHandler {
	return &ArticleHandler{
		articles: articles,
		comments: comments,
	}
}

// ListArticles handles GET /api/articles requests.
// Query parameters sort_by, order and topic are optional; empty values count as absent.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query, err := domain.NewArticleQuery(params.Get("sort_by"), params.Get("order"), params.Get("topic"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	articles, err := h.articles.List(r.Context(), query)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ArticlesResponse{Articles: articles})
}

// GetArticle handles GET /api/articles/{article_id} requests
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	article, err := h.articles.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ArticleDetailResponse{Article: article})
}

// UpdateArticleVotes handles PATCH /api/articles/{article_id} requests.
// Without inc_votes the article is returned unchanged.
func (h *ArticleHandler) UpdateArticleVotes(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	delta, present, err := parseVoteDelta(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if !present {
		article, err := h.articles.GetByID(r.Context(), id)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, ArticleDetailResponse{Article: article})
		return
	}

	article, err := h.articles.IncrementVotes(r.Context(), id, delta)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ArticleResponse{Article: article})
}

// ListArticleComments handles GET /api/articles/{article_id}/comments requests
func (h *ArticleHandler) ListArticleComments(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	comments, err := h.comments.ListByArticle(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CommentsResponse{Comments: comments})
}

// PostArticleComment handles POST /api/articles/{article_id}/comments requests
func (h *ArticleHandler) PostArticleComment(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req PostCommentRequest
	if err := decodeBody(r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, domain.NewValidationError("comment", err.Error(), domain.ErrMissingField))
		return
	}

	comment, err := h.comments.Create(r.Context(), domain.NewComment{
		ArticleID: id,
		Author:    req.Username,
		Body:      req.Body,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContext(r.Context()).Debug("comment posted",
		slog.Int("article_id", id),
		slog.Int("comment_id", comment.CommentID))
	shared.RespondWithJSON(w, r, http.StatusCreated, CommentResponse{Comment: comment})
}
