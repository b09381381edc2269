package api

import (
	"net/http"

	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/store"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	comments store.CommentStore
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(comments store.CommentStore) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// UpdateCommentVotes handles PATCH /api/comments/{comment_id} requests.
// Without inc_votes the comment is returned unchanged.
func (h *CommentHandler) UpdateCommentVotes(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "comment_id")
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
		comment, err := h.comments.GetByID(r.Context(), id)
		if err != nil {
			HandleAPIError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, CommentResponse{Comment: comment})
		return
	}

	comment, err := h.comments.IncrementVotes(r.Context(), id, delta)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CommentResponse{Comment: comment})
}

// DeleteComment handles DELETE /api/comments/{comment_id} requests
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "comment_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.comments.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondNoContent(w)
}
