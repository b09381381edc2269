package api

import (
	"net/http"

	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/store"
)

// TopicHandler handles topic-related HTTP requests
type TopicHandler struct {
	topics store.TopicStore
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(topics store.TopicStore) *TopicHandler {
	return &TopicHandler{topics: topics}
}

// ListTopics handles GET /api/topics requests
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topics.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TopicsResponse{Topics: topics})
}
