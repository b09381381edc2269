package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/news-api/internal/store"
)

// Stores groups the persistence dependencies of the HTTP handlers.
type Stores struct {
	Topics   store.TopicStore
	Articles store.ArticleStore
	Comments store.CommentStore
	Users    store.UserStore
}

// RegisterRoutes mounts every /api route on r and installs the JSON 404 and
// 405 responders.
func RegisterRoutes(r chi.Router, stores Stores) {
	topicHandler := NewTopicHandler(stores.Topics)
	articleHandler := NewArticleHandler(stores.Articles, stores.Comments)
	commentHandler := NewCommentHandler(stores.Comments)
	userHandler := NewUserHandler(stores.Users)

	r.NotFound(NotFoundHandler)
	r.MethodNotAllowed(MethodNotAllowedHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", GetEndpoints)

		r.Get("/topics", topicHandler.ListTopics)

		r.Get("/articles", articleHandler.ListArticles)
		r.Get("/articles/{article_id}", articleHandler.GetArticle)
		r.Patch("/articles/{article_id}", articleHandler.UpdateArticleVotes)
		r.Get("/articles/{article_id}/comments", articleHandler.ListArticleComments)
		r.Post("/articles/{article_id}/comments", articleHandler.PostArticleComment)

		r.Patch("/comments/{comment_id}", commentHandler.UpdateCommentVotes)
		r.Delete("/comments/{comment_id}", commentHandler.DeleteComment)

		r.Get("/users", userHandler.ListUsers)
		r.Get("/users/{username}", userHandler.GetUser)
	})
}

// HealthHandler answers liveness probes.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
