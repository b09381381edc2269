package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2020, time.November, 3, 9, 12, 0, 0, time.UTC)

// MockTopicStore is a mock implementation of store.TopicStore for testing
type MockTopicStore struct {
	ListFn func(ctx context.Context) ([]domain.Topic, error)
}

func (m *MockTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []domain.Topic{}, nil
}

// MockArticleStore is a mock implementation of store.ArticleStore for testing
type MockArticleStore struct {
	ListFn           func(ctx context.Context, q domain.ArticleQuery) ([]domain.ArticleSummary, error)
	GetByIDFn        func(ctx context.Context, id int) (*domain.ArticleDetail, error)
	IncrementVotesFn func(ctx context.Context, id int, delta int) (*domain.Article, error)
}

func (m *MockArticleStore) List(ctx context.Context, q domain.ArticleQuery) ([]domain.ArticleSummary, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, q)
	}
	return []domain.ArticleSummary{}, nil
}

func (m *MockArticleStore) GetByID(ctx context.Context, id int) (*domain.ArticleDetail, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *MockArticleStore) IncrementVotes(ctx context.Context, id int, delta int) (*domain.Article, error) {
	if m.IncrementVotesFn != nil {
		return m.IncrementVotesFn(ctx, id, delta)
	}
	return nil, nil
}

// MockCommentStore is a mock implementation of store.CommentStore for testing
type MockCommentStore struct {
	ListByArticleFn  func(ctx context.Context, articleID int) ([]domain.ArticleComment, error)
	CreateFn         func(ctx context.Context, c domain.NewComment) (*domain.Comment, error)
	GetByIDFn        func(ctx context.Context, id int) (*domain.Comment, error)
	IncrementVotesFn func(ctx context.Context, id int, delta int) (*domain.Comment, error)
	DeleteFn         func(ctx context.Context, id int) error
}

func (m *MockCommentStore) ListByArticle(ctx context.Context, articleID int) ([]domain.ArticleComment, error) {
	if m.ListByArticleFn != nil {
		return m.ListByArticleFn(ctx, articleID)
	}
	return []domain.ArticleComment{}, nil
}

func (m *MockCommentStore) Create(ctx context.Context, c domain.NewComment) (*domain.Comment, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil, nil
}

func (m *MockCommentStore) GetByID(ctx context.Context, id int) (*domain.Comment, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentStore) IncrementVotes(ctx context.Context, id int, delta int) (*domain.Comment, error) {
	if m.IncrementVotesFn != nil {
		return m.IncrementVotesFn(ctx, id, delta)
	}
	return nil, nil
}

func (m *MockCommentStore) Delete(ctx context.Context, id int) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// MockUserStore is a mock implementation of store.UserStore for testing
type MockUserStore struct {
	ListUsernamesFn func(ctx context.Context) ([]domain.UserSummary, error)
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
}

func (m *MockUserStore) ListUsernames(ctx context.Context) ([]domain.UserSummary, error) {
	if m.ListUsernamesFn != nil {
		return m.ListUsernamesFn(ctx)
	}
	return []domain.UserSummary{}, nil
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username)
	}
	return nil, nil
}

// testStores returns a Stores value with empty mocks for any nil field.
func testStores(s Stores) Stores {
	if s.Topics == nil {
		s.Topics = &MockTopicStore{}
	}
	if s.Articles == nil {
		s.Articles = &MockArticleStore{}
	}
	if s.Comments == nil {
		s.Comments = &MockCommentStore{}
	}
	if s.Users == nil {
		s.Users = &MockUserStore{}
	}
	return s
}

// serve routes a request through a router built over the given stores.
func serve(t *testing.T, s Stores, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	RegisterRoutes(r, testStores(s))

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a response body into v.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

// assertMsg checks an error response's status and msg.
func assertMsg(t *testing.T, rec *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())

	var body map[string]string
	decode(t, rec, &body)
	require.Equal(t, msg, body["msg"])
}

