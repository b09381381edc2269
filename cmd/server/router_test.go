package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/news-api/internal/config"
	apiMiddleware "github.com/phrazzld/news-api/internal/api/middleware"
	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockApplication(t *testing.T) (*application, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	log, _ := logger.NewTestLogger(t)
	cfg := &config.Config{Server: config.ServerConfig{Port: 9090, LogLevel: "debug"}}
	return newApplication(cfg, log, db), mock
}

func doRequest(t *testing.T, h http.Handler, method, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	app, _ := newMockApplication(t)
	h := newRouter(app.logger, app.stores)

	rec := doRequest(t, h, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(apiMiddleware.TraceIDHeader))
}

func TestRouter_TopicsThroughPostgresStore(t *testing.T) {
	app, mock := newMockApplication(t)
	h := newRouter(app.logger, app.stores)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT slug, description FROM topics`)).
		WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}).
			AddRow("mitch", "The man, the Mitch, the legend").
			AddRow("cats", "Not dogs"))

	rec := doRequest(t, h, http.MethodGet, "/api/topics", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Topics []struct {
			Slug        string `json:"slug"`
			Description string `json:"description"`
		} `json:"topics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Topics, 2)
	assert.Equal(t, "mitch", body.Topics[0].Slug)
}

func TestRouter_UnknownPathIsJSON404(t *testing.T) {
	app, _ := newMockApplication(t)
	h := newRouter(app.logger, app.stores)

	for _, target := range []string{"/not-a-route", "/api/not-a-route"} {
		t.Run(target, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodGet, target, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, `{"msg":"Not Found"}`, rec.Body.String())
		})
	}
}

func TestRouter_InvalidArticleIDNeverReachesDatabase(t *testing.T) {
	app, _ := newMockApplication(t)
	h := newRouter(app.logger, app.stores)

	rec := doRequest(t, h, http.MethodGet, "/api/articles/banana", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"msg":"Bad Request"}`, rec.Body.String())
}

func TestRouter_CORSAllowsAnyOrigin(t *testing.T) {
	app, _ := newMockApplication(t)
	h := newRouter(app.logger, app.stores)

	t.Run("preflight", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodOptions, "/api/articles/1", map[string]string{
			"Origin":                        "http://example.com",
			"Access-Control-Request-Method": http.MethodPatch,
		})
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
	})

	t.Run("simple request", func(t *testing.T) {
		rec := doRequest(t, h, http.MethodGet, "/health", map[string]string{"Origin": "http://example.com"})
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRouter_EndpointCatalog(t *testing.T) {
	app, _ := newMockApplication(t)
	h := newRouter(app.logger, app.stores)

	rec := doRequest(t, h, http.MethodGet, "/api", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var catalog map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog))
	assert.Contains(t, catalog, "GET /api/articles")
	assert.Contains(t, catalog, "DELETE /api/comments/:comment_id")
}
